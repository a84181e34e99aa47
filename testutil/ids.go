package testutil

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/curio-network/curio/x/marketplace/types"
)

// AccAddress provides an Account's Address bytes from a ed25519 generated
// private key.
func AccAddress(t testing.TB) sdk.AccAddress {
	t.Helper()
	privKey := ed25519.GenPrivKey()
	return sdk.AccAddress(privKey.PubKey().Address())
}

// AssetID generates a random custodial asset identifier
func AssetID(t testing.TB) string {
	t.Helper()
	return Name(t, "asset")
}

// OrderID derives an order id for the given listing coordinates
func OrderID(t testing.TB, height int64, assetID string, seller sdk.AccAddress) types.OrderID {
	t.Helper()
	return types.MakeOrderID(height, assetID, seller)
}
