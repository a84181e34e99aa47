package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the fund movement capability consumed by the settlement
// engine. Bid amounts and payments are held in the module account until a
// terminal transition releases them.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// AssetKeeper is the custodial transfer capability of the external asset
// registry. The engine never mutates ownership records directly; it invokes
// Transfer exactly once per terminal transition.
type AssetKeeper interface {
	Transfer(ctx sdk.Context, from, to sdk.AccAddress, assetID string) error
	OwnerOf(ctx sdk.Context, assetID string) (sdk.AccAddress, error)
}
