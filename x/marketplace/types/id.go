package types

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/crypto/tmhash"
)

// OrderID is the deterministic identifier of an order, derived from the
// listing height, the asset id and the seller. Two listings of the same
// asset by the same seller in the same height collide and are rejected at
// creation time.
type OrderID string

// MakeOrderID returns the OrderID for the given listing height, asset and seller
func MakeOrderID(height int64, assetID string, seller sdk.AccAddress) OrderID {
	buf := bytes.NewBuffer(nil)
	if err := binary.Write(buf, binary.BigEndian, height); err != nil {
		panic(err)
	}
	buf.WriteString(assetID)
	buf.Write(seller.Bytes())

	return OrderID(strings.ToUpper(hex.EncodeToString(tmhash.Sum(buf.Bytes()))))
}

// Validate method for OrderID and returns nil
func (id OrderID) Validate() error {
	if len(id) != tmhash.Size*2 {
		return sdkerrors.Wrap(ErrOrderNotFound, "OrderID: invalid length")
	}
	if _, err := hex.DecodeString(string(id)); err != nil {
		return sdkerrors.Wrap(ErrOrderNotFound, "OrderID: not a hash")
	}
	return nil
}

// Equals method compares specific order id with provided order id
func (id OrderID) Equals(other OrderID) bool {
	return id == other
}

// Bytes returns the raw store representation of the id
func (id OrderID) Bytes() []byte {
	return []byte(id)
}

// String provides stringer interface to save reflected formatting.
func (id OrderID) String() string {
	return string(id)
}
