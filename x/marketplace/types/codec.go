package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the module wide codec
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
}

// RegisterCodec - Register concrete types on codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(MsgCreateOrder{}, ModuleName+"/msg-create-order", nil)
	cdc.RegisterConcrete(MsgCreateOrders{}, ModuleName+"/msg-create-orders", nil)
	cdc.RegisterConcrete(MsgPlaceBid{}, ModuleName+"/msg-place-bid", nil)
	cdc.RegisterConcrete(MsgCancelBid{}, ModuleName+"/msg-cancel-bid", nil)
	cdc.RegisterConcrete(MsgBuyNow{}, ModuleName+"/msg-buy-now", nil)
	cdc.RegisterConcrete(MsgClaim{}, ModuleName+"/msg-claim", nil)
	cdc.RegisterConcrete(MsgClaims{}, ModuleName+"/msg-claims", nil)
	cdc.RegisterConcrete(MsgCancelOrder{}, ModuleName+"/msg-cancel-order", nil)
	cdc.RegisterConcrete(MsgCancelOrders{}, ModuleName+"/msg-cancel-orders", nil)
}

// MustMarshalJSON panics if an error occurs. Besides that it behaves exactly like MarshalJSON
// i.e., encodes json to byte array
func MustMarshalJSON(o interface{}) []byte {
	return ModuleCdc.MustMarshalJSON(o)
}

// UnmarshalJSON decodes bytes into json
func UnmarshalJSON(bz []byte, ptr interface{}) error {
	return ModuleCdc.UnmarshalJSON(bz, ptr)
}

// MustUnmarshalJSON panics if an error occurs. Besides that it behaves exactly like UnmarshalJSON.
func MustUnmarshalJSON(bz []byte, ptr interface{}) {
	ModuleCdc.MustUnmarshalJSON(bz, ptr)
}
