package handler

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/curio-network/curio/x/marketplace/types"
)

// NewHandler returns a handler for "marketplace" type messages
func NewHandler(keepers Keepers) sdk.Handler {
	ms := NewMsgServerImpl(keepers)

	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		switch msg := msg.(type) {
		case *types.MsgCreateOrder:
			return ms.CreateOrder(ctx, msg)

		case *types.MsgCreateOrders:
			return ms.CreateOrders(ctx, msg)

		case *types.MsgPlaceBid:
			return ms.PlaceBid(ctx, msg)

		case *types.MsgCancelBid:
			return ms.CancelBid(ctx, msg)

		case *types.MsgBuyNow:
			return ms.BuyNow(ctx, msg)

		case *types.MsgClaim:
			return ms.Claim(ctx, msg)

		case *types.MsgClaims:
			return ms.Claims(ctx, msg)

		case *types.MsgCancelOrder:
			return ms.CancelOrder(ctx, msg)

		case *types.MsgCancelOrders:
			return ms.CancelOrders(ctx, msg)

		default:
			return nil, sdkerrors.ErrUnknownRequest
		}
	}
}
