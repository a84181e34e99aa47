package query

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/curio-network/curio/sdkutil"
	"github.com/curio-network/curio/x/marketplace/keeper"
	"github.com/curio-network/curio/x/marketplace/types"
)

// NewQuerier creates and returns a new marketplace querier instance
func NewQuerier(keeper keeper.Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case ordersPath:
			return queryOrders(ctx, path[1:], req, keeper)
		case orderPath:
			return queryOrder(ctx, path[1:], req, keeper)
		case pricePath:
			return queryPrice(ctx, path[1:], req, keeper)
		case assetPath:
			return queryAsset(ctx, path[1:], req, keeper)
		case sellerPath:
			return querySeller(ctx, path[1:], req, keeper)
		}
		return []byte{}, sdkerrors.ErrUnknownRequest
	}
}

func queryOrders(ctx sdk.Context, _ []string, _ abci.RequestQuery, keeper keeper.Keeper) ([]byte, error) {
	var values Orders
	keeper.WithOrders(ctx, func(obj types.Order) bool {
		values = append(values, Order(obj))
		return false
	})
	return sdkutil.RenderQueryResponse(keeper.Codec(), values)
}

func queryOrder(ctx sdk.Context, path []string, _ abci.RequestQuery, keeper keeper.Keeper) ([]byte, error) {
	id, err := ParseOrderPath(path)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInternal, err.Error())
	}

	order, ok := keeper.GetOrder(ctx, id)
	if !ok {
		return nil, types.ErrOrderNotFound
	}

	value := Order(order)

	return sdkutil.RenderQueryResponse(keeper.Codec(), value)
}

func queryPrice(ctx sdk.Context, path []string, _ abci.RequestQuery, keeper keeper.Keeper) ([]byte, error) {
	id, err := ParseOrderPath(path)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInternal, err.Error())
	}

	order, ok := keeper.GetOrder(ctx, id)
	if !ok {
		return nil, types.ErrOrderNotFound
	}

	value := CurrentPrice{
		OrderID: order.ID,
		Height:  ctx.BlockHeight(),
		Price:   order.CurrentPrice(ctx.BlockHeight()),
	}

	return sdkutil.RenderQueryResponse(keeper.Codec(), value)
}

func queryAsset(ctx sdk.Context, path []string, _ abci.RequestQuery, keeper keeper.Keeper) ([]byte, error) {
	assetID, err := ParseAssetPath(path)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInternal, err.Error())
	}

	value := AssetOrders{
		AssetID:  assetID,
		OrderIDs: keeper.OrderIDsForAsset(ctx, assetID),
		Count:    keeper.OrderCountForAsset(ctx, assetID),
	}

	return sdkutil.RenderQueryResponse(keeper.Codec(), value)
}

func querySeller(ctx sdk.Context, path []string, _ abci.RequestQuery, keeper keeper.Keeper) ([]byte, error) {
	seller, err := ParseSellerPath(path)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInternal, err.Error())
	}

	value := SellerOrders{
		Seller:   seller,
		OrderIDs: keeper.OrderIDsForSeller(ctx, seller),
		Count:    keeper.OrderCountForSeller(ctx, seller),
	}

	return sdkutil.RenderQueryResponse(keeper.Codec(), value)
}
