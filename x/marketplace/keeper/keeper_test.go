package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/curio-network/curio/testutil"
	"github.com/curio-network/curio/x/marketplace/keeper"
	"github.com/curio-network/curio/x/marketplace/types"
)

func testOrder(t *testing.T, ctx sdk.Context, seller sdk.AccAddress, assetID string) types.Order {
	t.Helper()
	return types.Order{
		ID:           types.MakeOrderID(ctx.BlockHeight(), assetID, seller),
		OrderType:    types.OrderEnglish,
		Seller:       seller,
		AssetID:      assetID,
		StartPrice:   testutil.CurioCoin(t, 100),
		EndPrice:     testutil.CurioCoin(t, 0),
		StartHeight:  ctx.BlockHeight(),
		LastBidPrice: testutil.CurioCoin(t, 0),
	}
}

func TestCreateOrderRoundTrip(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	order := testOrder(t, ctx, testutil.AccAddress(t), testutil.AssetID(t))
	require.NoError(t, k.CreateOrder(ctx, order))

	found, ok := k.GetOrder(ctx, order.ID)
	require.True(t, ok)
	require.Equal(t, order, found)

	iev := testutil.ParseMarketplaceEvent(t, ctx.EventManager().Events(), 1)
	require.IsType(t, types.EventOrderCreated{}, iev)
	require.Equal(t, order.ID, iev.(types.EventOrderCreated).ID)
}

func TestCreateOrderDuplicate(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	order := testOrder(t, ctx, testutil.AccAddress(t), testutil.AssetID(t))
	require.NoError(t, k.CreateOrder(ctx, order))
	require.Equal(t, types.ErrOrderExists, k.CreateOrder(ctx, order))
}

func TestGetOrderMissing(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	_, ok := k.GetOrder(ctx, types.MakeOrderID(1, "nope", testutil.AccAddress(t)))
	require.False(t, ok)
}

func TestSaveOrderSilent(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	order := testOrder(t, ctx, testutil.AccAddress(t), testutil.AssetID(t))
	k.SaveOrder(ctx, order)

	_, ok := k.GetOrder(ctx, order.ID)
	require.True(t, ok)
	require.Empty(t, ctx.EventManager().Events())
}

func TestParamsRoundTrip(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.DefaultParams()
	params.FeeBps = 500
	params.MarketEnabled = false
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	params.FeeBps = types.MaxFeeBps + 1
	require.Error(t, k.SetParams(ctx, params))
}

func TestAssetIndex(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	asset := testutil.AssetID(t)

	var ids []types.OrderID
	for i := 0; i < 3; i++ {
		order := testOrder(t, ctx.WithBlockHeight(int64(i+1)), testutil.AccAddress(t), asset)
		require.NoError(t, k.CreateOrder(ctx, order))
		ids = append(ids, order.ID)
	}

	require.Equal(t, uint64(3), k.OrderCountForAsset(ctx, asset))
	require.Equal(t, ids, k.OrderIDsForAsset(ctx, asset))

	require.Zero(t, k.OrderCountForAsset(ctx, testutil.AssetID(t)))
	require.Empty(t, k.OrderIDsForAsset(ctx, testutil.AssetID(t)))
}

func TestAssetIndexNoShadowing(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	// "nft-1" must not pick up entries of the longer "nft-10"
	short := testOrder(t, ctx, testutil.AccAddress(t), "nft-1")
	long := testOrder(t, ctx, testutil.AccAddress(t), "nft-10")

	require.NoError(t, k.CreateOrder(ctx, short))
	require.NoError(t, k.CreateOrder(ctx, long))

	require.Equal(t, []types.OrderID{short.ID}, k.OrderIDsForAsset(ctx, "nft-1"))
	require.Equal(t, []types.OrderID{long.ID}, k.OrderIDsForAsset(ctx, "nft-10"))
}

func TestSellerIndex(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	seller := testutil.AccAddress(t)

	var ids []types.OrderID
	for i := 0; i < 3; i++ {
		order := testOrder(t, ctx.WithBlockHeight(int64(i+1)), seller, testutil.AssetID(t))
		require.NoError(t, k.CreateOrder(ctx, order))
		ids = append(ids, order.ID)
	}

	require.Equal(t, uint64(3), k.OrderCountForSeller(ctx, seller))
	require.Equal(t, ids, k.OrderIDsForSeller(ctx, seller))

	require.Zero(t, k.OrderCountForSeller(ctx, testutil.AccAddress(t)))
}

func TestIndexSurvivesTerminalStates(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	seller := testutil.AccAddress(t)
	asset := testutil.AssetID(t)

	order := testOrder(t, ctx, seller, asset)
	require.NoError(t, k.CreateOrder(ctx, order))

	k.OnOrderCancelled(ctx, order)

	require.Equal(t, uint64(1), k.OrderCountForAsset(ctx, asset))
	require.Equal(t, uint64(1), k.OrderCountForSeller(ctx, seller))

	relisted := testOrder(t, ctx.WithBlockHeight(2), seller, asset)
	require.NoError(t, k.CreateOrder(ctx, relisted))

	require.Equal(t, uint64(2), k.OrderCountForAsset(ctx, asset))
	require.Equal(t, []types.OrderID{order.ID, relisted.ID}, k.OrderIDsForAsset(ctx, asset))
}

func TestWithOrders(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	for i := 0; i < 4; i++ {
		order := testOrder(t, ctx.WithBlockHeight(int64(i+1)), testutil.AccAddress(t), testutil.AssetID(t))
		require.NoError(t, k.CreateOrder(ctx, order))
	}

	count := 0
	k.WithOrders(ctx, func(types.Order) bool {
		count++
		return false
	})
	require.Equal(t, 4, count)

	count = 0
	k.WithOrders(ctx, func(types.Order) bool {
		count++
		return count == 2
	})
	require.Equal(t, 2, count)
}

func TestBidLifecycle(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	order := testOrder(t, ctx, testutil.AccAddress(t), testutil.AssetID(t))
	require.NoError(t, k.CreateOrder(ctx, order))

	bidder := testutil.AccAddress(t)
	price := testutil.CurioCoin(t, 150)

	order = k.OnBidPlaced(ctx, order, bidder, price)
	require.True(t, order.HasBid())

	stored, ok := k.GetOrder(ctx, order.ID)
	require.True(t, ok)
	require.Equal(t, bidder, stored.LastBidder)
	require.Equal(t, price, stored.LastBidPrice)

	order = k.OnBidCancelled(ctx, order)
	require.False(t, order.HasBid())

	stored, _ = k.GetOrder(ctx, order.ID)
	require.Nil(t, stored.LastBidder)
	require.True(t, stored.LastBidPrice.IsZero())
}

func TestOrderExtendedNotPersisted(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	order := testOrder(t, ctx, testutil.AccAddress(t), testutil.AssetID(t))
	order.EndHeight = 100
	require.NoError(t, k.CreateOrder(ctx, order))

	extended := k.OnOrderExtended(ctx, order, 200)
	require.Equal(t, int64(200), extended.EndHeight)

	// persisted together with the next bid, not on its own
	stored, _ := k.GetOrder(ctx, order.ID)
	require.Equal(t, int64(100), stored.EndHeight)

	k.OnBidPlaced(ctx, extended, testutil.AccAddress(t), testutil.CurioCoin(t, 150))
	stored, _ = k.GetOrder(ctx, order.ID)
	require.Equal(t, int64(200), stored.EndHeight)
}

func TestTerminalStates(t *testing.T) {
	ctx, k := keeper.SetupTestInput()

	order := testOrder(t, ctx, testutil.AccAddress(t), testutil.AssetID(t))
	require.NoError(t, k.CreateOrder(ctx, order))

	buyer := testutil.AccAddress(t)
	order = k.OnBidPlaced(ctx, order, buyer, testutil.CurioCoin(t, 100))
	k.OnOrderSold(ctx, order, buyer, testutil.CurioCoin(t, 100), testutil.CurioCoin(t, 2))

	stored, _ := k.GetOrder(ctx, order.ID)
	require.True(t, stored.IsSold)
	require.Error(t, stored.ValidateLive())

	// the settled bid does not outlive the order
	require.False(t, stored.HasBid())
	require.Nil(t, stored.LastBidder)

	other := testOrder(t, ctx.WithBlockHeight(2), testutil.AccAddress(t), testutil.AssetID(t))
	other.LastBidder = testutil.AccAddress(t)
	other.LastBidPrice = testutil.CurioCoin(t, 120)
	require.NoError(t, k.CreateOrder(ctx, other))

	k.OnOrderCancelled(ctx, other)

	stored, _ = k.GetOrder(ctx, other.ID)
	require.True(t, stored.IsCancelled)
	require.False(t, stored.HasBid())
	require.Nil(t, stored.LastBidder)
}
