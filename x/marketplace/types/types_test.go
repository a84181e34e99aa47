package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/curio-network/curio/testutil"
	"github.com/curio-network/curio/x/marketplace/types"
)

func TestOrderTypeRoundTrip(t *testing.T) {
	for _, otype := range []types.OrderType{
		types.OrderFixedPrice,
		types.OrderDutch,
		types.OrderEnglish,
	} {
		require.NoError(t, otype.Validate())

		parsed, err := types.ParseOrderType(otype.String())
		require.NoError(t, err)
		require.Equal(t, otype, parsed)
	}
}

func TestOrderTypeInvalid(t *testing.T) {
	require.Error(t, types.OrderType(0).Validate())
	require.Error(t, types.OrderType(42).Validate())

	_, err := types.ParseOrderType("bogus")
	require.Error(t, err)
	require.Equal(t, types.ErrInvalidOrderType, err)
}

func fixedOrder(t *testing.T, price int64) types.Order {
	t.Helper()
	seller := testutil.AccAddress(t)
	asset := testutil.AssetID(t)

	return types.Order{
		ID:           types.MakeOrderID(10, asset, seller),
		OrderType:    types.OrderFixedPrice,
		Seller:       seller,
		AssetID:      asset,
		StartPrice:   testutil.CurioCoin(t, price),
		EndPrice:     testutil.CurioCoin(t, 0),
		StartHeight:  10,
		LastBidPrice: testutil.CurioCoin(t, 0),
	}
}

func TestCurrentPriceFixed(t *testing.T) {
	order := fixedOrder(t, 100)

	require.Equal(t, testutil.CurioCoin(t, 100), order.CurrentPrice(10))
	require.Equal(t, testutil.CurioCoin(t, 100), order.CurrentPrice(10000))
}

func TestCurrentPriceEnglish(t *testing.T) {
	order := fixedOrder(t, 100)
	order.OrderType = types.OrderEnglish

	require.Equal(t, testutil.CurioCoin(t, 100), order.CurrentPrice(10))

	order.LastBidder = testutil.AccAddress(t)
	order.LastBidPrice = testutil.CurioCoin(t, 150)

	require.Equal(t, testutil.CurioCoin(t, 150), order.CurrentPrice(10))
}

func TestCurrentPriceDutch(t *testing.T) {
	order := fixedOrder(t, 100)
	order.OrderType = types.OrderDutch
	order.EndPrice = testutil.CurioCoin(t, 10)
	order.StartHeight = 45
	order.EndHeight = 55

	// rate is (100 - 10) / (55 - 45) = 9 per block
	require.Equal(t, testutil.CurioCoin(t, 100), order.CurrentPrice(45))
	require.Equal(t, testutil.CurioCoin(t, 82), order.CurrentPrice(47))
	require.Equal(t, testutil.CurioCoin(t, 55), order.CurrentPrice(50))
	require.Equal(t, testutil.CurioCoin(t, 19), order.CurrentPrice(54))

	// clamped to the end price at and past the end height
	require.Equal(t, testutil.CurioCoin(t, 10), order.CurrentPrice(55))
	require.Equal(t, testutil.CurioCoin(t, 10), order.CurrentPrice(900))

	// heights before the listing height use the start price
	require.Equal(t, testutil.CurioCoin(t, 100), order.CurrentPrice(40))
}

func TestCurrentPriceDutchTruncates(t *testing.T) {
	order := fixedOrder(t, 100)
	order.OrderType = types.OrderDutch
	order.EndPrice = testutil.CurioCoin(t, 10)
	order.StartHeight = 0
	order.EndHeight = 7

	// rate is 90 / 7 = 12, remainder truncated
	require.Equal(t, testutil.CurioCoin(t, 64), order.CurrentPrice(3))
	require.Equal(t, testutil.CurioCoin(t, 28), order.CurrentPrice(6))
	require.Equal(t, testutil.CurioCoin(t, 10), order.CurrentPrice(7))
}

func TestMinBidPrice(t *testing.T) {
	order := fixedOrder(t, 100)
	order.OrderType = types.OrderEnglish

	require.Equal(t, testutil.CurioCoin(t, 100), order.MinBidPrice())

	order.LastBidder = testutil.AccAddress(t)
	order.LastBidPrice = testutil.CurioCoin(t, 100)
	require.Equal(t, testutil.CurioCoin(t, 105), order.MinBidPrice())

	order.LastBidPrice = testutil.CurioCoin(t, 104)
	require.Equal(t, testutil.CurioCoin(t, 109), order.MinBidPrice())

	// increments below one truncate to zero
	order.LastBidPrice = testutil.CurioCoin(t, 19)
	require.Equal(t, testutil.CurioCoin(t, 19), order.MinBidPrice())
}

func TestValidateLive(t *testing.T) {
	order := fixedOrder(t, 100)
	require.NoError(t, order.ValidateLive())

	sold := order
	sold.IsSold = true
	require.Equal(t, types.ErrOrderSold, sold.ValidateLive())

	cancelled := order
	cancelled.IsCancelled = true
	require.Equal(t, types.ErrOrderCancelled, cancelled.ValidateLive())
}

func TestExpired(t *testing.T) {
	order := fixedOrder(t, 100)
	require.False(t, order.Expired(1000000))

	order.EndHeight = 50
	require.False(t, order.Expired(49))
	require.False(t, order.Expired(50))
	require.True(t, order.Expired(51))
}

func TestHasBid(t *testing.T) {
	require.False(t, types.Order{}.HasBid())

	order := fixedOrder(t, 100)
	require.False(t, order.HasBid())

	order.LastBidder = testutil.AccAddress(t)
	order.LastBidPrice = testutil.CurioCoin(t, 120)
	require.True(t, order.HasBid())
}

func TestOrderValidate(t *testing.T) {
	order := fixedOrder(t, 100)
	require.NoError(t, order.Validate())

	noID := order
	noID.ID = "short"
	require.Error(t, noID.Validate())

	noAsset := order
	noAsset.AssetID = ""
	require.Error(t, noAsset.Validate())

	zeroPrice := order
	zeroPrice.StartPrice = testutil.CurioCoin(t, 0)
	require.Error(t, zeroPrice.Validate())

	both := order
	both.IsSold = true
	both.IsCancelled = true
	require.Error(t, both.Validate())

	dutch := order
	dutch.OrderType = types.OrderDutch
	dutch.EndPrice = testutil.CurioCoin(t, 10)
	dutch.EndHeight = 100
	require.NoError(t, dutch.Validate())

	dutch.EndPrice = testutil.CurioCoin(t, 100)
	require.Error(t, dutch.Validate())

	dutch.EndPrice = testutil.CurioCoin(t, 10)
	dutch.EndHeight = order.StartHeight
	require.Error(t, dutch.Validate())

	dutch.EndPrice = sdk.NewCoin("otherdenom", sdk.NewInt(10))
	dutch.EndHeight = 100
	require.Error(t, dutch.Validate())
}
