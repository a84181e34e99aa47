package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/curio-network/curio/testutil"
	"github.com/curio-network/curio/x/marketplace/types"
)

func TestMakeOrderIDDeterministic(t *testing.T) {
	seller := testutil.AccAddress(t)
	asset := testutil.AssetID(t)

	first := types.MakeOrderID(100, asset, seller)
	second := types.MakeOrderID(100, asset, seller)

	require.True(t, first.Equals(second))
	require.NoError(t, first.Validate())
}

func TestMakeOrderIDDistinct(t *testing.T) {
	seller := testutil.AccAddress(t)
	asset := testutil.AssetID(t)

	base := types.MakeOrderID(100, asset, seller)

	require.NotEqual(t, base, types.MakeOrderID(101, asset, seller))
	require.NotEqual(t, base, types.MakeOrderID(100, testutil.AssetID(t), seller))
	require.NotEqual(t, base, types.MakeOrderID(100, asset, testutil.AccAddress(t)))
}

func TestOrderIDValidate(t *testing.T) {
	id := types.MakeOrderID(1, testutil.AssetID(t), testutil.AccAddress(t))
	require.NoError(t, id.Validate())

	require.Error(t, types.OrderID("").Validate())
	require.Error(t, types.OrderID("abcdef").Validate())

	bogus := "Z" + string(id[1:])
	require.Error(t, types.OrderID(bogus).Validate())
}
