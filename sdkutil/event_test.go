package sdkutil_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/curio-network/curio/sdkutil"
)

func TestParseEvent(t *testing.T) {
	sev := sdk.StringEvent{
		Type: sdkutil.EventTypeMessage,
		Attributes: []sdk.Attribute{
			{Key: sdk.AttributeKeyModule, Value: "marketplace"},
			{Key: sdk.AttributeKeyAction, Value: "order-created"},
			{Key: "order-id", Value: "abc"},
		},
	}

	ev, err := sdkutil.ParseEvent(sev)
	require.NoError(t, err)
	require.Equal(t, "marketplace", ev.Module)
	require.Equal(t, "order-created", ev.Action)
}

func TestParseEventMissingModule(t *testing.T) {
	sev := sdk.StringEvent{
		Type: sdkutil.EventTypeMessage,
		Attributes: []sdk.Attribute{
			{Key: sdk.AttributeKeyAction, Value: "order-created"},
		},
	}

	_, err := sdkutil.ParseEvent(sev)
	require.Equal(t, sdkutil.ErrNotFound, err)
}

func TestAttributeGetters(t *testing.T) {
	attrs := []sdk.Attribute{
		{Key: "count", Value: "42"},
		{Key: "height", Value: "-7"},
		{Key: "name", Value: "value"},
	}

	uval, err := sdkutil.GetUint64(attrs, "count")
	require.NoError(t, err)
	require.Equal(t, uint64(42), uval)

	ival, err := sdkutil.GetInt64(attrs, "height")
	require.NoError(t, err)
	require.Equal(t, int64(-7), ival)

	sval, err := sdkutil.GetString(attrs, "name")
	require.NoError(t, err)
	require.Equal(t, "value", sval)

	_, err = sdkutil.GetString(attrs, "missing")
	require.Equal(t, sdkutil.ErrNotFound, err)

	_, err = sdkutil.GetUint64(attrs, "name")
	require.Error(t, err)
}
