package testutil

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/curio-network/curio/sdkutil"
	mtypes "github.com/curio-network/curio/x/marketplace/types"
)

func ParseEvent(t testing.TB, events sdk.Events, expectedLen int) sdkutil.Event {
	t.Helper()

	require.Equal(t, expectedLen, len(events))

	sev := sdk.StringifyEvent(events.ToABCIEvents()[expectedLen-1])
	ev, err := sdkutil.ParseEvent(sev)

	require.NoError(t, err)

	return ev
}

func ParseMarketplaceEvent(t testing.TB, events sdk.Events, expectedLen int) sdkutil.ModuleEvent {
	t.Helper()

	uev := ParseEvent(t, events, expectedLen)

	iev, err := mtypes.ParseEvent(uev)
	require.NoError(t, err)

	return iev
}
