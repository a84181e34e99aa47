package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName is the module name constant used in many places
	ModuleName = "marketplace"

	// StoreKey is the store key string for marketplace
	StoreKey = ModuleName

	// RouterKey is the message route for marketplace
	RouterKey = ModuleName

	// QuerierRoute is the querier route for marketplace
	QuerierRoute = ModuleName
)

// EscrowAddress is the module account address holding listed assets and
// in-flight bid funds.
var EscrowAddress = authtypes.NewModuleAddress(ModuleName)
