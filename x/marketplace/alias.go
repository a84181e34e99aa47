package marketplace

import (
	"github.com/curio-network/curio/x/marketplace/handler"
	"github.com/curio-network/curio/x/marketplace/keeper"
	"github.com/curio-network/curio/x/marketplace/types"
)

const (
	// StoreKey represents storekey of marketplace module
	StoreKey = types.StoreKey
	// ModuleName represents current module name
	ModuleName = types.ModuleName
)

type (
	// Keeper defines keeper of marketplace module
	Keeper = keeper.Keeper
	// Keepers defines the keeper set required by the marketplace handler
	Keepers = handler.Keepers
)

var (
	// NewKeeper creates new keeper instance of marketplace module
	NewKeeper = keeper.NewKeeper
	// NewHandler creates new handler instance of marketplace module
	NewHandler = handler.NewHandler
)
