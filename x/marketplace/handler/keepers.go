package handler

import (
	"github.com/curio-network/curio/x/marketplace/keeper"
)

// Keepers include all keepers consumed by the marketplace handler
type Keepers struct {
	Marketplace keeper.Keeper
	Bank        keeper.BankKeeper
	Asset       keeper.AssetKeeper
}
