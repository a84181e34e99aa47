package query

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/x/marketplace/types"
)

type (
	// Order type
	Order types.Order
	// Orders - Slice of Order Struct
	Orders []Order
)

// AssetOrders is the listing history of one asset
type AssetOrders struct {
	AssetID  string          `json:"asset_id"`
	OrderIDs []types.OrderID `json:"order_ids"`
	Count    uint64          `json:"count"`
}

// SellerOrders is the listing history of one seller
type SellerOrders struct {
	Seller   sdk.AccAddress  `json:"seller"`
	OrderIDs []types.OrderID `json:"order_ids"`
	Count    uint64          `json:"count"`
}

// CurrentPrice is the acquirable price of an order at query height
type CurrentPrice struct {
	OrderID types.OrderID `json:"order_id"`
	Height  int64         `json:"height"`
	Price   sdk.Coin      `json:"price"`
}
