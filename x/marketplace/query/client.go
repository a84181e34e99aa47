package query

import (
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/x/marketplace/types"
)

// Client interface
type Client interface {
	Orders() (Orders, error)
	Order(id types.OrderID) (Order, error)
	Price(id types.OrderID) (CurrentPrice, error)
	Asset(assetID string) (AssetOrders, error)
	Seller(seller sdk.AccAddress) (SellerOrders, error)
}

// NewClient creates a client instance with provided context and key
func NewClient(ctx client.Context, key string) Client {
	return &qclient{raw: NewRawClient(ctx, key)}
}

type qclient struct {
	raw RawClient
}

func (c *qclient) Orders() (Orders, error) {
	var obj Orders
	buf, err := c.raw.Orders()
	if err != nil {
		return obj, err
	}
	return obj, types.ModuleCdc.UnmarshalJSON(buf, &obj)
}

func (c *qclient) Order(id types.OrderID) (Order, error) {
	var obj Order
	buf, err := c.raw.Order(id)
	if err != nil {
		return obj, err
	}
	return obj, types.ModuleCdc.UnmarshalJSON(buf, &obj)
}

func (c *qclient) Price(id types.OrderID) (CurrentPrice, error) {
	var obj CurrentPrice
	buf, err := c.raw.Price(id)
	if err != nil {
		return obj, err
	}
	return obj, types.ModuleCdc.UnmarshalJSON(buf, &obj)
}

func (c *qclient) Asset(assetID string) (AssetOrders, error) {
	var obj AssetOrders
	buf, err := c.raw.Asset(assetID)
	if err != nil {
		return obj, err
	}
	return obj, types.ModuleCdc.UnmarshalJSON(buf, &obj)
}

func (c *qclient) Seller(seller sdk.AccAddress) (SellerOrders, error) {
	var obj SellerOrders
	buf, err := c.raw.Seller(seller)
	if err != nil {
		return obj, err
	}
	return obj, types.ModuleCdc.UnmarshalJSON(buf, &obj)
}
