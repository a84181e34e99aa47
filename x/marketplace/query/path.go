package query

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/x/marketplace/types"
)

const (
	ordersPath = "orders"
	orderPath  = "order"
	pricePath  = "price"
	assetPath  = "asset"
	sellerPath = "seller"
)

// OrdersPath returns orders path for queries
func OrdersPath() string {
	return ordersPath
}

// OrderPath return order path of given order id for queries
func OrderPath(id types.OrderID) string {
	return fmt.Sprintf("%s/%s", orderPath, id)
}

// PricePath returns the current price path of given order id for queries
func PricePath(id types.OrderID) string {
	return fmt.Sprintf("%s/%s", pricePath, id)
}

// AssetPath returns the listing history path of given asset for queries
func AssetPath(assetID string) string {
	return fmt.Sprintf("%s/%s", assetPath, assetID)
}

// SellerPath returns the listing history path of given seller for queries
func SellerPath(seller sdk.AccAddress) string {
	return fmt.Sprintf("%s/%s", sellerPath, seller)
}

// ParseOrderPath returns an order id from the given path parts, and an
// error if the path is malformed
func ParseOrderPath(parts []string) (types.OrderID, error) {
	if len(parts) < 1 {
		return "", fmt.Errorf("invalid path")
	}

	id := types.OrderID(parts[0])
	if err := id.Validate(); err != nil {
		return "", err
	}

	return id, nil
}

// ParseAssetPath returns an asset id from the given path parts
func ParseAssetPath(parts []string) (string, error) {
	if len(parts) < 1 || len(parts[0]) == 0 {
		return "", fmt.Errorf("invalid path")
	}

	return parts[0], nil
}

// ParseSellerPath returns a seller address from the given path parts
func ParseSellerPath(parts []string) (sdk.AccAddress, error) {
	if len(parts) < 1 {
		return nil, fmt.Errorf("invalid path")
	}

	return sdk.AccAddressFromBech32(parts[0])
}
