package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/sdkutil"
)

const (
	evActionOrderCreated   = "order-created"
	evActionOrderExtended  = "order-extended"
	evActionBidPlaced      = "bid-placed"
	evActionBidCancelled   = "bid-cancelled"
	evActionOrderSold      = "order-sold"
	evActionOrderCancelled = "order-cancelled"

	evOrderIDKey     = "order-id"
	evSellerKey      = "seller"
	evAssetIDKey     = "asset-id"
	evOrderTypeKey   = "order-type"
	evBidderKey      = "bidder"
	evBuyerKey       = "buyer"
	evEndHeightKey   = "end-height"
	evPriceDenomKey  = "price-denom"
	evPriceAmountKey = "price-amount"
	evFeeAmountKey   = "fee-amount"
)

// EventOrderCreated is emitted when an asset is listed
type EventOrderCreated struct {
	ID        OrderID
	Seller    sdk.AccAddress
	AssetID   string
	OrderType OrderType
	Price     sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventOrderCreated struct
func (e EventOrderCreated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, evActionOrderCreated),
			sdk.NewAttribute(evSellerKey, e.Seller.String()),
			sdk.NewAttribute(evAssetIDKey, e.AssetID),
			sdk.NewAttribute(evOrderTypeKey, e.OrderType.String()),
		}, append(orderIDEVAttributes(e.ID), priceEVAttributes(e.Price)...)...)...,
	)
}

// EventOrderExtended is emitted when a late bid pushes the expiry forward
type EventOrderExtended struct {
	ID        OrderID
	EndHeight int64
}

// ToSDKEvent method creates new sdk event for EventOrderExtended struct
func (e EventOrderExtended) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, evActionOrderExtended),
			sdk.NewAttribute(evEndHeightKey, strconv.FormatInt(e.EndHeight, 10)),
		}, orderIDEVAttributes(e.ID)...)...,
	)
}

// EventBidPlaced is emitted when a bid becomes the leading bid
type EventBidPlaced struct {
	ID     OrderID
	Bidder sdk.AccAddress
	Price  sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventBidPlaced struct
func (e EventBidPlaced) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, evActionBidPlaced),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
		}, append(orderIDEVAttributes(e.ID), priceEVAttributes(e.Price)...)...)...,
	)
}

// EventBidCancelled is emitted when the leading bidder withdraws
type EventBidCancelled struct {
	ID     OrderID
	Bidder sdk.AccAddress
	Price  sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventBidCancelled struct
func (e EventBidCancelled) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, evActionBidCancelled),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
		}, append(orderIDEVAttributes(e.ID), priceEVAttributes(e.Price)...)...)...,
	)
}

// EventOrderSold is emitted on settlement via buy or claim
type EventOrderSold struct {
	ID    OrderID
	Buyer sdk.AccAddress
	Price sdk.Coin
	Fee   sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventOrderSold struct
func (e EventOrderSold) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, evActionOrderSold),
			sdk.NewAttribute(evBuyerKey, e.Buyer.String()),
			sdk.NewAttribute(evFeeAmountKey, e.Fee.Amount.String()),
		}, append(orderIDEVAttributes(e.ID), priceEVAttributes(e.Price)...)...)...,
	)
}

// EventOrderCancelled is emitted when the seller withdraws a listing
type EventOrderCancelled struct {
	ID     OrderID
	Seller sdk.AccAddress
}

// ToSDKEvent method creates new sdk event for EventOrderCancelled struct
func (e EventOrderCancelled) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append([]sdk.Attribute{
			sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
			sdk.NewAttribute(sdk.AttributeKeyAction, evActionOrderCancelled),
			sdk.NewAttribute(evSellerKey, e.Seller.String()),
		}, orderIDEVAttributes(e.ID)...)...,
	)
}

// orderIDEVAttributes returns event attributes for given orderID
func orderIDEVAttributes(id OrderID) []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(evOrderIDKey, id.String()),
	}
}

// parseEVOrderID returns orderID for given event attributes
func parseEVOrderID(attrs []sdk.Attribute) (OrderID, error) {
	val, err := sdkutil.GetString(attrs, evOrderIDKey)
	if err != nil {
		return "", err
	}

	id := OrderID(val)
	if err := id.Validate(); err != nil {
		return "", err
	}

	return id, nil
}

func priceEVAttributes(price sdk.Coin) []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(evPriceDenomKey, price.Denom),
		sdk.NewAttribute(evPriceAmountKey, price.Amount.String()),
	}
}

func parseEVPriceAttributes(attrs []sdk.Attribute) (sdk.Coin, error) {
	denom, err := sdkutil.GetString(attrs, evPriceDenomKey)
	if err != nil {
		return sdk.Coin{}, err
	}

	amounts, err := sdkutil.GetString(attrs, evPriceAmountKey)
	if err != nil {
		return sdk.Coin{}, err
	}

	amount, ok := sdk.NewIntFromString(amounts)
	if !ok {
		return sdk.Coin{}, ErrInvalidPrice
	}

	return sdk.NewCoin(denom, amount), nil
}

// ParseEvent parses event and returns details of event and error if occurred
func ParseEvent(ev sdkutil.Event) (sdkutil.ModuleEvent, error) {
	if ev.Type != sdkutil.EventTypeMessage {
		return nil, sdkutil.ErrUnknownType
	}
	if ev.Module != ModuleName {
		return nil, sdkutil.ErrUnknownModule
	}
	switch ev.Action {

	case evActionOrderCreated:
		id, err := parseEVOrderID(ev.Attributes)
		if err != nil {
			return nil, err
		}
		seller, err := sdkutil.GetAccAddress(ev.Attributes, evSellerKey)
		if err != nil {
			return nil, err
		}
		assetID, err := sdkutil.GetString(ev.Attributes, evAssetIDKey)
		if err != nil {
			return nil, err
		}
		otval, err := sdkutil.GetString(ev.Attributes, evOrderTypeKey)
		if err != nil {
			return nil, err
		}
		otype, err := ParseOrderType(otval)
		if err != nil {
			return nil, err
		}
		price, err := parseEVPriceAttributes(ev.Attributes)
		if err != nil {
			return nil, err
		}
		return EventOrderCreated{ID: id, Seller: seller, AssetID: assetID, OrderType: otype, Price: price}, nil

	case evActionOrderExtended:
		id, err := parseEVOrderID(ev.Attributes)
		if err != nil {
			return nil, err
		}
		endHeight, err := sdkutil.GetInt64(ev.Attributes, evEndHeightKey)
		if err != nil {
			return nil, err
		}
		return EventOrderExtended{ID: id, EndHeight: endHeight}, nil

	case evActionBidPlaced:
		id, err := parseEVOrderID(ev.Attributes)
		if err != nil {
			return nil, err
		}
		bidder, err := sdkutil.GetAccAddress(ev.Attributes, evBidderKey)
		if err != nil {
			return nil, err
		}
		price, err := parseEVPriceAttributes(ev.Attributes)
		if err != nil {
			return nil, err
		}
		return EventBidPlaced{ID: id, Bidder: bidder, Price: price}, nil

	case evActionBidCancelled:
		id, err := parseEVOrderID(ev.Attributes)
		if err != nil {
			return nil, err
		}
		bidder, err := sdkutil.GetAccAddress(ev.Attributes, evBidderKey)
		if err != nil {
			return nil, err
		}
		price, err := parseEVPriceAttributes(ev.Attributes)
		if err != nil {
			return nil, err
		}
		return EventBidCancelled{ID: id, Bidder: bidder, Price: price}, nil

	case evActionOrderSold:
		id, err := parseEVOrderID(ev.Attributes)
		if err != nil {
			return nil, err
		}
		buyer, err := sdkutil.GetAccAddress(ev.Attributes, evBuyerKey)
		if err != nil {
			return nil, err
		}
		price, err := parseEVPriceAttributes(ev.Attributes)
		if err != nil {
			return nil, err
		}
		feeval, err := sdkutil.GetString(ev.Attributes, evFeeAmountKey)
		if err != nil {
			return nil, err
		}
		fee, ok := sdk.NewIntFromString(feeval)
		if !ok {
			return nil, ErrInvalidPrice
		}
		return EventOrderSold{ID: id, Buyer: buyer, Price: price, Fee: sdk.NewCoin(price.Denom, fee)}, nil

	case evActionOrderCancelled:
		id, err := parseEVOrderID(ev.Attributes)
		if err != nil {
			return nil, err
		}
		seller, err := sdkutil.GetAccAddress(ev.Attributes, evSellerKey)
		if err != nil {
			return nil, err
		}
		return EventOrderCancelled{ID: id, Seller: seller}, nil

	default:
		return nil, sdkutil.ErrUnknownAction
	}
}
