package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"gopkg.in/yaml.v3"
)

// OrderType is the pricing mechanism of an order
type OrderType uint32

const (
	// OrderFixedPrice sells at a constant price
	OrderFixedPrice OrderType = iota + 1
	// OrderDutch decays linearly from start price to end price
	OrderDutch
	// OrderEnglish is an ascending auction settled by claim
	OrderEnglish
)

// minBidIncrement is the divisor of the 5% strict bid increment:
// next bid >= last bid + last bid / 20, remainder truncated.
const minBidIncrement = 20

// Validate returns an error for an unknown order type
func (t OrderType) Validate() error {
	switch t {
	case OrderFixedPrice, OrderDutch, OrderEnglish:
		return nil
	}
	return ErrInvalidOrderType
}

// String implements the Stringer interface for an OrderType object.
func (t OrderType) String() string {
	switch t {
	case OrderFixedPrice:
		return "fixed-price"
	case OrderDutch:
		return "dutch"
	case OrderEnglish:
		return "english"
	}
	return "unknown"
}

// ParseOrderType returns the OrderType for its string representation
func ParseOrderType(val string) (OrderType, error) {
	switch val {
	case "fixed-price":
		return OrderFixedPrice, nil
	case "dutch":
		return OrderDutch, nil
	case "english":
		return OrderEnglish, nil
	}
	return 0, ErrInvalidOrderType
}

// Order is a single listing of one escrowed asset under one pricing
// mechanism. An order reaches a terminal state exactly once, via claim,
// buy or cancel, and is never deleted.
type Order struct {
	ID           OrderID        `json:"id"`
	OrderType    OrderType      `json:"order_type"`
	Seller       sdk.AccAddress `json:"seller"`
	AssetID      string         `json:"asset_id"`
	StartPrice   sdk.Coin       `json:"start_price"`
	EndPrice     sdk.Coin       `json:"end_price"`
	StartHeight  int64          `json:"start_height"`
	EndHeight    int64          `json:"end_height"`
	LastBidder   sdk.AccAddress `json:"last_bidder"`
	LastBidPrice sdk.Coin       `json:"last_bid_price"`
	IsSold       bool           `json:"is_sold"`
	IsCancelled  bool           `json:"is_cancelled"`
	AllowSniping bool           `json:"allow_sniping"`
}

// String implements the Stringer interface for a Order object.
func (o Order) String() string {
	out, _ := yaml.Marshal(o)
	return string(out)
}

// Orders is a collection of Order
type Orders []Order

// String implements the Stringer interface for a Orders object.
func (o Orders) String() string {
	var out string
	for _, order := range o {
		out += order.String() + "\n"
	}

	return strings.TrimSpace(out)
}

// ValidateLive returns an error if the order reached a terminal state
func (o Order) ValidateLive() error {
	if o.IsSold {
		return ErrOrderSold
	}
	if o.IsCancelled {
		return ErrOrderCancelled
	}
	return nil
}

// Expired reports whether the expiry height, if any, has passed
func (o Order) Expired(height int64) bool {
	return o.EndHeight != 0 && height > o.EndHeight
}

// HasBid reports whether a leading bid is recorded
func (o Order) HasBid() bool {
	return !o.LastBidPrice.Amount.IsNil() && o.LastBidPrice.Amount.IsPositive()
}

// CurrentPrice returns the acquirable price of the order at the given
// height. Dutch prices decay by a truncating per-block rate and clamp to
// the end price at and past the end height.
func (o Order) CurrentPrice(height int64) sdk.Coin {
	switch o.OrderType {
	case OrderDutch:
		if height >= o.EndHeight {
			return o.EndPrice
		}
		elapsed := height - o.StartHeight
		if elapsed < 0 {
			elapsed = 0
		}
		rate := o.StartPrice.Amount.Sub(o.EndPrice.Amount).QuoRaw(o.EndHeight - o.StartHeight)
		return sdk.NewCoin(o.StartPrice.Denom, o.StartPrice.Amount.Sub(rate.MulRaw(elapsed)))
	case OrderEnglish:
		if o.HasBid() {
			return o.LastBidPrice
		}
		return o.StartPrice
	default:
		return o.StartPrice
	}
}

// MinBidPrice returns the lowest acceptable next bid: the start price when
// no bid stands, otherwise the last bid plus its truncated 5% increment.
func (o Order) MinBidPrice() sdk.Coin {
	if o.HasBid() {
		inc := o.LastBidPrice.Amount.QuoRaw(minBidIncrement)
		return sdk.NewCoin(o.LastBidPrice.Denom, o.LastBidPrice.Amount.Add(inc))
	}
	return o.StartPrice
}

// Validate checks the internal consistency of an order record
func (o Order) Validate() error {
	if err := o.ID.Validate(); err != nil {
		return err
	}
	if err := o.OrderType.Validate(); err != nil {
		return err
	}
	if err := sdk.VerifyAddressFormat(o.Seller); err != nil {
		return sdkerrors.Wrap(ErrInvalidAsset, "order: invalid seller address")
	}
	if len(o.AssetID) == 0 {
		return ErrInvalidAsset
	}
	if !o.StartPrice.IsValid() || o.StartPrice.IsZero() {
		return ErrInvalidPrice
	}
	if o.IsSold && o.IsCancelled {
		return sdkerrors.Wrap(ErrInternal, "order: sold and cancelled")
	}
	switch o.OrderType {
	case OrderDutch:
		if !o.EndPrice.IsValid() || o.EndPrice.Denom != o.StartPrice.Denom {
			return ErrInvalidPrice
		}
		if !o.StartPrice.Amount.GT(o.EndPrice.Amount) {
			return ErrInvalidPrice
		}
		if o.EndHeight <= o.StartHeight {
			return ErrInvalidEndHeight
		}
	default:
		if o.EndHeight != 0 && o.EndHeight <= o.StartHeight {
			return ErrInvalidEndHeight
		}
	}
	return nil
}
