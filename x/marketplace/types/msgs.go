package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	msgTypeCreateOrder  = "create-order"
	msgTypeCreateOrders = "create-orders"
	msgTypePlaceBid     = "place-bid"
	msgTypeCancelBid    = "cancel-bid"
	msgTypeBuyNow       = "buy-now"
	msgTypeClaim        = "claim"
	msgTypeClaims       = "claims"
	msgTypeCancelOrder  = "cancel-order"
	msgTypeCancelOrders = "cancel-orders"
)

// MsgCreateOrder defines an SDK message for listing one asset
type MsgCreateOrder struct {
	Seller       sdk.AccAddress `json:"seller"`
	AssetID      string         `json:"asset_id"`
	OrderType    OrderType      `json:"order_type"`
	StartPrice   sdk.Coin       `json:"start_price"`
	EndPrice     sdk.Coin       `json:"end_price"`
	EndHeight    int64          `json:"end_height"`
	AllowSniping bool           `json:"allow_sniping"`
}

// Route implements the sdk.Msg interface
func (msg MsgCreateOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreateOrder) Type() string { return msgTypeCreateOrder }

// GetSignBytes encodes the message for signing
func (msg MsgCreateOrder) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgCreateOrder) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic does stateless validation of the listing
func (msg MsgCreateOrder) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgCreateOrder: invalid seller")
	}
	return validateListing(msg.AssetID, msg.OrderType, msg.StartPrice, msg.EndPrice, msg.EndHeight)
}

// MsgCreateOrders defines an SDK message for listing several assets under
// shared type, prices and expiry
type MsgCreateOrders struct {
	Seller       sdk.AccAddress `json:"seller"`
	AssetIDs     []string       `json:"asset_ids"`
	OrderType    OrderType      `json:"order_type"`
	StartPrice   sdk.Coin       `json:"start_price"`
	EndPrice     sdk.Coin       `json:"end_price"`
	EndHeight    int64          `json:"end_height"`
	AllowSniping bool           `json:"allow_sniping"`
}

// Route implements the sdk.Msg interface
func (msg MsgCreateOrders) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreateOrders) Type() string { return msgTypeCreateOrders }

// GetSignBytes encodes the message for signing
func (msg MsgCreateOrders) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgCreateOrders) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic does stateless validation of the bulk listing
func (msg MsgCreateOrders) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgCreateOrders: invalid seller")
	}
	if len(msg.AssetIDs) == 0 {
		return ErrEmptyAssetList
	}
	for _, assetID := range msg.AssetIDs {
		if err := validateListing(assetID, msg.OrderType, msg.StartPrice, msg.EndPrice, msg.EndHeight); err != nil {
			return err
		}
	}
	return nil
}

// MsgPlaceBid defines an SDK message for bidding on an english order
type MsgPlaceBid struct {
	Bidder  sdk.AccAddress `json:"bidder"`
	OrderID OrderID        `json:"order_id"`
	Price   sdk.Coin       `json:"price"`
}

// Route implements the sdk.Msg interface
func (msg MsgPlaceBid) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgPlaceBid) Type() string { return msgTypePlaceBid }

// GetSignBytes encodes the message for signing
func (msg MsgPlaceBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgPlaceBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic does stateless validation of the bid
func (msg MsgPlaceBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgPlaceBid: invalid bidder")
	}
	if err := msg.OrderID.Validate(); err != nil {
		return err
	}
	if !msg.Price.IsValid() || msg.Price.IsZero() {
		return ErrInvalidPrice
	}
	return nil
}

// MsgCancelBid defines an SDK message for withdrawing the leading bid
type MsgCancelBid struct {
	Bidder  sdk.AccAddress `json:"bidder"`
	OrderID OrderID        `json:"order_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgCancelBid) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelBid) Type() string { return msgTypeCancelBid }

// GetSignBytes encodes the message for signing
func (msg MsgCancelBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgCancelBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic method for MsgCancelBid
func (msg MsgCancelBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgCancelBid: invalid bidder")
	}
	return msg.OrderID.Validate()
}

// MsgBuyNow defines an SDK message for settling a fixed price or dutch
// order at its current price
type MsgBuyNow struct {
	Buyer   sdk.AccAddress `json:"buyer"`
	OrderID OrderID        `json:"order_id"`
	Payment sdk.Coin       `json:"payment"`
}

// Route implements the sdk.Msg interface
func (msg MsgBuyNow) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgBuyNow) Type() string { return msgTypeBuyNow }

// GetSignBytes encodes the message for signing
func (msg MsgBuyNow) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgBuyNow) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Buyer}
}

// ValidateBasic does stateless validation of the purchase
func (msg MsgBuyNow) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Buyer); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgBuyNow: invalid buyer")
	}
	if err := msg.OrderID.Validate(); err != nil {
		return err
	}
	if !msg.Payment.IsValid() || msg.Payment.IsZero() {
		return ErrInvalidPrice
	}
	return nil
}

// MsgClaim defines an SDK message for settling an english auction
type MsgClaim struct {
	Sender  sdk.AccAddress `json:"sender"`
	OrderID OrderID        `json:"order_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgClaim) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaim) Type() string { return msgTypeClaim }

// GetSignBytes encodes the message for signing
func (msg MsgClaim) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgClaim) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}

// ValidateBasic method for MsgClaim
func (msg MsgClaim) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgClaim: invalid sender")
	}
	return msg.OrderID.Validate()
}

// MsgClaims defines an SDK message for settling several english auctions,
// aborting on the first failure
type MsgClaims struct {
	Sender   sdk.AccAddress `json:"sender"`
	OrderIDs []OrderID      `json:"order_ids"`
}

// Route implements the sdk.Msg interface
func (msg MsgClaims) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaims) Type() string { return msgTypeClaims }

// GetSignBytes encodes the message for signing
func (msg MsgClaims) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgClaims) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}

// ValidateBasic method for MsgClaims
func (msg MsgClaims) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgClaims: invalid sender")
	}
	if len(msg.OrderIDs) == 0 {
		return ErrEmptyOrderList
	}
	for _, id := range msg.OrderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MsgCancelOrder defines an SDK message for cancelling a listing
type MsgCancelOrder struct {
	Seller  sdk.AccAddress `json:"seller"`
	OrderID OrderID        `json:"order_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgCancelOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelOrder) Type() string { return msgTypeCancelOrder }

// GetSignBytes encodes the message for signing
func (msg MsgCancelOrder) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgCancelOrder) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic method for MsgCancelOrder
func (msg MsgCancelOrder) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgCancelOrder: invalid seller")
	}
	return msg.OrderID.Validate()
}

// MsgCancelOrders defines an SDK message for cancelling several listings,
// aborting on the first failure
type MsgCancelOrders struct {
	Seller   sdk.AccAddress `json:"seller"`
	OrderIDs []OrderID      `json:"order_ids"`
}

// Route implements the sdk.Msg interface
func (msg MsgCancelOrders) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelOrders) Type() string { return msgTypeCancelOrders }

// GetSignBytes encodes the message for signing
func (msg MsgCancelOrders) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgCancelOrders) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic method for MsgCancelOrders
func (msg MsgCancelOrders) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "MsgCancelOrders: invalid seller")
	}
	if len(msg.OrderIDs) == 0 {
		return ErrEmptyOrderList
	}
	for _, id := range msg.OrderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateListing checks the height independent listing constraints shared
// by single and bulk listing messages.
func validateListing(assetID string, otype OrderType, startPrice, endPrice sdk.Coin, endHeight int64) error {
	if len(assetID) == 0 {
		return ErrInvalidAsset
	}
	if err := otype.Validate(); err != nil {
		return err
	}
	if !startPrice.IsValid() || startPrice.IsZero() {
		return ErrInvalidPrice
	}
	switch otype {
	case OrderDutch:
		if !endPrice.IsValid() || endPrice.Denom != startPrice.Denom {
			return ErrInvalidPrice
		}
		if !startPrice.Amount.GT(endPrice.Amount) {
			return ErrInvalidPrice
		}
		if endHeight == 0 {
			return ErrInvalidEndHeight
		}
	default:
		if endHeight < 0 {
			return ErrInvalidEndHeight
		}
	}
	return nil
}
