package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	// ErrMarketDisabled is the error when the market is not enabled
	ErrMarketDisabled = sdkerrors.Register(ModuleName, 1, "market is disabled")
	// ErrInvalidOrderType is the error for an unknown or mismatched order type
	ErrInvalidOrderType = sdkerrors.Register(ModuleName, 2, "invalid order type")
	// ErrInvalidPrice is the error for malformed start/end prices
	ErrInvalidPrice = sdkerrors.Register(ModuleName, 3, "invalid price")
	// ErrInvalidEndHeight is the error for a non-future or missing end height
	ErrInvalidEndHeight = sdkerrors.Register(ModuleName, 4, "invalid end height")
	// ErrInvalidAsset is the error for a malformed asset id
	ErrInvalidAsset = sdkerrors.Register(ModuleName, 5, "invalid asset id")
	// ErrOrderExists is the error when an order with the same id exists
	ErrOrderExists = sdkerrors.Register(ModuleName, 6, "order already exists")
	// ErrOrderNotFound order not found
	ErrOrderNotFound = sdkerrors.Register(ModuleName, 7, "order not found")
	// ErrOrderSold is the error when the order was already settled
	ErrOrderSold = sdkerrors.Register(ModuleName, 8, "order already sold")
	// ErrOrderCancelled is the error when the order was cancelled
	ErrOrderCancelled = sdkerrors.Register(ModuleName, 9, "order already cancelled")
	// ErrOrderExpired is the error when the order expiry height has passed
	ErrOrderExpired = sdkerrors.Register(ModuleName, 10, "order expired")
	// ErrAuctionNotEnded is the error when claiming before the expiry height
	ErrAuctionNotEnded = sdkerrors.Register(ModuleName, 11, "auction not ended")
	// ErrBidTooLow is the error when a bid is below the minimum bid price
	ErrBidTooLow = sdkerrors.Register(ModuleName, 12, "bid price too low")
	// ErrBidNotFound is the error when no standing bid exists
	ErrBidNotFound = sdkerrors.Register(ModuleName, 13, "bid not found")
	// ErrOwnOrder is the error when the seller bids on its own order
	ErrOwnOrder = sdkerrors.Register(ModuleName, 14, "cannot bid on own order")
	// ErrNotSeller is the error when the caller is not the order seller
	ErrNotSeller = sdkerrors.Register(ModuleName, 15, "not order seller")
	// ErrNotBidder is the error when the caller is not the leading bidder
	ErrNotBidder = sdkerrors.Register(ModuleName, 16, "not leading bidder")
	// ErrUnauthorized is the error when the caller may not claim the order
	ErrUnauthorized = sdkerrors.Register(ModuleName, 17, "unauthorized")
	// ErrInsufficientPayment is the error when the payment does not cover the price
	ErrInsufficientPayment = sdkerrors.Register(ModuleName, 18, "insufficient payment")
	// ErrEmptyAssetList is the error for a bulk listing with no assets
	ErrEmptyAssetList = sdkerrors.Register(ModuleName, 19, "empty asset list")
	// ErrEmptyOrderList is the error for a bulk claim/cancel with no orders
	ErrEmptyOrderList = sdkerrors.Register(ModuleName, 20, "empty order list")
	// ErrInternal is the error for internal error
	ErrInternal = sdkerrors.Register(ModuleName, 21, "internal error")
)
