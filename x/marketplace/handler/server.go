package handler

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/x/marketplace/types"
)

// MsgServer is the settlement surface of the marketplace module
type MsgServer interface {
	CreateOrder(ctx sdk.Context, msg *types.MsgCreateOrder) (*sdk.Result, error)
	CreateOrders(ctx sdk.Context, msg *types.MsgCreateOrders) (*sdk.Result, error)
	PlaceBid(ctx sdk.Context, msg *types.MsgPlaceBid) (*sdk.Result, error)
	CancelBid(ctx sdk.Context, msg *types.MsgCancelBid) (*sdk.Result, error)
	BuyNow(ctx sdk.Context, msg *types.MsgBuyNow) (*sdk.Result, error)
	Claim(ctx sdk.Context, msg *types.MsgClaim) (*sdk.Result, error)
	Claims(ctx sdk.Context, msg *types.MsgClaims) (*sdk.Result, error)
	CancelOrder(ctx sdk.Context, msg *types.MsgCancelOrder) (*sdk.Result, error)
	CancelOrders(ctx sdk.Context, msg *types.MsgCancelOrders) (*sdk.Result, error)
}

type msgServer struct {
	keepers Keepers
}

// NewMsgServerImpl returns an implementation of the marketplace MsgServer
// interface for the provided keepers.
func NewMsgServerImpl(k Keepers) MsgServer {
	return msgServer{keepers: k}
}

var _ MsgServer = msgServer{}

func (ms msgServer) CreateOrder(ctx sdk.Context, msg *types.MsgCreateOrder) (*sdk.Result, error) {
	params := ms.keepers.Marketplace.GetParams(ctx)
	if !params.MarketEnabled {
		return nil, types.ErrMarketDisabled
	}

	listing := listingSpec{
		orderType:    msg.OrderType,
		startPrice:   msg.StartPrice,
		endPrice:     msg.EndPrice,
		endHeight:    msg.EndHeight,
		allowSniping: msg.AllowSniping,
	}

	if err := ms.validateListing(ctx, listing); err != nil {
		return nil, err
	}

	if err := ms.executeListing(ctx, msg.Seller, msg.AssetID, listing); err != nil {
		return nil, err
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) CreateOrders(ctx sdk.Context, msg *types.MsgCreateOrders) (*sdk.Result, error) {
	params := ms.keepers.Marketplace.GetParams(ctx)
	if !params.MarketEnabled {
		return nil, types.ErrMarketDisabled
	}

	if len(msg.AssetIDs) == 0 {
		return nil, types.ErrEmptyAssetList
	}

	listing := listingSpec{
		orderType:    msg.OrderType,
		startPrice:   msg.StartPrice,
		endPrice:     msg.EndPrice,
		endHeight:    msg.EndHeight,
		allowSniping: msg.AllowSniping,
	}

	if err := ms.validateListing(ctx, listing); err != nil {
		return nil, err
	}

	// Elements are independent: an asset that cannot be listed (already
	// escrowed in the same height, say) is skipped rather than failing the
	// siblings. A failed custody pull still aborts the whole call since the
	// order record was already written for that element.
	for _, assetID := range msg.AssetIDs {
		id := types.MakeOrderID(ctx.BlockHeight(), assetID, msg.Seller)
		if _, found := ms.keepers.Marketplace.GetOrder(ctx, id); found {
			ctx.Logger().Info("skipping listing, order exists", "asset", assetID)
			continue
		}

		if err := ms.executeListing(ctx, msg.Seller, assetID, listing); err != nil {
			return nil, err
		}
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) PlaceBid(ctx sdk.Context, msg *types.MsgPlaceBid) (*sdk.Result, error) {
	params := ms.keepers.Marketplace.GetParams(ctx)
	if !params.MarketEnabled {
		return nil, types.ErrMarketDisabled
	}

	order, found := ms.keepers.Marketplace.GetOrder(ctx, msg.OrderID)
	if !found {
		return nil, types.ErrOrderNotFound
	}

	if order.OrderType != types.OrderEnglish {
		return nil, types.ErrInvalidOrderType
	}

	if err := order.ValidateLive(); err != nil {
		return nil, err
	}

	if msg.Bidder.Equals(order.Seller) {
		return nil, types.ErrOwnOrder
	}

	height := ctx.BlockHeight()
	if order.Expired(height) {
		return nil, types.ErrOrderExpired
	}

	if msg.Price.Denom != order.StartPrice.Denom {
		return nil, types.ErrInvalidPrice
	}

	if msg.Price.Amount.LT(order.MinBidPrice().Amount) {
		return nil, types.ErrBidTooLow
	}

	prevBidder := order.LastBidder
	prevPrice := order.LastBidPrice
	hadBid := order.HasBid()

	if order.EndHeight != 0 && !order.AllowSniping &&
		height > order.EndHeight-params.SnipeWindowBlocks() {
		order = ms.keepers.Marketplace.OnOrderExtended(ctx, order, order.EndHeight+params.ExtensionBlocks())
	}

	// the leading bid is recorded before any funds move: a re-entrant call
	// triggered by a transfer sees the new bid and cannot double-refund
	order = ms.keepers.Marketplace.OnBidPlaced(ctx, order, msg.Bidder, msg.Price)

	if err := ms.keepers.Bank.SendCoinsFromAccountToModule(ctx, msg.Bidder, types.ModuleName, sdk.NewCoins(msg.Price)); err != nil {
		return nil, err
	}

	if hadBid {
		if err := ms.keepers.Bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, prevBidder, sdk.NewCoins(prevPrice)); err != nil {
			return nil, err
		}
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) CancelBid(ctx sdk.Context, msg *types.MsgCancelBid) (*sdk.Result, error) {
	order, found := ms.keepers.Marketplace.GetOrder(ctx, msg.OrderID)
	if !found {
		return nil, types.ErrOrderNotFound
	}

	if order.OrderType != types.OrderEnglish {
		return nil, types.ErrInvalidOrderType
	}

	if err := order.ValidateLive(); err != nil {
		return nil, err
	}

	if !order.HasBid() {
		return nil, types.ErrBidNotFound
	}

	if !msg.Bidder.Equals(order.LastBidder) {
		return nil, types.ErrNotBidder
	}

	price := order.LastBidPrice

	ms.keepers.Marketplace.OnBidCancelled(ctx, order)

	if err := ms.keepers.Bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, msg.Bidder, sdk.NewCoins(price)); err != nil {
		return nil, err
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) BuyNow(ctx sdk.Context, msg *types.MsgBuyNow) (*sdk.Result, error) {
	params := ms.keepers.Marketplace.GetParams(ctx)
	if !params.MarketEnabled {
		return nil, types.ErrMarketDisabled
	}

	order, found := ms.keepers.Marketplace.GetOrder(ctx, msg.OrderID)
	if !found {
		return nil, types.ErrOrderNotFound
	}

	if order.OrderType == types.OrderEnglish {
		return nil, types.ErrInvalidOrderType
	}

	if err := order.ValidateLive(); err != nil {
		return nil, err
	}

	height := ctx.BlockHeight()
	if order.Expired(height) {
		return nil, types.ErrOrderExpired
	}

	price := order.CurrentPrice(height)

	if msg.Payment.Denom != price.Denom {
		return nil, types.ErrInvalidPrice
	}

	if msg.Payment.Amount.LT(price.Amount) {
		return nil, types.ErrInsufficientPayment
	}

	proceeds, fee := types.SplitSettlement(price, params.FeeBps)

	// sold flag first: a repeated settlement attempt re-entering through a
	// transfer hits ErrOrderSold
	ms.keepers.Marketplace.OnOrderSold(ctx, order, msg.Buyer, price, fee)

	if err := ms.keepers.Bank.SendCoinsFromAccountToModule(ctx, msg.Buyer, types.ModuleName, sdk.NewCoins(msg.Payment)); err != nil {
		return nil, err
	}

	if err := ms.paySettlement(ctx, order.Seller, proceeds, params.FeeAddress, fee); err != nil {
		return nil, err
	}

	if overpaid := msg.Payment.Sub(price); overpaid.IsPositive() {
		if err := ms.keepers.Bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, msg.Buyer, sdk.NewCoins(overpaid)); err != nil {
			return nil, err
		}
	}

	if err := ms.keepers.Asset.Transfer(ctx, types.EscrowAddress, msg.Buyer, order.AssetID); err != nil {
		return nil, err
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) Claim(ctx sdk.Context, msg *types.MsgClaim) (*sdk.Result, error) {
	if err := ms.claimOrder(ctx, msg.Sender, msg.OrderID); err != nil {
		return nil, err
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) Claims(ctx sdk.Context, msg *types.MsgClaims) (*sdk.Result, error) {
	if len(msg.OrderIDs) == 0 {
		return nil, types.ErrEmptyOrderList
	}

	for _, id := range msg.OrderIDs {
		if err := ms.claimOrder(ctx, msg.Sender, id); err != nil {
			return nil, err
		}
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) CancelOrder(ctx sdk.Context, msg *types.MsgCancelOrder) (*sdk.Result, error) {
	if err := ms.cancelOrder(ctx, msg.Seller, msg.OrderID); err != nil {
		return nil, err
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func (ms msgServer) CancelOrders(ctx sdk.Context, msg *types.MsgCancelOrders) (*sdk.Result, error) {
	if len(msg.OrderIDs) == 0 {
		return nil, types.ErrEmptyOrderList
	}

	for _, id := range msg.OrderIDs {
		if err := ms.cancelOrder(ctx, msg.Seller, id); err != nil {
			return nil, err
		}
	}

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

// listingSpec carries the shared listing terms of single and bulk creation
type listingSpec struct {
	orderType    types.OrderType
	startPrice   sdk.Coin
	endPrice     sdk.Coin
	endHeight    int64
	allowSniping bool
}

// validateListing checks the height dependent listing constraints
func (ms msgServer) validateListing(ctx sdk.Context, listing listingSpec) error {
	height := ctx.BlockHeight()

	switch listing.orderType {
	case types.OrderDutch:
		if listing.endHeight <= height {
			return types.ErrInvalidEndHeight
		}
		if !listing.startPrice.Amount.GT(listing.endPrice.Amount) {
			return types.ErrInvalidPrice
		}
	default:
		// perpetual listing permitted for non-dutch orders
		if listing.endHeight != 0 && listing.endHeight <= height {
			return types.ErrInvalidEndHeight
		}
	}

	return nil
}

// executeListing writes the order record and pulls asset custody into escrow
func (ms msgServer) executeListing(ctx sdk.Context, seller sdk.AccAddress, assetID string, listing listingSpec) error {
	zero := sdk.NewCoin(listing.startPrice.Denom, sdk.ZeroInt())

	endPrice := listing.endPrice
	if listing.orderType != types.OrderDutch {
		endPrice = zero
	}

	order := types.Order{
		ID:           types.MakeOrderID(ctx.BlockHeight(), assetID, seller),
		OrderType:    listing.orderType,
		Seller:       seller,
		AssetID:      assetID,
		StartPrice:   listing.startPrice,
		EndPrice:     endPrice,
		StartHeight:  ctx.BlockHeight(),
		EndHeight:    listing.endHeight,
		LastBidPrice: zero,
		AllowSniping: listing.allowSniping,
	}

	if err := ms.keepers.Marketplace.CreateOrder(ctx, order); err != nil {
		return err
	}

	return ms.keepers.Asset.Transfer(ctx, seller, types.EscrowAddress, assetID)
}

// claimOrder settles a single english auction for the given sender
func (ms msgServer) claimOrder(ctx sdk.Context, sender sdk.AccAddress, id types.OrderID) error {
	params := ms.keepers.Marketplace.GetParams(ctx)

	order, found := ms.keepers.Marketplace.GetOrder(ctx, id)
	if !found {
		return types.ErrOrderNotFound
	}

	if order.OrderType != types.OrderEnglish {
		return types.ErrInvalidOrderType
	}

	if err := order.ValidateLive(); err != nil {
		return err
	}

	if !order.HasBid() {
		return types.ErrBidNotFound
	}

	if order.EndHeight == 0 {
		// open ended auction: the seller decides when to settle
		if !sender.Equals(order.Seller) {
			return types.ErrNotSeller
		}
	} else {
		if !sender.Equals(order.Seller) && !sender.Equals(order.LastBidder) {
			return types.ErrUnauthorized
		}
		if ctx.BlockHeight() <= order.EndHeight {
			return types.ErrAuctionNotEnded
		}
	}

	winner := order.LastBidder
	price := order.LastBidPrice
	proceeds, fee := types.SplitSettlement(price, params.FeeBps)

	ms.keepers.Marketplace.OnOrderSold(ctx, order, winner, price, fee)

	if err := ms.paySettlement(ctx, order.Seller, proceeds, params.FeeAddress, fee); err != nil {
		return err
	}

	return ms.keepers.Asset.Transfer(ctx, types.EscrowAddress, winner, order.AssetID)
}

// cancelOrder withdraws a listing, refunding any standing bid
func (ms msgServer) cancelOrder(ctx sdk.Context, seller sdk.AccAddress, id types.OrderID) error {
	order, found := ms.keepers.Marketplace.GetOrder(ctx, id)
	if !found {
		return types.ErrOrderNotFound
	}

	if !seller.Equals(order.Seller) {
		return types.ErrNotSeller
	}

	if err := order.ValidateLive(); err != nil {
		return err
	}

	prevBidder := order.LastBidder
	prevPrice := order.LastBidPrice
	hadBid := order.HasBid()

	ms.keepers.Marketplace.OnOrderCancelled(ctx, order)

	if hadBid {
		if err := ms.keepers.Bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, prevBidder, sdk.NewCoins(prevPrice)); err != nil {
			return err
		}
	}

	return ms.keepers.Asset.Transfer(ctx, types.EscrowAddress, seller, order.AssetID)
}

// paySettlement releases escrowed settlement funds to the seller and the
// platform fee address.
func (ms msgServer) paySettlement(ctx sdk.Context, seller sdk.AccAddress, proceeds sdk.Coin, feeAddress sdk.AccAddress, fee sdk.Coin) error {
	if proceeds.IsPositive() {
		if err := ms.keepers.Bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, seller, sdk.NewCoins(proceeds)); err != nil {
			return err
		}
	}

	if fee.IsPositive() {
		if err := ms.keepers.Bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, feeAddress, sdk.NewCoins(fee)); err != nil {
			return err
		}
	}

	return nil
}
