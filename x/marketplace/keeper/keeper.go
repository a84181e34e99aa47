package keeper

import (
	"encoding/binary"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/x/marketplace/types"
)

// Keeper of the marketplace store. It owns the order ledger: the order
// records keyed by order id plus the append-only asset and seller audit
// indices. All state transitions persist before any external transfer is
// attempted by the caller.
type Keeper struct {
	cdc  *codec.LegacyAmino
	skey sdk.StoreKey
}

// NewKeeper creates and returns an instance for marketplace keeper
func NewKeeper(cdc *codec.LegacyAmino, skey sdk.StoreKey) Keeper {
	return Keeper{
		cdc:  cdc,
		skey: skey,
	}
}

// Codec returns keeper codec
func (k Keeper) Codec() *codec.LegacyAmino {
	return k.cdc
}

// StoreKey returns store key
func (k Keeper) StoreKey() sdk.StoreKey {
	return k.skey
}

// SetParams sets the marketplace parameters after validation
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.skey)
	store.Set(paramsKey, k.cdc.MustMarshalBinaryBare(params))

	return nil
}

// GetParams returns the current marketplace parameters, defaults if unset
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.skey)

	buf := store.Get(paramsKey)
	if buf == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshalBinaryBare(buf, &params)
	return params
}

// GetOrder returns order with given orderID from marketplace store
func (k Keeper) GetOrder(ctx sdk.Context, id types.OrderID) (types.Order, bool) {
	store := ctx.KVStore(k.skey)

	buf := store.Get(orderKey(id))
	if buf == nil {
		return types.Order{}, false
	}

	var order types.Order
	k.cdc.MustUnmarshalBinaryBare(buf, &order)
	return order, true
}

// CreateOrder writes a new order, appends it to the asset and seller audit
// indices and emits the creation event. The caller pulls asset custody
// afterwards; the record must exist before that external call is made.
func (k Keeper) CreateOrder(ctx sdk.Context, order types.Order) error {
	store := ctx.KVStore(k.skey)

	key := orderKey(order.ID)
	if store.Has(key) {
		return types.ErrOrderExists
	}

	store.Set(key, k.cdc.MustMarshalBinaryBare(order))
	k.appendAssetIndex(ctx, order.AssetID, order.ID)
	k.appendSellerIndex(ctx, order.Seller, order.ID)

	ctx.Logger().Info("created order", "order", order.ID, "asset", order.AssetID)

	ctx.EventManager().EmitEvent(
		types.EventOrderCreated{
			ID:        order.ID,
			Seller:    order.Seller,
			AssetID:   order.AssetID,
			OrderType: order.OrderType,
			Price:     order.StartPrice,
		}.ToSDKEvent(),
	)

	return nil
}

// SaveOrder writes an order and its index entries without emitting events.
// Used by genesis import only.
func (k Keeper) SaveOrder(ctx sdk.Context, order types.Order) {
	store := ctx.KVStore(k.skey)

	store.Set(orderKey(order.ID), k.cdc.MustMarshalBinaryBare(order))
	k.appendAssetIndex(ctx, order.AssetID, order.ID)
	k.appendSellerIndex(ctx, order.Seller, order.ID)
}

// OnBidPlaced records the new leading bid, including any expiry extension
// already applied to the order, and emits the bid event. The previous
// leading bid must be refunded by the caller only after this returns.
func (k Keeper) OnBidPlaced(ctx sdk.Context, order types.Order, bidder sdk.AccAddress, price sdk.Coin) types.Order {
	order.LastBidder = bidder
	order.LastBidPrice = price

	k.updateOrder(ctx, order)

	ctx.EventManager().EmitEvent(
		types.EventBidPlaced{
			ID:     order.ID,
			Bidder: bidder,
			Price:  price,
		}.ToSDKEvent(),
	)

	return order
}

// OnOrderExtended pushes the expiry height forward and emits the extension
// event. The order is not persisted here; the subsequent OnBidPlaced call
// persists the extended record together with the new bid.
func (k Keeper) OnOrderExtended(ctx sdk.Context, order types.Order, endHeight int64) types.Order {
	order.EndHeight = endHeight

	ctx.EventManager().EmitEvent(
		types.EventOrderExtended{
			ID:        order.ID,
			EndHeight: endHeight,
		}.ToSDKEvent(),
	)

	return order
}

// OnBidCancelled clears the leading bid state and emits the cancellation
// event. The refund transfer is performed by the caller afterwards.
func (k Keeper) OnBidCancelled(ctx sdk.Context, order types.Order) types.Order {
	bidder := order.LastBidder
	price := order.LastBidPrice

	order.LastBidder = nil
	order.LastBidPrice = sdk.NewCoin(order.StartPrice.Denom, sdk.ZeroInt())

	k.updateOrder(ctx, order)

	ctx.EventManager().EmitEvent(
		types.EventBidCancelled{
			ID:     order.ID,
			Bidder: bidder,
			Price:  price,
		}.ToSDKEvent(),
	)

	return order
}

// OnOrderSold clears the settled bid state, marks the order sold and emits
// the settlement event. Must be called before any fund or custody transfer
// so a re-entrant call observes the terminal state.
func (k Keeper) OnOrderSold(ctx sdk.Context, order types.Order, buyer sdk.AccAddress, price, fee sdk.Coin) types.Order {
	order.LastBidder = nil
	order.LastBidPrice = sdk.NewCoin(order.StartPrice.Denom, sdk.ZeroInt())
	order.IsSold = true

	k.updateOrder(ctx, order)

	ctx.Logger().Info("order sold", "order", order.ID, "buyer", buyer, "price", price)

	ctx.EventManager().EmitEvent(
		types.EventOrderSold{
			ID:    order.ID,
			Buyer: buyer,
			Price: price,
			Fee:   fee,
		}.ToSDKEvent(),
	)

	return order
}

// OnOrderCancelled clears any leading bid, marks the order cancelled and
// emits the cancellation event. Refund and custody return follow at the
// caller, after the terminal state is persisted.
func (k Keeper) OnOrderCancelled(ctx sdk.Context, order types.Order) types.Order {
	order.LastBidder = nil
	order.LastBidPrice = sdk.NewCoin(order.StartPrice.Denom, sdk.ZeroInt())
	order.IsCancelled = true

	k.updateOrder(ctx, order)

	ctx.Logger().Info("order cancelled", "order", order.ID)

	ctx.EventManager().EmitEvent(
		types.EventOrderCancelled{
			ID:     order.ID,
			Seller: order.Seller,
		}.ToSDKEvent(),
	)

	return order
}

// WithOrders iterates all orders in the marketplace
func (k Keeper) WithOrders(ctx sdk.Context, fn func(types.Order) bool) {
	store := ctx.KVStore(k.skey)
	iter := sdk.KVStorePrefixIterator(store, orderPrefix)

	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var val types.Order
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &val)
		if stop := fn(val); stop {
			break
		}
	}
}

// OrderIDsForAsset returns the listing history of an asset in insertion order
func (k Keeper) OrderIDsForAsset(ctx sdk.Context, assetID string) []types.OrderID {
	store := ctx.KVStore(k.skey)
	iter := sdk.KVStorePrefixIterator(store, assetIndexRangePrefix(assetID))

	var ids []types.OrderID

	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		ids = append(ids, types.OrderID(iter.Value()))
	}

	return ids
}

// OrderCountForAsset returns the number of listings recorded for an asset
func (k Keeper) OrderCountForAsset(ctx sdk.Context, assetID string) uint64 {
	return k.readCount(ctx, assetCountKey(assetID))
}

// OrderIDsForSeller returns the listing history of a seller in insertion order
func (k Keeper) OrderIDsForSeller(ctx sdk.Context, seller sdk.AccAddress) []types.OrderID {
	store := ctx.KVStore(k.skey)
	iter := sdk.KVStorePrefixIterator(store, sellerIndexRangePrefix(seller))

	var ids []types.OrderID

	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		ids = append(ids, types.OrderID(iter.Value()))
	}

	return ids
}

// OrderCountForSeller returns the number of listings recorded for a seller
func (k Keeper) OrderCountForSeller(ctx sdk.Context, seller sdk.AccAddress) uint64 {
	return k.readCount(ctx, sellerCountKey(seller))
}

func (k Keeper) updateOrder(ctx sdk.Context, order types.Order) {
	store := ctx.KVStore(k.skey)
	store.Set(orderKey(order.ID), k.cdc.MustMarshalBinaryBare(order))
}

// appendAssetIndex adds the order id at the next sequence position of the
// asset audit trail. Entries are never removed.
func (k Keeper) appendAssetIndex(ctx sdk.Context, assetID string, id types.OrderID) {
	store := ctx.KVStore(k.skey)

	seq := k.readCount(ctx, assetCountKey(assetID))
	store.Set(assetIndexKey(assetID, seq), id.Bytes())
	k.writeCount(ctx, assetCountKey(assetID), seq+1)
}

// appendSellerIndex adds the order id at the next sequence position of the
// seller audit trail. Entries are never removed.
func (k Keeper) appendSellerIndex(ctx sdk.Context, seller sdk.AccAddress, id types.OrderID) {
	store := ctx.KVStore(k.skey)

	seq := k.readCount(ctx, sellerCountKey(seller))
	store.Set(sellerIndexKey(seller, seq), id.Bytes())
	k.writeCount(ctx, sellerCountKey(seller), seq+1)
}

func (k Keeper) readCount(ctx sdk.Context, key []byte) uint64 {
	store := ctx.KVStore(k.skey)

	buf := store.Get(key)
	if buf == nil {
		return 0
	}
	return binary.BigEndian.Uint64(buf)
}

func (k Keeper) writeCount(ctx sdk.Context, key []byte, val uint64) {
	store := ctx.KVStore(k.skey)

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, val)
	store.Set(key, buf)
}
