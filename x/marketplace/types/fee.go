package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SplitSettlement splits a settlement amount into seller proceeds and
// platform fee. The fee is amount * feeBps / 10000 with the division
// remainder going to the seller, so proceeds + fee always equals amount.
func SplitSettlement(amount sdk.Coin, feeBps uint32) (sdk.Coin, sdk.Coin) {
	fee := amount.Amount.MulRaw(int64(feeBps)).QuoRaw(int64(MaxFeeBps))

	return sdk.NewCoin(amount.Denom, amount.Amount.Sub(fee)), sdk.NewCoin(amount.Denom, fee)
}
