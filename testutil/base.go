package testutil

import (
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/rand"
)

// CoinDenom is the denomination used for all test balances
const CoinDenom = "ucur"

// Name generates a random name with the given prefix
func Name(_ testing.TB, prefix string) string {
	return fmt.Sprintf("%s-%v", prefix, rand.Uint64())
}

// CurioCoin provides a test coin of the given amount
func CurioCoin(t testing.TB, amount int64) sdk.Coin {
	t.Helper()
	return sdk.NewCoin(CoinDenom, sdk.NewInt(amount))
}
