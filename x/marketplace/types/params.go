package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// MaxFeeBps is the fee ceiling, expressed in basis points (100%)
	MaxFeeBps uint32 = 10000

	// snipeWindowSeconds is the trailing window before expiry within which
	// a bid triggers the anti-sniping extension.
	snipeWindowSeconds uint32 = 300
)

var (
	defaultFeeAddress             = authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	defaultFeeBps          uint32 = 200
	defaultAvgBlockTime    uint32 = 6
	defaultExtensionPeriod uint32 = 600
)

// Params is the administrative state of the marketplace. It is read
// synchronously by the settlement engine; a change applies to the next
// settlement computed, never retroactively.
type Params struct {
	MarketEnabled   bool           `json:"market_enabled"`
	FeeAddress      sdk.AccAddress `json:"fee_address"`
	FeeBps          uint32         `json:"fee_bps"`
	AvgBlockTime    uint32         `json:"avg_block_time"`
	ExtensionPeriod uint32         `json:"extension_period"`
}

// DefaultParams returns default marketplace parameters
func DefaultParams() Params {
	return Params{
		MarketEnabled:   true,
		FeeAddress:      defaultFeeAddress,
		FeeBps:          defaultFeeBps,
		AvgBlockTime:    defaultAvgBlockTime,
		ExtensionPeriod: defaultExtensionPeriod,
	}
}

// Validate checks all parameter bounds
func (p Params) Validate() error {
	if err := sdk.VerifyAddressFormat(p.FeeAddress); err != nil {
		return fmt.Errorf("invalid fee address: %w", err)
	}
	if p.FeeBps > MaxFeeBps {
		return fmt.Errorf("fee bps too high: %v > %v", p.FeeBps, MaxFeeBps)
	}
	if p.AvgBlockTime == 0 {
		return fmt.Errorf("average block time must be positive")
	}
	if p.ExtensionPeriod == 0 {
		return fmt.Errorf("extension period must be positive")
	}
	return nil
}

// SnipeWindowBlocks returns the anti-sniping window as a block count
func (p Params) SnipeWindowBlocks() int64 {
	return int64(snipeWindowSeconds / p.AvgBlockTime)
}

// ExtensionBlocks returns the expiry extension as a block count
func (p Params) ExtensionBlocks() int64 {
	return int64(p.ExtensionPeriod / p.AvgBlockTime)
}
