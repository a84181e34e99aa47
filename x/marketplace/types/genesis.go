package types

import (
	"fmt"
)

// GenesisState defines the basic genesis state used by the marketplace module
type GenesisState struct {
	Params Params `json:"params"`
	Orders Orders `json:"orders"`
}

// Validate performs basic validation of marketplace genesis data returning an
// error for any failed validation criteria.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[OrderID]bool, len(gs.Orders))
	for _, order := range gs.Orders {
		if err := order.Validate(); err != nil {
			return err
		}
		if seen[order.ID] {
			return fmt.Errorf("duplicate order %v", order.ID)
		}
		seen[order.ID] = true
	}

	return nil
}

// DefaultGenesisState returns default genesis state as raw bytes for the
// marketplace module.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params: DefaultParams(),
	}
}
