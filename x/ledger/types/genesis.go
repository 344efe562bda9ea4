package types

import (
	"fmt"
)

// GenesisState is the initial distribution of ownership units.
type GenesisState struct {
	Balances []Balance `json:"balances" yaml:"balances"`
}

func NewGenesisState(balances []Balance) GenesisState {
	return GenesisState{Balances: balances}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{Balances: []Balance{}}
}

// ValidateGenesis rejects empty or duplicated holders and non-positive amounts.
func ValidateGenesis(data GenesisState) error {
	seen := make(map[string]bool, len(data.Balances))
	for _, b := range data.Balances {
		if b.Address.Empty() {
			return fmt.Errorf("empty holder address")
		}
		if seen[b.Address.String()] {
			return fmt.Errorf("duplicate holder %s", b.Address)
		}
		seen[b.Address.String()] = true
		if !b.Amount.IsPositive() {
			return fmt.Errorf("balance of %s must be positive, got %s", b.Address, b.Amount)
		}
	}
	return nil
}
