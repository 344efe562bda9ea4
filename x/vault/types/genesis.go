package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

// GenesisState seeds the pool and restores prior releases.
type GenesisState struct {
	Balance  sdk.Int   `json:"balance" yaml:"balance"`
	Receipts []Receipt `json:"receipts" yaml:"receipts"`
}

func NewGenesisState(balance sdk.Int, receipts []Receipt) GenesisState {
	return GenesisState{Balance: balance, Receipts: receipts}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{Balance: sdk.ZeroInt(), Receipts: []Receipt{}}
}

// ValidateGenesis requires receipts in strictly increasing sequence order.
func ValidateGenesis(data GenesisState) error {
	var last uint64
	for i, r := range data.Receipts {
		if i > 0 && r.Seq <= last {
			return fmt.Errorf("receipt %s out of order", r.ID)
		}
		if r.Recipient.Empty() || !r.Amount.IsPositive() {
			return fmt.Errorf("invalid receipt %s", r.ID)
		}
		last = r.Seq
	}
	return nil
}
