package ledger

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

// InitGenesis mints the initial holder balances.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	for _, b := range data.Balances {
		k.Mint(ctx, b.Address, b.Amount)
	}
}

// ExportGenesis returns the current balances as a genesis state.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	return NewGenesisState(k.GetBalances(ctx))
}
