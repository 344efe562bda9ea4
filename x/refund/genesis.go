package refund

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

// InitGenesis restores an open refund and its claims.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	if data.Snapshot == nil {
		return
	}
	k.setSnapshot(ctx, *data.Snapshot)
	for _, c := range data.Claims {
		k.setClaim(ctx, c)
	}
}

// ExportGenesis returns the refund state as a genesis state.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	snapshot, found := k.GetSnapshot(ctx)
	if !found {
		return DefaultGenesisState()
	}
	return NewGenesisState(&snapshot, k.GetClaims(ctx))
}
