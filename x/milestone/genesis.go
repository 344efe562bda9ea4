package milestone

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// InitGenesis stores the fund record, its schedule and the results decided so far.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	if err := types.ValidateGenesis(data); err != nil {
		panic(fmt.Sprintf("invalid milestone genesis: %s", err))
	}
	k.setFund(ctx, data.Fund)
	for _, m := range data.Milestones {
		k.setMilestone(ctx, m)
	}
	for _, r := range data.Results {
		k.setResult(ctx, r)
	}
}

// ExportGenesis returns the milestone state as a genesis state.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	return NewGenesisState(k.GetFund(ctx), k.Milestones(ctx), k.MilestoneResults(ctx))
}
