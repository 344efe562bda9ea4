package milestone

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// NewQuerier creates a querier for milestone REST endpoints. Time dependent
// answers are taken at the block time of ctx.
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case types.QueryStatus:
			return queryStatus(ctx, k)

		case types.QueryCurrent:
			return queryCurrent(ctx, k)

		case types.QueryMilestones:
			return marshalResult(k.Milestones(ctx))

		case types.QueryResults:
			return marshalResult(k.MilestoneResults(ctx))

		case types.QueryTally:
			return marshalResult(k.Tally(ctx, ctx.BlockTime()))

		default:
			return nil, sdk.ErrUnknownRequest("unknown milestone query endpoint")
		}
	}
}

func queryStatus(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	state := types.FundState{
		Fund:        k.GetFund(ctx),
		VotingOpen:  k.VotingOpen(ctx, ctx.BlockTime()),
		VaultAmount: k.vk.GetBalance(ctx),
	}
	return marshalResult(state)
}

func queryCurrent(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	milestone, found := k.CurrentMilestone(ctx)
	if !found {
		return nil, types.ErrInvalidState(k.codespace, k.Status(ctx))
	}
	return marshalResult(types.CurrentMilestone{
		Milestone: milestone,
		Status:    k.MilestoneStatus(ctx, milestone.Index, ctx.BlockTime()),
	})
}

func marshalResult(v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(types.ModuleCdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("failed to JSON marshal result: %s", err.Error()))
	}
	return bz, nil
}
