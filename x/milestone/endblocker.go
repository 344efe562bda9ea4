package milestone

import (
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// EndBlocker executes the current milestone as soon as the block time passes
// the end of its voting window. A failed execution is logged and left for a
// later block or an explicit MsgExecute.
func EndBlocker(ctx sdk.Context, k Keeper) {
	if k.Status(ctx) != types.StatusActive {
		return
	}
	milestone, found := k.CurrentMilestone(ctx)
	if !found || !milestone.Closed(ctx.BlockTime()) {
		return
	}

	cacheCtx, writeCache := ctx.CacheContext()
	result, err := k.Execute(cacheCtx, ctx.BlockTime())
	if err != nil {
		k.Logger(ctx).Error("milestone auto-execution failed", "milestone", milestone.Index, "err", err.Error())
		return
	}
	writeCache()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	k.Logger(ctx).Info("milestone auto-executed", "milestone", result.Index, "outcome", result.Status.String())
}
