package milestone

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// RegisterInvariants registers all milestone invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "tranche-escrow", TrancheEscrowInvariant(k))
	ir.RegisterRoute(types.ModuleName, "monotonic-progress", MonotonicProgressInvariant(k))
}

// AllInvariants runs all invariants of the milestone module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := TrancheEscrowInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return MonotonicProgressInvariant(k)(ctx)
	}
}

// TrancheEscrowInvariant checks that, while the fund is not refunding, the
// vault holds exactly the tranches still to be decided.
func TrancheEscrowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		status := k.Status(ctx)
		if status == types.StatusUninitialized || status == types.StatusRefunding {
			return sdk.FormatInvariant(types.ModuleName, "tranche-escrow",
				fmt.Sprintf("\tnot checked while fund is %s\n", status)), false
		}

		total := k.Milestones(ctx).Total()
		released := k.ReleasedTranches(ctx)
		vaultBalance := k.vk.GetBalance(ctx)

		remaining, ok := total.SafeSub(released)
		broken := !ok || !vaultBalance.Equal(remaining)

		return sdk.FormatInvariant(types.ModuleName, "tranche-escrow",
			fmt.Sprintf(
				"\ttotal tranches:    %v\n"+
					"\treleased tranches: %v\n"+
					"\tvault balance:     %v\n",
				total, released, vaultBalance)), broken
	}
}

// MonotonicProgressInvariant checks that every milestone before the current
// one is approved and nothing after it is decided.
func MonotonicProgressInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		fund := k.GetFund(ctx)
		var msg string
		broken := false

		for _, r := range k.MilestoneResults(ctx) {
			switch {
			case r.Index > fund.Current:
				msg += fmt.Sprintf("\tmilestone %d decided ahead of current %d\n", r.Index, fund.Current)
				broken = true
			case r.Index < fund.Current && r.Status != types.MilestoneApproved:
				msg += fmt.Sprintf("\tmilestone %d is %s but the fund moved past it\n", r.Index, r.Status)
				broken = true
			}
		}
		if fund.Status == types.StatusActive {
			if _, decided := k.GetResult(ctx, fund.Current); decided {
				msg += fmt.Sprintf("\tcurrent milestone %d already decided\n", fund.Current)
				broken = true
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "monotonic-progress", msg), broken
	}
}
