package delegation

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

// RegisterInvariants registers all delegation invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "weight-conservation", WeightConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "edge-count", EdgeCountInvariant(k))
}

// AllInvariants runs all invariants of the delegation module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := WeightConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return EdgeCountInvariant(k)(ctx)
	}
}

// WeightConservationInvariant checks that the weights of all roots add up to
// the total supply, so no balance is counted twice or lost.
func WeightConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := sdk.ZeroInt()
		for _, rw := range k.Weights(ctx) {
			sum = sum.Add(rw.Weight)
		}
		supply := k.lk.TotalSupply(ctx)

		broken := !sum.Equal(supply)

		return sdk.FormatInvariant(types.ModuleName, "weight conservation",
			fmt.Sprintf(
				"\tsum of root weights: %v\n"+
					"\ttotal supply:        %v\n",
				sum, supply)), broken
	}
}

// EdgeCountInvariant checks the stored edge counter that bounds chain walks.
func EdgeCountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var stored uint64
		k.IterateEdges(ctx, func(types.Edge) bool {
			stored++
			return false
		})
		counter := k.getEdgeCount(ctx)

		broken := stored != counter

		return sdk.FormatInvariant(types.ModuleName, "edge count",
			fmt.Sprintf("\tstored edges: %d\n\tcounter:      %d\n", stored, counter)), broken
	}
}
