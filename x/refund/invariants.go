package refund

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/refund/types"
)

// RegisterInvariants registers all refund invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "solvency", SolvencyInvariant(k))
}

// SolvencyInvariant checks that refunds never pay out more than the pool
// frozen at failure, and that the vault still holds the rest of it.
func SolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		snapshot, found := k.GetSnapshot(ctx)
		if !found {
			return sdk.FormatInvariant(types.ModuleName, "solvency", "\trefunds not open\n"), false
		}

		paid := sdk.ZeroInt()
		k.IterateClaims(ctx, func(record types.ClaimRecord) bool {
			paid = paid.Add(record.Amount)
			return false
		})
		vaultBalance := k.vk.GetBalance(ctx)

		broken := paid.GT(snapshot.PoolAtFailure) ||
			!paid.Equal(snapshot.Paid) ||
			!vaultBalance.Add(paid).Equal(snapshot.PoolAtFailure)

		return sdk.FormatInvariant(types.ModuleName, "solvency",
			fmt.Sprintf(
				"\tpool at failure: %v\n"+
					"\tsum of claims:   %v\n"+
					"\trecorded paid:   %v\n"+
					"\tvault balance:   %v\n",
				snapshot.PoolAtFailure, paid, snapshot.Paid, vaultBalance)), broken
	}
}
