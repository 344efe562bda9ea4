package ledger

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger/types"
)

// RegisterInvariants registers all ledger invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-supply", TotalSupplyInvariant(k))
}

// TotalSupplyInvariant checks that the stored supply equals the sum of all balances
func TotalSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expectedTotal := sdk.ZeroInt()
		k.IterateBalances(ctx, func(_ sdk.CUAddress, amount sdk.Int) bool {
			expectedTotal = expectedTotal.Add(amount)
			return false
		})
		supply := k.TotalSupply(ctx)

		broken := !expectedTotal.Equal(supply)

		return sdk.FormatInvariant(types.ModuleName, "total supply",
			fmt.Sprintf(
				"\tsum of balances: %v\n"+
					"\ttotal supply:    %v\n",
				expectedTotal, supply)), broken
	}
}
