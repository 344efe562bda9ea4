package vault

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/vault/types"
)

// RegisterInvariants registers all vault invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "conservation", ConservationInvariant(k))
}

// ConservationInvariant checks that nothing left the vault without a receipt
func ConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		deposited := k.GetDeposited(ctx)
		balance := k.GetBalance(ctx)
		released := k.GetReleased(ctx)

		broken := !balance.Add(released).Equal(deposited)

		return sdk.FormatInvariant(types.ModuleName, "conservation",
			fmt.Sprintf(
				"\tdeposited: %v\n"+
					"\tbalance:   %v\n"+
					"\treleased:  %v\n",
				deposited, balance, released)), broken
	}
}
