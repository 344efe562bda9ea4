package vault

import (
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/vault/types"
)

// InitGenesis seeds the pool. Restored receipts count as already released.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	released := sdk.ZeroInt()
	for _, r := range data.Receipts {
		k.setReceipt(ctx, r)
		released = released.Add(r.Amount)
	}
	if len(data.Receipts) > 0 {
		last := data.Receipts[len(data.Receipts)-1]
		ctx.KVStore(k.storeKey).Set(types.ReceiptSeqKey, sdk.Uint64ToBigEndian(last.Seq+1))
	}

	k.setInt(ctx, types.BalanceKey, data.Balance)
	k.setInt(ctx, types.DepositedKey, data.Balance.Add(released))
}

// ExportGenesis returns the vault state as a genesis state.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	return NewGenesisState(k.GetBalance(ctx), k.GetReceipts(ctx))
}
