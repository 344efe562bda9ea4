package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

// LedgerKeeper supplies the live balances weights are computed from
type LedgerKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.CUAddress) sdk.Int
	TotalSupply(ctx sdk.Context) sdk.Int
	IterateBalances(ctx sdk.Context, cb func(addr sdk.CUAddress, amount sdk.Int) (stop bool))
}
