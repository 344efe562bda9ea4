package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
	vaulttypes "github.com/hbtc-chain/daofund/x/vault/types"
)

// LedgerKeeper defines the balance ledger used to size and settle claims
type LedgerKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.CUAddress) sdk.Int
	TotalSupply(ctx sdk.Context) sdk.Int
	Burn(ctx sdk.Context, addr sdk.CUAddress) sdk.Int
}

// VaultKeeper defines the escrow refunds are paid from
type VaultKeeper interface {
	GetBalance(ctx sdk.Context) sdk.Int
	Release(ctx sdk.Context, releaser string, amount sdk.Int, recipient sdk.CUAddress) (vaulttypes.Receipt, sdk.Error)
}
