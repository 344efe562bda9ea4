package types

import (
	"time"

	sdk "github.com/hbtc-chain/daofund/types"
	delegationtypes "github.com/hbtc-chain/daofund/x/delegation/types"
	vaulttypes "github.com/hbtc-chain/daofund/x/vault/types"
)

// DelegationKeeper owns the delegation graph and the vote records
type DelegationKeeper interface {
	Delegate(ctx sdk.Context, from, to sdk.CUAddress) sdk.Error
	IsRoot(ctx sdk.Context, addr sdk.CUAddress) bool
	WeightOf(ctx sdk.Context, root sdk.CUAddress) sdk.Int
	CastVote(ctx sdk.Context, milestone uint64, voter sdk.CUAddress, option delegationtypes.VoteOption) sdk.Error
	GetVote(ctx sdk.Context, milestone uint64, voter sdk.CUAddress) (delegationtypes.Vote, bool)
	Tally(ctx sdk.Context, milestone uint64) delegationtypes.TallyResult
}

// VaultKeeper holds the escrowed pool tranches are paid from
type VaultKeeper interface {
	GetBalance(ctx sdk.Context) sdk.Int
	Release(ctx sdk.Context, releaser string, amount sdk.Int, recipient sdk.CUAddress) (vaulttypes.Receipt, sdk.Error)
}

// RefundKeeper takes over once a milestone is rejected
type RefundKeeper interface {
	Activate(ctx sdk.Context, now time.Time) sdk.Error
}
