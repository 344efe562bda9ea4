package delegation

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

func requireConserved(t *testing.T, ctx sdk.Context, k Keeper) {
	msg, broken := AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestDelegationChainEitherOrder(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		ctx, _, k, addrs := createTestInput(t, 450, 300, 250)
		a, b, c := addrs[0], addrs[1], addrs[2]

		if reversed {
			require.Nil(t, k.Delegate(ctx, b, c))
			require.Nil(t, k.Delegate(ctx, a, b))
		} else {
			require.Nil(t, k.Delegate(ctx, a, b))
			require.Nil(t, k.Delegate(ctx, b, c))
		}

		require.True(t, k.ResolveRoot(ctx, a).Equals(c))
		require.True(t, k.ResolveRoot(ctx, b).Equals(c))
		require.True(t, k.IsRoot(ctx, c))
		require.False(t, k.IsRoot(ctx, a))

		require.Equal(t, "1000", k.WeightOf(ctx, c).String())
		require.True(t, k.WeightOf(ctx, a).IsZero())
		require.True(t, k.WeightOf(ctx, b).IsZero())

		require.Nil(t, k.CastVote(ctx, 1, c, types.OptionApprove))
		tally := k.Tally(ctx, 1)
		require.Equal(t, "1000", tally.Approve.String())
		require.True(t, tally.Reject.IsZero())
		require.True(t, tally.Approved())
		requireConserved(t, ctx, k)
	}
}

func TestDelegationStar(t *testing.T) {
	ctx, _, k, addrs := createTestInput(t, 450, 300, 250)
	a, b, c := addrs[0], addrs[1], addrs[2]

	require.Nil(t, k.Delegate(ctx, a, c))
	require.Nil(t, k.Delegate(ctx, b, c))
	require.Equal(t, "1000", k.WeightOf(ctx, c).String())

	weights := k.Weights(ctx)
	require.Len(t, weights, 1)
	require.True(t, weights[0].Root.Equals(c))
	requireConserved(t, ctx, k)
}

func TestCyclicDelegationRejected(t *testing.T) {
	ctx, _, k, addrs := createTestInput(t, 1, 1, 1, 1)
	a, b, c, d := addrs[0], addrs[1], addrs[2], addrs[3]

	require.Nil(t, k.Delegate(ctx, a, b))
	require.Nil(t, k.Delegate(ctx, b, c))
	require.Nil(t, k.Delegate(ctx, c, d))

	err := k.Delegate(ctx, d, a)
	require.NotNil(t, err)
	require.Equal(t, types.CodeCyclicDelegation, err.Code())

	err = k.Delegate(ctx, b, a)
	require.NotNil(t, err)
	require.Equal(t, types.CodeCyclicDelegation, err.Code())

	// failed writes leave the graph untouched
	to, ok := k.GetDelegate(ctx, b)
	require.True(t, ok)
	require.True(t, to.Equals(c))
	require.True(t, k.IsRoot(ctx, d))

	// rewriting an existing edge is fine as long as it stays acyclic
	require.Nil(t, k.Delegate(ctx, a, d))
	require.True(t, k.ResolveRoot(ctx, a).Equals(d))
	requireConserved(t, ctx, k)
}

func TestSelfDelegationClearsEdge(t *testing.T) {
	ctx, _, k, addrs := createTestInput(t, 10, 20)
	a, b := addrs[0], addrs[1]

	require.Nil(t, k.Delegate(ctx, a, a))
	require.True(t, k.IsRoot(ctx, a))

	require.Nil(t, k.Delegate(ctx, a, b))
	require.False(t, k.IsRoot(ctx, a))
	require.Equal(t, "30", k.WeightOf(ctx, b).String())

	require.Nil(t, k.Delegate(ctx, a, a))
	require.True(t, k.IsRoot(ctx, a))
	require.Equal(t, "10", k.WeightOf(ctx, a).String())
	require.Equal(t, "20", k.WeightOf(ctx, b).String())
	require.Empty(t, k.GetEdges(ctx))
	requireConserved(t, ctx, k)
}

func TestCastVote(t *testing.T) {
	ctx, _, k, addrs := createTestInput(t, 450, 300, 250)
	a, b := addrs[0], addrs[1]

	require.Nil(t, k.Delegate(ctx, a, b))

	err := k.CastVote(ctx, 1, a, types.OptionApprove)
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotDelegateRoot, err.Code())

	require.Nil(t, k.CastVote(ctx, 1, b, types.OptionReject))
	err = k.CastVote(ctx, 1, b, types.OptionApprove)
	require.NotNil(t, err)
	require.Equal(t, types.CodeAlreadyVoted, err.Code())

	// votes are scoped per milestone
	require.Nil(t, k.CastVote(ctx, 2, b, types.OptionApprove))

	vote, found := k.GetVote(ctx, 1, b)
	require.True(t, found)
	require.Equal(t, types.OptionReject, vote.Option)

	err = k.CastVote(ctx, 3, b, types.OptionEmpty)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidVoteOption, err.Code())
}

func TestTallyIsLive(t *testing.T) {
	ctx, lk, k, addrs := createTestInput(t, 450, 300, 250)
	a, b, c := addrs[0], addrs[1], addrs[2]

	require.Nil(t, k.CastVote(ctx, 1, a, types.OptionApprove))
	require.Nil(t, k.CastVote(ctx, 1, b, types.OptionReject))

	tally := k.Tally(ctx, 1)
	require.Equal(t, "450", tally.Approve.String())
	require.Equal(t, "300", tally.Reject.String())

	// a transfer into an already voted root counts for its direction
	require.Nil(t, lk.Transfer(ctx, c, a, sdk.NewInt(100)))
	tally = k.Tally(ctx, 1)
	require.Equal(t, "550", tally.Approve.String())
	require.Equal(t, "300", tally.Reject.String())

	// so does a late delegation
	require.Nil(t, k.Delegate(ctx, c, b))
	tally = k.Tally(ctx, 1)
	require.Equal(t, "550", tally.Approve.String())
	require.Equal(t, "450", tally.Reject.String())

	// a voter that delegates away no longer counts on its own
	require.Nil(t, k.Delegate(ctx, a, b))
	tally = k.Tally(ctx, 1)
	require.True(t, tally.Approve.IsZero())
	require.Equal(t, "1000", tally.Reject.String())
	require.False(t, tally.Approved())
	requireConserved(t, ctx, k)
}

func TestTallyNeverExceedsSupply(t *testing.T) {
	ctx, lk, k, addrs := createTestInput(t, 5, 7, 11, 13, 17, 19)

	require.Nil(t, k.Delegate(ctx, addrs[0], addrs[1]))
	require.Nil(t, k.Delegate(ctx, addrs[2], addrs[1]))
	require.Nil(t, k.Delegate(ctx, addrs[3], addrs[4]))
	for _, addr := range []sdk.CUAddress{addrs[1], addrs[4], addrs[5]} {
		require.Nil(t, k.CastVote(ctx, 1, addr, types.OptionApprove))
	}
	require.Nil(t, k.Delegate(ctx, addrs[4], addrs[5]))

	tally := k.Tally(ctx, 1)
	require.True(t, tally.Approve.Add(tally.Reject).LTE(lk.TotalSupply(ctx)))
	require.Equal(t, "72", tally.Approve.String())
	requireConserved(t, ctx, k)
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, _, k, addrs := createTestInput(t, 450, 300, 250)
	require.Nil(t, k.Delegate(ctx, addrs[0], addrs[1]))
	require.Nil(t, k.CastVote(ctx, 1, addrs[1], types.OptionApprove))

	exported := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(exported))
	require.Len(t, exported.Edges, 1)
	require.Len(t, exported.Votes, 1)

	ctx2, _, k2, _ := createTestInput(t)
	InitGenesis(ctx2, k2, exported)
	require.True(t, k2.ResolveRoot(ctx2, addrs[0]).Equals(addrs[1]))
	_, found := k2.GetVote(ctx2, 1, addrs[1])
	require.True(t, found)

	cyclic := NewGenesisState([]Edge{NewEdge(addrs[0], addrs[1]), NewEdge(addrs[1], addrs[0])}, nil)
	require.NoError(t, ValidateGenesis(cyclic))
	ctx3, _, k3, _ := createTestInput(t)
	require.Panics(t, func() { InitGenesis(ctx3, k3, cyclic) })
}
