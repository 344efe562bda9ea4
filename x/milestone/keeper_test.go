package milestone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation"
	"github.com/hbtc-chain/daofund/x/milestone/types"
	"github.com/hbtc-chain/daofund/x/refund"
)

func TestInstantiation(t *testing.T) {
	input := instantiate(t)

	require.Equal(t, finney(25).String(), input.vk.GetPayout(input.ctx, input.team).String())
	require.Equal(t, finney(75).String(), input.vk.GetBalance(input.ctx).String())

	fund := input.keeper.GetFund(input.ctx)
	require.Equal(t, types.StatusActive, fund.Status)
	require.Equal(t, uint64(1), fund.Current)
	require.True(t, fund.Beneficiary.Equals(input.team))

	result, found := input.keeper.GetResult(input.ctx, 0)
	require.True(t, found)
	require.Equal(t, types.MilestoneApproved, result.Status)
	require.NotEmpty(t, result.ReceiptID)
	require.Len(t, input.keeper.Milestones(input.ctx), 3)
	input.requireInvariants(t)

	err := input.keeper.Initialize(input.ctx, input.deployer, input.team, testMilestones(), t0)
	require.NotNil(t, err)
	require.Equal(t, types.CodeAlreadyInitialized, err.Code())
}

func TestInitializeRejections(t *testing.T) {
	input := createTestInput(t)

	err := input.keeper.Initialize(input.ctx, input.nobody, input.team, testMilestones(), t0)
	require.NotNil(t, err)
	require.Equal(t, sdk.CodeUnauthorized, err.Code())

	short := testMilestones()
	short[2].Tranche = finney(29)
	err = input.keeper.Initialize(input.ctx, input.deployer, input.team, short, t0)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidMilestones, err.Code())

	overlapping := testMilestones()
	overlapping[2].VoteStart = at(40)
	err = input.keeper.Initialize(input.ctx, input.deployer, input.team, overlapping, t0)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidMilestones, err.Code())

	misnumbered := testMilestones()
	misnumbered[1].Index = 5
	err = input.keeper.Initialize(input.ctx, input.deployer, input.team, misnumbered, t0)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidMilestones, err.Code())

	require.Equal(t, types.StatusUninitialized, input.keeper.Status(input.ctx))
	require.True(t, input.vk.GetPayout(input.ctx, input.team).IsZero())
}

func TestInitializeSingleMilestone(t *testing.T) {
	input := createTestInput(t)

	single := types.Milestones{types.NewMilestone(0, finney(100), time.Time{}, time.Time{})}
	require.Nil(t, input.keeper.Initialize(input.ctx, input.deployer, input.team, single, t0))
	require.Equal(t, types.StatusFinished, input.keeper.Status(input.ctx))
	require.Equal(t, finney(100).String(), input.vk.GetPayout(input.ctx, input.team).String())
	input.requireInvariants(t)
}

func TestSimpleVoting(t *testing.T) {
	input := instantiate(t)
	now := at(3)

	for _, addr := range []sdk.CUAddress{input.deployer, input.team, input.nobody} {
		err := input.keeper.CastVote(input.ctx, addr, true, now)
		require.NotNil(t, err)
		require.Equal(t, types.CodeNoVotingPower, err.Code())
	}

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), false, now))
	for _, approve := range []bool{true, false} {
		err := input.keeper.CastVote(input.ctx, input.investor(1), approve, now)
		require.NotNil(t, err)
		require.Equal(t, delegation.DefaultCodespace, err.Codespace())
		require.Equal(t, delegation.CodeAlreadyVoted, err.Code())
	}

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), true, now))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), true, now))
	input.requireVotes(t, now, 550, 450)

	for _, when := range []time.Time{now, at(41)} {
		_, err := input.keeper.Execute(input.ctx, when)
		require.NotNil(t, err)
		require.Equal(t, types.CodeTooEarly, err.Code())
	}

	result, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneApproved, result.Status)
	require.Equal(t, tokens(550).String(), result.Approve.String())
	require.Equal(t, finney(70).String(), input.vk.GetPayout(input.ctx, input.team).String())

	fund := input.keeper.GetFund(input.ctx)
	require.Equal(t, types.StatusActive, fund.Status)
	require.Equal(t, uint64(2), fund.Current)
	input.requireInvariants(t)
}

func TestPartialQuorumVoting(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), true, at(3)))

	err := input.keeper.CastVote(input.ctx, input.investor(2), false, at(43))
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotVotingPeriod, err.Code())

	result, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneApproved, result.Status)
	require.Equal(t, finney(70).String(), input.vk.GetPayout(input.ctx, input.team).String())
	require.Equal(t, types.StatusActive, input.keeper.Status(input.ctx))
}

func TestVotingBeforeWindow(t *testing.T) {
	input := instantiate(t)

	err := input.keeper.CastVote(input.ctx, input.investor(1), true, at(1))
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotVotingPeriod, err.Code())
	require.Equal(t, types.MilestonePending, input.keeper.MilestoneStatus(input.ctx, 1, at(1)))
	require.Equal(t, types.MilestoneVoting, input.keeper.MilestoneStatus(input.ctx, 1, at(2)))
	require.Equal(t, types.MilestonePending, input.keeper.MilestoneStatus(input.ctx, 1, at(42)))
	require.Equal(t, types.MilestonePending, input.keeper.MilestoneStatus(input.ctx, 2, at(44)))
	require.Equal(t, types.MilestoneApproved, input.keeper.MilestoneStatus(input.ctx, 0, at(1)))
}

func TestTallyReportsWindow(t *testing.T) {
	input := instantiate(t)
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))

	for _, tc := range []struct {
		now  time.Time
		open bool
	}{
		{at(1), false},
		{at(2), true},
		{at(41), true},
		{at(42), false},
	} {
		tally := input.keeper.Tally(input.ctx, tc.now)
		require.Equal(t, uint64(1), tally.Index)
		require.Equal(t, tc.open, tally.VotingOpen, tc.now.String())
		require.Equal(t, tokens(450).String(), tally.Tally.Approve.String())
	}

	_, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	tally := input.keeper.Tally(input.ctx, at(44))
	require.Equal(t, uint64(2), tally.Index)
	require.True(t, tally.VotingOpen)
	require.True(t, tally.Tally.Approve.IsZero())
}

func TestVotingWithTokenTransfer(t *testing.T) {
	input := instantiate(t)
	now := at(3)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, now))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), false, now))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, now))
	input.requireVotes(t, now, 450, 550)

	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(2), input.investor(1), tokens(100)))
	input.requireVotes(t, now, 550, 450)

	result, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneApproved, result.Status)
	require.Equal(t, finney(70).String(), input.vk.GetPayout(input.ctx, input.team).String())
}

func TestRevoteAfterTransferringAway(t *testing.T) {
	input := instantiate(t)
	now := at(3)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), true, now))
	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(3), input.investor(1), tokens(250)))
	require.True(t, input.lk.GetBalance(input.ctx, input.investor(3)).IsZero())

	err := input.keeper.CastVote(input.ctx, input.investor(3), false, now)
	require.NotNil(t, err)
	require.Equal(t, delegation.DefaultCodespace, err.Codespace())
	require.Equal(t, delegation.CodeAlreadyVoted, err.Code())

	err = input.keeper.CastVote(input.ctx, input.nobody, false, now)
	require.NotNil(t, err)
	require.Equal(t, types.CodeNoVotingPower, err.Code())
}

func TestProjectSuccess(t *testing.T) {
	input := instantiate(t)
	requireNoRefund := func() {
		_, err := input.rk.Claim(input.ctx, input.investor(1), t0)
		require.NotNil(t, err)
		require.Equal(t, refund.CodeInvalidState, err.Code())
	}

	requireNoRefund()
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), false, at(3)))
	requireNoRefund()
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), true, at(3)))
	requireNoRefund()
	_, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	requireNoRefund()

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), false, at(44)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), true, at(44)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), true, at(44)))
	requireNoRefund()
	result, err := input.keeper.Execute(input.ctx, at(64))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneApproved, result.Status)
	requireNoRefund()

	require.Equal(t, finney(100).String(), input.vk.GetPayout(input.ctx, input.team).String())
	require.True(t, input.vk.GetBalance(input.ctx).IsZero())
	require.Equal(t, types.StatusFinished, input.keeper.Status(input.ctx))
	input.requireInvariants(t)

	_, err = input.keeper.Execute(input.ctx, at(65))
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotActive, err.Code())

	err = input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1))
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidState, err.Code())
}

func TestProjectFailure(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), false, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), true, at(3)))
	_, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), false, at(44)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), false, at(44)))
	input.requireVotes(t, at(44), 0, 750)
	result, err := input.keeper.Execute(input.ctx, at(64))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneRejected, result.Status)

	require.Equal(t, finney(70).String(), input.vk.GetPayout(input.ctx, input.team).String())
	require.Equal(t, types.StatusRefunding, input.keeper.Status(input.ctx))
	require.True(t, input.rk.IsActive(input.ctx))
	input.requireInvariants(t)

	expected := []string{"13500000000000000", "9000000000000000", "7500000000000000"}
	for i, addr := range input.investors {
		amount, err := input.rk.Claim(input.ctx, addr, at(65))
		require.Nil(t, err)
		require.Equal(t, expected[i], amount.String())
		require.True(t, input.lk.GetBalance(input.ctx, addr).IsZero())
		require.Equal(t, expected[i], input.vk.GetPayout(input.ctx, addr).String())

		_, err = input.rk.Claim(input.ctx, addr, at(65))
		require.NotNil(t, err)
		require.Equal(t, refund.CodeAlreadyClaimed, err.Code())
		input.requireInvariants(t)
	}
	require.True(t, input.vk.GetBalance(input.ctx).IsZero())
	require.Equal(t, types.StatusRefunding, input.keeper.Status(input.ctx))

	err = input.keeper.CastVote(input.ctx, input.investor(1), true, at(70))
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidState, err.Code())

	_, err = input.keeper.Execute(input.ctx, at(70))
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotActive, err.Code())
}

func TestZeroParticipationRejects(t *testing.T) {
	input := instantiate(t)

	result, err := input.keeper.Execute(input.ctx, at(42))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneRejected, result.Status)
	require.True(t, result.Approve.IsZero())
	require.True(t, result.Reject.IsZero())
	require.Equal(t, types.StatusRefunding, input.keeper.Status(input.ctx))

	snapshot, found := input.rk.GetSnapshot(input.ctx)
	require.True(t, found)
	require.Equal(t, finney(75).String(), snapshot.PoolAtFailure.String())
	require.Equal(t, at(42), snapshot.ActivatedAt)
}

func TestTiedVoteRejects(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(1), input.investor(2), tokens(50)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), false, at(3)))
	input.requireVotes(t, at(3), 400, 350)
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(3), input.investor(1), tokens(100)))
	input.requireVotes(t, at(3), 500, 500)

	result, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneRejected, result.Status)
}

func TestDelegationChainVoting(t *testing.T) {
	orders := [][2][2]int{
		{{2, 1}, {3, 2}},
		{{3, 2}, {2, 1}},
		{{2, 1}, {3, 1}},
	}
	for _, order := range orders {
		input := instantiate(t)
		for _, edge := range order {
			require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(edge[0]), input.investor(edge[1])))
		}
		require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
		input.requireVotes(t, at(3), 1000, 0)
		require.Equal(t, tokens(1000).String(), input.dk.WeightOf(input.ctx, input.investor(1)).String())
	}
}

func TestCyclicDelegationRejected(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(1), input.investor(2)))
	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(3)))
	err := input.keeper.Delegate(input.ctx, input.investor(3), input.investor(1))
	require.NotNil(t, err)
	require.Equal(t, delegation.CodeCyclicDelegation, err.Code())
}

func TestNonVotedDelegateVoting(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	input.requireVotes(t, at(3), 750, 250)
}

func TestVotedDelegateVoting(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	err := input.keeper.CastVote(input.ctx, input.investor(1), true, at(3))
	require.NotNil(t, err)
	require.Equal(t, delegation.CodeAlreadyVoted, err.Code())
}

func TestNonVotedDelegateTokenTransfer(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(3), input.investor(1), tokens(100)))
	input.requireVotes(t, at(3), 0, 0)
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	input.requireVotes(t, at(3), 850, 150)
}

func TestVotedDelegateTokenTransfer(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	input.requireVotes(t, at(3), 750, 250)
	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(3), input.investor(1), tokens(150)))
	input.requireVotes(t, at(3), 900, 100)
}

func TestDelegatorToNonVotedDelegateVoting(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	err := input.keeper.CastVote(input.ctx, input.investor(2), true, at(3))
	require.NotNil(t, err)
	require.Equal(t, delegation.CodeNotDelegateRoot, err.Code())
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	input.requireVotes(t, at(3), 750, 250)
}

func TestDelegatorToVotedDelegateVoting(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	err := input.keeper.CastVote(input.ctx, input.investor(2), true, at(3))
	require.NotNil(t, err)
	require.Equal(t, delegation.CodeNotDelegateRoot, err.Code())
}

func TestDelegatorToNonVotedDelegateTokenTransfer(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(3), input.investor(2), tokens(100)))
	input.requireVotes(t, at(3), 0, 0)
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	input.requireVotes(t, at(3), 850, 150)
}

func TestDelegatorToVotedDelegateTokenTransfer(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(3), false, at(3)))
	input.requireVotes(t, at(3), 750, 250)
	require.Nil(t, input.lk.Transfer(input.ctx, input.investor(3), input.investor(2), tokens(150)))
	input.requireVotes(t, at(3), 900, 100)
}

func TestDelegateAwayAfterVoting(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(2), false, at(3)))
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	input.requireVotes(t, at(3), 450, 300)

	require.Nil(t, input.keeper.Delegate(input.ctx, input.investor(2), input.investor(1)))
	input.requireVotes(t, at(3), 750, 0)
}

func TestExecuteOnlyOnce(t *testing.T) {
	input := instantiate(t)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	_, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)

	// milestone 2 voting has not ended yet, so a repeat is too early
	_, err = input.keeper.Execute(input.ctx, at(43))
	require.NotNil(t, err)
	require.Equal(t, types.CodeTooEarly, err.Code())
	require.Equal(t, finney(70).String(), input.vk.GetPayout(input.ctx, input.team).String())
	require.Len(t, input.keeper.MilestoneResults(input.ctx), 2)
}

func TestGenesisRoundTrip(t *testing.T) {
	input := instantiate(t)
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))
	_, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)

	exported := ExportGenesis(input.ctx, input.keeper)
	require.Nil(t, ValidateGenesis(exported))
	require.Equal(t, uint64(2), exported.Fund.Current)
	require.Len(t, exported.Milestones, 3)
	require.Len(t, exported.Results, 2)

	fresh := createTestInput(t)
	InitGenesis(fresh.ctx, fresh.keeper, exported)
	require.Equal(t, exported, ExportGenesis(fresh.ctx, fresh.keeper))
}

func TestValidateGenesis(t *testing.T) {
	require.Nil(t, ValidateGenesis(DefaultGenesisState()))

	fund := types.NewFund(newTestAddr())
	fund.Status = types.StatusActive
	fund.Current = 1
	require.NotNil(t, ValidateGenesis(NewGenesisState(fund, testMilestones(), nil)))

	fund.Beneficiary = newTestAddr()
	results := []types.MilestoneResult{
		types.NewMilestoneResult(0, types.MilestoneApproved, sdk.ZeroInt(), sdk.ZeroInt(), t0),
	}
	require.Nil(t, ValidateGenesis(NewGenesisState(fund, testMilestones(), results)))

	results = append(results, types.NewMilestoneResult(1, types.MilestoneVoting, sdk.ZeroInt(), sdk.ZeroInt(), t0))
	require.NotNil(t, ValidateGenesis(NewGenesisState(fund, testMilestones(), results)))

	fund.Current = 3
	require.NotNil(t, ValidateGenesis(NewGenesisState(fund, testMilestones(), results[:1])))
}
