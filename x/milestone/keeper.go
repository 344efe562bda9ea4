package milestone

import (
	"fmt"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	delegationtypes "github.com/hbtc-chain/daofund/x/delegation/types"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// Keeper drives the fund through its milestones.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	dk        types.DelegationKeeper
	vk        types.VaultKeeper
	rk        types.RefundKeeper
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, dk types.DelegationKeeper, vk types.VaultKeeper,
	rk types.RefundKeeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  storeKey,
		cdc:       cdc,
		dk:        dk,
		vk:        vk,
		rk:        rk,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetFund returns the fund record. A store without one holds an
// uninitialized fund with no authority.
func (k Keeper) GetFund(ctx sdk.Context) types.Fund {
	bz := ctx.KVStore(k.storeKey).Get(types.FundKey)
	if bz == nil {
		return types.NewFund(nil)
	}
	var fund types.Fund
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &fund)
	return fund
}

func (k Keeper) setFund(ctx sdk.Context, fund types.Fund) {
	ctx.KVStore(k.storeKey).Set(types.FundKey, k.cdc.MustMarshalBinaryLengthPrefixed(fund))
}

// Status returns the fund status.
func (k Keeper) Status(ctx sdk.Context) types.FundStatus {
	return k.GetFund(ctx).Status
}

// GetMilestone returns the milestone at index.
func (k Keeper) GetMilestone(ctx sdk.Context, index uint64) (milestone types.Milestone, found bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.MilestoneKey(index))
	if bz == nil {
		return milestone, false
	}
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &milestone)
	return milestone, true
}

func (k Keeper) setMilestone(ctx sdk.Context, milestone types.Milestone) {
	ctx.KVStore(k.storeKey).Set(types.MilestoneKey(milestone.Index), k.cdc.MustMarshalBinaryLengthPrefixed(milestone))
}

// Milestones returns the whole schedule in index order.
func (k Keeper) Milestones(ctx sdk.Context) types.Milestones {
	milestones := types.Milestones{}
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.MilestoneKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var milestone types.Milestone
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &milestone)
		milestones = append(milestones, milestone)
	}
	return milestones
}

// CurrentMilestone returns the milestone the fund is at.
func (k Keeper) CurrentMilestone(ctx sdk.Context) (types.Milestone, bool) {
	fund := k.GetFund(ctx)
	if fund.Status == types.StatusUninitialized {
		return types.Milestone{}, false
	}
	return k.GetMilestone(ctx, fund.Current)
}

// GetResult returns how the milestone at index was decided.
func (k Keeper) GetResult(ctx sdk.Context, index uint64) (result types.MilestoneResult, found bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.ResultKey(index))
	if bz == nil {
		return result, false
	}
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &result)
	return result, true
}

func (k Keeper) setResult(ctx sdk.Context, result types.MilestoneResult) {
	ctx.KVStore(k.storeKey).Set(types.ResultKey(result.Index), k.cdc.MustMarshalBinaryLengthPrefixed(result))
}

// MilestoneResults returns every decided milestone in index order.
func (k Keeper) MilestoneResults(ctx sdk.Context) []types.MilestoneResult {
	results := []types.MilestoneResult{}
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.ResultKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var result types.MilestoneResult
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &result)
		results = append(results, result)
	}
	return results
}

// Initialize lays out the schedule, pays milestone 0 to the beneficiary and
// opens the fund at milestone 1.
func (k Keeper) Initialize(ctx sdk.Context, signer, beneficiary sdk.CUAddress, milestones types.Milestones, now time.Time) sdk.Error {
	fund := k.GetFund(ctx)
	if fund.Status != types.StatusUninitialized {
		return types.ErrAlreadyInitialized(k.codespace)
	}
	if fund.Authority.Empty() || !signer.Equals(fund.Authority) {
		return sdk.ErrUnauthorized(fmt.Sprintf("%s is not the fund authority", signer))
	}
	if beneficiary.Empty() {
		return sdk.ErrInvalidAddress("missing beneficiary address")
	}
	if err := milestones.Validate(k.vk.GetBalance(ctx)); err != nil {
		return types.ErrInvalidMilestones(k.codespace, err.Error())
	}

	first := milestones[0]
	receipt, err := k.vk.Release(ctx, types.ModuleName, first.Tranche, beneficiary)
	if err != nil {
		return err
	}

	for _, m := range milestones {
		k.setMilestone(ctx, types.NewMilestone(m.Index, m.Tranche, m.VoteStart, m.VoteEnd))
	}
	result := types.NewMilestoneResult(0, types.MilestoneApproved, sdk.ZeroInt(), sdk.ZeroInt(), now)
	result.ReceiptID = receipt.ID
	k.setResult(ctx, result)

	fund.Beneficiary = beneficiary
	if len(milestones) == 1 {
		fund.Status = types.StatusFinished
		fund.Current = 0
	} else {
		fund.Status = types.StatusActive
		fund.Current = 1
	}
	k.setFund(ctx, fund)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeInitialize,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, fund.Status.String()),
		),
		sdk.NewEvent(
			types.EventTypeRelease,
			sdk.NewAttribute(types.AttributeKeyMilestone, "0"),
			sdk.NewAttribute(sdk.AttributeKeyAmount, first.Tranche.String()),
			sdk.NewAttribute(types.AttributeKeyReceiptID, receipt.ID),
		),
	})
	k.Logger(ctx).Info("fund initialized", "milestones", len(milestones), "beneficiary", beneficiary.String())
	return nil
}

// VotingOpen reports whether votes are accepted at now.
func (k Keeper) VotingOpen(ctx sdk.Context, now time.Time) bool {
	fund := k.GetFund(ctx)
	if fund.Status != types.StatusActive {
		return false
	}
	milestone, found := k.GetMilestone(ctx, fund.Current)
	return found && milestone.InWindow(now)
}

// MilestoneStatus reports where the milestone at index stands at now.
func (k Keeper) MilestoneStatus(ctx sdk.Context, index uint64, now time.Time) types.MilestoneStatus {
	if result, found := k.GetResult(ctx, index); found {
		return result.Status
	}
	fund := k.GetFund(ctx)
	if fund.Status == types.StatusActive && fund.Current == index && k.VotingOpen(ctx, now) {
		return types.MilestoneVoting
	}
	return types.MilestonePending
}

// CastVote records voter's direction on the current milestone.
func (k Keeper) CastVote(ctx sdk.Context, voter sdk.CUAddress, approve bool, now time.Time) sdk.Error {
	fund := k.GetFund(ctx)
	if fund.Status != types.StatusActive {
		return types.ErrInvalidState(k.codespace, fund.Status)
	}
	milestone, found := k.GetMilestone(ctx, fund.Current)
	if !found || !milestone.InWindow(now) {
		return types.ErrNotVotingPeriod(k.codespace, fund.Current)
	}
	if k.dk.IsRoot(ctx, voter) {
		if _, voted := k.dk.GetVote(ctx, fund.Current, voter); !voted && k.dk.WeightOf(ctx, voter).IsZero() {
			return types.ErrNoVotingPower(k.codespace, voter)
		}
	}
	return k.dk.CastVote(ctx, fund.Current, voter, delegationtypes.VoteOptionFromBool(approve))
}

// Delegate rewires from's vote while the fund is still open.
func (k Keeper) Delegate(ctx sdk.Context, from, to sdk.CUAddress) sdk.Error {
	if status := k.Status(ctx); status.Terminal() {
		return types.ErrInvalidState(k.codespace, status)
	}
	return k.dk.Delegate(ctx, from, to)
}

// Tally returns the live tally of the current milestone and whether its
// window is open at now. A decided milestone reports its final tally.
func (k Keeper) Tally(ctx sdk.Context, now time.Time) types.MilestoneTally {
	fund := k.GetFund(ctx)
	if fund.Status == types.StatusUninitialized {
		return types.MilestoneTally{Tally: delegationtypes.NewTallyResult(sdk.ZeroInt(), sdk.ZeroInt())}
	}
	if result, found := k.GetResult(ctx, fund.Current); found {
		return types.MilestoneTally{Index: fund.Current, Tally: delegationtypes.NewTallyResult(result.Approve, result.Reject)}
	}
	return types.MilestoneTally{
		Index:      fund.Current,
		VotingOpen: k.VotingOpen(ctx, now),
		Tally:      k.dk.Tally(ctx, fund.Current),
	}
}

// Execute decides the current milestone once its window has closed. An
// approval releases the tranche and moves on, a rejection hands the pool
// over to refunds for good.
func (k Keeper) Execute(ctx sdk.Context, now time.Time) (types.MilestoneResult, sdk.Error) {
	fund := k.GetFund(ctx)
	if fund.Status != types.StatusActive {
		return types.MilestoneResult{}, types.ErrNotActive(k.codespace, fund.Status)
	}
	milestone, found := k.GetMilestone(ctx, fund.Current)
	if !found {
		panic(fmt.Sprintf("active fund points at missing milestone %d", fund.Current))
	}
	if !milestone.Closed(now) {
		return types.MilestoneResult{}, types.ErrTooEarly(k.codespace, milestone.Index)
	}

	tally := k.dk.Tally(ctx, milestone.Index)
	result := types.NewMilestoneResult(milestone.Index, types.MilestoneRejected, tally.Approve, tally.Reject, now)

	if tally.Approved() {
		receipt, err := k.vk.Release(ctx, types.ModuleName, milestone.Tranche, fund.Beneficiary)
		if err != nil {
			return types.MilestoneResult{}, err
		}
		result.Status = types.MilestoneApproved
		result.ReceiptID = receipt.ID

		if _, hasNext := k.GetMilestone(ctx, milestone.Index+1); hasNext {
			fund.Current++
		} else {
			fund.Status = types.StatusFinished
		}
	} else {
		fund.Status = types.StatusRefunding
		if err := k.rk.Activate(ctx, now); err != nil {
			return types.MilestoneResult{}, err
		}
	}

	k.setResult(ctx, result)
	k.setFund(ctx, fund)

	events := sdk.Events{
		sdk.NewEvent(
			types.EventTypeExecute,
			sdk.NewAttribute(types.AttributeKeyMilestone, fmt.Sprintf("%d", milestone.Index)),
			sdk.NewAttribute(types.AttributeKeyOutcome, result.Status.String()),
			sdk.NewAttribute(types.AttributeKeyApprove, tally.Approve.String()),
			sdk.NewAttribute(types.AttributeKeyReject, tally.Reject.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, fund.Status.String()),
		),
	}
	if result.Status == types.MilestoneApproved {
		events = events.AppendEvent(sdk.NewEvent(
			types.EventTypeRelease,
			sdk.NewAttribute(types.AttributeKeyMilestone, fmt.Sprintf("%d", milestone.Index)),
			sdk.NewAttribute(sdk.AttributeKeyAmount, milestone.Tranche.String()),
			sdk.NewAttribute(types.AttributeKeyReceiptID, result.ReceiptID),
		))
	}
	ctx.EventManager().EmitEvents(events)

	k.Logger(ctx).Info("milestone executed", "milestone", milestone.Index, "outcome", result.Status.String(),
		"approve", tally.Approve.String(), "reject", tally.Reject.String(), "fund", fund.Status.String())
	return result, nil
}

// ReleasedTranches sums the tranches paid to the beneficiary so far.
func (k Keeper) ReleasedTranches(ctx sdk.Context) sdk.Int {
	released := sdk.ZeroInt()
	for _, result := range k.MilestoneResults(ctx) {
		if result.Status != types.MilestoneApproved {
			continue
		}
		if milestone, found := k.GetMilestone(ctx, result.Index); found {
			released = released.Add(milestone.Tranche)
		}
	}
	return released
}
