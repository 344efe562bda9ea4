package milestone

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/store"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone/internal/mocks"
	"github.com/hbtc-chain/daofund/x/milestone/types"
	"github.com/hbtc-chain/daofund/x/refund"
	"github.com/hbtc-chain/daofund/x/vault"
)

func TestEndBlockerExecutesClosedMilestone(t *testing.T) {
	input := instantiate(t)
	require.Nil(t, input.keeper.CastVote(input.ctx, input.investor(1), true, at(3)))

	EndBlocker(input.ctx.WithBlockTime(at(41)), input.keeper)
	require.Equal(t, uint64(1), input.keeper.GetFund(input.ctx).Current)

	ctx := input.ctx.WithBlockTime(at(42)).WithEventManager(sdk.NewEventManager())
	EndBlocker(ctx, input.keeper)
	require.Equal(t, uint64(2), input.keeper.GetFund(input.ctx).Current)
	require.Equal(t, finney(70).String(), input.vk.GetPayout(input.ctx, input.team).String())
	_, found := ctx.EventManager().Events().AttributeValue(types.EventTypeExecute, types.AttributeKeyOutcome)
	require.True(t, found)

	// nothing voted on milestone 2, so it fails the fund once closed
	EndBlocker(input.ctx.WithBlockTime(at(63)), input.keeper)
	require.Equal(t, types.StatusRefunding, input.keeper.Status(input.ctx))
	require.True(t, input.rk.IsActive(input.ctx))

	EndBlocker(input.ctx.WithBlockTime(at(80)), input.keeper)
	require.Len(t, input.keeper.MilestoneResults(input.ctx), 3)
}

type mockInput struct {
	ctx    sdk.Context
	lk     ledger.Keeper
	vk     *mocks.MockVaultKeeper
	rk     *mocks.MockRefundKeeper
	keeper Keeper
	team   sdk.CUAddress
	voter  sdk.CUAddress
}

// createMockInput wires real ledger and delegation keepers with a mocked vault
// and refund engine, and restores a fund sitting at milestone 1.
func createMockInput(t *testing.T, ctrl *gomock.Controller) mockInput {
	keyLedger := sdk.NewKVStoreKey(ledger.StoreKey)
	keyDelegation := sdk.NewKVStoreKey(delegation.StoreKey)
	keyMilestone := sdk.NewKVStoreKey(types.StoreKey)

	ms := store.NewRootMultiStore(dbm.NewMemDB())
	ms.MountStores(keyLedger, keyDelegation, keyMilestone)
	ctx := sdk.NewContext(ms, abci.Header{ChainID: "milestone-chain", Time: t0}, log.NewNopLogger())
	cdc := makeTestCodec()

	lk := ledger.NewKeeper(cdc, keyLedger, ledger.DefaultCodespace)
	dk := delegation.NewKeeper(cdc, keyDelegation, lk, delegation.DefaultCodespace)
	vk := mocks.NewMockVaultKeeper(ctrl)
	rk := mocks.NewMockRefundKeeper(ctrl)

	input := mockInput{
		ctx:    ctx,
		lk:     lk,
		vk:     vk,
		rk:     rk,
		keeper: NewKeeper(cdc, keyMilestone, dk, vk, rk, types.DefaultCodespace),
		team:   newTestAddr(),
		voter:  newTestAddr(),
	}
	lk.Mint(ctx, input.voter, tokens(10))

	fund := types.NewFund(newTestAddr())
	fund.Status = types.StatusActive
	fund.Current = 1
	fund.Beneficiary = input.team
	results := []types.MilestoneResult{
		types.NewMilestoneResult(0, types.MilestoneApproved, sdk.ZeroInt(), sdk.ZeroInt(), t0),
	}
	InitGenesis(ctx, input.keeper, NewGenesisState(fund, testMilestones(), results))
	return input
}

func TestExecuteReleaseFailureLeavesFundUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	input := createMockInput(t, ctrl)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.voter, true, at(3)))

	input.vk.EXPECT().Release(gomock.Any(), types.ModuleName, gomock.Eq(finney(45)), gomock.Eq(input.team)).
		Return(vault.Receipt{}, vault.ErrInsufficientFunds(vault.DefaultCodespace, "vault holds 0")).Times(1)

	_, err := input.keeper.Execute(input.ctx, at(43))
	require.NotNil(t, err)
	require.Equal(t, vault.DefaultCodespace, err.Codespace())

	fund := input.keeper.GetFund(input.ctx)
	require.Equal(t, types.StatusActive, fund.Status)
	require.Equal(t, uint64(1), fund.Current)
	_, decided := input.keeper.GetResult(input.ctx, 1)
	require.False(t, decided)
}

func TestExecuteApprovedRecordsReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	input := createMockInput(t, ctrl)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.voter, true, at(3)))
	input.vk.EXPECT().Release(gomock.Any(), types.ModuleName, gomock.Eq(finney(45)), gomock.Eq(input.team)).
		Return(vault.Receipt{ID: "receipt-1", Seq: 1}, nil).Times(1)

	result, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	require.Equal(t, "receipt-1", result.ReceiptID)
	stored, found := input.keeper.GetResult(input.ctx, 1)
	require.True(t, found)
	require.Equal(t, "receipt-1", stored.ReceiptID)
}

func TestExecuteRejectedActivatesRefunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	input := createMockInput(t, ctrl)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.voter, false, at(3)))
	input.rk.EXPECT().Activate(gomock.Any(), gomock.Eq(at(43))).Return(nil).Times(1)

	result, err := input.keeper.Execute(input.ctx, at(43))
	require.Nil(t, err)
	require.Equal(t, types.MilestoneRejected, result.Status)
	require.Equal(t, types.StatusRefunding, input.keeper.Status(input.ctx))

	_, err = input.keeper.Execute(input.ctx, at(44))
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotActive, err.Code())
}

func TestExecuteActivationFailureLeavesFundUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	input := createMockInput(t, ctrl)

	input.rk.EXPECT().Activate(gomock.Any(), gomock.Any()).
		Return(refund.ErrAlreadyActivated(refund.DefaultCodespace)).Times(1)

	_, err := input.keeper.Execute(input.ctx, at(43))
	require.NotNil(t, err)
	require.Equal(t, refund.CodeAlreadyActivated, err.Code())
	require.Equal(t, types.StatusActive, input.keeper.Status(input.ctx))
}

func TestEndBlockerLogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	input := createMockInput(t, ctrl)

	require.Nil(t, input.keeper.CastVote(input.ctx, input.voter, true, at(3)))
	input.vk.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(vault.Receipt{}, sdk.ErrInternal("vault offline")).Times(2)

	for _, when := range []time.Time{at(43), at(44)} {
		require.NotPanics(t, func() { EndBlocker(input.ctx.WithBlockTime(when), input.keeper) })
		require.Equal(t, types.StatusActive, input.keeper.Status(input.ctx))
	}
}
