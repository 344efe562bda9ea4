package milestone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/store"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone/types"
	"github.com/hbtc-chain/daofund/x/refund"
	"github.com/hbtc-chain/daofund/x/vault"
)

const week = 7 * 24 * time.Hour

var t0 = time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

func at(weeks int) time.Time {
	return t0.Add(time.Duration(weeks) * week)
}

func tokens(n uint64) sdk.Int { return sdk.NewIntWithDecimal(n, 18) }

func finney(n uint64) sdk.Int { return sdk.NewIntWithDecimal(n, 15) }

func makeTestCodec() *codec.Codec {
	var cdc = codec.New()
	sdk.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	vault.RegisterCodec(cdc)
	delegation.RegisterCodec(cdc)
	refund.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

func newTestAddr() sdk.CUAddress {
	return sdk.CUAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// testInput wires the fund against real ledger, vault, delegation and refund keepers.
type testInput struct {
	ctx    sdk.Context
	lk     ledger.Keeper
	vk     vault.Keeper
	dk     delegation.Keeper
	rk     refund.Keeper
	keeper Keeper

	deployer  sdk.CUAddress
	team      sdk.CUAddress
	investors []sdk.CUAddress
	nobody    sdk.CUAddress
}

// createTestInput seeds a 100 finney pool and mints 450/300/250 tokens to
// three investors. The fund is left uninitialized under deployer's authority.
func createTestInput(t *testing.T) testInput {
	keyLedger := sdk.NewKVStoreKey(ledger.StoreKey)
	keyVault := sdk.NewKVStoreKey(vault.StoreKey)
	keyDelegation := sdk.NewKVStoreKey(delegation.StoreKey)
	keyRefund := sdk.NewKVStoreKey(refund.StoreKey)
	keyMilestone := sdk.NewKVStoreKey(types.StoreKey)

	ms := store.NewRootMultiStore(dbm.NewMemDB())
	ms.MountStores(keyLedger, keyVault, keyDelegation, keyRefund, keyMilestone)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "milestone-chain", Time: t0}, log.NewNopLogger())
	cdc := makeTestCodec()

	lk := ledger.NewKeeper(cdc, keyLedger, ledger.DefaultCodespace)
	vk := vault.NewKeeper(cdc, keyVault, vault.DefaultCodespace, types.ModuleName, refund.ModuleName)
	dk := delegation.NewKeeper(cdc, keyDelegation, lk, delegation.DefaultCodespace)
	rk := refund.NewKeeper(cdc, keyRefund, lk, vk, refund.DefaultCodespace)
	keeper := NewKeeper(cdc, keyMilestone, dk, vk, rk, types.DefaultCodespace)

	input := testInput{
		ctx:       ctx,
		lk:        lk,
		vk:        vk,
		dk:        dk,
		rk:        rk,
		keeper:    keeper,
		deployer:  newTestAddr(),
		team:      newTestAddr(),
		investors: []sdk.CUAddress{newTestAddr(), newTestAddr(), newTestAddr()},
		nobody:    newTestAddr(),
	}

	vk.Seed(ctx, finney(100))
	for i, amount := range []uint64{450, 300, 250} {
		lk.Mint(ctx, input.investors[i], tokens(amount))
	}
	InitGenesis(ctx, keeper, NewGenesisState(types.NewFund(input.deployer), types.Milestones{}, nil))
	return input
}

// testMilestones is 25 finney up front, 45 voted in weeks [2, 42) and 30 in [43, 63).
func testMilestones() types.Milestones {
	return types.Milestones{
		types.NewMilestone(0, finney(25), time.Time{}, time.Time{}),
		types.NewMilestone(1, finney(45), at(2), at(42)),
		types.NewMilestone(2, finney(30), at(43), at(63)),
	}
}

// instantiate returns an input whose fund is initialized with testMilestones.
func instantiate(t *testing.T) testInput {
	input := createTestInput(t)
	require.Nil(t, input.keeper.Initialize(input.ctx, input.deployer, input.team, testMilestones(), t0))
	return input
}

func (input testInput) investor(i int) sdk.CUAddress {
	return input.investors[i-1]
}

func (input testInput) requireVotes(t *testing.T, now time.Time, approve, reject uint64) {
	tally := input.keeper.Tally(input.ctx, now).Tally
	require.Equal(t, tokens(approve).String(), tally.Approve.String(), "approval votes")
	require.Equal(t, tokens(reject).String(), tally.Reject.String(), "disapproval votes")
}

func (input testInput) requireInvariants(t *testing.T) {
	msg, broken := AllInvariants(input.keeper)(input.ctx)
	require.False(t, broken, msg)
	msg, broken = refund.SolvencyInvariant(input.rk)(input.ctx)
	if input.rk.IsActive(input.ctx) {
		require.False(t, broken, msg)
	}
}
