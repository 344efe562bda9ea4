package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/vault/types"
)

func TestRelease(t *testing.T) {
	ctx, k := createTestInput(t, sdk.NewInt(100))
	recipient := newTestAddr()

	receipt, err := k.Release(ctx, holder, sdk.NewInt(25), recipient)
	require.Nil(t, err)
	require.Equal(t, uint64(0), receipt.Seq)
	require.Equal(t, ReceiptID("vault-chain", 0), receipt.ID)
	require.True(t, receipt.Recipient.Equals(recipient))
	require.Equal(t, "75", k.GetBalance(ctx).String())
	require.Equal(t, "25", k.GetPayout(ctx, recipient).String())

	receipt, err = k.Release(ctx, holder, sdk.NewInt(45), recipient)
	require.Nil(t, err)
	require.Equal(t, uint64(1), receipt.Seq)
	require.NotEqual(t, ReceiptID("vault-chain", 0), receipt.ID)
	require.Equal(t, "30", k.GetBalance(ctx).String())
	require.Equal(t, "70", k.GetPayout(ctx, recipient).String())
	require.Len(t, k.GetReceipts(ctx), 2)
	require.Equal(t, "70", k.GetReleased(ctx).String())

	_, broken := ConservationInvariant(k)(ctx)
	require.False(t, broken)
}

func TestReleaseRejections(t *testing.T) {
	ctx, k := createTestInput(t, sdk.NewInt(10))
	recipient := newTestAddr()

	_, err := k.Release(ctx, stranger, sdk.NewInt(1), recipient)
	require.NotNil(t, err)
	require.Equal(t, types.CodeNotPermitted, err.Code())

	_, err = k.Release(ctx, holder, sdk.NewInt(11), recipient)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInsufficientFunds, err.Code())

	_, err = k.Release(ctx, holder, sdk.ZeroInt(), recipient)
	require.NotNil(t, err)

	require.Equal(t, "10", k.GetBalance(ctx).String())
	require.Empty(t, k.GetReceipts(ctx))
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, k := createTestInput(t, sdk.NewInt(100))
	recipient := newTestAddr()
	_, err := k.Release(ctx, holder, sdk.NewInt(40), recipient)
	require.Nil(t, err)

	exported := ExportGenesis(ctx, k)
	require.NoError(t, ValidateGenesis(exported))
	require.Equal(t, "60", exported.Balance.String())

	ctx2, k2 := createTestInput(t, sdk.ZeroInt())
	InitGenesis(ctx2, k2, exported)
	require.Equal(t, "60", k2.GetBalance(ctx2).String())
	require.Equal(t, "100", k2.GetDeposited(ctx2).String())
	require.Equal(t, "40", k2.GetPayout(ctx2, recipient).String())

	// sequence continues after the restored receipts
	receipt, err := k2.Release(ctx2, holder, sdk.NewInt(1), recipient)
	require.Nil(t, err)
	require.Equal(t, uint64(1), receipt.Seq)

	_, broken := ConservationInvariant(k2)(ctx2)
	require.False(t, broken)
}

func TestQuerier(t *testing.T) {
	ctx, k := createTestInput(t, sdk.NewInt(100))
	recipient := newTestAddr()
	_, err := k.Release(ctx, holder, sdk.NewInt(5), recipient)
	require.Nil(t, err)

	querier := NewQuerier(k)

	res, qerr := querier(ctx, []string{QueryBalance}, abci.RequestQuery{})
	require.Nil(t, qerr)
	var balance sdk.Int
	require.NoError(t, ModuleCdc.UnmarshalJSON(res, &balance))
	require.Equal(t, "95", balance.String())

	bz, jerr := ModuleCdc.MarshalJSON(NewQueryPayoutParams(recipient))
	require.NoError(t, jerr)
	res, qerr = querier(ctx, []string{QueryPayout}, abci.RequestQuery{Data: bz})
	require.Nil(t, qerr)
	require.NoError(t, ModuleCdc.UnmarshalJSON(res, &balance))
	require.Equal(t, "5", balance.String())

	res, qerr = querier(ctx, []string{QueryReceipts}, abci.RequestQuery{})
	require.Nil(t, qerr)
	var receipts []Receipt
	require.NoError(t, ModuleCdc.UnmarshalJSON(res, &receipts))
	require.Len(t, receipts, 1)
}
