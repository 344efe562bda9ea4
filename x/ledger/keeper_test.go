package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger/types"
)

func TestMintAndTransfer(t *testing.T) {
	ctx, k := createTestInput(t)
	addrs := createTestAddrs(2)

	k.Mint(ctx, addrs[0], sdk.NewInt(450))
	k.Mint(ctx, addrs[1], sdk.NewInt(550))
	require.Equal(t, "1000", k.TotalSupply(ctx).String())

	require.Nil(t, k.Transfer(ctx, addrs[0], addrs[1], sdk.NewInt(50)))
	require.Equal(t, "400", k.GetBalance(ctx, addrs[0]).String())
	require.Equal(t, "600", k.GetBalance(ctx, addrs[1]).String())
	require.Equal(t, "1000", k.TotalSupply(ctx).String())

	err := k.Transfer(ctx, addrs[0], addrs[1], sdk.NewInt(401))
	require.NotNil(t, err)
	require.Equal(t, types.CodeInsufficientBalance, err.Code())
	require.Equal(t, "400", k.GetBalance(ctx, addrs[0]).String())
}

func TestTransferWholeBalanceRemovesHolder(t *testing.T) {
	ctx, k := createTestInput(t)
	addrs := createTestAddrs(2)

	k.Mint(ctx, addrs[0], sdk.NewInt(10))
	require.Nil(t, k.Transfer(ctx, addrs[0], addrs[1], sdk.NewInt(10)))
	require.True(t, k.GetBalance(ctx, addrs[0]).IsZero())

	holders := k.GetBalances(ctx)
	require.Len(t, holders, 1)
	require.True(t, holders[0].Address.Equals(addrs[1]))
}

func TestBurn(t *testing.T) {
	ctx, k := createTestInput(t)
	addrs := createTestAddrs(2)

	k.Mint(ctx, addrs[0], sdk.NewInt(300))
	k.Mint(ctx, addrs[1], sdk.NewInt(700))

	burned := k.Burn(ctx, addrs[0])
	require.Equal(t, "300", burned.String())
	require.True(t, k.GetBalance(ctx, addrs[0]).IsZero())
	require.Equal(t, "700", k.TotalSupply(ctx).String())

	// burning an empty balance is a no-op
	require.True(t, k.Burn(ctx, addrs[0]).IsZero())
	require.Equal(t, "700", k.TotalSupply(ctx).String())

	_, broken := TotalSupplyInvariant(k)(ctx)
	require.False(t, broken)
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, k := createTestInput(t)
	addrs := createTestAddrs(3)

	genesis := NewGenesisState([]Balance{
		NewBalance(addrs[0], sdk.NewInt(450)),
		NewBalance(addrs[1], sdk.NewInt(300)),
		NewBalance(addrs[2], sdk.NewInt(250)),
	})
	require.NoError(t, ValidateGenesis(genesis))
	InitGenesis(ctx, k, genesis)
	require.Equal(t, "1000", k.TotalSupply(ctx).String())

	exported := ExportGenesis(ctx, k)
	require.Len(t, exported.Balances, 3)

	dup := NewGenesisState([]Balance{NewBalance(addrs[0], sdk.NewInt(1)), NewBalance(addrs[0], sdk.NewInt(2))})
	require.Error(t, ValidateGenesis(dup))
	zero := NewGenesisState([]Balance{NewBalance(addrs[0], sdk.ZeroInt())})
	require.Error(t, ValidateGenesis(zero))
}
