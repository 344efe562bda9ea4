package refund

import (
	"testing"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/store"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/refund/types"
	"github.com/hbtc-chain/daofund/x/vault"
)

var testTime = time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

func makeTestCodec() *codec.Codec {
	var cdc = codec.New()
	sdk.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	vault.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

type testInput struct {
	ctx    sdk.Context
	lk     ledger.Keeper
	vk     vault.Keeper
	keeper Keeper
	addrs  []sdk.CUAddress
}

func createTestInput(t *testing.T, pool sdk.Int, balances ...sdk.Int) testInput {
	keyLedger := sdk.NewKVStoreKey(ledger.StoreKey)
	keyVault := sdk.NewKVStoreKey(vault.StoreKey)
	keyRefund := sdk.NewKVStoreKey(types.StoreKey)

	ms := store.NewRootMultiStore(dbm.NewMemDB())
	ms.MountStores(keyLedger, keyVault, keyRefund)

	header := abci.Header{ChainID: "refund-chain", Time: testTime}
	ctx := sdk.NewContext(ms, header, log.NewNopLogger())
	cdc := makeTestCodec()

	lk := ledger.NewKeeper(cdc, keyLedger, ledger.DefaultCodespace)
	vk := vault.NewKeeper(cdc, keyVault, vault.DefaultCodespace, types.ModuleName)
	vk.Seed(ctx, pool)
	keeper := NewKeeper(cdc, keyRefund, lk, vk, types.DefaultCodespace)

	addrs := make([]sdk.CUAddress, len(balances))
	for i, amount := range balances {
		addrs[i] = sdk.CUAddress(secp256k1.GenPrivKey().PubKey().Address())
		if amount.IsPositive() {
			lk.Mint(ctx, addrs[i], amount)
		}
	}
	return testInput{ctx: ctx, lk: lk, vk: vk, keeper: keeper, addrs: addrs}
}

func tokens(n uint64) sdk.Int { return sdk.NewIntWithDecimal(n, 18) }

func finney(n uint64) sdk.Int { return sdk.NewIntWithDecimal(n, 15) }
