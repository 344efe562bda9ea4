package delegation

import (
	"testing"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/store"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation/types"
	"github.com/hbtc-chain/daofund/x/ledger"
)

func makeTestCodec() *codec.Codec {
	var cdc = codec.New()
	sdk.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

// createTestInput mounts a ledger holding the given balances, one fresh address each.
func createTestInput(t *testing.T, balances ...uint64) (sdk.Context, ledger.Keeper, Keeper, []sdk.CUAddress) {
	keyLedger := sdk.NewKVStoreKey(ledger.StoreKey)
	keyDelegation := sdk.NewKVStoreKey(types.StoreKey)

	ms := store.NewRootMultiStore(dbm.NewMemDB())
	ms.MountStores(keyLedger, keyDelegation)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "delegation-chain"}, log.NewNopLogger())
	cdc := makeTestCodec()

	lk := ledger.NewKeeper(cdc, keyLedger, ledger.DefaultCodespace)
	keeper := NewKeeper(cdc, keyDelegation, lk, types.DefaultCodespace)

	addrs := make([]sdk.CUAddress, len(balances))
	for i, amount := range balances {
		addrs[i] = sdk.CUAddress(secp256k1.GenPrivKey().PubKey().Address())
		if amount > 0 {
			lk.Mint(ctx, addrs[i], sdk.NewInt(amount))
		}
	}
	return ctx, lk, keeper, addrs
}
