package ledger

import (
	"testing"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/store"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger/types"
)

// create a codec used only for testing
func makeTestCodec() *codec.Codec {
	var cdc = codec.New()
	sdk.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

func createTestInput(t *testing.T) (sdk.Context, Keeper) {
	keyLedger := sdk.NewKVStoreKey(types.StoreKey)

	ms := store.NewRootMultiStore(dbm.NewMemDB())
	ms.MountStore(keyLedger)

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "ledger-chain"}, log.NewNopLogger())
	keeper := NewKeeper(makeTestCodec(), keyLedger, types.DefaultCodespace)
	return ctx, keeper
}

func createTestAddrs(n int) []sdk.CUAddress {
	addrs := make([]sdk.CUAddress, n)
	for i := range addrs {
		addrs[i] = sdk.CUAddress(secp256k1.GenPrivKey().PubKey().Address())
	}
	return addrs
}
