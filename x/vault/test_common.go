package vault

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
	"github.com/hbtc-chain/daofund/x/vault/types"
)

var (
	holder   = "holder"
	stranger = "stranger"
)

func makeTestCodec() *codec.Codec {
	var cdc = codec.New()
	sdk.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

func createTestInput(t *testing.T, pool sdk.Int) (sdk.Context, Keeper) {
	keyVault := sdk.NewKVStoreKey(types.StoreKey)

	ms := store.NewRootMultiStore(dbm.NewMemDB())
	ms.MountStore(keyVault)

	header := abci.Header{ChainID: "vault-chain", Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	ctx := sdk.NewContext(ms, header, log.NewNopLogger())
	keeper := NewKeeper(makeTestCodec(), keyVault, types.DefaultCodespace, holder)
	keeper.Seed(ctx, pool)
	return ctx, keeper
}

func newTestAddr() sdk.CUAddress {
	return sdk.CUAddress(secp256k1.GenPrivKey().PubKey().Address())
}
