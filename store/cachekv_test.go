package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	sdk "github.com/hbtc-chain/daofund/types"
)

func keyFmt(i int) []byte { return []byte{'k', byte('0' + i)} }
func valFmt(i int) []byte { return []byte{'v', byte('0' + i)} }

func TestCacheKVStoreWrite(t *testing.T) {
	parent := NewStore(dbm.NewMemDB())
	parent.Set(keyFmt(1), valFmt(1))

	st := NewCacheKVStore(parent)
	require.Equal(t, valFmt(1), st.Get(keyFmt(1)))

	st.Set(keyFmt(2), valFmt(2))
	st.Delete(keyFmt(1))
	require.Nil(t, st.Get(keyFmt(1)))
	require.Equal(t, valFmt(2), st.Get(keyFmt(2)))

	// parent untouched until Write
	require.Equal(t, valFmt(1), parent.Get(keyFmt(1)))
	require.False(t, parent.Has(keyFmt(2)))

	st.Write()
	require.False(t, parent.Has(keyFmt(1)))
	require.Equal(t, valFmt(2), parent.Get(keyFmt(2)))
}

func TestCacheKVStoreDiscard(t *testing.T) {
	parent := NewStore(dbm.NewMemDB())
	st := NewCacheKVStore(parent)
	st.Set(keyFmt(1), valFmt(1))
	// dropping the branch without Write leaves no trace
	require.False(t, parent.Has(keyFmt(1)))
}

func TestCacheKVStoreIterator(t *testing.T) {
	parent := NewStore(dbm.NewMemDB())
	for i := 0; i < 5; i += 2 {
		parent.Set(keyFmt(i), valFmt(i))
	}

	st := NewCacheKVStore(parent)
	st.Set(keyFmt(1), valFmt(1))
	st.Set(keyFmt(3), valFmt(3))
	st.Delete(keyFmt(2))

	var keys [][]byte
	it := st.Iterator(nil, nil)
	for ; it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	it.Close()
	require.Equal(t, [][]byte{keyFmt(0), keyFmt(1), keyFmt(3), keyFmt(4)}, keys)

	keys = nil
	rit := st.ReverseIterator(keyFmt(1), keyFmt(4))
	for ; rit.Valid(); rit.Next() {
		keys = append(keys, rit.Key())
	}
	rit.Close()
	require.Equal(t, [][]byte{keyFmt(3), keyFmt(1)}, keys)
}

func TestMultiStoreBranching(t *testing.T) {
	keyA, keyB := sdk.NewKVStoreKey("a"), sdk.NewKVStoreKey("b")
	rs := NewRootMultiStore(dbm.NewMemDB())
	rs.MountStores(keyA, keyB)
	require.Panics(t, func() { rs.MountStore(sdk.NewKVStoreKey("a")) })

	cms := rs.CacheMultiStore()
	cms.GetKVStore(keyA).Set([]byte("x"), []byte("1"))
	nested := cms.CacheMultiStore()
	nested.GetKVStore(keyB).Set([]byte("x"), []byte("2"))
	nested.Write()

	require.Nil(t, rs.GetKVStore(keyB).Get([]byte("x")))
	cms.Write()
	require.Equal(t, []byte("1"), rs.GetKVStore(keyA).Get([]byte("x")))
	require.Equal(t, []byte("2"), rs.GetKVStore(keyB).Get([]byte("x")))

	// prefixes keep stores apart
	it := sdk.KVStorePrefixIterator(rs.GetKVStore(keyA), []byte("x"))
	defer it.Close()
	require.True(t, it.Valid())
	require.Equal(t, []byte("1"), it.Value())
	it.Next()
	require.False(t, it.Valid())
}
