package store

import (
	"fmt"

	dbm "github.com/tendermint/tm-db"

	sdk "github.com/hbtc-chain/daofund/types"
)

// RootMultiStore mounts one prefixed view of a single tm-db database per store key.
type RootMultiStore struct {
	db     dbm.DB
	stores map[sdk.StoreKey]sdk.KVStore
	keys   map[string]sdk.StoreKey
}

var _ sdk.MultiStore = (*RootMultiStore)(nil)

// NewRootMultiStore returns an empty multistore on db.
func NewRootMultiStore(db dbm.DB) *RootMultiStore {
	return &RootMultiStore{
		db:     db,
		stores: make(map[sdk.StoreKey]sdk.KVStore),
		keys:   make(map[string]sdk.StoreKey),
	}
}

// MountStore mounts key under the prefix "<name>/".
func (rs *RootMultiStore) MountStore(key sdk.StoreKey) {
	if key == nil {
		panic("MountStore() key cannot be nil")
	}
	if _, ok := rs.keys[key.Name()]; ok {
		panic(fmt.Sprintf("store duplicate store key name %v", key.Name()))
	}
	rs.keys[key.Name()] = key
	rs.stores[key] = NewStore(dbm.NewPrefixDB(rs.db, []byte(key.Name()+"/")))
}

// MountStores mounts every key.
func (rs *RootMultiStore) MountStores(keys ...sdk.StoreKey) {
	for _, key := range keys {
		rs.MountStore(key)
	}
}

// GetKVStore implements sdk.MultiStore.
func (rs *RootMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	s, ok := rs.stores[key]
	if !ok {
		panic(fmt.Sprintf("store does not exist for key: %s", key.Name()))
	}
	return s
}

// CacheMultiStore implements sdk.MultiStore.
func (rs *RootMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	return newCacheMultiStore(rs.stores)
}

//----------------------------------------

type cacheMultiStore struct {
	stores map[sdk.StoreKey]sdk.CacheKVStore
}

var _ sdk.CacheMultiStore = cacheMultiStore{}

func newCacheMultiStore(parents map[sdk.StoreKey]sdk.KVStore) cacheMultiStore {
	cms := cacheMultiStore{stores: make(map[sdk.StoreKey]sdk.CacheKVStore, len(parents))}
	for key, parent := range parents {
		cms.stores[key] = NewCacheKVStore(parent)
	}
	return cms
}

// GetKVStore implements sdk.MultiStore.
func (cms cacheMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	s, ok := cms.stores[key]
	if !ok {
		panic(fmt.Sprintf("store does not exist for key: %s", key.Name()))
	}
	return s
}

// CacheMultiStore implements sdk.MultiStore.
func (cms cacheMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	parents := make(map[sdk.StoreKey]sdk.KVStore, len(cms.stores))
	for key, s := range cms.stores {
		parents[key] = s
	}
	return newCacheMultiStore(parents)
}

// Write implements sdk.CacheMultiStore.
func (cms cacheMultiStore) Write() {
	for _, s := range cms.stores {
		s.Write()
	}
}
