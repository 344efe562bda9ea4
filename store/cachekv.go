package store

import (
	"bytes"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	dbm "github.com/tendermint/tm-db"

	sdk "github.com/hbtc-chain/daofund/types"
)

// If value is nil but deleted is false, it means the parent doesn't have the
// key. (No need to delete upon Write())
type cValue struct {
	value   []byte
	deleted bool
	dirty   bool
}

// cacheKVStore wraps an in-memory cache around an underlying sdk.KVStore.
// Pending writes are kept ordered by key so Write applies them
// deterministically and iterators can merge them with the parent.
type cacheKVStore struct {
	mtx    sync.Mutex
	cache  *treemap.Map
	parent sdk.KVStore
}

var _ sdk.CacheKVStore = (*cacheKVStore)(nil)

// NewCacheKVStore branches parent.
func NewCacheKVStore(parent sdk.KVStore) sdk.CacheKVStore {
	return &cacheKVStore{
		cache:  treemap.NewWithStringComparator(),
		parent: parent,
	}
}

func (ci *cacheKVStore) getEntry(key []byte) (*cValue, bool) {
	v, ok := ci.cache.Get(string(key))
	if !ok {
		return nil, false
	}
	return v.(*cValue), true
}

// Get implements sdk.KVStore.
func (ci *cacheKVStore) Get(key []byte) (value []byte) {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()
	assertValidKey(key)

	cacheValue, ok := ci.getEntry(key)
	if !ok {
		value = ci.parent.Get(key)
		ci.setCacheValue(key, value, false, false)
	} else {
		value = cacheValue.value
	}

	return value
}

// Set implements sdk.KVStore.
func (ci *cacheKVStore) Set(key []byte, value []byte) {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()
	assertValidKey(key)
	assertValidValue(value)

	ci.setCacheValue(key, value, false, true)
}

// Has implements sdk.KVStore.
func (ci *cacheKVStore) Has(key []byte) bool {
	value := ci.Get(key)
	return value != nil
}

// Delete implements sdk.KVStore.
func (ci *cacheKVStore) Delete(key []byte) {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()
	assertValidKey(key)

	ci.setCacheValue(key, nil, true, true)
}

// Write implements sdk.CacheKVStore.
func (ci *cacheKVStore) Write() {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()

	it := ci.cache.Iterator()
	for it.Next() {
		cacheValue := it.Value().(*cValue)
		if !cacheValue.dirty {
			continue
		}
		key := []byte(it.Key().(string))
		if cacheValue.deleted {
			ci.parent.Delete(key)
		} else if cacheValue.value != nil {
			ci.parent.Set(key, cacheValue.value)
		}
	}

	ci.cache.Clear()
}

// Iterator implements sdk.KVStore.
func (ci *cacheKVStore) Iterator(start, end []byte) sdk.Iterator {
	return ci.iterator(start, end, true)
}

// ReverseIterator implements sdk.KVStore.
func (ci *cacheKVStore) ReverseIterator(start, end []byte) sdk.Iterator {
	return ci.iterator(start, end, false)
}

// iterator materializes the merged view of parent and cache over [start, end).
func (ci *cacheKVStore) iterator(start, end []byte, ascending bool) sdk.Iterator {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()

	merged := treemap.NewWithStringComparator()

	parent := ci.parent.Iterator(start, end)
	for ; parent.Valid(); parent.Next() {
		merged.Put(string(parent.Key()), parent.Value())
	}
	parent.Close()

	it := ci.cache.Iterator()
	for it.Next() {
		key := []byte(it.Key().(string))
		if !inDomain(key, start, end) {
			continue
		}
		cacheValue := it.Value().(*cValue)
		switch {
		case cacheValue.deleted:
			merged.Remove(it.Key())
		case cacheValue.value != nil:
			merged.Put(it.Key(), cacheValue.value)
		}
	}

	items := make([]kvPair, 0, merged.Size())
	mit := merged.Iterator()
	if ascending {
		for mit.Next() {
			items = append(items, kvPair{key: []byte(mit.Key().(string)), value: mit.Value().([]byte)})
		}
	} else {
		for mit.End(); mit.Prev(); {
			items = append(items, kvPair{key: []byte(mit.Key().(string)), value: mit.Value().([]byte)})
		}
	}

	return newMemIterator(start, end, items)
}

// Only entrypoint to mutate ci.cache.
func (ci *cacheKVStore) setCacheValue(key, value []byte, deleted bool, dirty bool) {
	ci.cache.Put(string(key), &cValue{
		value:   value,
		deleted: deleted,
		dirty:   dirty,
	})
}

func inDomain(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

//----------------------------------------

type kvPair struct {
	key   []byte
	value []byte
}

// memIterator iterates over a materialized slice of pairs.
type memIterator struct {
	start, end []byte
	items      []kvPair
	pos        int
}

var _ dbm.Iterator = (*memIterator)(nil)

func newMemIterator(start, end []byte, items []kvPair) *memIterator {
	return &memIterator{start: start, end: end, items: items}
}

func (mi *memIterator) Domain() ([]byte, []byte) {
	return mi.start, mi.end
}

func (mi *memIterator) Valid() bool {
	return mi.pos < len(mi.items)
}

func (mi *memIterator) assertValid() {
	if !mi.Valid() {
		panic("memIterator is invalid")
	}
}

func (mi *memIterator) Next() {
	mi.assertValid()
	mi.pos++
}

func (mi *memIterator) Key() []byte {
	mi.assertValid()
	return mi.items[mi.pos].key
}

func (mi *memIterator) Value() []byte {
	mi.assertValid()
	return mi.items[mi.pos].value
}

func (mi *memIterator) Close() {
	mi.items = nil
}
