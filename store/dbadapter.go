package store

import (
	dbm "github.com/tendermint/tm-db"

	sdk "github.com/hbtc-chain/daofund/types"
)

var _ sdk.KVStore = Store{}

// Store wraps a tm-db DB so it can be mounted into a multistore.
type Store struct {
	dbm.DB
}

// NewStore returns a KVStore backed by db.
func NewStore(db dbm.DB) Store {
	return Store{DB: db}
}

// Set panics on a nil value; tm-db accepts it silently.
func (dsa Store) Set(key, value []byte) {
	assertValidKey(key)
	assertValidValue(value)
	dsa.DB.Set(key, value)
}

func assertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is nil or empty")
	}
}

func assertValidValue(value []byte) {
	if value == nil {
		panic("value is nil")
	}
}
