package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

const (
	// ModuleName is the name of the delegation module
	ModuleName = "delegation"

	// StoreKey is the default store key for delegation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for delegation
	QuerierRoute = ModuleName
)

// Keys for delegation store
// Items are stored with the following key: values
//
// - 0x01<from_Bytes>: to_Bytes
//
// - 0x02: edge count
//
// - 0x03<milestone_Bytes><voter_Bytes>: Vote
var (
	EdgeKeyPrefix = []byte{0x01}
	EdgeCountKey  = []byte{0x02}
	VoteKeyPrefix = []byte{0x03}
)

// EdgeKey gets the key of the delegation written by from
func EdgeKey(from sdk.CUAddress) []byte {
	return append(EdgeKeyPrefix, from.Bytes()...)
}

// VotesKey gets the prefix of all votes cast on one milestone
func VotesKey(milestone uint64) []byte {
	return append(VoteKeyPrefix, sdk.Uint64ToBigEndian(milestone)...)
}

// VoteKey gets the key of one voter's vote on a milestone
func VoteKey(milestone uint64, voter sdk.CUAddress) []byte {
	return append(VotesKey(milestone), voter.Bytes()...)
}
