package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

const (
	// ModuleName is the name of the milestone module
	ModuleName = "milestone"

	// StoreKey is the default store key for milestone
	StoreKey = ModuleName

	// RouterKey is the message route for milestone
	RouterKey = ModuleName

	// QuerierRoute is the querier route for milestone
	QuerierRoute = ModuleName

	TypeMsgInitialize = "initialize"
	TypeMsgDelegate   = "delegate"
	TypeMsgCastVote   = "cast_vote"
	TypeMsgExecute    = "execute"
)

// Keys for milestone store
// Items are stored with the following key: values
//
// - 0x01: Fund
//
// - 0x02<index_Bytes>: Milestone
//
// - 0x03<index_Bytes>: MilestoneResult
var (
	FundKey            = []byte{0x01}
	MilestoneKeyPrefix = []byte{0x02}
	ResultKeyPrefix    = []byte{0x03}
)

// MilestoneKey gets a specific milestone from the store
func MilestoneKey(index uint64) []byte {
	return append(MilestoneKeyPrefix, sdk.Uint64ToBigEndian(index)...)
}

// ResultKey gets the decided outcome of a milestone from the store
func ResultKey(index uint64) []byte {
	return append(ResultKeyPrefix, sdk.Uint64ToBigEndian(index)...)
}
