package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

const (
	// ModuleName is the name of the refund module
	ModuleName = "refund"

	// StoreKey is the default store key for refund
	StoreKey = ModuleName

	// RouterKey is the message route for refund
	RouterKey = ModuleName

	// QuerierRoute is the querier route for refund
	QuerierRoute = ModuleName

	TypeMsgClaim = "claim"
)

var (
	SnapshotKey      = []byte{0x01}
	ClaimedKeyPrefix = []byte{0x02}
)

// ClaimedKey gets the key of a participant's claim record
func ClaimedKey(participant sdk.CUAddress) []byte {
	return append(ClaimedKeyPrefix, participant.Bytes()...)
}
