package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

const (
	// ModuleName is the name of the vault module
	ModuleName = "vault"

	// StoreKey is the default store key for vault
	StoreKey = ModuleName

	// QuerierRoute is the querier route for vault
	QuerierRoute = ModuleName
)

var (
	BalanceKey       = []byte{0x01}
	DepositedKey     = []byte{0x02}
	ReceiptSeqKey    = []byte{0x03}
	ReceiptKeyPrefix = []byte{0x04}
	PayoutKeyPrefix  = []byte{0x05}
)

// ReceiptKey is ordered by release sequence
func ReceiptKey(seq uint64) []byte {
	return append(ReceiptKeyPrefix, sdk.Uint64ToBigEndian(seq)...)
}

// PayoutKey indexes the total released to one recipient
func PayoutKey(addr sdk.CUAddress) []byte {
	return append(PayoutKeyPrefix, addr.Bytes()...)
}
