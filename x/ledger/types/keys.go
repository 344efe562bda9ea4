package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

const (
	// ModuleName is the name of the ledger module
	ModuleName = "ledger"

	// StoreKey is the default store key for ledger
	StoreKey = ModuleName

	// RouterKey is the message route for ledger
	RouterKey = ModuleName

	// QuerierRoute is the querier route for ledger
	QuerierRoute = ModuleName

	TypeMsgTransfer = "transfer"
)

var (
	BalanceKeyPrefix = []byte{0x01}
	SupplyKey        = []byte{0x02}
)

// BalanceKey returns the store key of an address balance
func BalanceKey(addr sdk.CUAddress) []byte {
	return append(BalanceKeyPrefix, addr.Bytes()...)
}

// AddressFromBalanceKey strips the balance prefix
func AddressFromBalanceKey(key []byte) sdk.CUAddress {
	return sdk.CUAddress(key[len(BalanceKeyPrefix):])
}
