package vault

import (
	"github.com/hbtc-chain/daofund/x/vault/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
	QueryBalance     = types.QueryBalance
	QueryReceipts    = types.QueryReceipts
	QueryPayout      = types.QueryPayout
)

type (
	Receipt      = types.Receipt
	GenesisState = types.GenesisState
)

var (
	ModuleCdc            = types.ModuleCdc
	RegisterCodec        = types.RegisterCodec
	NewReceipt           = types.NewReceipt
	ReceiptID            = types.ReceiptID
	NewGenesisState      = types.NewGenesisState
	DefaultGenesisState  = types.DefaultGenesisState
	ValidateGenesis      = types.ValidateGenesis
	NewQueryPayoutParams = types.NewQueryPayoutParams
	ErrInsufficientFunds = types.ErrInsufficientFunds
	ErrNotPermitted      = types.ErrNotPermitted
)
