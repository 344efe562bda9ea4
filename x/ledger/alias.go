package ledger

import (
	"github.com/hbtc-chain/daofund/x/ledger/types"
)

const (
	ModuleName       = types.ModuleName
	RouterKey        = types.RouterKey
	StoreKey         = types.StoreKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
	QueryBalance     = types.QueryBalance
	QueryTotalSupply = types.QueryTotalSupply
	QueryHolders     = types.QueryHolders
)

type (
	MsgTransfer        = types.MsgTransfer
	Balance            = types.Balance
	GenesisState       = types.GenesisState
	QueryBalanceParams = types.QueryBalanceParams
)

var (
	ModuleCdc              = types.ModuleCdc
	RegisterCodec          = types.RegisterCodec
	NewMsgTransfer         = types.NewMsgTransfer
	NewBalance             = types.NewBalance
	NewGenesisState        = types.NewGenesisState
	DefaultGenesisState    = types.DefaultGenesisState
	ValidateGenesis        = types.ValidateGenesis
	NewQueryBalanceParams  = types.NewQueryBalanceParams
	ErrInsufficientBalance = types.ErrInsufficientBalance
)
