package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

// query endpoints supported by the ledger Querier
const (
	QueryBalance     = "balance"
	QueryTotalSupply = "total_supply"
	QueryHolders     = "holders"
)

// QueryBalanceParams defines the params for querying an address balance.
type QueryBalanceParams struct {
	Address sdk.CUAddress `json:"address"`
}

func NewQueryBalanceParams(addr sdk.CUAddress) QueryBalanceParams {
	return QueryBalanceParams{Address: addr}
}

// Balance is one holder entry.
type Balance struct {
	Address sdk.CUAddress `json:"address" yaml:"address"`
	Amount  sdk.Int       `json:"amount" yaml:"amount"`
}

func NewBalance(addr sdk.CUAddress, amount sdk.Int) Balance {
	return Balance{Address: addr, Amount: amount}
}

func (b Balance) String() string {
	return fmt.Sprintf("%s: %s", b.Address, b.Amount)
}
