package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

// query endpoints supported by the vault Querier
const (
	QueryBalance  = "balance"
	QueryReceipts = "receipts"
	QueryPayout   = "payout"
)

// QueryPayoutParams defines the params for querying the payout of one recipient.
type QueryPayoutParams struct {
	Recipient sdk.CUAddress `json:"recipient"`
}

func NewQueryPayoutParams(recipient sdk.CUAddress) QueryPayoutParams {
	return QueryPayoutParams{Recipient: recipient}
}
