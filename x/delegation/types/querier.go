package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

// query endpoints supported by the delegation Querier
const (
	QueryRoot    = "root"
	QueryWeight  = "weight"
	QueryWeights = "weights"
	QueryVotes   = "votes"
	QueryTally   = "tally"
)

// QueryAddressParams is used by the root and weight queries
type QueryAddressParams struct {
	Address sdk.CUAddress `json:"address"`
}

func NewQueryAddressParams(addr sdk.CUAddress) QueryAddressParams {
	return QueryAddressParams{Address: addr}
}

// QueryMilestoneParams is used by the votes and tally queries
type QueryMilestoneParams struct {
	Milestone uint64 `json:"milestone"`
}

func NewQueryMilestoneParams(milestone uint64) QueryMilestoneParams {
	return QueryMilestoneParams{Milestone: milestone}
}
