package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

// query endpoints supported by the refund Querier
const (
	QuerySnapshot  = "snapshot"
	QueryClaimed   = "claimed"
	QueryClaimable = "claimable"
)

// QueryParticipantParams is used by the claimed and claimable queries
type QueryParticipantParams struct {
	Participant sdk.CUAddress `json:"participant"`
}

func NewQueryParticipantParams(participant sdk.CUAddress) QueryParticipantParams {
	return QueryParticipantParams{Participant: participant}
}

// ClaimStatus answers the claimed query
type ClaimStatus struct {
	Claimed bool         `json:"claimed" yaml:"claimed"`
	Record  *ClaimRecord `json:"record,omitempty" yaml:"record,omitempty"`
}
