package types

import (
	"fmt"
	"strings"

	sdk "github.com/hbtc-chain/daofund/types"
	delegationtypes "github.com/hbtc-chain/daofund/x/delegation/types"
)

// query endpoints supported by the milestone Querier
const (
	QueryStatus     = "status"
	QueryCurrent    = "current"
	QueryMilestones = "milestones"
	QueryResults    = "results"
	QueryTally      = "tally"
)

// FundState answers the status query
type FundState struct {
	Fund        Fund    `json:"fund" yaml:"fund"`
	VotingOpen  bool    `json:"voting_open" yaml:"voting_open"`
	VaultAmount sdk.Int `json:"vault_balance" yaml:"vault_balance"`
}

func (s FundState) String() string {
	return strings.TrimSpace(fmt.Sprintf(`%s
  Voting open: %t
  Vault:       %s`, s.Fund, s.VotingOpen, s.VaultAmount))
}

// CurrentMilestone answers the current query
type CurrentMilestone struct {
	Milestone Milestone       `json:"milestone" yaml:"milestone"`
	Status    MilestoneStatus `json:"status" yaml:"status"`
}

// MilestoneTally answers the tally query
type MilestoneTally struct {
	Index      uint64                      `json:"index" yaml:"index"`
	VotingOpen bool                        `json:"voting_open" yaml:"voting_open"`
	Tally      delegationtypes.TallyResult `json:"tally" yaml:"tally"`
}
