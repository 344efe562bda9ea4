package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	sdk "github.com/hbtc-chain/daofund/types"
)

// Milestone is one scheduled release. Milestone 0 is paid out on
// initialization and carries no voting window.
type Milestone struct {
	Index     uint64    `json:"index" yaml:"index"`
	Tranche   sdk.Int   `json:"tranche" yaml:"tranche"`
	VoteStart time.Time `json:"vote_start" yaml:"vote_start"`
	VoteEnd   time.Time `json:"vote_end" yaml:"vote_end"`
}

func NewMilestone(index uint64, tranche sdk.Int, voteStart, voteEnd time.Time) Milestone {
	return Milestone{
		Index:     index,
		Tranche:   tranche,
		VoteStart: voteStart.UTC(),
		VoteEnd:   voteEnd.UTC(),
	}
}

// InWindow reports whether now falls in [VoteStart, VoteEnd).
func (m Milestone) InWindow(now time.Time) bool {
	return !now.Before(m.VoteStart) && now.Before(m.VoteEnd)
}

// Closed reports whether the voting window is over at now.
func (m Milestone) Closed(now time.Time) bool {
	return !now.Before(m.VoteEnd)
}

func (m Milestone) String() string {
	if m.Index == 0 {
		return fmt.Sprintf("Milestone 0: tranche %s released on initialization", m.Tranche)
	}
	return fmt.Sprintf("Milestone %d: tranche %s voting [%s, %s)",
		m.Index, m.Tranche, m.VoteStart.Format(time.RFC3339), m.VoteEnd.Format(time.RFC3339))
}

// Milestones is the ordered schedule of a fund
type Milestones []Milestone

func (ms Milestones) String() string {
	lines := make([]string, len(ms))
	for i, m := range ms {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}

// Total sums the tranches of every milestone.
func (ms Milestones) Total() sdk.Int {
	total := sdk.ZeroInt()
	for _, m := range ms {
		total = total.Add(m.Tranche)
	}
	return total
}

// Validate checks the schedule layout and that the tranches add up to pool.
func (ms Milestones) Validate(pool sdk.Int) error {
	if len(ms) == 0 {
		return errors.New("at least one milestone is required")
	}
	for i, m := range ms {
		if m.Index != uint64(i) {
			return errors.Errorf("milestone at position %d has index %d", i, m.Index)
		}
		if !m.Tranche.IsPositive() {
			return errors.Errorf("milestone %d has no tranche", i)
		}
		if i == 0 {
			continue
		}
		if !m.VoteStart.Before(m.VoteEnd) {
			return errors.Errorf("milestone %d voting window is empty", i)
		}
		if i > 1 && m.VoteStart.Before(ms[i-1].VoteEnd) {
			return errors.Errorf("milestone %d voting starts before milestone %d ends", i, i-1)
		}
	}
	if total := ms.Total(); !total.Equal(pool) {
		return errors.Errorf("tranches sum to %s, vault holds %s", total, pool)
	}
	return nil
}

// MilestoneStatus is the per-milestone lifecycle
type MilestoneStatus byte

const (
	MilestonePending  MilestoneStatus = 0x00
	MilestoneVoting   MilestoneStatus = 0x01
	MilestoneApproved MilestoneStatus = 0x02
	MilestoneRejected MilestoneStatus = 0x03
)

// MilestoneStatusFromString turns a string into a MilestoneStatus
func MilestoneStatusFromString(str string) (MilestoneStatus, error) {
	switch str {
	case "Pending":
		return MilestonePending, nil
	case "Voting":
		return MilestoneVoting, nil
	case "Approved":
		return MilestoneApproved, nil
	case "Rejected":
		return MilestoneRejected, nil
	default:
		return MilestoneStatus(0xff), errors.Errorf("'%s' is not a valid milestone status", str)
	}
}

func (status MilestoneStatus) String() string {
	switch status {
	case MilestonePending:
		return "Pending"
	case MilestoneVoting:
		return "Voting"
	case MilestoneApproved:
		return "Approved"
	case MilestoneRejected:
		return "Rejected"
	default:
		return ""
	}
}

func (status MilestoneStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(status.String())
}

func (status *MilestoneStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := MilestoneStatusFromString(s)
	if err != nil {
		return err
	}
	*status = parsed
	return nil
}

func (status MilestoneStatus) MarshalYAML() (interface{}, error) {
	return status.String(), nil
}

// MilestoneResult records how a milestone was decided
type MilestoneResult struct {
	Index     uint64          `json:"index" yaml:"index"`
	Status    MilestoneStatus `json:"status" yaml:"status"`
	Approve   sdk.Int         `json:"approve" yaml:"approve"`
	Reject    sdk.Int         `json:"reject" yaml:"reject"`
	DecidedAt time.Time       `json:"decided_at" yaml:"decided_at"`
	ReceiptID string          `json:"receipt_id,omitempty" yaml:"receipt_id,omitempty"`
}

func NewMilestoneResult(index uint64, status MilestoneStatus, approve, reject sdk.Int, decidedAt time.Time) MilestoneResult {
	return MilestoneResult{
		Index:     index,
		Status:    status,
		Approve:   approve,
		Reject:    reject,
		DecidedAt: decidedAt.UTC(),
	}
}

func (r MilestoneResult) String() string {
	return fmt.Sprintf("Milestone %d %s (approve %s, reject %s)", r.Index, r.Status, r.Approve, r.Reject)
}
