package types

import (
	"github.com/pkg/errors"
)

// GenesisState - all milestone state that must be provided at genesis
type GenesisState struct {
	Fund       Fund              `json:"fund" yaml:"fund"`
	Milestones Milestones        `json:"milestones" yaml:"milestones"`
	Results    []MilestoneResult `json:"results" yaml:"results"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(fund Fund, milestones Milestones, results []MilestoneResult) GenesisState {
	return GenesisState{
		Fund:       fund,
		Milestones: milestones,
		Results:    results,
	}
}

// DefaultGenesisState returns a fund nobody may initialize until an authority is set.
func DefaultGenesisState() GenesisState {
	return NewGenesisState(NewFund(nil), Milestones{}, []MilestoneResult{})
}

// ValidateGenesis performs basic validation of milestone genesis data returning an
// error for any failed validation criteria.
func ValidateGenesis(data GenesisState) error {
	fund := data.Fund
	if fund.Status.String() == "" {
		return errors.Errorf("invalid fund status %d", fund.Status)
	}

	if fund.Status == StatusUninitialized {
		if len(data.Milestones) != 0 || len(data.Results) != 0 {
			return errors.New("uninitialized fund cannot carry milestones or results")
		}
		return nil
	}

	if fund.Beneficiary.Empty() {
		return errors.New("initialized fund has no beneficiary")
	}
	if err := data.Milestones.Validate(data.Milestones.Total()); err != nil {
		return err
	}
	if fund.Current >= uint64(len(data.Milestones)) {
		return errors.Errorf("current milestone %d out of range", fund.Current)
	}

	decided := make(map[uint64]bool)
	for _, r := range data.Results {
		if r.Index >= uint64(len(data.Milestones)) {
			return errors.Errorf("result for unknown milestone %d", r.Index)
		}
		if r.Status != MilestoneApproved && r.Status != MilestoneRejected {
			return errors.Errorf("milestone %d result is %s", r.Index, r.Status)
		}
		if decided[r.Index] {
			return errors.Errorf("duplicate result for milestone %d", r.Index)
		}
		decided[r.Index] = true
	}
	if !decided[0] {
		return errors.New("initialized fund has no result for milestone 0")
	}
	return nil
}
