package types

import (
	"bytes"
	"fmt"
)

// GenesisState restores the delegation forest and cast votes.
type GenesisState struct {
	Edges []Edge `json:"edges" yaml:"edges"`
	Votes []Vote `json:"votes" yaml:"votes"`
}

func NewGenesisState(edges []Edge, votes []Vote) GenesisState {
	return GenesisState{Edges: edges, Votes: votes}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{Edges: []Edge{}, Votes: []Vote{}}
}

// ValidateGenesis checks edges and votes statelessly. Cycles are caught on import.
// A vote may belong to an address that delegated after voting; it is kept but not tallied.
func ValidateGenesis(data GenesisState) error {
	from := make(map[string]bool, len(data.Edges))
	for _, e := range data.Edges {
		if e.From.Empty() || e.To.Empty() {
			return fmt.Errorf("delegation edge with empty address")
		}
		if bytes.Equal(e.From, e.To) {
			return fmt.Errorf("self delegation of %s must not be stored", e.From)
		}
		if from[e.From.String()] {
			return fmt.Errorf("duplicate delegation from %s", e.From)
		}
		from[e.From.String()] = true
	}
	for _, v := range data.Votes {
		if v.Voter.Empty() || !ValidVoteOption(v.Option) {
			return fmt.Errorf("invalid vote %s", v)
		}
	}
	return nil
}
