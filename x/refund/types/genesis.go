package types

import (
	"fmt"
)

// GenesisState restores an open refund, if any.
type GenesisState struct {
	Snapshot *Snapshot     `json:"snapshot" yaml:"snapshot"`
	Claims   []ClaimRecord `json:"claims" yaml:"claims"`
}

func NewGenesisState(snapshot *Snapshot, claims []ClaimRecord) GenesisState {
	return GenesisState{Snapshot: snapshot, Claims: claims}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{Claims: []ClaimRecord{}}
}

// ValidateGenesis rejects claims without a snapshot and overpaid snapshots.
func ValidateGenesis(data GenesisState) error {
	if data.Snapshot == nil {
		if len(data.Claims) > 0 {
			return fmt.Errorf("refund claims without a snapshot")
		}
		return nil
	}
	if data.Snapshot.Paid.GT(data.Snapshot.PoolAtFailure) {
		return fmt.Errorf("refunds paid %s exceed pool %s", data.Snapshot.Paid, data.Snapshot.PoolAtFailure)
	}
	seen := make(map[string]bool, len(data.Claims))
	for _, c := range data.Claims {
		if c.Participant.Empty() || seen[c.Participant.String()] {
			return fmt.Errorf("invalid or duplicate claim by %s", c.Participant)
		}
		seen[c.Participant.String()] = true
	}
	return nil
}
