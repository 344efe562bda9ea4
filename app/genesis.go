package app

import (
	"encoding/json"
	"fmt"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/x/delegation"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone"
	"github.com/hbtc-chain/daofund/x/refund"
	"github.com/hbtc-chain/daofund/x/vault"
)

// GenesisState of the fund is a set of module genesis states keyed by module
// name. A module missing from the map starts from its default state.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState() GenesisState {
	return GenesisState{
		ledger.ModuleName:     ledger.ModuleCdc.MustMarshalJSON(ledger.DefaultGenesisState()),
		vault.ModuleName:      vault.ModuleCdc.MustMarshalJSON(vault.DefaultGenesisState()),
		delegation.ModuleName: delegation.ModuleCdc.MustMarshalJSON(delegation.DefaultGenesisState()),
		refund.ModuleName:     refund.ModuleCdc.MustMarshalJSON(refund.DefaultGenesisState()),
		milestone.ModuleName:  milestone.ModuleCdc.MustMarshalJSON(milestone.DefaultGenesisState()),
	}
}

// moduleGenesis is the decoded form of a GenesisState.
type moduleGenesis struct {
	ledger     ledger.GenesisState
	vault      vault.GenesisState
	delegation delegation.GenesisState
	refund     refund.GenesisState
	milestone  milestone.GenesisState
}

func (gs GenesisState) decode() (moduleGenesis, error) {
	mg := moduleGenesis{
		ledger:     ledger.DefaultGenesisState(),
		vault:      vault.DefaultGenesisState(),
		delegation: delegation.DefaultGenesisState(),
		refund:     refund.DefaultGenesisState(),
		milestone:  milestone.DefaultGenesisState(),
	}

	for name := range gs {
		switch name {
		case ledger.ModuleName, vault.ModuleName, delegation.ModuleName, refund.ModuleName, milestone.ModuleName:
		default:
			return mg, fmt.Errorf("unknown module %q in genesis", name)
		}
	}

	if bz, ok := gs[ledger.ModuleName]; ok {
		if err := ledger.ModuleCdc.UnmarshalJSON(bz, &mg.ledger); err != nil {
			return mg, fmt.Errorf("error decoding %s genesis: %v", ledger.ModuleName, err)
		}
	}
	if bz, ok := gs[vault.ModuleName]; ok {
		if err := vault.ModuleCdc.UnmarshalJSON(bz, &mg.vault); err != nil {
			return mg, fmt.Errorf("error decoding %s genesis: %v", vault.ModuleName, err)
		}
	}
	if bz, ok := gs[delegation.ModuleName]; ok {
		if err := delegation.ModuleCdc.UnmarshalJSON(bz, &mg.delegation); err != nil {
			return mg, fmt.Errorf("error decoding %s genesis: %v", delegation.ModuleName, err)
		}
	}
	if bz, ok := gs[refund.ModuleName]; ok {
		if err := refund.ModuleCdc.UnmarshalJSON(bz, &mg.refund); err != nil {
			return mg, fmt.Errorf("error decoding %s genesis: %v", refund.ModuleName, err)
		}
	}
	if bz, ok := gs[milestone.ModuleName]; ok {
		if err := milestone.ModuleCdc.UnmarshalJSON(bz, &mg.milestone); err != nil {
			return mg, fmt.Errorf("error decoding %s genesis: %v", milestone.ModuleName, err)
		}
	}
	return mg, nil
}

func (mg moduleGenesis) validate() error {
	if err := ledger.ValidateGenesis(mg.ledger); err != nil {
		return fmt.Errorf("%s: %v", ledger.ModuleName, err)
	}
	if err := vault.ValidateGenesis(mg.vault); err != nil {
		return fmt.Errorf("%s: %v", vault.ModuleName, err)
	}
	if err := delegation.ValidateGenesis(mg.delegation); err != nil {
		return fmt.Errorf("%s: %v", delegation.ModuleName, err)
	}
	if err := refund.ValidateGenesis(mg.refund); err != nil {
		return fmt.Errorf("%s: %v", refund.ModuleName, err)
	}
	if err := milestone.ValidateGenesis(mg.milestone); err != nil {
		return fmt.Errorf("%s: %v", milestone.ModuleName, err)
	}
	return nil
}

// ValidateGenesis performs genesis state validation for every module.
func ValidateGenesis(gs GenesisState) error {
	mg, err := gs.decode()
	if err != nil {
		return err
	}
	return mg.validate()
}

// SetModuleGenesis replaces the genesis of a single module.
func (gs GenesisState) SetModuleGenesis(name string, cdc *codec.Codec, state interface{}) {
	gs[name] = cdc.MustMarshalJSON(state)
}
