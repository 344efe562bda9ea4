package app

import (
	"encoding/json"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/x/delegation"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone"
	"github.com/hbtc-chain/daofund/x/refund"
	"github.com/hbtc-chain/daofund/x/vault"
)

// ExportAppState exports the state of the last committed block as a genesis
// state that InitChainFromGenesis accepts.
func (app *FundApp) ExportAppState() (appState json.RawMessage, err error) {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	ctx := app.committedContext()

	genState := GenesisState{}
	genState.SetModuleGenesis(ledger.ModuleName, ledger.ModuleCdc, ledger.ExportGenesis(ctx, app.ledgerKeeper))
	genState.SetModuleGenesis(vault.ModuleName, vault.ModuleCdc, vault.ExportGenesis(ctx, app.vaultKeeper))
	genState.SetModuleGenesis(delegation.ModuleName, delegation.ModuleCdc,
		delegation.ExportGenesis(ctx, app.delegationKeeper))
	genState.SetModuleGenesis(refund.ModuleName, refund.ModuleCdc, refund.ExportGenesis(ctx, app.refundKeeper))
	genState.SetModuleGenesis(milestone.ModuleName, milestone.ModuleCdc,
		milestone.ExportGenesis(ctx, app.milestoneKeeper))

	return codec.MarshalJSONIndent(app.cdc, genState)
}
