package client

import (
	"github.com/gorilla/mux"

	"github.com/hbtc-chain/daofund/client/context"
	"github.com/hbtc-chain/daofund/client/rpc"
	"github.com/hbtc-chain/daofund/client/tx"
	delegationrest "github.com/hbtc-chain/daofund/x/delegation/client/rest"
	ledgerrest "github.com/hbtc-chain/daofund/x/ledger/client/rest"
	milestonerest "github.com/hbtc-chain/daofund/x/milestone/client/rest"
	refundrest "github.com/hbtc-chain/daofund/x/refund/client/rest"
	vaultrest "github.com/hbtc-chain/daofund/x/vault/client/rest"
)

// Register routes
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	rpc.RegisterRPCRoutes(cliCtx, r)
	tx.RegisterRoutes(cliCtx, r)
	ledgerrest.RegisterRoutes(cliCtx, r)
	vaultrest.RegisterRoutes(cliCtx, r)
	delegationrest.RegisterRoutes(cliCtx, r)
	refundrest.RegisterRoutes(cliCtx, r)
	milestonerest.RegisterRoutes(cliCtx, r)
}
