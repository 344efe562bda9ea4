package rpc

import (
	"net/http"

	"github.com/hbtc-chain/daofund/client/context"
	"github.com/hbtc-chain/daofund/types/rest"
)

// REST handler for node info
func NodeInfoRequestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return appQueryHandlerFn(cliCtx, "app/info")
}

// REST handler to get the latest committed block
func LatestBlockRequestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return appQueryHandlerFn(cliCtx, "app/block")
}

// REST handler running every registered invariant on the latest block
func InvariantsRequestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return appQueryHandlerFn(cliCtx, "app/invariants")
}

func appQueryHandlerFn(cliCtx context.CLIContext, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, height, err := cliCtx.Query(path)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		cliCtx = cliCtx.WithHeight(height)
		rest.PostProcessResponse(w, cliCtx, res)
	}
}
