package rest

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/daofund/client/context"
	"github.com/hbtc-chain/daofund/types/rest"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// RegisterRoutes registers fund REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/fund/status", queryHandlerFn(cliCtx, types.QueryStatus)).Methods("GET")
	r.HandleFunc("/fund/current", queryHandlerFn(cliCtx, types.QueryCurrent)).Methods("GET")
	r.HandleFunc("/fund/milestones", queryHandlerFn(cliCtx, types.QueryMilestones)).Methods("GET")
	r.HandleFunc("/fund/results", queryHandlerFn(cliCtx, types.QueryResults)).Methods("GET")
	r.HandleFunc("/fund/tally", queryHandlerFn(cliCtx, types.QueryTally)).Methods("GET")
}

func queryHandlerFn(cliCtx context.CLIContext, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
		if !ok {
			return
		}

		res, height, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint), nil)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		cliCtx = cliCtx.WithHeight(height)
		rest.PostProcessResponse(w, cliCtx, res)
	}
}
