package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/daofund/client/context"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/types/rest"
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

// RegisterRoutes registers delegation REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/delegation/root/{address}", addressQueryHandlerFn(cliCtx, types.QueryRoot)).Methods("GET")
	r.HandleFunc("/delegation/weight/{address}", addressQueryHandlerFn(cliCtx, types.QueryWeight)).Methods("GET")
	r.HandleFunc("/delegation/weights", weightsHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc("/delegation/votes/{milestone}", milestoneQueryHandlerFn(cliCtx, types.QueryVotes)).Methods("GET")
}

func addressQueryHandlerFn(cliCtx context.CLIContext, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addr, err := sdk.CUAddressFromBech32(mux.Vars(r)["address"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		bz, err := cliCtx.Codec.MarshalJSON(types.NewQueryAddressParams(addr))
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		queryAndRespond(w, r, cliCtx, endpoint, bz)
	}
}

func milestoneQueryHandlerFn(cliCtx context.CLIContext, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		milestone, err := strconv.ParseUint(mux.Vars(r)["milestone"], 10, 64)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, "milestone must be a non-negative integer")
			return
		}

		bz, err := cliCtx.Codec.MarshalJSON(types.NewQueryMilestoneParams(milestone))
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		queryAndRespond(w, r, cliCtx, endpoint, bz)
	}
}

func weightsHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queryAndRespond(w, r, cliCtx, types.QueryWeights, nil)
	}
}

func queryAndRespond(w http.ResponseWriter, r *http.Request, cliCtx context.CLIContext, endpoint string, data []byte) {
	cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
	if !ok {
		return
	}

	res, height, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint), data)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	cliCtx = cliCtx.WithHeight(height)
	rest.PostProcessResponse(w, cliCtx, res)
}
