package rest

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/daofund/client/context"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/types/rest"
	"github.com/hbtc-chain/daofund/x/ledger/types"
)

// RegisterRoutes registers ledger REST handlers on the provided router.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	registerQueryRoutes(cliCtx, r)
}

func registerQueryRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc(
		"/ledger/balance/{address}",
		balanceHandlerFn(cliCtx),
	).Methods("GET")

	r.HandleFunc(
		"/ledger/supply",
		simpleQueryHandlerFn(cliCtx, types.QueryTotalSupply),
	).Methods("GET")

	r.HandleFunc(
		"/ledger/holders",
		simpleQueryHandlerFn(cliCtx, types.QueryHolders),
	).Methods("GET")
}

func balanceHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addr, err := sdk.CUAddressFromBech32(mux.Vars(r)["address"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
		if !ok {
			return
		}

		bz, err := cliCtx.Codec.MarshalJSON(types.NewQueryBalanceParams(addr))
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		res, height, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryBalance), bz)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		cliCtx = cliCtx.WithHeight(height)
		rest.PostProcessResponse(w, cliCtx, res)
	}
}

func simpleQueryHandlerFn(cliCtx context.CLIContext, endpoint string) http.HandlerFunc {
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
