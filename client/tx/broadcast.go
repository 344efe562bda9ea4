package tx

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hbtc-chain/daofund/client/context"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/types/rest"
)

// BroadcastReq defines a message broadcast request body.
type BroadcastReq struct {
	Msg sdk.Msg `json:"msg" yaml:"msg"`
}

// TxResponse is the outcome of a delivered message.
type TxResponse struct {
	Height    int64      `json:"height"`
	Code      uint32     `json:"code,omitempty"`
	Codespace string     `json:"codespace,omitempty"`
	Data      string     `json:"data,omitempty"`
	Log       string     `json:"log,omitempty"`
	Events    sdk.Events `json:"events,omitempty"`
}

// NewTxResponse wraps res delivered at height.
func NewTxResponse(height int64, res sdk.Result) TxResponse {
	return TxResponse{
		Height:    height,
		Code:      uint32(res.Code),
		Codespace: string(res.Codespace),
		Data:      string(res.Data),
		Log:       res.Log,
		Events:    res.Events,
	}
}

// RegisterRoutes registers the message broadcast route.
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc("/txs", BroadcastTxRequest(cliCtx)).Methods("POST")
}

// BroadcastTxRequest implements a message broadcast handler. A message that
// fails is answered with its result and a non-2xx status. Msgs are not
// signed: the caller is trusted to speak for the msg's signer.
func BroadcastTxRequest(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BroadcastReq
		if !rest.ReadRESTReq(w, r, cliCtx.Codec, &req) {
			return
		}
		if req.Msg == nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, "missing msg")
			return
		}

		res, err := cliCtx.BroadcastMsg(req.Msg)
		if err != nil && res.Code.IsOK() {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		bz, merr := cliCtx.Codec.MarshalJSON(NewTxResponse(cliCtx.Height, res))
		if merr != nil {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, merr.Error())
			return
		}
		if !res.IsOK() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write(bz)
			return
		}
		rest.PostProcessResponseBare(w, cliCtx, bz)
	}
}
