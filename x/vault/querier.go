package vault

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/vault/types"
)

// NewQuerier creates a querier for vault REST endpoints
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case types.QueryBalance:
			return marshalResult(k.GetBalance(ctx))

		case types.QueryReceipts:
			return marshalResult(k.GetReceipts(ctx))

		case types.QueryPayout:
			return queryPayout(ctx, req, k)

		default:
			return nil, sdk.ErrUnknownRequest("unknown vault query endpoint")
		}
	}
}

func queryPayout(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryPayoutParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshalResult(k.GetPayout(ctx, params.Recipient))
}

func marshalResult(v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(types.ModuleCdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("failed to JSON marshal result: %s", err.Error()))
	}
	return bz, nil
}
