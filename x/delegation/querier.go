package delegation

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

// NewQuerier creates a querier for delegation REST endpoints
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case types.QueryRoot:
			return queryRoot(ctx, req, k)

		case types.QueryWeight:
			return queryWeight(ctx, req, k)

		case types.QueryWeights:
			return marshalResult(k.Weights(ctx))

		case types.QueryVotes:
			return queryVotes(ctx, req, k)

		case types.QueryTally:
			return queryTally(ctx, req, k)

		default:
			return nil, sdk.ErrUnknownRequest("unknown delegation query endpoint")
		}
	}
}

func queryRoot(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryAddressParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshalResult(k.ResolveRoot(ctx, params.Address))
}

func queryWeight(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryAddressParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshalResult(k.WeightOf(ctx, params.Address))
}

func queryVotes(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryMilestoneParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshalResult(k.GetVotes(ctx, params.Milestone))
}

func queryTally(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryMilestoneParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshalResult(k.Tally(ctx, params.Milestone))
}

func marshalResult(v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(types.ModuleCdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("failed to JSON marshal result: %s", err.Error()))
	}
	return bz, nil
}
