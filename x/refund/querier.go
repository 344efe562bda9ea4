package refund

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/refund/types"
)

// NewQuerier creates a querier for refund REST endpoints
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case types.QuerySnapshot:
			return querySnapshot(ctx, k)

		case types.QueryClaimed:
			return queryClaimed(ctx, req, k)

		case types.QueryClaimable:
			return queryClaimable(ctx, req, k)

		default:
			return nil, sdk.ErrUnknownRequest("unknown refund query endpoint")
		}
	}
}

func querySnapshot(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	snapshot, found := k.GetSnapshot(ctx)
	if !found {
		return nil, types.ErrInvalidState(k.codespace)
	}
	return marshalResult(snapshot)
}

func queryClaimed(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryParticipantParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}

	status := types.ClaimStatus{}
	if record, found := k.GetClaim(ctx, params.Participant); found {
		status.Claimed = true
		status.Record = &record
	}
	return marshalResult(status)
}

func queryClaimable(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryParticipantParams
	if err := types.ModuleCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}
	return marshalResult(k.Claimable(ctx, params.Participant))
}

func marshalResult(v interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(types.ModuleCdc, v)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("failed to JSON marshal result: %s", err.Error()))
	}
	return bz, nil
}
