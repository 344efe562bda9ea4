package delegation

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

// InitGenesis restores edges through Delegate so a cyclic import panics.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	for _, e := range data.Edges {
		if err := k.Delegate(ctx, e.From, e.To); err != nil {
			panic(fmt.Sprintf("failed to import delegation %s -> %s: %s", e.From, e.To, err))
		}
	}
	for _, v := range data.Votes {
		k.setVote(ctx, v)
	}
}

// ExportGenesis returns the delegation forest and every vote.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	votes := []Vote{}
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), VoteKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var vote Vote
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &vote)
		votes = append(votes, vote)
	}
	return NewGenesisState(k.GetEdges(ctx), votes)
}
