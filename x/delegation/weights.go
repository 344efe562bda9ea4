package delegation

import (
	"bytes"

	"github.com/emirpasic/gods/trees/redblacktree"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

func compareAddress(a, b interface{}) int {
	return bytes.Compare(a.(sdk.CUAddress), b.(sdk.CUAddress))
}

// weightTree resolves every holder once and accumulates its balance under its
// root, keyed and ordered by root address.
func (k Keeper) weightTree(ctx sdk.Context) *redblacktree.Tree {
	tree := redblacktree.NewWith(compareAddress)
	k.lk.IterateBalances(ctx, func(addr sdk.CUAddress, amount sdk.Int) bool {
		root := k.ResolveRoot(ctx, addr)
		if value, found := tree.Get(root); found {
			tree.Put(root, value.(sdk.Int).Add(amount))
		} else {
			tree.Put(root, amount)
		}
		return false
	})
	return tree
}

// Weights returns the live weight of every root holding a non-zero weight,
// ordered by root address.
func (k Keeper) Weights(ctx sdk.Context) []types.RootWeight {
	tree := k.weightTree(ctx)
	weights := make([]types.RootWeight, 0, tree.Size())

	it := tree.Iterator()
	for it.Next() {
		weights = append(weights, types.RootWeight{
			Root:   it.Key().(sdk.CUAddress),
			Weight: it.Value().(sdk.Int),
		})
	}
	return weights
}
