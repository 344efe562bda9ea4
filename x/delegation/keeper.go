package delegation

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

// Keeper owns the delegation forest and the votes cast on each milestone.
// Weights are never cached: every read resolves the current graph against
// the current ledger balances.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	lk        types.LedgerKeeper
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, lk types.LedgerKeeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  storeKey,
		cdc:       cdc,
		lk:        lk,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetDelegate returns the address from delegates to, if any.
func (k Keeper) GetDelegate(ctx sdk.Context, from sdk.CUAddress) (sdk.CUAddress, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.EdgeKey(from))
	if bz == nil {
		return nil, false
	}
	return sdk.CUAddress(bz), true
}

func (k Keeper) getEdgeCount(ctx sdk.Context) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(types.EdgeCountKey))
}

func (k Keeper) setEdgeCount(ctx sdk.Context, count uint64) {
	ctx.KVStore(k.storeKey).Set(types.EdgeCountKey, sdk.Uint64ToBigEndian(count))
}

func (k Keeper) setEdge(ctx sdk.Context, from, to sdk.CUAddress) {
	store := ctx.KVStore(k.storeKey)
	if !store.Has(types.EdgeKey(from)) {
		k.setEdgeCount(ctx, k.getEdgeCount(ctx)+1)
	}
	store.Set(types.EdgeKey(from), to.Bytes())
}

func (k Keeper) removeEdge(ctx sdk.Context, from sdk.CUAddress) bool {
	store := ctx.KVStore(k.storeKey)
	if !store.Has(types.EdgeKey(from)) {
		return false
	}
	store.Delete(types.EdgeKey(from))
	k.setEdgeCount(ctx, k.getEdgeCount(ctx)-1)
	return true
}

// Delegate points from's vote at to. Delegating to oneself makes from a root
// again. An edge may be rewritten at any time, but never so that following
// to's chain leads back to from.
func (k Keeper) Delegate(ctx sdk.Context, from, to sdk.CUAddress) sdk.Error {
	if from.Equals(to) {
		if k.removeEdge(ctx, from) {
			ctx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeUndelegate,
					sdk.NewAttribute(types.AttributeKeyDelegator, from.String()),
				),
			)
		}
		return nil
	}

	// Any acyclic chain visits at most every stored edge once.
	bound := k.getEdgeCount(ctx) + 1
	cur := to
	for steps := uint64(0); ; steps++ {
		if cur.Equals(from) || steps > bound {
			return types.ErrCyclicDelegation(k.codespace, from, to)
		}
		next, ok := k.GetDelegate(ctx, cur)
		if !ok {
			break
		}
		cur = next
	}

	k.setEdge(ctx, from, to)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegate,
			sdk.NewAttribute(types.AttributeKeyDelegator, from.String()),
			sdk.NewAttribute(types.AttributeKeyDelegate, to.String()),
		),
	)
	return nil
}

// IsRoot reports whether addr votes for itself.
func (k Keeper) IsRoot(ctx sdk.Context, addr sdk.CUAddress) bool {
	return !ctx.KVStore(k.storeKey).Has(types.EdgeKey(addr))
}

// ResolveRoot follows addr's delegation chain to the root at its end.
func (k Keeper) ResolveRoot(ctx sdk.Context, addr sdk.CUAddress) sdk.CUAddress {
	bound := k.getEdgeCount(ctx) + 1
	cur := addr
	for steps := uint64(0); steps <= bound; steps++ {
		next, ok := k.GetDelegate(ctx, cur)
		if !ok {
			return cur
		}
		cur = next
	}
	panic(fmt.Sprintf("delegation chain from %s does not terminate", addr))
}

// WeightOf returns the live balance gathered behind root: its own balance plus
// that of everyone whose chain ends at root. A non-root has no weight.
func (k Keeper) WeightOf(ctx sdk.Context, root sdk.CUAddress) sdk.Int {
	weight := sdk.ZeroInt()
	if !k.IsRoot(ctx, root) {
		return weight
	}
	k.lk.IterateBalances(ctx, func(addr sdk.CUAddress, amount sdk.Int) bool {
		if k.ResolveRoot(ctx, addr).Equals(root) {
			weight = weight.Add(amount)
		}
		return false
	})
	return weight
}

// CastVote records voter's write-once direction on milestone.
func (k Keeper) CastVote(ctx sdk.Context, milestone uint64, voter sdk.CUAddress, option types.VoteOption) sdk.Error {
	if !types.ValidVoteOption(option) {
		return types.ErrInvalidVoteOption(k.codespace, option)
	}
	if !k.IsRoot(ctx, voter) {
		return types.ErrNotDelegateRoot(k.codespace, voter)
	}
	if _, found := k.GetVote(ctx, milestone, voter); found {
		return types.ErrAlreadyVoted(k.codespace, voter, milestone)
	}

	k.setVote(ctx, types.NewVote(milestone, voter, option))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVote,
			sdk.NewAttribute(types.AttributeKeyVoter, voter.String()),
			sdk.NewAttribute(types.AttributeKeyMilestone, fmt.Sprintf("%d", milestone)),
			sdk.NewAttribute(types.AttributeKeyOption, option.String()),
		),
	)
	return nil
}

// GetVote gets the vote from an address on a milestone
func (k Keeper) GetVote(ctx sdk.Context, milestone uint64, voter sdk.CUAddress) (vote types.Vote, found bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.VoteKey(milestone, voter))
	if bz == nil {
		return vote, false
	}
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &vote)
	return vote, true
}

func (k Keeper) setVote(ctx sdk.Context, vote types.Vote) {
	bz := k.cdc.MustMarshalBinaryLengthPrefixed(vote)
	ctx.KVStore(k.storeKey).Set(types.VoteKey(vote.Milestone, vote.Voter), bz)
}

// IterateVotes iterates over the votes on one milestone and performs a callback function
func (k Keeper) IterateVotes(ctx sdk.Context, milestone uint64, cb func(vote types.Vote) (stop bool)) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.VotesKey(milestone))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var vote types.Vote
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &vote)
		if cb(vote) {
			break
		}
	}
}

// GetVotes returns all the votes on a milestone
func (k Keeper) GetVotes(ctx sdk.Context, milestone uint64) []types.Vote {
	votes := []types.Vote{}
	k.IterateVotes(ctx, milestone, func(vote types.Vote) bool {
		votes = append(votes, vote)
		return false
	})
	return votes
}

// Tally sums the live weight of every voter on milestone that is still a root.
func (k Keeper) Tally(ctx sdk.Context, milestone uint64) types.TallyResult {
	weights := k.weightTree(ctx)
	approve, reject := sdk.ZeroInt(), sdk.ZeroInt()

	k.IterateVotes(ctx, milestone, func(vote types.Vote) bool {
		value, found := weights.Get(vote.Voter)
		if !found {
			// delegated away after voting, or holds nothing behind it
			return false
		}
		switch vote.Option {
		case types.OptionApprove:
			approve = approve.Add(value.(sdk.Int))
		case types.OptionReject:
			reject = reject.Add(value.(sdk.Int))
		}
		return false
	})

	return types.NewTallyResult(approve, reject)
}

// IterateEdges visits every stored delegation in delegator order.
func (k Keeper) IterateEdges(ctx sdk.Context, cb func(edge types.Edge) (stop bool)) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.EdgeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		from := sdk.CUAddress(iterator.Key()[len(types.EdgeKeyPrefix):])
		if cb(types.NewEdge(from, sdk.CUAddress(iterator.Value()))) {
			break
		}
	}
}

// GetEdges returns every stored delegation.
func (k Keeper) GetEdges(ctx sdk.Context) []types.Edge {
	edges := []types.Edge{}
	k.IterateEdges(ctx, func(edge types.Edge) bool {
		edges = append(edges, edge)
		return false
	})
	return edges
}
