package refund

import (
	"fmt"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/refund/types"
)

// Keeper settles refunds once the fund has failed.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	lk        types.LedgerKeeper
	vk        types.VaultKeeper
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, lk types.LedgerKeeper, vk types.VaultKeeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  storeKey,
		cdc:       cdc,
		lk:        lk,
		vk:        vk,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetSnapshot returns the refund snapshot once refunds are open.
func (k Keeper) GetSnapshot(ctx sdk.Context) (snapshot types.Snapshot, found bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.SnapshotKey)
	if bz == nil {
		return snapshot, false
	}
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &snapshot)
	return snapshot, true
}

func (k Keeper) setSnapshot(ctx sdk.Context, snapshot types.Snapshot) {
	ctx.KVStore(k.storeKey).Set(types.SnapshotKey, k.cdc.MustMarshalBinaryLengthPrefixed(snapshot))
}

// IsActive reports whether refunds are open.
func (k Keeper) IsActive(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(types.SnapshotKey)
}

// Activate freezes the refund ratio from the vault balance and the ledger
// supply. It can happen only once.
func (k Keeper) Activate(ctx sdk.Context, now time.Time) sdk.Error {
	if k.IsActive(ctx) {
		return types.ErrAlreadyActivated(k.codespace)
	}

	snapshot := types.NewSnapshot(k.vk.GetBalance(ctx), k.lk.TotalSupply(ctx), now)
	k.setSnapshot(ctx, snapshot)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeActivate,
			sdk.NewAttribute(types.AttributeKeyPool, snapshot.PoolAtFailure.String()),
			sdk.NewAttribute(types.AttributeKeySupply, snapshot.SupplyAtFailure.String()),
		),
	)
	k.Logger(ctx).Info("refunds opened", "pool", snapshot.PoolAtFailure.String(), "supply", snapshot.SupplyAtFailure.String())
	return nil
}

// GetClaim returns the claim record of participant, if it claimed.
func (k Keeper) GetClaim(ctx sdk.Context, participant sdk.CUAddress) (record types.ClaimRecord, found bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.ClaimedKey(participant))
	if bz == nil {
		return record, false
	}
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &record)
	return record, true
}

func (k Keeper) setClaim(ctx sdk.Context, record types.ClaimRecord) {
	ctx.KVStore(k.storeKey).Set(types.ClaimedKey(record.Participant), k.cdc.MustMarshalBinaryLengthPrefixed(record))
}

// IsClaimed reports whether participant already claimed.
func (k Keeper) IsClaimed(ctx sdk.Context, participant sdk.CUAddress) bool {
	return ctx.KVStore(k.storeKey).Has(types.ClaimedKey(participant))
}

// Claimable previews the refund participant would receive now.
func (k Keeper) Claimable(ctx sdk.Context, participant sdk.CUAddress) sdk.Int {
	snapshot, found := k.GetSnapshot(ctx)
	if !found || k.IsClaimed(ctx, participant) {
		return sdk.ZeroInt()
	}
	return snapshot.RefundFor(k.lk.GetBalance(ctx, participant))
}

// Claim pays participant floor(balance * pool / supply) from the vault, burns
// its balance and marks it claimed. The ratio never changes after Activate,
// so claims are independent of each other's order.
func (k Keeper) Claim(ctx sdk.Context, participant sdk.CUAddress, now time.Time) (sdk.Int, sdk.Error) {
	snapshot, found := k.GetSnapshot(ctx)
	if !found {
		return sdk.ZeroInt(), types.ErrInvalidState(k.codespace)
	}
	if k.IsClaimed(ctx, participant) {
		return sdk.ZeroInt(), types.ErrAlreadyClaimed(k.codespace, participant)
	}

	amount := snapshot.RefundFor(k.lk.GetBalance(ctx, participant))
	if amount.IsPositive() {
		if _, err := k.vk.Release(ctx, types.ModuleName, amount, participant); err != nil {
			return sdk.ZeroInt(), err
		}
	}
	burned := k.lk.Burn(ctx, participant)

	k.setClaim(ctx, types.NewClaimRecord(participant, burned, amount, now))
	snapshot.Paid = snapshot.Paid.Add(amount)
	k.setSnapshot(ctx, snapshot)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyParticipant, participant.String()),
			sdk.NewAttribute(types.AttributeKeyBurned, burned.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
		),
	)
	return amount, nil
}

// IterateClaims visits every claim record in participant order.
func (k Keeper) IterateClaims(ctx sdk.Context, cb func(record types.ClaimRecord) (stop bool)) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.ClaimedKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.ClaimRecord
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &record)
		if cb(record) {
			break
		}
	}
}

// GetClaims returns every claim record.
func (k Keeper) GetClaims(ctx sdk.Context) []types.ClaimRecord {
	claims := []types.ClaimRecord{}
	k.IterateClaims(ctx, func(record types.ClaimRecord) bool {
		claims = append(claims, record)
		return false
	})
	return claims
}
