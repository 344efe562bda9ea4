package ledger

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger/types"
)

// Keeper tracks ownership units per holder and their total supply.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  storeKey,
		cdc:       cdc,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetBalance returns the units held by addr, zero when unknown.
func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.CUAddress) sdk.Int {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.BalanceKey(addr))
	if bz == nil {
		return sdk.ZeroInt()
	}
	var amount sdk.Int
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &amount)
	return amount
}

func (k Keeper) setBalance(ctx sdk.Context, addr sdk.CUAddress, amount sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	if amount.IsZero() {
		store.Delete(types.BalanceKey(addr))
		return
	}
	store.Set(types.BalanceKey(addr), k.cdc.MustMarshalBinaryLengthPrefixed(amount))
}

// TotalSupply returns the sum of all balances.
func (k Keeper) TotalSupply(ctx sdk.Context) sdk.Int {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.SupplyKey)
	if bz == nil {
		return sdk.ZeroInt()
	}
	var supply sdk.Int
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &supply)
	return supply
}

func (k Keeper) setTotalSupply(ctx sdk.Context, supply sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.SupplyKey, k.cdc.MustMarshalBinaryLengthPrefixed(supply))
}

// Transfer moves amount units from one holder to another.
func (k Keeper) Transfer(ctx sdk.Context, from, to sdk.CUAddress, amount sdk.Int) sdk.Error {
	fromBalance := k.GetBalance(ctx, from)
	newFrom, ok := fromBalance.SafeSub(amount)
	if !ok {
		return types.ErrInsufficientBalance(k.codespace,
			fmt.Sprintf("%s has %s, needs %s", from, fromBalance, amount))
	}
	k.setBalance(ctx, from, newFrom)
	k.setBalance(ctx, to, k.GetBalance(ctx, to).Add(amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(sdk.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Mint credits new units to addr and grows the supply. Only genesis mints.
func (k Keeper) Mint(ctx sdk.Context, addr sdk.CUAddress, amount sdk.Int) {
	k.setBalance(ctx, addr, k.GetBalance(ctx, addr).Add(amount))
	k.setTotalSupply(ctx, k.TotalSupply(ctx).Add(amount))
}

// Burn zeroes the balance of addr and returns the burned amount.
func (k Keeper) Burn(ctx sdk.Context, addr sdk.CUAddress) sdk.Int {
	amount := k.GetBalance(ctx, addr)
	if amount.IsZero() {
		return amount
	}
	k.setBalance(ctx, addr, sdk.ZeroInt())
	k.setTotalSupply(ctx, k.TotalSupply(ctx).Sub(amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurn,
			sdk.NewAttribute(types.AttributeKeyHolder, addr.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
		),
	)
	k.Logger(ctx).Info(fmt.Sprintf("burned %s from %s", amount, addr))
	return amount
}

// IterateBalances visits every non-zero balance in address order until cb returns true.
func (k Keeper) IterateBalances(ctx sdk.Context, cb func(addr sdk.CUAddress, amount sdk.Int) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var amount sdk.Int
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &amount)
		if cb(types.AddressFromBalanceKey(iterator.Key()), amount) {
			break
		}
	}
}

// GetBalances returns all non-zero balances.
func (k Keeper) GetBalances(ctx sdk.Context) []types.Balance {
	balances := []types.Balance{}
	k.IterateBalances(ctx, func(addr sdk.CUAddress, amount sdk.Int) bool {
		balances = append(balances, types.NewBalance(addr, amount))
		return false
	})
	return balances
}
