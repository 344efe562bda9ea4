package vault

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/vault/types"
)

// Keeper holds the pooled value. Only the modules it was built with may release it.
type Keeper struct {
	storeKey    sdk.StoreKey
	cdc         *codec.Codec
	codespace   sdk.CodespaceType
	permissions map[string]bool
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, codespace sdk.CodespaceType, releasers ...string) Keeper {
	permissions := make(map[string]bool, len(releasers))
	for _, name := range releasers {
		permissions[name] = true
	}
	return Keeper{
		storeKey:    storeKey,
		cdc:         cdc,
		codespace:   codespace,
		permissions: permissions,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) getInt(ctx sdk.Context, key []byte) sdk.Int {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if bz == nil {
		return sdk.ZeroInt()
	}
	var amount sdk.Int
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &amount)
	return amount
}

func (k Keeper) setInt(ctx sdk.Context, key []byte, amount sdk.Int) {
	ctx.KVStore(k.storeKey).Set(key, k.cdc.MustMarshalBinaryLengthPrefixed(amount))
}

// GetBalance returns the value still held by the vault.
func (k Keeper) GetBalance(ctx sdk.Context) sdk.Int {
	return k.getInt(ctx, types.BalanceKey)
}

// GetDeposited returns everything ever seeded into the vault.
func (k Keeper) GetDeposited(ctx sdk.Context) sdk.Int {
	return k.getInt(ctx, types.DepositedKey)
}

// Seed adds value to the pool. Only genesis seeds the vault.
func (k Keeper) Seed(ctx sdk.Context, amount sdk.Int) {
	k.setInt(ctx, types.BalanceKey, k.GetBalance(ctx).Add(amount))
	k.setInt(ctx, types.DepositedKey, k.GetDeposited(ctx).Add(amount))
}

// IsPermitted reports whether module may call Release.
func (k Keeper) IsPermitted(module string) bool {
	return k.permissions[module]
}

// Release pays amount to recipient on behalf of the releaser module and
// records a receipt.
func (k Keeper) Release(ctx sdk.Context, releaser string, amount sdk.Int, recipient sdk.CUAddress) (types.Receipt, sdk.Error) {
	if !k.IsPermitted(releaser) {
		return types.Receipt{}, types.ErrNotPermitted(k.codespace, releaser)
	}
	if !amount.IsPositive() {
		return types.Receipt{}, sdk.ErrInvalidAmount(fmt.Sprintf("release amount %s is not positive", amount))
	}
	if recipient.Empty() {
		return types.Receipt{}, sdk.ErrInvalidAddress("missing release recipient")
	}

	balance := k.GetBalance(ctx)
	remaining, ok := balance.SafeSub(amount)
	if !ok {
		return types.Receipt{}, types.ErrInsufficientFunds(k.codespace,
			fmt.Sprintf("vault holds %s, release needs %s", balance, amount))
	}
	k.setInt(ctx, types.BalanceKey, remaining)

	receipt := types.NewReceipt(ctx.ChainID(), k.nextReceiptSeq(ctx), releaser, recipient, amount, ctx.BlockTime())
	k.setReceipt(ctx, receipt)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRelease,
			sdk.NewAttribute(types.AttributeKeyReleaser, releaser),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReceiptID, receipt.ID),
		),
	)
	k.Logger(ctx).Info("released funds", "releaser", releaser, "recipient", recipient.String(), "amount", amount.String())

	return receipt, nil
}

func (k Keeper) nextReceiptSeq(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	seq := sdk.BigEndianToUint64(store.Get(types.ReceiptSeqKey))
	store.Set(types.ReceiptSeqKey, sdk.Uint64ToBigEndian(seq+1))
	return seq
}

// setReceipt stores the receipt and credits the recipient's payout total.
func (k Keeper) setReceipt(ctx sdk.Context, receipt types.Receipt) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ReceiptKey(receipt.Seq), k.cdc.MustMarshalBinaryLengthPrefixed(receipt))
	k.setInt(ctx, types.PayoutKey(receipt.Recipient), k.GetPayout(ctx, receipt.Recipient).Add(receipt.Amount))
}

// GetPayout returns the total released to recipient.
func (k Keeper) GetPayout(ctx sdk.Context, recipient sdk.CUAddress) sdk.Int {
	return k.getInt(ctx, types.PayoutKey(recipient))
}

// IterateReceipts visits receipts in release order until cb returns true.
func (k Keeper) IterateReceipts(ctx sdk.Context, cb func(receipt types.Receipt) (stop bool)) {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.ReceiptKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var receipt types.Receipt
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &receipt)
		if cb(receipt) {
			break
		}
	}
}

// GetReceipts returns every receipt in release order.
func (k Keeper) GetReceipts(ctx sdk.Context) []types.Receipt {
	receipts := []types.Receipt{}
	k.IterateReceipts(ctx, func(receipt types.Receipt) bool {
		receipts = append(receipts, receipt)
		return false
	})
	return receipts
}

// GetReleased returns the sum of all receipts.
func (k Keeper) GetReleased(ctx sdk.Context) sdk.Int {
	released := sdk.ZeroInt()
	k.IterateReceipts(ctx, func(receipt types.Receipt) bool {
		released = released.Add(receipt.Amount)
		return false
	})
	return released
}
