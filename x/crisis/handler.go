package crisis

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/crisis/internal/types"
)

// ModuleName is the module name for this module
const (
	ModuleName = types.ModuleName
	RouterKey  = types.RouterKey
)

func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgVerifyInvariant:
			return handleMsgVerifyInvariant(ctx, msg, k)

		default:
			errMsg := fmt.Sprintf("unrecognized crisis message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgVerifyInvariant(ctx sdk.Context, msg types.MsgVerifyInvariant, k Keeper) sdk.Result {
	// use a cached context to avoid gas costs during invariants
	cacheCtx, _ := ctx.CacheContext()

	found := false
	msgFullRoute := msg.FullInvariantRoute()

	var res string
	var stop bool
	for _, invarRoute := range k.routes {
		if invarRoute.FullRoute() == msgFullRoute {
			res, stop = invarRoute.Invar(cacheCtx)
			found = true
			break
		}
	}

	if !found {
		return types.ErrUnknownInvariant(types.DefaultCodespace, msg.InvariantModuleName, msg.InvariantRoute).Result()
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeInvariant,
			sdk.NewAttribute(types.AttributeKeyRoute, msg.InvariantRoute),
			sdk.NewAttribute(types.AttributeKeyBroken, fmt.Sprintf("%t", stop)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCrisis),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
		),
	})

	if stop {
		k.Logger(ctx).Error("invariant broken", "route", msgFullRoute, "report", res)
		return types.ErrBrokenInvariant(types.DefaultCodespace, res).Result()
	}

	return sdk.Result{
		Events: ctx.EventManager().Events(),
	}
}
