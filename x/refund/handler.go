package refund

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/refund/types"
)

// NewHandler returns a handler for "refund" type messages.
func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgClaim:
			return handleMsgClaim(ctx, k, msg)

		default:
			errMsg := fmt.Sprintf("unrecognized refund message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgClaim(ctx sdk.Context, k Keeper, msg types.MsgClaim) sdk.Result {
	amount, err := k.Claim(ctx, msg.Participant, ctx.BlockTime())
	if err != nil {
		return err.Result()
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Participant.String()),
		),
	)

	return sdk.Result{
		Data:   []byte(amount.String()),
		Events: ctx.EventManager().Events(),
	}
}
