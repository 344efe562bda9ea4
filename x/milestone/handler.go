package milestone

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

// NewHandler returns a handler for "milestone" type messages.
func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgInitialize:
			return handleMsgInitialize(ctx, k, msg)

		case types.MsgDelegate:
			return handleMsgDelegate(ctx, k, msg)

		case types.MsgCastVote:
			return handleMsgCastVote(ctx, k, msg)

		case types.MsgExecute:
			return handleMsgExecute(ctx, k, msg)

		default:
			errMsg := fmt.Sprintf("unrecognized milestone message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgInitialize(ctx sdk.Context, k Keeper, msg types.MsgInitialize) sdk.Result {
	if err := k.Initialize(ctx, msg.Authority, msg.Beneficiary, msg.Milestones, ctx.BlockTime()); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Authority)
}

func handleMsgDelegate(ctx sdk.Context, k Keeper, msg types.MsgDelegate) sdk.Result {
	if err := k.Delegate(ctx, msg.Delegator, msg.Delegate); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Delegator)
}

func handleMsgCastVote(ctx sdk.Context, k Keeper, msg types.MsgCastVote) sdk.Result {
	if err := k.CastVote(ctx, msg.Voter, msg.Approve, ctx.BlockTime()); err != nil {
		return err.Result()
	}
	return messageResult(ctx, msg.Voter)
}

func handleMsgExecute(ctx sdk.Context, k Keeper, msg types.MsgExecute) sdk.Result {
	result, err := k.Execute(ctx, ctx.BlockTime())
	if err != nil {
		return err.Result()
	}
	res := messageResult(ctx, msg.Executor)
	res.Data = []byte(result.Status.String())
	return res
}

func messageResult(ctx sdk.Context, sender sdk.CUAddress) sdk.Result {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, sender.String()),
		),
	)
	return sdk.Result{Events: ctx.EventManager().Events()}
}
