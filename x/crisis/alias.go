// nolint
package crisis

import (
	"github.com/hbtc-chain/daofund/x/crisis/internal/types"
)

const (
	DefaultCodespace   = types.DefaultCodespace
	CodeInvalidInput   = types.CodeInvalidInput
	CodeUnknownRoute   = types.CodeUnknownRoute
	CodeBrokenInvarant = types.CodeBrokenInvarant
)

var (
	RegisterCodec         = types.RegisterCodec
	ErrNoSender           = types.ErrNoSender
	ErrUnknownInvariant   = types.ErrUnknownInvariant
	ErrBrokenInvariant    = types.ErrBrokenInvariant
	NewMsgVerifyInvariant = types.NewMsgVerifyInvariant
	NewInvarRoute         = types.NewInvarRoute
	ModuleCdc             = types.ModuleCdc
)

type (
	MsgVerifyInvariant = types.MsgVerifyInvariant
	InvarRoute         = types.InvarRoute
)
