package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInvalidInput   CodeType = 103
	CodeUnknownRoute   CodeType = 104
	CodeBrokenInvarant CodeType = 105
)

func ErrNoSender(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidInput, "sender address is empty")
}

func ErrUnknownInvariant(codespace sdk.CodespaceType, module, route string) sdk.Error {
	return sdk.NewError(codespace, CodeUnknownRoute, "unknown invariant %s/%s", module, route)
}

func ErrBrokenInvariant(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeBrokenInvarant, "invariant broken: %s", msg)
}
