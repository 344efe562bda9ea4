package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInsufficientFunds CodeType = 101
	CodeNotPermitted      CodeType = 102
)

func ErrInsufficientFunds(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInsufficientFunds, msg)
}

func ErrNotPermitted(codespace sdk.CodespaceType, releaser string) sdk.Error {
	return sdk.NewError(codespace, CodeNotPermitted, "module %s may not release funds", releaser)
}
