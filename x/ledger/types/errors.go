package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInsufficientBalance CodeType = 101
	CodeInvalidGenesis      CodeType = 102
)

func ErrInsufficientBalance(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInsufficientBalance, msg)
}

func ErrInvalidGenesis(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidGenesis, msg)
}
