package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInvalidState     CodeType = 101
	CodeAlreadyClaimed   CodeType = 102
	CodeAlreadyActivated CodeType = 103
)

func ErrInvalidState(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidState, "refunds are not open")
}

func ErrAlreadyClaimed(codespace sdk.CodespaceType, participant sdk.CUAddress) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyClaimed, "%s already claimed its refund", participant)
}

func ErrAlreadyActivated(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyActivated, "refund snapshot already taken")
}
