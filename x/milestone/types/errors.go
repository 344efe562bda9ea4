package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeAlreadyInitialized CodeType = 101
	CodeInvalidState       CodeType = 102
	CodeNotVotingPeriod    CodeType = 103
	CodeTooEarly           CodeType = 104
	CodeNotActive          CodeType = 105
	CodeInvalidMilestones  CodeType = 106
	CodeNoVotingPower      CodeType = 107
)

func ErrAlreadyInitialized(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyInitialized, "fund already initialized")
}

func ErrInvalidState(codespace sdk.CodespaceType, status FundStatus) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidState, fmt.Sprintf("operation not allowed while fund is %s", status))
}

func ErrNotVotingPeriod(codespace sdk.CodespaceType, index uint64) sdk.Error {
	return sdk.NewError(codespace, CodeNotVotingPeriod, fmt.Sprintf("milestone %d is not open for voting", index))
}

func ErrTooEarly(codespace sdk.CodespaceType, index uint64) sdk.Error {
	return sdk.NewError(codespace, CodeTooEarly, fmt.Sprintf("voting on milestone %d has not ended", index))
}

func ErrNotActive(codespace sdk.CodespaceType, status FundStatus) sdk.Error {
	return sdk.NewError(codespace, CodeNotActive, fmt.Sprintf("fund is %s, nothing to execute", status))
}

func ErrInvalidMilestones(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidMilestones, "invalid milestones: %s", msg)
}

func ErrNoVotingPower(codespace sdk.CodespaceType, voter sdk.CUAddress) sdk.Error {
	return sdk.NewError(codespace, CodeNoVotingPower, fmt.Sprintf("%s has no balance behind it", voter))
}
