package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeNotDelegateRoot   CodeType = 101
	CodeAlreadyVoted      CodeType = 102
	CodeCyclicDelegation  CodeType = 103
	CodeInvalidVoteOption CodeType = 104
)

func ErrNotDelegateRoot(codespace sdk.CodespaceType, voter sdk.CUAddress) sdk.Error {
	return sdk.NewError(codespace, CodeNotDelegateRoot, fmt.Sprintf("%s delegates its vote and cannot vote itself", voter))
}

func ErrAlreadyVoted(codespace sdk.CodespaceType, voter sdk.CUAddress, milestone uint64) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyVoted, fmt.Sprintf("%s already voted on milestone %d", voter, milestone))
}

func ErrCyclicDelegation(codespace sdk.CodespaceType, from, to sdk.CUAddress) sdk.Error {
	return sdk.NewError(codespace, CodeCyclicDelegation, fmt.Sprintf("delegating %s to %s would close a cycle", from, to))
}

func ErrInvalidVoteOption(codespace sdk.CodespaceType, option VoteOption) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidVoteOption, fmt.Sprintf("'%v' is not a valid voting option", option))
}
