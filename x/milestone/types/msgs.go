package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

var (
	_ sdk.Msg = MsgInitialize{}
	_ sdk.Msg = MsgDelegate{}
	_ sdk.Msg = MsgCastVote{}
	_ sdk.Msg = MsgExecute{}
)

// MsgInitialize starts the fund and pays out milestone 0.
type MsgInitialize struct {
	Authority   sdk.CUAddress `json:"authority" yaml:"authority"`
	Beneficiary sdk.CUAddress `json:"beneficiary" yaml:"beneficiary"`
	Milestones  Milestones    `json:"milestones" yaml:"milestones"`
}

func NewMsgInitialize(authority, beneficiary sdk.CUAddress, milestones Milestones) MsgInitialize {
	return MsgInitialize{
		Authority:   authority,
		Beneficiary: beneficiary,
		Milestones:  milestones,
	}
}

func (msg MsgInitialize) Route() string { return RouterKey }
func (msg MsgInitialize) Type() string  { return TypeMsgInitialize }

// ValidateBasic runs stateless checks on the message
func (msg MsgInitialize) ValidateBasic() sdk.Error {
	if msg.Authority.Empty() {
		return sdk.ErrInvalidAddress("missing authority address")
	}
	if msg.Beneficiary.Empty() {
		return sdk.ErrInvalidAddress("missing beneficiary address")
	}
	if len(msg.Milestones) == 0 {
		return ErrInvalidMilestones(DefaultCodespace, "at least one milestone is required")
	}
	return nil
}

func (msg MsgInitialize) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgInitialize) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.Authority}
}

// MsgDelegate points the sender's vote at another participant. Delegating to
// oneself clears the delegation.
type MsgDelegate struct {
	Delegator sdk.CUAddress `json:"delegator" yaml:"delegator"`
	Delegate  sdk.CUAddress `json:"delegate" yaml:"delegate"`
}

func NewMsgDelegate(delegator, delegate sdk.CUAddress) MsgDelegate {
	return MsgDelegate{Delegator: delegator, Delegate: delegate}
}

func (msg MsgDelegate) Route() string { return RouterKey }
func (msg MsgDelegate) Type() string  { return TypeMsgDelegate }

func (msg MsgDelegate) ValidateBasic() sdk.Error {
	if msg.Delegator.Empty() {
		return sdk.ErrInvalidAddress("missing delegator address")
	}
	if msg.Delegate.Empty() {
		return sdk.ErrInvalidAddress("missing delegate address")
	}
	return nil
}

func (msg MsgDelegate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgDelegate) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.Delegator}
}

// MsgCastVote votes on the milestone currently open.
type MsgCastVote struct {
	Voter   sdk.CUAddress `json:"voter" yaml:"voter"`
	Approve bool          `json:"approve" yaml:"approve"`
}

func NewMsgCastVote(voter sdk.CUAddress, approve bool) MsgCastVote {
	return MsgCastVote{Voter: voter, Approve: approve}
}

func (msg MsgCastVote) Route() string { return RouterKey }
func (msg MsgCastVote) Type() string  { return TypeMsgCastVote }

func (msg MsgCastVote) ValidateBasic() sdk.Error {
	if msg.Voter.Empty() {
		return sdk.ErrInvalidAddress("missing voter address")
	}
	return nil
}

func (msg MsgCastVote) String() string {
	return fmt.Sprintf("CastVote{%s approve=%t}", msg.Voter, msg.Approve)
}

func (msg MsgCastVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgCastVote) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.Voter}
}

// MsgExecute decides the current milestone once its window is over. Anyone
// may send it.
type MsgExecute struct {
	Executor sdk.CUAddress `json:"executor" yaml:"executor"`
}

func NewMsgExecute(executor sdk.CUAddress) MsgExecute {
	return MsgExecute{Executor: executor}
}

func (msg MsgExecute) Route() string { return RouterKey }
func (msg MsgExecute) Type() string  { return TypeMsgExecute }

func (msg MsgExecute) ValidateBasic() sdk.Error {
	if msg.Executor.Empty() {
		return sdk.ErrInvalidAddress("missing executor address")
	}
	return nil
}

func (msg MsgExecute) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgExecute) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.Executor}
}
