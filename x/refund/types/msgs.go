package types

import (
	sdk "github.com/hbtc-chain/daofund/types"
)

var _ sdk.Msg = MsgClaim{}

// MsgClaim pays the sender its share of the remaining pool.
type MsgClaim struct {
	Participant sdk.CUAddress `json:"participant" yaml:"participant"`
}

func NewMsgClaim(participant sdk.CUAddress) MsgClaim {
	return MsgClaim{Participant: participant}
}

func (msg MsgClaim) Route() string { return RouterKey }
func (msg MsgClaim) Type() string  { return TypeMsgClaim }

// ValidateBasic runs stateless checks on the message
func (msg MsgClaim) ValidateBasic() sdk.Error {
	if msg.Participant.Empty() {
		return sdk.ErrInvalidAddress("missing participant address")
	}
	return nil
}

func (msg MsgClaim) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgClaim) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.Participant}
}
