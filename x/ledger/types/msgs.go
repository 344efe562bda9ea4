package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/daofund/types"
)

var _ sdk.Msg = MsgTransfer{}

// MsgTransfer moves ownership units between two holders.
type MsgTransfer struct {
	From   sdk.CUAddress `json:"from" yaml:"from"`
	To     sdk.CUAddress `json:"to" yaml:"to"`
	Amount sdk.Int       `json:"amount" yaml:"amount"`
}

func NewMsgTransfer(from, to sdk.CUAddress, amount sdk.Int) MsgTransfer {
	return MsgTransfer{From: from, To: to, Amount: amount}
}

func (msg MsgTransfer) Route() string { return RouterKey }
func (msg MsgTransfer) Type() string  { return TypeMsgTransfer }

// ValidateBasic runs stateless checks on the message
func (msg MsgTransfer) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("missing sender address")
	}
	if msg.To.Empty() {
		return sdk.ErrInvalidAddress("missing recipient address")
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount(fmt.Sprintf("transfer amount %v is not positive", msg.Amount))
	}
	return nil
}

func (msg MsgTransfer) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg MsgTransfer) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}
