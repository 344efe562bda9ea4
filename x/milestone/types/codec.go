package types

import (
	"github.com/hbtc-chain/daofund/codec"
)

// RegisterCodec registers concrete types on the Amino codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgInitialize{}, "daofund/milestone/MsgInitialize", nil)
	cdc.RegisterConcrete(MsgDelegate{}, "daofund/milestone/MsgDelegate", nil)
	cdc.RegisterConcrete(MsgCastVote{}, "daofund/milestone/MsgCastVote", nil)
	cdc.RegisterConcrete(MsgExecute{}, "daofund/milestone/MsgExecute", nil)
}

// ModuleCdc generic sealed codec to be used throughout module
var ModuleCdc *codec.Codec

func init() {
	cdc := codec.New()
	RegisterCodec(cdc)
	ModuleCdc = cdc.Seal()
}
