package types

import (
	"github.com/hbtc-chain/daofund/codec"
)

// RegisterCodec registers concrete types on the Amino codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(Vote{}, "daofund/delegation/Vote", nil)
	cdc.RegisterConcrete(Edge{}, "daofund/delegation/Edge", nil)
}

// ModuleCdc generic sealed codec to be used throughout module
var ModuleCdc *codec.Codec

func init() {
	cdc := codec.New()
	RegisterCodec(cdc)
	ModuleCdc = cdc.Seal()
}
