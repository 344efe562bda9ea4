package refund

import (
	"github.com/hbtc-chain/daofund/x/refund/types"
)

const (
	ModuleName       = types.ModuleName
	RouterKey        = types.RouterKey
	StoreKey         = types.StoreKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
	QuerySnapshot    = types.QuerySnapshot
	QueryClaimed     = types.QueryClaimed
	QueryClaimable   = types.QueryClaimable

	CodeInvalidState     = types.CodeInvalidState
	CodeAlreadyClaimed   = types.CodeAlreadyClaimed
	CodeAlreadyActivated = types.CodeAlreadyActivated
)

type (
	MsgClaim               = types.MsgClaim
	Snapshot               = types.Snapshot
	ClaimRecord            = types.ClaimRecord
	ClaimStatus            = types.ClaimStatus
	GenesisState           = types.GenesisState
	QueryParticipantParams = types.QueryParticipantParams
)

var (
	ModuleCdc                 = types.ModuleCdc
	RegisterCodec             = types.RegisterCodec
	NewMsgClaim               = types.NewMsgClaim
	NewSnapshot               = types.NewSnapshot
	NewGenesisState           = types.NewGenesisState
	DefaultGenesisState       = types.DefaultGenesisState
	ValidateGenesis           = types.ValidateGenesis
	NewQueryParticipantParams = types.NewQueryParticipantParams
	ErrInvalidState           = types.ErrInvalidState
	ErrAlreadyClaimed         = types.ErrAlreadyClaimed
	ErrAlreadyActivated       = types.ErrAlreadyActivated
)
