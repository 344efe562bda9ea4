package delegation

import (
	"github.com/hbtc-chain/daofund/x/delegation/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
	OptionApprove    = types.OptionApprove
	OptionReject     = types.OptionReject
	QueryRoot        = types.QueryRoot
	QueryWeight      = types.QueryWeight
	QueryWeights     = types.QueryWeights
	QueryVotes       = types.QueryVotes
	QueryTally       = types.QueryTally

	CodeNotDelegateRoot  = types.CodeNotDelegateRoot
	CodeAlreadyVoted     = types.CodeAlreadyVoted
	CodeCyclicDelegation = types.CodeCyclicDelegation
)

type (
	Vote                 = types.Vote
	VoteOption           = types.VoteOption
	Edge                 = types.Edge
	RootWeight           = types.RootWeight
	TallyResult          = types.TallyResult
	GenesisState         = types.GenesisState
	QueryAddressParams   = types.QueryAddressParams
	QueryMilestoneParams = types.QueryMilestoneParams
)

var (
	ModuleCdc               = types.ModuleCdc
	RegisterCodec           = types.RegisterCodec
	NewVote                 = types.NewVote
	NewEdge                 = types.NewEdge
	NewTallyResult          = types.NewTallyResult
	VoteOptionFromString    = types.VoteOptionFromString
	VoteOptionFromBool      = types.VoteOptionFromBool
	ValidVoteOption         = types.ValidVoteOption
	NewGenesisState         = types.NewGenesisState
	DefaultGenesisState     = types.DefaultGenesisState
	ValidateGenesis         = types.ValidateGenesis
	NewQueryAddressParams   = types.NewQueryAddressParams
	NewQueryMilestoneParams = types.NewQueryMilestoneParams
	VoteKeyPrefix           = types.VoteKeyPrefix
	ErrNotDelegateRoot      = types.ErrNotDelegateRoot
	ErrAlreadyVoted         = types.ErrAlreadyVoted
	ErrCyclicDelegation     = types.ErrCyclicDelegation
)
