package milestone

import (
	"github.com/hbtc-chain/daofund/x/milestone/types"
)

const (
	ModuleName       = types.ModuleName
	RouterKey        = types.RouterKey
	StoreKey         = types.StoreKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
	QueryStatus      = types.QueryStatus
	QueryCurrent     = types.QueryCurrent
	QueryMilestones  = types.QueryMilestones
	QueryResults     = types.QueryResults
	QueryTally       = types.QueryTally

	StatusUninitialized = types.StatusUninitialized
	StatusActive        = types.StatusActive
	StatusRefunding     = types.StatusRefunding
	StatusFinished      = types.StatusFinished

	MilestonePending  = types.MilestonePending
	MilestoneVoting   = types.MilestoneVoting
	MilestoneApproved = types.MilestoneApproved
	MilestoneRejected = types.MilestoneRejected

	CodeAlreadyInitialized = types.CodeAlreadyInitialized
	CodeInvalidState       = types.CodeInvalidState
	CodeNotVotingPeriod    = types.CodeNotVotingPeriod
	CodeTooEarly           = types.CodeTooEarly
	CodeNotActive          = types.CodeNotActive
	CodeInvalidMilestones  = types.CodeInvalidMilestones
	CodeNoVotingPower      = types.CodeNoVotingPower
)

type (
	Fund             = types.Fund
	FundStatus       = types.FundStatus
	FundState        = types.FundState
	Milestone        = types.Milestone
	Milestones       = types.Milestones
	MilestoneStatus  = types.MilestoneStatus
	MilestoneResult  = types.MilestoneResult
	MilestoneTally   = types.MilestoneTally
	CurrentMilestone = types.CurrentMilestone
	GenesisState     = types.GenesisState
	MsgInitialize    = types.MsgInitialize
	MsgDelegate      = types.MsgDelegate
	MsgCastVote      = types.MsgCastVote
	MsgExecute       = types.MsgExecute
)

var (
	ModuleCdc            = types.ModuleCdc
	RegisterCodec        = types.RegisterCodec
	NewFund              = types.NewFund
	NewMilestone         = types.NewMilestone
	NewMilestoneResult   = types.NewMilestoneResult
	FundStatusFromString = types.FundStatusFromString
	NewGenesisState      = types.NewGenesisState
	DefaultGenesisState  = types.DefaultGenesisState
	ValidateGenesis      = types.ValidateGenesis
	NewMsgInitialize     = types.NewMsgInitialize
	NewMsgDelegate       = types.NewMsgDelegate
	NewMsgCastVote       = types.NewMsgCastVote
	NewMsgExecute        = types.NewMsgExecute
)
