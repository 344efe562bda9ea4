package types

const (
	EventTypeDelegate   = "delegate"
	EventTypeUndelegate = "undelegate"
	EventTypeVote       = "vote"

	AttributeKeyDelegator = "delegator"
	AttributeKeyDelegate  = "delegate"
	AttributeKeyVoter     = "voter"
	AttributeKeyMilestone = "milestone"
	AttributeKeyOption    = "option"
)
