package types

const (
	EventTypeTransfer = "transfer"
	EventTypeBurn     = "burn"

	AttributeKeyRecipient = "recipient"
	AttributeKeyHolder    = "holder"

	AttributeValueCategory = ModuleName
)
