package types

const (
	EventTypeActivate = "refund_activate"
	EventTypeClaim    = "refund_claim"

	AttributeKeyPool        = "pool"
	AttributeKeySupply      = "supply"
	AttributeKeyParticipant = "participant"
	AttributeKeyBurned      = "burned"

	AttributeValueCategory = ModuleName
)
