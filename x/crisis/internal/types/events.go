package types

// crisis module event types
const (
	EventTypeInvariant = "invariant"

	AttributeKeyRoute  = "route"
	AttributeKeyBroken = "broken"

	AttributeValueCrisis = ModuleName
)
