package types

// milestone module event types
const (
	EventTypeInitialize = "fund_initialize"
	EventTypeExecute    = "milestone_execute"
	EventTypeRelease    = "tranche_release"

	AttributeKeyBeneficiary = "beneficiary"
	AttributeKeyMilestone   = "milestone"
	AttributeKeyOutcome     = "outcome"
	AttributeKeyApprove     = "approve"
	AttributeKeyReject      = "reject"
	AttributeKeyStatus      = "status"
	AttributeKeyReceiptID   = "receipt_id"

	AttributeValueCategory = ModuleName
)
