package types

const (
	EventTypeRelease = "release"

	AttributeKeyReleaser  = "releaser"
	AttributeKeyRecipient = "recipient"
	AttributeKeyReceiptID = "receipt_id"
)
