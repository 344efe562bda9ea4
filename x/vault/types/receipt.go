package types

import (
	"fmt"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"

	sdk "github.com/hbtc-chain/daofund/types"
)

// receiptNamespace scopes receipt IDs so they never collide with other v5 IDs.
var receiptNamespace = uuid.NewV5(uuid.NamespaceURL, "daofund/vault/receipt")

// Receipt records one value release out of the vault.
type Receipt struct {
	ID        string        `json:"id" yaml:"id"`
	Seq       uint64        `json:"seq" yaml:"seq"`
	Releaser  string        `json:"releaser" yaml:"releaser"`
	Recipient sdk.CUAddress `json:"recipient" yaml:"recipient"`
	Amount    sdk.Int       `json:"amount" yaml:"amount"`
	Time      time.Time     `json:"time" yaml:"time"`
}

// NewReceipt derives a deterministic ID from the chain and sequence, so
// replaying the same history yields the same receipts.
func NewReceipt(chainID string, seq uint64, releaser string, recipient sdk.CUAddress, amount sdk.Int, t time.Time) Receipt {
	return Receipt{
		ID:        ReceiptID(chainID, seq),
		Seq:       seq,
		Releaser:  releaser,
		Recipient: recipient,
		Amount:    amount,
		Time:      t,
	}
}

// ReceiptID returns the v5 UUID of the seq-th release on chainID.
func ReceiptID(chainID string, seq uint64) string {
	return uuid.NewV5(receiptNamespace, fmt.Sprintf("%s/%d", chainID, seq)).String()
}

func (r Receipt) String() string {
	return strings.TrimSpace(fmt.Sprintf(`Receipt %s:
  Seq:       %d
  Releaser:  %s
  Recipient: %s
  Amount:    %s
  Time:      %s`, r.ID, r.Seq, r.Releaser, r.Recipient, r.Amount, r.Time))
}
