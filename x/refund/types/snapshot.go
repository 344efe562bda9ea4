package types

import (
	"fmt"
	"strings"
	"time"

	sdk "github.com/hbtc-chain/daofund/types"
)

// Snapshot freezes the refund ratio PoolAtFailure / SupplyAtFailure.
// The ratio is kept as the exact fraction and applied with a 512-bit
// intermediate product, so individually floored claims never add up to
// more than the pool.
type Snapshot struct {
	PoolAtFailure   sdk.Int   `json:"pool_at_failure" yaml:"pool_at_failure"`
	SupplyAtFailure sdk.Int   `json:"supply_at_failure" yaml:"supply_at_failure"`
	ActivatedAt     time.Time `json:"activated_at" yaml:"activated_at"`
	Paid            sdk.Int   `json:"paid" yaml:"paid"`
}

func NewSnapshot(pool, supply sdk.Int, activatedAt time.Time) Snapshot {
	return Snapshot{
		PoolAtFailure:   pool,
		SupplyAtFailure: supply,
		ActivatedAt:     activatedAt,
		Paid:            sdk.ZeroInt(),
	}
}

// RefundFor returns floor(balance * pool / supply).
func (s Snapshot) RefundFor(balance sdk.Int) sdk.Int {
	if s.SupplyAtFailure.IsZero() {
		return sdk.ZeroInt()
	}
	return balance.MulDiv(s.PoolAtFailure, s.SupplyAtFailure)
}

func (s Snapshot) String() string {
	return strings.TrimSpace(fmt.Sprintf(`Refund snapshot:
  Pool:         %s
  Supply:       %s
  Activated at: %s
  Paid:         %s`, s.PoolAtFailure, s.SupplyAtFailure, s.ActivatedAt, s.Paid))
}

// ClaimRecord marks a participant as paid.
type ClaimRecord struct {
	Participant sdk.CUAddress `json:"participant" yaml:"participant"`
	Burned      sdk.Int       `json:"burned" yaml:"burned"`
	Amount      sdk.Int       `json:"amount" yaml:"amount"`
	ClaimedAt   time.Time     `json:"claimed_at" yaml:"claimed_at"`
}

func NewClaimRecord(participant sdk.CUAddress, burned, amount sdk.Int, claimedAt time.Time) ClaimRecord {
	return ClaimRecord{
		Participant: participant,
		Burned:      burned,
		Amount:      amount,
		ClaimedAt:   claimedAt,
	}
}
