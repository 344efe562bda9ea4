package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	sdk "github.com/hbtc-chain/daofund/types"
)

// FundStatus is the global state of the fund
type FundStatus byte

const (
	StatusUninitialized FundStatus = 0x00
	StatusActive        FundStatus = 0x01
	StatusRefunding     FundStatus = 0x02
	StatusFinished      FundStatus = 0x03
)

// FundStatusFromString turns a string into a FundStatus
func FundStatusFromString(str string) (FundStatus, error) {
	switch str {
	case "Uninitialized":
		return StatusUninitialized, nil
	case "Active":
		return StatusActive, nil
	case "Refunding":
		return StatusRefunding, nil
	case "Finished":
		return StatusFinished, nil
	default:
		return FundStatus(0xff), errors.Errorf("'%s' is not a valid fund status", str)
	}
}

// Terminal reports whether the fund can no longer move.
func (status FundStatus) Terminal() bool {
	return status == StatusRefunding || status == StatusFinished
}

func (status FundStatus) String() string {
	switch status {
	case StatusUninitialized:
		return "Uninitialized"
	case StatusActive:
		return "Active"
	case StatusRefunding:
		return "Refunding"
	case StatusFinished:
		return "Finished"
	default:
		return ""
	}
}

func (status FundStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(status.String())
}

func (status *FundStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FundStatusFromString(s)
	if err != nil {
		return err
	}
	*status = parsed
	return nil
}

func (status FundStatus) MarshalYAML() (interface{}, error) {
	return status.String(), nil
}

// Fund is the singleton record driving the milestone sequence. Current is the
// milestone being voted on while Active, and the last decided one afterwards.
type Fund struct {
	Status      FundStatus    `json:"status" yaml:"status"`
	Current     uint64        `json:"current" yaml:"current"`
	Authority   sdk.CUAddress `json:"authority" yaml:"authority"`
	Beneficiary sdk.CUAddress `json:"beneficiary" yaml:"beneficiary"`
}

// NewFund returns an uninitialized fund controlled by authority
func NewFund(authority sdk.CUAddress) Fund {
	return Fund{
		Status:    StatusUninitialized,
		Authority: authority,
	}
}

func (f Fund) String() string {
	return strings.TrimSpace(fmt.Sprintf(`Fund:
  Status:      %s
  Current:     %d
  Authority:   %s
  Beneficiary: %s`, f.Status, f.Current, f.Authority, f.Beneficiary))
}
