package types

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	sdk "github.com/hbtc-chain/daofund/types"
)

// VoteOption defines a vote direction
type VoteOption byte

// Vote options
const (
	OptionEmpty   VoteOption = 0x00
	OptionApprove VoteOption = 0x01
	OptionReject  VoteOption = 0x02
)

// VoteOptionFromString returns a VoteOption from a string. It returns an error
// if the string is invalid.
func VoteOptionFromString(str string) (VoteOption, error) {
	switch str {
	case "Approve", "approve":
		return OptionApprove, nil

	case "Reject", "reject":
		return OptionReject, nil

	default:
		return VoteOption(0xff), errors.Errorf("'%s' is not a valid vote option", str)
	}
}

// VoteOptionFromBool maps an approve flag to its option.
func VoteOptionFromBool(approve bool) VoteOption {
	if approve {
		return OptionApprove
	}
	return OptionReject
}

// ValidVoteOption returns true if the vote option is valid and false otherwise.
func ValidVoteOption(option VoteOption) bool {
	return option == OptionApprove || option == OptionReject
}

// Marshal needed for protobuf compatibility.
func (vo VoteOption) Marshal() ([]byte, error) {
	return []byte{byte(vo)}, nil
}

// Unmarshal needed for protobuf compatibility.
func (vo *VoteOption) Unmarshal(data []byte) error {
	*vo = VoteOption(data[0])
	return nil
}

// MarshalJSON marshals to JSON using string.
func (vo VoteOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(vo.String())
}

// UnmarshalJSON decodes from JSON assuming Bech32 encoding.
func (vo *VoteOption) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	bz2, err := VoteOptionFromString(s)
	if err != nil {
		return err
	}

	*vo = bz2
	return nil
}

// MarshalYAML writes the option name.
func (vo VoteOption) MarshalYAML() (interface{}, error) {
	return vo.String(), nil
}

// UnmarshalYAML reads the option name.
func (vo *VoteOption) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	option, err := VoteOptionFromString(s)
	if err != nil {
		return err
	}
	*vo = option
	return nil
}

// String implements the Stringer interface.
func (vo VoteOption) String() string {
	switch vo {
	case OptionApprove:
		return "Approve"
	case OptionReject:
		return "Reject"
	default:
		return ""
	}
}

// Format implements the fmt.Formatter interface.
// nolint: errcheck
func (vo VoteOption) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		s.Write([]byte(vo.String()))
	default:
		s.Write([]byte(fmt.Sprintf("%v", byte(vo))))
	}
}

// Vote is a root's write-once direction on one milestone
type Vote struct {
	Milestone uint64        `json:"milestone" yaml:"milestone"`
	Voter     sdk.CUAddress `json:"voter" yaml:"voter"`
	Option    VoteOption    `json:"option" yaml:"option"`
}

// NewVote creates a new Vote instance
func NewVote(milestone uint64, voter sdk.CUAddress, option VoteOption) Vote {
	return Vote{milestone, voter, option}
}

func (v Vote) String() string {
	return fmt.Sprintf("voter %s voted with option %s on milestone %d", v.Voter, v.Option, v.Milestone)
}

// Edge is one stored delegation
type Edge struct {
	From sdk.CUAddress `json:"from" yaml:"from"`
	To   sdk.CUAddress `json:"to" yaml:"to"`
}

func NewEdge(from, to sdk.CUAddress) Edge {
	return Edge{From: from, To: to}
}

// RootWeight is the live voting weight gathered behind one root
type RootWeight struct {
	Root   sdk.CUAddress `json:"root" yaml:"root"`
	Weight sdk.Int       `json:"weight" yaml:"weight"`
}

// TallyResult is the live weight behind each direction
type TallyResult struct {
	Approve sdk.Int `json:"approve" yaml:"approve"`
	Reject  sdk.Int `json:"reject" yaml:"reject"`
}

func NewTallyResult(approve, reject sdk.Int) TallyResult {
	return TallyResult{Approve: approve, Reject: reject}
}

// Approved is true only on a strict majority of cast weight.
func (tr TallyResult) Approved() bool {
	return tr.Approve.GT(tr.Reject)
}

func (tr TallyResult) String() string {
	return fmt.Sprintf("Approve: %s\nReject:  %s", tr.Approve, tr.Reject)
}
