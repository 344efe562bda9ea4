package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	"github.com/tendermint/tendermint/libs/bech32"
	"gopkg.in/yaml.v2"
)

const (
	// AddrLen defines a valid address length
	AddrLen = 20

	// Bech32PrefixAccAddr defines the Bech32 prefix of a participant's address
	Bech32PrefixAccAddr = "hbc"
)

// Address is a common interface for different types of addresses used by the SDK
type Address interface {
	Equals(Address) bool
	Empty() bool
	Marshal() ([]byte, error)
	MarshalJSON() ([]byte, error)
	Bytes() []byte
	String() string
	Format(s fmt.State, verb rune)
}

var _ Address = CUAddress{}

var _ yaml.Marshaler = CUAddress{}

// CUAddress a wrapper around bytes meant to represent a participant address.
// When marshaled to a string or JSON, it uses Bech32.
type CUAddress []byte

// CUAddressFromHex creates an CUAddress from a hex string.
func CUAddressFromHex(address string) (addr CUAddress, err error) {
	if len(address) == 0 {
		return addr, errors.New("decoding hex address failed: must provide an address")
	}

	bz, err := hex.DecodeString(address)
	if err != nil {
		return nil, err
	}

	return CUAddress(bz), nil
}

// CUAddressFromBech32 creates an CUAddress from a Bech32 string prefixed with "hbc".
func CUAddressFromBech32(address string) (addr CUAddress, err error) {
	// blank input get CUAddress{} without error
	if len(strings.TrimSpace(address)) == 0 {
		return CUAddress{}, nil
	}

	hrp, bz, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return nil, err
	}
	if hrp != Bech32PrefixAccAddr {
		return nil, fmt.Errorf("invalid address prefix: expected %s, got %s", Bech32PrefixAccAddr, hrp)
	}

	if err := VerifyAddressFormat(bz); err != nil {
		return nil, err
	}
	return CUAddress(bz), nil
}

// CUAddressFromPubKey derives the address of a public key.
func CUAddressFromPubKey(pubKey crypto.PubKey) CUAddress {
	return CUAddress(pubKey.Address().Bytes())
}

// CUAddressFromName derives a deterministic address from a human readable name.
// Module accounts and scenario aliases use it.
func CUAddressFromName(name string) CUAddress {
	return CUAddress(crypto.AddressHash([]byte(name)))
}

// NewCUAddress returns the address of a freshly generated secp256k1 key.
func NewCUAddress() CUAddress {
	pubKey := secp256k1.GenPrivKey().PubKey()
	return CUAddress(pubKey.Address())
}

// Returns boolean for whether CUAddress equal to another address
func (ca CUAddress) Equals(ca2 Address) bool {
	if ca.Empty() && ca2.Empty() {
		return true
	}

	return bytes.Equal(ca.Bytes(), ca2.Bytes())
}

// Returns boolean for whether an CUAddress is empty
func (ca CUAddress) Empty() bool {
	if ca == nil {
		return true
	}

	ca2 := CUAddress{}
	return bytes.Equal(ca.Bytes(), ca2.Bytes())
}

// Marshal returns the raw address bytes. It is needed for protobuf
// compatibility.
func (ca CUAddress) Marshal() ([]byte, error) {
	return ca, nil
}

// Unmarshal sets the address to the given data. It is needed for protobuf
// compatibility.
func (ca *CUAddress) Unmarshal(data []byte) error {
	*ca = data
	return nil
}

// MarshalJSON marshals to JSON using Bech32.
func (ca CUAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(ca.String())
}

// UnmarshalJSON unmarshals from JSON assuming Bech32 encoding.
func (ca *CUAddress) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	ca2, err := CUAddressFromBech32(s)
	if err != nil {
		return err
	}

	*ca = ca2
	return nil
}

// MarshalYAML marshals to YAML using Bech32.
func (ca CUAddress) MarshalYAML() (interface{}, error) {
	return ca.String(), nil
}

// UnmarshalYAML unmarshals from YAML assuming Bech32 encoding.
func (ca *CUAddress) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	ca2, err := CUAddressFromBech32(s)
	if err != nil {
		return err
	}
	*ca = ca2
	return nil
}

// Bytes returns the raw address bytes.
func (ca CUAddress) Bytes() []byte {
	return ca
}

// String implements the Stringer interface.
func (ca CUAddress) String() string {
	if ca.Empty() {
		return ""
	}

	bech32Addr, err := bech32.ConvertAndEncode(Bech32PrefixAccAddr, ca.Bytes())
	if err != nil {
		panic(err)
	}
	return bech32Addr
}

// Format implements the fmt.Formatter interface.
// nolint: errcheck
func (ca CUAddress) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		s.Write([]byte(ca.String()))
	case 'p':
		s.Write([]byte(fmt.Sprintf("%p", ca)))
	default:
		s.Write([]byte(fmt.Sprintf("%X", []byte(ca))))
	}
}

type CUAddressList []CUAddress

func (l CUAddressList) Len() int           { return len(l) }
func (l CUAddressList) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
func (l CUAddressList) Less(i, j int) bool { return bytes.Compare(l[i], l[j]) == -1 }

func (l CUAddressList) Join() string {
	l2 := make([]string, len(l))
	for i, t := range l {
		l2[i] = t.String()
	}
	return strings.Join(l2, ",")
}

// Contains reports whether target is a member of the list.
func (l CUAddressList) Contains(target Address) bool {
	for _, t := range l {
		if t.Equals(target) {
			return true
		}
	}
	return false
}

// VerifyAddressFormat verifies that the provided bytes form a valid address.
func VerifyAddressFormat(bz []byte) error {
	if len(bz) != AddrLen {
		return errors.New("Incorrect address length")
	}
	return nil
}
