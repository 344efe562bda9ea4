package types

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// Int is a non-negative 256-bit amount. Arithmetic panics on overflow and
// underflow, matching how balances are treated everywhere in the SDK: a
// negative or wrapped amount is always a programming error.
type Int struct {
	i *uint256.Int
}

func (i Int) v() *uint256.Int {
	if i.i == nil {
		return new(uint256.Int)
	}
	return i.i
}

// NewInt constructs Int from uint64
func NewInt(n uint64) Int {
	return Int{uint256.NewInt(n)}
}

// ZeroInt returns Int value with zero
func ZeroInt() Int { return NewInt(0) }

// OneInt returns Int value with one
func OneInt() Int { return NewInt(1) }

// NewIntFromString constructs Int from a base 10 string
func NewIntFromString(s string) (res Int, ok bool) {
	i, err := uint256.FromDecimal(s)
	if err != nil {
		return Int{}, false
	}
	return Int{i}, true
}

// NewIntWithDecimal constructs Int with decimal
// Result value is n*10^dec
func NewIntWithDecimal(n uint64, dec int) Int {
	if dec < 0 {
		panic("NewIntWithDecimal() decimal is negative")
	}
	exp := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(dec)))
	res, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(n), exp)
	if overflow {
		panic("NewIntWithDecimal() out of bound")
	}
	return Int{res}
}

// NewIntFromUint256 wraps a copy of u.
func NewIntFromUint256(u *uint256.Int) Int {
	if u == nil {
		return ZeroInt()
	}
	return Int{u.Clone()}
}

// Uint256 returns a copy of the underlying value.
func (i Int) Uint256() *uint256.Int {
	return i.v().Clone()
}

// IsZero returns true if Int is zero
func (i Int) IsZero() bool {
	return i.v().IsZero()
}

// IsPositive returns true if Int is not zero
func (i Int) IsPositive() bool {
	return !i.IsZero()
}

// Equal compares two Ints
func (i Int) Equal(i2 Int) bool {
	return i.v().Eq(i2.v())
}

// GT returns true if first Int is greater than second
func (i Int) GT(i2 Int) bool {
	return i.v().Gt(i2.v())
}

// GTE returns true if receiver Int is greater than or equal to the parameter
// Int.
func (i Int) GTE(i2 Int) bool {
	return !i.LT(i2)
}

// LT returns true if first Int is lesser than second
func (i Int) LT(i2 Int) bool {
	return i.v().Lt(i2.v())
}

// LTE returns true if first Int is less than or equal to second
func (i Int) LTE(i2 Int) bool {
	return !i.GT(i2)
}

// Add adds Int from another
func (i Int) Add(i2 Int) (res Int) {
	sum, overflow := new(uint256.Int).AddOverflow(i.v(), i2.v())
	if overflow {
		panic("Int overflow")
	}
	return Int{sum}
}

// AddRaw adds uint64 to Int
func (i Int) AddRaw(i2 uint64) Int {
	return i.Add(NewInt(i2))
}

// Sub subtracts Int from another
func (i Int) Sub(i2 Int) (res Int) {
	res, ok := i.SafeSub(i2)
	if !ok {
		panic("Int underflow")
	}
	return res
}

// SafeSub subtracts i2 and reports false instead of wrapping below zero.
func (i Int) SafeSub(i2 Int) (Int, bool) {
	diff, underflow := new(uint256.Int).SubOverflow(i.v(), i2.v())
	if underflow {
		return Int{}, false
	}
	return Int{diff}, true
}

// MulRaw multiplies Int and uint64
func (i Int) MulRaw(i2 uint64) Int {
	res, overflow := new(uint256.Int).MulOverflow(i.v(), uint256.NewInt(i2))
	if overflow {
		panic("Int overflow")
	}
	return Int{res}
}

// MulDiv returns floor(i * num / denom) computed with a 512-bit intermediate
// product, so the result is exact whenever it fits in 256 bits.
func (i Int) MulDiv(num, denom Int) Int {
	if denom.IsZero() {
		panic("division by zero")
	}
	res, overflow := new(uint256.Int).MulDivOverflow(i.v(), num.v(), denom.v())
	if overflow {
		panic("Int overflow")
	}
	return Int{res}
}

// MinInt returns the smaller of two Ints
func MinInt(i1, i2 Int) Int {
	if i1.LT(i2) {
		return i1
	}
	return i2
}

// Human readable string
func (i Int) String() string {
	return i.v().Dec()
}

// MarshalAmino defines custom encoding scheme
func (i Int) MarshalAmino() (string, error) {
	return i.String(), nil
}

// UnmarshalAmino defines custom decoding scheme
func (i *Int) UnmarshalAmino(text string) error {
	if text == "" {
		*i = ZeroInt()
		return nil
	}
	v, ok := NewIntFromString(text)
	if !ok {
		return fmt.Errorf("invalid amount: %q", text)
	}
	*i = v
	return nil
}

// MarshalJSON defines custom encoding scheme
func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON defines custom decoding scheme
func (i *Int) UnmarshalJSON(bz []byte) error {
	var text string
	if err := json.Unmarshal(bz, &text); err != nil {
		return err
	}
	return i.UnmarshalAmino(text)
}

// MarshalYAML returns the decimal representation.
func (i Int) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML accepts either a quoted decimal or a plain integer.
func (i *Int) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	return i.UnmarshalAmino(text)
}
