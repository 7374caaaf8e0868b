// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// Element is an element of the prime field of integers modulo some prime.
// Elements are immutable: every operation returns a new element and the
// internal values are never shared with callers.
//
// The modulus is assumed to be prime.  Only the lower bound is checked at
// construction since Div and negative powers rely on Fermat's little theorem,
// which silently yields garbage for composite moduli.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns the element value in the field of integers modulo modulus.
//
// ErrInvalidModulus is returned when the modulus is less than two and
// ErrOutOfRange when value is not in [0, modulus).  The value is never
// reduced on behalf of the caller.
func New(value, modulus *big.Int) (*Element, error) {
	if modulus == nil || modulus.Cmp(bigTwo) < 0 {
		str := fmt.Sprintf("modulus %v is not a valid prime field modulus",
			modulus)
		return nil, fieldError(ErrInvalidModulus, str)
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		str := fmt.Sprintf("value %v not in field range 0 to %v", value,
			new(big.Int).Sub(modulus, bigOne))
		return nil, fieldError(ErrOutOfRange, str)
	}

	return &Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// NewInt is a convenience wrapper around New for small fields.
func NewInt(value, modulus int64) (*Element, error) {
	return New(big.NewInt(value), big.NewInt(modulus))
}

// Zero returns the additive identity of the field defined by modulus.
func Zero(modulus *big.Int) (*Element, error) {
	return New(bigZero, modulus)
}

// reduced builds an element from a value that is reduced modulo the
// receiver's modulus.  The modulus is shared since it is never mutated.
func (e *Element) reduced(v *big.Int) *Element {
	return &Element{value: v.Mod(v, e.modulus), modulus: e.modulus}
}

// checkField returns ErrIncompatibleField when the two elements do not belong
// to the same field.
func (e *Element) checkField(other *Element, op string) error {
	if e.modulus.Cmp(other.modulus) != 0 {
		str := fmt.Sprintf("cannot %s elements of fields %v and %v", op,
			e.modulus, other.modulus)
		return fieldError(ErrIncompatibleField, str)
	}
	return nil
}

// Value returns a copy of the integer representative of the element.
func (e *Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field modulus.
func (e *Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// IsZero returns whether or not the element is the additive identity.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOdd returns whether or not the integer representative is odd.
func (e *Element) IsOdd() bool {
	return e.value.Bit(0) == 1
}

// Equal returns whether both elements have the same value and belong to the
// same field.  A nil element is only equal to another nil element.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value.Cmp(other.value) == 0 && e.modulus.Cmp(other.modulus) == 0
}

// SameField returns whether both elements share a modulus.
func (e *Element) SameField(other *Element) bool {
	return e.modulus.Cmp(other.modulus) == 0
}

// Add returns e + other.
func (e *Element) Add(other *Element) (*Element, error) {
	if err := e.checkField(other, "add"); err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Add(e.value, other.value)), nil
}

// Sub returns e - other.
func (e *Element) Sub(other *Element) (*Element, error) {
	if err := e.checkField(other, "subtract"); err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Sub(e.value, other.value)), nil
}

// Mul returns e * other.
func (e *Element) Mul(other *Element) (*Element, error) {
	if err := e.checkField(other, "multiply"); err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Mul(e.value, other.value)), nil
}

// Div returns e / other, computed as e * other^(p-2) per Fermat's little
// theorem.
func (e *Element) Div(other *Element) (*Element, error) {
	if err := e.checkField(other, "divide"); err != nil {
		return nil, err
	}
	if other.IsZero() {
		return nil, fieldError(ErrDivideByZero, "division by the zero element")
	}

	exp := new(big.Int).Sub(e.modulus, bigTwo)
	inv := new(big.Int).Exp(other.value, exp, e.modulus)
	return e.reduced(inv.Mul(inv, e.value)), nil
}

// Pow returns e^exponent.  The exponent is first reduced modulo p-1, which
// makes negative exponents well defined: e^-1 is the multiplicative inverse
// of a non-zero element.
func (e *Element) Pow(exponent *big.Int) *Element {
	order := new(big.Int).Sub(e.modulus, bigOne)
	n := new(big.Int).Mod(exponent, order)
	return e.reduced(new(big.Int).Exp(e.value, n, e.modulus))
}

// Neg returns -e, computed as 0 - e.
func (e *Element) Neg() *Element {
	return e.reduced(new(big.Int).Sub(bigZero, e.value))
}

// ScalarMul returns k * e where k is a plain integer rather than a field
// element.
func (e *Element) ScalarMul(k *big.Int) *Element {
	return e.reduced(new(big.Int).Mul(e.value, k))
}

// String returns the element in the form "value (mod modulus)".
func (e *Element) String() string {
	return fmt.Sprintf("%v (mod %v)", e.value, e.modulus)
}
