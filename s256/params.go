// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package s256

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/ecscript/curve"
	"github.com/btcsuite/ecscript/field"
)

// fromHex parses a hard-coded hex constant and panics on malformed input.  It
// must only be called during package initialization.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// The curve parameters are initialized once and never mutated.  Exported
// accessors hand out copies.
var (
	// p is the prime of the underlying field, 2^256 - 2^32 - 977.
	p = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// n is the order of the group generated by g.
	n = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// halfOrder is n/2, the upper bound of a low-S signature.
	halfOrder = new(big.Int).Rsh(n, 1)

	gx = fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy = fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	// sqrtExp is (p+1)/4.  p = 3 (mod 4), so v^sqrtExp is a square root of v
	// whenever one exists.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)

	curveA = mustFieldVal(big.NewInt(0))
	curveB = mustFieldVal(big.NewInt(7))

	// g is the generator of the group.
	g = mustGenerator()
)

func mustFieldVal(v *big.Int) *field.Element {
	e, err := NewFieldVal(v)
	if err != nil {
		panic(err)
	}
	return e
}

func mustGenerator() *Point {
	pt, err := curve.NewPoint(mustFieldVal(gx), mustFieldVal(gy), curveA,
		curveB)
	if err != nil {
		panic(err)
	}
	return &Point{pt: pt}
}

// Prime returns the field prime P of secp256k1.
func Prime() *big.Int {
	return new(big.Int).Set(p)
}

// Order returns the order N of the secp256k1 group.
func Order() *big.Int {
	return new(big.Int).Set(n)
}

// HalfOrder returns N/2 rounded down.
func HalfOrder() *big.Int {
	return new(big.Int).Set(halfOrder)
}

// Generator returns the base point G.
func Generator() *Point {
	return g
}

// NewFieldVal returns v as an element of the secp256k1 base field.  v must be
// in [0, P).
func NewFieldVal(v *big.Int) (*field.Element, error) {
	return field.New(v, p)
}

// Sqrt returns v^((P+1)/4), which squares back to v if and only if v is a
// quadratic residue.  The caller is responsible for that check.
func Sqrt(v *field.Element) (*field.Element, error) {
	if v.Modulus().Cmp(p) != 0 {
		str := fmt.Sprintf("element %v is not in the secp256k1 field", v)
		return nil, field.Error{Err: field.ErrIncompatibleField,
			Description: str}
	}
	return v.Pow(sqrtExp), nil
}
