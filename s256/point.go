// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package s256

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/ecscript/curve"
)

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyInfinity     byte = 0x0
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// Point is a point on secp256k1 or the point at infinity.  It is a thin
// specialization of curve.Point with the coefficients fixed to a = 0, b = 7.
type Point struct {
	pt *curve.Point
}

// NewPoint returns the affine point (x, y) after checking it is on the curve.
func NewPoint(x, y *big.Int) (*Point, error) {
	fx, err := NewFieldVal(x)
	if err != nil {
		str := fmt.Sprintf("x coordinate %x is not a field element", x)
		return nil, makeError(ErrPointNotOnCurve, str)
	}
	fy, err := NewFieldVal(y)
	if err != nil {
		str := fmt.Sprintf("y coordinate %x is not a field element", y)
		return nil, makeError(ErrPointNotOnCurve, str)
	}
	pt, err := curve.NewPoint(fx, fy, curveA, curveB)
	if err != nil {
		return nil, makeError(ErrPointNotOnCurve, err.Error())
	}
	return &Point{pt: pt}, nil
}

// Infinity returns the identity of the secp256k1 group.
func Infinity() *Point {
	return &Point{pt: curve.Infinity(curveA, curveB)}
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) *Point {
	return g.ScalarMult(k)
}

// IsInfinity returns whether or not the point is the group identity.
func (p *Point) IsInfinity() bool {
	return p.pt.IsInfinity()
}

// X returns a copy of the x coordinate or nil for the point at infinity.
func (p *Point) X() *big.Int {
	if p.IsInfinity() {
		return nil
	}
	return p.pt.X().Value()
}

// Y returns a copy of the y coordinate or nil for the point at infinity.
func (p *Point) Y() *big.Int {
	if p.IsInfinity() {
		return nil
	}
	return p.pt.Y().Value()
}

// Curve returns the underlying generic curve point.
func (p *Point) Curve() *curve.Point {
	return p.pt
}

// Equal returns whether the two points are the same.  A nil point is only
// equal to another nil point.
func (p *Point) Equal(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.pt.Equal(other.pt)
}

// Add returns p + other.
func (p *Point) Add(other *Point) *Point {
	sum, err := p.pt.Add(other.pt)
	if err != nil {
		// Both operands always share the fixed curve, so this is unreachable.
		panic(err)
	}
	return &Point{pt: sum}
}

// ScalarMult returns k*p.  The scalar is reduced modulo the group order first,
// so negative scalars wrap around.
func (p *Point) ScalarMult(k *big.Int) *Point {
	coef := new(big.Int).Mod(k, n)
	prod, err := p.pt.ScalarMult(coef)
	if err != nil {
		panic(err)
	}
	return &Point{pt: prod}
}

// IsOdd returns whether the y coordinate is odd.  The point at infinity is
// even.
func (p *Point) IsOdd() bool {
	return !p.IsInfinity() && p.pt.Y().IsOdd()
}

// SerializeUncompressed serializes the point in the 65-byte format
// 0x04 || x || y.
func (p *Point) SerializeUncompressed() []byte {
	if p.IsInfinity() {
		return []byte{pubkeyInfinity}
	}
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	p.X().FillBytes(b[1:33])
	p.Y().FillBytes(b[33:65])
	return b
}

// SerializeCompressed serializes the point in the 33-byte format
// (0x02 + oddness of y) || x.
func (p *Point) SerializeCompressed() []byte {
	if p.IsInfinity() {
		return []byte{pubkeyInfinity}
	}
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = pubkeyCompressed
	if p.IsOdd() {
		b[0] |= 1
	}
	p.X().FillBytes(b[1:33])
	return b
}

// SEC returns the compressed or uncompressed SEC encoding of the point.
func (p *Point) SEC(compressed bool) []byte {
	if compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

// Hash160 returns ripemd160(sha256(SEC)).
func (p *Point) Hash160(compressed bool) []byte {
	return btcutil.Hash160(p.SEC(compressed))
}

// Address returns the base58check pay-to-pubkey-hash address of the point
// for the given network.
func (p *Point) Address(compressed bool, net *chaincfg.Params) string {
	return base58.CheckEncode(p.Hash160(compressed), net.PubKeyHashAddrID)
}

// String returns the point as hex coordinates.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "S256Point(infinity)"
	}
	return fmt.Sprintf("S256Point(%064x, %064x)", p.X(), p.Y())
}

// ParseSEC parses a compressed or uncompressed SEC public key.  The point at
// infinity is not a valid public key and is rejected.
func ParseSEC(b []byte) (*Point, error) {
	if len(b) == 0 {
		return nil, makeError(ErrMalformedSEC, "empty public key")
	}

	format := b[0]
	switch {
	case format == pubkeyUncompressed && len(b) == PubKeyBytesLenUncompressed:
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:65])
		pt, err := NewPoint(x, y)
		if err != nil {
			str := fmt.Sprintf("invalid public key: %v", err)
			return nil, makeError(ErrMalformedSEC, str)
		}
		return pt, nil

	case format&^1 == pubkeyCompressed && len(b) == PubKeyBytesLenCompressed:
		return decompress(b[1:33], format&1 == 1)
	}

	str := fmt.Sprintf("malformed public key: format byte %#x, length %d",
		format, len(b))
	return nil, makeError(ErrMalformedSEC, str)
}

// decompress recovers y from x by solving y^2 = x^3 + 7 and picking the root
// with the requested parity.
func decompress(xBytes []byte, odd bool) (*Point, error) {
	x, err := NewFieldVal(new(big.Int).SetBytes(xBytes))
	if err != nil {
		str := fmt.Sprintf("invalid public key: x coordinate %x is not a "+
			"field element", xBytes)
		return nil, makeError(ErrMalformedSEC, str)
	}

	// alpha = x^3 + 7, beta = sqrt(alpha)
	alpha, err := x.Pow(big.NewInt(3)).Add(curveB)
	if err != nil {
		return nil, err
	}
	beta, err := Sqrt(alpha)
	if err != nil {
		return nil, err
	}
	if !beta.Pow(big.NewInt(2)).Equal(alpha) {
		str := fmt.Sprintf("invalid public key: x coordinate %x is not on "+
			"the curve", xBytes)
		return nil, makeError(ErrMalformedSEC, str)
	}

	y := beta
	if beta.IsOdd() != odd {
		y = beta.Neg()
	}
	if y.IsOdd() != odd {
		str := fmt.Sprintf("invalid public key: x coordinate %x has no "+
			"root with the requested parity", xBytes)
		return nil, makeError(ErrMalformedSEC, str)
	}

	pt, err := curve.NewPoint(x, y, curveA, curveB)
	if err != nil {
		return nil, makeError(ErrMalformedSEC, err.Error())
	}
	return &Point{pt: pt}, nil
}
