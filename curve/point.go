// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/ecscript/field"
)

// Point is a point in affine coordinates on the short Weierstrass curve
// y^2 = x^3 + a*x + b defined over a prime field.  The point at infinity,
// which acts as the identity of the group, is represented with nil
// coordinates.
//
// Points are immutable.
type Point struct {
	x, y *field.Element
	a, b *field.Element
}

// NewPoint returns the point (x, y) on the curve with coefficients a and b.
// Passing nil for both x and y yields the point at infinity.
//
// ErrIncompatibleCurve is returned when the coordinates and coefficients do
// not all belong to the same field and ErrPointNotOnCurve when the point does
// not satisfy the curve equation.
func NewPoint(x, y, a, b *field.Element) (*Point, error) {
	if a == nil || b == nil {
		return nil, curveError(ErrIncompatibleCurve,
			"curve coefficients must not be nil")
	}
	if !a.SameField(b) {
		str := fmt.Sprintf("coefficients %v and %v are in different fields",
			a, b)
		return nil, curveError(ErrIncompatibleCurve, str)
	}
	if x == nil && y == nil {
		return Infinity(a, b), nil
	}
	if x == nil || y == nil {
		return nil, curveError(ErrPointNotOnCurve,
			"exactly one coordinate of the point is missing")
	}
	if !x.SameField(a) || !y.SameField(a) {
		str := fmt.Sprintf("coordinates (%v, %v) are not in the field of "+
			"the curve", x, y)
		return nil, curveError(ErrIncompatibleCurve, str)
	}

	// y^2 == x^3 + a*x + b
	var c calc
	lhs := c.mul(y, y)
	rhs := c.add(c.add(c.mul(c.mul(x, x), x), c.mul(a, x)), b)
	if c.err != nil {
		return nil, c.err
	}
	if !lhs.Equal(rhs) {
		str := fmt.Sprintf("(%v, %v) is not on the curve y^2 = x^3 + %vx + "+
			"%v", x.Value(), y.Value(), a.Value(), b.Value())
		return nil, curveError(ErrPointNotOnCurve, str)
	}

	return &Point{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the point at infinity of the curve with coefficients a and
// b.
func Infinity(a, b *field.Element) *Point {
	return &Point{a: a, b: b}
}

// IsInfinity returns whether or not the point is the identity element.
func (p *Point) IsInfinity() bool {
	return p.x == nil
}

// X returns the x coordinate, or nil for the point at infinity.
func (p *Point) X() *field.Element {
	return p.x
}

// Y returns the y coordinate, or nil for the point at infinity.
func (p *Point) Y() *field.Element {
	return p.y
}

// A returns the linear coefficient of the curve.
func (p *Point) A() *field.Element {
	return p.a
}

// B returns the constant coefficient of the curve.
func (p *Point) B() *field.Element {
	return p.b
}

// sameCurve returns whether both points lie on a curve with the same
// coefficients.
func (p *Point) sameCurve(other *Point) bool {
	return p.a.Equal(other.a) && p.b.Equal(other.b)
}

// Equal returns whether the two points have the same coordinates and lie on
// the same curve.
func (p *Point) Equal(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.sameCurve(other) && p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Add returns p + other using the chord-and-tangent group law.
func (p *Point) Add(other *Point) (*Point, error) {
	if !p.sameCurve(other) {
		str := fmt.Sprintf("points %v and %v are not on the same curve", p,
			other)
		return nil, curveError(ErrIncompatibleCurve, str)
	}

	// The point at infinity is the identity.
	if p.IsInfinity() {
		return other, nil
	}
	if other.IsInfinity() {
		return p, nil
	}

	var c calc
	var slope *field.Element
	switch {
	// Vertical line through additive inverses.
	case p.x.Equal(other.x) && !p.y.Equal(other.y):
		return Infinity(p.a, p.b), nil

	// The tangent at a point with y = 0 is vertical.
	case p.x.Equal(other.x) && p.y.IsZero():
		return Infinity(p.a, p.b), nil

	// Doubling: s = (3x^2 + a) / 2y.
	case p.x.Equal(other.x):
		num := c.add(c.scale(c.mul(p.x, p.x), 3), p.a)
		slope = c.div(num, c.scale(p.y, 2))

	// Distinct x: s = (y2 - y1) / (x2 - x1).
	default:
		slope = c.div(c.sub(other.y, p.y), c.sub(other.x, p.x))
	}

	// x3 = s^2 - x1 - x2, y3 = s(x1 - x3) - y1
	x3 := c.sub(c.sub(c.mul(slope, slope), p.x), other.x)
	y3 := c.sub(c.mul(slope, c.sub(p.x, x3)), p.y)
	if c.err != nil {
		return nil, c.err
	}

	return &Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

// ScalarMult returns k*p computed with binary double-and-add.  The
// multiplier must not be negative.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		str := fmt.Sprintf("scalar %v is negative", k)
		return nil, curveError(ErrNegativeScalar, str)
	}

	result := Infinity(p.a, p.b)
	current := p
	for i := 0; i < k.BitLen(); i++ {
		var err error
		if k.Bit(i) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return nil, err
			}
		}
		current, err = current.Add(current)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// String returns the point in a human-readable form.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%v,%v)_%v_%v FieldElement(%v)", p.x.Value(),
		p.y.Value(), p.a.Value(), p.b.Value(), p.a.Modulus())
}

// calc chains field operations and remembers the first error encountered.
// Once an error is recorded every further operation is a no-op returning nil.
type calc struct {
	err error
}

func (c *calc) add(a, b *field.Element) *field.Element {
	return c.do(a, b, (*field.Element).Add)
}

func (c *calc) sub(a, b *field.Element) *field.Element {
	return c.do(a, b, (*field.Element).Sub)
}

func (c *calc) mul(a, b *field.Element) *field.Element {
	return c.do(a, b, (*field.Element).Mul)
}

func (c *calc) div(a, b *field.Element) *field.Element {
	return c.do(a, b, (*field.Element).Div)
}

func (c *calc) scale(a *field.Element, k int64) *field.Element {
	if c.err != nil {
		return nil
	}
	return a.ScalarMul(big.NewInt(k))
}

func (c *calc) do(a, b *field.Element,
	op func(*field.Element, *field.Element) (*field.Element, error)) *field.Element {

	if c.err != nil {
		return nil
	}
	r, err := op(a, b)
	if err != nil {
		c.err = err
		return nil
	}
	return r
}
