// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/ecscript/field"
	"github.com/stretchr/testify/require"
)

// prime223 is the order of the small field the tests run on.  The curve
// y^2 = x^3 + 7 over it mirrors secp256k1 with a toy modulus.
const prime223 = 223

func fe(v int64) *field.Element {
	e, err := field.NewInt(v, prime223)
	if err != nil {
		panic(err)
	}
	return e
}

var (
	curveA = fe(0)
	curveB = fe(7)
)

// pt returns the point (x, y) on the test curve and panics if it is invalid.
// It must only be called with hard-coded values.
func pt(x, y int64) *Point {
	p, err := NewPoint(fe(x), fe(y), curveA, curveB)
	if err != nil {
		panic(err)
	}
	return p
}

// TestOnCurve ensures construction validates the curve equation.
func TestOnCurve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y  int64
		valid bool
	}{
		{192, 105, true},
		{17, 56, true},
		{1, 193, true},
		{200, 119, false},
		{42, 99, false},
	}

	for i, test := range tests {
		_, err := NewPoint(fe(test.x), fe(test.y), curveA, curveB)
		switch {
		case test.valid && err != nil:
			t.Errorf("#%d: (%d, %d) unexpected error: %v", i, test.x,
				test.y, err)
		case !test.valid && !errors.Is(err, ErrPointNotOnCurve):
			t.Errorf("#%d: (%d, %d) unexpected error - got %v, want %v", i,
				test.x, test.y, err, ErrPointNotOnCurve)
		}
	}
}

// TestNewPointErrors ensures malformed constructions are rejected.
func TestNewPointErrors(t *testing.T) {
	t.Parallel()

	other, err := field.NewInt(7, 31)
	require.NoError(t, err)

	_, err = NewPoint(fe(192), nil, curveA, curveB)
	require.ErrorIs(t, err, ErrPointNotOnCurve)

	_, err = NewPoint(nil, fe(105), curveA, curveB)
	require.ErrorIs(t, err, ErrPointNotOnCurve)

	_, err = NewPoint(fe(192), fe(105), curveA, other)
	require.ErrorIs(t, err, ErrIncompatibleCurve)

	_, err = NewPoint(other, fe(105), curveA, curveB)
	require.ErrorIs(t, err, ErrIncompatibleCurve)

	inf, err := NewPoint(nil, nil, curveA, curveB)
	require.NoError(t, err)
	require.True(t, inf.IsInfinity())
	require.Nil(t, inf.X())
	require.Nil(t, inf.Y())
}

// TestAdd exercises the addition cases with known answers.
func TestAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p1, p2 *Point
		want   *Point
	}{{
		name: "distinct x 1",
		p1:   pt(170, 142),
		p2:   pt(60, 139),
		want: pt(220, 181),
	}, {
		name: "distinct x 2",
		p1:   pt(47, 71),
		p2:   pt(17, 56),
		want: pt(215, 68),
	}, {
		name: "distinct x 3",
		p1:   pt(143, 98),
		p2:   pt(76, 66),
		want: pt(47, 71),
	}, {
		name: "doubling",
		p1:   pt(192, 105),
		p2:   pt(192, 105),
		want: pt(49, 71),
	}, {
		name: "inverse",
		p1:   pt(47, 71),
		p2:   pt(47, 223-71),
		want: Infinity(curveA, curveB),
	}, {
		name: "left identity",
		p1:   Infinity(curveA, curveB),
		p2:   pt(17, 56),
		want: pt(17, 56),
	}, {
		name: "right identity",
		p1:   pt(17, 56),
		p2:   Infinity(curveA, curveB),
		want: pt(17, 56),
	}, {
		name: "both infinity",
		p1:   Infinity(curveA, curveB),
		p2:   Infinity(curveA, curveB),
		want: Infinity(curveA, curveB),
	}}

	for i, test := range tests {
		got, err := test.p1.Add(test.p2)
		if err != nil {
			t.Errorf("#%d (%s): unexpected error: %v", i, test.name, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("#%d (%s): got %v, want %v", i, test.name, got,
				test.want)
		}
	}
}

// TestDoubleVerticalTangent ensures doubling a point with y = 0 yields the
// point at infinity.
func TestDoubleVerticalTangent(t *testing.T) {
	t.Parallel()

	// y^2 = x^3 + 7 has the root x = 6 over F_223 since 6^3 + 7 = 223.
	p, err := NewPoint(fe(6), fe(0), curveA, curveB)
	require.NoError(t, err)

	got, err := p.Add(p)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

// TestAddIncompatible ensures points on different curves cannot be added.
func TestAddIncompatible(t *testing.T) {
	t.Parallel()

	// (1, 193) is also on y^2 = x^3 + 5x + 2 since 193^2 = 8 (mod 223).
	other, err := NewPoint(fe(1), fe(193), fe(5), fe(2))
	require.NoError(t, err)

	_, err = pt(1, 193).Add(other)
	require.ErrorIs(t, err, ErrIncompatibleCurve)
}

// TestScalarMult ensures repeated addition matches known multiples.
func TestScalarMult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    int64
		p    *Point
		want *Point
	}{
		{0, pt(47, 71), Infinity(curveA, curveB)},
		{1, pt(47, 71), pt(47, 71)},
		{2, pt(192, 105), pt(49, 71)},
		{2, pt(143, 98), pt(64, 168)},
		{2, pt(47, 71), pt(36, 111)},
		{4, pt(47, 71), pt(194, 51)},
		{8, pt(47, 71), pt(116, 55)},
		{21, pt(47, 71), Infinity(curveA, curveB)},
		{7, pt(15, 86), Infinity(curveA, curveB)},
		{8, pt(15, 86), pt(15, 86)},
	}

	for i, test := range tests {
		got, err := test.p.ScalarMult(big.NewInt(test.k))
		if err != nil {
			t.Errorf("#%d: unexpected error: %v", i, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("#%d: %d*%v - got %v, want %v", i, test.k, test.p,
				got, test.want)
		}
	}

	_, err := pt(47, 71).ScalarMult(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeScalar)
}

// TestScalarMultMatchesAddition cross checks double-and-add against repeated
// addition for every multiple up to the group order.
func TestScalarMultMatchesAddition(t *testing.T) {
	t.Parallel()

	g := pt(47, 71)
	acc := Infinity(curveA, curveB)
	for k := int64(0); k <= 21; k++ {
		got, err := g.ScalarMult(big.NewInt(k))
		require.NoError(t, err)
		require.True(t, got.Equal(acc), "k=%d: got %v, want %v", k, got, acc)

		acc, err = acc.Add(g)
		require.NoError(t, err)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Point(infinity)", Infinity(curveA, curveB).String())
	require.Equal(t, "Point(47,71)_0_7 FieldElement(223)", pt(47, 71).String())
}
