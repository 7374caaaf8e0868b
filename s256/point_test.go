// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package s256

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/ecscript/field"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  It must only be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestGenerator ensures the group order annihilates the generator.
func TestGenerator(t *testing.T) {
	t.Parallel()

	g := Generator()
	require.Equal(t, 0, g.X().Cmp(gx))
	require.Equal(t, 0, g.Y().Cmp(gy))

	require.True(t, g.ScalarMult(Order()).IsInfinity(), "N*G != infinity")

	nPlusOne := new(big.Int).Add(Order(), big.NewInt(1))
	require.True(t, g.ScalarMult(nPlusOne).Equal(g), "(N+1)*G != G")

	// Negative scalars wrap modulo N.
	minusOne := ScalarBaseMult(big.NewInt(-1))
	nMinusOne := ScalarBaseMult(new(big.Int).Sub(Order(), big.NewInt(1)))
	require.True(t, minusOne.Equal(nMinusOne))
	require.True(t, minusOne.Add(g).IsInfinity())
}

// TestAccessorsCopy ensures the curve constants cannot be altered through
// their accessors.
func TestAccessorsCopy(t *testing.T) {
	t.Parallel()

	Order().SetInt64(1)
	Prime().SetInt64(1)
	HalfOrder().SetInt64(1)
	Generator().X().SetInt64(1)

	require.Equal(t, 0, Order().Cmp(n))
	require.Equal(t, 0, Prime().Cmp(p))
	require.Equal(t, 0, Generator().X().Cmp(gx))
	require.Equal(t, 0, HalfOrder().Cmp(new(big.Int).Rsh(n, 1)))
}

// TestGroupLaw checks commutativity and associativity over random multiples
// of the generator.
func TestGroupLaw(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0xec))
	for i := 0; i < 5; i++ {
		a := ScalarBaseMult(new(big.Int).Rand(rng, n))
		b := ScalarBaseMult(new(big.Int).Rand(rng, n))
		c := ScalarBaseMult(new(big.Int).Rand(rng, n))

		require.True(t, a.Add(b).Equal(b.Add(a)), "#%d: a+b != b+a", i)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))),
			"#%d: (a+b)+c != a+(b+c)", i)
		require.True(t, a.Add(Infinity()).Equal(a), "#%d: a+O != a", i)
		require.True(t, a.Add(a).Equal(a.ScalarMult(big.NewInt(2))),
			"#%d: a+a != 2a", i)
	}
}

// TestEqualNil ensures comparing against a nil point does not panic.
func TestEqualNil(t *testing.T) {
	t.Parallel()

	var nilPoint *Point
	require.False(t, Generator().Equal(nil))
	require.False(t, Infinity().Equal(nil))
	require.False(t, nilPoint.Equal(Generator()))
	require.True(t, nilPoint.Equal(nil))
}

// TestSqrt ensures the square root only applies to the secp256k1 field.
func TestSqrt(t *testing.T) {
	t.Parallel()

	v, err := NewFieldVal(big.NewInt(4))
	require.NoError(t, err)
	root, err := Sqrt(v)
	require.NoError(t, err)
	require.True(t, root.Pow(big.NewInt(2)).Equal(v))

	small, err := field.NewInt(4, 31)
	require.NoError(t, err)
	_, err = Sqrt(small)
	require.ErrorIs(t, err, field.ErrIncompatibleField)
}

// TestSEC ensures points serialize to known SEC encodings and parse back.
func TestSEC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		secret     *big.Int
		compressed bool
		want       string
	}{{
		secret: big.NewInt(5000),
		want: "04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282" +
			"d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10",
	}, {
		secret: new(big.Int).Exp(big.NewInt(2018), big.NewInt(5), nil),
		want: "04027f3da1918455e03c46f659266a1bb5204e959db7364d2f473bdf8f0a13" +
			"cc9dff87647fd023c13b4a4994f17691895806e1b40b57f4fd22581a4f46851f3b06",
	}, {
		secret: fromHex("deadbeef12345"),
		want: "04d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342" +
			"691f842efa762fd59961d0e99803c61edba8b3e3f7dc3a341836f97733aebf987121",
	}, {
		secret:     big.NewInt(5001),
		compressed: true,
		want:       "0357a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1",
	}, {
		secret:     new(big.Int).Exp(big.NewInt(2019), big.NewInt(5), nil),
		compressed: true,
		want:       "02933ec2d2b111b92737ec12f1c5d20f3233a0ad21cd8b36d0bca7a0cfa5cb8701",
	}, {
		secret:     fromHex("deadbeef54321"),
		compressed: true,
		want:       "0296be5b1292f6c856b3c5654e886fc13511462059089cdf9c479623bfcbe77690",
	}}

	for i, test := range tests {
		pub := ScalarBaseMult(test.secret)
		got := pub.SEC(test.compressed)
		want := hexToBytes(test.want)
		if !bytes.Equal(got, want) {
			t.Errorf("#%d: mismatched SEC - got %x, want %x", i, got, want)
			continue
		}

		parsed, err := ParseSEC(got)
		if err != nil {
			t.Errorf("#%d: unexpected parse error: %v", i, err)
			continue
		}
		if !parsed.Equal(pub) {
			t.Errorf("#%d: parsed point %v, want %v", i, parsed, pub)
		}
	}
}

// TestSECInterop cross checks the encodings against btcec.
func TestSECInterop(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(256))
	for i := 0; i < 5; i++ {
		secret := new(big.Int).Rand(rng, n)
		if secret.Sign() == 0 {
			continue
		}
		var secretBytes [32]byte
		secret.FillBytes(secretBytes[:])
		_, theirs := btcec.PrivKeyFromBytes(secretBytes[:])

		ours := ScalarBaseMult(secret)
		require.Equal(t, theirs.SerializeCompressed(),
			ours.SerializeCompressed(), "#%d", i)
		require.Equal(t, theirs.SerializeUncompressed(),
			ours.SerializeUncompressed(), "#%d", i)

		parsed, err := btcec.ParsePubKey(ours.SerializeCompressed())
		require.NoError(t, err)
		require.True(t, parsed.IsEqual(theirs))
	}
}

// TestParseSECErrors ensures malformed encodings are rejected.
func TestParseSECErrors(t *testing.T) {
	t.Parallel()

	valid := Generator().SerializeCompressed()
	validUncompressed := Generator().SerializeUncompressed()

	badFormat := append([]byte{}, valid...)
	badFormat[0] = 0x05

	offCurve := append([]byte{}, validUncompressed...)
	offCurve[64] ^= 0x01

	xTooBig := append([]byte{pubkeyCompressed}, bytes.Repeat([]byte{0xff}, 32)...)

	// x = 5 gives x^3 + 7 = 132, which is not a quadratic residue mod P.
	nonResidue := make([]byte, PubKeyBytesLenCompressed)
	nonResidue[0] = pubkeyCompressed
	nonResidue[32] = 5

	tests := []struct {
		name string
		key  []byte
	}{
		{"empty", nil},
		{"infinity", []byte{pubkeyInfinity}},
		{"short compressed", valid[:32]},
		{"long compressed", append(append([]byte{}, valid...), 0x00)},
		{"short uncompressed", validUncompressed[:64]},
		{"bad format", badFormat},
		{"off curve", offCurve},
		{"x >= P", xTooBig},
		{"no square root", nonResidue},
	}

	for i, test := range tests {
		_, err := ParseSEC(test.key)
		if !errors.Is(err, ErrMalformedSEC) {
			t.Errorf("#%d (%s): unexpected error - got %v, want %v", i,
				test.name, err, ErrMalformedSEC)
		}
	}
}

// TestInfinitySerialization ensures the identity serializes to a single zero
// byte.
func TestInfinitySerialization(t *testing.T) {
	t.Parallel()

	inf := Infinity()
	require.Equal(t, []byte{0x00}, inf.SerializeCompressed())
	require.Equal(t, []byte{0x00}, inf.SerializeUncompressed())
	require.Nil(t, inf.X())
	require.Equal(t, "S256Point(infinity)", inf.String())
}

// TestNewPoint ensures coordinates are validated.
func TestNewPoint(t *testing.T) {
	t.Parallel()

	_, err := NewPoint(gx, gy)
	require.NoError(t, err)

	_, err = NewPoint(gx, new(big.Int).Add(gy, big.NewInt(1)))
	require.ErrorIs(t, err, ErrPointNotOnCurve)

	_, err = NewPoint(gx, new(big.Int).Add(gy, p))
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

// TestAddress ensures the base58check addresses match known values and
// btcutil.
func TestAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		secret     *big.Int
		compressed bool
		net        *chaincfg.Params
		want       string
	}{
		{big.NewInt(5002), false, &chaincfg.TestNet3Params,
			"mmTPbXQFxboEtNRkwfh6K51jvdtHLxGeMA"},
		{new(big.Int).Exp(big.NewInt(2020), big.NewInt(5), nil), true,
			&chaincfg.TestNet3Params, "mopVkxp8UhXqRYbCYJsbeE1h1fiF64jcoH"},
		{fromHex("12345deadbeef"), true, &chaincfg.MainNetParams,
			"1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1"},
	}

	for i, test := range tests {
		pub := ScalarBaseMult(test.secret)
		got := pub.Address(test.compressed, test.net)
		if got != test.want {
			t.Errorf("#%d: got address %s, want %s", i, got, test.want)
		}

		addr, err := btcutil.NewAddressPubKey(pub.SEC(test.compressed),
			test.net)
		require.NoError(t, err)
		require.Equal(t, test.want, addr.AddressPubKeyHash().EncodeAddress())
		require.Equal(t, btcutil.Hash160(pub.SEC(test.compressed)),
			pub.Hash160(test.compressed))
	}
}
