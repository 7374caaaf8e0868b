// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/ecscript/s256"
)

// References:
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf
//
//   [ISO/IEC 8825-1]: Information technology - ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02
)

var (
	curveOrder = s256.Order()
	halfOrder  = s256.HalfOrder()
	two        = big.NewInt(2)
)

// Signature is a type representing an ECDSA signature.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature instantiates a new signature given some R,S values.  The
// values are copied.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns a copy of the r value of the signature.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the s value of the signature.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// inRange returns whether 1 <= v < N.
func inRange(v *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(curveOrder) < 0
}

// canonicalPadding strips leading zero bytes from the big-endian encoding of
// v and prepends a single zero byte when the high bit is set so the DER
// integer is not read as negative.
func canonicalPadding(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}

// Serialize returns the ECDSA signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1]:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// The serialized bytes do not include the appended hash type used in
// signature scripts.
func (sig *Signature) Serialize() []byte {
	rb := canonicalPadding(sig.r)
	sb := canonicalPadding(sig.s)

	// total length of returned signature is 1 byte for each magic and
	// length (6 total), plus lengths of R and S
	totalLen := 6 + len(rb) + len(sb)
	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID, byte(totalLen-2))
	b = append(b, asn1IntegerID, byte(len(rb)))
	b = append(b, rb...)
	b = append(b, asn1IntegerID, byte(len(sb)))
	b = append(b, sb...)
	return b
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1] and enforces the following
// additional restrictions specific to secp256k1:
//
//   - The R and S values must be in the valid range for secp256k1 scalars:
//   - Negative values are rejected
//   - Zero is rejected
//   - Values greater than or equal to the secp256k1 group order are rejected
func ParseDERSignature(sig []byte) (*Signature, error) {
	const (
		// minSigLen is the minimum length of a DER encoded signature and is
		// when both R and S are 1 byte each.
		minSigLen = 8

		// maxSigLen is the maximum length of a DER encoded signature and is
		// when both R and S are 33 bytes each.
		maxSigLen = 72

		dataLenOffset = 1
		rTypeOffset   = 2
		rLenOffset    = 3
		rOffset       = 4
	)

	sigLen := len(sig)
	if sigLen < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", sigLen,
			minSigLen)
		return nil, signatureError(ErrMalformedDER, str)
	}
	if sigLen > maxSigLen {
		str := fmt.Sprintf("malformed signature: too long: %d > %d", sigLen,
			maxSigLen)
		return nil, signatureError(ErrMalformedDER, str)
	}
	if sig[0] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: %#x",
			sig[0])
		return nil, signatureError(ErrMalformedDER, str)
	}
	if int(sig[dataLenOffset]) != sigLen-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d",
			sig[dataLenOffset], sigLen-2)
		return nil, signatureError(ErrMalformedDER, str)
	}

	rLen := int(sig[rLenOffset])
	sTypeOffset := rOffset + rLen
	sLenOffset := sTypeOffset + 1
	if sLenOffset >= sigLen {
		str := "malformed signature: S type or length missing"
		return nil, signatureError(ErrMalformedDER, str)
	}
	sOffset := sLenOffset + 1
	sLen := int(sig[sLenOffset])
	if sOffset+sLen != sigLen {
		str := "malformed signature: invalid S length"
		return nil, signatureError(ErrMalformedDER, str)
	}

	r, err := parseInteger(sig[rTypeOffset], sig[rOffset:sTypeOffset], "R")
	if err != nil {
		return nil, err
	}
	s, err := parseInteger(sig[sTypeOffset], sig[sOffset:], "S")
	if err != nil {
		return nil, err
	}
	return &Signature{r: r, s: s}, nil
}

// parseInteger decodes one DER integer of the signature and checks it is a
// valid non-zero scalar.
func parseInteger(marker byte, b []byte, name string) (*big.Int, error) {
	if marker != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: %s integer marker: %#x != "+
			"%#x", name, marker, asn1IntegerID)
		return nil, signatureError(ErrMalformedDER, str)
	}
	if len(b) == 0 {
		str := fmt.Sprintf("malformed signature: %s length is zero", name)
		return nil, signatureError(ErrMalformedDER, str)
	}
	if b[0]&0x80 != 0 {
		str := fmt.Sprintf("malformed signature: %s is negative", name)
		return nil, signatureError(ErrMalformedDER, str)
	}

	// Null bytes at the start are not allowed, unless the value would
	// otherwise be interpreted as a negative number.
	if len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		str := fmt.Sprintf("malformed signature: %s value has too much "+
			"padding", name)
		return nil, signatureError(ErrMalformedDER, str)
	}

	v := new(big.Int).SetBytes(b)
	if !inRange(v) {
		str := fmt.Sprintf("invalid signature: %s is not in [1, N)", name)
		return nil, signatureError(ErrMalformedDER, str)
	}
	return v, nil
}

// Verify returns whether or not the signature is valid for the provided
// digest z and public key.  Out of range signature values, a nil key and the
// point at infinity are rejected rather than reported as errors.
func (sig *Signature) Verify(z *big.Int, pubKey *s256.Point) bool {
	if !inRange(sig.r) || !inRange(sig.s) || pubKey == nil ||
		pubKey.IsInfinity() {
		return false
	}

	// s_inv = s^(N-2) mod N
	sInv := new(big.Int).Exp(sig.s, new(big.Int).Sub(curveOrder, two),
		curveOrder)

	// u = z * s_inv mod N, v = r * s_inv mod N
	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, curveOrder)
	v := new(big.Int).Mul(sig.r, sInv)
	v.Mod(v, curveOrder)

	// R = u*G + v*P
	total := s256.ScalarBaseMult(u).Add(pubKey.ScalarMult(v))
	if total.IsInfinity() {
		return false
	}
	return total.X().Cmp(sig.r) == 0
}

// IsEqual compares this Signature instance to the one passed, returning true if
// both Signatures are equivalent.  A signature is equivalent to another, if
// they both have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Cmp(otherSig.r) == 0 && sig.s.Cmp(otherSig.s) == 0
}

// IsLowS returns whether S is at most half the group order.
func (sig *Signature) IsLowS() bool {
	return sig.s.Cmp(halfOrder) <= 0
}

// String returns the signature values in hex.
func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%064x,%064x)", sig.r, sig.s)
}
