// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

var (
	// singleZero is used during RFC6979 nonce generation.  It is provided
	// here to avoid the need to create it multiple times.
	singleZero = []byte{0x00}

	// singleOne is used during RFC6979 nonce generation.  It is provided
	// here to avoid the need to create it multiple times.
	singleOne = []byte{0x01}
)

// nonceGenerator produces the sequence of RFC6979 candidate nonces for a
// secret and digest.  The first candidate in [1, N) is the nonce; further
// candidates are only needed when a signature built from the previous one
// is degenerate.
type nonceGenerator struct {
	k, v    []byte
	started bool
}

// newNonceGenerator seeds the HMAC-DRBG of RFC6979 section 3.2 with the
// secret and the digest, both as 32-byte big-endian integers.  The digest is
// reduced modulo N first.
func newNonceGenerator(secret, z *big.Int) *nonceGenerator {
	var secretBytes, zBytes [32]byte
	secret.FillBytes(secretBytes[:])
	new(big.Int).Mod(z, curveOrder).FillBytes(zBytes[:])

	// Step B.
	//
	// V = 0x01 0x01 0x01 ... 0x01 such that the length of V, in bits, is
	// equal to 8*ceil(hashLen/8).
	v := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}

	// Step C.
	//
	// K = 0x00 0x00 0x00 ... 0x00 such that the length of K, in bits, is
	// equal to 8*ceil(hashLen/8).
	k := make([]byte, sha256.Size)

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = mac(k, v, singleZero, secretBytes[:], zBytes[:])

	// Step E.
	//
	// V = HMAC_K(V)
	v = mac(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = mac(k, v, singleOne, secretBytes[:], zBytes[:])

	// Step G.
	//
	// V = HMAC_K(V)
	v = mac(k, v)

	return &nonceGenerator{k: k, v: v}
}

// next returns the next candidate nonce in [1, N).
func (g *nonceGenerator) next() *big.Int {
	// Re-mix before producing anything past the first candidate.
	if g.started {
		g.k = mac(g.k, g.v, singleZero)
		g.v = mac(g.k, g.v)
	}
	g.started = true

	// Step H.
	for {
		// Step H1 and H2.
		//
		// V = HMAC_K(V); T = V since the hash and the group order are both
		// 256 bits.
		g.v = mac(g.k, g.v)

		// Step H3.
		//
		// k = bits2int(T).  Accept it when it is a valid scalar.
		candidate := new(big.Int).SetBytes(g.v)
		if candidate.Sign() > 0 && candidate.Cmp(curveOrder) < 0 {
			return candidate
		}

		// K = HMAC_K(V || 0x00)
		// V = HMAC_K(V)
		g.k = mac(g.k, g.v, singleZero)
		g.v = mac(g.k, g.v)
	}
}

// NonceRFC6979 generates a nonce deterministically according to RFC 6979
// using HMAC-SHA256 for the hashing function.  The same secret and digest
// always produce the same nonce.
func NonceRFC6979(secret, z *big.Int) *big.Int {
	return newNonceGenerator(secret, z).next()
}

// mac returns HMAC-SHA256 keyed with key over the concatenation of data.
func mac(key []byte, data ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
