// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/ecscript/s256"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey wraps a secret scalar together with its public point, which is
// computed once at construction.
type PrivateKey struct {
	secret *big.Int
	pub    *s256.Point
}

// NewPrivateKey returns the private key for secret, which must be in [1, N).
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret == nil || !inRange(secret) {
		str := "private key secret is not in [1, N)"
		return nil, signatureError(ErrSecretOutOfRange, str)
	}
	s := new(big.Int).Set(secret)
	return &PrivateKey{secret: s, pub: s256.ScalarBaseMult(s)}, nil
}

// PrivKeyFromBytes returns the private key for the big-endian secret in
// pk.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(pk))
}

// PubKey returns the public point of the key.
func (p *PrivateKey) PubKey() *s256.Point {
	return p.pub
}

// Secret returns a copy of the secret scalar.
func (p *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(p.secret)
}

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	return p.secret.FillBytes(b)
}

// Hex returns the serialized secret as hex.
func (p *PrivateKey) Hex() string {
	return hex.EncodeToString(p.Serialize())
}

// Sign generates a low-S ECDSA signature over the digest z using a nonce
// derived per RFC6979.  Should a nonce produce r = 0 or s = 0 the next
// candidate from the same deterministic sequence is used.
func (p *PrivateKey) Sign(z *big.Int) *Signature {
	nonces := newNonceGenerator(p.secret, z)
	nMinus2 := new(big.Int).Sub(curveOrder, two)
	for {
		k := nonces.next()

		// r = (k*G).x
		r := s256.ScalarBaseMult(k).X()
		if r.Sign() == 0 {
			continue
		}

		// s = (z + r*secret) * k^(N-2) mod N
		kInv := new(big.Int).Exp(k, nMinus2, curveOrder)
		s := new(big.Int).Mul(r, p.secret)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, curveOrder)
		if s.Sign() == 0 {
			continue
		}

		// Both s and N-s are valid, so only the lower one is produced.
		if s.Cmp(halfOrder) > 0 {
			s.Sub(curveOrder, s)
		}
		return &Signature{r: r, s: s}
	}
}

// String returns the key in a form that does not reveal the secret.
func (p *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(%x)", p.pub.SerializeCompressed())
}

// HashToInt converts a message digest to the integer z used by Sign and
// Verify.  Digests longer than 32 bytes are truncated to their leftmost 256
// bits.
func HashToInt(digest []byte) *big.Int {
	if len(digest) > 32 {
		digest = digest[:32]
	}
	return new(big.Int).SetBytes(digest)
}
