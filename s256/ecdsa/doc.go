// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa implements ECDSA signatures over secp256k1 with deterministic
RFC6979 nonces, low-S canonical signatures, and strict DER encoding.

There is intentionally no way to sign with a caller supplied or random nonce.
Signing the same digest with the same key always yields the same signature.

Digests are passed as integers.  HashToInt converts a 32-byte hash, such as
the output of chainhash.DoubleHashB, into the form expected by Sign and
Verify.
*/
package ecdsa
