// Copyright (c) 2013-2022 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/ecscript/s256"
	"github.com/btcsuite/ecscript/s256/ecdsa"
)

// opCounter tracks the number of non-push operations executed so far.
type opCounter struct {
	n int
}

// add counts n more operations and fails once the total is over
// MaxOpsPerScript.
func (c *opCounter) add(n int) error {
	c.n += n
	if c.n > MaxOpsPerScript {
		str := fmt.Sprintf("exceeded max operation limit of %d",
			MaxOpsPerScript)
		return scriptError(ErrTooManyOperations, str)
	}
	return nil
}

// parsedSig is a signature popped off the stack along with the hash type byte
// that trailed it and the raw DER bytes used as the cache key.
type parsedSig struct {
	sig      *ecdsa.Signature
	sigBytes []byte
	hashType SigHashType
}

// parsedPubKey is a public key popped off the stack along with its raw SEC
// bytes.
type parsedPubKey struct {
	key     *s256.Point
	pkBytes []byte
}

// sigChecker holds everything the signature opcodes need: the digest every
// signature in the script commits to, the policy flags and the optional
// cache of already verified signatures.
type sigChecker struct {
	z        *big.Int
	sigHash  chainhash.Hash
	flags    ScriptFlags
	sigCache *SigCache
	ops      *opCounter
}

// newSigChecker returns a checker for digest z.  The digest must be a
// non-negative integer of at most 256 bits.
func newSigChecker(z *big.Int, flags ScriptFlags, sigCache *SigCache,
	ops *opCounter) (sigChecker, error) {

	if z == nil || z.Sign() < 0 || z.BitLen() > 256 {
		return sigChecker{}, scriptError(ErrInvalidSigHash,
			"signature hash must be a non-negative 256-bit integer")
	}

	c := sigChecker{
		z:        new(big.Int).Set(z),
		flags:    flags,
		sigCache: sigCache,
		ops:      ops,
	}
	z.FillBytes(c.sigHash[:])
	return c, nil
}

// hasFlag returns whether the script engine instance has the passed flag set.
func (c *sigChecker) hasFlag(flag ScriptFlags) bool {
	return c.flags&flag == flag
}

// checkHashTypeEncoding returns whether or not the passed hashtype adheres to
// the strict encoding requirements if enabled.
func (c *sigChecker) checkHashTypeEncoding(hashType SigHashType) error {
	if !c.hasFlag(ScriptVerifyStrictEncoding) {
		return nil
	}

	sigHashType := hashType & ^SigHashAnyOneCanPay
	if sigHashType < SigHashAll || sigHashType > SigHashSingle {
		str := fmt.Sprintf("invalid hash type 0x%x", hashType)
		return scriptError(ErrSigHashType, str)
	}
	return nil
}

// parseSig splits the trailing hash type byte off a stack signature and
// parses the remaining DER encoding.
func (c *sigChecker) parseSig(fullSigBytes []byte) (*parsedSig, error) {
	if len(fullSigBytes) < 1 {
		return nil, scriptError(ErrSigTooShort,
			"signature is missing its hash type")
	}

	hashType := SigHashType(fullSigBytes[len(fullSigBytes)-1])
	sigBytes := fullSigBytes[:len(fullSigBytes)-1]
	if err := c.checkHashTypeEncoding(hashType); err != nil {
		return nil, err
	}

	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return nil, scriptError(ErrSigDER, err.Error())
	}
	if c.hasFlag(ScriptVerifyLowS) && !sig.IsLowS() {
		str := "signature is not canonical due to unnecessarily high S value"
		return nil, scriptError(ErrSigHighS, str)
	}

	return &parsedSig{sig: sig, sigBytes: sigBytes, hashType: hashType}, nil
}

// parsePubKey parses a SEC encoded public key taken from the stack.
func (c *sigChecker) parsePubKey(pkBytes []byte) (*parsedPubKey, error) {
	key, err := s256.ParseSEC(pkBytes)
	if err != nil {
		return nil, scriptError(ErrPubKeyFormat, err.Error())
	}
	return &parsedPubKey{key: key, pkBytes: pkBytes}, nil
}

// verify reports whether sig is a valid signature of the digest by pubKey,
// consulting and filling the signature cache when one is configured.
func (c *sigChecker) verify(sig *parsedSig, pubKey *parsedPubKey) bool {
	if c.sigCache == nil {
		return sig.sig.Verify(c.z, pubKey.key)
	}

	if c.sigCache.Exists(c.sigHash, sig.sigBytes, pubKey.pkBytes) {
		return true
	}
	if !sig.sig.Verify(c.z, pubKey.key) {
		return false
	}
	c.sigCache.Add(c.sigHash, sig.sigBytes, pubKey.pkBytes)
	return true
}
