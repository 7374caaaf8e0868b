// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/btcsuite/ecscript/s256"
	"github.com/btcsuite/ecscript/s256/ecdsa"
)

// MaxDataCarrierSize is the maximum number of bytes allowed in pushed
// data to be considered a nulldata script.
const MaxDataCarrierSize = 80

// SigHashType represents hash type bits at the end of a signature.
type SigHashType byte

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	PubKeyTy                         // Pay pubkey.
	PubKeyHashTy                     // Pay pubkey hash.
	ScriptHashTy                     // Pay to script hash.
	MultiSigTy                       // Multi signature.
	NullDataTy                       // Empty data-only (provably prunable).
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	PubKeyTy:      "pubkey",
	PubKeyHashTy:  "pubkeyhash",
	ScriptHashTy:  "scripthash",
	MultiSigTy:    "multisig",
	NullDataTy:    "nulldata",
}

// String implements the Stringer interface by returning the name of
// the enum script class.  If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// isSmallInt returns whether or not the command is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func isSmallInt(cmd Command) bool {
	return !cmd.push && (cmd.op == OP_0 ||
		(cmd.op >= OP_1 && cmd.op <= OP_16))
}

// asSmallInt returns the passed opcode, which must be true according to
// isSmallInt(), as an integer.
func asSmallInt(cmd Command) int {
	if cmd.op == OP_0 {
		return 0
	}

	return int(cmd.op - (OP_1 - 1))
}

// isOp returns whether cmd is the bare opcode op.
func isOp(cmd Command, op byte) bool {
	return !cmd.push && cmd.op == op
}

// isPushOfLen returns whether cmd pushes exactly n bytes.
func isPushOfLen(cmd Command, n int) bool {
	return cmd.push && len(cmd.data) == n
}

// isPubKeyPush returns whether cmd pushes something sized like a compressed
// or uncompressed public key.
func isPubKeyPush(cmd Command) bool {
	return isPushOfLen(cmd, s256.PubKeyBytesLenCompressed) ||
		isPushOfLen(cmd, s256.PubKeyBytesLenUncompressed)
}

// isPubkey returns true if the script passed is a pay-to-pubkey script,
// false otherwise.
func isPubkey(cmds []Command) bool {
	return len(cmds) == 2 &&
		isPubKeyPush(cmds[0]) &&
		isOp(cmds[1], OP_CHECKSIG)
}

// isPubkeyHash returns true if the script passed is a pay-to-pubkey-hash
// script, false otherwise.
func isPubkeyHash(cmds []Command) bool {
	return len(cmds) == 5 &&
		isOp(cmds[0], OP_DUP) &&
		isOp(cmds[1], OP_HASH160) &&
		isPushOfLen(cmds[2], 20) &&
		isOp(cmds[3], OP_EQUALVERIFY) &&
		isOp(cmds[4], OP_CHECKSIG)
}

// isScriptHash returns true if the script passed is a pay-to-script-hash
// script, false otherwise.
func isScriptHash(cmds []Command) bool {
	return len(cmds) == 3 &&
		isOp(cmds[0], OP_HASH160) &&
		isPushOfLen(cmds[1], 20) &&
		isOp(cmds[2], OP_EQUAL)
}

// isMultiSig returns true if the passed script is a multisig script, false
// otherwise.
func isMultiSig(cmds []Command) bool {
	// The absolute minimum is 1 pubkey:
	// OP_0/OP_1-16 <pubkey> OP_1 OP_CHECKMULTISIG
	l := len(cmds)
	if l < 4 {
		return false
	}
	if !isSmallInt(cmds[0]) {
		return false
	}
	if !isSmallInt(cmds[l-2]) {
		return false
	}
	if !isOp(cmds[l-1], OP_CHECKMULTISIG) {
		return false
	}

	// Verify the number of pubkeys specified matches the actual number
	// of pubkeys provided.
	if l-2-1 != asSmallInt(cmds[l-2]) {
		return false
	}

	for _, cmd := range cmds[1 : l-2] {
		if !isPubKeyPush(cmd) {
			return false
		}
	}
	return true
}

// isNullData returns true if the passed script is a null data script, false
// otherwise.
func isNullData(cmds []Command) bool {
	// A nulldata script is either a single OP_RETURN or an
	// OP_RETURN SMALLDATA (where SMALLDATA is a data push up to
	// MaxDataCarrierSize bytes).
	l := len(cmds)
	if l == 1 && isOp(cmds[0], OP_RETURN) {
		return true
	}

	return l == 2 &&
		isOp(cmds[0], OP_RETURN) &&
		(isSmallInt(cmds[1]) || cmds[1].push) &&
		len(cmds[1].data) <= MaxDataCarrierSize
}

// Class returns the class of the script from the known standard types.
func (s *Script) Class() ScriptClass {
	switch {
	case isPubkey(s.cmds):
		return PubKeyTy
	case isPubkeyHash(s.cmds):
		return PubKeyHashTy
	case isScriptHash(s.cmds):
		return ScriptHashTy
	case isMultiSig(s.cmds):
		return MultiSigTy
	case isNullData(s.cmds):
		return NullDataTy
	}
	return NonStandardTy
}

// IsPushOnly returns whether the script only pushes data.  The small integer
// opcodes count as pushes.
func (s *Script) IsPushOnly() bool {
	for _, cmd := range s.cmds {
		if !cmd.push && cmd.op > OP_16 {
			return false
		}
	}
	return true
}

// PushedData returns an array of byte slices containing any pushed data found
// in the script.  Small integer opcodes are not included.
func (s *Script) PushedData() [][]byte {
	var data [][]byte
	for _, cmd := range s.cmds {
		if cmd.push {
			data = append(data, cmd.Data())
		}
	}
	return data
}

// CalcMultiSigStats returns the number of public keys and signatures from
// a multi-signature script.
func (s *Script) CalcMultiSigStats() (numPubKeys, numSigs int, err error) {
	// A multi-signature script is of the pattern:
	//  NUM_SIGS PUBKEY PUBKEY PUBKEY... NUM_PUBKEYS OP_CHECKMULTISIG
	// Therefore the number of signatures is the oldest item on the stack
	// and the number of pubkeys is the 2nd to last.
	if !isMultiSig(s.cmds) {
		str := fmt.Sprintf("script %v is not a multisig script", s)
		return 0, 0, scriptError(ErrMalformedScript, str)
	}

	numSigs = asSmallInt(s.cmds[0])
	numPubKeys = asSmallInt(s.cmds[len(s.cmds)-2])
	return numPubKeys, numSigs, nil
}

// PayToPubKeyHashScript creates a new script to pay to a 20-byte pubkey hash.
// It is expected that the input is a valid hash.
func PayToPubKeyHashScript(pubKeyHash []byte) (*Script, error) {
	return NewScriptBuilder().AddOp(OP_DUP).AddOp(OP_HASH160).
		AddData(pubKeyHash).AddOp(OP_EQUALVERIFY).AddOp(OP_CHECKSIG).
		Script()
}

// PayToPubKeyScript creates a new script to pay to a public key.  It is
// expected that the input is a valid SEC encoded public key.
func PayToPubKeyScript(serializedPubKey []byte) (*Script, error) {
	return NewScriptBuilder().AddData(serializedPubKey).
		AddOp(OP_CHECKSIG).Script()
}

// PayToPubKeyHash returns the pay-to-pubkey-hash script for the public key
// in the requested SEC form.
func PayToPubKeyHash(pubKey *s256.Point, compressed bool) (*Script, error) {
	return PayToPubKeyHashScript(pubKey.Hash160(compressed))
}

// MultiSigScript returns a valid script for a multisignature redemption where
// nrequired of the keys in pubkeys are required to have signed the
// transaction for success.  An Error with the error code ErrBadNumRequired
// will be returned if nrequired is larger than the number of keys provided.
func MultiSigScript(pubKeys []*s256.Point, nrequired int,
	compressed bool) (*Script, error) {

	if len(pubKeys) > MaxPubKeysPerMultiSig {
		str := fmt.Sprintf("unable to generate multisig script with "+
			"%d public keys, more than the max of %d", len(pubKeys),
			MaxPubKeysPerMultiSig)
		return nil, scriptError(ErrInvalidPubKeyCount, str)
	}
	if nrequired < 1 || len(pubKeys) < nrequired {
		str := fmt.Sprintf("unable to generate multisig script with "+
			"%d required signatures when there are %d public "+
			"keys available", nrequired, len(pubKeys))
		return nil, scriptError(ErrBadNumRequired, str)
	}

	builder := NewScriptBuilder().AddInt64(int64(nrequired))
	for _, key := range pubKeys {
		builder.AddData(key.SEC(compressed))
	}
	builder.AddInt64(int64(len(pubKeys)))
	builder.AddOp(OP_CHECKMULTISIG)

	return builder.Script()
}

// RawSignature returns the stack form of a signature: the DER encoding
// followed by the hash type byte.
func RawSignature(sig *ecdsa.Signature, hashType SigHashType) []byte {
	return append(sig.Serialize(), byte(hashType))
}

// SignatureScript creates a script that unlocks a pay-to-pubkey-hash script
// by pushing the signature with its hash type and the public key in the
// requested SEC form.
func SignatureScript(sig *ecdsa.Signature, hashType SigHashType,
	pubKey *s256.Point, compressed bool) (*Script, error) {

	return NewScriptBuilder().AddData(RawSignature(sig, hashType)).
		AddData(pubKey.SEC(compressed)).Script()
}

// SignHash signs the digest z with key and returns the signature script that
// unlocks a pay-to-pubkey-hash script for the key.
func SignHash(key *ecdsa.PrivateKey, z []byte, hashType SigHashType,
	compressed bool) (*Script, error) {

	sig := key.Sign(ecdsa.HashToInt(z))
	return SignatureScript(sig, hashType, key.PubKey(), compressed)
}
