// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInternal is returned if internal consistency checks fail.  In
	// practice this error should never be seen as it would mean there is an
	// error in the engine logic.
	ErrInternal ErrorCode = iota

	// ---------------------------------------
	// Failures related to script structure.
	// ---------------------------------------

	// ErrMalformedScript is returned when a serialized script does not
	// consume exactly the number of bytes its length prefix declares, or a
	// data push runs past the end of the script.
	ErrMalformedScript

	// ErrUnsupportedPushSize is returned when serializing a data push that is
	// larger than the biggest supported push.
	ErrUnsupportedPushSize

	// ErrAmbiguousOpcode is returned when serializing a bare opcode in the
	// range that is reserved for data push lengths.  Such a byte would be
	// read back as a push rather than an opcode.
	ErrAmbiguousOpcode

	// ErrInvalidSigHash is returned when the engine is created with a nil,
	// negative, or oversized signature hash.
	ErrInvalidSigHash

	// ErrInvalidProgramCounter is returned when the engine is asked to
	// disassemble the next command after execution completed.
	ErrInvalidProgramCounter

	// ErrScriptUnfinished is returned when CheckErrorCondition is called on
	// a script that has not finished executing.
	ErrScriptUnfinished

	// ErrBadNumRequired is returned from MultiSigScript when nrequired is
	// larger than the number of provided public keys.
	ErrBadNumRequired

	// ---------------------------------------
	// Failures related to final execution state.
	// ---------------------------------------

	// ErrEarlyReturn is returned when OP_RETURN is executed in the script.
	ErrEarlyReturn

	// ErrEmptyStack is returned when the script evaluated without error,
	// but terminated with an empty top stack element.
	ErrEmptyStack

	// ErrEvalFalse is returned when the script evaluated without error but
	// terminated with a false top stack element.
	ErrEvalFalse

	// ErrCleanStack is returned when the ScriptVerifyCleanStack flag is set
	// and after evaluation, the stack does not contain only a single element.
	ErrCleanStack

	// ---------------------------------------
	// Failures related to verification opcodes.
	// ---------------------------------------

	// ErrVerify is returned when OP_VERIFY is encountered in a script and
	// the top item on the data stack does not evaluate to true.
	ErrVerify

	// ErrEqualVerify is returned when OP_EQUALVERIFY is encountered in a
	// script and the top item on the data stack does not evaluate to true.
	ErrEqualVerify

	// ErrNumEqualVerify is returned when OP_NUMEQUALVERIFY is encountered
	// in a script and the top item on the data stack does not evaluate to
	// true.
	ErrNumEqualVerify

	// ErrCheckSigVerify is returned when OP_CHECKSIGVERIFY is encountered
	// in a script and the top item on the data stack does not evaluate to
	// true.
	ErrCheckSigVerify

	// ErrCheckMultiSigVerify is returned when OP_CHECKMULTISIGVERIFY is
	// encountered in a script and the top item on the data stack does not
	// evaluate to true.
	ErrCheckMultiSigVerify

	// --------------------------------------------
	// Failures related to improper use of opcodes.
	// --------------------------------------------

	// ErrDisabledOpcode is returned when a disabled opcode is encountered
	// in a script.
	ErrDisabledOpcode

	// ErrReservedOpcode is returned when an opcode marked as reserved
	// is encountered in a script.
	ErrReservedOpcode

	// ErrInvalidOpcode is returned when an undefined opcode is executed.
	ErrInvalidOpcode

	// ErrUnbalancedConditional is returned when an OP_IF or OP_NOTIF has no
	// matching OP_ENDIF, or an OP_ELSE or OP_ENDIF is encountered outside
	// of a conditional.
	ErrUnbalancedConditional

	// ErrStackUnderflow is returned when an opcode requires more items on
	// the stack than are present.
	ErrStackUnderflow

	// ErrInvalidStackOperation is returned when an opcode is handed an
	// argument that does not describe a valid stack position or count.
	ErrInvalidStackOperation

	// ErrDiscourageUpgradableNOPs is returned when the
	// ScriptDiscourageUpgradableNops flag is set and a NOP opcode is
	// encountered in a script.
	ErrDiscourageUpgradableNOPs

	// ---------------------------------
	// Failures related to malleability.
	// ---------------------------------

	// ErrMinimalData is returned when the ScriptVerifyMinimalData flag
	// is set and the script contains push operations that do not use
	// the minimal opcode required, or numbers that are not minimally
	// encoded.
	ErrMinimalData

	// ErrSigNullDummy is returned when the ScriptStrictMultiSig flag is set
	// and a multisig script has anything other than 0 for the extra dummy
	// argument.
	ErrSigNullDummy

	// ErrSigHighS is returned when the ScriptVerifyLowS flag is set and the
	// script contains any signatures whose S values are higher than the
	// half order.
	ErrSigHighS

	// -------------------------------
	// Failures related to limits.
	// -------------------------------

	// ErrStackOverflow is returned when stack and altstack combined depth
	// is over the limit.
	ErrStackOverflow

	// ErrElementTooBig is returned if the size of an element to be pushed
	// to the stack is over MaxScriptElementSize.
	ErrElementTooBig

	// ErrTooManyOperations is returned if a script has more than
	// MaxOpsPerScript opcodes that do not push data.
	ErrTooManyOperations

	// ErrNumberTooBig is returned when the argument for an opcode that
	// expects numeric input is larger than the expected maximum number of
	// bytes.
	ErrNumberTooBig

	// ErrInvalidPubKeyCount is returned when the number of public keys
	// specified for a multsig is either negative or greater than
	// MaxPubKeysPerMultiSig.
	ErrInvalidPubKeyCount

	// ErrInvalidSignatureCount is returned when the number of signatures
	// specified for a multisig is either negative or greater than the
	// number of public keys.
	ErrInvalidSignatureCount

	// -----------------------------------
	// Failures related to signature and
	// public key encodings.
	// -----------------------------------

	// ErrSigTooShort is returned when a signature is too short to hold
	// the hash type byte.
	ErrSigTooShort

	// ErrSigHashType is returned when the ScriptVerifyStrictEncoding flag
	// is set and a signature carries an unknown hash type.
	ErrSigHashType

	// ErrSigDER is returned when a signature is not a valid strict DER
	// encoding.
	ErrSigDER

	// ErrPubKeyFormat is returned when a public key is not a valid
	// compressed or uncompressed SEC encoding.
	ErrPubKeyFormat

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:                 "ErrInternal",
	ErrMalformedScript:          "ErrMalformedScript",
	ErrUnsupportedPushSize:      "ErrUnsupportedPushSize",
	ErrAmbiguousOpcode:          "ErrAmbiguousOpcode",
	ErrInvalidSigHash:           "ErrInvalidSigHash",
	ErrInvalidProgramCounter:    "ErrInvalidProgramCounter",
	ErrScriptUnfinished:         "ErrScriptUnfinished",
	ErrBadNumRequired:           "ErrBadNumRequired",
	ErrEarlyReturn:              "ErrEarlyReturn",
	ErrEmptyStack:               "ErrEmptyStack",
	ErrEvalFalse:                "ErrEvalFalse",
	ErrCleanStack:               "ErrCleanStack",
	ErrVerify:                   "ErrVerify",
	ErrEqualVerify:              "ErrEqualVerify",
	ErrNumEqualVerify:           "ErrNumEqualVerify",
	ErrCheckSigVerify:           "ErrCheckSigVerify",
	ErrCheckMultiSigVerify:      "ErrCheckMultiSigVerify",
	ErrDisabledOpcode:           "ErrDisabledOpcode",
	ErrReservedOpcode:           "ErrReservedOpcode",
	ErrInvalidOpcode:            "ErrInvalidOpcode",
	ErrUnbalancedConditional:    "ErrUnbalancedConditional",
	ErrStackUnderflow:           "ErrStackUnderflow",
	ErrInvalidStackOperation:    "ErrInvalidStackOperation",
	ErrDiscourageUpgradableNOPs: "ErrDiscourageUpgradableNOPs",
	ErrMinimalData:              "ErrMinimalData",
	ErrSigNullDummy:             "ErrSigNullDummy",
	ErrSigHighS:                 "ErrSigHighS",
	ErrStackOverflow:            "ErrStackOverflow",
	ErrElementTooBig:            "ErrElementTooBig",
	ErrTooManyOperations:        "ErrTooManyOperations",
	ErrNumberTooBig:             "ErrNumberTooBig",
	ErrInvalidPubKeyCount:       "ErrInvalidPubKeyCount",
	ErrInvalidSignatureCount:    "ErrInvalidSignatureCount",
	ErrSigTooShort:              "ErrSigTooShort",
	ErrSigHashType:              "ErrSigHashType",
	ErrSigDER:                   "ErrSigDER",
	ErrPubKeyFormat:             "ErrPubKeyFormat",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.  It is used to indicate three
// classes of errors:
//  1. Script parsing and serialization failures, which the caller must treat
//     as structural problems
//  2. Script execution failures, which are ordinary outcomes of evaluating
//     an untrusted script
//  3. Internal consistency check failures
//
// The caller can use type assertions on the returned errors to access the
// ErrorCode field to ascertain the specific reason for the error.  As an
// additional convenience, the caller may make use of the IsErrorCode function
// to check for a specific error code.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
