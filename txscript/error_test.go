// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"testing"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInternal, "ErrInternal"},
		{ErrMalformedScript, "ErrMalformedScript"},
		{ErrUnsupportedPushSize, "ErrUnsupportedPushSize"},
		{ErrAmbiguousOpcode, "ErrAmbiguousOpcode"},
		{ErrInvalidSigHash, "ErrInvalidSigHash"},
		{ErrInvalidProgramCounter, "ErrInvalidProgramCounter"},
		{ErrScriptUnfinished, "ErrScriptUnfinished"},
		{ErrBadNumRequired, "ErrBadNumRequired"},
		{ErrEarlyReturn, "ErrEarlyReturn"},
		{ErrEmptyStack, "ErrEmptyStack"},
		{ErrEvalFalse, "ErrEvalFalse"},
		{ErrCleanStack, "ErrCleanStack"},
		{ErrVerify, "ErrVerify"},
		{ErrEqualVerify, "ErrEqualVerify"},
		{ErrNumEqualVerify, "ErrNumEqualVerify"},
		{ErrCheckSigVerify, "ErrCheckSigVerify"},
		{ErrCheckMultiSigVerify, "ErrCheckMultiSigVerify"},
		{ErrDisabledOpcode, "ErrDisabledOpcode"},
		{ErrReservedOpcode, "ErrReservedOpcode"},
		{ErrInvalidOpcode, "ErrInvalidOpcode"},
		{ErrUnbalancedConditional, "ErrUnbalancedConditional"},
		{ErrStackUnderflow, "ErrStackUnderflow"},
		{ErrInvalidStackOperation, "ErrInvalidStackOperation"},
		{ErrDiscourageUpgradableNOPs, "ErrDiscourageUpgradableNOPs"},
		{ErrMinimalData, "ErrMinimalData"},
		{ErrSigNullDummy, "ErrSigNullDummy"},
		{ErrSigHighS, "ErrSigHighS"},
		{ErrStackOverflow, "ErrStackOverflow"},
		{ErrElementTooBig, "ErrElementTooBig"},
		{ErrTooManyOperations, "ErrTooManyOperations"},
		{ErrNumberTooBig, "ErrNumberTooBig"},
		{ErrInvalidPubKeyCount, "ErrInvalidPubKeyCount"},
		{ErrInvalidSignatureCount, "ErrInvalidSignatureCount"},
		{ErrSigTooShort, "ErrSigTooShort"},
		{ErrSigHashType, "ErrSigHashType"},
		{ErrSigDER, "ErrSigDER"},
		{ErrPubKeyFormat, "ErrPubKeyFormat"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{
		{
			Error{Description: "some error"},
			"some error",
		},
		{
			Error{Description: "human-readable error"},
			"human-readable error",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestIsErrorCode ensures IsErrorCode only matches script errors carrying the
// requested code.
func TestIsErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code ErrorCode
		want bool
	}{
		{scriptError(ErrEvalFalse, "false"), ErrEvalFalse, true},
		{scriptError(ErrEvalFalse, "false"), ErrEmptyStack, false},
		{errors.New("plain error"), ErrInternal, false},
		{nil, ErrInternal, false},
	}

	for i, test := range tests {
		if got := IsErrorCode(test.err, test.code); got != test.want {
			t.Errorf("IsErrorCode #%d: got %v want %v", i, got,
				test.want)
		}
	}
}
