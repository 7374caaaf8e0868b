// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package s256

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrPointNotOnCurve is returned when coordinates do not describe a point
	// on secp256k1 or do not fit in the field.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrMalformedSEC is returned when a serialized public key has the wrong
	// length or format byte, a coordinate that is not a field element, or
	// does not decode to a point on the curve.
	ErrMalformedSEC = ErrorKind("ErrMalformedSEC")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 points and their encodings.
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
