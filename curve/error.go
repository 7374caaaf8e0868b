// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrPointNotOnCurve is returned when the coordinates handed to NewPoint
	// do not satisfy the curve equation, or when exactly one of them is
	// missing.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrIncompatibleCurve is returned when points on curves with different
	// coefficients are combined, or when the coordinates and coefficients of
	// a point do not share a field.
	ErrIncompatibleCurve = ErrorKind("ErrIncompatibleCurve")

	// ErrNegativeScalar is returned by ScalarMult for negative multipliers.
	ErrNegativeScalar = ErrorKind("ErrNegativeScalar")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to elliptic curve points.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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

// curveError creates an Error given a set of arguments.
func curveError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
