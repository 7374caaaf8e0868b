// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidModulus is returned when a field is requested with a modulus
	// that is less than two.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrOutOfRange is returned when an element is constructed with a value
	// outside of [0, modulus).
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrIncompatibleField is returned when two elements of different fields
	// are combined.
	ErrIncompatibleField = ErrorKind("ErrIncompatibleField")

	// ErrDivideByZero is returned when dividing by the zero element.
	ErrDivideByZero = ErrorKind("ErrDivideByZero")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to prime field arithmetic.  It has full
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

// fieldError creates an Error given a set of arguments.
func fieldError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
