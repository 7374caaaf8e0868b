// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package field implements arithmetic over finite fields of prime order.

Elements carry their modulus with them so that mixing elements of two
different fields is detected and reported with ErrIncompatibleField instead of
silently producing a meaningless result.  All operations return new elements;
an Element is never modified after it is created.

	a, _ := field.NewInt(7, 13)
	b, _ := field.NewInt(12, 13)
	sum, err := a.Add(b) // 6 (mod 13)

Division and negative exponents rely on Fermat's little theorem and are only
meaningful when the modulus is prime.
*/
package field
