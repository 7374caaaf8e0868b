// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve implements the group law for points on short Weierstrass
// elliptic curves y^2 = x^3 + ax + b over an arbitrary prime field.
//
// The implementation uses affine coordinates and math/big and is therefore
// neither fast nor constant time.  Package s256 specializes it to secp256k1.
package curve
