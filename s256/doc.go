// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package s256 specializes the generic curve group law to secp256k1, the curve
used by Bitcoin, and provides the encodings built on top of it.

The curve is y^2 = x^3 + 7 over the field of integers modulo
P = 2^256 - 2^32 - 977.  The generator G and group order N are fixed at
package initialization and exposed through copying accessors.

Public keys are serialized in the SEC format:

	compressed:   0x02|0x03 || x (33 bytes)
	uncompressed: 0x04 || x || y (65 bytes)

and are turned into pay-to-pubkey-hash addresses with Hash160 and base58check
using the network parameters from chaincfg.
*/
package s256
