// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"math"
)

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31

	// maxScriptNumLen is the maximum number of bytes data being interpreted
	// as an integer may be for the majority of op codes.
	maxScriptNumLen = 4

	// maxNumberLen is the longest encoding EncodeNumber can produce.  It is
	// only reached by math.MinInt64, whose magnitude needs all eight bytes
	// plus a separate sign byte.
	maxNumberLen = 9
)

// scriptNum represents a numeric value used in the scripting engine with
// special handling to deal with the subtle semantics required by consensus.
//
// All numbers are stored on the data and alternate stacks encoded as little
// endian with a sign bit.  All numeric opcodes such as OP_ADD, OP_SUB, and
// OP_WITHIN expect numbers in the range of a 32-bit integer, so decoding from
// the stack enforces a 4-byte limit.  The result of arithmetic on two 4-byte
// operands may overflow that range, which is fine since it is stored in an
// int64 and pushed back encoded in up to 5 bytes.  Such a result can still be
// compared with OP_EQUAL but fails if fed back into a numeric opcode.
type scriptNum int64

// checkMinimalDataEncoding returns whether or not the passed byte array adheres
// to the minimal encoding requirements.
func checkMinimalDataEncoding(v []byte) error {
	if len(v) == 0 {
		return nil
	}

	// Check that the number is encoded with the minimum possible number
	// of bytes.
	//
	// If the most-significant-byte - excluding the sign bit - is zero
	// then we're not minimal.  Note how this test also rejects the
	// negative-zero encoding, [0x80].
	if v[len(v)-1]&0x7f == 0 {
		// One exception: if there's more than one byte and the most
		// significant bit of the second-most-significant-byte is set it
		// would conflict with the sign bit.  An example of this case is
		// +-255, which encode to 0xff00 and 0xff80 respectively.
		// (big-endian).
		if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
			str := fmt.Sprintf("numeric value encoded as %x is not "+
				"minimally encoded", v)
			return scriptError(ErrMinimalData, str)
		}
	}

	return nil
}

// Bytes returns the number serialized as a little endian with a sign bit.
//
// Example encodings:
//
//	   127 -> [0x7f]
//	  -127 -> [0xff]
//	   128 -> [0x80 0x00]
//	  -128 -> [0x80 0x80]
//	   129 -> [0x81 0x00]
//	  -129 -> [0x81 0x80]
//	   256 -> [0x00 0x01]
//	  -256 -> [0x00 0x81]
//	 32767 -> [0xff 0x7f]
//	-32767 -> [0xff 0xff]
//	 32768 -> [0x00 0x80 0x00]
//	-32768 -> [0x00 0x80 0x80]
func (n scriptNum) Bytes() []byte {
	// Zero encodes as an empty byte slice.
	if n == 0 {
		return nil
	}

	// Work with the magnitude as an unsigned value so math.MinInt64 does
	// not overflow on negation.
	isNegative := n < 0
	mag := uint64(n)
	if isNegative {
		mag = uint64(-n)
	}

	result := make([]byte, 0, maxNumberLen)
	for mag > 0 {
		result = append(result, byte(mag&0xff))
		mag >>= 8
	}

	// When the most significant byte already has the high bit set, an
	// additional high byte is required to indicate whether the number is
	// negative or positive.  The additional byte is removed when converting
	// back to an integral and its high bit is used to denote the sign.
	//
	// Otherwise, when the most significant byte does not already have the
	// high bit set, use it to indicate the value is negative, if needed.
	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}

// Int32 returns the script number clamped to a valid int32.  That is to say
// when the script number is higher than the max allowed int32, the max int32
// value is returned and vice versa for the minimum value.
func (n scriptNum) Int32() int32 {
	if n > maxInt32 {
		return maxInt32
	}
	if n < minInt32 {
		return minInt32
	}
	return int32(n)
}

// makeScriptNum interprets the passed serialized bytes as an encoded integer
// and returns the result as a script number.
//
// Since the consensus rules dictate that serialized bytes interpreted as ints
// are only allowed to be in the range determined by a maximum number of bytes,
// on a per opcode basis, an error will be returned when the provided bytes
// would result in a number outside of that range.  The requireMinimal flag
// additionally rejects encodings that are not the shortest possible.
func makeScriptNum(v []byte, requireMinimal bool, scriptNumLen int) (scriptNum, error) {
	if len(v) > scriptNumLen {
		str := fmt.Sprintf("numeric value encoded as %x is %d bytes "+
			"which exceeds the max allowed of %d", v, len(v),
			scriptNumLen)
		return 0, scriptError(ErrNumberTooBig, str)
	}

	if requireMinimal {
		if err := checkMinimalDataEncoding(v); err != nil {
			return 0, err
		}
	}

	if len(v) == 0 {
		return 0, nil
	}

	// The sign lives in the high bit of the final byte.  Strip it before
	// accumulating the little endian magnitude.
	last := len(v) - 1
	isNegative := v[last]&0x80 != 0
	var mag uint64
	for i, val := range v {
		if i == last {
			val &^= 0x80
		}
		if i >= 8 {
			if val != 0 {
				str := fmt.Sprintf("numeric value encoded as %x "+
					"overflows a 64-bit integer", v)
				return 0, scriptError(ErrNumberTooBig, str)
			}
			continue
		}
		mag |= uint64(val) << uint(8*i)
	}

	switch {
	case !isNegative && mag > math.MaxInt64:
		fallthrough
	case isNegative && mag > 1<<63:
		str := fmt.Sprintf("numeric value encoded as %x overflows a "+
			"64-bit integer", v)
		return 0, scriptError(ErrNumberTooBig, str)
	}

	if isNegative {
		return scriptNum(-int64(mag)), nil
	}
	return scriptNum(mag), nil
}

// EncodeNumber returns the little-endian sign-magnitude encoding the script
// engine uses for numbers.  Zero encodes as an empty byte slice.
func EncodeNumber(n int64) []byte {
	return scriptNum(n).Bytes()
}

// DecodeNumber is the inverse of EncodeNumber.  It accepts any encoding, not
// only the shortest one, and fails with ErrNumberTooBig when the value does
// not fit in an int64.
func DecodeNumber(v []byte) (int64, error) {
	n, err := makeScriptNum(v, false, maxNumberLen)
	return int64(n), err
}
