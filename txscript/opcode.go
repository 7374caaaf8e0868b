// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// These constants are the values of the official opcodes used on the btc wiki,
// in bitcoin core and in most if not all other references and software related
// to handling BTC scripts.
const (
	OP_0                   = 0x00 // 0
	OP_FALSE               = 0x00 // 0 - AKA OP_0
	OP_DATA_1              = 0x01 // 1
	OP_DATA_20             = 0x14 // 20
	OP_DATA_32             = 0x20 // 32
	OP_DATA_33             = 0x21 // 33
	OP_DATA_65             = 0x41 // 65
	OP_DATA_75             = 0x4b // 75
	OP_PUSHDATA1           = 0x4c // 76
	OP_PUSHDATA2           = 0x4d // 77
	OP_PUSHDATA4           = 0x4e // 78
	OP_1NEGATE             = 0x4f // 79
	OP_RESERVED            = 0x50 // 80
	OP_1                   = 0x51 // 81 - AKA OP_TRUE
	OP_TRUE                = 0x51 // 81
	OP_2                   = 0x52 // 82
	OP_3                   = 0x53 // 83
	OP_4                   = 0x54 // 84
	OP_5                   = 0x55 // 85
	OP_6                   = 0x56 // 86
	OP_7                   = 0x57 // 87
	OP_8                   = 0x58 // 88
	OP_9                   = 0x59 // 89
	OP_10                  = 0x5a // 90
	OP_11                  = 0x5b // 91
	OP_12                  = 0x5c // 92
	OP_13                  = 0x5d // 93
	OP_14                  = 0x5e // 94
	OP_15                  = 0x5f // 95
	OP_16                  = 0x60 // 96
	OP_NOP                 = 0x61 // 97
	OP_VER                 = 0x62 // 98
	OP_IF                  = 0x63 // 99
	OP_NOTIF               = 0x64 // 100
	OP_VERIF               = 0x65 // 101
	OP_VERNOTIF            = 0x66 // 102
	OP_ELSE                = 0x67 // 103
	OP_ENDIF               = 0x68 // 104
	OP_VERIFY              = 0x69 // 105
	OP_RETURN              = 0x6a // 106
	OP_TOALTSTACK          = 0x6b // 107
	OP_FROMALTSTACK        = 0x6c // 108
	OP_2DROP               = 0x6d // 109
	OP_2DUP                = 0x6e // 110
	OP_3DUP                = 0x6f // 111
	OP_2OVER               = 0x70 // 112
	OP_2ROT                = 0x71 // 113
	OP_2SWAP               = 0x72 // 114
	OP_IFDUP               = 0x73 // 115
	OP_DEPTH               = 0x74 // 116
	OP_DROP                = 0x75 // 117
	OP_DUP                 = 0x76 // 118
	OP_NIP                 = 0x77 // 119
	OP_OVER                = 0x78 // 120
	OP_PICK                = 0x79 // 121
	OP_ROLL                = 0x7a // 122
	OP_ROT                 = 0x7b // 123
	OP_SWAP                = 0x7c // 124
	OP_TUCK                = 0x7d // 125
	OP_CAT                 = 0x7e // 126
	OP_SUBSTR              = 0x7f // 127
	OP_LEFT                = 0x80 // 128
	OP_RIGHT               = 0x81 // 129
	OP_SIZE                = 0x82 // 130
	OP_INVERT              = 0x83 // 131
	OP_AND                 = 0x84 // 132
	OP_OR                  = 0x85 // 133
	OP_XOR                 = 0x86 // 134
	OP_EQUAL               = 0x87 // 135
	OP_EQUALVERIFY         = 0x88 // 136
	OP_RESERVED1           = 0x89 // 137
	OP_RESERVED2           = 0x8a // 138
	OP_1ADD                = 0x8b // 139
	OP_1SUB                = 0x8c // 140
	OP_2MUL                = 0x8d // 141
	OP_2DIV                = 0x8e // 142
	OP_NEGATE              = 0x8f // 143
	OP_ABS                 = 0x90 // 144
	OP_NOT                 = 0x91 // 145
	OP_0NOTEQUAL           = 0x92 // 146
	OP_ADD                 = 0x93 // 147
	OP_SUB                 = 0x94 // 148
	OP_MUL                 = 0x95 // 149
	OP_DIV                 = 0x96 // 150
	OP_MOD                 = 0x97 // 151
	OP_LSHIFT              = 0x98 // 152
	OP_RSHIFT              = 0x99 // 153
	OP_BOOLAND             = 0x9a // 154
	OP_BOOLOR              = 0x9b // 155
	OP_NUMEQUAL            = 0x9c // 156
	OP_NUMEQUALVERIFY      = 0x9d // 157
	OP_NUMNOTEQUAL         = 0x9e // 158
	OP_LESSTHAN            = 0x9f // 159
	OP_GREATERTHAN         = 0xa0 // 160
	OP_LESSTHANOREQUAL     = 0xa1 // 161
	OP_GREATERTHANOREQUAL  = 0xa2 // 162
	OP_MIN                 = 0xa3 // 163
	OP_MAX                 = 0xa4 // 164
	OP_WITHIN              = 0xa5 // 165
	OP_RIPEMD160           = 0xa6 // 166
	OP_SHA1                = 0xa7 // 167
	OP_SHA256              = 0xa8 // 168
	OP_HASH160             = 0xa9 // 169
	OP_HASH256             = 0xaa // 170
	OP_CODESEPARATOR       = 0xab // 171
	OP_CHECKSIG            = 0xac // 172
	OP_CHECKSIGVERIFY      = 0xad // 173
	OP_CHECKMULTISIG       = 0xae // 174
	OP_CHECKMULTISIGVERIFY = 0xaf // 175
	OP_NOP1                = 0xb0 // 176
	OP_NOP2                = 0xb1 // 177
	OP_CHECKLOCKTIMEVERIFY = 0xb1 // 177 - AKA OP_NOP2
	OP_NOP3                = 0xb2 // 178
	OP_CHECKSEQUENCEVERIFY = 0xb2 // 178 - AKA OP_NOP3
	OP_NOP4                = 0xb3 // 179
	OP_NOP5                = 0xb4 // 180
	OP_NOP6                = 0xb5 // 181
	OP_NOP7                = 0xb6 // 182
	OP_NOP8                = 0xb7 // 183
	OP_NOP9                = 0xb8 // 184
	OP_NOP10               = 0xb9 // 185
	OP_INVALIDOPCODE       = 0xff // 255
)

// opHandler executes an opcode against the part of the engine state its
// shape grants access to.
type opHandler interface {
	exec(op *opcode, vm *Engine) error
}

// stackFunc is a handler that only touches the data stack.
type stackFunc func(op *opcode, s *stack) error

func (f stackFunc) exec(op *opcode, vm *Engine) error {
	return f(op, &vm.dstack)
}

// altStackFunc is a handler that moves items between the data stack and the
// alternate stack.
type altStackFunc func(op *opcode, s, alt *stack) error

func (f altStackFunc) exec(op *opcode, vm *Engine) error {
	return f(op, &vm.dstack, &vm.astack)
}

// sigFunc is a handler that verifies signatures against the digest the engine
// was created with.
type sigFunc func(op *opcode, s *stack, c *sigChecker) error

func (f sigFunc) exec(op *opcode, vm *Engine) error {
	return f(op, &vm.dstack, &vm.checker)
}

// branchFunc is a handler that rewrites the remaining command sequence.
type branchFunc func(op *opcode, s *stack, cmds *commandQueue) error

func (f branchFunc) exec(op *opcode, vm *Engine) error {
	return f(op, &vm.dstack, &vm.cmds)
}

// An opcode defines the information related to a txscript opcode.  handler is
// the function to call to perform the opcode on the engine.
type opcode struct {
	value   byte
	name    string
	handler opHandler
}

// opcodeArray holds details about all possible opcodes such as the name of
// the opcode and the handler that executes it.  Bytes without a defined
// opcode are named OP_UNKNOWN<value> and fail when executed.
var opcodeArray [256]opcode

// OpcodeByName is a map that can be used to lookup an opcode by its
// human-readable name (OP_CHECKMULTISIG, OP_CHECKSIG, etc).
var OpcodeByName = make(map[string]byte)

func init() {
	defs := []opcode{
		// Push value opcodes.
		{OP_0, "OP_0", stackFunc(opcodeFalse)},
		{OP_1NEGATE, "OP_1NEGATE", stackFunc(opcode1Negate)},
		{OP_RESERVED, "OP_RESERVED", stackFunc(opcodeReserved)},
		{OP_1, "OP_1", stackFunc(opcodeN)},
		{OP_2, "OP_2", stackFunc(opcodeN)},
		{OP_3, "OP_3", stackFunc(opcodeN)},
		{OP_4, "OP_4", stackFunc(opcodeN)},
		{OP_5, "OP_5", stackFunc(opcodeN)},
		{OP_6, "OP_6", stackFunc(opcodeN)},
		{OP_7, "OP_7", stackFunc(opcodeN)},
		{OP_8, "OP_8", stackFunc(opcodeN)},
		{OP_9, "OP_9", stackFunc(opcodeN)},
		{OP_10, "OP_10", stackFunc(opcodeN)},
		{OP_11, "OP_11", stackFunc(opcodeN)},
		{OP_12, "OP_12", stackFunc(opcodeN)},
		{OP_13, "OP_13", stackFunc(opcodeN)},
		{OP_14, "OP_14", stackFunc(opcodeN)},
		{OP_15, "OP_15", stackFunc(opcodeN)},
		{OP_16, "OP_16", stackFunc(opcodeN)},

		// Control opcodes.
		{OP_NOP, "OP_NOP", stackFunc(opcodeNop)},
		{OP_VER, "OP_VER", stackFunc(opcodeReserved)},
		{OP_IF, "OP_IF", branchFunc(opcodeIf)},
		{OP_NOTIF, "OP_NOTIF", branchFunc(opcodeIf)},
		{OP_VERIF, "OP_VERIF", stackFunc(opcodeReserved)},
		{OP_VERNOTIF, "OP_VERNOTIF", stackFunc(opcodeReserved)},
		{OP_ELSE, "OP_ELSE", stackFunc(opcodeStrayConditional)},
		{OP_ENDIF, "OP_ENDIF", stackFunc(opcodeStrayConditional)},
		{OP_VERIFY, "OP_VERIFY", stackFunc(opcodeVerify)},
		{OP_RETURN, "OP_RETURN", stackFunc(opcodeReturn)},
		{OP_CHECKLOCKTIMEVERIFY, "OP_CHECKLOCKTIMEVERIFY", stackFunc(opcodeNop)},
		{OP_CHECKSEQUENCEVERIFY, "OP_CHECKSEQUENCEVERIFY", stackFunc(opcodeNop)},

		// Stack opcodes.
		{OP_TOALTSTACK, "OP_TOALTSTACK", altStackFunc(opcodeToAltStack)},
		{OP_FROMALTSTACK, "OP_FROMALTSTACK", altStackFunc(opcodeFromAltStack)},
		{OP_2DROP, "OP_2DROP", stackFunc(opcode2Drop)},
		{OP_2DUP, "OP_2DUP", stackFunc(opcode2Dup)},
		{OP_3DUP, "OP_3DUP", stackFunc(opcode3Dup)},
		{OP_2OVER, "OP_2OVER", stackFunc(opcode2Over)},
		{OP_2ROT, "OP_2ROT", stackFunc(opcode2Rot)},
		{OP_2SWAP, "OP_2SWAP", stackFunc(opcode2Swap)},
		{OP_IFDUP, "OP_IFDUP", stackFunc(opcodeIfDup)},
		{OP_DEPTH, "OP_DEPTH", stackFunc(opcodeDepth)},
		{OP_DROP, "OP_DROP", stackFunc(opcodeDrop)},
		{OP_DUP, "OP_DUP", stackFunc(opcodeDup)},
		{OP_NIP, "OP_NIP", stackFunc(opcodeNip)},
		{OP_OVER, "OP_OVER", stackFunc(opcodeOver)},
		{OP_PICK, "OP_PICK", stackFunc(opcodePick)},
		{OP_ROLL, "OP_ROLL", stackFunc(opcodeRoll)},
		{OP_ROT, "OP_ROT", stackFunc(opcodeRot)},
		{OP_SWAP, "OP_SWAP", stackFunc(opcodeSwap)},
		{OP_TUCK, "OP_TUCK", stackFunc(opcodeTuck)},

		// Splice opcodes.
		{OP_CAT, "OP_CAT", stackFunc(opcodeDisabled)},
		{OP_SUBSTR, "OP_SUBSTR", stackFunc(opcodeDisabled)},
		{OP_LEFT, "OP_LEFT", stackFunc(opcodeDisabled)},
		{OP_RIGHT, "OP_RIGHT", stackFunc(opcodeDisabled)},
		{OP_SIZE, "OP_SIZE", stackFunc(opcodeSize)},

		// Bitwise logic opcodes.
		{OP_INVERT, "OP_INVERT", stackFunc(opcodeDisabled)},
		{OP_AND, "OP_AND", stackFunc(opcodeDisabled)},
		{OP_OR, "OP_OR", stackFunc(opcodeDisabled)},
		{OP_XOR, "OP_XOR", stackFunc(opcodeDisabled)},
		{OP_EQUAL, "OP_EQUAL", stackFunc(opcodeEqual)},
		{OP_EQUALVERIFY, "OP_EQUALVERIFY", stackFunc(opcodeEqualVerify)},
		{OP_RESERVED1, "OP_RESERVED1", stackFunc(opcodeReserved)},
		{OP_RESERVED2, "OP_RESERVED2", stackFunc(opcodeReserved)},

		// Numeric related opcodes.
		{OP_1ADD, "OP_1ADD", stackFunc(opcode1Add)},
		{OP_1SUB, "OP_1SUB", stackFunc(opcode1Sub)},
		{OP_2MUL, "OP_2MUL", stackFunc(opcodeDisabled)},
		{OP_2DIV, "OP_2DIV", stackFunc(opcodeDisabled)},
		{OP_NEGATE, "OP_NEGATE", stackFunc(opcodeNegate)},
		{OP_ABS, "OP_ABS", stackFunc(opcodeAbs)},
		{OP_NOT, "OP_NOT", stackFunc(opcodeNot)},
		{OP_0NOTEQUAL, "OP_0NOTEQUAL", stackFunc(opcode0NotEqual)},
		{OP_ADD, "OP_ADD", stackFunc(opcodeAdd)},
		{OP_SUB, "OP_SUB", stackFunc(opcodeSub)},
		{OP_MUL, "OP_MUL", stackFunc(opcodeDisabled)},
		{OP_DIV, "OP_DIV", stackFunc(opcodeDisabled)},
		{OP_MOD, "OP_MOD", stackFunc(opcodeDisabled)},
		{OP_LSHIFT, "OP_LSHIFT", stackFunc(opcodeDisabled)},
		{OP_RSHIFT, "OP_RSHIFT", stackFunc(opcodeDisabled)},
		{OP_BOOLAND, "OP_BOOLAND", stackFunc(opcodeBoolAnd)},
		{OP_BOOLOR, "OP_BOOLOR", stackFunc(opcodeBoolOr)},
		{OP_NUMEQUAL, "OP_NUMEQUAL", stackFunc(opcodeNumEqual)},
		{OP_NUMEQUALVERIFY, "OP_NUMEQUALVERIFY", stackFunc(opcodeNumEqualVerify)},
		{OP_NUMNOTEQUAL, "OP_NUMNOTEQUAL", stackFunc(opcodeNumNotEqual)},
		{OP_LESSTHAN, "OP_LESSTHAN", stackFunc(opcodeLessThan)},
		{OP_GREATERTHAN, "OP_GREATERTHAN", stackFunc(opcodeGreaterThan)},
		{OP_LESSTHANOREQUAL, "OP_LESSTHANOREQUAL", stackFunc(opcodeLessThanOrEqual)},
		{OP_GREATERTHANOREQUAL, "OP_GREATERTHANOREQUAL", stackFunc(opcodeGreaterThanOrEqual)},
		{OP_MIN, "OP_MIN", stackFunc(opcodeMin)},
		{OP_MAX, "OP_MAX", stackFunc(opcodeMax)},
		{OP_WITHIN, "OP_WITHIN", stackFunc(opcodeWithin)},

		// Crypto opcodes.
		{OP_RIPEMD160, "OP_RIPEMD160", stackFunc(opcodeRipemd160)},
		{OP_SHA1, "OP_SHA1", stackFunc(opcodeSha1)},
		{OP_SHA256, "OP_SHA256", stackFunc(opcodeSha256)},
		{OP_HASH160, "OP_HASH160", stackFunc(opcodeHash160)},
		{OP_HASH256, "OP_HASH256", stackFunc(opcodeHash256)},
		{OP_CODESEPARATOR, "OP_CODESEPARATOR", stackFunc(opcodeNop)},
		{OP_CHECKSIG, "OP_CHECKSIG", sigFunc(opcodeCheckSig)},
		{OP_CHECKSIGVERIFY, "OP_CHECKSIGVERIFY", sigFunc(opcodeCheckSigVerify)},
		{OP_CHECKMULTISIG, "OP_CHECKMULTISIG", sigFunc(opcodeCheckMultiSig)},
		{OP_CHECKMULTISIGVERIFY, "OP_CHECKMULTISIGVERIFY", sigFunc(opcodeCheckMultiSigVerify)},

		// Reserved opcodes.
		{OP_NOP1, "OP_NOP1", stackFunc(opcodeNop)},
		{OP_NOP4, "OP_NOP4", stackFunc(opcodeNop)},
		{OP_NOP5, "OP_NOP5", stackFunc(opcodeNop)},
		{OP_NOP6, "OP_NOP6", stackFunc(opcodeNop)},
		{OP_NOP7, "OP_NOP7", stackFunc(opcodeNop)},
		{OP_NOP8, "OP_NOP8", stackFunc(opcodeNop)},
		{OP_NOP9, "OP_NOP9", stackFunc(opcodeNop)},
		{OP_NOP10, "OP_NOP10", stackFunc(opcodeNop)},

		// Push data lengths.  These only execute when a command was built
		// by hand, since parsing turns them into data pushes.
		{OP_PUSHDATA1, "OP_PUSHDATA1", stackFunc(opcodeInvalid)},
		{OP_PUSHDATA2, "OP_PUSHDATA2", stackFunc(opcodeInvalid)},
		{OP_PUSHDATA4, "OP_PUSHDATA4", stackFunc(opcodeInvalid)},
		{OP_INVALIDOPCODE, "OP_INVALIDOPCODE", stackFunc(opcodeInvalid)},
	}

	for i := range opcodeArray {
		name := fmt.Sprintf("OP_UNKNOWN%d", i)
		if i >= OP_DATA_1 && i <= OP_DATA_75 {
			name = fmt.Sprintf("OP_DATA_%d", i)
		}
		opcodeArray[i] = opcode{
			value:   byte(i),
			name:    name,
			handler: stackFunc(opcodeInvalid),
		}
	}
	for _, def := range defs {
		opcodeArray[def.value] = def
	}

	// Initialize the opcode name to value map using the contents of the
	// opcode array.  Also add entries for "OP_FALSE", "OP_TRUE", "OP_NOP2",
	// and "OP_NOP3" since they are aliases for "OP_0", "OP_1",
	// "OP_CHECKLOCKTIMEVERIFY", and "OP_CHECKSEQUENCEVERIFY" respectively.
	for _, op := range opcodeArray {
		OpcodeByName[op.name] = op.value
	}
	OpcodeByName["OP_FALSE"] = OP_FALSE
	OpcodeByName["OP_TRUE"] = OP_TRUE
	OpcodeByName["OP_NOP2"] = OP_CHECKLOCKTIMEVERIFY
	OpcodeByName["OP_NOP3"] = OP_CHECKSEQUENCEVERIFY
}

// OpcodeName returns the human-readable name of the opcode.
func OpcodeName(op byte) string {
	return opcodeArray[op].name
}

// isUpgradableNop returns whether op is a NOP reserved for future soft forks.
func isUpgradableNop(op byte) bool {
	return op == OP_NOP1 || (op >= OP_NOP4 && op <= OP_NOP10)
}

// *******************************************
// Opcode implementation functions start here.
// *******************************************

// opcodeDisabled is a common handler for disabled opcodes.  It returns an
// appropriate error indicating the opcode is disabled.
func opcodeDisabled(op *opcode, s *stack) error {
	str := fmt.Sprintf("attempt to execute disabled opcode %s", op.name)
	return scriptError(ErrDisabledOpcode, str)
}

// opcodeReserved is a common handler for all reserved opcodes.  It returns an
// appropriate error indicating the opcode is reserved.
func opcodeReserved(op *opcode, s *stack) error {
	str := fmt.Sprintf("attempt to execute reserved opcode %s", op.name)
	return scriptError(ErrReservedOpcode, str)
}

// opcodeInvalid is a common handler for all invalid opcodes.  It returns an
// appropriate error indicating the opcode is invalid.
func opcodeInvalid(op *opcode, s *stack) error {
	str := fmt.Sprintf("attempt to execute invalid opcode %s", op.name)
	return scriptError(ErrInvalidOpcode, str)
}

// opcodeStrayConditional handles an OP_ELSE or OP_ENDIF that is reached
// directly.  A balanced conditional consumes both when its branch is spliced,
// so seeing one here means there is no matching OP_IF.
func opcodeStrayConditional(op *opcode, s *stack) error {
	str := fmt.Sprintf("encountered opcode %s with no matching opcode to "+
		"begin conditional execution", op.name)
	return scriptError(ErrUnbalancedConditional, str)
}

// opcodeFalse pushes an empty array to the data stack to represent false.
func opcodeFalse(op *opcode, s *stack) error {
	s.PushByteArray(nil)
	return nil
}

// opcode1Negate pushes -1, encoded as a number, to the data stack.
func opcode1Negate(op *opcode, s *stack) error {
	s.PushInt(scriptNum(-1))
	return nil
}

// opcodeN is a common handler for the small integer data push opcodes.  It
// pushes the numeric value the opcode represents (which will be from 1 to 16)
// onto the data stack.
func opcodeN(op *opcode, s *stack) error {
	// The opcodes are all defined consecutively, so the numeric value is
	// the difference.
	s.PushInt(scriptNum(op.value - (OP_1 - 1)))
	return nil
}

// opcodeNop is a common handler for the NOP family of opcodes.  As the name
// implies it generally does nothing.  Discouraging the upgradable NOPs is a
// policy decision made by the engine before dispatch.
func opcodeNop(op *opcode, s *stack) error {
	return nil
}

// opcodeIf treats the top item on the data stack as a boolean and selects
// which branch of the conditional runs next.  OP_NOTIF inverts the choice.
//
// The commands up to the matching OP_ENDIF are split into the part before a
// depth 1 OP_ELSE and the part after it.  Both markers are consumed and the
// selected part is placed at the front of the remaining commands.
//
// Stack transformation: [... bool] -> [...]
func opcodeIf(op *opcode, s *stack, cmds *commandQueue) error {
	trueBranch, falseBranch, consumed, err := cmds.splitConditional()
	if err != nil {
		return err
	}

	ok, err := s.PopBool()
	if err != nil {
		return err
	}
	if op.value == OP_NOTIF {
		ok = !ok
	}

	cmds.discard(consumed)
	if ok {
		cmds.prepend(trueBranch)
	} else {
		cmds.prepend(falseBranch)
	}
	return nil
}

// abstractVerify examines the top item on the data stack as a boolean value and
// verifies it evaluates to true.  An error is returned either when there is no
// item on the stack or when that item evaluates to false.  In the latter case
// where the verification fails specifically due to the top item evaluating
// to false, the returned error will use the passed error code.
func abstractVerify(op *opcode, s *stack, c ErrorCode) error {
	verified, err := s.PopBool()
	if err != nil {
		return err
	}

	if !verified {
		str := fmt.Sprintf("%s failed", op.name)
		return scriptError(c, str)
	}
	return nil
}

// opcodeVerify examines the top item on the data stack as a boolean value and
// verifies it evaluates to true.  An error is returned if it does not.
func opcodeVerify(op *opcode, s *stack) error {
	return abstractVerify(op, s, ErrVerify)
}

// opcodeReturn returns an appropriate error since it is always an error to
// return early from a script.
func opcodeReturn(op *opcode, s *stack) error {
	return scriptError(ErrEarlyReturn, "script returned early")
}

// opcodeToAltStack removes the top item from the main data stack and pushes it
// onto the alternate data stack.
//
// Main data stack transformation: [... x1 x2 x3] -> [... x1 x2]
// Alt data stack transformation:  [... y1 y2 y3] -> [... y1 y2 y3 x3]
func opcodeToAltStack(op *opcode, s, alt *stack) error {
	so, err := s.PopByteArray()
	if err != nil {
		return err
	}
	alt.PushByteArray(so)

	return nil
}

// opcodeFromAltStack removes the top item from the alternate data stack and
// pushes it onto the main data stack.
//
// Main data stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 y3]
// Alt data stack transformation:  [... y1 y2 y3] -> [... y1 y2]
func opcodeFromAltStack(op *opcode, s, alt *stack) error {
	so, err := alt.PopByteArray()
	if err != nil {
		return err
	}
	s.PushByteArray(so)

	return nil
}

// opcode2Drop removes the top 2 items from the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1]
func opcode2Drop(op *opcode, s *stack) error {
	return s.DropN(2)
}

// opcode2Dup duplicates the top 2 items on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x2 x3]
func opcode2Dup(op *opcode, s *stack) error {
	return s.DupN(2)
}

// opcode3Dup duplicates the top 3 items on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x1 x2 x3]
func opcode3Dup(op *opcode, s *stack) error {
	return s.DupN(3)
}

// opcode2Over duplicates the 2 items before the top 2 items on the data stack.
//
// Stack transformation: [... x1 x2 x3 x4] -> [... x1 x2 x3 x4 x1 x2]
func opcode2Over(op *opcode, s *stack) error {
	return s.OverN(2)
}

// opcode2Rot rotates the top 6 items on the data stack to the left twice.
//
// Stack transformation: [... x1 x2 x3 x4 x5 x6] -> [... x3 x4 x5 x6 x1 x2]
func opcode2Rot(op *opcode, s *stack) error {
	return s.RotN(2)
}

// opcode2Swap swaps the top 2 items on the data stack with the 2 that come
// before them.
//
// Stack transformation: [... x1 x2 x3 x4] -> [... x3 x4 x1 x2]
func opcode2Swap(op *opcode, s *stack) error {
	return s.SwapN(2)
}

// opcodeIfDup duplicates the top item of the stack if it is not zero.
//
// Stack transformation (x1==0): [... x1] -> [... x1]
// Stack transformation (x1!=0): [... x1] -> [... x1 x1]
func opcodeIfDup(op *opcode, s *stack) error {
	so, err := s.PeekByteArray(0)
	if err != nil {
		return err
	}

	// Push copy of data iff it isn't zero
	if asBool(so) {
		s.PushByteArray(so)
	}

	return nil
}

// opcodeDepth pushes the depth of the data stack prior to executing this
// opcode, encoded as a number, onto the data stack.
//
// Stack transformation: [...] -> [... <num of items on the stack>]
// Example with 2 items: [x1 x2] -> [x1 x2 2]
// Example with 3 items: [x1 x2 x3] -> [x1 x2 x3 3]
func opcodeDepth(op *opcode, s *stack) error {
	s.PushInt(scriptNum(s.Depth()))
	return nil
}

// opcodeDrop removes the top item from the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2]
func opcodeDrop(op *opcode, s *stack) error {
	return s.DropN(1)
}

// opcodeDup duplicates the top item on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x3]
func opcodeDup(op *opcode, s *stack) error {
	return s.DupN(1)
}

// opcodeNip removes the item before the top item on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x3]
func opcodeNip(op *opcode, s *stack) error {
	return s.NipN(1)
}

// opcodeOver duplicates the item before the top item on the data stack.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2 x3 x2]
func opcodeOver(op *opcode, s *stack) error {
	return s.OverN(1)
}

// opcodePick treats the top item on the data stack as an integer and duplicates
// the item on the stack that number of items back to the top.
//
// Stack transformation: [xn ... x2 x1 x0 n] -> [xn ... x2 x1 x0 xn]
// Example with n=1: [x2 x1 x0 1] -> [x2 x1 x0 x1]
// Example with n=2: [x2 x1 x0 2] -> [x2 x1 x0 x2]
func opcodePick(op *opcode, s *stack) error {
	val, err := s.PopInt()
	if err != nil {
		return err
	}

	return s.PickN(val.Int32())
}

// opcodeRoll treats the top item on the data stack as an integer and moves
// the item on the stack that number of items back to the top.
//
// Stack transformation: [xn ... x2 x1 x0 n] -> [... x2 x1 x0 xn]
// Example with n=1: [x2 x1 x0 1] -> [x2 x0 x1]
// Example with n=2: [x2 x1 x0 2] -> [x1 x0 x2]
func opcodeRoll(op *opcode, s *stack) error {
	val, err := s.PopInt()
	if err != nil {
		return err
	}

	return s.RollN(val.Int32())
}

// opcodeRot rotates the top 3 items on the data stack to the left.
//
// Stack transformation: [... x1 x2 x3] -> [... x2 x3 x1]
func opcodeRot(op *opcode, s *stack) error {
	return s.RotN(1)
}

// opcodeSwap swaps the top two items on the stack.
//
// Stack transformation: [... x1 x2] -> [... x2 x1]
func opcodeSwap(op *opcode, s *stack) error {
	return s.SwapN(1)
}

// opcodeTuck inserts a duplicate of the top item of the data stack before the
// second-to-top item.
//
// Stack transformation: [... x1 x2] -> [... x2 x1 x2]
func opcodeTuck(op *opcode, s *stack) error {
	return s.Tuck()
}

// opcodeSize pushes the size of the top item of the data stack onto the data
// stack.
//
// Stack transformation: [... x1] -> [... x1 len(x1)]
func opcodeSize(op *opcode, s *stack) error {
	so, err := s.PeekByteArray(0)
	if err != nil {
		return err
	}

	s.PushInt(scriptNum(len(so)))
	return nil
}

// opcodeEqual removes the top 2 items of the data stack, compares them as raw
// bytes, and pushes the result, encoded as a boolean, back to the stack.
//
// Stack transformation: [... x1 x2] -> [... bool]
func opcodeEqual(op *opcode, s *stack) error {
	a, err := s.PopByteArray()
	if err != nil {
		return err
	}
	b, err := s.PopByteArray()
	if err != nil {
		return err
	}

	s.PushBool(bytes.Equal(a, b))
	return nil
}

// opcodeEqualVerify is a combination of opcodeEqual and opcodeVerify.
// Specifically, it removes the top 2 items of the data stack, compares them,
// and pushes the result, encoded as a boolean, back to the stack.  Then, it
// examines the top item on the data stack as a boolean value and verifies it
// evaluates to true.  An error is returned if it does not.
//
// Stack transformation: [... x1 x2] -> [... bool] -> [...]
func opcodeEqualVerify(op *opcode, s *stack) error {
	if err := opcodeEqual(op, s); err != nil {
		return err
	}
	return abstractVerify(op, s, ErrEqualVerify)
}

// unaryNumOp pops one number, applies fn and pushes the result.
func unaryNumOp(s *stack, fn func(m scriptNum) scriptNum) error {
	m, err := s.PopInt()
	if err != nil {
		return err
	}

	s.PushInt(fn(m))
	return nil
}

// binaryNumOp pops two numbers and pushes fn applied to them.  v1 is the
// second-to-top item and v0 the top item, so [... v1 v0] -> [... fn(v1, v0)].
func binaryNumOp(s *stack, fn func(v1, v0 scriptNum) scriptNum) error {
	v0, err := s.PopInt()
	if err != nil {
		return err
	}
	v1, err := s.PopInt()
	if err != nil {
		return err
	}

	s.PushInt(fn(v1, v0))
	return nil
}

// numFromBool converts a comparison result to the number pushed for it.
func numFromBool(v bool) scriptNum {
	if v {
		return 1
	}
	return 0
}

// opcode1Add treats the top item on the data stack as an integer and replaces
// it with its incremented value (plus 1).
//
// Stack transformation: [... x1 x2] -> [... x1 x2+1]
func opcode1Add(op *opcode, s *stack) error {
	return unaryNumOp(s, func(m scriptNum) scriptNum { return m + 1 })
}

// opcode1Sub treats the top item on the data stack as an integer and replaces
// it with its decremented value (minus 1).
//
// Stack transformation: [... x1 x2] -> [... x1 x2-1]
func opcode1Sub(op *opcode, s *stack) error {
	return unaryNumOp(s, func(m scriptNum) scriptNum { return m - 1 })
}

// opcodeNegate treats the top item on the data stack as an integer and replaces
// it with its negation.
//
// Stack transformation: [... x1 x2] -> [... x1 -x2]
func opcodeNegate(op *opcode, s *stack) error {
	return unaryNumOp(s, func(m scriptNum) scriptNum { return -m })
}

// opcodeAbs treats the top item on the data stack as an integer and replaces it
// it with its absolute value.
//
// Stack transformation: [... x1 x2] -> [... x1 abs(x2)]
func opcodeAbs(op *opcode, s *stack) error {
	return unaryNumOp(s, func(m scriptNum) scriptNum {
		if m < 0 {
			return -m
		}
		return m
	})
}

// opcodeNot treats the top item on the data stack as an integer and replaces
// it with its "inverted" value (0 becomes 1, non-zero becomes 0).
//
// NOTE: While it would probably make more sense to treat the top item as a
// boolean, and push the opposite, which is really what the intention of this
// opcode is, it is extremely important that is not done because integers are
// interpreted differently than booleans and the consensus rules for this opcode
// dictate the item is interpreted as an integer.
//
// Stack transformation (x2==0): [... x1 0] -> [... x1 1]
// Stack transformation (x2!=0): [... x1 1] -> [... x1 0]
// Stack transformation (x2!=0): [... x1 17] -> [... x1 0]
func opcodeNot(op *opcode, s *stack) error {
	return unaryNumOp(s, func(m scriptNum) scriptNum {
		return numFromBool(m == 0)
	})
}

// opcode0NotEqual treats the top item on the data stack as an integer and
// replaces it with either a 0 if it is zero, or a 1 if it is not zero.
//
// Stack transformation (x2==0): [... x1 0] -> [... x1 0]
// Stack transformation (x2!=0): [... x1 1] -> [... x1 1]
// Stack transformation (x2!=0): [... x1 17] -> [... x1 1]
func opcode0NotEqual(op *opcode, s *stack) error {
	return unaryNumOp(s, func(m scriptNum) scriptNum {
		return numFromBool(m != 0)
	})
}

// opcodeAdd treats the top two items on the data stack as integers and replaces
// them with their sum.
//
// Stack transformation: [... x1 x2] -> [... x1+x2]
func opcodeAdd(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum { return v1 + v0 })
}

// opcodeSub treats the top two items on the data stack as integers and replaces
// them with the result of subtracting the top entry from the second-to-top
// entry.
//
// Stack transformation: [... x1 x2] -> [... x1-x2]
func opcodeSub(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum { return v1 - v0 })
}

// opcodeBoolAnd treats the top two items on the data stack as integers.  When
// both of them are not zero, they are replaced with a 1, otherwise a 0.
//
// Stack transformation (x1==0, x2==0): [... 0 0] -> [... 0]
// Stack transformation (x1!=0, x2==0): [... 5 0] -> [... 0]
// Stack transformation (x1==0, x2!=0): [... 0 7] -> [... 0]
// Stack transformation (x1!=0, x2!=0): [... 4 8] -> [... 1]
func opcodeBoolAnd(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 != 0 && v0 != 0)
	})
}

// opcodeBoolOr treats the top two items on the data stack as integers.  When
// either of them are not zero, they are replaced with a 1, otherwise a 0.
//
// Stack transformation (x1==0, x2==0): [... 0 0] -> [... 0]
// Stack transformation (x1!=0, x2==0): [... 5 0] -> [... 1]
// Stack transformation (x1==0, x2!=0): [... 0 7] -> [... 1]
// Stack transformation (x1!=0, x2!=0): [... 4 8] -> [... 1]
func opcodeBoolOr(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 != 0 || v0 != 0)
	})
}

// opcodeNumEqual treats the top two items on the data stack as integers.  When
// they are equal, they are replaced with a 1, otherwise a 0.
//
// Stack transformation (x1==x2): [... 5 5] -> [... 1]
// Stack transformation (x1!=x2): [... 5 7] -> [... 0]
func opcodeNumEqual(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 == v0)
	})
}

// opcodeNumEqualVerify is a combination of opcodeNumEqual and opcodeVerify.
//
// Stack transformation: [... x1 x2] -> [... bool] -> [...]
func opcodeNumEqualVerify(op *opcode, s *stack) error {
	if err := opcodeNumEqual(op, s); err != nil {
		return err
	}
	return abstractVerify(op, s, ErrNumEqualVerify)
}

// opcodeNumNotEqual treats the top two items on the data stack as integers.
// When they are NOT equal, they are replaced with a 1, otherwise a 0.
//
// Stack transformation (x1==x2): [... 5 5] -> [... 0]
// Stack transformation (x1!=x2): [... 5 7] -> [... 1]
func opcodeNumNotEqual(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 != v0)
	})
}

// opcodeLessThan treats the top two items on the data stack as integers.  When
// the second-to-top item is less than the top item, they are replaced with a 1,
// otherwise a 0.
//
// Stack transformation: [... x1 x2] -> [... bool]
func opcodeLessThan(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 < v0)
	})
}

// opcodeGreaterThan treats the top two items on the data stack as integers.
// When the second-to-top item is greater than the top item, they are replaced
// with a 1, otherwise a 0.
//
// Stack transformation: [... x1 x2] -> [... bool]
func opcodeGreaterThan(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 > v0)
	})
}

// opcodeLessThanOrEqual treats the top two items on the data stack as integers.
// When the second-to-top item is less than or equal to the top item, they are
// replaced with a 1, otherwise a 0.
//
// Stack transformation: [... x1 x2] -> [... bool]
func opcodeLessThanOrEqual(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 <= v0)
	})
}

// opcodeGreaterThanOrEqual treats the top two items on the data stack as
// integers.  When the second-to-top item is greater than or equal to the top
// item, they are replaced with a 1, otherwise a 0.
//
// Stack transformation: [... x1 x2] -> [... bool]
func opcodeGreaterThanOrEqual(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		return numFromBool(v1 >= v0)
	})
}

// opcodeMin treats the top two items on the data stack as integers and replaces
// them with the minimum of the two.
//
// Stack transformation: [... x1 x2] -> [... min(x1, x2)]
func opcodeMin(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		if v1 < v0 {
			return v1
		}
		return v0
	})
}

// opcodeMax treats the top two items on the data stack as integers and replaces
// them with the maximum of the two.
//
// Stack transformation: [... x1 x2] -> [... max(x1, x2)]
func opcodeMax(op *opcode, s *stack) error {
	return binaryNumOp(s, func(v1, v0 scriptNum) scriptNum {
		if v1 > v0 {
			return v1
		}
		return v0
	})
}

// opcodeWithin treats the top 3 items on the data stack as integers.  When the
// value to test is within the specified range (left inclusive), they are
// replaced with a 1, otherwise a 0.
//
// The top item is the max value, the second-top-item is the minimum value, and
// the third-to-top item is the value to test.
//
// Stack transformation: [... x1 min max] -> [... bool]
func opcodeWithin(op *opcode, s *stack) error {
	maxVal, err := s.PopInt()
	if err != nil {
		return err
	}

	minVal, err := s.PopInt()
	if err != nil {
		return err
	}

	x, err := s.PopInt()
	if err != nil {
		return err
	}

	s.PushBool(x >= minVal && x < maxVal)
	return nil
}

// calcHash calculates the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// replaceTop pops the top item and pushes fn applied to it.
func replaceTop(s *stack, fn func([]byte) []byte) error {
	buf, err := s.PopByteArray()
	if err != nil {
		return err
	}

	s.PushByteArray(fn(buf))
	return nil
}

// opcodeRipemd160 treats the top item of the data stack as raw bytes and
// replaces it with ripemd160(data).
//
// Stack transformation: [... x1] -> [... ripemd160(x1)]
func opcodeRipemd160(op *opcode, s *stack) error {
	return replaceTop(s, func(buf []byte) []byte {
		return calcHash(buf, ripemd160.New())
	})
}

// opcodeSha1 treats the top item of the data stack as raw bytes and replaces it
// with sha1(data).
//
// Stack transformation: [... x1] -> [... sha1(x1)]
func opcodeSha1(op *opcode, s *stack) error {
	return replaceTop(s, func(buf []byte) []byte {
		sum := sha1.Sum(buf)
		return sum[:]
	})
}

// opcodeSha256 treats the top item of the data stack as raw bytes and replaces
// it with sha256(data).
//
// Stack transformation: [... x1] -> [... sha256(x1)]
func opcodeSha256(op *opcode, s *stack) error {
	return replaceTop(s, func(buf []byte) []byte {
		sum := sha256.Sum256(buf)
		return sum[:]
	})
}

// opcodeHash160 treats the top item of the data stack as raw bytes and replaces
// it with ripemd160(sha256(data)).
//
// Stack transformation: [... x1] -> [... ripemd160(sha256(x1))]
func opcodeHash160(op *opcode, s *stack) error {
	return replaceTop(s, btcutil.Hash160)
}

// opcodeHash256 treats the top item of the data stack as raw bytes and replaces
// it with sha256(sha256(data)).
//
// Stack transformation: [... x1] -> [... sha256(sha256(x1))]
func opcodeHash256(op *opcode, s *stack) error {
	return replaceTop(s, chainhash.DoubleHashB)
}

// opcodeCheckSig treats the top 2 items on the stack as a public key and a
// signature and replaces them with a bool which indicates if the signature was
// successfully verified against the digest the engine was created with.
//
// The signature is the DER encoding followed by a single hash type byte.  A
// signature or public key that does not parse is an error rather than a
// false result.
//
// Stack transformation: [... signature pubkey] -> [... bool]
func opcodeCheckSig(op *opcode, s *stack, c *sigChecker) error {
	pkBytes, err := s.PopByteArray()
	if err != nil {
		return err
	}

	fullSigBytes, err := s.PopByteArray()
	if err != nil {
		return err
	}

	sig, err := c.parseSig(fullSigBytes)
	if err != nil {
		return err
	}
	pubKey, err := c.parsePubKey(pkBytes)
	if err != nil {
		return err
	}

	s.PushBool(c.verify(sig, pubKey))
	return nil
}

// opcodeCheckSigVerify is a combination of opcodeCheckSig and opcodeVerify.
// The opcodeCheckSig function is invoked followed by opcodeVerify.  See the
// documentation for each of those opcodes for more details.
//
// Stack transformation: [... signature pubkey] -> [... bool] -> [...]
func opcodeCheckSigVerify(op *opcode, s *stack, c *sigChecker) error {
	if err := opcodeCheckSig(op, s, c); err != nil {
		return err
	}
	return abstractVerify(op, s, ErrCheckSigVerify)
}

// opcodeCheckMultiSig treats the top item on the stack as an integer number of
// public keys, followed by that many entries as raw data representing the public
// keys, followed by the integer number of signatures, followed by that many
// entries as raw data representing the signatures.
//
// Due to a bug in the original Satoshi client implementation, an additional
// dummy argument is also required by the consensus rules, although it is not
// used.  The dummy value SHOULD be an OP_0, although that is not required by
// the consensus rules.  When the ScriptStrictMultiSig flag is set, it must be
// OP_0.
//
// All of the aforementioned stack items are replaced with a bool which
// indicates if the requisite number of signatures were successfully verified.
//
// Signatures are matched against the public keys in order, so they must be
// provided in the same order as the keys they belong to.
//
// Stack transformation:
// [... dummy [sig ...] numsigs [pubkey ...] numpubkeys] -> [... bool]
func opcodeCheckMultiSig(op *opcode, s *stack, c *sigChecker) error {
	numKeys, err := s.PopInt()
	if err != nil {
		return err
	}

	numPubKeys := int(numKeys.Int32())
	if numPubKeys < 0 {
		str := fmt.Sprintf("number of pubkeys %d is negative",
			numPubKeys)
		return scriptError(ErrInvalidPubKeyCount, str)
	}
	if numPubKeys > MaxPubKeysPerMultiSig {
		str := fmt.Sprintf("too many pubkeys: %d > %d",
			numPubKeys, MaxPubKeysPerMultiSig)
		return scriptError(ErrInvalidPubKeyCount, str)
	}
	if err := c.ops.add(numPubKeys); err != nil {
		return err
	}

	// Keys and signatures are listed top down, so the first popped is the
	// last provided.  Collect them back into script order.
	pubKeys := make([][]byte, numPubKeys)
	for i := numPubKeys - 1; i >= 0; i-- {
		pubKeys[i], err = s.PopByteArray()
		if err != nil {
			return err
		}
	}

	numSigs, err := s.PopInt()
	if err != nil {
		return err
	}
	numSignatures := int(numSigs.Int32())
	if numSignatures < 0 {
		str := fmt.Sprintf("number of signatures %d is negative",
			numSignatures)
		return scriptError(ErrInvalidSignatureCount, str)
	}
	if numSignatures > numPubKeys {
		str := fmt.Sprintf("more signatures than pubkeys: %d > %d",
			numSignatures, numPubKeys)
		return scriptError(ErrInvalidSignatureCount, str)
	}

	signatures := make([][]byte, numSignatures)
	for i := numSignatures - 1; i >= 0; i-- {
		signatures[i], err = s.PopByteArray()
		if err != nil {
			return err
		}
	}

	// A bug in the original Satoshi client implementation means one more
	// stack value than should be used must be popped.  Unfortunately, this
	// buggy behavior is now part of the consensus and a hard fork would be
	// required to fix it.
	dummy, err := s.PopByteArray()
	if err != nil {
		return err
	}

	// Since the dummy argument is otherwise not checked, it could be any
	// value which unfortunately provides a source of malleability.  Thus,
	// there is a script flag to force an error when the value is NOT 0.
	if c.hasFlag(ScriptStrictMultiSig) && len(dummy) != 0 {
		str := fmt.Sprintf("multisig dummy argument has length %d "+
			"instead of 0", len(dummy))
		return scriptError(ErrSigNullDummy, str)
	}

	success := true
	pubKeyIdx := 0
	for sigIdx := 0; sigIdx < len(signatures); {
		// When there are more signatures than public keys remaining,
		// there is no way to succeed since too many signatures are
		// invalid, so exit early.
		if len(signatures)-sigIdx > len(pubKeys)-pubKeyIdx {
			success = false
			break
		}

		rawSig := signatures[sigIdx]
		pubKey := pubKeys[pubKeyIdx]
		pubKeyIdx++

		// Skip to the next pubkey if signature is empty.
		if len(rawSig) == 0 {
			continue
		}

		// Encoding problems only abort evaluation under strict
		// encoding.  Otherwise the pair simply fails to match.
		sig, err := c.parseSig(rawSig)
		if err != nil {
			if c.hasFlag(ScriptVerifyStrictEncoding) {
				return err
			}
			continue
		}
		parsedPubKey, err := c.parsePubKey(pubKey)
		if err != nil {
			if c.hasFlag(ScriptVerifyStrictEncoding) {
				return err
			}
			continue
		}

		if c.verify(sig, parsedPubKey) {
			// PubKey verified, move on to the next signature.
			sigIdx++
		}
	}

	s.PushBool(success)
	return nil
}

// opcodeCheckMultiSigVerify is a combination of opcodeCheckMultiSig and
// opcodeVerify.  The opcodeCheckMultiSig is invoked followed by opcodeVerify.
// See the documentation for each of those opcodes for more details.
//
// Stack transformation:
// [... dummy [sig ...] numsigs [pubkey ...] numpubkeys] -> [... bool] -> [...]
func opcodeCheckMultiSigVerify(op *opcode, s *stack, c *sigChecker) error {
	if err := opcodeCheckMultiSig(op, s, c); err != nil {
		return err
	}
	return abstractVerify(op, s, ErrCheckMultiSigVerify)
}
