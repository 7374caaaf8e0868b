// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// ErrScriptNotCanonical identifies a non-canonical script.  The caller can use
// a type assertion to detect this error type.
type ErrScriptNotCanonical string

// Error implements the error interface.
func (e ErrScriptNotCanonical) Error() string {
	return string(e)
}

// ScriptBuilder provides a facility for building custom scripts.  It allows
// you to push opcodes, ints, and data while respecting canonical encoding.  In
// general it does not ensure the script will execute correctly, however any
// data pushes which would exceed the maximum allowed script engine limits and
// are therefore guaranteed not to execute will not be pushed and will result in
// the Script function returning an error.
//
// For example, the following would build a 2-of-3 multisig script for usage in
// a pay-to-script-hash (although in this situation MultiSigScript() would be a
// better choice to generate the script):
//
//	builder := txscript.NewScriptBuilder()
//	builder.AddOp(txscript.OP_2).AddData(pubKey1).AddData(pubKey2)
//	builder.AddData(pubKey3).AddOp(txscript.OP_3)
//	builder.AddOp(txscript.OP_CHECKMULTISIG)
//	script, err := builder.Script()
//	if err != nil {
//		// Handle the error.
//		return
//	}
//	fmt.Printf("Final multi-sig script: %v\n", script)
type ScriptBuilder struct {
	cmds []Command
	err  error
}

// AddOp pushes the passed opcode to the end of the script.  The script will not
// be modified if pushing the opcode would make it ambiguous.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Bytes in the data push range would be read back as the start of a
	// push, so they can not be represented as bare opcodes.
	if opcode >= OP_DATA_1 && opcode <= OP_PUSHDATA2 {
		str := fmt.Sprintf("adding opcode %s would produce an "+
			"ambiguous script", opcodeArray[opcode].name)
		b.err = ErrScriptNotCanonical(str)
		return b
	}

	b.cmds = append(b.cmds, Op(opcode))
	return b
}

// AddOps pushes the passed opcodes to the end of the script.  The script will
// not be modified if pushing the opcodes would make it ambiguous.
func (b *ScriptBuilder) AddOps(opcodes []byte) *ScriptBuilder {
	for _, opcode := range opcodes {
		b.AddOp(opcode)
	}
	return b
}

// AddData pushes the passed data to the end of the script.  It automatically
// chooses canonical opcodes depending on the length of the data.  A zero length
// buffer will lead to a push of empty data onto the stack (OP_0) and any push
// of data greater than MaxScriptElementSize will not modify the script since
// that is not allowed by the script engine.  Also, the script will not be
// modified if pushing the data would cause the script to exceed the maximum
// allowed script engine size.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Pushes larger than the max script element size would result in a
	// script that is not canonical.
	dataLen := len(data)
	if dataLen > MaxScriptElementSize {
		str := fmt.Sprintf("adding a data element of %d bytes would "+
			"exceed the maximum allowed script element size of %d",
			dataLen, MaxScriptElementSize)
		b.err = ErrScriptNotCanonical(str)
		return b
	}

	// When the data consists of a single number that can be represented
	// by one of the "small integer" opcodes, use that opcode instead of
	// a data push opcode followed by the number.
	switch {
	case dataLen == 0:
		b.cmds = append(b.cmds, Op(OP_0))
	case dataLen == 1 && data[0] >= 1 && data[0] <= 16:
		b.cmds = append(b.cmds, Op((OP_1-1)+data[0]))
	case dataLen == 1 && data[0] == 0x81:
		b.cmds = append(b.cmds, Op(OP_1NEGATE))
	default:
		b.cmds = append(b.cmds, Data(data))
	}
	return b
}

// AddInt64 pushes the passed integer to the end of the script.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Fast path for small integers and OP_1NEGATE.
	if val == 0 {
		b.cmds = append(b.cmds, Op(OP_0))
		return b
	}
	if val == -1 || (val >= 1 && val <= 16) {
		b.cmds = append(b.cmds, Op(byte((OP_1-1)+val)))
		return b
	}

	return b.AddData(scriptNum(val).Bytes())
}

// AddCommand appends an already built command.  Data commands are added as
// is, without selecting a canonical opcode.
func (b *ScriptBuilder) AddCommand(cmd Command) *ScriptBuilder {
	if cmd.push {
		if b.err == nil && len(cmd.data) > MaxScriptElementSize {
			str := fmt.Sprintf("adding a data element of %d bytes "+
				"would exceed the maximum allowed script element "+
				"size of %d", len(cmd.data), MaxScriptElementSize)
			b.err = ErrScriptNotCanonical(str)
		}
		if b.err == nil {
			b.cmds = append(b.cmds, Data(cmd.data))
		}
		return b
	}
	return b.AddOp(cmd.op)
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.cmds = b.cmds[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script.  When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *ScriptBuilder) Script() (*Script, error) {
	return NewScript(b.cmds...), b.err
}

// NewScriptBuilder returns a new instance of a script builder.  See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		cmds: make([]Command, 0, 8),
	}
}
