// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"math/big"
)

// ScriptFlags is a bitmask defining additional operations or tests that will
// be done when executing a script.  The zero value applies none of them.
type ScriptFlags uint32

const (
	// ScriptVerifyMinimalData defines that data pushes must use the
	// smallest push operator and numbers must be minimally encoded.  This
	// is both rules 3 and 4 of BIP0062.
	ScriptVerifyMinimalData ScriptFlags = 1 << iota

	// ScriptVerifyCleanStack defines that the stack must contain only
	// one stack element after evaluation and that the element must be
	// true if interpreted as a boolean.  This is rule 6 of BIP0062.
	ScriptVerifyCleanStack

	// ScriptVerifyLowS defines that signatures are required to have an S
	// value that is <= order / 2.  This is rule 5 of BIP0062.
	ScriptVerifyLowS

	// ScriptVerifyStrictEncoding defines that signatures must carry a
	// known hash type, and that multisig encoding problems are errors
	// instead of failed matches.
	ScriptVerifyStrictEncoding

	// ScriptStrictMultiSig defines whether to verify the stack item
	// used by CHECKMULTISIG is zero length.
	ScriptStrictMultiSig

	// ScriptDiscourageUpgradableNops defines whether to verify that
	// NOP1 and NOP4 through NOP10 are reserved for future soft-fork
	// upgrades.  This flag is only applied when the above opcodes are
	// executed.
	ScriptDiscourageUpgradableNops

	// StandardVerifyFlags are the script flags which are used to enforce
	// the additional checks applied to scripts relayed by standard nodes.
	// These checks help reduce issues related to malleability.
	StandardVerifyFlags = ScriptVerifyMinimalData |
		ScriptVerifyCleanStack |
		ScriptVerifyLowS |
		ScriptVerifyStrictEncoding |
		ScriptStrictMultiSig |
		ScriptDiscourageUpgradableNops
)

// Engine is the virtual machine that executes scripts.
//
// There is no program counter.  The commands that remain to run are kept in
// a queue that conditionals rewrite, so the queue is the continuation.
type Engine struct {
	cmds    commandQueue
	dstack  stack // data stack
	astack  stack // alt stack
	checker sigChecker
	ops     opCounter
	flags   ScriptFlags
	steps   int
}

// hasFlag returns whether the script engine instance has the passed flag set.
func (vm *Engine) hasFlag(flag ScriptFlags) bool {
	return vm.flags&flag == flag
}

// checkMinimalDataPush returns an error unless a data push could not have
// been written with one of the small integer opcodes.  Parsing and
// serialization always select the shortest length prefix, so this is the
// only way a push can be non-minimal.
func checkMinimalDataPush(data []byte) error {
	dataLen := len(data)
	var opcodeName string
	switch {
	case dataLen == 0:
		opcodeName = "OP_0"
	case dataLen == 1 && data[0] >= 1 && data[0] <= 16:
		opcodeName = fmt.Sprintf("OP_%d", data[0])
	case dataLen == 1 && data[0] == 0x81:
		opcodeName = "OP_1NEGATE"
	default:
		return nil
	}

	str := fmt.Sprintf("data push of %x instead of using %s", data,
		opcodeName)
	return scriptError(ErrMinimalData, str)
}

// executeCommand performs execution on the passed command.  It takes into
// account the push size and operation limits as well as the policy flags the
// engine was created with.
func (vm *Engine) executeCommand(cmd Command) error {
	if cmd.push {
		if len(cmd.data) > MaxScriptElementSize {
			str := fmt.Sprintf("element size %d exceeds max allowed "+
				"size %d", len(cmd.data), MaxScriptElementSize)
			return scriptError(ErrElementTooBig, str)
		}
		if vm.hasFlag(ScriptVerifyMinimalData) {
			if err := checkMinimalDataPush(cmd.data); err != nil {
				return err
			}
		}
		vm.dstack.PushByteArray(cmd.data)
		return nil
	}

	op := &opcodeArray[cmd.op]

	// Note that this includes OP_RESERVED which counts as a push
	// operation.
	if op.value > OP_16 {
		if err := vm.ops.add(1); err != nil {
			return err
		}
	}

	if isUpgradableNop(op.value) &&
		vm.hasFlag(ScriptDiscourageUpgradableNops) {

		str := fmt.Sprintf("%v reserved for soft-fork upgrades",
			op.name)
		return scriptError(ErrDiscourageUpgradableNOPs, str)
	}

	return op.handler.exec(op, vm)
}

// Step executes the next command and reports whether the script is done.
// Like Execute, it returns true with any error since the script can not
// continue after a failure.
func (vm *Engine) Step() (done bool, err error) {
	cmd, ok := vm.cmds.pop()
	if !ok {
		return true, nil
	}
	vm.steps++

	if err := vm.executeCommand(cmd); err != nil {
		return true, err
	}

	// The number of elements in the combination of the data and alt stacks
	// must not exceed the maximum number of stack elements allowed.
	combinedStackSize := vm.dstack.Depth() + vm.astack.Depth()
	if combinedStackSize > MaxStackSize {
		str := fmt.Sprintf("combined stack size %d > max allowed %d",
			combinedStackSize, MaxStackSize)
		return true, scriptError(ErrStackOverflow, str)
	}

	return vm.cmds.len() == 0, nil
}

// Execute will execute all commands in the script engine and return either
// nil for successful validation or an error if one occurred.
func (vm *Engine) Execute() (err error) {
	done := vm.cmds.len() == 0
	for !done {
		log.Tracef("%v", newLogClosure(func() string {
			dis, err := vm.DisasmPC()
			if err != nil {
				return fmt.Sprintf("stepping (%v)", err)
			}
			return fmt.Sprintf("stepping %v", dis)
		}))

		done, err = vm.Step()
		if err != nil {
			return err
		}
		log.Tracef("%v", newLogClosure(func() string {
			var dstr, astr string

			// if we're tracing, dump the stacks.
			if vm.dstack.Depth() != 0 {
				dstr = "Stack:\n" + vm.dstack.String()
			}
			if vm.astack.Depth() != 0 {
				astr = "AltStack:\n" + vm.astack.String()
			}

			return dstr + astr
		}))
	}

	return vm.CheckErrorCondition()
}

// CheckErrorCondition returns nil if the running script has ended and was
// successful, leaving a true boolean on the stack.  An error otherwise,
// including if the script has not finished.
func (vm *Engine) CheckErrorCondition() error {
	if vm.cmds.len() > 0 {
		str := fmt.Sprintf("error check when script unfinished, %d "+
			"commands remain", vm.cmds.len())
		return scriptError(ErrScriptUnfinished, str)
	}

	if vm.dstack.Depth() < 1 {
		str := "stack empty at end of script execution"
		return scriptError(ErrEmptyStack, str)
	}

	if vm.hasFlag(ScriptVerifyCleanStack) && vm.dstack.Depth() != 1 {
		str := fmt.Sprintf("stack must contain exactly one item (contains "+
			"%d)", vm.dstack.Depth())
		return scriptError(ErrCleanStack, str)
	}

	v, err := vm.dstack.PeekBool(0)
	if err != nil {
		return err
	}
	if !v {
		// Log interesting data.
		log.Tracef("%v", newLogClosure(func() string {
			return fmt.Sprintf("stack: %v", vm.dstack.String())
		}))
		str := "false stack entry at end of script execution"
		return scriptError(ErrEvalFalse, str)
	}
	return nil
}

// DisasmPC returns the string for the disassembly of the command that will
// be executed by the next call to Step, prefixed by the number of commands
// already executed.
func (vm *Engine) DisasmPC() (string, error) {
	cmd, ok := vm.cmds.peek()
	if !ok {
		str := fmt.Sprintf("attempt to disassemble after %d executed "+
			"commands with none remaining", vm.steps)
		return "", scriptError(ErrInvalidProgramCounter, str)
	}
	return fmt.Sprintf("%04d: %s", vm.steps, cmd), nil
}

// GetStack returns the contents of the primary stack as an array.  where the
// last item in the array is the top of the stack.
func (vm *Engine) GetStack() [][]byte {
	return vm.dstack.snapshot()
}

// SetStack sets the contents of the primary stack to the contents of the
// provided array where the last item in the array will be the top of the
// stack.
func (vm *Engine) SetStack(data [][]byte) {
	vm.dstack.stk = append([][]byte(nil), data...)
}

// GetAltStack returns the contents of the alternate stack as an array where
// the last item in the array is the top of the stack.
func (vm *Engine) GetAltStack() [][]byte {
	return vm.astack.snapshot()
}

// SetAltStack sets the contents of the alternate stack to the contents of
// the provided array where the last item in the array will be the top of the
// stack.
func (vm *Engine) SetAltStack(data [][]byte) {
	vm.astack.stk = append([][]byte(nil), data...)
}

// NewEngine returns a new script engine for the provided script.  z is the
// signature digest every OP_CHECKSIG style opcode verifies against and must
// be a non-negative integer of at most 256 bits.  The flags modify the
// behavior of the script engine according to the description provided by
// each flag, and sigCache, when not nil, is consulted and filled with
// verified signatures.
func NewEngine(script *Script, z *big.Int, flags ScriptFlags,
	sigCache *SigCache) (*Engine, error) {

	vm := Engine{flags: flags}
	checker, err := newSigChecker(z, flags, sigCache, &vm.ops)
	if err != nil {
		return nil, err
	}
	if script != nil {
		vm.cmds = newCommandQueue(script.cmds)
	}
	vm.checker = checker
	vm.dstack.verifyMinimalData = vm.hasFlag(ScriptVerifyMinimalData)
	vm.astack.verifyMinimalData = vm.hasFlag(ScriptVerifyMinimalData)

	return &vm, nil
}
