// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
)

// Command is one element of a script: either a bare opcode or a data push.
// The zero value is OP_0.
type Command struct {
	op   byte
	data []byte
	push bool
}

// Op returns a command that executes the opcode op.
func Op(op byte) Command {
	return Command{op: op}
}

// Data returns a command that pushes a copy of data.
func Data(data []byte) Command {
	return Command{data: append([]byte{}, data...), push: true}
}

// IsData returns whether the command is a data push.
func (c Command) IsData() bool {
	return c.push
}

// Opcode returns the opcode of a bare opcode command.  It returns 0 for data
// pushes.
func (c Command) Opcode() byte {
	if c.push {
		return 0
	}
	return c.op
}

// Data returns a copy of the pushed bytes of a data push, or nil for a bare
// opcode.
func (c Command) Data() []byte {
	if !c.push {
		return nil
	}
	return append([]byte{}, c.data...)
}

// Equal returns whether both commands are the same kind and carry the same
// opcode or bytes.
func (c Command) Equal(other Command) bool {
	if c.push != other.push {
		return false
	}
	if c.push {
		return string(c.data) == string(other.data)
	}
	return c.op == other.op
}

// String returns the opcode name for an opcode and the hex encoding for a
// data push.
func (c Command) String() string {
	if c.push {
		return hex.EncodeToString(c.data)
	}
	return opcodeArray[c.op].name
}

// commandQueue is the sequence of commands that remain to be executed.
// Conditionals rewrite its front, so the queue itself is the program counter.
type commandQueue struct {
	cmds []Command
}

// newCommandQueue returns a queue over a copy of cmds.
func newCommandQueue(cmds []Command) commandQueue {
	return commandQueue{cmds: append([]Command(nil), cmds...)}
}

// len returns the number of commands left.
func (q *commandQueue) len() int {
	return len(q.cmds)
}

// peek returns the next command without removing it.
func (q *commandQueue) peek() (Command, bool) {
	if len(q.cmds) == 0 {
		return Command{}, false
	}
	return q.cmds[0], true
}

// pop removes and returns the next command.
func (q *commandQueue) pop() (Command, bool) {
	cmd, ok := q.peek()
	if ok {
		q.cmds = q.cmds[1:]
	}
	return cmd, ok
}

// discard drops the next n commands.
func (q *commandQueue) discard(n int) {
	q.cmds = q.cmds[n:]
}

// prepend places cmds in front of the remaining commands.  The queue's
// backing array is never written through, so slices previously handed out
// stay intact.
func (q *commandQueue) prepend(cmds []Command) {
	if len(cmds) == 0 {
		return
	}
	joined := make([]Command, 0, len(cmds)+len(q.cmds))
	joined = append(joined, cmds...)
	q.cmds = append(joined, q.cmds...)
}

// splitConditional scans the commands following an OP_IF or OP_NOTIF up to
// the matching OP_ENDIF without consuming them.  It returns the commands of
// the true branch, those of the false branch and the number of commands the
// whole construct spans, including the OP_ELSE and OP_ENDIF markers.
//
// Nested conditionals are copied into whichever branch contains them.  Only
// an OP_ELSE at the outermost level separates the branches.  Everything after
// the first one belongs to the false branch, so a repeated OP_ELSE at that
// level is skipped.
func (q *commandQueue) splitConditional() (trueBranch, falseBranch []Command,
	consumed int, err error) {

	depth := 1
	inElse := false
	for i, cmd := range q.cmds {
		if !cmd.push {
			switch cmd.op {
			case OP_IF, OP_NOTIF:
				depth++

			case OP_ENDIF:
				depth--
				if depth == 0 {
					return trueBranch, falseBranch, i + 1, nil
				}

			case OP_ELSE:
				// Any further OP_ELSE at this level is dropped and
				// the false branch keeps collecting.
				if depth == 1 {
					inElse = true
					continue
				}
			}
		}

		if inElse {
			falseBranch = append(falseBranch, cmd)
		} else {
			trueBranch = append(trueBranch, cmd)
		}
	}

	str := fmt.Sprintf("end of script reached in conditional execution "+
		"at depth %d", depth)
	return nil, nil, 0, scriptError(ErrUnbalancedConditional, str)
}
