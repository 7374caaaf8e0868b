// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/wire"
)

// These are the constants specified for maximums in individual scripts.
const (
	MaxOpsPerScript       = 201  // Max number of non-push operations.
	MaxPubKeysPerMultiSig = 20   // Multisig can't have more sigs than this.
	MaxScriptElementSize  = 520  // Max bytes pushable to the stack.
	MaxStackSize          = 1000 // Max combined height of stack and alt stack.
)

// Script is an ordered sequence of commands.  A Script is not modified by
// evaluation; each engine works on its own copy of the commands.
type Script struct {
	cmds []Command
}

// NewScript returns a script made of cmds.
func NewScript(cmds ...Command) *Script {
	return &Script{cmds: append([]Command(nil), cmds...)}
}

// Commands returns a copy of the commands that make up the script.
func (s *Script) Commands() []Command {
	return append([]Command(nil), s.cmds...)
}

// Len returns the number of commands in the script.
func (s *Script) Len() int {
	return len(s.cmds)
}

// Concat returns a new script with the commands of s followed by those of
// other.  This is how a signature script is joined with the script it
// unlocks before evaluation.
func (s *Script) Concat(other *Script) *Script {
	cmds := make([]Command, 0, len(s.cmds)+len(other.cmds))
	cmds = append(cmds, s.cmds...)
	cmds = append(cmds, other.cmds...)
	return &Script{cmds: cmds}
}

// Equal returns whether both scripts consist of the same commands.
func (s *Script) Equal(other *Script) bool {
	if len(s.cmds) != len(other.cmds) {
		return false
	}
	for i := range s.cmds {
		if !s.cmds[i].Equal(other.cmds[i]) {
			return false
		}
	}
	return true
}

// String returns the disassembly of the script: opcode names and hex encoded
// data pushes separated by spaces.
func (s *Script) String() string {
	parts := make([]string, len(s.cmds))
	for i, cmd := range s.cmds {
		parts[i] = cmd.String()
	}
	return strings.Join(parts, " ")
}

// ParseScript reads a script prefixed with its varint encoded length from r.
// Exactly the declared number of bytes is consumed; a data push that would
// run past the declared end fails with ErrMalformedScript rather than
// reading into whatever follows the script.
func ParseScript(r io.Reader) (*Script, error) {
	length, err := wire.ReadVarInt(r, 0)
	if err != nil {
		str := fmt.Sprintf("unable to read script length: %v", err)
		return nil, scriptError(ErrMalformedScript, str)
	}
	if length > math.MaxInt64 {
		str := fmt.Sprintf("script length %d is too large", length)
		return nil, scriptError(ErrMalformedScript, str)
	}

	cmds, err := parseCommands(&io.LimitedReader{R: r, N: int64(length)},
		length)
	if err != nil {
		return nil, err
	}
	return &Script{cmds: cmds}, nil
}

// ParseRawScript parses a script body that has no length prefix.
func ParseRawScript(script []byte) (*Script, error) {
	cmds, err := parseCommands(bytes.NewReader(script), uint64(len(script)))
	if err != nil {
		return nil, err
	}
	return &Script{cmds: cmds}, nil
}

// parseCommands decodes commands from r until length bytes were consumed.
// Bytes 1 through 75 push that many following bytes, OP_PUSHDATA1 and
// OP_PUSHDATA2 push a number of bytes given by a 1 or 2 byte little endian
// length, and every other byte is a bare opcode.
func parseCommands(r io.Reader, length uint64) ([]Command, error) {
	var (
		cmds     []Command
		consumed uint64
		buf      [2]byte
	)

	// read fills b from r, failing when the script body is exhausted.
	read := func(b []byte, what string) error {
		if _, err := io.ReadFull(r, b); err != nil {
			str := fmt.Sprintf("script truncated reading %s at "+
				"offset %d of %d: %v", what, consumed, length, err)
			return scriptError(ErrMalformedScript, str)
		}
		consumed += uint64(len(b))
		return nil
	}

	// push reads n data bytes and appends them as a push command.
	push := func(n int) error {
		data := make([]byte, n)
		if err := read(data, fmt.Sprintf("%d byte push", n)); err != nil {
			return err
		}
		cmds = append(cmds, Command{data: data, push: true})
		return nil
	}

	for consumed < length {
		if err := read(buf[:1], "opcode"); err != nil {
			return nil, err
		}

		current := buf[0]
		switch {
		case current >= OP_DATA_1 && current <= OP_DATA_75:
			if err := push(int(current)); err != nil {
				return nil, err
			}

		case current == OP_PUSHDATA1:
			if err := read(buf[:1], "OP_PUSHDATA1 length"); err != nil {
				return nil, err
			}
			if err := push(int(buf[0])); err != nil {
				return nil, err
			}

		case current == OP_PUSHDATA2:
			if err := read(buf[:2], "OP_PUSHDATA2 length"); err != nil {
				return nil, err
			}
			n := binary.LittleEndian.Uint16(buf[:2])
			if err := push(int(n)); err != nil {
				return nil, err
			}

		default:
			cmds = append(cmds, Command{op: current})
		}
	}

	if consumed != length {
		str := fmt.Sprintf("parsing script consumed %d bytes, expected %d",
			consumed, length)
		return nil, scriptError(ErrMalformedScript, str)
	}
	return cmds, nil
}

// RawSerialize returns the script body without a length prefix.  Each data
// push uses the smallest encoding that can carry it.
func (s *Script) RawSerialize() ([]byte, error) {
	var result []byte
	for _, cmd := range s.cmds {
		if !cmd.push {
			if cmd.op >= OP_DATA_1 && cmd.op <= OP_PUSHDATA2 {
				str := fmt.Sprintf("bare opcode %s would be read "+
					"back as a data push", opcodeArray[cmd.op].name)
				return nil, scriptError(ErrAmbiguousOpcode, str)
			}
			result = append(result, cmd.op)
			continue
		}

		dataLen := len(cmd.data)
		switch {
		case dataLen <= OP_DATA_75:
			result = append(result, byte(dataLen))
		case dataLen <= 0xff:
			result = append(result, OP_PUSHDATA1, byte(dataLen))
		case dataLen <= MaxScriptElementSize:
			var lenBuf [2]byte
			binary.LittleEndian.PutUint16(lenBuf[:], uint16(dataLen))
			result = append(result, OP_PUSHDATA2)
			result = append(result, lenBuf[:]...)
		default:
			str := fmt.Sprintf("data push of %d bytes exceeds the "+
				"max allowed of %d", dataLen, MaxScriptElementSize)
			return nil, scriptError(ErrUnsupportedPushSize, str)
		}
		result = append(result, cmd.data...)
	}
	return result, nil
}

// Serialize returns the script body prefixed with its varint encoded length,
// the form ParseScript reads.
func (s *Script) Serialize() ([]byte, error) {
	raw, err := s.RawSerialize()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(wire.VarIntSerializeSize(uint64(len(raw))) + len(raw))
	if err := wire.WriteVarInt(&buf, 0, uint64(len(raw))); err != nil {
		return nil, err
	}
	buf.Write(raw)
	return buf.Bytes(), nil
}

// Evaluate executes the script against the signature digest z and reports
// whether it succeeded.  Every reason for failure, including malformed
// signatures and stack underflows, results in false; the reason is logged at
// the debug level.  Use NewEngine directly to obtain the error.
func (s *Script) Evaluate(z *big.Int) bool {
	vm, err := NewEngine(s, z, 0, nil)
	if err != nil {
		log.Debugf("Unable to create engine for script %v: %v", s, err)
		return false
	}
	if err := vm.Execute(); err != nil {
		log.Debugf("Script %v failed: %v", s, err)
		return false
	}
	return true
}
