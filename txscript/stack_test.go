// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// tstCheckScriptError ensures the type of the two passed errors are of the
// same type (either both nil or both of type Error) and their error codes
// match when not nil.
func tstCheckScriptError(gotErr, wantErr error) error {
	// Ensure the error code is of the expected type and the error
	// code matches the value specified in the test instance.
	if fmt.Sprintf("%T", gotErr) != fmt.Sprintf("%T", wantErr) {
		return fmt.Errorf("wrong error - got %T (%[1]v), want %T",
			gotErr, wantErr)
	}
	if gotErr == nil {
		return nil
	}

	// Ensure the want error type is a script error.
	werr, ok := wantErr.(Error)
	if !ok {
		return fmt.Errorf("unexpected test error type %T", wantErr)
	}

	// Ensure the error codes match.  It's safe to use a raw type assert
	// here since the code above already proved they are the same type and
	// the want error is a script error.
	gotErrorCode := gotErr.(Error).ErrorCode
	if gotErrorCode != werr.ErrorCode {
		return fmt.Errorf("mismatched error code - got %v (%v), want %v",
			gotErrorCode, gotErr, werr.ErrorCode)
	}

	return nil
}

// TestStack tests that all of the stack operations work as expected.
func TestStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		before    [][]byte
		operation func(*stack) error
		err       error
		after     [][]byte
	}{
		{
			"noop",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				return nil
			},
			nil,
			[][]byte{{1}, {2}, {3}, {4}, {5}},
		},
		{
			"peek underflow (byte)",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				_, err := s.PeekByteArray(5)
				return err
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"peek underflow (int)",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				_, err := s.PeekInt(5)
				return err
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"peek underflow (bool)",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				_, err := s.PeekBool(5)
				return err
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"pop",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				val, err := s.PopByteArray()
				if err != nil {
					return err
				}
				if !bytes.Equal(val, []byte{5}) {
					return errors.New("not equal")
				}
				return err
			},
			nil,
			[][]byte{{1}, {2}, {3}, {4}},
		},
		{
			"pop everything",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				for i := 0; i < 5; i++ {
					_, err := s.PopByteArray()
					if err != nil {
						return err
					}
				}
				return nil
			},
			nil,
			nil,
		},
		{
			"pop underflow",
			[][]byte{{1}, {2}, {3}, {4}, {5}},
			func(s *stack) error {
				for i := 0; i < 6; i++ {
					_, err := s.PopByteArray()
					if err != nil {
						return err
					}
				}
				return nil
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"pop bool",
			[][]byte{nil},
			func(s *stack) error {
				val, err := s.PopBool()
				if err != nil {
					return err
				}
				if val {
					return errors.New("unexpected value")
				}
				return nil
			},
			nil,
			nil,
		},
		{
			"pop bool negative zero",
			[][]byte{{0x00, 0x80}},
			func(s *stack) error {
				val, err := s.PopBool()
				if err != nil {
					return err
				}
				if val {
					return errors.New("negative zero is true")
				}
				return nil
			},
			nil,
			nil,
		},
		{
			"pop bool non-zero high byte",
			[][]byte{{0x00, 0x81}},
			func(s *stack) error {
				val, err := s.PopBool()
				if err != nil {
					return err
				}
				if !val {
					return errors.New("unexpected value")
				}
				return nil
			},
			nil,
			nil,
		},
		{
			"pop int",
			[][]byte{{0x81}},
			func(s *stack) error {
				v, err := s.PopInt()
				if err != nil {
					return err
				}
				if v != -1 {
					return errors.New("-1 != -1 on popInt")
				}
				return nil
			},
			nil,
			nil,
		},
		{
			"pop int too big",
			[][]byte{{0x00, 0x00, 0x00, 0x80, 0x00}},
			func(s *stack) error {
				_, err := s.PopInt()
				return err
			},
			scriptError(ErrNumberTooBig, ""),
			nil,
		},
		{
			"push int",
			nil,
			func(s *stack) error {
				s.PushInt(scriptNum(1000))
				return nil
			},
			nil,
			[][]byte{{0xe8, 0x03}},
		},
		{
			"push bool",
			nil,
			func(s *stack) error {
				s.PushBool(true)
				s.PushBool(false)
				return nil
			},
			nil,
			[][]byte{{1}, nil},
		},
		{
			"nip top",
			[][]byte{{1}, {2}, {3}},
			func(s *stack) error {
				return s.NipN(0)
			},
			nil,
			[][]byte{{1}, {2}},
		},
		{
			"nip middle",
			[][]byte{{1}, {2}, {3}},
			func(s *stack) error {
				return s.NipN(1)
			},
			nil,
			[][]byte{{1}, {3}},
		},
		{
			"nip low",
			[][]byte{{1}, {2}, {3}},
			func(s *stack) error {
				return s.NipN(2)
			},
			nil,
			[][]byte{{2}, {3}},
		},
		{
			"nip too much",
			[][]byte{{1}, {2}, {3}},
			func(s *stack) error {
				return s.NipN(3)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"tuck",
			[][]byte{{1}, {2}, {3}},
			func(s *stack) error {
				return s.Tuck()
			},
			nil,
			[][]byte{{1}, {3}, {2}, {3}},
		},
		{
			"tuck underflow",
			[][]byte{{1}},
			func(s *stack) error {
				return s.Tuck()
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"drop 2",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.DropN(2)
			},
			nil,
			[][]byte{{1}, {2}},
		},
		{
			"drop too much",
			[][]byte{{1}, {2}},
			func(s *stack) error {
				return s.DropN(3)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"drop invalid",
			[][]byte{{1}, {2}},
			func(s *stack) error {
				return s.DropN(0)
			},
			scriptError(ErrInvalidStackOperation, ""),
			nil,
		},
		{
			"dup 2",
			[][]byte{{1}, {2}, {3}},
			func(s *stack) error {
				return s.DupN(2)
			},
			nil,
			[][]byte{{1}, {2}, {3}, {2}, {3}},
		},
		{
			"dup too much",
			[][]byte{{1}},
			func(s *stack) error {
				return s.DupN(2)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"rot 1",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.RotN(1)
			},
			nil,
			[][]byte{{1}, {3}, {4}, {2}},
		},
		{
			"rot 2",
			[][]byte{{1}, {2}, {3}, {4}, {5}, {6}},
			func(s *stack) error {
				return s.RotN(2)
			},
			nil,
			[][]byte{{3}, {4}, {5}, {6}, {1}, {2}},
		},
		{
			"rot too little",
			[][]byte{{1}, {2}},
			func(s *stack) error {
				return s.RotN(1)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"swap 1",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.SwapN(1)
			},
			nil,
			[][]byte{{1}, {2}, {4}, {3}},
		},
		{
			"swap 2",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.SwapN(2)
			},
			nil,
			[][]byte{{3}, {4}, {1}, {2}},
		},
		{
			"swap too little",
			[][]byte{{1}},
			func(s *stack) error {
				return s.SwapN(1)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"over 1",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.OverN(1)
			},
			nil,
			[][]byte{{1}, {2}, {3}, {4}, {3}},
		},
		{
			"over 2",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.OverN(2)
			},
			nil,
			[][]byte{{1}, {2}, {3}, {4}, {1}, {2}},
		},
		{
			"over too little",
			[][]byte{{1}},
			func(s *stack) error {
				return s.OverN(1)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"pick 1",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.PickN(1)
			},
			nil,
			[][]byte{{1}, {2}, {3}, {4}, {3}},
		},
		{
			"pick too big",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.PickN(4)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
		{
			"roll 2",
			[][]byte{{1}, {2}, {3}, {4}},
			func(s *stack) error {
				return s.RollN(2)
			},
			nil,
			[][]byte{{1}, {3}, {4}, {2}},
		},
		{
			"roll negative",
			[][]byte{{1}, {2}},
			func(s *stack) error {
				return s.RollN(-1)
			},
			scriptError(ErrStackUnderflow, ""),
			nil,
		},
	}

	for _, test := range tests {
		// Setup the initial stack state and perform the test operation.
		var s stack
		for i := range test.before {
			s.PushByteArray(test.before[i])
		}
		err := test.operation(&s)

		// Ensure the error code is of the expected type and the error
		// code matches the value specified in the test instance.
		if e := tstCheckScriptError(err, test.err); e != nil {
			t.Errorf("%s: %v", test.name, e)
			continue
		}
		if err != nil {
			continue
		}

		// Ensure the resulting stack is the expected length.
		if int32(len(s.stk)) != int32(len(test.after)) {
			t.Errorf("%s: stack depth doesn't match expected: %v "+
				"vs %v", test.name, len(s.stk),
				len(test.after))
			continue
		}

		// Ensure all items of the resulting stack are the expected
		// values.
		for i := range test.after {
			if !bytes.Equal(s.stk[i], test.after[i]) {
				t.Errorf("%s: stack item %d doesn't match "+
					"expected: %x vs %x", test.name, i,
					s.stk[i], test.after[i])
				break
			}
		}
	}
}

// TestStackFailureLeavesStack ensures operations that need several items
// leave the stack untouched when there are not enough.
func TestStackFailureLeavesStack(t *testing.T) {
	t.Parallel()

	ops := map[string]func(*stack) error{
		"rot":  func(s *stack) error { return s.RotN(1) },
		"swap": func(s *stack) error { return s.SwapN(2) },
		"over": func(s *stack) error { return s.OverN(2) },
		"dup":  func(s *stack) error { return s.DupN(3) },
		"drop": func(s *stack) error { return s.DropN(3) },
	}
	for name, op := range ops {
		s := stack{stk: [][]byte{{1}, {2}}}
		if err := op(&s); !IsErrorCode(err, ErrStackUnderflow) {
			t.Errorf("%s: unexpected error %v", name, err)
			continue
		}
		if len(s.stk) != 2 || s.stk[0][0] != 1 || s.stk[1][0] != 2 {
			t.Errorf("%s: stack modified on failure: %x", name, s.stk)
		}
	}
}
