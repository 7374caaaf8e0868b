// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute parses args like the command line and runs the selected command.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cfg, err := loadConfig(args, &out)
	if err != nil || cfg == nil {
		return out.String(), err
	}
	err = run(cfg, &out)
	return out.String(), err
}

func TestPubKeyCommand(t *testing.T) {
	out, err := execute(t, "pubkey", "--secret", "01")
	require.NoError(t, err)
	require.Contains(t, out, "sec: 0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798\n")
	require.Contains(t, out, "address: 1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH\n")

	out, err = execute(t, "pubkey", "-s", "01", "--uncompressed")
	require.NoError(t, err)
	require.Contains(t, out, "address: 1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm\n")

	_, err = execute(t, "pubkey", "--secret", "00")
	require.Error(t, err)

	_, err = execute(t, "pubkey", "--secret", "zz")
	require.Error(t, err)

	_, err = execute(t, "pubkey")
	require.Error(t, err, "missing required --secret")
}

func TestSignVerifyCommands(t *testing.T) {
	sig, err := execute(t, "sign", "--secret", "deadbeef", "-m", "hello")
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)
	require.True(t, strings.HasPrefix(sig, "30"), sig)

	pub, err := execute(t, "pubkey", "--secret", "deadbeef")
	require.NoError(t, err)
	sec := strings.TrimPrefix(strings.SplitN(pub, "\n", 2)[0], "sec: ")

	out, err := execute(t, "verify", "--pubkey", sec, "--sig", sig,
		"--message", "hello")
	require.NoError(t, err)
	require.Equal(t, "valid\n", out)

	out, err = execute(t, "verify", "--pubkey", sec, "--sig", sig,
		"--message", "goodbye")
	require.ErrorIs(t, err, errScriptFailed)
	require.Equal(t, "invalid\n", out)

	// Signing the same digest twice gives the same signature.
	again, err := execute(t, "sign", "--secret", "deadbeef", "-m", "hello")
	require.NoError(t, err)
	require.Equal(t, sig, strings.TrimSpace(again))

	_, err = execute(t, "sign", "--secret", "deadbeef")
	require.Error(t, err, "no digest")

	_, err = execute(t, "sign", "--secret", "deadbeef", "-m", "a",
		"--hash", "00")
	require.Error(t, err, "both digests")

	_, err = execute(t, "sign", "--secret", "deadbeef", "--hash",
		strings.Repeat("00", 33))
	require.Error(t, err, "oversized hash")
}

func TestEvalCommand(t *testing.T) {
	// OP_1 OP_2 OP_ADD OP_3 OP_EQUAL
	out, err := execute(t, "eval", "--raw", "--script", "5152935387")
	require.NoError(t, err)
	require.Contains(t, out, "script: OP_1 OP_2 OP_ADD OP_3 OP_EQUAL\n")
	require.Contains(t, out, "stack:\n  01\n")
	require.Contains(t, out, "result: true\n")

	// Same script with its length prefix.
	out, err = execute(t, "eval", "--script", "055152935387", "--trace")
	require.NoError(t, err)
	require.Contains(t, out, "0000: OP_1\n")
	require.Contains(t, out, "0004: OP_EQUAL\n")
	require.Contains(t, out, "result: true\n")

	// The trace follows the selected branch after OP_IF is spliced out.
	out, err = execute(t, "eval", "--raw", "--script", "51635268", "--trace")
	require.NoError(t, err)
	require.Contains(t, out, "0001: OP_IF\n0002: OP_2\n")
	require.NotContains(t, out, "0003:")

	// A failing step still ends the trace with the result.
	out, err = execute(t, "eval", "--raw", "--script", "6a", "--trace")
	require.ErrorIs(t, err, errScriptFailed)
	require.Contains(t, out, "0000: OP_RETURN\n")
	require.Contains(t, out, "result: false")

	// An empty script has nothing to trace.
	out, err = execute(t, "eval", "--script", "00", "--trace")
	require.ErrorIs(t, err, errScriptFailed)
	require.NotContains(t, out, "0000:")

	// OP_1 OP_2 leaves two items, which only the clean stack rule rejects.
	_, err = execute(t, "eval", "--raw", "--script", "5152")
	require.NoError(t, err)
	out, err = execute(t, "eval", "--raw", "--script", "5152",
		"--flags", "standard")
	require.ErrorIs(t, err, errScriptFailed)
	require.Contains(t, out, "result: false")

	_, err = execute(t, "eval", "--raw", "--script", "5152",
		"--flags", "loose")
	require.Error(t, err)

	// Declared length runs past the end.
	_, err = execute(t, "eval", "--script", "0651")
	require.Error(t, err)
}

func TestLoadConfigNoCommand(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ecscript version "), out)

	out, err = execute(t, "--debuglevel", "show")
	require.NoError(t, err)
	require.Contains(t, out, "SCRP")

	_, err = execute(t)
	require.Error(t, err)

	_, err = execute(t, "-d", "loud", "eval", "--raw", "--script", "51")
	require.Error(t, err)
}
