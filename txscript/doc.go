// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the bitcoin transaction script language.

This package provides data structures and functions to parse, build and
execute bitcoin scripts against a signature digest.

# Script Overview

Bitcoin transaction scripts are written in a stack-base, FORTH-like language.

The bitcoin script language consists of a number of opcodes which fall into
several categories such pushing and popping data to and from the stack,
performing basic arithmetic, conditional branching, comparing hashes, and
checking cryptographic signatures.  Scripts are processed from left to right
and intentionally do not provide loops.

A Script is an ordered list of commands, each of which is either a bare
opcode or a data push.  ParseScript reads the varint length prefixed wire
form and Serialize writes it back, always selecting the shortest push
encoding.

# Execution

The Engine has no program counter.  It keeps the commands that remain to be
run in a queue, and OP_IF and OP_NOTIF evaluate by removing the whole
conditional from the front of the queue and placing the commands of the
selected branch back in its place.  Commands in the branch that was not
taken are never looked at again, so they are neither counted against the
operation limit nor rejected when they are disabled or unknown.

Signature checking opcodes verify DER encoded signatures followed by a hash
type byte against the digest z that is supplied when the engine is created.
Script.Evaluate runs a script without policy flags and reduces the outcome to
a boolean.  NewEngine with ScriptFlags such as StandardVerifyFlags enables the
additional malleability checks.

The consensus limits apply whatever the flags: numeric operands are at most
4 bytes, a script may execute at most MaxOpsPerScript non-push operations,
the data and alt stacks together hold at most MaxStackSize items and no data
element exceeds MaxScriptElementSize bytes.

# Errors

Errors returned by this package are of type txscript.Error.  This allows the
caller to programmatically determine the specific error by examining the
ErrorCode field of the type asserted txscript.Error while still providing
rich error messages with contextual information.  A convenience function
named IsErrorCode is also provided to allow callers to easily check for a
specific error code.  See ErrorCode in the package documentation for a full
list.
*/
package txscript
