// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/ecscript/s256/ecdsa"
	"github.com/btcsuite/ecscript/txscript"
)

// This example demonstrates creating a script which pays to the hash of a
// public key, unlocking it with a signature over a message digest and
// evaluating the combined script.
func ExampleScript_Evaluate() {
	key, err := ecdsa.NewPrivateKey(big.NewInt(8675309))
	if err != nil {
		fmt.Println(err)
		return
	}
	z := chainhash.DoubleHashB([]byte("test message"))

	pkScript, err := txscript.PayToPubKeyHash(key.PubKey(), true)
	if err != nil {
		fmt.Println(err)
		return
	}
	sigScript, err := txscript.SignHash(key, z, txscript.SigHashAll, true)
	if err != nil {
		fmt.Println(err)
		return
	}

	combined := sigScript.Concat(pkScript)
	fmt.Println("Script Class:", pkScript.Class())
	fmt.Println("Valid:", combined.Evaluate(ecdsa.HashToInt(z)))

	// A digest the signature was not made over fails.
	other := chainhash.DoubleHashB([]byte("other message"))
	fmt.Println("Valid for other message:",
		combined.Evaluate(ecdsa.HashToInt(other)))

	// Output:
	// Script Class: pubkeyhash
	// Valid: true
	// Valid for other message: false
}

// This example demonstrates parsing a length prefixed script and
// disassembling it.
func ExampleParseScript() {
	raw, err := hex.DecodeString("1976a914bc3b654dca7e56b04dca18f2566cdaf" +
		"02e8d9ada88ac")
	if err != nil {
		fmt.Println(err)
		return
	}

	script, err := txscript.ParseScript(bytes.NewReader(raw))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(script)
	fmt.Println("Script Class:", script.Class())

	// Output:
	// OP_DUP OP_HASH160 bc3b654dca7e56b04dca18f2566cdaf02e8d9ada OP_EQUALVERIFY OP_CHECKSIG
	// Script Class: pubkeyhash
}

// This example demonstrates how a conditional selects the commands that run.
func ExampleEngine_Step() {
	script, err := txscript.NewScriptBuilder().AddOp(txscript.OP_0).
		AddOp(txscript.OP_IF).AddInt64(2).AddOp(txscript.OP_ELSE).
		AddInt64(3).AddOp(txscript.OP_ENDIF).Script()
	if err != nil {
		fmt.Println(err)
		return
	}

	vm, err := txscript.NewEngine(script, big.NewInt(0), 0, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for {
		dis, err := vm.DisasmPC()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(dis)

		done, err := vm.Step()
		if err != nil {
			fmt.Println(err)
			return
		}
		if done {
			break
		}
	}
	fmt.Println("Result:", vm.CheckErrorCondition() == nil)

	// Output:
	// 0000: OP_0
	// 0001: OP_IF
	// 0002: OP_3
	// Result: true
}
