// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/ecscript/internal/log"
	"github.com/btcsuite/ecscript/s256"
	"github.com/btcsuite/ecscript/s256/ecdsa"
	"github.com/btcsuite/ecscript/txscript"
)

// errScriptFailed is returned when a script or signature did not check out
// so the process exits with a failure status.
var errScriptFailed = errors.New("script evaluation failed")

// parsePrivateKey decodes a hex encoded secret.
func parsePrivateKey(secret string) (*ecdsa.PrivateKey, error) {
	b, err := hex.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid --secret: %v", err)
	}
	return ecdsa.PrivKeyFromBytes(b)
}

func runPubKey(c *pubKeyCmd, w io.Writer) error {
	key, err := parsePrivateKey(c.Secret)
	if err != nil {
		return err
	}

	compressed := !c.Uncompressed
	pub := key.PubKey()
	fmt.Fprintf(w, "sec: %x\n", pub.SEC(compressed))
	fmt.Fprintf(w, "hash160: %x\n", pub.Hash160(compressed))
	fmt.Fprintf(w, "address: %s\n", pub.Address(compressed, c.netParams()))
	return nil
}

func runSign(c *signCmd, w io.Writer) error {
	key, err := parsePrivateKey(c.Secret)
	if err != nil {
		return err
	}
	z, err := c.digest(false)
	if err != nil {
		return err
	}

	sig := key.Sign(z)
	log.EcscLog.Debugf("Signed z %064x with r %064x s %064x", z, sig.R(),
		sig.S())
	fmt.Fprintf(w, "%x\n", sig.Serialize())
	return nil
}

func runVerify(c *verifyCmd, w io.Writer) error {
	pubBytes, err := hex.DecodeString(c.PubKey)
	if err != nil {
		return fmt.Errorf("invalid --pubkey: %v", err)
	}
	pub, err := s256.ParseSEC(pubBytes)
	if err != nil {
		return err
	}
	sigBytes, err := hex.DecodeString(c.Sig)
	if err != nil {
		return fmt.Errorf("invalid --sig: %v", err)
	}
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return err
	}
	z, err := c.digest(false)
	if err != nil {
		return err
	}

	if sig.Verify(z, pub) {
		fmt.Fprintln(w, "valid")
		return nil
	}
	fmt.Fprintln(w, "invalid")
	return errScriptFailed
}

// parseScriptHex decodes a serialized script with or without its length
// prefix.
func parseScriptHex(s string, raw bool) (*txscript.Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --script: %v", err)
	}
	if raw {
		return txscript.ParseRawScript(b)
	}
	return txscript.ParseScript(bytes.NewReader(b))
}

func runEval(c *evalCmd, w io.Writer) error {
	script, err := parseScriptHex(c.Script, c.Raw)
	if err != nil {
		return err
	}
	z, err := c.digest(true)
	if err != nil {
		return err
	}
	scriptFlags, err := c.scriptFlags()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "script: %v\n", script)
	vm, err := txscript.NewEngine(script, z, scriptFlags, nil)
	if err != nil {
		return err
	}

	var execErr error
	if c.Trace {
		for done := script.Len() == 0; !done; {
			dis, err := vm.DisasmPC()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, dis)
			done, execErr = vm.Step()
		}
		if execErr == nil {
			execErr = vm.CheckErrorCondition()
		}
	} else {
		execErr = vm.Execute()
	}

	fmt.Fprintln(w, "stack:")
	stk := vm.GetStack()
	for i := len(stk) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "  %x\n", stk[i])
	}
	if execErr != nil {
		fmt.Fprintf(w, "result: false (%v)\n", execErr)
		return errScriptFailed
	}
	fmt.Fprintln(w, "result: true")
	return nil
}

// run dispatches the invoked subcommand.
func run(cfg *config, w io.Writer) error {
	switch cfg.command {
	case "pubkey":
		return runPubKey(&cfg.PubKey, w)
	case "sign":
		return runSign(&cfg.Sign, w)
	case "verify":
		return runVerify(&cfg.Verify, w)
	case "eval":
		return runEval(&cfg.Eval, w)
	}
	return fmt.Errorf("unknown command %q", cfg.command)
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	cfg, err := loadConfig(os.Args[1:], os.Stdout)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	defer func() {
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
	}()

	log.EcscLog.Debugf("Running %s", cfg.command)
	return run(cfg, os.Stdout)
}

func main() {
	if err := realMain(); err != nil {
		if !errors.Is(err, errScriptFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
