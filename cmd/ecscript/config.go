// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/ecscript/internal/log"
	"github.com/btcsuite/ecscript/internal/version"
	"github.com/btcsuite/ecscript/s256/ecdsa"
	"github.com/btcsuite/ecscript/txscript"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "ecscript.log"
)

// digestOptions selects the signature digest z shared by the subcommands
// that sign or check signatures.
type digestOptions struct {
	Hash    string `long:"hash" description:"Hex encoded digest to use as z"`
	Message string `short:"m" long:"message" description:"Text whose double SHA256 is used as z"`
}

// digest returns z for the options.  When allowNone is set and neither option
// was given, z is zero.
func (o *digestOptions) digest(allowNone bool) (*big.Int, error) {
	switch {
	case o.Hash != "" && o.Message != "":
		return nil, errors.New("--hash and --message can't be used " +
			"together -- choose one of the two")

	case o.Hash != "":
		b, err := hex.DecodeString(o.Hash)
		if err != nil {
			return nil, fmt.Errorf("invalid --hash: %v", err)
		}
		if len(b) > chainhash.HashSize {
			return nil, fmt.Errorf("invalid --hash: %d bytes is "+
				"longer than %d", len(b), chainhash.HashSize)
		}
		return ecdsa.HashToInt(b), nil

	case o.Message != "":
		return ecdsa.HashToInt(chainhash.DoubleHashB([]byte(o.Message))), nil

	case allowNone:
		return new(big.Int), nil
	}

	return nil, errors.New("a digest is required -- specify --hash " +
		"or --message")
}

// pubKeyCmd derives the public key and address for a secret.
type pubKeyCmd struct {
	Secret       string `short:"s" long:"secret" description:"Hex encoded private key" required:"true"`
	Uncompressed bool   `short:"u" long:"uncompressed" description:"Use the uncompressed SEC form"`
	TestNet      bool   `long:"testnet" description:"Encode the address for the test network"`
}

// signCmd signs a digest.
type signCmd struct {
	Secret string `short:"s" long:"secret" description:"Hex encoded private key" required:"true"`
	digestOptions
}

// verifyCmd checks a DER signature against a digest and public key.
type verifyCmd struct {
	PubKey string `short:"p" long:"pubkey" description:"Hex encoded SEC public key" required:"true"`
	Sig    string `long:"sig" description:"Hex encoded DER signature" required:"true"`
	digestOptions
}

// evalCmd evaluates a serialized script.
type evalCmd struct {
	Script string `long:"script" description:"Hex encoded script with its varint length prefix" required:"true"`
	Raw    bool   `long:"raw" description:"The script has no length prefix"`
	Flags  string `long:"flags" description:"Script verification flags {none, standard}" default:"none"`
	Trace  bool   `long:"trace" description:"Print every step of the evaluation"`
	digestOptions
}

// scriptFlags returns the engine flags selected by the --flags option.
func (c *evalCmd) scriptFlags() (txscript.ScriptFlags, error) {
	switch c.Flags {
	case "none", "":
		return 0, nil
	case "standard":
		return txscript.StandardVerifyFlags, nil
	}
	return 0, fmt.Errorf("unknown script flags %q -- supported flags "+
		"are none and standard", c.Flags)
}

// config defines the configuration options for ecscript.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	PubKey pubKeyCmd `command:"pubkey" description:"Print the SEC public key and address of a private key"`
	Sign   signCmd   `command:"sign" description:"Sign a digest and print the DER signature"`
	Verify verifyCmd `command:"verify" description:"Verify a DER signature"`
	Eval   evalCmd   `command:"eval" description:"Evaluate a script and print the final stack"`

	// command is the name of the subcommand that was invoked.
	command string
}

// netParams returns the network the address of pubkey is encoded for.
func (c *pubKeyCmd) netParams() *chaincfg.Params {
	if c.TestNet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options, including the subcommand
//  3. Set up logging with the requested levels and optional log file
//
// A nil config with a nil error is returned when the process should exit
// without running a subcommand, such as after printing the version.
func loadConfig(args []string, stdout io.Writer) (*config, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	parser.SubcommandsOptional = true
	if _, err := parser.ParseArgs(args); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return nil, nil
		}
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "ecscript version %s\n", version.String())
		return nil, nil
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(stdout, "Supported subsystems",
			log.SupportedSubsystems())
		return nil, nil
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		return nil, errors.New("loadConfig: a command is required -- " +
			"choose one of pubkey, sign, verify or eval")
	}
	cfg.command = parser.Active.Name

	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, fmt.Errorf("loadConfig: %v", err)
	}

	if cfg.LogDir != "" {
		logFile := filepath.Join(cleanAndExpandPath(cfg.LogDir),
			defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir := filepath.Dir(btcutil.AppDataDir("ecscript", false))
		path = filepath.Join(homeDir, path[1:])
	}

	return filepath.Clean(os.ExpandEnv(path))
}
