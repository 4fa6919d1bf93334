// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	flags "github.com/jessevdk/go-flags"
	"github.com/zarcash/zarcashd/chaincfg"
)

const (
	defaultConfigFilename = "zarparams.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "zarparams.log"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("zarparams", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for zarparams.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	RegTest    bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest   bool   `long:"unittest" description:"Use the unit test network"`
	Checkpoint string `long:"checkpoint" description:"Check a block against the checkpoints, given as <height>:<hash>"`
	Progress   string `long:"progress" description:"Estimate verification progress of a chain tip, given as <height>:<txcount>:<unixtime>"`
	Seeds      bool   `long:"seeds" description:"List the fixed seed addresses"`
	Dump       bool   `long:"dump" description:"Dump all network parameters"`

	network chaincfg.NetworkID
}

// networkID returns the network selected by the network flags.  At most one
// of them may be set; none selects the main network.
func (cfg *config) networkID() (chaincfg.NetworkID, error) {
	numNets := 0
	id := chaincfg.NetMain
	if cfg.TestNet {
		numNets++
		id = chaincfg.NetTest
	}
	if cfg.RegTest {
		numNets++
		id = chaincfg.NetRegtest
	}
	if cfg.UnitTest {
		numNets++
		id = chaincfg.NetUnitTest
	}
	if numNets > 1 {
		return 0, errors.New("the testnet, regtest and unittest params " +
			"can't be used together -- choose one of the three")
	}
	return id, nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func loadConfig(args []string) (*config, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		return nil, err
	}

	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		// A missing default config file is fine.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) || preCfg.ConfigFile != defaultConfigFile {
			return nil, fmt.Errorf("error parsing config file: %v", err)
		}
	}

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	cfg.network, err = cfg.networkID()
	if err != nil {
		return nil, err
	}

	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, err
	}
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, cfg.network.String(),
			defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// parseCheckpointArg parses a <height>:<hash> pair.
func parseCheckpointArg(arg string) (int32, *chainhash.Hash, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("malformed checkpoint %q, want "+
			"<height>:<hash>", arg)
	}
	height, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil || height < 0 {
		return 0, nil, fmt.Errorf("malformed checkpoint height %q", parts[0])
	}
	hash, err := chainhash.NewHashFromStr(parts[1])
	if err != nil {
		return 0, nil, fmt.Errorf("malformed checkpoint hash %q: %v",
			parts[1], err)
	}
	return int32(height), hash, nil
}

// parseProgressArg parses a <height>:<txcount>:<unixtime> chain tip.
func parseProgressArg(arg string) (chaincfg.ChainTip, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return chaincfg.ChainTip{}, fmt.Errorf("malformed chain tip %q, "+
			"want <height>:<txcount>:<unixtime>", arg)
	}
	height, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil || height < 0 {
		return chaincfg.ChainTip{}, fmt.Errorf("malformed height %q", parts[0])
	}
	txns, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return chaincfg.ChainTip{}, fmt.Errorf("malformed tx count %q", parts[1])
	}
	unix, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return chaincfg.ChainTip{}, fmt.Errorf("malformed time %q", parts[2])
	}
	return chaincfg.ChainTip{
		Height:    int32(height),
		TotalTxns: txns,
		Timestamp: time.Unix(unix, 0),
	}, nil
}
