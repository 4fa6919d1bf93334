// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// zarparams selects a zarcash network and reports its parameters, checks
// blocks against its checkpoints and estimates verification progress.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/zarcash/zarcashd/chaincfg"
)

// writeSummary writes the main parameters of a network to w.
func writeSummary(w io.Writer, p *chaincfg.Params) {
	start := p.MessageStart()
	fmt.Fprintf(w, "network:          %s\n", p.Name)
	fmt.Fprintf(w, "magic:            %x\n", start[:])
	fmt.Fprintf(w, "default port:     %s\n", p.DefaultPort)
	fmt.Fprintf(w, "genesis hash:     %v\n", p.GenesisHash)
	fmt.Fprintf(w, "genesis merkle:   %v\n", p.GenesisMerkleRoot)
	fmt.Fprintf(w, "last pow block:   %d\n", p.LastPoWBlock)
	fmt.Fprintf(w, "max money:        %v\n", p.MaxMoneyOut)
	if cp := p.Checkpoints.LastCheckpoint(); cp != nil {
		fmt.Fprintf(w, "last checkpoint:  %d %v\n", cp.Height, cp.Hash)
	}
	fmt.Fprintf(w, "reorg guard:      %d\n", p.Checkpoints.GuardsAgainstReorgBelow())
	fmt.Fprintf(w, "dns seeds:        %d\n", len(p.DNSSeeds))
	fmt.Fprintf(w, "fixed seeds:      %d\n", len(p.SeedAddrs))
}

// writeSeeds lists the expanded fixed seed addresses of a network.
func writeSeeds(w io.Writer, p *chaincfg.Params) {
	for _, seed := range p.DNSSeeds {
		fmt.Fprintf(w, "dns   %s (%s)\n", seed, seed.FallbackIP)
	}
	for _, addr := range p.SeedAddrs {
		fmt.Fprintf(w, "fixed %s:%d last seen %v\n", addr.IP, addr.Port,
			addr.Timestamp.UTC())
	}
}

// checkBlock reports whether a <height>:<hash> pair agrees with the
// checkpoints of the network.
func checkBlock(w io.Writer, p *chaincfg.Params, arg string) (bool, error) {
	height, hash, err := parseCheckpointArg(arg)
	if err != nil {
		return false, err
	}

	valid := p.Checkpoints.IsValidBlock(height, hash)
	want, checkpointed := p.Checkpoints.HashAt(height)
	switch {
	case !checkpointed:
		fmt.Fprintf(w, "height %d is not checkpointed\n", height)
	case valid:
		fmt.Fprintf(w, "block %v matches the checkpoint at height %d\n",
			hash, height)
	default:
		fmt.Fprintf(w, "block %v conflicts with checkpoint %v at "+
			"height %d\n", hash, want, height)
	}
	if height <= p.Checkpoints.GuardsAgainstReorgBelow() {
		fmt.Fprintf(w, "height %d is protected from reorganization\n",
			height)
	}
	return valid, nil
}

// zarparamsMain is the real main function for zarparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func zarparamsMain(args []string) error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	params, err := chaincfg.Select(cfg.network)
	if err != nil {
		log.Criticalf("Unable to select network: %v", err)
		return err
	}
	log.Infof("Using %s network parameters", params.Name)

	writeSummary(os.Stdout, params)

	if cfg.Checkpoint != "" {
		valid, err := checkBlock(os.Stdout, params, cfg.Checkpoint)
		if err != nil {
			return err
		}
		if !valid {
			log.Warnf("Block %s rejected by checkpoints", cfg.Checkpoint)
		}
	}

	if cfg.Progress != "" {
		tip, err := parseProgressArg(cfg.Progress)
		if err != nil {
			return err
		}
		progress := params.Checkpoints.VerificationProgress(tip, time.Now())
		fmt.Printf("verification progress: %.4f%%\n", progress*100)
	}

	if cfg.Seeds {
		writeSeeds(os.Stdout, params)
	}

	if cfg.Dump {
		spew.Fdump(os.Stdout, params)
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := zarparamsMain(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
