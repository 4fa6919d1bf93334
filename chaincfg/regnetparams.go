// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// regNetGenesisHash is the hash of the regression test network genesis block.
var regNetGenesisHash = newHashFromStr("7062b0d0369f402b96606bc82daf9e74" +
	"24666bd18dafaef7d4d64d70c6b590f8")

var regNetCheckpoints = mustCheckpointTable(&CheckpointData{
	Checkpoints:                []Checkpoint{{Height: 0, Hash: regNetGenesisHash}},
	LastCheckpointTime:         time.Unix(1553367419, 0),
	TransactionsLastCheckpoint: 0,
	TransactionsPerDay:         100,
})

// regTestOverrides applies the regression test network values on top of the
// test network.
func regTestOverrides(p *Params) {
	p.ID = NetRegtest
	p.Name = NetRegtest.String()
	p.Net = wire.BitcoinNet(0x64955414)
	p.DefaultPort = "43444"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.SubsidyReductionInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetTimespan = 24 * time.Hour
	p.TargetTimePerBlock = time.Minute
	p.PowLimit = regressionPowLimit
	p.PowLimitBits = 0x207fffff

	p.Genesis.Timestamp = time.Unix(1509321603, 0)
	p.Genesis.Bits = 0x1e0ffff0
	p.Genesis.Nonce = 129915
	p.Genesis.ExpectedHash = regNetGenesisHash

	p.Checkpoints = regNetCheckpoints

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false
}

// regNetDefaults returns the flat parameter set of the regression test
// network.
func regNetDefaults() Params {
	p := testNetDefaults()
	regTestOverrides(&p)
	return p
}

// RegressionNetParams defines the network parameters for the regression test
// network.
var RegressionNetParams = mustNewParams(regNetDefaults())
