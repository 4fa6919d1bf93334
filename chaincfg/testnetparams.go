// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// testNetGenesisHash is the hash of the test network genesis block.
var testNetGenesisHash = newHashFromStr("ae2e87a478019f62ea7ca5926ff6b17a" +
	"04728446a61afa01736578cc1643738c")

// testNetCheckpoints only pins the test network genesis block.
var testNetCheckpoints = mustCheckpointTable(&CheckpointData{
	Checkpoints:                []Checkpoint{{Height: 0, Hash: testNetGenesisHash}},
	LastCheckpointTime:         time.Unix(1553367419, 0),
	TransactionsLastCheckpoint: 0,
	TransactionsPerDay:         250,
})

// testNetOverrides applies the test network values on top of the main network
// defaults.
func testNetOverrides(p *Params) {
	p.ID = NetTest
	p.Name = NetTest.String()
	p.Net = wire.BitcoinNet(0x14754434)
	p.DefaultPort = "55600"
	p.AlertPubKey = hexDecode("043c47d222b60d18aa2f7dc790fb9486fdeb48c8ec82" +
		"ba92484080ac2c0ccd9475e2d0d5cb8015fbb9bef36514c64337a9bf6bd1fba784" +
		"2ffe0e699a7f991aa1be")
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.Genesis.Timestamp = time.Unix(1553367419, 0)
	p.Genesis.Nonce = 5688368
	p.Genesis.ExpectedHash = testNetGenesisHash

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.TargetTimespan = time.Minute
	p.TargetTimePerBlock = 90 * time.Second
	p.LastPoWBlock = 262800
	p.CoinbaseMaturity = 15
	p.ModifierUpdateBlock = 51197
	p.MaxMoneyOut = 100000000 * btcutil.SatoshiPerBitcoin

	p.Checkpoints = testNetCheckpoints

	p.PubKeyHashAddrID = 84
	p.ScriptHashAddrID = 19
	p.PrivateKeyID = 195
	p.HDPublicKeyID = [4]byte{0xb2, 0x21, 0x14, 0x11}
	p.HDPrivateKeyID = [4]byte{0x42, 0x31, 0x59, 0x21}
	p.HDCoinType = 0x42221301

	p.RequireRPCPassword = true
	p.MiningRequiresPeers = true
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.PoolMaxTransactions = 2
	p.SporkPubKey = "049e53e687fdafd78fd42d730fad0e7ea1819396176a2cb85d7a76" +
		"fa4559cdbd2c2f05330a6f5cbadb44a6c1d324f167e679e9f3e95d9d5649761a3e" +
		"7f59bf4500"
	p.PoolDummyAddress = "bADWWVV4XPDfe6xNB7vrd9oGqNAFcrtqd8"
	p.StartMasternodePayments = time.Unix(1562531573, 0)
}

// testNetDefaults returns the flat parameter set of the test network.
func testNetDefaults() Params {
	p := mainNetDefaults()
	testNetOverrides(&p)
	return p
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = mustNewParams(testNetDefaults())
