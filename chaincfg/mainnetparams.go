// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// mainNetAlertKey signs network alerts and receives the genesis output.
const mainNetAlertKey = "04e9e460859546e1018f555aec03a9e84aca0934ef22677528e" +
	"424d0ed17173e97b5e2a0e9ed66729c5484b334adf7d5a05d15fddf0a825c25088ef" +
	"a136e740e45"

// mainNetCheckpoints are the trusted blocks of the main network.  The unit
// test network uses the same table.
var mainNetCheckpoints = mustCheckpointTable(&CheckpointData{
	Checkpoints: []Checkpoint{
		checkpoint(0, "000006401f2c8c99028f6ad458d737c48c26b0440c99ca86e3daa4207623b165"),
		checkpoint(1, "000001e51faf70c6593e02db76173e734c7a8d8fa94ddd35ea30999a8d9ca0c3"),
		checkpoint(2, "000001c116688ede2fc603a7b7192e8f51aa3b8d6e3a335a789776a68b2d3e6d"),
		checkpoint(3, "0000069ee24c16cf55bfdaf4e292c0f2d3af342532761dee043d1f3490c47241"),
		checkpoint(4, "00000b30c6c7218b292330e4071dac5bd0c346d4abe066cf46d8701ab92a1298"),
		checkpoint(5, "000004f5a0d9699fdf83df7946e179e1dd4d841bc5347bda375080c47e41ac7a"),
		checkpoint(6, "00000c90132b8e423115abe92f403609527db557a3110a7e8016a63b03dabb4d"),
		checkpoint(7, "00000158644392c5eec183775ab13fafd66f1823b4989bf4db06c98edc4c1036"),
		checkpoint(8, "000000cc151620849fcd992147095b7efff641341cf3da65de532e2ebfa9b2fd"),
		checkpoint(9, "00000ea7c42f0028c864d31557f4b23e1d64d06db1bba1736e6f834998ded9f9"),
		checkpoint(10, "00000da2fc7c01ce0097796f6987763799d81de2a5b1b0a1a83c897e5f9a5c08"),
		checkpoint(11, "000000eafdf1ca984d7ea1f34102778b02a40d0d2b28d86555b2fea516138a3f"),
		checkpoint(12, "000002776b72ccaedc901770079751d0604109af891f7e11b2fcba04a88e9d47"),
		checkpoint(13, "000000fe8712c00771b420f229d4622055360858bfe4a77676d2b5ca2349ae3b"),
		checkpoint(14, "000006145c395185b3f55fe864eaf5fcb3913348172708346395792459fb9290"),
		checkpoint(15, "00000787555c2658b815524b901c10d5aaa2ece5370383f793e22a45320202ea"),
		checkpoint(1000, "000000000005b8c4f36ceaeafac53bb847daa232a7a0f7ea9828c8d9cdb3e04f"),
		checkpoint(2000, "000000000004bf85c0521379afb20e67fee1e3deadc681b6e7e581c649d375cf"),
		checkpoint(3000, "000000000001c4f2e8b41e11ec7d0059e28bd1f166f4b7017bbdd31cdde52d7a"),
		checkpoint(4000, "00000000000b6f576e5a50ae408aa53a2897ad9e212efb63aac777cb034b3eca"),
		checkpoint(5000, "00000000000147e28a7dc74e5b10ca2439396ddc31adf0ad13c2c632fd0edef7"),
		checkpoint(6000, "00000000000093c13f82684422508d7d40db4c16755c178edf212f9b394f1bc3"),
		checkpoint(7000, "0000000000021a7044e06e5cccaca5e4c291ba23f613938dc486b80fbcd4e12d"),
		checkpoint(8000, "0000000000155d652ea011bfd2d4c98b1f43cb6b3e1410b535c8c3444d41efba"),
		checkpoint(8400, "00000000000962ea55764ef5a6db6752f8ee89993cab78c48b66afe486a424f8"),
		checkpoint(9000, "0000000000059271314d4d8fa5b18a28c801fe979f5d27c401f919d2a0399197"),
		checkpoint(9500, "000000000001f72066c61bb17e52df9898f989c7eb9e0efe2a8c231412a077f2"),
		checkpoint(10000, "0000000000020981866020916e42eb2f8ec62579d53357d1014ecdc3522ae171"),
		checkpoint(10500, "000000000008535058f42111ee4a54af8834cec4d324fd0c1cc71c938a78d358"),
		checkpoint(11000, "000000000009a359b15f275cc706170de2b57248e11cd0c6809e4e3c24a13298"),
		checkpoint(11500, "00000000000729d202f6664180e93db1c072196c06ea8dc53bf11fe0a054f265"),
		checkpoint(12000, "00000000000bade780d61380311b01042cf2cf61bc4f160fcc5a96064b038e65"),
		checkpoint(12500, "00000000001418559e2ae6c68c1ad5bfe0e2dd65ea6ada9d98fab757e85feb28"),
		checkpoint(13000, "000000000003b7d5ccad187a01bdcfd1d7644a471e41594a5bd444ad94b936ec"),
		checkpoint(13200, "000000000f85f75705640dba7af4a071d992795ee7611d4d2694a8d1114ef5d7"),
	},
	LastCheckpointTime:         time.Unix(1553367420, 0),
	TransactionsLastCheckpoint: 0,
	TransactionsPerDay:         750,
})

// mainNetDefaults returns the complete parameter set of the main network.  All
// other networks derive from it.
func mainNetDefaults() Params {
	return Params{
		ID:          NetMain,
		Name:        NetMain.String(),
		Net:         wire.BitcoinNet(0x2735abaa),
		DefaultPort: "40444",
		AlertPubKey: hexDecode(mainNetAlertKey),
		DNSSeeds: []DNSSeed{
			{"seed1.zarbitcoin.net", "51.75.162.95"},
			{"seed2.zarbitcoin.net", "51.75.162.92"},
			{"seed3.zarbitcoin.net", "51.75.170.189"},
			{"seed5.zarbitcoin.net", "51.38.71.12"},
		},
		FixedSeeds: mainNetSeeds,

		Genesis: GenesisSpec{
			Version:         1,
			Timestamp:       time.Unix(1553367420, 0),
			Bits:            0x1e0ffff0,
			Nonce:           5688368,
			CoinbaseMessage: "This is genesis block for Zarcash network 20190322 Relaunch",
			PayoutScript:    mustPayToPubKey(mainNetAlertKey),
			Reward:          0,
			ExpectedHash: newHashFromStr("000006401f2c8c99028f6ad458d737c4" +
				"8c26b0440c99ca86e3daa4207623b165"),
			ExpectedMerkleRoot: newHashFromStr("1fba8dfabca6f444063c3739ed0b21ce" +
				"31085468b219dfc79d22c1070daa1252"),
		},

		// Starting difficulty is 1 / 2^12.
		PowLimit:                 mainPowLimit,
		PowLimitBits:             0x1e0fffff,
		SubsidyReductionInterval: 500000,
		TargetTimespan:           time.Minute,
		TargetTimePerBlock:       90 * time.Second,
		MaxReorganizationDepth:   100,

		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,

		MinerThreads:              0,
		LastPoWBlock:              15200,
		CoinbaseMaturity:          90,
		ModifierUpdateBlock:       1,
		MaxMoneyOut:               2946796875 * btcutil.SatoshiPerBitcoin,
		MasternodeCountDrift:      20,
		MasternodeCollateralLimit: 5000000,

		Checkpoints: mainNetCheckpoints,

		PubKeyHashAddrID: 80,  // starts with Z
		ScriptHashAddrID: 83,  // starts with a
		PrivateKeyID:     212, // starts with A
		HDPublicKeyID:    [4]byte{0x01, 0x1d, 0x22, 0x34},
		HDPrivateKeyID:   [4]byte{0x03, 0x22, 0x21, 0x1b},
		HDCoinType:       0x40100067,

		RequireRPCPassword:            true,
		MiningRequiresPeers:           true,
		AllowMinDifficultyBlocks:      false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		PoolMaxTransactions: 3,
		SporkPubKey: "04cd66b21f8273bf8c6ddd2b97fe5f830271637ceb82bc6269b010" +
			"fef7090aa05657b78178f3605c11abd8567dbca949012e864a5132b355dcfa4d" +
			"33346eaeee1f",
		PoolDummyAddress:        "ZJNjrGEVYg1LwoLKgsBpZaquXa1KtRaurr",
		StartMasternodePayments: time.Unix(1524781746, 0),
	}
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = mustNewParams(mainNetDefaults())
