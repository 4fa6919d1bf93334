// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main, test and unit test networks.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// NetworkID identifies one of the supported network variants.
type NetworkID uint8

const (
	// NetMain is the production network.
	NetMain NetworkID = iota

	// NetTest is the public test network.
	NetTest

	// NetRegtest is the regression test network.
	NetRegtest

	// NetUnitTest is the network used by unit tests.  Its parameters can be
	// overridden through ModifiableParams.
	NetUnitTest
)

// networkNames maps each network to its name.  The names double as the
// values accepted by ParseNetworkID.
var networkNames = map[NetworkID]string{
	NetMain:     "main",
	NetTest:     "test",
	NetRegtest:  "regtest",
	NetUnitTest: "unittest",
}

// String returns the name of the network.
func (id NetworkID) String() string {
	if name, ok := networkNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", uint8(id))
}

// ParseNetworkID returns the network identified by name.
func ParseNetworkID(name string) (NetworkID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range networkNames {
		if n == name {
			return id, nil
		}
	}
	str := fmt.Sprintf("unknown network %q", name)
	return 0, paramsError(ErrUnknownNetwork, str)
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// FallbackIP is contacted when the host can't be resolved.
	FallbackIP string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be used by
// applications to differentiate networks as well as addresses and keys for one
// network from those intended for use on another network.
//
// The parameters of the default networks are built once when the package is
// initialized and must be treated as read-only.  Only the unit test network
// parameters change, through ModifiableParams.
type Params struct {
	// ID identifies the network variant.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// AlertPubKey is the serialized public key network alerts are signed
	// with.
	AlertPubKey []byte

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds is the compiled-in seed node table and SeedAddrs the
	// addresses expanded from it when the parameters were built.
	FixedSeeds []SeedSpec
	SeedAddrs  []*wire.NetAddress

	// Genesis holds the inputs the genesis block is built from.
	Genesis GenesisSpec

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// MaxReorganizationDepth is the maximum number of blocks a
	// reorganization may disconnect.
	MaxReorganizationDepth int32

	// Block version upgrade majorities.  EnforceBlockUpgradeMajority blocks
	// out of the last ToCheckBlockUpgradeMajority enforce new rules, and
	// RejectBlockOutdatedMajority blocks reject old versions.
	EnforceBlockUpgradeMajority int32
	RejectBlockOutdatedMajority int32
	ToCheckBlockUpgradeMajority int32

	// MinerThreads is the default number of mining threads.
	MinerThreads int

	// LastPoWBlock is the height of the last proof-of-work block.
	LastPoWBlock int32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// ModifierUpdateBlock is the height at which the stake modifier
	// calculation changes.
	ModifierUpdateBlock int32

	// MaxMoneyOut is the total money supply limit.
	MaxMoneyOut btcutil.Amount

	// Masternode thresholds.
	MasternodeCountDrift      int32
	MasternodeCollateralLimit int64

	// Checkpoints is the table of trusted blocks.
	Checkpoints *CheckpointTable

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	// Behavior flags.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// Obfuscation pool and spork settings.  SporkPubKey is kept hex encoded
	// as distributed.
	PoolMaxTransactions     int
	SporkPubKey             string
	PoolDummyAddress        string
	StartMasternodePayments time.Time
}

// MessageStart returns the magic bytes prefixing every peer-to-peer message
// on the network.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// AlertKey parses the network alert public key.
func (p *Params) AlertKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.AlertPubKey)
}

// DecodePoolDummyAddress decodes the pool dummy address and returns its
// public key hash.  The address must be a pay-to-pubkey-hash address of this
// network.
func (p *Params) DecodePoolDummyAddress() ([]byte, error) {
	hash, version, err := base58.CheckDecode(p.PoolDummyAddress)
	if err != nil {
		return nil, fmt.Errorf("pool dummy address %q: %w",
			p.PoolDummyAddress, err)
	}
	if version != p.PubKeyHashAddrID {
		return nil, fmt.Errorf("pool dummy address %q has version %d, "+
			"want %d", p.PoolDummyAddress, version, p.PubKeyHashAddrID)
	}
	return hash, nil
}

// IsProofOfWorkHeight returns whether blocks at height are still produced by
// proof of work.
func (p *Params) IsProofOfWorkHeight(height int32) bool {
	return height <= p.LastPoWBlock
}

// IsMasternodePaymentsActive returns whether masternode payments are enforced
// at time t.
func (p *Params) IsMasternodePaymentsActive(t time.Time) bool {
	return !t.Before(p.StartMasternodePayments)
}

// AllowsReorgDepth returns whether a reorganization disconnecting depth
// blocks is within the network limit.
func (p *Params) AllowsReorgDepth(depth int32) bool {
	return depth <= p.MaxReorganizationDepth
}

// newParams finalizes the flat parameter set p.  It builds the genesis block,
// checks it against the declared hashes and the height zero checkpoint, and
// expands the fixed seeds with now as the reference time.
func newParams(p Params, builder GenesisBuilder, now time.Time) (*Params, error) {
	block, hash, merkleRoot, err := builder.BuildGenesis(&p.Genesis)
	if err != nil {
		return nil, fmt.Errorf("%s genesis: %w", p.Name, err)
	}
	if err := checkGenesis(p.Name, &p.Genesis, hash, merkleRoot); err != nil {
		return nil, err
	}
	if p.Checkpoints != nil {
		if cp, ok := p.Checkpoints.HashAt(0); ok && !cp.IsEqual(&hash) {
			return nil, &GenesisMismatchError{
				Network: p.Name,
				Field:   "checkpoint 0",
				Got:     hash,
				Want:    *cp,
			}
		}
	}

	p.GenesisBlock = block
	p.GenesisHash = &hash
	p.GenesisMerkleRoot = &merkleRoot
	p.SeedAddrs = ExpandSeeds(p.FixedSeeds, now)

	return &p, nil
}

// mustNewParams performs the same function as newParams with the default
// genesis builder except it panics on an error.  A failure means the
// compiled-in constants are inconsistent, so it must stop the process before
// anything relies on them.
func mustNewParams(p Params) *Params {
	params, err := newParams(p, QuarkGenesisBuilder{}, time.Now())
	if err != nil {
		panic("invalid " + p.Name + " network parameters: " + err.Error())
	}
	return params
}

var (
	registeredNets    = make(map[wire.BitcoinNet]struct{})
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// Register registers the address and key magics of a network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}

	return RegisterHDKeyID(params.HDPublicKeyID[:], params.HDPrivateKeyID[:])
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// RegisterHDKeyID registers a public and private hierarchical deterministic
// extended key ID pair.  When the provided key IDs are invalid, the
// ErrInvalidHDKeyID error will be returned.
func RegisterHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	if len(hdPublicKeyID) != 4 || len(hdPrivateKeyID) != 4 {
		return ErrInvalidHDKeyID
	}

	var keyID [4]byte
	copy(keyID[:], hdPrivateKeyID)
	hdPrivToPubKeyIDs[keyID] = append([]byte(nil), hdPublicKeyID...)

	return nil
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes a hard-coded hex string, panicking on bad input for the
// same reason as newHashFromStr.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// mustPayToPubKey returns the pay-to-pubkey script for a hard-coded hex
// public key.
func mustPayToPubKey(pubKeyHex string) []byte {
	script, err := payToPubKeyScript(pubKeyHex)
	if err != nil {
		panic(err)
	}
	return script
}

// checkpoint is shorthand for a compiled-in checkpoint.
func checkpoint(height int32, hashStr string) Checkpoint {
	return Checkpoint{Height: height, Hash: newHashFromStr(hashStr)}
}

func init() {
	// Register the default networks when the package is initialized.  The
	// unit test network shares the main network magic and is left out.
	mustRegister(MainNetParams)
	mustRegister(TestNetParams)
	mustRegister(RegressionNetParams)
}
