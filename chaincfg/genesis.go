// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/zarcash/zarcashd/quark"
)

// genesisCoinbaseBits is the value pushed first in every genesis coinbase
// signature script.
const genesisCoinbaseBits = 486604799

// GenesisSpec holds the fixed inputs a network's genesis block is built from
// and the hashes the resulting block must have.
type GenesisSpec struct {
	// Version is the block header version.
	Version int32

	// Timestamp, Bits and Nonce go into the block header as is.
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32

	// CoinbaseMessage is embedded in the coinbase signature script.
	CoinbaseMessage string

	// PayoutScript is the public key script of the only coinbase output.
	PayoutScript []byte

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount

	// ExpectedHash and ExpectedMerkleRoot are the hashes the built block
	// must produce.
	ExpectedHash       *chainhash.Hash
	ExpectedMerkleRoot *chainhash.Hash
}

// GenesisBuilder constructs the genesis block described by a GenesisSpec and
// returns it along with its block hash and merkle root.
type GenesisBuilder interface {
	BuildGenesis(spec *GenesisSpec) (*wire.MsgBlock, chainhash.Hash, chainhash.Hash, error)
}

// QuarkGenesisBuilder builds genesis blocks whose header hash is the Quark
// proof-of-work hash.
type QuarkGenesisBuilder struct{}

// BuildGenesis builds the single transaction genesis block for spec.
func (QuarkGenesisBuilder) BuildGenesis(spec *GenesisSpec) (*wire.MsgBlock,
	chainhash.Hash, chainhash.Hash, error) {

	coinbase, err := genesisCoinbase(spec)
	if err != nil {
		return nil, chainhash.Hash{}, chainhash.Hash{}, err
	}

	txns := []*wire.MsgTx{coinbase}
	merkleRoot := calcMerkleRoot(txns)
	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    spec.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  spec.Timestamp,
			Bits:       spec.Bits,
			Nonce:      spec.Nonce,
		},
		Transactions: txns,
	}

	return block, quark.BlockHash(&block.Header), merkleRoot, nil
}

// genesisCoinbase returns the coinbase transaction of the genesis block.
func genesisCoinbase(spec *GenesisSpec) (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		// A raw single byte push of 4.  AddData would encode it as OP_4.
		AddOps([]byte{txscript.OP_DATA_1, 0x04}).
		AddData([]byte(spec.CoinbaseMessage)).
		Script()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(&wire.TxOut{
		Value:    int64(spec.Reward),
		PkScript: spec.PayoutScript,
	})
	return tx, nil
}

// calcMerkleRoot returns the merkle root of the transactions, duplicating the
// last hash of a level with an odd number of entries.
func calcMerkleRoot(txns []*wire.MsgTx) chainhash.Hash {
	if len(txns) == 0 {
		return chainhash.Hash{}
	}

	level := make([]chainhash.Hash, len(txns))
	for i, tx := range txns {
		level[i] = tx.TxHash()
	}

	var buf [chainhash.HashSize * 2]byte
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			copy(buf[:chainhash.HashSize], level[i][:])
			copy(buf[chainhash.HashSize:], level[i+1][:])
			next = append(next, chainhash.DoubleHashH(buf[:]))
		}
		level = next
	}
	return level[0]
}

// checkGenesis compares the built hashes with the ones declared in spec.
func checkGenesis(network string, spec *GenesisSpec, hash,
	merkleRoot chainhash.Hash) error {

	if spec.ExpectedMerkleRoot != nil && !spec.ExpectedMerkleRoot.IsEqual(&merkleRoot) {
		return &GenesisMismatchError{
			Network: network,
			Field:   "merkle root",
			Got:     merkleRoot,
			Want:    *spec.ExpectedMerkleRoot,
		}
	}
	if spec.ExpectedHash != nil && !spec.ExpectedHash.IsEqual(&hash) {
		return &GenesisMismatchError{
			Network: network,
			Field:   "block hash",
			Got:     hash,
			Want:    *spec.ExpectedHash,
		}
	}
	return nil
}

// payToPubKeyScript returns a script paying to the hex encoded public key.
func payToPubKeyScript(pubKeyHex string) ([]byte, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, err
	}
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}
