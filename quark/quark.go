// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package quark implements the Quark chained hash used for proof-of-work
// block header hashing.
//
// Quark runs nine rounds of 512-bit hash functions.  Three of the rounds pick
// between two functions depending on bit 3 of the first byte of the previous
// round's output.  The final digest is the first 32 bytes of the last round.
package quark

import (
	"bytes"
	"hash"

	"github.com/bitbandi/go-x11/blake"
	"github.com/bitbandi/go-x11/bmw"
	"github.com/bitbandi/go-x11/groest"
	x11hash "github.com/bitbandi/go-x11/hash"
	"github.com/bitbandi/go-x11/jhash"
	"github.com/bitbandi/go-x11/skein"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/sha3"
)

// stateSize is the output size of every round.
const stateSize = 64

// branchMask selects the bit of the first state byte that decides the
// conditional rounds.
const branchMask = 0x08

// round hashes src into dst.  dst must be stateSize bytes.
type round func(dst, src []byte)

// x11Round adapts one of the sph-style digests to a round.  The digest is
// reset by Close so it can be reused for the next call.
func x11Round(d x11hash.Digest) round {
	return func(dst, src []byte) {
		d.Write(src)
		// Close only fails when dst is shorter than the digest size.
		_ = d.Close(dst, 0, 0)
	}
}

// stdRound adapts a standard library style hash to a round.
func stdRound(h hash.Hash) round {
	return func(dst, src []byte) {
		h.Reset()
		h.Write(src)
		h.Sum(dst[:0])
	}
}

// Hasher holds the digest state needed to compute Quark hashes.  A Hasher is
// not safe for concurrent use; use one per goroutine or the package level
// Sum256 function.
type Hasher struct {
	a, b [stateSize]byte

	blake   round
	bmw     round
	groestl round
	jh      round
	keccak  round
	skein   round
}

// New returns a Hasher ready for use.
func New() *Hasher {
	return &Hasher{
		blake:   x11Round(blake.New()),
		bmw:     x11Round(bmw.New()),
		groestl: x11Round(groest.New()),
		jh:      x11Round(jhash.New()),
		keccak:  stdRound(sha3.NewLegacyKeccak512()),
		skein:   x11Round(skein.New()),
	}
}

// choose returns ifSet when the branch bit of state is set and ifClear
// otherwise.
func choose(state []byte, ifSet, ifClear round) round {
	if state[0]&branchMask != 0 {
		return ifSet
	}
	return ifClear
}

// Sum256 computes the Quark digest of data.
func (q *Hasher) Sum256(data []byte) [32]byte {
	a, b := q.a[:], q.b[:]

	q.blake(a, data)
	q.bmw(b, a)
	choose(b, q.groestl, q.skein)(a, b)
	q.groestl(b, a)
	q.jh(a, b)
	choose(a, q.blake, q.bmw)(b, a)
	q.keccak(a, b)
	q.skein(b, a)
	choose(b, q.keccak, q.jh)(a, b)

	var out [32]byte
	copy(out[:], a)
	return out
}

// Sum256 computes the Quark digest of data with a fresh Hasher.
func Sum256(data []byte) [32]byte {
	return New().Sum256(data)
}

// BlockHash returns the Quark proof-of-work hash of the serialized block
// header.
func BlockHash(header *wire.BlockHeader) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)

	// Serializing into a bytes.Buffer can't fail.
	_ = header.Serialize(&buf)
	return chainhash.Hash(Sum256(buf.Bytes()))
}
