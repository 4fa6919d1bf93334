// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigCheckVerificationFactor is how many times more work verifying a
// transaction after the last checkpoint is assumed to take than verifying one
// before it, where signature checks are skipped.
const sigCheckVerificationFactor = 5.0

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData is the compiled-in checkpoint description of a network.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the newest checkpointed block.
	LastCheckpointTime time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the newest checkpoint.
	TransactionsLastCheckpoint uint64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the newest checkpoint.
	TransactionsPerDay float64
}

// ChainTip describes the tip of a chain whose verification progress is being
// estimated.
type ChainTip struct {
	Height    int32
	TotalTxns uint64
	Timestamp time.Time
}

// CheckpointTable is an immutable height to hash mapping of trusted blocks
// together with the metadata used to estimate sync progress.  It is safe for
// concurrent use.
type CheckpointTable struct {
	checkpoints []Checkpoint
	byHeight    map[int32]*chainhash.Hash

	lastCheckpointTime         time.Time
	transactionsLastCheckpoint uint64
	transactionsPerDay         float64
}

// NewCheckpointTable validates the checkpoint data and returns a lookup table
// for it.  The checkpoints must be ordered by strictly increasing,
// non-negative height and every one of them must carry a hash.
func NewCheckpointTable(data *CheckpointData) (*CheckpointTable, error) {
	t := &CheckpointTable{
		checkpoints:                make([]Checkpoint, len(data.Checkpoints)),
		byHeight:                   make(map[int32]*chainhash.Hash, len(data.Checkpoints)),
		lastCheckpointTime:         data.LastCheckpointTime,
		transactionsLastCheckpoint: data.TransactionsLastCheckpoint,
		transactionsPerDay:         data.TransactionsPerDay,
	}

	prevHeight := int32(-1)
	for i, cp := range data.Checkpoints {
		if cp.Hash == nil {
			str := fmt.Sprintf("checkpoint at height %d has no hash",
				cp.Height)
			return nil, paramsError(ErrBadCheckpoints, str)
		}
		if cp.Height <= prevHeight {
			str := fmt.Sprintf("checkpoint at height %d does not follow "+
				"height %d", cp.Height, prevHeight)
			return nil, paramsError(ErrBadCheckpoints, str)
		}
		prevHeight = cp.Height

		hash := *cp.Hash
		t.checkpoints[i] = Checkpoint{Height: cp.Height, Hash: &hash}
		t.byHeight[cp.Height] = &hash
	}

	return t, nil
}

// mustCheckpointTable performs the same function as NewCheckpointTable except
// it panics on invalid data.  It is only called with the compiled-in
// checkpoints of the default networks.
func mustCheckpointTable(data *CheckpointData) *CheckpointTable {
	t, err := NewCheckpointTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

// HashAt returns the checkpointed hash at the given height.  The boolean is
// false when the height is not checkpointed, which is not an error.
func (t *CheckpointTable) HashAt(height int32) (*chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	if !ok {
		return nil, false
	}
	h := *hash
	return &h, true
}

// IsValidBlock returns false only when height is checkpointed and the
// checkpoint disagrees with hash.
func (t *CheckpointTable) IsValidBlock(height int32, hash *chainhash.Hash) bool {
	want, ok := t.byHeight[height]
	if !ok {
		return true
	}
	return hash != nil && want.IsEqual(hash)
}

// GuardsAgainstReorgBelow returns the height of the newest checkpoint.  No
// alternate branch may rewrite history at or below this height regardless of
// its work.  It returns -1 for an empty table.
func (t *CheckpointTable) GuardsAgainstReorgBelow() int32 {
	if len(t.checkpoints) == 0 {
		return -1
	}
	return t.checkpoints[len(t.checkpoints)-1].Height
}

// TotalBlocksEstimate returns the lower bound on the chain height implied by
// the checkpoints.
func (t *CheckpointTable) TotalBlocksEstimate() int32 {
	if len(t.checkpoints) == 0 {
		return 0
	}
	return t.GuardsAgainstReorgBelow()
}

// Len returns the number of checkpoints.
func (t *CheckpointTable) Len() int {
	return len(t.checkpoints)
}

// Checkpoints returns a copy of the checkpoints ordered from oldest to newest.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	cps := make([]Checkpoint, len(t.checkpoints))
	for i, cp := range t.checkpoints {
		hash := *cp.Hash
		cps[i] = Checkpoint{Height: cp.Height, Hash: &hash}
	}
	return cps
}

// LastCheckpoint returns the newest checkpoint or nil for an empty table.
func (t *CheckpointTable) LastCheckpoint() *Checkpoint {
	if len(t.checkpoints) == 0 {
		return nil
	}
	cp := t.checkpoints[len(t.checkpoints)-1]
	return &cp
}

// NextCheckpoint returns the first checkpoint after the passed height.  It
// returns nil when there is no checkpoint past height, e.g. when a node syncing
// headers has already passed the final checkpoint.
func (t *CheckpointTable) NextCheckpoint(height int32) *Checkpoint {
	if len(t.checkpoints) == 0 {
		return nil
	}

	// There is no next checkpoint if the height is already after the final
	// checkpoint.
	final := t.checkpoints[len(t.checkpoints)-1]
	if height >= final.Height {
		return nil
	}

	// Find the next checkpoint.
	next := final
	for i := len(t.checkpoints) - 2; i >= 0; i-- {
		if height >= t.checkpoints[i].Height {
			break
		}
		next = t.checkpoints[i]
	}
	return &next
}

// LastKnownCheckpoint returns the newest checkpoint whose block is already
// known according to have, typically a lookup into the block index.  It
// returns nil when none of the checkpointed blocks are known.
func (t *CheckpointTable) LastKnownCheckpoint(have func(*chainhash.Hash) bool) *Checkpoint {
	for i := len(t.checkpoints) - 1; i >= 0; i-- {
		cp := t.checkpoints[i]
		if have(cp.Hash) {
			return &cp
		}
	}
	return nil
}

// LastCheckpointTime returns the timestamp of the newest checkpointed block.
func (t *CheckpointTable) LastCheckpointTime() time.Time {
	return t.lastCheckpointTime
}

// TransactionsLastCheckpoint returns the number of transactions between
// genesis and the newest checkpoint.
func (t *CheckpointTable) TransactionsLastCheckpoint() uint64 {
	return t.transactionsLastCheckpoint
}

// TransactionsPerDay returns the estimated transaction rate after the newest
// checkpoint.
func (t *CheckpointTable) TransactionsPerDay() float64 {
	return t.transactionsPerDay
}

// VerificationProgress estimates the fraction of the chain, in [0, 1], that a
// node with the given tip has verified at time now.
//
// Work is counted as one unit per transaction up to the last checkpoint and
// sigCheckVerificationFactor units per transaction after it.  Transactions
// not yet seen are extrapolated from the per-day estimate.  When the tip
// carries no transaction count its height is used instead, since every block
// has at least its coinbase.  The result is advisory only.
func (t *CheckpointTable) VerificationProgress(tip ChainTip, now time.Time) float64 {
	txns := float64(tip.TotalTxns)
	if tip.TotalTxns == 0 && tip.Height >= 0 {
		txns = float64(tip.Height) + 1
	}
	lastTxns := float64(t.transactionsLastCheckpoint)

	var workBefore, workAfter float64
	if txns <= lastTxns {
		expensiveAfter := daysBetween(t.lastCheckpointTime, now) *
			t.transactionsPerDay
		workBefore = txns
		workAfter = lastTxns - txns +
			expensiveAfter*sigCheckVerificationFactor
	} else {
		expensiveBefore := txns - lastTxns
		expensiveAfter := daysBetween(tip.Timestamp, now) *
			t.transactionsPerDay
		workBefore = lastTxns + expensiveBefore*sigCheckVerificationFactor
		workAfter = expensiveAfter * sigCheckVerificationFactor
	}

	total := workBefore + workAfter
	if total <= 0 {
		if tip.Height >= t.GuardsAgainstReorgBelow() {
			return 1
		}
		return 0
	}

	progress := workBefore / total
	switch {
	case progress < 0:
		return 0
	case progress > 1:
		return 1
	}
	return progress
}

// daysBetween returns the non-negative number of days from start to end.
func daysBetween(start, end time.Time) float64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d.Hours() / 24
}
