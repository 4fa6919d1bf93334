// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// otherHash returns a hash that differs from h.
func otherHash(h *chainhash.Hash) *chainhash.Hash {
	other := *h
	other[0] ^= 0xff
	return &other
}

func TestCheckpointLookups(t *testing.T) {
	table := MainNetParams.Checkpoints
	cps := table.Checkpoints()
	require.Equal(t, 35, table.Len())
	require.Len(t, cps, 35)

	for _, cp := range cps {
		hash, ok := table.HashAt(cp.Height)
		require.True(t, ok, "height %d", cp.Height)
		require.Equal(t, cp.Hash, hash)

		require.True(t, table.IsValidBlock(cp.Height, cp.Hash), "height %d", cp.Height)
		require.False(t, table.IsValidBlock(cp.Height, otherHash(cp.Hash)), "height %d", cp.Height)
		require.False(t, table.IsValidBlock(cp.Height, nil), "height %d", cp.Height)
	}

	// Heights without a checkpoint accept any hash.
	anyHash := &chainhash.Hash{0x01}
	for _, height := range []int32{16, 999, 1001, 8401, 13199, 13201, 1000000} {
		_, ok := table.HashAt(height)
		require.False(t, ok, "height %d", height)
		require.True(t, table.IsValidBlock(height, anyHash), "height %d", height)
	}

	require.Equal(t, int32(13200), table.GuardsAgainstReorgBelow())
	require.Equal(t, int32(13200), table.TotalBlocksEstimate())
	require.Equal(t, int32(13200), table.LastCheckpoint().Height)
	require.Equal(t, time.Unix(1553367420, 0), table.LastCheckpointTime())
	require.Zero(t, table.TransactionsLastCheckpoint())
	require.Equal(t, float64(750), table.TransactionsPerDay())

	for _, p := range []*Params{TestNetParams, RegressionNetParams} {
		require.Equal(t, int32(0), p.Checkpoints.GuardsAgainstReorgBelow(), p.Name)
		require.True(t, p.Checkpoints.IsValidBlock(0, p.GenesisHash), p.Name)
		require.False(t, p.Checkpoints.IsValidBlock(0, MainNetParams.GenesisHash), p.Name)
	}
}

func TestCheckpointsCopy(t *testing.T) {
	table := MainNetParams.Checkpoints
	cps := table.Checkpoints()
	cps[0].Hash[0] ^= 0xff
	cps[1].Height = 99

	require.True(t, table.IsValidBlock(0, MainNetParams.GenesisHash))
	hash, ok := table.HashAt(0)
	require.True(t, ok)
	hash[0] ^= 0xff
	require.True(t, table.IsValidBlock(0, MainNetParams.GenesisHash))
	require.Equal(t, int32(1), table.Checkpoints()[1].Height)
}

func TestNextCheckpoint(t *testing.T) {
	table := MainNetParams.Checkpoints
	tests := []struct {
		height int32
		want   int32 // -1 when there is no next checkpoint
	}{
		{-1, 0},
		{0, 1},
		{14, 15},
		{15, 1000},
		{999, 1000},
		{1000, 2000},
		{8000, 8400},
		{13199, 13200},
		{13200, -1},
		{50000, -1},
	}

	for _, test := range tests {
		next := table.NextCheckpoint(test.height)
		if test.want == -1 {
			require.Nil(t, next, "height %d", test.height)
			continue
		}
		require.NotNil(t, next, "height %d", test.height)
		require.Equal(t, test.want, next.Height, "height %d", test.height)
	}
}

func TestLastKnownCheckpoint(t *testing.T) {
	table := MainNetParams.Checkpoints
	known := make(map[chainhash.Hash]struct{})
	for _, cp := range table.Checkpoints() {
		if cp.Height <= 5000 {
			known[*cp.Hash] = struct{}{}
		}
	}
	have := func(h *chainhash.Hash) bool {
		_, ok := known[*h]
		return ok
	}

	cp := table.LastKnownCheckpoint(have)
	require.NotNil(t, cp)
	require.Equal(t, int32(5000), cp.Height)

	none := func(*chainhash.Hash) bool { return false }
	require.Nil(t, table.LastKnownCheckpoint(none))
}

func TestNewCheckpointTableErrors(t *testing.T) {
	h := &chainhash.Hash{0x01}
	tests := []struct {
		name string
		cps  []Checkpoint
	}{
		{"unordered", []Checkpoint{{10, h}, {5, h}}},
		{"duplicate", []Checkpoint{{5, h}, {5, h}}},
		{"negative", []Checkpoint{{-1, h}}},
		{"missing hash", []Checkpoint{{0, h}, {1, nil}}},
	}

	for _, test := range tests {
		_, err := NewCheckpointTable(&CheckpointData{Checkpoints: test.cps})
		require.True(t, IsErrorCode(err, ErrBadCheckpoints), "%s: %v", test.name, err)
	}

	require.Panics(t, func() {
		mustCheckpointTable(&CheckpointData{Checkpoints: tests[0].cps})
	})
}

func TestEmptyCheckpointTable(t *testing.T) {
	table, err := NewCheckpointTable(&CheckpointData{})
	require.NoError(t, err)

	require.Zero(t, table.Len())
	require.Equal(t, int32(-1), table.GuardsAgainstReorgBelow())
	require.Zero(t, table.TotalBlocksEstimate())
	require.Nil(t, table.LastCheckpoint())
	require.Nil(t, table.NextCheckpoint(0))
	require.True(t, table.IsValidBlock(0, &chainhash.Hash{}))
}

func TestVerificationProgress(t *testing.T) {
	lastTime := time.Unix(1600000000, 0)
	day := 24 * time.Hour
	table, err := NewCheckpointTable(&CheckpointData{
		Checkpoints:                []Checkpoint{{Height: 100, Hash: &chainhash.Hash{0x01}}},
		LastCheckpointTime:         lastTime,
		TransactionsLastCheckpoint: 1000,
		TransactionsPerDay:         100,
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		tip  ChainTip
		now  time.Time
		want float64
	}{
		{
			// 500 cheap done, 500 cheap and 100*5 expensive left.
			name: "before last checkpoint",
			tip:  ChainTip{Height: 50, TotalTxns: 500, Timestamp: lastTime.Add(-day)},
			now:  lastTime.Add(day),
			want: 500.0 / 1500.0,
		},
		{
			// 1000 cheap and 500*5 expensive done, 2*100*5 left.
			name: "after last checkpoint",
			tip:  ChainTip{Height: 150, TotalTxns: 1500, Timestamp: lastTime.Add(day)},
			now:  lastTime.Add(3 * day),
			want: 3500.0 / 4500.0,
		},
		{
			name: "tip is current",
			tip:  ChainTip{Height: 200, TotalTxns: 2000, Timestamp: lastTime.Add(day)},
			now:  lastTime.Add(day),
			want: 1,
		},
		{
			name: "tip from the future",
			tip:  ChainTip{Height: 200, TotalTxns: 2000, Timestamp: lastTime.Add(2 * day)},
			now:  lastTime.Add(day),
			want: 1,
		},
		{
			// No transaction count: 51 blocks stand in for 51 txns.
			name: "height fallback",
			tip:  ChainTip{Height: 50, Timestamp: lastTime.Add(-day)},
			now:  lastTime,
			want: 51.0 / 1000.0,
		},
	}

	for _, test := range tests {
		got := table.VerificationProgress(test.tip, test.now)
		require.InDelta(t, test.want, got, 1e-9, test.name)
	}

	// Progress on the main network right after genesis is tiny but valid.
	genesis := MainNetParams.GenesisBlock.Header.Timestamp
	got := MainNetParams.Checkpoints.VerificationProgress(
		ChainTip{Height: 0, TotalTxns: 1, Timestamp: genesis},
		genesis.Add(30*day))
	require.True(t, got > 0 && got < 0.01, "progress %v", got)
}
