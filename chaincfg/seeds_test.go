// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// requireInSeedWindow checks that ts lies strictly between two weeks and one
// week before now.
func requireInSeedWindow(t *testing.T, now, ts time.Time) {
	t.Helper()
	require.True(t, ts.After(now.Add(-2*seedAgeBase)), "%v too old for %v", ts, now)
	require.True(t, ts.Before(now.Add(-seedAgeBase)), "%v too new for %v", ts, now)
}

func TestExpandSeeds(t *testing.T) {
	now := time.Unix(1700000000, 999999999)
	addrs := ExpandSeeds(mainNetSeeds, now)
	require.Len(t, addrs, len(mainNetSeeds))

	wantIPs := []net.IP{
		net.IPv4(51, 75, 162, 95),
		net.IPv4(51, 75, 162, 92),
		net.IPv4(51, 75, 170, 189),
		net.IPv4(51, 38, 71, 12),
	}
	for i, addr := range addrs {
		require.True(t, wantIPs[i].Equal(addr.IP), "got %v", addr.IP)
		require.Equal(t, uint16(40444), addr.Port)
		require.Equal(t, wire.SFNodeNetwork, addr.Services)
		requireInSeedWindow(t, now, addr.Timestamp)
	}

	require.Nil(t, ExpandSeeds(nil, now))
}

func TestExpandSeedsWindowEdges(t *testing.T) {
	now := time.Unix(1700000000, 0)
	specs := []SeedSpec{ipv4Seed(10, 0, 0, 1, 1)}

	low := expandSeeds(specs, now, func(int64) int64 { return 0 })
	require.Equal(t, now.Add(-seedAgeBase-time.Second), low[0].Timestamp)
	requireInSeedWindow(t, now, low[0].Timestamp)

	high := expandSeeds(specs, now, func(n int64) int64 { return n - 1 })
	require.Equal(t, now.Add(-2*seedAgeBase+time.Second), high[0].Timestamp)
	requireInSeedWindow(t, now, high[0].Timestamp)
}

func TestExpandSeedsRandomized(t *testing.T) {
	specs := make([]SeedSpec, 32)
	for i := range specs {
		specs[i] = ipv4Seed(10, 0, 0, byte(i), 8333)
	}

	now := time.Now()
	first := ExpandSeeds(specs, now)
	second := ExpandSeeds(specs, now)
	require.Len(t, first, len(specs))
	require.Len(t, second, len(specs))

	same := true
	for i := range first {
		requireInSeedWindow(t, now, first[i].Timestamp)
		requireInSeedWindow(t, now, second[i].Timestamp)
		if !first[i].Timestamp.Equal(second[i].Timestamp) {
			same = false
		}
	}
	require.False(t, same, "two expansions produced identical timestamps")
}
