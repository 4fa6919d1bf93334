// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"crypto/rand"
	"math/big"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// seedAgeBase is the minimum age given to an expanded seed address.  A random
// amount of up to another week is added on top of it.
const seedAgeBase = 7 * 24 * time.Hour

// SeedSpec is a fixed seed node: a 16 byte IPv6 address, IPv4 addresses being
// stored in their IPv4-mapped form, and a port.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

// ipv4Seed returns the SeedSpec for an IPv4 address.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec {
	return SeedSpec{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// mainNetSeeds are the fixed seed nodes of the main network.  They are the
// fallback addresses of the main network DNS seeds.
var mainNetSeeds = []SeedSpec{
	ipv4Seed(51, 75, 162, 95, 40444),
	ipv4Seed(51, 75, 162, 92, 40444),
	ipv4Seed(51, 75, 170, 189, 40444),
	ipv4Seed(51, 38, 71, 12, 40444),
}

// randSeconds returns a uniformly random integer in [0, n).
func randSeconds(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		// The system randomness source is unavailable, which leaves
		// nothing sensible to continue with.
		panic("chaincfg: crypto/rand failed: " + err.Error())
	}
	return v.Int64()
}

// ExpandSeeds turns the fixed seed table into peer addresses.  Each address
// gets a random last seen time strictly between two weeks and one week before
// now, so that seed nodes look old enough to be replaced by peers learned
// later while not all nodes treat them as fresh at the same time.
//
// Every call draws new timestamps.
func ExpandSeeds(specs []SeedSpec, now time.Time) []*wire.NetAddress {
	return expandSeeds(specs, now, randSeconds)
}

// expandSeeds is ExpandSeeds with an injectable random source.  randn must
// return a value in [0, n).
func expandSeeds(specs []SeedSpec, now time.Time,
	randn func(n int64) int64) []*wire.NetAddress {

	if len(specs) == 0 {
		return nil
	}

	// Peer addresses carry second precision.
	now = time.Unix(now.Unix(), 0)
	window := int64(seedAgeBase / time.Second)

	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		addr := wire.NewNetAddressIPPort(ip, spec.Port, wire.SFNodeNetwork)

		// Keep clear of both window edges: 1 <= jitter < window.
		jitter := 1 + randn(window-1)
		addr.Timestamp = now.Add(-seedAgeBase -
			time.Duration(jitter)*time.Second)

		addrs = append(addrs, addr)
	}

	return addrs
}
