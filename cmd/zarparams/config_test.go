// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zarcash/zarcashd/chaincfg"
)

const mainGenesis = "000006401f2c8c99028f6ad458d737c48c26b0440c99ca86e3daa4207623b165"

func TestNetworkFlags(t *testing.T) {
	tests := []struct {
		cfg     config
		want    chaincfg.NetworkID
		wantErr bool
	}{
		{config{}, chaincfg.NetMain, false},
		{config{TestNet: true}, chaincfg.NetTest, false},
		{config{RegTest: true}, chaincfg.NetRegtest, false},
		{config{UnitTest: true}, chaincfg.NetUnitTest, false},
		{config{TestNet: true, RegTest: true}, 0, true},
		{config{RegTest: true, UnitTest: true}, 0, true},
	}

	for i, test := range tests {
		id, err := test.cfg.networkID()
		if test.wantErr {
			require.Error(t, err, "test %d", i)
			continue
		}
		require.NoError(t, err, "test %d", i)
		require.Equal(t, test.want, id, "test %d", i)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	confFile := filepath.Join(dir, "zarparams.conf")
	require.NoError(t, os.WriteFile(confFile, []byte("regtest=1\n"), 0600))

	cfg, err := loadConfig([]string{"--configfile=" + confFile,
		"--logdir=" + filepath.Join(dir, "logs"), "--debuglevel=debug"})
	require.NoError(t, err)
	require.Equal(t, chaincfg.NetRegtest, cfg.network)
	t.Cleanup(func() {
		logRotator.Close()
		logRotator = nil
	})

	_, err = loadConfig([]string{"--configfile=" + filepath.Join(dir, "missing.conf")})
	require.Error(t, err)

	_, err = loadConfig([]string{"--testnet", "--regtest", "--logdir="})
	require.Error(t, err)

	_, err = loadConfig([]string{"--debuglevel=loud", "--logdir="})
	require.Error(t, err)
}

func TestParseCheckpointArg(t *testing.T) {
	height, hash, err := parseCheckpointArg("0:" + mainGenesis)
	require.NoError(t, err)
	require.Equal(t, int32(0), height)
	require.Equal(t, mainGenesis, hash.String())

	for _, arg := range []string{"", "10", "x:" + mainGenesis, "-1:" + mainGenesis, "1:zz", "1:2:3"} {
		_, _, err := parseCheckpointArg(arg)
		require.Error(t, err, arg)
	}
}

func TestParseProgressArg(t *testing.T) {
	tip, err := parseProgressArg("100:250:1553367420")
	require.NoError(t, err)
	require.Equal(t, chaincfg.ChainTip{
		Height:    100,
		TotalTxns: 250,
		Timestamp: time.Unix(1553367420, 0),
	}, tip)

	for _, arg := range []string{"", "1:2", "a:2:3", "1:b:3", "1:2:c", "-5:2:3"} {
		_, err := parseProgressArg(arg)
		require.Error(t, err, arg)
	}
}

func TestCheckBlock(t *testing.T) {
	p := chaincfg.MainNetParams
	var buf bytes.Buffer

	valid, err := checkBlock(&buf, p, "0:"+mainGenesis)
	require.NoError(t, err)
	require.True(t, valid)
	require.Contains(t, buf.String(), "matches the checkpoint")
	require.Contains(t, buf.String(), "protected from reorganization")

	buf.Reset()
	other := "1:" + mainGenesis
	valid, err = checkBlock(&buf, p, other)
	require.NoError(t, err)
	require.False(t, valid)
	require.Contains(t, buf.String(), "conflicts with checkpoint")

	buf.Reset()
	valid, err = checkBlock(&buf, p, "20000:"+mainGenesis)
	require.NoError(t, err)
	require.True(t, valid)
	require.Contains(t, buf.String(), "not checkpointed")
	require.NotContains(t, buf.String(), "protected")

	_, err = checkBlock(&buf, p, "bogus")
	require.Error(t, err)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, chaincfg.MainNetParams)
	out := buf.String()
	require.Contains(t, out, "network:          main")
	require.Contains(t, out, "magic:            aaab3527")
	require.Contains(t, out, mainGenesis)
	require.Contains(t, out, "last checkpoint:  13200")

	buf.Reset()
	writeSeeds(&buf, chaincfg.MainNetParams)
	require.Contains(t, buf.String(), "seed1.zarbitcoin.net (51.75.162.95)")
	require.Contains(t, buf.String(), "fixed 51.75.162.95:40444")
}
