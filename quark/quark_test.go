// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func TestSum256(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			in:   "",
			want: "0800f13b5af35b8363864de22b7bedeca369e2a7c6c77b4f69441cb03a517d9c",
		},
		{
			in:   "The quick brown fox jumps over the lazy dog",
			want: "70ecce6fe9c9e2041cc90324a570b9ed1329c7ebe9397c5cef3de815c46113a5",
		},
	}

	// A single Hasher is reused to make sure the rounds reset their state.
	q := New()
	for _, test := range tests {
		got := q.Sum256([]byte(test.in))
		require.Equal(t, test.want, hex.EncodeToString(got[:]), "input %q", test.in)

		got = Sum256([]byte(test.in))
		require.Equal(t, test.want, hex.EncodeToString(got[:]), "input %q", test.in)
	}
}

func TestBlockHash(t *testing.T) {
	merkle, err := chainhash.NewHashFromStr(
		"1fba8dfabca6f444063c3739ed0b21ce31085468b219dfc79d22c1070daa1252")
	require.NoError(t, err)

	header := wire.BlockHeader{
		Version:    1,
		MerkleRoot: *merkle,
		Timestamp:  time.Unix(1553367420, 0),
		Bits:       0x1e0ffff0,
		Nonce:      5688368,
	}

	hash := BlockHash(&header)
	require.Equal(t,
		"000006401f2c8c99028f6ad458d737c48c26b0440c99ca86e3daa4207623b165",
		hash.String())

	// Changing the nonce must change the hash.
	header.Nonce++
	other := BlockHash(&header)
	require.NotEqual(t, hash, other)
}
