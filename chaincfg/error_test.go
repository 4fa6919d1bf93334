// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrUnknownNetwork, "ErrUnknownNetwork"},
		{ErrNetworkAlreadySelected, "ErrNetworkAlreadySelected"},
		{ErrNetworkNotSelected, "ErrNetworkNotSelected"},
		{ErrNotUnitTestNetwork, "ErrNotUnitTestNetwork"},
		{ErrBadCheckpoints, "ErrBadCheckpoints"},
		{ErrGenesisMismatch, "ErrGenesisMismatch"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	require.Len(t, errorCodeStrings, len(tests)-1)

	for _, test := range tests {
		require.Equal(t, test.want, test.in.String())
	}
}

func TestIsErrorCode(t *testing.T) {
	err := paramsError(ErrUnknownNetwork, "unknown network")
	require.Equal(t, "unknown network", err.Error())
	require.True(t, IsErrorCode(err, ErrUnknownNetwork))
	require.False(t, IsErrorCode(err, ErrBadCheckpoints))

	wrapped := fmt.Errorf("startup: %w", err)
	require.True(t, IsErrorCode(wrapped, ErrUnknownNetwork))
	require.False(t, IsErrorCode(errors.New("other"), ErrUnknownNetwork))
	require.False(t, IsErrorCode(nil, ErrUnknownNetwork))
}

func TestGenesisMismatchError(t *testing.T) {
	err := &GenesisMismatchError{
		Network: "main",
		Field:   "block hash",
		Got:     chainhash.Hash{0x01},
		Want:    chainhash.Hash{0x02},
	}
	require.Contains(t, err.Error(), "main genesis block hash mismatch")
	require.True(t, IsErrorCode(err, ErrGenesisMismatch))
}
