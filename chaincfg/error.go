// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrorCode identifies a kind of network parameter error.
type ErrorCode int

// These constants are used to identify a specific ParamsError.
const (
	// ErrUnknownNetwork indicates a network identifier or name that does
	// not match any supported network.
	ErrUnknownNetwork ErrorCode = iota

	// ErrNetworkAlreadySelected indicates an attempt to select a different
	// network after one has already been selected.
	ErrNetworkAlreadySelected

	// ErrNetworkNotSelected indicates the active parameters were requested
	// before any network was selected.
	ErrNetworkNotSelected

	// ErrNotUnitTestNetwork indicates a unit test override was attempted
	// while a network other than the unit test network is active.
	ErrNotUnitTestNetwork

	// ErrBadCheckpoints indicates a checkpoint list that is not strictly
	// increasing by height or has a missing hash.
	ErrBadCheckpoints

	// ErrGenesisMismatch indicates the genesis block built from the
	// compiled-in constants does not hash to the declared values.
	ErrGenesisMismatch
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownNetwork:         "ErrUnknownNetwork",
	ErrNetworkAlreadySelected: "ErrNetworkAlreadySelected",
	ErrNetworkNotSelected:     "ErrNetworkNotSelected",
	ErrNotUnitTestNetwork:     "ErrNotUnitTestNetwork",
	ErrBadCheckpoints:         "ErrBadCheckpoints",
	ErrGenesisMismatch:        "ErrGenesisMismatch",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ParamsError describes an issue with selecting or constructing network
// parameters.  The caller can use type assertions or errors.As to access the
// ErrorCode field and react to the specific kind of failure.
type ParamsError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ParamsError) Error() string {
	return e.Description
}

// paramsError creates a ParamsError given a set of arguments.
func paramsError(c ErrorCode, desc string) ParamsError {
	return ParamsError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a ParamsError with the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	var perr ParamsError
	return errors.As(err, &perr) && perr.ErrorCode == c
}

// GenesisMismatchError is returned when the genesis block of a network does
// not hash to the value its parameters declare.
type GenesisMismatchError struct {
	Network string // Name of the network variant
	Field   string // "block hash", "merkle root" or "checkpoint 0"
	Got     chainhash.Hash
	Want    chainhash.Hash
}

// Error satisfies the error interface and prints human-readable errors.
func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: computed %v, declared %v",
		e.Network, e.Field, e.Got, e.Want)
}

// Unwrap makes errors.As(err, &ParamsError{}) report ErrGenesisMismatch.
func (e *GenesisMismatchError) Unwrap() error {
	return paramsError(ErrGenesisMismatch, e.Error())
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be registered due to the network already being a default
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidHDKeyID describes an error where the provided hierarchical
	// deterministic version bytes, or hd key id, is malformed.
	ErrInvalidHDKeyID = errors.New("invalid hd extended key version bytes")
)
