// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines the parameters of the zarcash networks and their
checkpoints.

Four networks are supported: the main network, the public test network, the
regression test network and the unit test network.  The main network defines
every parameter.  The other networks start from the main network (the
regression test network from the test network) and override a subset of the
values.  All parameters are built once when the package is initialized.
Building a network constructs its genesis block, checks the genesis hash and
merkle root against the compiled-in values and expands the fixed seed table
into peer addresses.  An inconsistency panics during package initialization.

A process selects its network once at startup:

	params, err := chaincfg.SelectByName(cfg.Network)
	if err != nil {
		// Unknown network, nothing sensible to fall back to.
	}

Afterwards any package can read the parameters with chaincfg.Active.  Reading
them before a network is selected panics.

Checkpoints

Each network carries a CheckpointTable mapping heights to trusted block
hashes.  IsValidBlock reports whether a block agrees with the checkpoint at
its height and GuardsAgainstReorgBelow returns the height at and below which
no alternate branch may be accepted.

Unit tests

Tests that need different consensus values select NetUnitTest on their own
Registry and change the values through ModifiableParams.  The other networks
have no setters.
*/
package chaincfg
