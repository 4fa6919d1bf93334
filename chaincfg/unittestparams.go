// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// unitTestOverrides applies the unit test network values on top of the main
// network.  The unit test network keeps the main network checkpoints.
func unitTestOverrides(p *Params) {
	p.ID = NetUnitTest
	p.Name = NetUnitTest.String()
	p.DefaultPort = "51478"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true
}

// unitTestDefaults returns the flat parameter set of the unit test network.
func unitTestDefaults() Params {
	p := mainNetDefaults()
	unitTestOverrides(&p)
	return p
}

// UnitTestParams defines the initial network parameters for the unit test
// network.  Each Registry works on its own copy, which ModifiableParams
// changes.
var UnitTestParams = mustNewParams(unitTestDefaults())

// ModifiableParams gives unit tests write access to the parameters of the
// unit test network.  It is obtained from a Registry whose active network is
// the unit test network and never wraps the parameters of another network.
//
// The setters must not be called concurrently with readers of the
// parameters.
type ModifiableParams struct {
	params *Params
}

// Params returns the parameters being modified.
func (m *ModifiableParams) Params() *Params {
	return m.params
}

// SetSubsidyReductionInterval overrides the subsidy halving interval.
func (m *ModifiableParams) SetSubsidyReductionInterval(interval int32) {
	m.params.SubsidyReductionInterval = interval
}

// SetEnforceBlockUpgradeMajority overrides the number of blocks that enforce
// upgraded rules.
func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(n int32) {
	m.params.EnforceBlockUpgradeMajority = n
}

// SetRejectBlockOutdatedMajority overrides the number of blocks that reject
// outdated block versions.
func (m *ModifiableParams) SetRejectBlockOutdatedMajority(n int32) {
	m.params.RejectBlockOutdatedMajority = n
}

// SetToCheckBlockUpgradeMajority overrides the upgrade majority window.
func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(n int32) {
	m.params.ToCheckBlockUpgradeMajority = n
}

// SetDefaultConsistencyChecks toggles the default consistency checks.
func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.params.DefaultConsistencyChecks = enabled
}

// SetAllowMinDifficultyBlocks toggles minimum difficulty blocks.
func (m *ModifiableParams) SetAllowMinDifficultyBlocks(allow bool) {
	m.params.AllowMinDifficultyBlocks = allow
}

// SetSkipProofOfWorkCheck toggles skipping proof-of-work validation.
func (m *ModifiableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.params.SkipProofOfWorkCheck = skip
}
