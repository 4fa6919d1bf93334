// Copyright (c) 2019 The zarcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// Registry holds the parameters of every supported network and tracks the
// one selected as active.
//
// A network is selected once, on the main goroutine during startup, before
// any other goroutine reads the active parameters.  Select and Switch are not
// synchronized and must not be called concurrently with each other or with
// readers.  After selection any number of goroutines may call Active.
type Registry struct {
	bundles map[NetworkID]*Params
	active  *Params
}

// NewRegistry returns a registry with no network selected.  The default
// networks are shared between registries while every registry gets its own
// copy of the unit test network parameters.
func NewRegistry() *Registry {
	unitTest := *UnitTestParams
	return &Registry{
		bundles: map[NetworkID]*Params{
			NetMain:     MainNetParams,
			NetTest:     TestNetParams,
			NetRegtest:  RegressionNetParams,
			NetUnitTest: &unitTest,
		},
	}
}

// Params returns the parameters of a network without selecting it.
func (r *Registry) Params(id NetworkID) (*Params, error) {
	p, ok := r.bundles[id]
	if !ok {
		str := fmt.Sprintf("unknown network id %d", uint8(id))
		return nil, paramsError(ErrUnknownNetwork, str)
	}
	return p, nil
}

// Select makes the network identified by id the active one.  Selecting the
// already active network again is a no-op.  Selecting a different network
// once one is active fails with ErrNetworkAlreadySelected; test harnesses
// that need to change networks use Switch.
func (r *Registry) Select(id NetworkID) (*Params, error) {
	p, err := r.Params(id)
	if err != nil {
		return nil, err
	}

	if r.active != nil {
		if r.active.ID == id {
			return r.active, nil
		}
		str := fmt.Sprintf("cannot select %s network: %s network "+
			"already selected", p.Name, r.active.Name)
		return nil, paramsError(ErrNetworkAlreadySelected, str)
	}

	r.active = p
	log.Infof("Selected %s network", p.Name)
	log.Debugf("%s genesis %v, %d checkpoints, %d fixed seed addresses",
		p.Name, p.GenesisHash, p.Checkpoints.Len(), len(p.SeedAddrs))
	return p, nil
}

// Switch makes the network identified by id the active one regardless of
// any earlier selection.  It exists for test harnesses that swap networks
// between test cases.
func (r *Registry) Switch(id NetworkID) (*Params, error) {
	p, err := r.Params(id)
	if err != nil {
		return nil, err
	}

	if r.active != nil && r.active.ID != id {
		log.Debugf("Switching from %s to %s network", r.active.Name,
			p.Name)
	}
	r.active = p
	return p, nil
}

// IsSelected returns whether a network has been selected.
func (r *Registry) IsSelected() bool {
	return r.active != nil
}

// Active returns the parameters of the selected network.  Calling it before a
// network is selected is a programming error and panics.
func (r *Registry) Active() *Params {
	if r.active == nil {
		panic(paramsError(ErrNetworkNotSelected,
			"chaincfg: active network requested before a network was "+
				"selected"))
	}
	return r.active
}

// Modifiable returns write access to the unit test network parameters.  It
// fails with ErrNotUnitTestNetwork unless the unit test network is active.
func (r *Registry) Modifiable() (*ModifiableParams, error) {
	if r.active == nil || r.active.ID != NetUnitTest {
		name := "no"
		if r.active != nil {
			name = r.active.Name
		}
		str := fmt.Sprintf("unit test parameters requested with %s "+
			"network active", name)
		return nil, paramsError(ErrNotUnitTestNetwork, str)
	}
	return &ModifiableParams{params: r.active}, nil
}

// defaultRegistry is the process wide registry used by the package level
// functions.
var defaultRegistry = NewRegistry()

// Select selects the active network of the process wide registry.  See
// Registry.Select.
func Select(id NetworkID) (*Params, error) {
	return defaultRegistry.Select(id)
}

// SelectByName selects the process wide active network by its name.
func SelectByName(name string) (*Params, error) {
	id, err := ParseNetworkID(name)
	if err != nil {
		return nil, err
	}
	return defaultRegistry.Select(id)
}

// Switch replaces the active network of the process wide registry.  It is
// only meant for test harnesses.  See Registry.Switch.
func Switch(id NetworkID) (*Params, error) {
	return defaultRegistry.Switch(id)
}

// MustSelect performs the same function as Select except it panics on an
// error.  There is no sensible network to fall back to, so a failed
// selection must stop the process.
func MustSelect(id NetworkID) *Params {
	p, err := Select(id)
	if err != nil {
		panic(err)
	}
	return p
}

// Active returns the parameters of the process wide active network.  It
// panics if no network has been selected.
func Active() *Params {
	return defaultRegistry.Active()
}

// MustModifiable returns write access to the process wide unit test network
// parameters.  It panics unless the unit test network is active.
func MustModifiable() *ModifiableParams {
	m, err := defaultRegistry.Modifiable()
	if err != nil {
		panic(err)
	}
	return m
}
