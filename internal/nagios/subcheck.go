// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nagios

import (
	"errors"

	"github.com/atc0005/check-icmp/internal/perfdata"
	"github.com/atc0005/check-icmp/internal/svcstate"
)

// ErrSubcheckMissingLabel is returned when a Subcheck with an empty Label
// is added to a Check or another Subcheck. Every node needs a label to be
// meaningfully rendered in the output tree.
var ErrSubcheckMissingLabel = errors.New("nagios: subcheck is missing a label")

// Subcheck is one node of the check result tree (mp_subcheck in the C
// original). A Subcheck's state is either set explicitly (State,
// StateSetExplicitly) or, more commonly, left to be derived from its
// children via ComputeState; DefaultState is the state reported by a leaf
// Subcheck that has neither an explicit state nor any children.
type Subcheck struct {
	Label     string
	Output    string
	Perfdata  []perfdata.PerformanceData
	Subchecks []Subcheck

	state              svcstate.State
	stateSetExplicitly bool
	defaultState       svcstate.State
}

// NewSubcheck builds a Subcheck with the given label and a default state
// of Unknown, matching mp_subcheck_init: a leaf with no explicit state and
// no children reports Unknown rather than silently passing as OK.
func NewSubcheck(label string) Subcheck {
	return Subcheck{
		Label:        label,
		defaultState: svcstate.Unknown,
	}
}

// SetState marks s's state as explicitly set, overriding any derivation
// from children. Mirrors mp_set_subcheck_state. Returns the modified
// value so callers can chain construction.
func (s Subcheck) SetState(state svcstate.State) Subcheck {
	s.state = state
	s.stateSetExplicitly = true
	return s
}

// SetDefaultState sets the state reported when s has neither an explicit
// state nor any children. Mirrors mp_set_subcheck_default_state.
func (s Subcheck) SetDefaultState(state svcstate.State) Subcheck {
	s.defaultState = state
	return s
}

// AddSubcheck appends child to s.Subchecks after validating it has a
// label. Mirrors mp_add_subcheck_to_subcheck.
func (s *Subcheck) AddSubcheck(child Subcheck) error {
	if child.Label == "" {
		return ErrSubcheckMissingLabel
	}
	s.Subchecks = append(s.Subchecks, child)
	return nil
}

// AddPerfData validates and appends a performance data point. Mirrors
// mp_add_perfdata_to_subcheck.
func (s *Subcheck) AddPerfData(pd perfdata.PerformanceData) error {
	if err := pd.Validate(); err != nil {
		return err
	}
	s.Perfdata = append(s.Perfdata, pd)
	return nil
}

// ComputeState returns s's effective state: the explicitly set state if
// one was given; otherwise the rollup of all child states; otherwise the
// default state. Mirrors mp_compute_subcheck_state.
func (s Subcheck) ComputeState() svcstate.State {
	if s.stateSetExplicitly {
		return s.state
	}
	if len(s.Subchecks) == 0 {
		return s.defaultState
	}

	states := make([]svcstate.State, len(s.Subchecks))
	for i, child := range s.Subchecks {
		states[i] = child.ComputeState()
	}
	return svcstate.RollupAll(states)
}

// allPerfdata collects this Subcheck's own perfdata plus that of every
// descendant, depth first, for flattened output formats (e.g. OneLine).
func (s Subcheck) allPerfdata() []perfdata.PerformanceData {
	out := append([]perfdata.PerformanceData{}, s.Perfdata...)
	for _, child := range s.Subchecks {
		out = append(out, child.allPerfdata()...)
	}
	return out
}
