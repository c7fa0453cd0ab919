// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nagios

import (
	"encoding/json"
)

// jsonSubcheck and jsonCheck are the TestJSON wire shapes. Subcheck and
// Check are not marshaled directly since their state fields are
// unexported (state must flow through ComputeState, never read or set
// directly by a caller unmarshaling a snapshot back in).
type jsonSubcheck struct {
	Label     string         `json:"label"`
	State     string         `json:"state"`
	Output    string         `json:"output,omitempty"`
	Perfdata  []string       `json:"perfdata,omitempty"`
	Subchecks []jsonSubcheck `json:"subchecks,omitempty"`
}

type jsonCheck struct {
	Label     string         `json:"label"`
	State     string         `json:"state"`
	Summary   string         `json:"summary"`
	Subchecks []jsonSubcheck `json:"subchecks,omitempty"`
}

func toJSONSubcheck(s Subcheck) jsonSubcheck {
	js := jsonSubcheck{
		Label:  s.Label,
		State:  s.ComputeState().String(),
		Output: s.Output,
	}
	for _, pd := range s.Perfdata {
		js.Perfdata = append(js.Perfdata, pd.String())
	}
	for _, child := range s.Subchecks {
		js.Subchecks = append(js.Subchecks, toJSONSubcheck(child))
	}
	return js
}

func formatJSON(c Check) string {
	jc := jsonCheck{
		Label:   c.Label,
		State:   c.ComputeState().String(),
		Summary: c.summaryLine(),
	}
	for _, s := range c.Subchecks {
		jc.Subchecks = append(jc.Subchecks, toJSONSubcheck(s))
	}

	out, err := json.Marshal(jc)
	if err != nil {
		// jsonCheck contains only strings and slices thereof; Marshal
		// cannot fail on this shape.
		return "{}"
	}
	return string(out)
}
