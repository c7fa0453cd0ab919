// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import "testing"

func TestParseGroupMode(t *testing.T) {
	tests := []struct {
		input   string
		want    GroupMode
		wantErr bool
	}{
		{"", ModeRTA, false},
		{"rta", ModeRTA, false},
		{"host-check", ModeHostCheck, false},
		{"hostcheck", ModeHostCheck, false},
		{"all", ModeAll, false},
		{"icmp", ModeICMP, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseGroupMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGroupMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseGroupMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGroupModeString(t *testing.T) {
	tests := []struct {
		mode GroupMode
		want string
	}{
		{ModeRTA, "rta"},
		{ModeHostCheck, "host-check"},
		{ModeAll, "all"},
		{ModeICMP, "icmp"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("GroupMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestGroupModeStringRoundTripsThroughParse(t *testing.T) {
	for _, m := range []GroupMode{ModeRTA, ModeHostCheck, ModeAll, ModeICMP} {
		parsed, err := ParseGroupMode(m.String())
		if err != nil {
			t.Fatalf("ParseGroupMode(%q) unexpected error: %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("round trip: got %v, want %v", parsed, m)
		}
	}
}
