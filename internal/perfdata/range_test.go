// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package perfdata

import (
	"errors"
	"testing"
)

func TestParseRangeRoundTrip(t *testing.T) {
	// Each of these is drawn directly from the range examples in the
	// threshold grammar: parsing the text and re-emitting it must
	// reproduce the original text exactly.
	texts := []string{
		"10",
		"~:5",
		":5",
		"10:",
		"@3:7",
		"-5:5",
		"0",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			r, err := ParseRange(text)
			if err != nil {
				t.Fatalf("ParseRange(%q) returned error: %v", text, err)
			}
			if got := r.String(); got != text {
				t.Errorf("round trip mismatch: ParseRange(%q).String() = %q", text, got)
			}
		})
	}
}

func TestParseRangeViolates(t *testing.T) {
	tests := []struct {
		name string
		text string
		v    Value
		want bool
	}{
		{name: "10 alerts above", text: "10", v: Int64(15), want: true},
		{name: "10 ok at boundary", text: "10", v: Int64(10), want: false},
		{name: "10 ok below", text: "10", v: Int64(5), want: false},
		{name: "10 alerts below zero", text: "10", v: Int64(-1), want: true},
		{name: "10:20 ok inside", text: "10:20", v: Int64(15), want: false},
		{name: "10:20 alerts outside", text: "10:20", v: Int64(25), want: true},
		{name: "inverted alerts inside", text: "@10:20", v: Int64(15), want: true},
		{name: "inverted ok outside", text: "@10:20", v: Int64(25), want: false},
		{name: "open ended start", text: "~:5", v: Int64(-1000), want: false},
		{name: "open ended end", text: "10:", v: Int64(1000000), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.text)
			if err != nil {
				t.Fatalf("ParseRange(%q) returned error: %v", tt.text, err)
			}
			if got := r.Violates(tt.v); got != tt.want {
				t.Errorf("Violates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRangeErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "invalid order", text: "20:10", wantErr: ErrRangeInvalidOrder},
		{name: "invalid char", text: "abc", wantErr: ErrRangeInvalidChar},
		{name: "bare tilde", text: "~", wantErr: ErrRangeInvalidChar},
		{name: "tilde as end", text: "5:~", wantErr: ErrRangeInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRange(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseRange(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}
