// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package perfdata

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "int64 positive", v: Int64(42), want: "42"},
		{name: "int64 negative", v: Int64(-7), want: "-7"},
		{name: "uint64", v: Uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "float64 integral", v: Float64(10), want: "10"},
		{name: "float64 fraction", v: Float64(3.14), want: "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    Value
		want int
	}{
		{name: "int64 equal", a: Int64(5), b: Int64(5), want: 0},
		{name: "int64 less", a: Int64(1), b: Int64(2), want: -1},
		{name: "int64 greater", a: Int64(9), b: Int64(2), want: 1},
		{name: "uint64 less", a: Uint64(1), b: Uint64(2), want: -1},
		{name: "mixed int and float widen", a: Int64(5), b: Float64(5.5), want: -1},
		{name: "mixed uint and int widen", a: Uint64(10), b: Int64(3), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValueIsZero(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{name: "zero int64", v: Int64(0), want: true},
		{name: "nonzero int64", v: Int64(1), want: false},
		{name: "zero uint64", v: Uint64(0), want: true},
		{name: "zero float64", v: Float64(0), want: true},
		{name: "nonzero float64", v: Float64(0.1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}
