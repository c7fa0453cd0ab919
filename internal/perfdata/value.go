// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package perfdata

import "strconv"

// ValueKind identifies which of the three numeric representations a Value
// currently holds. Mirrors pd_value_type from the C original
// (lib/perfdata.h: PD_TYPE_INT, PD_TYPE_UINT, PD_TYPE_DOUBLE).
type ValueKind int

const (
	// KindInt64 indicates the Value holds a signed integer (built by Int64).
	KindInt64 ValueKind = iota
	// KindUint64 indicates the Value holds an unsigned integer (built by
	// Uint64).
	KindUint64
	// KindFloat64 indicates the Value holds a float64 (built by Float64).
	KindFloat64
)

// Value is a tagged union over the three numeric representations a
// perfdata measurement or range endpoint may carry. Every Value carries a
// Kind; comparing two Values of different Kinds requires widening to
// float64 (Float64), while same-Kind comparisons stay integral to avoid
// precision loss on large counters.
type Value struct {
	kind ValueKind
	i    int64
	u    uint64
	f    float64
}

// Int64 constructs a signed integer Value.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Uint64 constructs an unsigned integer Value, for counters expected to
// exceed the signed range (e.g. wrapping interface byte counters).
func Uint64(v uint64) Value { return Value{kind: KindUint64, u: v} }

// Float64 constructs a floating point Value.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Kind reports which representation this Value holds.
func (v Value) Kind() ValueKind { return v.kind }

// AsFloat64 widens the Value to a comparable double, as required whenever
// two Values of differing Kind must be compared (spec: "mixing types in
// comparisons requires widening to double").
func (v Value) AsFloat64() float64 {
	switch v.kind {
	case KindInt64:
		return float64(v.i)
	case KindUint64:
		return float64(v.u)
	default:
		return v.f
	}
}

// IsZero reports whether the Value represents the numeric value zero,
// regardless of Kind.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindInt64:
		return v.i == 0
	case KindUint64:
		return v.u == 0
	default:
		return v.f == 0
	}
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than
// other. Same-Kind comparisons (both Int64 or both Uint64) stay integral;
// any mismatch widens both sides to float64.
func (v Value) Compare(other Value) int {
	if v.kind == other.kind {
		switch v.kind {
		case KindInt64:
			switch {
			case v.i < other.i:
				return -1
			case v.i > other.i:
				return 1
			default:
				return 0
			}
		case KindUint64:
			switch {
			case v.u < other.u:
				return -1
			case v.u > other.u:
				return 1
			default:
				return 0
			}
		}
	}

	vf, of := v.AsFloat64(), other.AsFloat64()
	switch {
	case vf < of:
		return -1
	case vf > of:
		return 1
	default:
		return 0
	}
}

// String formats the Value the way it is emitted in perfdata and range
// tokens: integers in base 10, doubles using the shortest text that
// round-trips back to the same float64 (strconv's -1 precision), rendered
// without scientific notation since RRD/Nagios consumers expect plain
// decimal text.
func (v Value) String() string {
	switch v.kind {
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindUint64:
		return strconv.FormatUint(v.u, 10)
	default:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
}
