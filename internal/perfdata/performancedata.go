// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package perfdata

import (
	"errors"
	"strings"
)

// PerformanceData is a single label=value[UOM];[warn];[crit];[min];[max]
// token as defined by the Nagios plugin development guidelines and emitted
// by pd_to_string in the C original (original_source/lib/perfdata.c).
type PerformanceData struct {
	Label             string
	Value             Value
	UnitOfMeasurement string
	Threshold         Threshold
	HasMin            bool
	Min               Value
	HasMax            bool
	Max               Value
}

// Sentinel errors returned by Validate, one per pd_to_string precondition
// in the C original.
var (
	ErrPerfDataMissingLabel      = errors.New("perfdata: label is required")
	ErrPerfDataLabelHasSemicolon = errors.New("perfdata: label may not contain ';'")
	ErrPerfDataLabelIsQuote      = errors.New("perfdata: label may not be a bare single quote")
)

// Validate checks the label constraints the C original enforces before
// emitting a perfdata token: a label is required, may not contain a
// semicolon (the token separator), and may not be the single character
// ' (which the single-quote-wrapping rule below would otherwise make
// ambiguous).
func (p PerformanceData) Validate() error {
	if p.Label == "" {
		return ErrPerfDataMissingLabel
	}
	if strings.Contains(p.Label, ";") {
		return ErrPerfDataLabelHasSemicolon
	}
	if p.Label == "'" {
		return ErrPerfDataLabelIsQuote
	}
	return nil
}

// quoteLabel wraps a label in single quotes if it contains a space or an
// equals sign, doubling any embedded single quote, matching the label
// quoting convention used throughout the Nagios/Icinga ecosystem for
// perfdata tokens containing whitespace.
func quoteLabel(label string) string {
	if !strings.ContainsAny(label, " =") {
		return label
	}
	escaped := strings.ReplaceAll(label, "'", "''")
	return "'" + escaped + "'"
}

// String renders the label=value[UOM];[warn];[crit];[min];[max] token. All
// four trailing fields are positional: a field absent from the underlying
// Threshold or bound is left empty, but its semicolon separator is always
// written, since the field's position (not its presence) is what carries
// meaning for a reader parsing the token back apart.
func (p PerformanceData) String() string {
	var b strings.Builder

	b.WriteString(quoteLabel(p.Label))
	b.WriteByte('=')
	b.WriteString(p.Value.String())
	b.WriteString(p.UnitOfMeasurement)

	fields := []string{
		p.Threshold.DisplayWarning(),
		p.Threshold.DisplayCritical(),
		valueOrEmpty(p.HasMin, p.Min),
		valueOrEmpty(p.HasMax, p.Max),
	}

	for _, f := range fields {
		b.WriteByte(';')
		b.WriteString(f)
	}

	return b.String()
}

func valueOrEmpty(has bool, v Value) string {
	if !has {
		return ""
	}
	return v.String()
}

// ListString joins a slice of PerformanceData into the space-separated
// multi-token form used in Nagios long plugin output, matching
// pd_list_to_string from the C original.
func ListString(list []PerformanceData) string {
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
