// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateResolvedRejectsUnspecified(t *testing.T) {
	tests := []string{"0.0.0.0", "::"}
	for _, s := range tests {
		addr := netip.MustParseAddr(s)
		if err := validateResolved(addr); !errors.Is(err, ErrUnspecifiedAddress) {
			t.Errorf("validateResolved(%s) = %v, want ErrUnspecifiedAddress", s, err)
		}
	}
}

func TestValidateResolvedRejectsBroadcast(t *testing.T) {
	addr := netip.MustParseAddr("255.255.255.255")
	if err := validateResolved(addr); !errors.Is(err, ErrBroadcastAddress) {
		t.Errorf("validateResolved(255.255.255.255) = %v, want ErrBroadcastAddress", err)
	}
}

func TestValidateResolvedAcceptsOrdinaryAddress(t *testing.T) {
	tests := []string{"192.0.2.1", "2001:db8::1"}
	for _, s := range tests {
		addr := netip.MustParseAddr(s)
		if err := validateResolved(addr); err != nil {
			t.Errorf("validateResolved(%s) = %v, want nil", s, err)
		}
	}
}

func TestResolveOneLiteralAddress(t *testing.T) {
	addr, err := resolveOne(context.Background(), "192.0.2.1")
	if err != nil {
		t.Fatalf("resolveOne(literal) unexpected error: %v", err)
	}
	if addr.String() != "192.0.2.1" {
		t.Errorf("resolveOne(literal) = %v, want 192.0.2.1", addr)
	}
}

func TestResolveAllPreservesOrder(t *testing.T) {
	hosts := []Host{{Name: "192.0.2.1"}, {Name: "192.0.2.2"}, {Name: "192.0.2.3"}}

	targets, err := ResolveAll(context.Background(), hosts, 2)
	if err != nil {
		t.Fatalf("ResolveAll unexpected error: %v", err)
	}

	gotNames := make([]string, len(targets))
	for i, tgt := range targets {
		gotNames[i] = tgt.Host.Name
	}
	wantNames := []string{"192.0.2.1", "192.0.2.2", "192.0.2.3"}
	if diff := cmp.Diff(wantNames, gotNames); diff != "" {
		t.Errorf("resolved host order mismatch (-want +got):\n%s", diff)
	}

	for i, h := range hosts {
		if targets[i].Addr.String() != h.Name {
			t.Errorf("targets[%d].Addr = %v, want %v", i, targets[i].Addr, h.Name)
		}
	}
}

func TestResolveAllFailsOnUnspecifiedTarget(t *testing.T) {
	hosts := []Host{{Name: "192.0.2.1"}, {Name: "0.0.0.0"}}

	_, err := ResolveAll(context.Background(), hosts, 4)
	if !errors.Is(err, ErrUnspecifiedAddress) {
		t.Errorf("ResolveAll error = %v, want ErrUnspecifiedAddress", err)
	}
}

func TestTargetStringReturnsConfiguredName(t *testing.T) {
	target := Target{Host: Host{Name: "router.example.com"}, Addr: netip.MustParseAddr("192.0.2.1")}
	if got := target.String(); got != "router.example.com" {
		t.Errorf("Target.String() = %q, want %q", got, "router.example.com")
	}
}
