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
	"fmt"
	"net"
	"net/netip"

	"golang.org/x/sync/errgroup"
)

// Host is a configured check target as the operator wrote it: a hostname
// or address literal, not yet resolved. Mirrors ping_target's distinction
// between the name a user supplies and the address actually probed in
// the C original (check_icmp_helpers.h: ping_target).
type Host struct {
	// Name is the text as configured (a hostname or an address literal).
	Name string
}

// Target is a Host resolved to a concrete address ready to probe.
type Target struct {
	Host Host
	Addr netip.Addr
}

// String returns the configured name, since that is what should appear
// in check output rather than the resolved address.
func (t Target) String() string {
	return t.Host.Name
}

// Sentinel errors for address rejection, mirroring the validation
// ping_target_create performs in the C original before a target is ever
// added to the probe list.
var (
	// ErrUnspecifiedAddress is returned for 0.0.0.0 or :: , which name no
	// reachable host.
	ErrUnspecifiedAddress = errors.New("icmp: target resolves to the unspecified address")

	// ErrBroadcastAddress is returned for 255.255.255.255 (INADDR_NONE),
	// which does not name a single host either.
	ErrBroadcastAddress = errors.New("icmp: target resolves to the broadcast address")
)

func validateResolved(addr netip.Addr) error {
	if addr.IsUnspecified() {
		return ErrUnspecifiedAddress
	}
	if addr.Is4() && addr == netip.AddrFrom4([4]byte{255, 255, 255, 255}) {
		return ErrBroadcastAddress
	}
	return nil
}

// ResolveAll resolves every host concurrently, bounded to maxInFlight
// simultaneous lookups, and returns one Target per Host in the original
// order. If any lookup fails the first error encountered is returned and
// no partial result is produced: a probe run should never silently drop
// a target the operator explicitly configured.
func ResolveAll(ctx context.Context, hosts []Host, maxInFlight int) ([]Target, error) {
	targets := make([]Target, len(hosts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)

	for i, h := range hosts {
		i, h := i, h
		g.Go(func() error {
			addr, err := resolveOne(ctx, h.Name)
			if err != nil {
				return fmt.Errorf("icmp: resolve %q: %w", h.Name, err)
			}
			if err := validateResolved(addr); err != nil {
				return fmt.Errorf("icmp: %q: %w", h.Name, err)
			}
			targets[i] = Target{Host: h, Addr: addr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return targets, nil
}

func resolveOne(ctx context.Context, name string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(name); err == nil {
		return addr, nil
	}

	ips, err := net.DefaultResolver.LookupIP(ctx, "ip", name)
	if err != nil {
		return netip.Addr{}, err
	}
	if len(ips) == 0 {
		return netip.Addr{}, fmt.Errorf("no addresses returned for %q", name)
	}

	addr, ok := netip.AddrFromSlice(ips[0])
	if !ok {
		return netip.Addr{}, fmt.Errorf("unrecognized address form for %q", name)
	}
	return addr.Unmap(), nil
}
