// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
	"golang.org/x/time/rate"

	"github.com/atc0005/check-icmp/internal/svcstate"
)

// TargetResult is one target's probe outcome.
type TargetResult struct {
	Target Target
	Stats  Stats
	State  svcstate.State
}

// Result is the outcome of a full Run across every configured target.
type Result struct {
	Targets    []TargetResult
	State      svcstate.State
	AliveCount int
}

// replyEvent is what a family's read loop hands back to the sender
// waiting on a particular sequence number.
type replyEvent struct {
	recvAt time.Time
	r      reply
}

// family multiplexes one address family's single shared socket across
// every target being probed on that family: each in-flight packet is
// tagged with a process-wide unique sequence number, and a single reader
// goroutine demultiplexes incoming replies to the waiting sender by that
// sequence number. A raw ICMP socket is a scarce, privileged resource;
// this avoids needing one per target.
type family struct {
	sock *socket

	mu      sync.Mutex
	pending map[uint16]chan replyEvent

	seq uint32 // atomically incremented, wraps via uint16 conversion
	id  int
}

func newFamily(v6 bool) (*family, error) {
	sock, err := openSocket(v6)
	if err != nil {
		return nil, err
	}
	return &family{
		sock:    sock,
		pending: make(map[uint16]chan replyEvent),
		// id is the low 16 bits of the sending process's PID, matching
		// ping(8)/check_icmp's convention so replies can be matched back
		// to this run (and not some other process's in-flight pings)
		// without per-packet bookkeeping beyond the identifier itself.
		id: os.Getpid() & 0xffff,
	}, nil
}

func (f *family) nextSeq() uint16 {
	return uint16(atomic.AddUint32(&f.seq, 1))
}

// send transmits one echo request and returns a channel that receives
// exactly one replyEvent if a matching reply arrives before the caller
// gives up and calls cancelWait.
func (f *family) send(dst netip.Addr, payload []byte) (seq uint16, sentAt time.Time, wait <-chan replyEvent, err error) {
	seq = f.nextSeq()
	ch := make(chan replyEvent, 1)

	f.mu.Lock()
	f.pending[seq] = ch
	f.mu.Unlock()

	sentAt, err = f.sock.writeEcho(dst, f.id, int(seq), payload)
	if err != nil {
		f.mu.Lock()
		delete(f.pending, seq)
		f.mu.Unlock()
		return 0, time.Time{}, nil, err
	}

	return seq, sentAt, ch, nil
}

// cancelWait removes a sequence number's pending entry once the caller
// has stopped waiting on it (the reply timed out), so a late reply
// arriving afterward is dropped instead of blocking on a full channel or
// leaking the map entry forever.
func (f *family) cancelWait(seq uint16) {
	f.mu.Lock()
	delete(f.pending, seq)
	f.mu.Unlock()
}

// readLoop runs until ctx is done or the socket errors, dispatching each
// parsed reply to its waiting sender. A reply for a sequence number with
// no (or no longer) waiting sender -- a duplicate, or one that arrived
// after its timeout -- is silently dropped.
func (f *family) readLoop(ctx context.Context) {
	buf := make([]byte, 1500)
	for {
		if ctx.Err() != nil {
			return
		}

		_ = f.sock.SetDeadline(time.Now().Add(200 * time.Millisecond))
		r, err := f.sock.readOne(buf)
		if err != nil {
			continue
		}

		// Datagram sockets get their identifier rewritten by the kernel,
		// which already delivers only this socket's replies.
		if f.sock.privileged && r.ID != f.id {
			continue
		}

		seq := uint16(r.Seq)
		f.mu.Lock()
		ch, ok := f.pending[seq]
		if ok {
			delete(f.pending, seq)
		}
		f.mu.Unlock()

		if ok {
			ch <- replyEvent{recvAt: time.Now(), r: r}
		}
	}
}

func (f *family) Close() error {
	return f.sock.Close()
}

// Run resolves cfg.Hosts and probes each concurrently, returning one
// TargetResult per target plus the Mode-rolled-up overall State.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if len(cfg.Hosts) == 0 {
		return Result{}, ErrNoTargets
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	targets, err := ResolveAll(ctx, cfg.Hosts, cfg.MaxConcurrentResolutions)
	if err != nil {
		return Result{}, err
	}

	needV4, needV6 := false, false
	for _, t := range targets {
		if t.Addr.Is4() {
			needV4 = true
		} else {
			needV6 = true
		}
	}

	var fam4, fam6 *family
	if needV4 {
		fam4, err = newFamily(false)
		if err != nil {
			return Result{}, fmt.Errorf("icmp: %w", err)
		}
		defer fam4.Close()
		if cfg.TTL > 0 {
			_ = ipv4.NewPacketConn(fam4.sock.pc).SetTTL(cfg.TTL)
		}
		go fam4.readLoop(ctx)
	}
	if needV6 {
		fam6, err = newFamily(true)
		if err != nil {
			return Result{}, fmt.Errorf("icmp: %w", err)
		}
		defer fam6.Close()
		if cfg.TTL > 0 {
			_ = ipv6.NewPacketConn(fam6.sock.pc).SetHopLimit(cfg.TTL)
		}
		go fam6.readLoop(ctx)
	}

	results := make([]TargetResult, len(targets))
	var wg sync.WaitGroup

	var targetLimiter *rate.Limiter
	if cfg.TargetInterval > 0 {
		targetLimiter = rate.NewLimiter(rate.Every(cfg.TargetInterval), 1)
	}

	for i, t := range targets {
		i, t := i, t
		fam := fam4
		if t.Addr.Is6() {
			fam = fam6
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if targetLimiter != nil {
				_ = targetLimiter.Wait(ctx)
			}
			stats := probeTarget(ctx, cfg, t, fam)
			results[i] = TargetResult{
				Target: t,
				Stats:  stats,
				State:  classifyTarget(cfg, stats),
			}
		}()
	}

	wg.Wait()

	return Result{
		Targets:    results,
		State:      rollupGroup(cfg, results),
		AliveCount: countAlive(results),
	}, nil
}

// probeTarget sends cfg.Count echo requests to t, spaced by
// cfg.PacketInterval (backed off by PacketBackoffFactor after each loss,
// reset to the configured interval after each success), and reduces the
// resulting Samples via ComputeStats.
func probeTarget(ctx context.Context, cfg Config, t Target, fam *family) Stats {
	payload := make([]byte, cfg.PacketSize)
	samples := make([]Sample, 0, cfg.Count)

	interval := cfg.PacketInterval
	if interval <= 0 {
		interval = DefaultPacketInterval
	}
	base := interval

	for i := 0; i < cfg.Count; i++ {
		if ctx.Err() != nil {
			samples = append(samples, Sample{Seq: i, Lost: true})
			continue
		}

		seq, sentAt, wait, err := fam.send(t.Addr, payload)
		if err != nil {
			samples = append(samples, Sample{Seq: i, Lost: true})
			continue
		}

		select {
		case ev := <-wait:
			if ev.r.Unreachable || ev.r.TimeExceeded {
				samples = append(samples, Sample{Seq: i, Lost: true, Answered: true})
				interval = backoff(interval, base)
			} else {
				samples = append(samples, Sample{Seq: i, RTT: ev.recvAt.Sub(sentAt), Answered: true})
				interval = base
			}
		case <-time.After(interval):
			fam.cancelWait(seq)
			samples = append(samples, Sample{Seq: i, Lost: true})
			interval = backoff(interval, base)
		case <-ctx.Done():
			fam.cancelWait(seq)
			samples = append(samples, Sample{Seq: i, Lost: true})
		}

		// An early reply does not shorten the gap before the next request.
		if rest := time.Until(sentAt.Add(interval)); rest > 0 && i < cfg.Count-1 {
			select {
			case <-time.After(rest):
			case <-ctx.Done():
			}
		}
	}

	return ComputeStats(samples, lossThresholdPercent(cfg), jitterThresholdMS(cfg))
}

// lossThresholdPercent resolves the divisor the composite score formula
// uses for loss, preferring the configured critical loss threshold and
// falling back to DefaultCritLoss when none is configured or it has no
// finite upper bound.
func lossThresholdPercent(cfg Config) float64 {
	if v, ok := cfg.LossThreshold.CriticalUpperBound(); ok {
		return v
	}
	return DefaultCritLoss
}

// jitterThresholdMS resolves the divisor the composite score formula uses
// for jitter, preferring the configured critical jitter threshold and
// falling back to DefaultCritJitter when none is configured or it has no
// finite upper bound.
func jitterThresholdMS(cfg Config) float64 {
	if v, ok := cfg.JitterThreshold.CriticalUpperBound(); ok {
		return v
	}
	return msFloat(DefaultCritJitter)
}

func backoff(current, base time.Duration) time.Duration {
	next := time.Duration(float64(current) * PacketBackoffFactor)
	ceiling := base * 10
	if next > ceiling {
		return ceiling
	}
	return next
}

// countAlive counts targets that answered anything at all -- an echo
// reply or an ICMP error -- not only those with a usable RTT sample, so
// hostcheck mode reports a target alive even if every reply it ever
// sends back is "destination unreachable."
func countAlive(results []TargetResult) int {
	n := 0
	for _, r := range results {
		if r.Stats.Answered > 0 {
			n++
		}
	}
	return n
}
