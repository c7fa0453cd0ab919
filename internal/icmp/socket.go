// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/higebu/netfd"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
	"golang.org/x/sys/unix"
)

// socketRecvBufferBytes is the SO_RCVBUF size requested on every echo
// socket. The kernel default is tuned for ordinary sockets, not a
// scheduler that can have many probes in flight across a large target
// group; a bigger buffer avoids kernel-side drops under burst load being
// misread as packet loss on the wire.
const socketRecvBufferBytes = 1 << 20

// socket wraps one address family's echo listener. A raw ICMP socket
// requires CAP_NET_RAW; when unavailable, the unprivileged "ping"
// datagram socket (network "udp4"/"udp6") is used instead, trading the
// ability to see the full IP header (and hence TTL/TimeExceeded replies
// from intermediate hops) for no privilege requirement. This fallback
// mirrors
// _examples/other_examples/b116befc_akramer-vaportrail__internal-probe-probe.go.go.
type socket struct {
	pc         net.PacketConn
	protocol   int
	privileged bool
	isIPv6     bool
}

// openSocket opens an echo socket for the given address family, trying
// the privileged raw network first and falling back to the unprivileged
// datagram network.
func openSocket(v6 bool) (*socket, error) {
	rawNet, udpNet, proto := "ip4:icmp", "udp4", int(unix.IPPROTO_ICMP)
	if v6 {
		rawNet, udpNet, proto = "ip6:ipv6-icmp", "udp6", int(unix.IPPROTO_ICMPV6)
	}

	pc, err := net.ListenPacket(rawNet, bindAddress(v6))
	if err == nil {
		tuneRecvBuffer(pc)
		return &socket{pc: pc, protocol: proto, privileged: true, isIPv6: v6}, nil
	}

	pc, err = net.ListenPacket(udpNet, bindAddress(v6))
	if err != nil {
		return nil, fmt.Errorf("icmp: open socket (v6=%v): %w", v6, err)
	}
	tuneRecvBuffer(pc)
	return &socket{pc: pc, protocol: proto, privileged: false, isIPv6: v6}, nil
}

func bindAddress(v6 bool) string {
	if v6 {
		return "::"
	}
	return "0.0.0.0"
}

// tuneRecvBuffer enlarges the socket's receive buffer via the raw file
// descriptor extracted by github.com/higebu/netfd. The listeners
// net.ListenPacket hands back for "ip4:icmp"/"ip6:ipv6-icmp"/"udp4"/
// "udp6" are concretely *net.IPConn or *net.UDPConn, both of which also
// satisfy net.Conn, so the type assertion below always succeeds for the
// sockets this package opens.
func tuneRecvBuffer(pc net.PacketConn) {
	conn, ok := pc.(net.Conn)
	if !ok {
		return
	}
	fd := netfd.GetFdFromConn(conn)
	if fd < 0 {
		return
	}
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF, socketRecvBufferBytes)
}

func (c *socket) Close() error {
	return c.pc.Close()
}

func (c *socket) SetDeadline(t time.Time) error {
	return c.pc.SetDeadline(t)
}

// writeEcho marshals and sends an ICMP echo request to dst carrying
// (id, seq, payload), returning the time the write completed for use as
// the RTT origin.
func (c *socket) writeEcho(dst netip.Addr, id, seq int, payload []byte) (time.Time, error) {
	msg := icmp.Message{
		Type: icmpType(c.isIPv6, true),
		Code: 0,
		Body: &icmp.Echo{
			ID:   id,
			Seq:  seq,
			Data: payload,
		},
	}

	wire, err := msg.Marshal(nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("icmp: marshal echo request: %w", err)
	}

	addr := destAddr(dst, c.privileged)
	sentAt := time.Now()
	if _, err := c.pc.WriteTo(wire, addr); err != nil {
		return time.Time{}, fmt.Errorf("icmp: write echo request: %w", err)
	}
	return sentAt, nil
}

func destAddr(addr netip.Addr, privileged bool) net.Addr {
	ip := net.IP(addr.AsSlice())
	if privileged {
		return &net.IPAddr{IP: ip}
	}
	return &net.UDPAddr{IP: ip}
}

func icmpType(v6, echo bool) icmp.Type {
	switch {
	case v6 && echo:
		return ipv6.ICMPTypeEchoRequest
	case v6:
		return ipv6.ICMPTypeEchoReply
	case echo:
		return ipv4.ICMPTypeEcho
	default:
		return ipv4.ICMPTypeEchoReply
	}
}

// reply is one parsed ICMP response: an echo reply matching our own
// probe, or a network-layer error report (unreachable / time exceeded)
// that still counts as "we heard back from the network," just not with
// success.
type reply struct {
	ID, Seq      int
	Unreachable  bool
	TimeExceeded bool
}

// readOne blocks (up to the socket's deadline) for a single ICMP message
// and reports what it was.
func (c *socket) readOne(buf []byte) (reply, error) {
	n, _, err := c.pc.ReadFrom(buf)
	if err != nil {
		return reply{}, err
	}

	rm, err := icmp.ParseMessage(c.protocol, buf[:n])
	if err != nil {
		return reply{}, fmt.Errorf("icmp: parse reply: %w", err)
	}

	switch body := rm.Body.(type) {
	case *icmp.Echo:
		return reply{ID: body.ID, Seq: body.Seq}, nil
	case *icmp.DstUnreach:
		return reply{Unreachable: true}, nil
	case *icmp.TimeExceeded:
		return reply{TimeExceeded: true}, nil
	default:
		return reply{}, fmt.Errorf("icmp: unexpected reply type %T", body)
	}
}
