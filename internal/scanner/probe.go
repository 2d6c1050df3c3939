package scanner

import (
	"context"
	"net"
	"strconv"
	"time"
)

// Dialer opens network connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Prober performs single connect attempts. Timeout is fixed for the
// lifetime of the prober.
type Prober struct {
	Dialer  Dialer
	Timeout time.Duration
}

// Probe tries every address in order and reports whether any of them
// accepted a TCP connection on port. Failures are never returned; they
// collapse to an unreachable result.
func (p *Prober) Probe(ctx context.Context, addrs []net.IPAddr, port int) Result {
	for _, addr := range addrs {
		if p.attempt(ctx, addr, port) {
			return Result{Port: port, Reachable: true}
		}
	}
	return Result{Port: port, Reachable: false}
}

func (p *Prober) attempt(ctx context.Context, addr net.IPAddr, port int) bool {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	conn, err := p.Dialer.DialContext(ctx, network(addr), net.JoinHostPort(addr.String(), strconv.Itoa(port)))
	if err != nil {
		return false
	}
	shutdown(conn)
	return true
}

// shutdown closes both directions before releasing the connection.
func shutdown(conn net.Conn) {
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseRead()
		_ = tc.CloseWrite()
	}
	_ = conn.Close()
}

func network(addr net.IPAddr) string {
	if addr.IP.To4() != nil {
		return "tcp4"
	}
	return "tcp6"
}
