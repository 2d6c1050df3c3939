package scanner

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
)

var errRefused = errors.New("connect: connection refused")

type fakeConn struct {
	net.Conn
	closed atomic.Bool
}

func (c *fakeConn) Close() error {
	c.closed.Store(true)
	return nil
}

// fakeDialer accepts connections on the listed host:port addresses and
// refuses everything else. A nil open set with block=true hangs until
// the context ends.
type fakeDialer struct {
	open  map[string]bool
	block bool

	mu     sync.Mutex
	dialed map[int]int
	order  []string
	conns  []*fakeConn
}

func newFakeDialer(open ...string) *fakeDialer {
	d := &fakeDialer{open: make(map[string]bool), dialed: make(map[int]int)}
	for _, a := range open {
		d.open[a] = true
	}
	return d
}

func (d *fakeDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	_, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}
	port, _ := strconv.Atoi(portStr)

	d.mu.Lock()
	d.dialed[port]++
	d.order = append(d.order, address)
	d.mu.Unlock()

	if d.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if !d.open[address] {
		return nil, errRefused
	}

	c := &fakeConn{}
	d.mu.Lock()
	d.conns = append(d.conns, c)
	d.mu.Unlock()
	return c, nil
}

type fakeResolver struct {
	addrs []net.IPAddr
	err   error
	calls atomic.Int32
}

func (r *fakeResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	r.calls.Add(1)
	return r.addrs, r.err
}

type tableNamer map[int]string

func (t tableNamer) Lookup(port int) string {
	if n, ok := t[port]; ok {
		return n
	}
	return "?"
}
