//go:build linux

package scanner

import (
	"context"
	"net"
	"os"
	"testing"
	"time"
)

func openDescriptors(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot read /proc/self/fd: %v", err)
	}
	return len(entries)
}

func TestScan_ReleasesDescriptors(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	go func() {
		for {
			c, err := l.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()

	c, err := NewCandidates(PortRange{Low: max(port-500, 1), High: min(port+500, 65535)})
	if err != nil {
		t.Fatalf("NewCandidates: %v", err)
	}
	s, err := New(Options{Timeout: 200 * time.Millisecond, PoolSize: 32, Candidates: c})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	before := openDescriptors(t)
	for range 3 {
		if _, err := s.Scan(context.Background(), "127.0.0.1"); err != nil {
			t.Fatalf("Scan: %v", err)
		}
	}
	// give the runtime poller a moment to settle
	time.Sleep(100 * time.Millisecond)

	if after := openDescriptors(t); after > before {
		t.Fatalf("descriptors grew from %d to %d", before, after)
	}
}
