package scanner

import (
	"context"
	"fmt"
	"net"
	"net/netip"
)

// Resolver looks up the addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Resolve returns the addresses of host in resolver order. IP literals are
// returned as is. A host with no addresses is reported as ErrUnresolvable.
func Resolve(ctx context.Context, r Resolver, host string) ([]net.IPAddr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return []net.IPAddr{{IP: addr.AsSlice(), Zone: addr.Zone()}}, nil
	}

	addrs, err := r.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvable, host, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s: no addresses found", ErrUnresolvable, host)
	}
	return addrs, nil
}
