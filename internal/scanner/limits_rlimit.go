//go:build linux || darwin || freebsd || netbsd || openbsd

package scanner

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// descriptorReserve leaves room for stdio, the resolver and the runtime.
const descriptorReserve = 16

func checkDescriptorLimit(poolSize int) error {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlim); err != nil {
		// Unknown limit, let the dials fail on their own.
		return nil
	}
	if uint64(poolSize)+descriptorReserve > uint64(rlim.Cur) {
		return fmt.Errorf("%w: pool size %d, soft limit %d", ErrDescriptorLimit, poolSize, rlim.Cur)
	}
	return nil
}
