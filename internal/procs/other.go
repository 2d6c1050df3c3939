//go:build !linux && !darwin && !windows

package procs

import (
	"errors"
	"runtime"
)

type unsupportedLister struct{}

func newPlatformLister() Lister {
	return unsupportedLister{}
}

func (unsupportedLister) Listening() ([]Owner, error) {
	return nil, errors.New("listing sockets is not supported on " + runtime.GOOS)
}
