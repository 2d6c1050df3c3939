//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package scanner

func checkDescriptorLimit(int) error {
	return nil
}
