//go:build darwin

package procs

import (
	"bufio"
	"bytes"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// NAME may be "127.0.0.1:3000", "*:8080" or "[::1]:3000", followed by " (LISTEN)".
var lsofNameRe = regexp.MustCompile(`^(\*|\[?[^\]]+\]?):(\d+)`)

type darwinLister struct{}

func newPlatformLister() Lister {
	return &darwinLister{}
}

func (l *darwinLister) Listening() ([]Owner, error) {
	out, err := exec.Command("lsof", "-iTCP", "-sTCP:LISTEN", "-P", "-n", "+c", "0").Output()
	if err != nil {
		// lsof exits 1 when nothing matches
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return []Owner{}, nil
		}
		return nil, err
	}
	return parseLsof(out), nil
}

func parseLsof(output []byte) []Owner {
	var owners []Owner
	seen := make(map[[2]int]bool)

	sc := bufio.NewScanner(bytes.NewReader(output))
	sc.Scan() // header

	for sc.Scan() {
		// COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME [(LISTEN)]
		fields := strings.Fields(sc.Text())
		if len(fields) < 9 {
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		m := lsofNameRe.FindStringSubmatch(fields[8])
		if m == nil {
			continue
		}
		port, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		key := [2]int{port, pid}
		if seen[key] {
			continue
		}
		seen[key] = true

		owners = append(owners, Owner{
			Port:    port,
			PID:     pid,
			Process: unescapeProcessName(fields[0]),
			User:    fields[2],
			Address: m[1],
		})
	}
	return owners
}

// unescapeProcessName undoes lsof escaping, e.g. "Code\x20Helper".
func unescapeProcessName(name string) string {
	name = strings.ReplaceAll(name, `\x20`, " ")
	return strings.ReplaceAll(name, `\x2d`, "-")
}
