//go:build linux

package procs

import (
	"bufio"
	"bytes"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var (
	lsofNameRe = regexp.MustCompile(`^(\*|\[?[^\]]+\]?):(\d+)$`)
	ssPIDRe    = regexp.MustCompile(`pid=(\d+)`)
	ssProcRe   = regexp.MustCompile(`"([^"]+)"`)
)

type linuxLister struct{}

func newPlatformLister() Lister {
	return &linuxLister{}
}

func (l *linuxLister) Listening() ([]Owner, error) {
	out, err := exec.Command("lsof", "-iTCP", "-sTCP:LISTEN", "-P", "-n").Output()
	if err != nil {
		// lsof is often missing on minimal systems
		out, err = exec.Command("ss", "-tlnp").Output()
		if err != nil {
			return nil, err
		}
		return parseSS(out), nil
	}
	return parseLsof(out), nil
}

// parseLsof reads `lsof -iTCP -sTCP:LISTEN -P -n` output:
// COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME
func parseLsof(output []byte) []Owner {
	var owners []Owner
	seen := make(map[[2]int]bool)

	sc := bufio.NewScanner(bytes.NewReader(output))
	sc.Scan() // header

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 9 {
			continue
		}

		name := fields[len(fields)-1]
		if name == "(LISTEN)" {
			name = fields[len(fields)-2]
		}
		m := lsofNameRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		port, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		pid, _ := strconv.Atoi(fields[1])

		key := [2]int{port, pid}
		if seen[key] {
			continue
		}
		seen[key] = true

		owners = append(owners, Owner{
			Port:    port,
			PID:     pid,
			Process: fields[0],
			User:    fields[2],
			Address: m[1],
		})
	}
	return owners
}

// parseSS reads `ss -tlnp` output:
// State Recv-Q Send-Q Local-Address:Port Peer-Address:Port Process
func parseSS(output []byte) []Owner {
	var owners []Owner
	seen := make(map[[2]int]bool)

	sc := bufio.NewScanner(bytes.NewReader(output))
	sc.Scan() // header

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 {
			continue
		}

		local := fields[3]
		i := strings.LastIndex(local, ":")
		if i == -1 {
			continue
		}
		port, err := strconv.Atoi(local[i+1:])
		if err != nil {
			continue
		}

		var pid int
		var process string
		if len(fields) >= 6 {
			if m := ssPIDRe.FindStringSubmatch(fields[5]); m != nil {
				pid, _ = strconv.Atoi(m[1])
			}
			if m := ssProcRe.FindStringSubmatch(fields[5]); m != nil {
				process = m[1]
			}
		}

		key := [2]int{port, pid}
		if seen[key] {
			continue
		}
		seen[key] = true

		owners = append(owners, Owner{
			Port:    port,
			PID:     pid,
			Process: process,
			Address: local[:i],
		})
	}
	return owners
}
