//go:build windows

package procs

import (
	"bufio"
	"bytes"
	"os/exec"
	"strconv"
	"strings"
)

type windowsLister struct{}

func newPlatformLister() Lister {
	return &windowsLister{}
}

func (l *windowsLister) Listening() ([]Owner, error) {
	out, err := exec.Command("netstat", "-ano", "-p", "TCP").Output()
	if err != nil {
		return nil, err
	}
	owners := parseNetstat(out)
	addProcessNames(owners)
	return owners, nil
}

// parseNetstat reads `netstat -ano -p TCP` output:
// Proto Local-Address Foreign-Address State PID
func parseNetstat(output []byte) []Owner {
	var owners []Owner
	seen := make(map[[2]int]bool)

	sc := bufio.NewScanner(bytes.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.Contains(line, "LISTENING") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		local := fields[1]
		i := strings.LastIndex(local, ":")
		if i == -1 {
			continue
		}
		port, err := strconv.Atoi(local[i+1:])
		if err != nil {
			continue
		}
		pid, _ := strconv.Atoi(fields[4])

		key := [2]int{port, pid}
		if seen[key] {
			continue
		}
		seen[key] = true

		owners = append(owners, Owner{Port: port, PID: pid, Address: local[:i]})
	}
	return owners
}

// addProcessNames fills Process from tasklist. Names stay empty when
// tasklist is unavailable.
func addProcessNames(owners []Owner) {
	out, err := exec.Command("tasklist", "/FO", "CSV", "/NH").Output()
	if err != nil {
		return
	}

	names := make(map[int]string)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		// "process.exe","1234","Console","1","10,000 K"
		fields := strings.Split(sc.Text(), ",")
		if len(fields) < 2 {
			continue
		}
		pid, _ := strconv.Atoi(strings.Trim(fields[1], `"`))
		names[pid] = strings.Trim(fields[0], `"`)
	}

	for i := range owners {
		owners[i].Process = names[owners[i].PID]
	}
}
