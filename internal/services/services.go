package services

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Unknown is the label for ports without a registered name.
const Unknown = "?"

// DefaultPath is the system service database consulted by the CLI.
const DefaultPath = "/etc/services"

// Service is a single port/name pair.
type Service struct {
	Port int    `json:"port"`
	Name string `json:"name"`
}

// Registry maps tcp ports to service names. It is not safe for concurrent
// mutation; lookups on a registry that is no longer merged into are safe.
type Registry struct {
	names map[int]string
}

// New returns a registry seeded with the built-in well-known ports.
func New() *Registry {
	return &Registry{names: maps.Clone(wellKnown)}
}

// Lookup returns the service name for port, or Unknown.
func (r *Registry) Lookup(port int) string {
	if name, ok := r.names[port]; ok {
		return name
	}
	return Unknown
}

// Len returns the number of known ports.
func (r *Registry) Len() int {
	return len(r.names)
}

// Merge adds entries, overriding built-in names for the same port.
func (r *Registry) Merge(entries []Service) {
	for _, s := range entries {
		r.names[s.Port] = s.Name
	}
}

// LoadFile merges the tcp entries of a services(5) file into r.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	r.Merge(entries)
	return nil
}

// All returns every entry ordered by port.
func (r *Registry) All() []Service {
	out := make([]Service, 0, len(r.names))
	for _, port := range slices.Sorted(maps.Keys(r.names)) {
		out = append(out, Service{Port: port, Name: r.names[port]})
	}
	return out
}

// Search fuzzy matches query against service names, best match first.
// Exact names rank ahead of prefix matches, which rank ahead of the rest.
func (r *Registry) Search(query string) []Service {
	all := r.All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}

	matches := fuzzy.Find(query, names)
	q := strings.ToLower(query)
	rank := func(m fuzzy.Match) int {
		name := strings.ToLower(m.Str)
		switch {
		case name == q:
			return 0
		case strings.HasPrefix(name, q):
			return 1
		}
		return 2
	}
	slices.SortStableFunc(matches, func(a, b fuzzy.Match) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return cmp.Compare(b.Score, a.Score)
	})

	out := make([]Service, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}

// Parse reads the services(5) format:
//
//	name  port/protocol  [aliases ...]  [# comment]
//
// Only tcp entries are returned, and only the first entry for each port.
func Parse(r io.Reader) ([]Service, error) {
	var out []Service
	seen := make(map[int]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		portStr, proto, ok := strings.Cut(fields[1], "/")
		if !ok || proto != "tcp" {
			continue
		}
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 0 || port > 65535 {
			continue
		}
		if seen[port] {
			continue
		}
		seen[port] = true

		out = append(out, Service{Port: port, Name: fields[0]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
