package scanner

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

const (
	MinPort = 0
	MaxPort = 65535
)

// PortRange is an inclusive range of ports.
type PortRange struct {
	Low  int
	High int
}

// Candidates is a normalized set of ports: ranges sorted ascending,
// non-overlapping and non-adjacent.
type Candidates struct {
	ranges []PortRange
}

// FullRange returns every port in [0, 65535].
func FullRange() Candidates {
	return Candidates{ranges: []PortRange{{Low: MinPort, High: MaxPort}}}
}

// NewCandidates normalizes the given ranges. Ranges must lie within
// [0, 65535] and have Low <= High.
func NewCandidates(ranges ...PortRange) (Candidates, error) {
	rs := make([]PortRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Low < MinPort || r.High > MaxPort {
			return Candidates{}, fmt.Errorf("port range %d-%d outside %d..%d", r.Low, r.High, MinPort, MaxPort)
		}
		if r.Low > r.High {
			return Candidates{}, fmt.Errorf("range start greater than end: %d-%d", r.Low, r.High)
		}
		rs = append(rs, r)
	}

	slices.SortFunc(rs, func(a, b PortRange) int { return a.Low - b.Low })

	merged := rs[:0]
	for _, r := range rs {
		if n := len(merged); n > 0 && r.Low <= merged[n-1].High+1 {
			merged[n-1].High = max(merged[n-1].High, r.High)
			continue
		}
		merged = append(merged, r)
	}
	return Candidates{ranges: merged}, nil
}

// Len returns the number of ports.
func (c Candidates) Len() int {
	n := 0
	for _, r := range c.ranges {
		n += r.High - r.Low + 1
	}
	return n
}

// Ranges returns a copy of the normalized ranges.
func (c Candidates) Ranges() []PortRange {
	return slices.Clone(c.ranges)
}

// All yields every port in ascending order. Each call starts over.
func (c Candidates) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range c.ranges {
			for p := r.Low; p <= r.High; p++ {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// String renders the set in the same syntax ParsePortSpec accepts.
func (c Candidates) String() string {
	parts := make([]string, 0, len(c.ranges))
	for _, r := range c.ranges {
		if r.Low == r.High {
			parts = append(parts, strconv.Itoa(r.Low))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", r.Low, r.High))
		}
	}
	return strings.Join(parts, ",")
}

// ParsePortSpec parses a port specification.
// Supported forms:
//   - all ports: "", "all" or "-"
//   - single: "22"
//   - list: "22,80,443"
//   - range: "1-1024"
//   - mixed: "22,80,8000-8100"
func ParsePortSpec(spec string) (Candidates, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "-" || strings.EqualFold(spec, "all") {
		return FullRange(), nil
	}

	var ranges []PortRange
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Candidates{}, errors.New("invalid empty token in port spec")
		}

		low, high, isRange := strings.Cut(tok, "-")
		start, err := parsePort(low)
		if err != nil {
			return Candidates{}, err
		}
		end := start
		if isRange {
			if end, err = parsePort(high); err != nil {
				return Candidates{}, err
			}
		}
		ranges = append(ranges, PortRange{Low: start, High: end})
	}

	return NewCandidates(ranges...)
}

func parsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %q", s)
	}
	if v < MinPort || v > MaxPort {
		return 0, fmt.Errorf("port numbers must be in %d..%d, got %d", MinPort, MaxPort, v)
	}
	return v, nil
}
