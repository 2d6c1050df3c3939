package scanner

import "slices"

// Aggregate keeps the reachable results, sorts them by port and annotates
// each with its service name. The output never contains duplicates.
func Aggregate(results []Result, names ServiceNamer) []OpenPort {
	ports := make([]int, 0)
	for _, r := range results {
		if r.Reachable {
			ports = append(ports, r.Port)
		}
	}
	slices.Sort(ports)
	ports = slices.Compact(ports)

	open := make([]OpenPort, 0, len(ports))
	for _, p := range ports {
		open = append(open, OpenPort{Port: p, Service: names.Lookup(p)})
	}
	return open
}

// Ports returns the open port numbers of the report.
func (r *Report) Ports() []int {
	ports := make([]int, 0, len(r.Open))
	for _, p := range r.Open {
		ports = append(ports, p.Port)
	}
	return ports
}
