// Package procs maps locally listening TCP ports to the processes that own
// them. It is used to annotate scans of the local machine.
package procs

// Owner is a listening socket and the process holding it.
type Owner struct {
	Port    int    `json:"port"`
	PID     int    `json:"pid"`
	Process string `json:"process"`
	User    string `json:"user"`
	Address string `json:"address"`
}

// Lister reports the listening TCP sockets of this machine.
type Lister interface {
	Listening() ([]Owner, error)
}

// New returns a platform-specific lister.
func New() Lister {
	return newPlatformLister()
}

// ByPort indexes owners by port. When several processes share a port the
// lowest PID wins so the result is stable across runs.
func ByPort(owners []Owner) map[int]Owner {
	out := make(map[int]Owner, len(owners))
	for _, o := range owners {
		if cur, ok := out[o.Port]; ok && cur.PID <= o.PID {
			continue
		}
		out[o.Port] = o
	}
	return out
}
