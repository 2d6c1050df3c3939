package scanner

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout is the per-attempt connect deadline. It is tuned for
	// LAN-scale sweeps: slow or filtered paths may be reported closed.
	DefaultTimeout = 10 * time.Millisecond
	// DefaultPoolSize bounds the number of in-flight connection attempts.
	DefaultPoolSize = 256
)

var (
	ErrUnresolvable    = errors.New("host could not be resolved")
	ErrPoolSize        = errors.New("pool size must be at least 1")
	ErrDescriptorLimit = errors.New("pool size exceeds open file limit")
	ErrIncomplete      = errors.New("scan did not probe every candidate")
)

// Result is the outcome of probing a single port.
type Result struct {
	Port      int  `json:"port"`
	Reachable bool `json:"reachable"`
}

// OpenPort is a reachable port annotated with its service name.
type OpenPort struct {
	Port    int    `json:"port"`
	Service string `json:"service"`
	Process string `json:"process,omitempty"`
}

// Report is the terminal output of a scan.
type Report struct {
	Host      string        `json:"host"`
	Addresses []string      `json:"addresses"`
	Open      []OpenPort    `json:"open"`
	Probed    int           `json:"probed"`
	Elapsed   time.Duration `json:"-"`
}

// ServiceNamer maps a port to a human readable service label.
type ServiceNamer interface {
	Lookup(port int) string
}

// Options configures a Scanner. Zero values fall back to the defaults.
type Options struct {
	Timeout  time.Duration
	PoolSize int
	// Rate caps probes per second. Zero disables the limiter.
	Rate       float64
	Candidates Candidates
	Services   ServiceNamer
	Dialer     Dialer
	Resolver   Resolver
	Logger     *zap.Logger
	// Progress is called from the collecting goroutine after each result.
	Progress func(completed, total int)
}

// Scanner runs full scans against one host at a time.
type Scanner struct {
	opts     Options
	resolver Resolver
	pool     *Pool
	log      *zap.Logger
}

// New validates opts and builds a Scanner.
func New(opts Options) (*Scanner, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = DefaultPoolSize
	}
	if opts.PoolSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPoolSize, opts.PoolSize)
	}
	if opts.Candidates.Len() == 0 {
		opts.Candidates = FullRange()
	}
	if opts.Services == nil {
		opts.Services = unknownServices{}
	}
	if opts.Dialer == nil {
		opts.Dialer = &net.Dialer{}
	}
	if opts.Resolver == nil {
		opts.Resolver = net.DefaultResolver
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	pool, err := NewPool(PoolConfig{
		Size:     opts.PoolSize,
		Rate:     opts.Rate,
		Prober:   &Prober{Dialer: opts.Dialer, Timeout: opts.Timeout},
		Progress: opts.Progress,
	})
	if err != nil {
		return nil, err
	}

	return &Scanner{
		opts:     opts,
		resolver: opts.Resolver,
		pool:     pool,
		log:      opts.Logger,
	}, nil
}

// Scan resolves host once, probes every candidate and returns the report.
// No report is returned when the run fails.
func (s *Scanner) Scan(ctx context.Context, host string) (*Report, error) {
	start := time.Now()

	addrs, err := Resolve(ctx, s.resolver, host)
	if err != nil {
		return nil, err
	}

	addrStrings := make([]string, 0, len(addrs))
	for _, a := range addrs {
		addrStrings = append(addrStrings, a.String())
	}
	s.log.Debug("resolved target",
		zap.String("host", host),
		zap.Strings("addresses", addrStrings),
	)
	s.log.Debug("starting pool",
		zap.Int("workers", s.opts.PoolSize),
		zap.Duration("timeout", s.opts.Timeout),
		zap.Int("candidates", s.opts.Candidates.Len()),
	)

	results, err := s.pool.Run(ctx, addrs, s.opts.Candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", host, err)
	}

	report := &Report{
		Host:      host,
		Addresses: addrStrings,
		Open:      Aggregate(results, s.opts.Services),
		Probed:    len(results),
		Elapsed:   time.Since(start),
	}

	s.log.Debug("scan complete",
		zap.String("host", host),
		zap.Int("probed", report.Probed),
		zap.Ints("open", report.Ports()),
		zap.Duration("elapsed", report.Elapsed),
	)

	return report, nil
}

type unknownServices struct{}

func (unknownServices) Lookup(int) string { return "?" }
