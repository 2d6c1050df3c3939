package scanner

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// PoolConfig contains runtime configuration for a Pool.
type PoolConfig struct {
	Size     int
	Rate     float64
	Prober   *Prober
	Progress func(completed, total int)
}

// Pool runs a Prober over a candidate set with a fixed number of workers.
type Pool struct {
	size     int
	prober   *Prober
	limiter  *rate.Limiter
	progress func(completed, total int)
}

// NewPool checks the configuration against the process limits and returns
// a ready pool.
func NewPool(cfg PoolConfig) (*Pool, error) {
	if cfg.Size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPoolSize, cfg.Size)
	}
	if err := checkDescriptorLimit(cfg.Size); err != nil {
		return nil, err
	}

	p := &Pool{
		size:     cfg.Size,
		prober:   cfg.Prober,
		progress: cfg.Progress,
	}
	if cfg.Rate > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}
	return p, nil
}

// Run probes every candidate exactly once and returns the results in
// completion order. It returns only after the pool has drained. On error no
// results are returned.
func (p *Pool) Run(ctx context.Context, addrs []net.IPAddr, candidates Candidates) ([]Result, error) {
	total := candidates.Len()
	jobs := make(chan int, p.size)
	results := make(chan Result, p.size)

	parent := ctx
	g, ctx := errgroup.WithContext(ctx)

	// feeder
	g.Go(func() error {
		defer close(jobs)
		for port := range candidates.All() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- port:
			}
		}
		return nil
	})

	for range p.size {
		g.Go(func() error {
			for port := range jobs {
				if p.limiter != nil {
					if err := p.limiter.Wait(ctx); err != nil {
						return err
					}
				}
				res := p.prober.Probe(ctx, addrs, port)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- res:
				}
			}
			return nil
		})
	}

	var runErr error
	go func() {
		runErr = g.Wait()
		close(results)
	}()

	collected := make([]Result, 0, total)
	for res := range results {
		collected = append(collected, res)
		if p.progress != nil {
			p.progress(len(collected), total)
		}
	}

	// cancelled dials collapse to closed ports; a run that raced the
	// cancellation to completion is still a cancelled run
	if runErr == nil {
		runErr = parent.Err()
	}
	if runErr != nil {
		return nil, runErr
	}
	if len(collected) != total {
		return nil, fmt.Errorf("%w: %d of %d results", ErrIncomplete, len(collected), total)
	}
	return collected, nil
}
