package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunReplications walks n independent replications of traj concurrently and
// returns the elapsed simulated time of each, in replication order. Every
// replication gets its own deep clone, so per-step state such as counters
// never leaks between runs. The clones are created up front, before any
// walk starts; newArrival is called once per replication with its index.
//
// The first failing replication cancels the rest and its error is returned.
func RunReplications(ctx context.Context, traj Trajectory, n int, newArrival func(rep int) *Arrival) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("replications must be positive, got %d", n)
	}
	if newArrival == nil {
		panic("RunReplications: newArrival must not be nil")
	}

	clones := make([]Trajectory, n)
	for rep := range clones {
		clones[rep] = traj.Clone()
	}

	totals := make([]float64, n)
	g, ctx := errgroup.WithContext(ctx)
	for rep := 0; rep < n; rep++ {
		rep := rep
		g.Go(func() error {
			total, err := Walk(ctx, clones[rep], newArrival(rep))
			if err != nil {
				return fmt.Errorf("replication %d: %w", rep, err)
			}
			totals[rep] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}
