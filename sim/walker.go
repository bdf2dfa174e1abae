package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Walk drives a single arrival through traj from its head, following each
// step's virtual Next and accumulating the returned costs into the
// arrival's clock. It returns the total simulated time elapsed during the
// walk and terminates when Next yields nil.
//
// On context cancellation or a step failure, Walk calls Remove on the
// current and all physically later steps before returning, giving each a
// chance to release external commitments for the terminated arrival.
func Walk(ctx context.Context, traj Trajectory, a *Arrival) (float64, error) {
	if a == nil {
		panic("Walk: arrival must not be nil")
	}
	start := a.Clock
	for node := traj.Head(); node != nil; node = node.Next() {
		if err := ctx.Err(); err != nil {
			release(node, a)
			return a.Clock - start, err
		}
		logrus.Debugf("<< %s: %s at %.3f", node.Name(), a.ID, a.Clock)
		cost, err := node.Run(a)
		if err != nil {
			release(node, a)
			return a.Clock - start, fmt.Errorf("running %s: %w", node.Name(), err)
		}
		a.Clock += cost
	}
	return a.Clock - start, nil
}

// release notifies node and every physically later step that the arrival is
// being discarded. Remove degrades to a no-op for steps the arrival never
// engaged, so over-notifying the tail of the chain is safe.
func release(node Activity, a *Arrival) {
	for cur := node; cur != nil; cur = cur.base().next {
		cur.Remove(a)
	}
}
