// Defines the Arrival struct that models the simulated entity moving through
// a chain. The substrate only needs an opaque handle with a clock; the
// attribute map and engagement marks are the minimal state concrete step
// kinds share through it.

package sim

import "fmt"

// Arrival is the execution context a walker drives through a chain. Each
// arrival carries its own clock, so multiple arrivals may be mid-chain in
// the same trajectory simultaneously without interfering.
type Arrival struct {
	ID string // Unique identifier for the arrival

	// Clock is the arrival's simulated time. The walker advances it by the
	// cost returned from each step's Run.
	Clock float64

	// Attributes holds named numeric state that steps read and write.
	Attributes map[string]float64

	// engaged marks the steps currently holding external state for this
	// arrival, so Remove overrides stay idempotent without per-kind
	// bookkeeping.
	engaged map[Activity]struct{}
}

// NewArrival creates an arrival with an empty attribute map and zero clock.
func NewArrival(id string) *Arrival {
	return &Arrival{
		ID:         id,
		Attributes: make(map[string]float64),
		engaged:    make(map[Activity]struct{}),
	}
}

// SetAttribute stores a named numeric value on the arrival.
func (a *Arrival) SetAttribute(key string, value float64) {
	a.Attributes[key] = value
}

// Attribute returns the named value and whether it was ever set.
func (a *Arrival) Attribute(key string) (float64, bool) {
	v, ok := a.Attributes[key]
	return v, ok
}

// Engage records that act holds external state on behalf of this arrival.
// Concrete kinds call it from Run when they commit a side effect.
func (a *Arrival) Engage(act Activity) {
	a.engaged[act] = struct{}{}
}

// Disengage clears the engagement mark and reports whether it was set.
// Remove overrides use the return value to make their cleanup idempotent:
// only the first Disengage after an Engage yields true.
func (a *Arrival) Disengage(act Activity) bool {
	if _, ok := a.engaged[act]; !ok {
		return false
	}
	delete(a.engaged, act)
	return true
}

// Engaged reports whether act currently holds external state for this arrival.
func (a *Arrival) Engaged(act Activity) bool {
	_, ok := a.engaged[act]
	return ok
}

// This method returns a human-readable string representation of an Arrival.
func (a *Arrival) String() string {
	return fmt.Sprintf("Arrival: (ID: %s, Clock: %.3f)", a.ID, a.Clock)
}
