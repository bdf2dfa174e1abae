// Defines the Activity contract implemented by every step in a trajectory,
// and the embeddable Base that carries the shared chain state.

package sim

import "io"

// Activity is one step of a simulated entity's behavior. Concrete kinds
// embed Base for the shared state and implement Run and Clone themselves.
//
// The walker treats the returned cost as simulated time: it adds it to the
// arrival's clock and resumes at Next(). Implementations confine side
// effects to the arrival and to their own internal state.
type Activity interface {
	// Name returns the step-kind label, fixed at construction.
	Name() string
	// Tag returns the optional user label, used only for display and lookup.
	Tag() string
	SetTag(tag string)
	// Count returns the repetition counter. Its semantics belong to the
	// concrete kind, e.g. remaining iterations of a loop.
	Count() int
	SetCount(n int)
	// Priority is a tie-breaking hint for the external scheduler among
	// simultaneously-ready arrivals. The activity itself never interprets it.
	Priority() int

	// Run performs the step's effect against the arrival and returns a
	// non-negative simulated-time cost (0 for instantaneous steps).
	Run(a *Arrival) (float64, error)

	// Next returns the successor the walker should visit. The default is
	// the physically-linked neighbor; branching and looping kinds override
	// it to return a computed successor without disturbing the physical
	// chain. Returns nil at the end of the walk.
	Next() Activity
	SetNext(act Activity)
	Prev() Activity
	SetPrev(act Activity)

	// Remove is invoked when the arrival is force-terminated or rerouted
	// away from this step, so kinds holding external state tied to the
	// (step, arrival) pairing can release it. It must be safe to call on an
	// arrival that never engaged this step, and calling it twice must be no
	// different from calling it once. The default is a no-op.
	Remove(a *Arrival)

	// Print renders the step's diagnostic line. verbose adds the memory
	// identities of the step and its physical neighbors; brief suppresses
	// the header and the closing delimiter for composing summaries.
	Print(w io.Writer, indent int, verbose, brief bool)

	// Clone returns a new step of the same concrete kind with name, tag,
	// count and priority copied and both link pointers reset to nil. The
	// chain-level clone re-links the copies.
	Clone() Activity

	// base exposes the embedded chain state; satisfied by embedding Base.
	base() *Base
}

// Base carries the state shared by every activity kind: identity fields and
// the doubly-linked chain storage. For any two physically adjacent steps a,b
// with a.next == b it holds that b.prev == a; the two chain ends have nil
// prev and nil next respectively. Chain links never own their targets; the
// owning Chain does.
type Base struct {
	name     string
	tag      string
	count    int
	priority int

	next Activity
	prev Activity
}

// NewBase constructs the embeddable state for an activity kind.
func NewBase(name string, priority int) Base {
	return Base{name: name, count: 1, priority: priority}
}

func (b *Base) base() *Base { return b }

// Name returns the step-kind label.
func (b *Base) Name() string { return b.name }

// Tag returns the user label, empty when unset.
func (b *Base) Tag() string { return b.tag }

// SetTag replaces the user label.
func (b *Base) SetTag(tag string) { b.tag = tag }

// Count returns the repetition counter.
func (b *Base) Count() int { return b.count }

// SetCount replaces the repetition counter.
func (b *Base) SetCount(n int) { b.count = n }

// Priority returns the scheduler tie-breaking hint.
func (b *Base) Priority() int { return b.priority }

// Next returns the physically-linked successor. Kinds with computed control
// flow override this on their own type.
func (b *Base) Next() Activity { return b.next }

// SetNext replaces the physical successor link.
func (b *Base) SetNext(act Activity) { b.next = act }

// Prev returns the physically-linked predecessor.
func (b *Base) Prev() Activity { return b.prev }

// SetPrev replaces the physical predecessor link.
func (b *Base) SetPrev(act Activity) { b.prev = act }

// Remove is the default no-op cleanup hook.
func (b *Base) Remove(a *Arrival) {}

// Print renders the header and the closing delimiter. Kinds with parameters
// override this to append their own labelled arguments via PrintArgs.
func (b *Base) Print(w io.Writer, indent int, verbose, brief bool) {
	b.PrintHeader(w, indent, verbose, brief)
	PrintClose(w, brief, false)
}

// CloneBase returns a copy of the shared state with both link pointers
// reset. Concrete kinds build their Clone result around it.
func (b *Base) CloneBase() Base {
	c := *b
	c.next, c.prev = nil, nil
	return c
}
