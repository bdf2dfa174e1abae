// Implements the Chain, which owns a trajectory's activities as a unit.
// Walkers hold only borrowed pointers into the chain and never own nodes.

package sim

import (
	"fmt"
	"io"
)

// Trajectory is the contract between the chain substrate and whatever
// representation holds a trajectory. Head and Tail return nil when empty.
// Clone must be a deep structural copy: mutating the clone's activities
// never affects the original's.
type Trajectory interface {
	Head() Activity
	Tail() Activity
	Len() int
	Clone() Trajectory
	Print(w io.Writer, indent int, verbose bool)
}

// Chain is the owning trajectory representation: a doubly-linked sequence of
// activities built by sequential append. The zero value is an empty chain.
type Chain struct {
	head Activity
	tail Activity
	n    int
}

// NewChain builds a chain by appending the given activities in order.
func NewChain(acts ...Activity) *Chain {
	c := &Chain{}
	for _, act := range acts {
		c.Append(act)
	}
	return c
}

// Append links act after the current tail and returns the chain for
// chaining further appends. The activity must be unlinked.
func (c *Chain) Append(act Activity) *Chain {
	if act == nil {
		panic("Append: act must not be nil")
	}
	if act.base().next != nil || act.base().prev != nil {
		panic(fmt.Sprintf("Append: %s is already linked", act.Name()))
	}
	act.SetPrev(c.tail)
	if c.tail != nil {
		c.tail.SetNext(act)
	} else {
		c.head = act
	}
	c.tail = act
	c.n++
	return c
}

// Head returns the first activity, or nil for an empty chain.
func (c *Chain) Head() Activity { return c.head }

// Tail returns the last activity, or nil for an empty chain.
func (c *Chain) Tail() Activity { return c.tail }

// Len returns the number of activities in the chain.
func (c *Chain) Len() int { return c.n }

// Clone produces an independent deep copy: every activity is cloned and the
// copies are re-linked in the same relative order, so the clone satisfies
// the linkage invariant on its own. Cloning while a walk of this same chain
// is in progress is not supported; distinct clones may then be walked
// concurrently.
func (c *Chain) Clone() Trajectory {
	clone := &Chain{}
	for cur := c.head; cur != nil; cur = cur.base().next {
		clone.Append(cur.Clone())
	}
	clone.verify()
	return clone
}

// Print renders every activity in physical chain order.
func (c *Chain) Print(w io.Writer, indent int, verbose bool) {
	for cur := c.head; cur != nil; cur = cur.base().next {
		cur.Print(w, indent, verbose, false)
	}
}

// verify walks the physical links and panics on a next/prev asymmetry. An
// inconsistent chain is a programming error, not a recoverable condition,
// so it is checked here at clone time rather than during traversal.
func (c *Chain) verify() {
	var prev Activity
	n := 0
	for cur := c.head; cur != nil; cur = cur.base().next {
		if cur.base().prev != prev {
			panic(fmt.Sprintf("chain: inconsistent prev link at %s (position %d)", cur.Name(), n))
		}
		prev = cur
		n++
	}
	if prev != c.tail {
		panic("chain: tail does not terminate the physical links")
	}
	if n != c.n {
		panic(fmt.Sprintf("chain: length %d, counted %d", c.n, n))
	}
}
