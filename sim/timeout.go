package sim

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Timeout holds the arrival in place for a resolved amount of simulated
// time. It is the canonical concrete activity kind: richer step catalogs
// live outside this package and follow the same shape.
type Timeout struct {
	Base
	delay ValueSource[float64]
}

// NewTimeout creates a Timeout whose delay is resolved fresh on every run.
func NewTimeout(delay ValueSource[float64], priority int) *Timeout {
	if delay == nil {
		panic("NewTimeout: delay must not be nil")
	}
	return &Timeout{Base: NewBase("Timeout", priority), delay: delay}
}

// Run resolves the delay and returns it as the step's simulated-time cost.
// A negative resolved delay is clamped to zero.
func (t *Timeout) Run(a *Arrival) (float64, error) {
	d, err := t.delay.Resolve(a)
	if err != nil {
		return 0, fmt.Errorf("resolving delay: %w", err)
	}
	if d < 0 {
		logrus.Debugf("Timeout: negative delay %f for %s clamped to 0", d, a.ID)
		d = 0
	}
	return d, nil
}

// Clone returns an unlinked copy sharing the delay source. Sources are
// immutable descriptors, so sharing keeps clones independent.
func (t *Timeout) Clone() Activity {
	return &Timeout{Base: t.CloneBase(), delay: t.delay}
}

// Print renders the header followed by the delay argument.
func (t *Timeout) Print(w io.Writer, indent int, verbose, brief bool) {
	t.PrintHeader(w, indent, verbose, brief)
	PrintArgs(w, brief, false, Arg{Label: "delay", Value: t.delay})
}
