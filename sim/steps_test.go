// Minimal concrete activity kinds used across the package tests. They stand
// in for the richer step catalogs that live outside this module.

package sim

// fixedStep returns a fixed cost from Run and records how often it was run
// and removed.
type fixedStep struct {
	Base
	cost        float64
	err         error // returned from Run when set
	runs        int
	removeCalls int
}

func newFixedStep(name string, cost float64) *fixedStep {
	return &fixedStep{Base: NewBase(name, 0), cost: cost}
}

func (s *fixedStep) Run(a *Arrival) (float64, error) {
	s.runs++
	if s.err != nil {
		return 0, s.err
	}
	return s.cost, nil
}

func (s *fixedStep) Remove(a *Arrival) {
	s.removeCalls++
}

func (s *fixedStep) Clone() Activity {
	return &fixedStep{Base: s.CloneBase(), cost: s.cost, err: s.err}
}

// repeatStep revisits itself until its repetitions are exhausted, overriding
// the virtual Next while leaving the physical links untouched.
type repeatStep struct {
	Base
	remaining int
}

func newRepeatStep(times int) *repeatStep {
	s := &repeatStep{Base: NewBase("Repeat", 0), remaining: times}
	s.SetCount(times)
	return s
}

func (s *repeatStep) Run(a *Arrival) (float64, error) {
	s.remaining--
	return 1.0, nil
}

func (s *repeatStep) Next() Activity {
	if s.remaining > 0 {
		return s
	}
	return s.base().next
}

func (s *repeatStep) Clone() Activity {
	return &repeatStep{Base: s.CloneBase(), remaining: s.Count()}
}

// seizeStep engages the arrival on Run and releases it on Remove, counting
// actual releases so tests can observe idempotence.
type seizeStep struct {
	Base
	releases int
}

func newSeizeStep() *seizeStep {
	return &seizeStep{Base: NewBase("Seize", 0)}
}

func (s *seizeStep) Run(a *Arrival) (float64, error) {
	a.Engage(s)
	return 0, nil
}

func (s *seizeStep) Remove(a *Arrival) {
	if a.Disengage(s) {
		s.releases++
	}
}

func (s *seizeStep) Clone() Activity {
	return &seizeStep{Base: s.CloneBase()}
}
