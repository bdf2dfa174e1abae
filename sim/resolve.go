package sim

import "fmt"

// ValueSource resolves a typed step parameter at execution time. A parameter
// may be fixed at build time (Constant), computed by host-side logic with no
// view of the entity (Thunk), or computed from live entity state (Bound).
// Resolution happens fresh on every access: a parameter may be stochastic
// or state-dependent, so results are never cached across calls.
type ValueSource[T any] interface {
	Resolve(a *Arrival) (T, error)
}

// TypeConversionError reports that a thunk's dynamically-typed result could
// not be converted to the requested parameter type. It surfaces through the
// step's Run; the caller must abort or translate it into a simulation-level
// failure, never silently default.
type TypeConversionError struct {
	Value any    // the value the thunk produced
	Want  string // the requested type
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v (%T) to %s", e.Value, e.Value, e.Want)
}

// Constant is a value source fixed at build time. The arrival is unused.
type Constant[T any] struct {
	Value T
}

// NewConstant wraps a fixed value as a value source.
func NewConstant[T any](v T) Constant[T] {
	return Constant[T]{Value: v}
}

// Resolve returns the stored value unchanged.
func (c Constant[T]) Resolve(*Arrival) (T, error) {
	return c.Value, nil
}

func (c Constant[T]) String() string {
	return fmt.Sprint(c.Value)
}

// Thunk is a value source backed by a zero-argument host closure returning a
// dynamically-typed result. The result is converted to T on every resolution.
type Thunk[T any] struct {
	Fn func() any
}

// NewThunk wraps a host closure as a value source.
func NewThunk[T any](fn func() any) Thunk[T] {
	if fn == nil {
		panic("NewThunk: fn must not be nil")
	}
	return Thunk[T]{Fn: fn}
}

// Resolve invokes the closure and converts its result to T.
func (t Thunk[T]) Resolve(*Arrival) (T, error) {
	return convert[T](t.Fn())
}

func (t Thunk[T]) String() string {
	return "function()"
}

// Bound is a value source backed by a callback taking the executing arrival.
type Bound[T any] struct {
	Fn func(*Arrival) T
}

// NewBound wraps an arrival-bound callback as a value source.
func NewBound[T any](fn func(*Arrival) T) Bound[T] {
	if fn == nil {
		panic("NewBound: fn must not be nil")
	}
	return Bound[T]{Fn: fn}
}

// Resolve invokes the callback with the arrival and returns its result.
func (b Bound[T]) Resolve(a *Arrival) (T, error) {
	return b.Fn(a), nil
}

func (b Bound[T]) String() string {
	return "function(arrival)"
}

// convert coerces a dynamically-typed thunk result to the requested type.
// Exact type matches pass through; the numeric widenings below cover what
// host closures commonly hand back for numbers.
func convert[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	switch any(zero).(type) {
	case float64:
		switch n := v.(type) {
		case int:
			return any(float64(n)).(T), nil
		case int64:
			return any(float64(n)).(T), nil
		case float32:
			return any(float64(n)).(T), nil
		}
	case int:
		switch n := v.(type) {
		case int64:
			return any(int(n)).(T), nil
		case float64:
			return any(int(n)).(T), nil
		}
	}
	return zero, &TypeConversionError{Value: v, Want: fmt.Sprintf("%T", zero)}
}
