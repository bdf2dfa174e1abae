package sim

import (
	"errors"
	"testing"
)

func TestCombinator_Plus(t *testing.T) {
	op, err := Combinator('+')
	if err != nil {
		t.Fatalf("Combinator('+'): %v", err)
	}
	if got := op(2.0, 3.0); got != 5.0 {
		t.Errorf("op(2, 3): got %f, want 5.0", got)
	}
}

func TestCombinator_Times(t *testing.T) {
	op, err := Combinator('*')
	if err != nil {
		t.Fatalf("Combinator('*'): %v", err)
	}
	if got := op(2.0, 3.0); got != 6.0 {
		t.Errorf("op(2, 3): got %f, want 6.0", got)
	}
}

func TestCombinator_Unknown_IsConfigurationError(t *testing.T) {
	// WHEN an unrecognized tag is resolved
	op, err := Combinator('/')

	// THEN no combinator comes back and the error is the sentinel
	if op != nil {
		t.Error("expected nil combinator for unknown tag")
	}
	if !errors.Is(err, ErrUnsupportedOperator) {
		t.Errorf("expected ErrUnsupportedOperator, got %v", err)
	}
}
