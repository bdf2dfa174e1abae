package sim

import (
	"errors"
	"fmt"
)

// BinaryOp combines two child outcomes, e.g. the weights of parallel
// branches under a routing step.
type BinaryOp func(a, b float64) float64

// ErrUnsupportedOperator reports an unrecognized operator tag. Callers must
// reject it during configuration validation, before a simulation starts,
// and never substitute a default combinator at run time.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// Combinator maps an operator tag to its binary combinator: '+' yields
// addition, '*' yields multiplication.
func Combinator(tag byte) (BinaryOp, error) {
	switch tag {
	case '+':
		return func(a, b float64) float64 { return a + b }, nil
	case '*':
		return func(a, b float64) float64 { return a * b }, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnsupportedOperator, string(tag))
}
