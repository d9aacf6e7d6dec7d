package mfd

import "fmt"

// InvalidParameterError reports a model parameter that violates a declared
// invariant. It is returned at construction time; a distribution is never
// built from invalid parameters.
type InvalidParameterError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: must satisfy %s", e.Param, e.Value, e.Constraint)
}

// DegeneracyError reports a division by zero probability mass, such as the
// conditional expectation over an interval the distribution never visits.
type DegeneracyError struct {
	Op string
	Lo float64
	Hi float64
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("%s over [%g, %g]: interval has zero probability mass", e.Op, e.Lo, e.Hi)
}
