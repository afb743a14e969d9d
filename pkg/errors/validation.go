package errors

import "math"

// ValidatePositive checks that a named dimension is a finite number greater
// than zero. Used for panel height, width and the maximum hole radius.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number, got %g", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative checks that a named dimension is finite and not below
// zero. A zero border is allowed.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number, got %g", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateSteps checks every radius step. Steps are subtracted cumulatively
// from the maximum radius, so a negative step would make the series grow.
func ValidateSteps(steps []float64) error {
	for i, s := range steps {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return New(ErrCodeInvalidStep, "step %d must be a finite number, got %g", i+1, s)
		}
		if s < 0 {
			return New(ErrCodeInvalidStep, "step %d must not be negative, got %g", i+1, s)
		}
	}
	return nil
}
