package simulation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a contract violation in the simulation inputs. Callers
// can detect it with errors.Is to distinguish user-correctable input errors
// from anything else.
var ErrInvalidInput = errors.New("invalid input")

func (in Inputs) validate() error {
	if in.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive, got %v", ErrInvalidInput, in.Budget)
	}
	if in.DirectRate <= 0 {
		return fmt.Errorf("%w: direct rate must be positive, got %v", ErrInvalidInput, in.DirectRate)
	}
	if in.HomeToIntermediateRate <= 0 {
		return fmt.Errorf("%w: home-to-intermediate rate must be positive, got %v", ErrInvalidInput, in.HomeToIntermediateRate)
	}
	return nil
}

func (r RateRange) validate() error {
	if r.Min <= 0 {
		return fmt.Errorf("%w: range minimum must be positive, got %v", ErrInvalidInput, r.Min)
	}
	if r.Max <= 0 {
		return fmt.Errorf("%w: range maximum must be positive, got %v", ErrInvalidInput, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: range minimum %v exceeds maximum %v", ErrInvalidInput, r.Min, r.Max)
	}
	return nil
}
