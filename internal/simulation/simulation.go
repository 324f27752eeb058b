// Package simulation defines the data structures related to a forex route
// comparison and includes functions for computing the comparisons.
package simulation

import (
	"fmt"

	"go.uber.org/zap"
)

// Inputs holds the scalar parameters shared by every simulation operation.
// Budget is denominated in home-currency units, DirectRate in home-currency
// units per foreign-currency unit, and HomeToIntermediateRate in home-currency
// units per intermediate-currency unit.
type Inputs struct {
	Budget                 float64
	DirectRate             float64
	HomeToIntermediateRate float64
}

// RateRange is an ordered closed interval of intermediate-to-foreign rates,
// in foreign-currency units per intermediate-currency unit.
type RateRange struct {
	Min float64
	Max float64
}

// Midpoint returns the center of the range, used as the representative rate
// when a single comparison stands in for the whole interval.
func (r RateRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// ComparisonResult holds the yields of both conversion routes and the two
// break-even figures for one set of inputs.
type ComparisonResult struct {
	// DirectYield is the foreign currency obtained by converting the budget
	// directly at DirectRate.
	DirectYield float64

	// IntermediateAmount is the intermediate currency obtained in the first
	// hop of the indirect route.
	IntermediateAmount float64

	// IndirectYield is the foreign currency obtained by routing through the
	// intermediate currency at the given intermediate-to-foreign rate.
	IndirectYield float64

	// BreakEvenDirectRate is the direct rate at which the direct route would
	// exactly match IndirectYield. It is nil when IndirectYield is not
	// positive, in which case no such rate exists.
	BreakEvenDirectRate *float64

	// BreakEvenIntermediateToForeignRate is the intermediate-to-foreign rate
	// at which both routes yield identically. It depends only on the two
	// route-defining rates, never on the budget.
	BreakEvenIntermediateToForeignRate float64
}

// Compare computes the yield of the direct and indirect conversion routes for
// one representative intermediate-to-foreign rate, along with both break-even
// figures. A zero or negative rate is a degenerate but accepted input: the
// routes are still compared and BreakEvenDirectRate comes back nil.
func Compare(logger *zap.Logger, in Inputs, intermediateToForeignRate float64) (ComparisonResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := in.validate(); err != nil {
		return ComparisonResult{}, err
	}

	directYield := in.Budget / in.DirectRate
	intermediateAmount := in.Budget / in.HomeToIntermediateRate
	indirectYield := intermediateAmount * intermediateToForeignRate

	result := ComparisonResult{
		DirectYield:                        directYield,
		IntermediateAmount:                 intermediateAmount,
		IndirectYield:                      indirectYield,
		BreakEvenIntermediateToForeignRate: in.HomeToIntermediateRate / in.DirectRate,
	}

	if indirectYield > 0 {
		breakEven := in.Budget / indirectYield
		result.BreakEvenDirectRate = &breakEven
	}

	logger.Debug(fmt.Sprintf("compared routes at rate %.4f", intermediateToForeignRate),
		zap.String("op", "simulation.Compare"),
		zap.Float64("directYield", directYield),
		zap.Float64("indirectYield", indirectYield),
	)

	return result, nil
}
