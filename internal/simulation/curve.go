package simulation

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/iwvelando/forex-sim/pkg/constants"
)

// CurvePoint is one sample of the indirect-route yield at a specific
// intermediate-to-foreign rate.
type CurvePoint struct {
	Rate          float64
	IndirectYield float64
}

// CurveData holds everything needed to chart the route comparison over a
// range of intermediate-to-foreign rates: the constant direct-route yield,
// the sampled indirect-route line, and the break-even rate.
type CurveData struct {
	// DirectYield is the foreign currency obtained via the direct route,
	// independent of the sampled rate.
	DirectYield float64

	// Points samples the indirect-route yield across the requested range,
	// inclusive of both endpoints. The yield is linear in the rate, so the
	// points trace a straight line.
	Points []CurvePoint

	// BreakEvenRate is the intermediate-to-foreign rate at which both routes
	// yield identically. It is reported unconditionally, even when it falls
	// outside the sampled range; the consumer decides whether it is visible.
	BreakEvenRate float64
}

// GenerateCurve samples the indirect-route yield at evenly spaced
// intermediate-to-foreign rates across rateRange, inclusive of both
// endpoints. A degenerate range with Min == Max is valid and produces
// coincident samples.
func GenerateCurve(logger *zap.Logger, in Inputs, rateRange RateRange) (CurveData, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := in.validate(); err != nil {
		return CurveData{}, err
	}
	if err := rateRange.validate(); err != nil {
		return CurveData{}, err
	}

	rates := floats.Span(make([]float64, constants.CurveSamples), rateRange.Min, rateRange.Max)
	// Span builds the interior by stepping from Min, which can land the last
	// sample a few ulps off the bound. The endpoints must equal the requested
	// range exactly.
	rates[0] = rateRange.Min
	rates[len(rates)-1] = rateRange.Max

	intermediateAmount := in.Budget / in.HomeToIntermediateRate
	points := make([]CurvePoint, len(rates))
	for i, rate := range rates {
		points[i] = CurvePoint{
			Rate:          rate,
			IndirectYield: intermediateAmount * rate,
		}
	}

	curve := CurveData{
		DirectYield:   in.Budget / in.DirectRate,
		Points:        points,
		BreakEvenRate: in.HomeToIntermediateRate / in.DirectRate,
	}

	logger.Debug(fmt.Sprintf("generated curve over [%.4f, %.4f]", rateRange.Min, rateRange.Max),
		zap.String("op", "simulation.GenerateCurve"),
		zap.Int("samples", len(points)),
		zap.Float64("breakEvenRate", curve.BreakEvenRate),
	)

	return curve, nil
}
