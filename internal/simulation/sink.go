package simulation

// CurveSink receives the three pieces of a route-comparison chart in a
// render-agnostic form. Implementations own all presentation concerns; the
// simulation core never draws anything itself.
type CurveSink interface {
	// DrawConstantLine receives the horizontal direct-yield reference line.
	DrawConstantLine(label string, y float64)

	// DrawSeries receives the sampled indirect-yield line.
	DrawSeries(label string, points []CurvePoint)

	// DrawVerticalMarker receives the vertical break-even reference line.
	DrawVerticalMarker(label string, x float64)
}

// Render pushes the curve into a sink: first the constant direct-yield line,
// then the sampled indirect series, then the vertical break-even marker.
func (c CurveData) Render(sink CurveSink, directLabel, indirectLabel, breakEvenLabel string) {
	sink.DrawConstantLine(directLabel, c.DirectYield)
	sink.DrawSeries(indirectLabel, c.Points)
	sink.DrawVerticalMarker(breakEvenLabel, c.BreakEvenRate)
}
