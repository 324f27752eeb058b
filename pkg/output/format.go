// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/forex-sim/internal/simulation"
	"github.com/iwvelando/forex-sim/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result simulation.ComparisonResult, representativeRate float64, curve simulation.CurveData) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Route comparison at intermediate-to-foreign rate %s ---\n", format.Rate(representativeRate))
	fmt.Printf("Scenario                                | Value\n")
	fmt.Printf("________                                | _____\n")
	_, _ = p.Printf("Foreign via direct route                | %.2f\n", result.DirectYield)
	_, _ = p.Printf("Foreign via intermediate route          | %.2f\n", result.IndirectYield)
	if result.BreakEvenDirectRate != nil {
		fmt.Printf("Break-even direct rate                  | %s\n", format.Rate(*result.BreakEvenDirectRate))
	} else {
		fmt.Printf("Break-even direct rate                  | undefined\n")
	}
	fmt.Printf("Break-even intermediate-to-foreign rate | %s\n", format.Rate(result.BreakEvenIntermediateToForeignRate))
	fmt.Printf("\n%s\n", Recommendation(result))
	fmt.Printf("Curve: %d samples over [%s, %s], break-even at %s\n",
		len(curve.Points),
		format.Rate(curve.Points[0].Rate),
		format.Rate(curve.Points[len(curve.Points)-1].Rate),
		format.Rate(curve.BreakEvenRate),
	)
}

// Recommendation states which route yields more foreign currency, treating
// differences within the currency tolerance as a tie.
func Recommendation(result simulation.ComparisonResult) string {
	switch result.BetterRoute() {
	case simulation.RouteDirect:
		return fmt.Sprintf("Direct route yields %s more foreign currency",
			format.Amount(result.DirectYield-result.IndirectYield))
	case simulation.RouteIndirect:
		return fmt.Sprintf("Indirect route yields %s more foreign currency",
			format.Amount(result.IndirectYield-result.DirectYield))
	default:
		return "Both routes yield the same amount of foreign currency"
	}
}

// CsvFormat outputs the curve in comma-separated value format.
func CsvFormat(curve simulation.CurveData) {
	fmt.Print(CsvString(curve))
}

// CsvString renders the curve as CSV with one row per sampled rate and a
// constant direct-yield column for side-by-side charting.
func CsvString(curve simulation.CurveData) string {
	var builder strings.Builder
	builder.WriteString(`"rate","indirect yield","direct yield"` + "\n")
	for _, point := range curve.Points {
		builder.WriteString(fmt.Sprintf(`"%.4f","%.2f","%.2f"`, point.Rate, point.IndirectYield, curve.DirectYield))
		builder.WriteString("\n")
	}
	return builder.String()
}
