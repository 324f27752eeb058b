package simulation

import (
	"github.com/iwvelando/forex-sim/pkg/constants"
	"github.com/iwvelando/forex-sim/pkg/mathutil"
)

// Route identifies one of the two conversion paths.
type Route string

const (
	// RouteDirect is the single-hop home-to-foreign conversion.
	RouteDirect Route = "direct"

	// RouteIndirect is the two-hop conversion through the intermediate currency.
	RouteIndirect Route = "indirect"

	// RouteBreakEven indicates the two routes yield the same amount within
	// the currency tolerance.
	RouteBreakEven Route = "break-even"
)

// BetterRoute reports which route yields more foreign currency. Yields within
// the currency tolerance of each other count as break-even.
func (r ComparisonResult) BetterRoute() Route {
	if mathutil.WithinTolerance(r.DirectYield, r.IndirectYield, constants.CurrencyTolerance) {
		return RouteBreakEven
	}
	if r.DirectYield > r.IndirectYield {
		return RouteDirect
	}
	return RouteIndirect
}
