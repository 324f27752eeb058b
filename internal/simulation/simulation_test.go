package simulation

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/iwvelando/forex-sim/pkg/constants"
	"github.com/iwvelando/forex-sim/pkg/mathutil"
)

func TestCompareConcreteScenario(t *testing.T) {
	inputs := Inputs{
		Budget:                 100000,
		DirectRate:             1.41,
		HomeToIntermediateRate: 89.1,
	}

	result, err := Compare(zap.NewNop(), inputs, 72.5)
	if err != nil {
		t.Fatalf("Compare() returned error: %v", err)
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"direct yield", result.DirectYield, 70921.99},
		{"intermediate amount", result.IntermediateAmount, 1122.33},
		{"indirect yield", result.IndirectYield, 81369.25},
		{"break-even intermediate-to-foreign rate", result.BreakEvenIntermediateToForeignRate, 63.191489},
	}
	for _, check := range checks {
		if math.Abs(check.got-check.expected) > 0.01 {
			t.Errorf("%s = %.4f, expected %.4f", check.name, check.got, check.expected)
		}
	}

	if result.BreakEvenDirectRate == nil {
		t.Fatal("expected defined break-even direct rate")
	}
	if math.Abs(*result.BreakEvenDirectRate-1.228966) > 0.0001 {
		t.Errorf("break-even direct rate = %.6f, expected 1.228966", *result.BreakEvenDirectRate)
	}
}

func TestCompareBreakEvenSymmetry(t *testing.T) {
	tests := []struct {
		name   string
		inputs Inputs
	}{
		{
			name:   "Recognized defaults",
			inputs: Inputs{Budget: 100000, DirectRate: 1.41, HomeToIntermediateRate: 89.1},
		},
		{
			name:   "Unit rates",
			inputs: Inputs{Budget: 1, DirectRate: 1, HomeToIntermediateRate: 1},
		},
		{
			name:   "Fractional rates",
			inputs: Inputs{Budget: 2500.75, DirectRate: 0.0315, HomeToIntermediateRate: 0.87},
		},
		{
			name:   "Large budget",
			inputs: Inputs{Budget: 9.5e12, DirectRate: 142.7, HomeToIntermediateRate: 3.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakEven := tt.inputs.HomeToIntermediateRate / tt.inputs.DirectRate
			result, err := Compare(nil, tt.inputs, breakEven)
			if err != nil {
				t.Fatalf("Compare() returned error: %v", err)
			}

			// At the break-even rate both routes must yield identically.
			if !mathutil.WithinRelativeTolerance(result.DirectYield, result.IndirectYield, constants.RateTolerance) {
				t.Errorf("direct yield %.9f != indirect yield %.9f at break-even rate %.9f",
					result.DirectYield, result.IndirectYield, breakEven)
			}
		})
	}
}

func TestCompareBreakEvenRateIgnoresBudget(t *testing.T) {
	budgets := []float64{1, 500, 100000, 7.3e9}

	var reference float64
	for i, budget := range budgets {
		inputs := Inputs{Budget: budget, DirectRate: 1.41, HomeToIntermediateRate: 89.1}
		result, err := Compare(nil, inputs, 72.5)
		if err != nil {
			t.Fatalf("Compare() returned error for budget %v: %v", budget, err)
		}
		if i == 0 {
			reference = result.BreakEvenIntermediateToForeignRate
			continue
		}
		if result.BreakEvenIntermediateToForeignRate != reference {
			t.Errorf("break-even rate changed with budget %v: got %.9f, expected %.9f",
				budget, result.BreakEvenIntermediateToForeignRate, reference)
		}
	}
}

func TestCompareUndefinedBreakEven(t *testing.T) {
	tests := []struct {
		name string
		rate float64
	}{
		{"Zero intermediate-to-foreign rate", 0},
		{"Negative intermediate-to-foreign rate", -4.2},
	}

	inputs := Inputs{Budget: 100000, DirectRate: 1.41, HomeToIntermediateRate: 89.1}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compare(nil, inputs, tt.rate)
			if err != nil {
				t.Fatalf("Compare() should not fail on a degenerate rate: %v", err)
			}
			if result.BreakEvenDirectRate != nil {
				t.Errorf("expected nil break-even direct rate, got %v", *result.BreakEvenDirectRate)
			}
			// The rest of the result stays valid and displayable.
			if result.DirectYield <= 0 {
				t.Errorf("direct yield = %v, expected positive", result.DirectYield)
			}
			if result.BreakEvenIntermediateToForeignRate <= 0 {
				t.Errorf("break-even rate = %v, expected positive", result.BreakEvenIntermediateToForeignRate)
			}
		})
	}
}

func TestCompareInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		inputs Inputs
	}{
		{"Zero budget", Inputs{Budget: 0, DirectRate: 1.41, HomeToIntermediateRate: 89.1}},
		{"Negative budget", Inputs{Budget: -100, DirectRate: 1.41, HomeToIntermediateRate: 89.1}},
		{"Zero direct rate", Inputs{Budget: 100000, DirectRate: 0, HomeToIntermediateRate: 89.1}},
		{"Negative home-to-intermediate rate", Inputs{Budget: 100000, DirectRate: 1.41, HomeToIntermediateRate: -89.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(nil, tt.inputs, 72.5)
			if err == nil {
				t.Fatal("expected error for invalid inputs")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCompareIdempotent(t *testing.T) {
	inputs := Inputs{Budget: 100000, DirectRate: 1.41, HomeToIntermediateRate: 89.1}

	first, err := Compare(nil, inputs, 72.5)
	if err != nil {
		t.Fatalf("Compare() returned error: %v", err)
	}
	second, err := Compare(nil, inputs, 72.5)
	if err != nil {
		t.Fatalf("Compare() returned error: %v", err)
	}

	if first.DirectYield != second.DirectYield ||
		first.IndirectYield != second.IndirectYield ||
		first.BreakEvenIntermediateToForeignRate != second.BreakEvenIntermediateToForeignRate {
		t.Error("identical inputs produced different results")
	}
	if *first.BreakEvenDirectRate != *second.BreakEvenDirectRate {
		t.Error("identical inputs produced different break-even direct rates")
	}
}

func TestBetterRoute(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected Route
	}{
		{"Indirect wins above break-even", 72.5, RouteIndirect},
		{"Direct wins below break-even", 50.0, RouteDirect},
		{"Tie at break-even", 89.1 / 1.41, RouteBreakEven},
	}

	inputs := Inputs{Budget: 100000, DirectRate: 1.41, HomeToIntermediateRate: 89.1}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compare(nil, inputs, tt.rate)
			if err != nil {
				t.Fatalf("Compare() returned error: %v", err)
			}
			if got := result.BetterRoute(); got != tt.expected {
				t.Errorf("BetterRoute() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestRateRangeMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		r        RateRange
		expected float64
	}{
		{"Default range", RateRange{Min: 60.0, Max: 85.0}, 72.5},
		{"Degenerate range", RateRange{Min: 70.0, Max: 70.0}, 70.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Midpoint(); got != tt.expected {
				t.Errorf("Midpoint() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
