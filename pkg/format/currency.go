package format

import (
	"fmt"
	"math"
	"strings"
)

// Amount returns a currency string with thousands separators and two decimals
// (e.g., "-1,234.56"). No currency symbol is attached since amounts may be in
// any of the three currencies involved in a route.
func Amount(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveAmount(math.Abs(amount))
}

// Rate returns an exchange rate with four decimals (e.g., "63.1915").
func Rate(rate float64) string {
	return fmt.Sprintf("%.4f", rate)
}

func formatPositiveAmount(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
