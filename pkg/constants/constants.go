// Package constants provides shared constants for the forex-sim application.
package constants

// Simulation constants
const (
	// CurveSamples is the number of evenly spaced rate samples in a generated curve
	CurveSamples = 100
)

// Default simulation inputs, matching the values pre-filled in the web UI.
const (
	// DefaultBudget is the default budget in home-currency units
	DefaultBudget = 100000.0

	// DefaultDirectRate is the default direct home-to-foreign rate
	DefaultDirectRate = 1.41

	// DefaultHomeToIntermediateRate is the default home-to-intermediate rate
	DefaultHomeToIntermediateRate = 89.1

	// DefaultRangeMin is the default lower bound of the intermediate-to-foreign range
	DefaultRangeMin = 60.0

	// DefaultRangeMax is the default upper bound of the intermediate-to-foreign range
	DefaultRangeMax = 85.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// simulation requests (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// RateTolerance is the tolerance for exchange-rate comparisons
	RateTolerance = 1e-9
)
