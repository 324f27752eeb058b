// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/iwvelando/forex-sim/internal/simulation"
	"github.com/iwvelando/forex-sim/pkg/constants"
)

// Configuration holds all configuration for forex-sim.
type Configuration struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// SimulationConfig holds the four scalar inputs of a route comparison.
type SimulationConfig struct {
	Budget                 float64         `yaml:"budget"`
	DirectRate             float64         `yaml:"directRate"`
	HomeToIntermediateRate float64         `yaml:"homeToIntermediateRate"`
	RateRange              RateRangeConfig `yaml:"rateRange"`
}

// RateRangeConfig is the configured interval of intermediate-to-foreign rates.
type RateRangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("simulation.budget", constants.DefaultBudget)
	v.SetDefault("simulation.directRate", constants.DefaultDirectRate)
	v.SetDefault("simulation.homeToIntermediateRate", constants.DefaultHomeToIntermediateRate)
	v.SetDefault("simulation.rateRange.min", constants.DefaultRangeMin)
	v.SetDefault("simulation.rateRange.max", constants.DefaultRangeMax)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Unset simulation fields fall back to the recognized
// defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader, used by the HTTP handlers.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Inputs converts the configured simulation section into the core input set.
func (c *Configuration) Inputs() simulation.Inputs {
	return simulation.Inputs{
		Budget:                 c.Simulation.Budget,
		DirectRate:             c.Simulation.DirectRate,
		HomeToIntermediateRate: c.Simulation.HomeToIntermediateRate,
	}
}

// RateRange converts the configured range section into the core rate range.
func (c *Configuration) RateRange() simulation.RateRange {
	return simulation.RateRange{
		Min: c.Simulation.RateRange.Min,
		Max: c.Simulation.RateRange.Max,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors are left to the simulation boundary
// validator; warnings flag configurations that compute fine but probably do
// not show what the user expects.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	sim := c.Simulation
	if sim.DirectRate > 0 && sim.HomeToIntermediateRate > 0 {
		breakEven := sim.HomeToIntermediateRate / sim.DirectRate
		if breakEven < sim.RateRange.Min || breakEven > sim.RateRange.Max {
			warnings = append(warnings, fmt.Sprintf(
				"Break-even intermediate-to-foreign rate %.4f falls outside the sampled range [%.4f, %.4f]",
				breakEven, sim.RateRange.Min, sim.RateRange.Max))
		}
	}

	if sim.RateRange.Min == sim.RateRange.Max {
		warnings = append(warnings, fmt.Sprintf(
			"Rate range is a single point (%.4f) - the curve will be flat at one rate", sim.RateRange.Min))
	}

	return warnings
}
