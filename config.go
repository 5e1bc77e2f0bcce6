package main

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// GrantConfig selects what to evaluate by default
type GrantConfig struct {
	Size     float64 `yaml:"size" json:"size"`         // Grant size in USD
	Charity  string  `yaml:"charity" json:"charity"`   // Charity ID (nets, smc, vitamin_a, vaccination, cash_transfer, deworming); empty = all
	Location string  `yaml:"location" json:"location"` // Location ID; empty = charity default
}

// MonteCarloConfig holds uncertainty simulation parameters
type MonteCarloConfig struct {
	Trials int   `yaml:"trials" json:"trials"` // Number of simulation trials
	Seed   int64 `yaml:"seed" json:"seed"`     // RNG seed; 0 = seed from the clock
}

// SweepConfig holds sensitivity sweep parameters
type SweepConfig struct {
	Points    int    `yaml:"points" json:"points"`       // Grid points per parameter sweep
	Parameter string `yaml:"parameter" json:"parameter"` // Parameter ID; empty = sweep all parameters
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"` // Listen address, e.g. ":8080"
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Dir string `yaml:"dir" json:"dir"` // Directory for generated HTML/PDF reports
}

// Config holds the complete configuration
type Config struct {
	Grant       GrantConfig      `yaml:"grant" json:"grant"`
	MonteCarlo  MonteCarloConfig `yaml:"monte_carlo" json:"monte_carlo"`
	Sensitivity SweepConfig      `yaml:"sensitivity" json:"sensitivity"`
	Weights     MoralWeights     `yaml:"moral_weights" json:"moral_weights"`
	Preset      string           `yaml:"weight_preset" json:"weight_preset"` // Preset ID; overrides moral_weights when set
	Server      ServerConfig     `yaml:"server" json:"server"`
	Report      ReportConfig     `yaml:"report" json:"report"`
}

// GetGrantSize returns the configured grant size, using the default if unset
func (c *Config) GetGrantSize() float64 {
	if c.Grant.Size <= 0 {
		return DefaultGrantSize
	}
	return c.Grant.Size
}

// GetTrials returns the Monte Carlo trial count, using the default if unset
func (c *Config) GetTrials() int {
	if c.MonteCarlo.Trials <= 0 {
		return 10000
	}
	return c.MonteCarlo.Trials
}

// GetSweepPoints returns the sweep grid size, using the default if unset
func (c *Config) GetSweepPoints() int {
	if c.Sensitivity.Points <= 0 {
		return 21
	}
	return c.Sensitivity.Points
}

// GetMoralWeights resolves the effective weights: a named preset wins over the
// inline moral_weights block; an unset block falls back to the defaults.
func (c *Config) GetMoralWeights() MoralWeights {
	if c.Preset != "" {
		if preset := GetWeightPresetByID(c.Preset); preset != nil {
			return preset.Weights
		}
	}
	if c.Weights == (MoralWeights{}) {
		return DefaultMoralWeights()
	}
	w := c.Weights
	if w.Mode == "" {
		w.Mode = WeightModeManual
	}
	if w.Multiplier == 0 {
		w.Multiplier = 1.0
	}
	return w
}

// GetServerAddr returns the listen address, using the default if unset
func (c *Config) GetServerAddr() string {
	if c.Server.Addr == "" {
		return ":8080"
	}
	return c.Server.Addr
}

// GetReportDir returns the report output directory, using the default if unset
func (c *Config) GetReportDir() string {
	if c.Report.Dir == "" {
		return "."
	}
	return c.Report.Dir
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal([]byte(preprocessPercentages(string(data))), &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	// Add a header comment with instructions
	header := []byte(`# Charity Forecast Configuration
# Generated interactively - feel free to edit manually
#
# Charity IDs: nets, smc, vitamin_a, vaccination, cash_transfer, deworming
# Weight presets: default, equal_lives, higher_child_value, lower_discount
# Percentages may be written as decimals (0.04) or with a percent sign (4%).
#
# Run commands:
#   ./goCharityForecast                      Interactive mode selector
#   ./goCharityForecast -charity nets        Single charity breakdown
#   ./goCharityForecast -montecarlo          Uncertainty simulation
#   ./goCharityForecast -sensitivity         Moral-weight sensitivity sweep
#   ./goCharityForecast -web                 Web interface
#   ./goCharityForecast -help                Show all options
#
# See default-config.yaml for all available options with detailed comments.

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the default configuration from embedded
// default-config.yaml. It handles percentage format (e.g., "4%" -> 0.04).
func LoadDefaultConfig() (*Config, error) {
	// Use embedded default config (compiled into binary)
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	err := yaml.Unmarshal([]byte(content), &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// preprocessPercentages converts percentage values like "4%" to decimal "0.04"
func preprocessPercentages(content string) string {
	// Match patterns like: key: 4% or key: 3.5%
	// But not inside strings (already quoted)
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		// Extract the number before %
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			numStr := parts[2]
			num, err := strconv.ParseFloat(numStr, 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}
