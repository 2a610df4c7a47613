package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. EXPENSES_FILES_SUMMARY.
const EnvPrefix = "EXPENSES"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Files struct {
		Expenses string `mapstructure:"expenses" yaml:"expenses"`
		Summary  string `mapstructure:"summary" yaml:"summary"`
		Plot     string `mapstructure:"plot" yaml:"plot"`
	} `mapstructure:"files" yaml:"files"`

	Generator struct {
		Records    int    `mapstructure:"records" yaml:"records"`
		WindowDays int    `mapstructure:"window_days" yaml:"window_days"`
		MinAmount  string `mapstructure:"min_amount" yaml:"min_amount"`
		MaxAmount  string `mapstructure:"max_amount" yaml:"max_amount"`
		Seed       uint64 `mapstructure:"seed" yaml:"seed"`
	} `mapstructure:"generator" yaml:"generator"`

	Chart struct {
		WidthInches  float64 `mapstructure:"width_inches" yaml:"width_inches"`
		HeightInches float64 `mapstructure:"height_inches" yaml:"height_inches"`
	} `mapstructure:"chart" yaml:"chart"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

// InitializeConfig loads configuration with hierarchical precedence:
// defaults, then config file, then environment. An explicit configFile must
// exist; otherwise config.yaml is searched in the usual locations and is optional.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-tracker")
		v.AddConfigPath(".expense-tracker")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ConfigFile = v.ConfigFileUsed()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("files.expenses", "expenses.csv")
	v.SetDefault("files.summary", "monthly_summary.csv")
	v.SetDefault("files.plot", "spending_plot.png")

	v.SetDefault("generator.records", 50)
	v.SetDefault("generator.window_days", 90)
	v.SetDefault("generator.min_amount", "100")
	v.SetDefault("generator.max_amount", "5000")
	v.SetDefault("generator.seed", 0)

	v.SetDefault("chart.width_inches", 10.0)
	v.SetDefault("chart.height_inches", 6.0)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", c.Log.Format)
	}

	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", c.CSV.Delimiter)
	}

	if c.Files.Expenses == "" || c.Files.Summary == "" || c.Files.Plot == "" {
		return fmt.Errorf("files.expenses, files.summary and files.plot must not be empty")
	}

	if c.Generator.Records < 1 {
		return fmt.Errorf("generator.records must be at least 1, got: %d", c.Generator.Records)
	}

	if c.Generator.WindowDays < 0 {
		return fmt.Errorf("generator.window_days must not be negative, got: %d", c.Generator.WindowDays)
	}

	min, max, err := c.AmountRange()
	if err != nil {
		return err
	}
	if !min.IsPositive() || min.GreaterThan(max) {
		return fmt.Errorf("generator amount range must satisfy 0 < min <= max, got: [%s, %s]", min, max)
	}

	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got: %gx%g", c.Chart.WidthInches, c.Chart.HeightInches)
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// AmountRange parses the generator amount bounds.
func (c *Config) AmountRange() (decimal.Decimal, decimal.Decimal, error) {
	min, err := decimal.NewFromString(c.Generator.MinAmount)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid generator.min_amount %q: %w", c.Generator.MinAmount, err)
	}
	max, err := decimal.NewFromString(c.Generator.MaxAmount)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid generator.max_amount %q: %w", c.Generator.MaxAmount, err)
	}
	return min, max, nil
}

// YAML renders the configuration in the config file layout.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
