// Package config loads the YAML configuration for the sales analytics pipeline.
//
// Example:
//
//	input_file: sales_data.txt
//	enriched_output_file: data/enriched_sales_data.txt
//	report_output_file: output/sales_report.txt
//	xlsx_output_file: output/sales_report.xlsx
//	log_level: info
//	product_api:
//	  base_url: https://dummyjson.com/products
//	  timeout: 10s
//	filters:
//	  region: North
//	  min_amount: 1000
//	analysis:
//	  top_n: 5
//	  low_threshold: 10
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInputFile          = "sales_data.txt"
	DefaultEnrichedOutputFile = "data/enriched_sales_data.txt"
	DefaultReportOutputFile   = "output/sales_report.txt"
	DefaultLogLevel           = "info"
	DefaultAPITimeout         = 10 * time.Second
	DefaultTopN               = 5
	DefaultLowThreshold       = 10
)

// Config is the top-level configuration.
type Config struct {
	InputFile          string `yaml:"input_file"`
	EnrichedOutputFile string `yaml:"enriched_output_file"`
	ReportOutputFile   string `yaml:"report_output_file"`

	// XLSXOutputFile enables the workbook export when set.
	XLSXOutputFile string `yaml:"xlsx_output_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	ProductAPI ProductAPIConfig `yaml:"product_api"`
	Filters    FilterConfig     `yaml:"filters"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
}

// ProductAPIConfig configures the external product catalog.
type ProductAPIConfig struct {
	// BaseURL of the catalog. Empty selects the public default.
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	Disabled bool          `yaml:"disabled"`
}

// FilterConfig narrows the validated transactions. Unset fields disable the filter.
type FilterConfig struct {
	Region    string   `yaml:"region"`
	MinAmount *float64 `yaml:"min_amount"`
	MaxAmount *float64 `yaml:"max_amount"`
}

// AnalysisConfig tunes the product analyses. Unset fields take the defaults; an
// explicit 0 is kept.
type AnalysisConfig struct {
	TopN         *int `yaml:"top_n"`
	LowThreshold *int `yaml:"low_threshold"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// Load reads the configuration file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.InputFile == "" {
		config.InputFile = DefaultInputFile
	}
	if config.EnrichedOutputFile == "" {
		config.EnrichedOutputFile = DefaultEnrichedOutputFile
	}
	if config.ReportOutputFile == "" {
		config.ReportOutputFile = DefaultReportOutputFile
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ProductAPI.Timeout == 0 {
		config.ProductAPI.Timeout = DefaultAPITimeout
	}
	if config.Analysis.TopN == nil {
		topN := DefaultTopN
		config.Analysis.TopN = &topN
	}
	if config.Analysis.LowThreshold == nil {
		threshold := DefaultLowThreshold
		config.Analysis.LowThreshold = &threshold
	}
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if c.Analysis.TopN != nil && *c.Analysis.TopN < 0 {
		return errors.New("analysis.top_n must not be negative")
	}
	if c.Analysis.LowThreshold != nil && *c.Analysis.LowThreshold < 0 {
		return errors.New("analysis.low_threshold must not be negative")
	}
	if c.ProductAPI.Timeout < 0 {
		return errors.New("product_api.timeout must not be negative")
	}
	if c.Filters.MinAmount != nil && c.Filters.MaxAmount != nil && *c.Filters.MinAmount > *c.Filters.MaxAmount {
		return fmt.Errorf("filters.min_amount (%.2f) is greater than filters.max_amount (%.2f)",
			*c.Filters.MinAmount, *c.Filters.MaxAmount)
	}
	return nil
}
