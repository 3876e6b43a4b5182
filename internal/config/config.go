package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "salescli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// ProcessingConfig contains the statement-processing configuration.
// The defaults reproduce the fixed behavior of the original tool: output is
// written to output.xlsx next to the working directory, the Summary sheet is
// skipped, and the merged sheet is named Cross-Platform.
type ProcessingConfig struct {
	OutputPath         string `yaml:"output_path" envconfig:"OUTPUT_PATH" default:"output.xlsx" validate:"required"`
	SummarySheet       string `yaml:"summary_sheet" envconfig:"SUMMARY_SHEET" default:"Summary" validate:"required"`
	CrossPlatformSheet string `yaml:"cross_platform_sheet" envconfig:"CROSS_PLATFORM_SHEET" default:"Cross-Platform" validate:"required"`
}

// Load loads configuration from environment variables (prefix SALES) and an
// optional YAML config file. Values set in the file override the environment
// and the built-in defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("SALES", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	// Load from config file if exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, apperrors.NewConfigError("failed to load config from file", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Processing.OutputPath != "" {
		envConfig.Processing.OutputPath = fileConfig.Processing.OutputPath
	}
	if fileConfig.Processing.SummarySheet != "" {
		envConfig.Processing.SummarySheet = fileConfig.Processing.SummarySheet
	}
	if fileConfig.Processing.CrossPlatformSheet != "" {
		envConfig.Processing.CrossPlatformSheet = fileConfig.Processing.CrossPlatformSheet
	}
	return envConfig
}

// validate checks the configuration with struct-level validation tags
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Processing: ProcessingConfig{
			OutputPath:         "output.xlsx",
			SummarySheet:       "Summary",
			CrossPlatformSheet: "Cross-Platform",
		},
	}
}
