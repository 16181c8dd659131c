package app

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"stockcast/internal/model"
)

// Config holds application configuration: YAML file, then defaults for
// anything unset, then environment overrides, then validation.
type Config struct {
	DataDir         string `yaml:"data_dir" default:"data" validate:"required"`
	ModelDir        string `yaml:"model_dir" default:"models" validate:"required"`
	InstrumentsFile string `yaml:"instruments_file" default:"tickers.txt" validate:"required"`
	ArchiveFormat   string `yaml:"archive_format" validate:"oneof=parquet json csv"`
	LogLevel        string `yaml:"log_level" default:"info" validate:"oneof=debug info warn warning error"`

	// EpochDate is the fetch-start for instruments with no archive yet.
	EpochDate        string  `yaml:"epoch_date" default:"2015-01-01" validate:"datetime=2006-01-02"`
	ShortWindow      int     `yaml:"short_window" default:"5" validate:"min=2"`
	LongWindow       int     `yaml:"long_window" default:"10" validate:"gtfield=ShortWindow"`
	MinTrainRows     int     `yaml:"min_train_rows" default:"50" validate:"min=1"`
	NeutralThreshold float64 `yaml:"neutral_threshold" default:"0.005" validate:"gt=0"`

	Workers int           `yaml:"workers" default:"1" validate:"min=1"`
	Pacing  time.Duration `yaml:"pacing" default:"1s" validate:"min=0"`

	Provider ProviderConfig `yaml:"provider"`
}

// ProviderConfig selects and configures the bar provider.
type ProviderConfig struct {
	Name   string `yaml:"name" default:"polygon" validate:"oneof=polygon"`
	APIKey string `yaml:"api_key"`
}

// LoadConfig reads config from path (optional), applies defaults, then
// environment overrides, then validates. An empty path with no config.yaml
// present yields the pure default+env configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	applyEnv(cfg)
	if cfg.ArchiveFormat == "" {
		cfg.ArchiveFormat = archiveFormatForProfile()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides config fields from environment variables.
func applyEnv(cfg *Config) {
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.ModelDir = getEnv("MODEL_DIR", cfg.ModelDir)
	cfg.InstrumentsFile = getEnv("TICKERS_FILE", cfg.InstrumentsFile)
	cfg.ArchiveFormat = getEnv("SAVE_FORMAT", cfg.ArchiveFormat)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Provider.APIKey = getEnv("POLYGON_API_KEY", cfg.Provider.APIKey)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// archiveFormatForProfile picks the default archive format by PROFILE
// (dev → json, prod/empty → parquet).
func archiveFormatForProfile() string {
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "json"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}

// Epoch returns the parsed epoch date. Validation guarantees the format.
func (c *Config) Epoch() time.Time {
	t, _ := time.ParseInLocation(model.DateLayout, c.EpochDate, time.UTC)
	return t
}
