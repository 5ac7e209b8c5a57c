package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cishsite/internal/validation"
)

// View names accepted by ui.start_view
const (
	ViewHome     = "home"
	ViewResearch = "research"
	ViewNews     = "news"
)

// Variety presets accepted by varieties.preset
const (
	PresetFruit = "fruit"
	PresetMango = "mango"
)

const (
	defaultIntervalMS = 4000
	minIntervalMS     = 500
	defaultWindow     = 3
)

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	Carousel  CarouselConfig  `toml:"carousel"`
	Varieties VarietiesConfig `toml:"varieties"`
	Content   ContentConfig   `toml:"content"`
	UI        UISettings      `toml:"ui"`
	Log       LogConfig       `toml:"log"`
}

// CarouselConfig tunes every rotating viewport
type CarouselConfig struct {
	IntervalMS int `toml:"interval_ms" validate:"gte=500"`
	Window     int `toml:"window" validate:"gte=1"` // cards visible in multi-card carousels
}

// Interval returns the autoplay cadence
func (c CarouselConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// VarietiesConfig selects which varieties data set the home carousel shows
type VarietiesConfig struct {
	Preset string `toml:"preset" validate:"oneof=fruit mango"`
}

// ContentConfig points at an optional content document replacing the built-in one
type ContentConfig struct {
	Path string `toml:"path"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartView string `toml:"start_view" validate:"oneof=home research news"`
	Mouse     bool   `toml:"mouse"`
	AltScreen bool   `toml:"alt_screen"`
}

// LogConfig controls the log file
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cishsite", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Invalid values are
// normalised and reported as an *InvalidValuesError next to the config.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Check what the file says before defaults paper over it
	cfg.fold()
	invalid := cfg.Validate()
	cfg.Normalize()
	if invalid != nil {
		return cfg, &InvalidValuesError{Path: path, Err: invalid}
	}
	return cfg, nil
}

// InvalidValuesError reports out-of-range values in a config file. The config
// returned with it is usable: those values were replaced with defaults.
type InvalidValuesError struct {
	Path string
	Err  error
}

func (e *InvalidValuesError) Error() string {
	return fmt.Sprintf("config %s: using defaults for invalid values: %v", e.Path, e.Err)
}

func (e *InvalidValuesError) Unwrap() error { return e.Err }

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Encode renders the configuration as TOML
func Encode(config *Config) (string, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

var validate = validation.New("toml")

// Validate reports every out-of-range value
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Normalize replaces invalid values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Carousel.IntervalMS < minIntervalMS {
		c.Carousel.IntervalMS = def.Carousel.IntervalMS
	}
	if c.Carousel.Window < 1 {
		c.Carousel.Window = def.Carousel.Window
	}
	c.fold()
	if c.Varieties.Preset != PresetMango {
		c.Varieties.Preset = PresetFruit
	}
	switch c.UI.StartView {
	case ViewHome, ViewResearch, ViewNews:
	default:
		c.UI.StartView = ViewHome
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.Log.Level = def.Log.Level
	}
}

// fold makes the keyword settings case-insensitive
func (c *Config) fold() {
	c.Varieties.Preset = strings.ToLower(strings.TrimSpace(c.Varieties.Preset))
	c.UI.StartView = strings.ToLower(strings.TrimSpace(c.UI.StartView))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Carousel: CarouselConfig{
			IntervalMS: defaultIntervalMS,
			Window:     defaultWindow,
		},
		Varieties: VarietiesConfig{Preset: PresetFruit},
		UI: UISettings{
			StartView: ViewHome,
			Mouse:     true,
			AltScreen: true,
		},
		Log: LogConfig{
			Path:  "cishsite.log",
			Level: "info",
		},
	}
}
