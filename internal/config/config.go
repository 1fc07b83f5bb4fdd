package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Carousel CarouselSettings `toml:"carousel"`
	Terminal TerminalSettings `toml:"terminal"`
	Content  ContentSettings  `toml:"content"`
	Log      LogSettings      `toml:"log"`
	Kiosk    KioskSettings    `toml:"kiosk"`
}

// CarouselSettings holds the autoplay periods
type CarouselSettings struct {
	GalleryIntervalMS int `toml:"gallery_interval_ms" env:"VILLA_GALLERY_INTERVAL_MS"`
	ReviewsIntervalMS int `toml:"reviews_interval_ms" env:"VILLA_REVIEWS_INTERVAL_MS"`
}

// GalleryInterval returns the gallery autoplay period
func (c CarouselSettings) GalleryInterval() time.Duration {
	return time.Duration(c.GalleryIntervalMS) * time.Millisecond
}

// ReviewsInterval returns the reviews autoplay period
func (c CarouselSettings) ReviewsInterval() time.Duration {
	return time.Duration(c.ReviewsIntervalMS) * time.Millisecond
}

// TerminalSettings controls how the terminal maps onto the layout breakpoints
type TerminalSettings struct {
	CellWidthPx int  `toml:"cell_width_px" env:"VILLA_CELL_WIDTH_PX"`
	Mouse       bool `toml:"mouse" env:"VILLA_MOUSE"`
}

// ContentSettings points at an optional dataset override
type ContentSettings struct {
	Path string `toml:"path" env:"VILLA_CONTENT_PATH"`
}

// LogSettings configures the file logger
type LogSettings struct {
	File  string `toml:"file" env:"VILLA_LOG_FILE"`
	Level string `toml:"level" env:"VILLA_LOG_LEVEL"`
}

// KioskSettings configures the optional status listener
type KioskSettings struct {
	Listen string `toml:"listen" env:"VILLA_KIOSK_LISTEN"`
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

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// DefaultPath returns $XDG_CONFIG_HOME/villaoasis/config.toml or the
// platform equivalent
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
	return filepath.Join(configDir, "villaoasis", "config.toml")
}

// Path returns the default file location used by Load and Save
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default file. A missing file yields
// the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
		if err := finish(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their defaults; environment variables override both.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := finish(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func finish(cfg *Config) error {
	if err := ApplyEnv(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// ApplyEnv overrides fields from VILLA_* environment variables
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values the carousels and terminal mapping cannot use
func (c *Config) Validate() error {
	if c.Carousel.GalleryIntervalMS <= 0 {
		return fmt.Errorf("carousel.gallery_interval_ms must be positive, got %d", c.Carousel.GalleryIntervalMS)
	}
	if c.Carousel.ReviewsIntervalMS <= 0 {
		return fmt.Errorf("carousel.reviews_interval_ms must be positive, got %d", c.Carousel.ReviewsIntervalMS)
	}
	if c.Terminal.CellWidthPx <= 0 {
		return fmt.Errorf("terminal.cell_width_px must be positive, got %d", c.Terminal.CellWidthPx)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Carousel: CarouselSettings{
			GalleryIntervalMS: 5000,
			ReviewsIntervalMS: 6000,
		},
		Terminal: TerminalSettings{
			CellWidthPx: 8,
			Mouse:       true,
		},
		Log: LogSettings{
			File:  "villaoasis.log",
			Level: "info",
		},
	}
}
