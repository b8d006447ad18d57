package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Carousel CarouselConfig      `mapstructure:"carousel"`
	UI       UIConfig            `mapstructure:"ui"`
	Content  ContentConfig       `mapstructure:"content"`
	Log      LogConfig           `mapstructure:"log"`
	Keys     map[string][]string `mapstructure:"keys"`
}

// CarouselConfig tunes gesture and transition behaviour.
type CarouselConfig struct {
	LockMS         int     `mapstructure:"lock_ms"`
	NoiseThreshold int     `mapstructure:"noise_threshold"`
	SwipeRatio     float64 `mapstructure:"swipe_ratio"`
	Boundary       string  `mapstructure:"boundary"`
	AutoplayMS     int     `mapstructure:"autoplay_ms"`
	FPS            int     `mapstructure:"fps"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title  string `mapstructure:"title"`
	Accent string `mapstructure:"accent"`
	// Theme is the glamour style for card bodies: dark, light or notty.
	Theme string `mapstructure:"theme"`
}

// ContentConfig points at an optional TOML file of spaces.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds the debug log destination. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

func (c CarouselConfig) LockDuration() time.Duration {
	return time.Duration(c.LockMS) * time.Millisecond
}

func (c CarouselConfig) AutoplayInterval() time.Duration {
	return time.Duration(c.AutoplayMS) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix SPACES_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("carousel.lock_ms", 300)
	v.SetDefault("carousel.noise_threshold", 10)
	v.SetDefault("carousel.swipe_ratio", 0.2)
	v.SetDefault("carousel.boundary", "clamp")
	v.SetDefault("carousel.autoplay_ms", 0)
	v.SetDefault("carousel.fps", 60)
	v.SetDefault("ui.title", "CHUNG")
	v.SetDefault("ui.accent", "#f9d849")
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("content.path", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPACES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spaces"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPACES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the carousel cannot run with.
func (c Config) Validate() error {
	cc := c.Carousel
	switch {
	case cc.LockMS <= 0:
		return fmt.Errorf("%w: carousel.lock_ms must be positive, got %d", ErrInvalidConfig, cc.LockMS)
	case cc.NoiseThreshold < 0:
		return fmt.Errorf("%w: carousel.noise_threshold must not be negative, got %d", ErrInvalidConfig, cc.NoiseThreshold)
	case cc.SwipeRatio <= 0 || cc.SwipeRatio > 1:
		return fmt.Errorf("%w: carousel.swipe_ratio must be in (0, 1], got %v", ErrInvalidConfig, cc.SwipeRatio)
	case cc.AutoplayMS < 0:
		return fmt.Errorf("%w: carousel.autoplay_ms must not be negative, got %d", ErrInvalidConfig, cc.AutoplayMS)
	case cc.FPS <= 0 || cc.FPS > 240:
		return fmt.Errorf("%w: carousel.fps must be in 1..240, got %d", ErrInvalidConfig, cc.FPS)
	}
	switch strings.ToLower(strings.TrimSpace(cc.Boundary)) {
	case "clamp", "wrap":
	default:
		return fmt.Errorf("%w: carousel.boundary must be clamp or wrap, got %q", ErrInvalidConfig, cc.Boundary)
	}
	switch c.UI.Theme {
	case "dark", "light", "notty", "dracula", "pink", "tokyo-night", "ascii":
	default:
		return fmt.Errorf("%w: ui.theme %q is not a known style", ErrInvalidConfig, c.UI.Theme)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no keys", ErrInvalidConfig, action)
		}
	}
	return nil
}
