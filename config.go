package zoom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("zoom: invalid config")

// Default tuning values.
const (
	DefaultZoomDuration = 500 * time.Millisecond
	DefaultDebounce     = 200 * time.Millisecond
	DefaultPanThreshold = 5.0
	DefaultClickSlop    = 20.0
	DefaultEasing       = "InOutExpo"
)

// Config tunes a canvas, its scheduler, and its navigator. It round-trips
// through YAML; durations are written as Go duration strings ("25ms").
type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ClearColor Color  `yaml:"clear_color"`
	ShowFPS    bool   `yaml:"show_fps"`
	Debug      bool   `yaml:"debug"`

	PollInterval time.Duration `yaml:"poll_interval"`
	ZoomDuration time.Duration `yaml:"zoom_duration"`
	Debounce     time.Duration `yaml:"debounce"`
	PanThreshold float64       `yaml:"pan_threshold"`
	ClickSlop    float64       `yaml:"click_slop"`
	Easing       string        `yaml:"easing"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:        "zoom",
		Width:        800,
		Height:       600,
		ClearColor:   ColorWhite,
		PollInterval: DefaultPollInterval,
		ZoomDuration: DefaultZoomDuration,
		Debounce:     DefaultDebounce,
		PanThreshold: DefaultPanThreshold,
		ClickSlop:    DefaultClickSlop,
		Easing:       DefaultEasing,
	}
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("zoom: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig. Keys it does not know are
// rejected. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("zoom: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.PollInterval < 0:
		return fmt.Errorf("%w: poll_interval %v is negative", ErrInvalidConfig, c.PollInterval)
	case c.ZoomDuration < 0:
		return fmt.Errorf("%w: zoom_duration %v is negative", ErrInvalidConfig, c.ZoomDuration)
	case c.Debounce < 0:
		return fmt.Errorf("%w: debounce %v is negative", ErrInvalidConfig, c.Debounce)
	case c.PanThreshold < 0 || c.ClickSlop < 0:
		return fmt.Errorf("%w: pan_threshold and click_slop must not be negative", ErrInvalidConfig)
	}
	if _, ok := EasingByName(c.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, c.Easing)
	}
	return nil
}

// EasingFunc returns the configured curve, falling back to InOutExpo.
func (c Config) EasingFunc() Easing {
	if e, ok := EasingByName(c.Easing); ok {
		return e
	}
	return InOutExpo
}
