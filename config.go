package uievents

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("uievents: invalid config")

// Config holds the tunables of an EventSystem and its modules.
type Config struct {
	// DragThreshold is the distance in pixels a pointer must move after
	// press before a drag begins.
	DragThreshold float64 `mapstructure:"drag_threshold" toml:"drag_threshold" json:"drag_threshold"`
	// ClickInterval is the longest gap in seconds between presses that still
	// counts as a multi-click.
	ClickInterval float64 `mapstructure:"click_interval" toml:"click_interval" json:"click_interval"`
	// RepeatDelay is the wait in seconds before held navigation repeats.
	RepeatDelay float64 `mapstructure:"repeat_delay" toml:"repeat_delay" json:"repeat_delay"`
	// InputActionsPerSecond is the navigation repeat rate.
	InputActionsPerSecond float64 `mapstructure:"input_actions_per_second" toml:"input_actions_per_second" json:"input_actions_per_second"`
	MoveDeadZone          float64 `mapstructure:"move_dead_zone" toml:"move_dead_zone" json:"move_dead_zone"`
	DisableNavigation     bool    `mapstructure:"disable_navigation" toml:"disable_navigation" json:"disable_navigation"`
	ForceModuleActive     bool    `mapstructure:"force_module_active" toml:"force_module_active" json:"force_module_active"`

	HorizontalAxis string `mapstructure:"horizontal_axis" toml:"horizontal_axis" json:"horizontal_axis"`
	VerticalAxis   string `mapstructure:"vertical_axis" toml:"vertical_axis" json:"vertical_axis"`
	SubmitButton   string `mapstructure:"submit_button" toml:"submit_button" json:"submit_button"`
	CancelButton   string `mapstructure:"cancel_button" toml:"cancel_button" json:"cancel_button"`

	// Debug enables per-frame stats logging and tree checks.
	Debug bool `mapstructure:"debug" toml:"debug" json:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DragThreshold:         10,
		ClickInterval:         0.3,
		RepeatDelay:           0.5,
		InputActionsPerSecond: 10,
		MoveDeadZone:          defaultMoveDeadZone,
		HorizontalAxis:        AxisHorizontal,
		VerticalAxis:          AxisVertical,
		SubmitButton:          ButtonSubmit,
		CancelButton:          ButtonCancel,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DragThreshold == 0 {
		c.DragThreshold = d.DragThreshold
	}
	if c.ClickInterval == 0 {
		c.ClickInterval = d.ClickInterval
	}
	if c.RepeatDelay == 0 {
		c.RepeatDelay = d.RepeatDelay
	}
	if c.InputActionsPerSecond == 0 {
		c.InputActionsPerSecond = d.InputActionsPerSecond
	}
	if c.MoveDeadZone == 0 {
		c.MoveDeadZone = d.MoveDeadZone
	}
	if c.HorizontalAxis == "" {
		c.HorizontalAxis = d.HorizontalAxis
	}
	if c.VerticalAxis == "" {
		c.VerticalAxis = d.VerticalAxis
	}
	if c.SubmitButton == "" {
		c.SubmitButton = d.SubmitButton
	}
	if c.CancelButton == "" {
		c.CancelButton = d.CancelButton
	}
	return c
}

// Validate reports negative durations and thresholds.
func (c Config) Validate() error {
	switch {
	case c.DragThreshold < 0:
		return fmt.Errorf("%w: drag_threshold %v is negative", ErrInvalidConfig, c.DragThreshold)
	case c.ClickInterval < 0:
		return fmt.Errorf("%w: click_interval %v is negative", ErrInvalidConfig, c.ClickInterval)
	case c.RepeatDelay < 0:
		return fmt.Errorf("%w: repeat_delay %v is negative", ErrInvalidConfig, c.RepeatDelay)
	case c.InputActionsPerSecond < 0:
		return fmt.Errorf("%w: input_actions_per_second %v is negative", ErrInvalidConfig, c.InputActionsPerSecond)
	case c.MoveDeadZone < 0:
		return fmt.Errorf("%w: move_dead_zone %v is negative", ErrInvalidConfig, c.MoveDeadZone)
	}
	return nil
}

// LoadConfig reads a TOML, YAML or JSON config file. Missing keys keep their
// defaults and UIEVENTS_* environment variables override file values. An
// empty path returns the defaults with environment overrides applied.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("drag_threshold", defaults.DragThreshold)
	v.SetDefault("click_interval", defaults.ClickInterval)
	v.SetDefault("repeat_delay", defaults.RepeatDelay)
	v.SetDefault("input_actions_per_second", defaults.InputActionsPerSecond)
	v.SetDefault("move_dead_zone", defaults.MoveDeadZone)
	v.SetDefault("disable_navigation", defaults.DisableNavigation)
	v.SetDefault("force_module_active", defaults.ForceModuleActive)
	v.SetDefault("horizontal_axis", defaults.HorizontalAxis)
	v.SetDefault("vertical_axis", defaults.VerticalAxis)
	v.SetDefault("submit_button", defaults.SubmitButton)
	v.SetDefault("cancel_button", defaults.CancelButton)
	v.SetDefault("debug", defaults.Debug)

	v.SetEnvPrefix("UIEVENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
