package uievents

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.DragThreshold != 10 || c.ClickInterval != 0.3 || c.RepeatDelay != 0.5 {
		t.Errorf("timing defaults = %+v", c)
	}
	if c.InputActionsPerSecond != 10 || c.MoveDeadZone != 0.6 {
		t.Errorf("navigation defaults = %+v", c)
	}
	if c.HorizontalAxis != AxisHorizontal || c.SubmitButton != ButtonSubmit {
		t.Errorf("names = %q %q", c.HorizontalAxis, c.SubmitButton)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := Config{DragThreshold: 3, DisableNavigation: true}.withDefaults()
	if c.DragThreshold != 3 || !c.DisableNavigation {
		t.Errorf("explicit values lost: %+v", c)
	}
	if c.ClickInterval != 0.3 || c.CancelButton != ButtonCancel {
		t.Errorf("zero values not defaulted: %+v", c)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"drag threshold", Config{DragThreshold: -1}},
		{"click interval", Config{ClickInterval: -0.1}},
		{"repeat delay", Config{RepeatDelay: -1}},
		{"actions per second", Config{InputActionsPerSecond: -5}},
		{"dead zone", Config{MoveDeadZone: -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "ui.toml", `
drag_threshold = 25
repeat_delay = 0.25
disable_navigation = true
submit_button = "Jump"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DragThreshold != 25 || cfg.RepeatDelay != 0.25 || !cfg.DisableNavigation || cfg.SubmitButton != "Jump" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.ClickInterval != 0.3 {
		t.Errorf("ClickInterval = %v, want default 0.3", cfg.ClickInterval)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeConfig(t, "ui.json", `{"click_interval": 0.5, "debug": true}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ClickInterval != 0.5 || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("UIEVENTS_DRAG_THRESHOLD", "40")
	path := writeConfig(t, "ui.toml", "drag_threshold = 25\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DragThreshold != 40 {
		t.Errorf("DragThreshold = %v, want env value 40", cfg.DragThreshold)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}

	path := writeConfig(t, "bad.toml", "drag_threshold = -3\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative threshold err = %v, want ErrInvalidConfig", err)
	}

	path = writeConfig(t, "broken.toml", "drag_threshold = [\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed file accepted")
	}
}
