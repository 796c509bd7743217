package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "pretender.yaml"

type Config struct {
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
	Editor EditorConfig `yaml:"editor"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	// Output is a file path, or "stderr"/"stdout".
	Output string `yaml:"output"`
}

type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

type EditorConfig struct {
	PickTolerance float64 `yaml:"pick_tolerance"`
	LineColor     RGB     `yaml:"line_color"`
	LineWeight    float64 `yaml:"line_weight"`
	// Aliases are extra command aliases, alias -> command name.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Pretender",
			Width:  800,
			Height: 800,
			FPS:    60,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
			Output:   "log.txt",
		},
		Editor: EditorConfig{
			PickTolerance: 4,
			LineColor:     RGB{R: 234, G: 65, B: 212},
			LineWeight:    1,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path through a temp file so a crash never leaves a
// half-written config behind.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "pretender-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log encoding: %s", c.Log.Encoding)
	}
	if c.Editor.PickTolerance < 0 {
		return fmt.Errorf("pick tolerance must not be negative, got %g", c.Editor.PickTolerance)
	}
	if c.Editor.LineWeight <= 0 {
		return fmt.Errorf("line weight must be positive, got %g", c.Editor.LineWeight)
	}
	for alias, target := range c.Editor.Aliases {
		if !typeable(alias) {
			return fmt.Errorf("alias %q can not be typed: use only a-z and 0-9", alias)
		}
		if target == "" {
			return fmt.Errorf("alias %q has no command", alias)
		}
	}
	return nil
}

// typeable reports whether s can be entered on the command line, which only
// accepts lower-case letters and digits.
func typeable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
