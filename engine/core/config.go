package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/0918nobita/glhello/engine/colors"
	yaml "github.com/goccy/go-yaml"
)

// Config for the engine run.
type Config struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	GLMajor     int    `yaml:"gl_major"`
	GLMinor     int    `yaml:"gl_minor"`
	CoreProfile bool   `yaml:"core_profile"`
	VSync       bool   `yaml:"vsync"`
	// ClearColour is "#rrggbb" or "#rrggbbaa".
	ClearColour string `yaml:"clear_colour"`
	FrameRate   int    `yaml:"frame_rate"`

	VertexShaderPath   string `yaml:"vertex_shader"`
	FragmentShaderPath string `yaml:"fragment_shader"`
	// CheckShaderErrors turns on compile and link status checks.
	CheckShaderErrors bool `yaml:"check_shader_errors"`

	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Title:              "Rust OpenGL",
		Width:              640,
		Height:             480,
		GLMajor:            3,
		GLMinor:            1,
		CoreProfile:        true,
		ClearColour:        "#ffffff",
		FrameRate:          60,
		VertexShaderPath:   "shaders/vertex.glsl",
		FragmentShaderPath: "shaders/fragment.glsl",
		LogLevel:           "info",
	}
}

// LoadConfig overlays the YAML file at filename on DefaultConfig. A missing
// file is not an error.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s is invalid: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 1) {
		return fmt.Errorf("OpenGL %d.%d is too old, need at least 3.1", c.GLMajor, c.GLMinor)
	}
	if c.FrameRate < 1 {
		return fmt.Errorf("frame_rate %d must be positive", c.FrameRate)
	}
	if c.VertexShaderPath == "" || c.FragmentShaderPath == "" {
		return fmt.Errorf("both vertex_shader and fragment_shader must be set")
	}
	if _, err := colors.ParseHex(c.ClearColour); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ClearColor returns the parsed clear colour, white if it does not parse.
func (c Config) ClearColor() colors.Color {
	col, err := colors.ParseHex(c.ClearColour)
	if err != nil {
		return colors.White
	}
	return col
}

// FrameInterval is the sleep between two loop iterations.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate < 1 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
