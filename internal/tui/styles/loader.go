package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/logview/internal/capture"
)

// ThemeFile is a custom console theme loaded from YAML. Only the level
// colors are themeable; layout styles are fixed.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Console")
	Name string `yaml:"name"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Levels defines the per-level foreground colors
	Levels ThemeLevelColors `yaml:"levels"`
}

// ThemeLevelColors holds one hex color per severity level. All colors
// are #RGB or #RRGGBB; omitted levels keep their defaults.
type ThemeLevelColors struct {
	Error string `yaml:"error,omitempty"`
	Warn  string `yaml:"warn,omitempty"`
	Info  string `yaml:"info,omitempty"`
	Debug string `yaml:"debug,omitempty"`
	Trace string `yaml:"trace,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads and validates a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	colors := map[string]string{
		"error": t.Levels.Error,
		"warn":  t.Levels.Warn,
		"info":  t.Levels.Info,
		"debug": t.Levels.Debug,
		"trace": t.Levels.Trace,
	}
	for name, color := range colors {
		if color == "" {
			continue
		}
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}
	return nil
}

// Apply installs the theme's level colors, leaving omitted levels
// untouched.
func (t *ThemeFile) Apply() {
	levels := map[capture.Level]string{
		capture.LevelError: t.Levels.Error,
		capture.LevelWarn:  t.Levels.Warn,
		capture.LevelInfo:  t.Levels.Info,
		capture.LevelDebug: t.Levels.Debug,
		capture.LevelTrace: t.Levels.Trace,
	}
	for level, color := range levels {
		if color != "" {
			SetLevelColor(level, lipgloss.Color(color))
		}
	}
}
