// Package config defines core configuration types for syntree.
// These types are pure data structures with no dependency on how or
// where the configuration was loaded from.
package config

// ColorMode controls when styled output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config holds user-facing settings for the syntree CLI.
type Config struct {
	// DefaultLanguage is used when neither the file extension nor the
	// content identifies a grammar. Empty means fail instead.
	DefaultLanguage string `yaml:"default_language"`

	// Languages maps file extensions (with leading dot) to grammar
	// names, overriding and extending the built-in extension table.
	Languages map[string]string `yaml:"languages"`

	// Color selects the output color mode: auto, always, or never.
	Color ColorMode `yaml:"color"`

	// LogLevel sets the logger verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Languages != nil {
		clone.Languages = make(map[string]string, len(c.Languages))
		for ext, name := range c.Languages {
			clone.Languages[ext] = name
		}
	}
	return &clone
}

// Merge overlays non-zero fields of other onto a copy of c.
func (c *Config) Merge(other *Config) *Config {
	merged := c.Clone()
	if merged == nil {
		merged = &Config{}
	}
	if other == nil {
		return merged
	}

	if other.DefaultLanguage != "" {
		merged.DefaultLanguage = other.DefaultLanguage
	}
	if other.Color != "" {
		merged.Color = other.Color
	}
	if other.LogLevel != "" {
		merged.LogLevel = other.LogLevel
	}
	for ext, name := range other.Languages {
		if merged.Languages == nil {
			merged.Languages = map[string]string{}
		}
		merged.Languages[ext] = name
	}

	return merged
}
