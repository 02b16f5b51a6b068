// Package config loads phonebook settings from config.yaml and the
// environment using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/phonebook/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// EnvPrefix prefixes environment overrides, e.g. PHONEBOOK_OUTPUT.
	EnvPrefix = "PHONEBOOK"
)

// Config keys.
const (
	KeyOutput   = "output"
	KeyPrompt   = "prompt"
	KeyColor    = "color"
	KeyLogLevel = "log_level"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Settings validation errors.
var (
	ErrOutputUnknown   = errors.New("unknown output format")
	ErrColorUnknown    = errors.New("unknown color mode")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// Settings holds the effective configuration.
type Settings struct {
	Output   string `yaml:"output"`
	Prompt   string `yaml:"prompt"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Output:   OutputText,
		Prompt:   "> ",
		Color:    ColorAuto,
		LogLevel: LevelWarn,
	}
}

var (
	knownOutputs   = map[string]bool{OutputText: true, OutputJSON: true, OutputYAML: true}
	knownColors    = map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	knownLogLevels = map[string]bool{LevelDebug: true, LevelInfo: true, LevelWarn: true, LevelError: true}
)

// Validate checks that every setting holds a recognized value.
func (s Settings) Validate() error {
	if !knownOutputs[s.Output] {
		return fmt.Errorf("%w: %q", ErrOutputUnknown, s.Output)
	}
	if !knownColors[s.Color] {
		return fmt.Errorf("%w: %q", ErrColorUnknown, s.Color)
	}
	if !knownLogLevels[s.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, s.LogLevel)
	}
	return nil
}

// Load reads config.yaml from configDir, applies PHONEBOOK_* environment
// overrides and validates the result. A missing config.yaml is not an error.
func Load(configDir string) (Settings, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyPrompt, def.Prompt)
	v.SetDefault(KeyColor, def.Color)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	s := Settings{
		Output:   strings.ToLower(v.GetString(KeyOutput)),
		Prompt:   v.GetString(KeyPrompt),
		Color:    strings.ToLower(v.GetString(KeyColor)),
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WriteDefault creates configDir and a config.yaml holding Default() when
// the file does not exist yet. It reports whether a file was written.
func WriteDefault(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := Marshal(Default())
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

// Marshal encodes s as config.yaml content.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
