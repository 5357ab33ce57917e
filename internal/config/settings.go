package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileEnv names an optional YAML settings file.
	SettingsFileEnv = "MINIGREP_CONFIG"
	// LogLevelEnv overrides the log level from the settings file.
	LogLevelEnv = "MINIGREP_LOG_LEVEL"

	defaultLogLevel = "error"
)

// Settings aggregates runtime knobs that never influence which lines match.
type Settings struct {
	LogLevel string
}

// yamlSettings represents the YAML settings file structure.
type yamlSettings struct {
	LogLevel string `yaml:"log_level"`
}

// LoadSettings resolves Settings with precedence:
// Environment variables > YAML config > Defaults
func LoadSettings(lookupEnv LookupFunc) (Settings, error) {
	if lookupEnv == nil {
		lookupEnv = MapLookup(nil)
	}
	settings := defaultSettings()

	if path, ok := lookupEnv(SettingsFileEnv); ok && strings.TrimSpace(path) != "" {
		yamlCfg, err := loadFromFile(strings.TrimSpace(path))
		if err != nil {
			return Settings{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLSettings(&settings, yamlCfg)
	}

	applyEnvSettings(&settings, lookupEnv)

	if err := validateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func defaultSettings() Settings {
	return Settings{
		LogLevel: defaultLogLevel,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlSettings
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLSettings(settings *Settings, yamlCfg *yamlSettings) {
	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		settings.LogLevel = level
	}
}

func applyEnvSettings(settings *Settings, lookupEnv LookupFunc) {
	if level, ok := lookupEnv(LogLevelEnv); ok && strings.TrimSpace(level) != "" {
		settings.LogLevel = strings.TrimSpace(level)
	}
}

// validateSettings validates the final settings.
func validateSettings(settings Settings) error {
	if _, err := zapcore.ParseLevel(settings.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
