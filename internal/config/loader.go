package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wexinc/lintkit/internal/project"
)

const (
	// DefaultConfigPath is the config file name relative to the project root.
	DefaultConfigPath = ".lintkit.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "LINTKIT"

	// DotEnvFile holds project-local overrides. The process environment wins.
	DotEnvFile = ".env"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v      *viper.Viper
	dotenv map[string]string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Decode on top of the defaults so absent keys keep them
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(path, cfg)
}

// LoadConfigFromDir loads .lintkit.yaml from dir. A missing file is not an
// error: defaults plus environment overrides are returned instead.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	if err := l.loadDotEnv(filepath.Join(dir, DotEnvFile)); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, DefaultConfigPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(path, NewConfig())
	}
	return l.LoadConfig(path)
}

func (l *Loader) finish(path string, cfg *Config) (*Config, error) {
	l.applyEnvOverrides(cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// loadDotEnv reads LINTKIT_ entries from a .env file. A missing file is fine.
func (l *Loader) loadDotEnv(path string) error {
	entries, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &LoadError{
			Path:    path,
			Message: "failed to read env file",
			Err:     err,
		}
	}

	l.dotenv = make(map[string]string)
	for k, v := range entries {
		if strings.HasPrefix(k, EnvPrefix+"_") {
			l.dotenv[k] = v
		}
	}
	return nil
}

func (l *Loader) getenv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return l.dotenv[key]
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := l.getenv(EnvPrefix + "_PACKAGE_MANAGER"); v != "" {
		cfg.PackageManager = project.PackageManager(strings.ToLower(strings.TrimSpace(v)))
	}

	// Lint script
	if v := l.getenv(EnvPrefix + "_LINT_SCRIPT_NAME"); v != "" {
		cfg.Lint.ScriptName = v
	}
	if v := l.getenv(EnvPrefix + "_LINT_SCRIPT"); v != "" {
		cfg.Lint.Script = v
	}

	// Migration
	if v := l.getenv(EnvPrefix + "_MIGRATE_ENABLED"); v != "" {
		cfg.Migrate.Enabled = parseBool(v)
	}
	if v := l.getenv(EnvPrefix + "_MIGRATE_COMMAND"); v != "" {
		cfg.Migrate.Command = v
	}

	// Logging
	if v := l.getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := l.getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := l.getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook composes the standard mapstructure hooks with ours.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(project.PackageManager("")):
			return project.PackageManager(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}

const fileHeader = "# lintkit configuration\n# Environment variables prefixed with " + EnvPrefix + "_ override these values.\n\n"

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, it uses DefaultConfigPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
