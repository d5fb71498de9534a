// Package config provides configuration data structures for lintkit.
package config

import (
	"strings"

	"github.com/wexinc/lintkit/internal/logging"
	"github.com/wexinc/lintkit/internal/project"
)

// Config represents the lintkit configuration loaded from .lintkit.yaml.
type Config struct {
	// PackageManager selects the installer: auto, npm, yarn or pnpm (default: auto).
	PackageManager project.PackageManager `yaml:"package_manager" json:"package_manager" mapstructure:"package_manager"`
	Lint           LintConfig             `yaml:"lint"            json:"lint"            mapstructure:"lint"`
	Migrate        MigrateConfig          `yaml:"migrate"         json:"migrate"         mapstructure:"migrate"`
	Log            LogConfig              `yaml:"log"             json:"log"             mapstructure:"log"`
}

// LintConfig configures the script entry added to package.json.
type LintConfig struct {
	// ScriptName is the scripts key (default: "lint").
	ScriptName string `yaml:"script_name" json:"script_name" mapstructure:"script_name"`
	// Script is the command stored under ScriptName (default: "eslint .").
	Script string `yaml:"script" json:"script" mapstructure:"script"`
}

// MigrateConfig configures conversion of the legacy linter config.
type MigrateConfig struct {
	// Enabled runs the migration tool after writing the linter policy (default: true).
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	// Command is the migration tool; the legacy file name is appended.
	Command string `yaml:"command" json:"command" mapstructure:"command"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is where log files are written. Empty disables file logging.
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty" mapstructure:"dir"`
	// JSON switches log files to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultScriptName     = "lint"
	DefaultScript         = "eslint ."
	DefaultMigrateCommand = "npx @eslint/migrate-config"
	DefaultLogLevel       = "info"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		PackageManager: project.Auto,
		Lint: LintConfig{
			ScriptName: DefaultScriptName,
			Script:     DefaultScript,
		},
		Migrate: MigrateConfig{
			Enabled: true,
			Command: DefaultMigrateCommand,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// Migrate.Enabled is left alone: false may be deliberate, and the loader
// decodes on top of NewConfig so an absent key keeps the default.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.PackageManager == "" {
		c.PackageManager = defaults.PackageManager
	}
	if c.Lint.ScriptName == "" {
		c.Lint.ScriptName = defaults.Lint.ScriptName
	}
	if c.Lint.Script == "" {
		c.Lint.Script = defaults.Lint.Script
	}
	if c.Migrate.Command == "" {
		c.Migrate.Command = defaults.Migrate.Command
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.PackageManager != "" {
		if _, err := project.ParsePackageManager(string(c.PackageManager)); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "package_manager",
				Message: "must be 'auto', 'npm', 'yarn', or 'pnpm'",
			})
		}
	}

	if strings.ContainsAny(c.Lint.ScriptName, " \t\n") {
		errs = append(errs, &ValidationError{Field: "lint.script_name", Message: "must not contain whitespace"})
	}
	if c.Lint.ScriptName != "" && strings.TrimSpace(c.Lint.Script) == "" {
		errs = append(errs, &ValidationError{Field: "lint.script", Message: "must not be empty"})
	}

	if c.Migrate.Enabled && strings.TrimSpace(c.Migrate.Command) == "" {
		errs = append(errs, &ValidationError{Field: "migrate.command", Message: "required when migrate.enabled is true"})
	}

	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoggingConfig converts the log section into a logger configuration.
// verbose turns on debug-level console output.
func (c *Config) LoggingConfig(verbose bool) *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	lc.LogDir = c.Log.Dir
	lc.JSONFormat = c.Log.JSON
	if verbose {
		lc.Level = logging.LevelDebug
		lc.Console = true
	}
	return lc
}
