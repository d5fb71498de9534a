// Package errors provides error types for lintkit.
// This file contains configuration and selection errors.
package errors

import (
	"fmt"
)

// ConfigParseError creates an error for .lintkit.yaml parsing failures.
func ConfigParseError(configPath string, parseErr error) *LintkitError {
	return &LintkitError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check .lintkit.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. package_manager must be one of: auto, npm, yarn, pnpm
  3. Regenerate a clean file with: lintkit config init --force`,
	}
}

// InvalidSelection creates an error for a framework/preset pair that has no recipe.
// The generation flow reports this as a notice rather than failing.
func InvalidSelection(framework, preset string) *LintkitError {
	return &LintkitError{
		Kind:    ErrSelection,
		Message: fmt.Sprintf("no configuration for framework %q with preset %q", framework, preset),
		Details: map[string]string{
			"framework": framework,
			"preset":    preset,
		},
		Suggestion: "List the supported combinations with: lintkit list",
	}
}
