package errors

import (
	"fmt"
)

// ManifestNotFound creates an error for a project without a package.json.
func ManifestNotFound(manifestPath string) *LintkitError {
	return &LintkitError{
		Kind:    ErrManifest,
		Message: "package.json not found in the project directory",
		Details: map[string]string{
			"path": manifestPath,
		},
		Suggestion: `Run lintkit from the root of a Node project, or create one first:
  npm init -y`,
	}
}

// ManifestParseError creates an error for a package.json that is not a JSON object.
func ManifestParseError(manifestPath string, parseErr error) *LintkitError {
	return &LintkitError{
		Kind:    ErrManifest,
		Message: fmt.Sprintf("failed to parse manifest: %s", manifestPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": manifestPath,
		},
		Suggestion: "package.json must contain a single JSON object. Fix the syntax error and run lintkit again.",
	}
}

// ManifestWriteError creates an error for a failed package.json rewrite.
func ManifestWriteError(manifestPath string, writeErr error) *LintkitError {
	return &LintkitError{
		Kind:    ErrFilesystem,
		Message: fmt.Sprintf("failed to write manifest: %s", manifestPath),
		Cause:   writeErr,
		Details: map[string]string{
			"path": manifestPath,
		},
	}
}
