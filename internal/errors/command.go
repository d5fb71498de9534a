package errors

import (
	"fmt"
)

// CommandFailed creates an error for an external command (installer or migration
// tool) that exited unsuccessfully.
func CommandFailed(command string, exitCode int, cause error) *LintkitError {
	return &LintkitError{
		Kind:    ErrCommand,
		Message: "command failed",
		Cause:   cause,
		Details: map[string]string{
			"command":   command,
			"exit_code": fmt.Sprintf("%d", exitCode),
		},
		Suggestion: `Review the command output above.

Common fixes:
  • Check your network connection and registry settings
  • Make sure the package manager is installed and on PATH
  • Resolve peer dependency conflicts, then run lintkit again

Changes already written to package.json are kept.`,
	}
}
