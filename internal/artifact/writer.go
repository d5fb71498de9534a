// Package artifact writes the policy documents of a recipe into the project
// root and optionally hands the linter policy to the migration tool.
package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/installer"
	"github.com/wexinc/lintkit/internal/jsonfile"
	"github.com/wexinc/lintkit/internal/logging"
	"github.com/wexinc/lintkit/internal/policy"
)

// File names written into the project root.
const (
	LinterFile          = ".eslintrc.json"
	LinterIgnoreFile    = ".eslintignore"
	FormatterFile       = ".prettierrc.json"
	FormatterIgnoreFile = ".prettierignore"
	// MigratedLinterFile is what the migration tool produces.
	MigratedLinterFile = "eslint.config.mjs"
)

// DefaultMigrateCommand converts a legacy linter config to the flat format.
const DefaultMigrateCommand = "npx @eslint/migrate-config"

// MigrateOptions controls the legacy-to-flat migration step.
type MigrateOptions struct {
	Enabled bool
	// Command is run with the legacy file name appended.
	Command string
}

// Writer materializes a policy payload under Root.
type Writer struct {
	Root    string
	Runner  installer.Runner
	Migrate MigrateOptions
	Logger  *logging.Logger
}

// NewWriter creates a Writer with migration enabled.
func NewWriter(root string, runner installer.Runner) *Writer {
	return &Writer{
		Root:    root,
		Runner:  runner,
		Migrate: MigrateOptions{Enabled: true, Command: DefaultMigrateCommand},
		Logger:  logging.Global(),
	}
}

// Write writes the payload and returns the names of the policy files left
// in Root, in write order. Existing files with the same names are replaced.
// A failed migration is fatal and leaves the legacy files in place.
func (w *Writer) Write(ctx context.Context, payload policy.Payload) ([]string, error) {
	log := w.Logger
	if log == nil {
		log = logging.Global()
	}

	var files []string

	if payload.Linter != nil {
		if err := w.writeJSON(LinterFile, payload.Linter); err != nil {
			return files, err
		}
		if err := w.writeLines(LinterIgnoreFile, payload.LinterIgnore); err != nil {
			return append(files, LinterFile), err
		}
		log.Info("wrote linter policy", "file", LinterFile)

		if w.Migrate.Enabled {
			if err := w.migrate(ctx, log); err != nil {
				return append(files, LinterFile, LinterIgnoreFile), err
			}
			if w.exists(MigratedLinterFile) {
				files = append(files, MigratedLinterFile)
			}
		} else {
			files = append(files, LinterFile, LinterIgnoreFile)
		}
	}

	if payload.Formatter != nil {
		if err := w.writeJSON(FormatterFile, payload.Formatter); err != nil {
			return files, err
		}
		files = append(files, FormatterFile)
		if err := w.writeLines(FormatterIgnoreFile, payload.FormatterIgnore); err != nil {
			return files, err
		}
		files = append(files, FormatterIgnoreFile)
		log.Info("wrote formatter policy", "file", FormatterFile)
	}

	return files, nil
}

func (w *Writer) migrate(ctx context.Context, log *logging.Logger) error {
	command := w.Migrate.Command
	if command == "" {
		command = DefaultMigrateCommand
	}
	if w.Runner == nil {
		return lkerrors.New(lkerrors.ErrCommand, "no command runner configured for migration")
	}
	if err := w.Runner.Run(ctx, command+" "+LinterFile); err != nil {
		return err
	}

	for _, name := range []string{LinterFile, LinterIgnoreFile} {
		err := os.Remove(filepath.Join(w.Root, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return lkerrors.Wrap(err, lkerrors.ErrFilesystem, "failed to remove legacy linter file").
				WithDetails("file", name)
		}
		log.Debug("removed legacy linter file", "file", name)
	}
	return nil
}

func (w *Writer) writeJSON(name string, v any) error {
	if err := jsonfile.Write(filepath.Join(w.Root, name), v); err != nil {
		return lkerrors.Wrap(err, lkerrors.ErrFilesystem, "failed to write policy file").
			WithDetails("file", name)
	}
	return nil
}

func (w *Writer) writeLines(name string, lines []string) error {
	if err := jsonfile.WriteLines(filepath.Join(w.Root, name), lines); err != nil {
		return lkerrors.Wrap(err, lkerrors.ErrFilesystem, "failed to write ignore file").
			WithDetails("file", name)
	}
	return nil
}

func (w *Writer) exists(name string) bool {
	_, err := os.Stat(filepath.Join(w.Root, name))
	return err == nil
}
