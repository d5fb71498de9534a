// Package generate ties the pieces together: it looks up a recipe, clears
// previous setups out of the project, installs packages and writes the new
// policy files.
package generate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wexinc/lintkit/internal/artifact"
	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/installer"
	"github.com/wexinc/lintkit/internal/logging"
	"github.com/wexinc/lintkit/internal/manifest"
	"github.com/wexinc/lintkit/internal/policy"
	"github.com/wexinc/lintkit/internal/project"
)

// Console lines printed during generation.
const (
	MsgInvalidSelection = "Invalid configuration choice"
	MsgStart            = "Initializing ESLint setup..."
	MsgDone             = "ESLint setup complete."
)

// Result reports one generation run.
type Result struct {
	Selection policy.Selection `json:"selection"`
	// Skipped is true when the selection had no recipe; nothing was touched.
	Skipped    bool                       `json:"skipped"`
	Preprocess *manifest.PreprocessResult `json:"preprocess,omitempty"`
	// Commands are the install commands run, in order.
	Commands []string `json:"commands,omitempty"`
	// Files are the policy files left in the project root.
	Files []string `json:"files,omitempty"`
}

// Generator runs the full setup for one project root.
type Generator struct {
	Root           string
	Preprocessor   *manifest.Preprocessor
	Runner         installer.Runner
	Writer         *artifact.Writer
	PackageManager project.PackageManager
	Out            io.Writer
	Logger         *logging.Logger
}

// New creates a Generator for root that runs commands through runner.
// Migration is enabled and npm is used.
func New(root string, runner installer.Runner) *Generator {
	return &Generator{
		Root:           root,
		Preprocessor:   manifest.NewPreprocessor(root),
		Runner:         runner,
		Writer:         artifact.NewWriter(root, runner),
		PackageManager: project.NPM,
		Out:            os.Stdout,
		Logger:         logging.Global(),
	}
}

// Generate sets up the linter and formatter for a selection.
//
// An unknown selection prints a notice and returns a skipped Result with a
// nil error; the project is left untouched. Any other failure stops the run
// where it happened. Nothing already written is rolled back.
func (g *Generator) Generate(ctx context.Context, framework policy.Framework, preset policy.Preset) (*Result, error) {
	log := g.Logger
	if log == nil {
		log = logging.Global()
	}
	out := g.Out
	if out == nil {
		out = io.Discard
	}

	result := &Result{Selection: policy.Selection{Framework: framework, Preset: preset}}
	log = log.With("selection", result.Selection.String())

	recipe, ok := policy.Lookup(framework, preset)
	if !ok {
		fmt.Fprintln(out, MsgInvalidSelection)
		log.Warn("no recipe for selection", "error", lkerrors.InvalidSelection(string(framework), string(preset)))
		result.Skipped = true
		return result, nil
	}
	if g.Writer != nil && g.Writer.Migrate.Enabled {
		recipe = recipe.WithMigrationSupport()
	}

	pre, err := g.Preprocessor.Preprocess()
	result.Preprocess = pre
	if err != nil {
		return result, err
	}

	fmt.Fprintln(out, MsgStart)

	pm := g.PackageManager
	if pm == "" || pm == project.Auto {
		pm = project.NPM
	}
	for _, in := range recipe.Installs {
		command := pm.InstallCommand(in.Kind, in.Packages)
		result.Commands = append(result.Commands, command)
		log.Info("installing packages", "kind", string(in.Kind), "count", len(in.Packages))
		if err := g.Runner.Run(ctx, command); err != nil {
			return result, err
		}
	}

	if g.Writer != nil {
		files, err := g.Writer.Write(ctx, recipe.Payload)
		result.Files = files
		if err != nil {
			return result, err
		}
	}

	fmt.Fprintln(out, MsgDone)
	log.Info("setup complete", "files", len(result.Files), "commands", len(result.Commands))
	return result, nil
}
