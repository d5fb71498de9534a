package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wexinc/lintkit/internal/artifact"
	"github.com/wexinc/lintkit/internal/config"
	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/generate"
	"github.com/wexinc/lintkit/internal/logging"
	"github.com/wexinc/lintkit/internal/manifest"
	"github.com/wexinc/lintkit/internal/policy"
	"github.com/wexinc/lintkit/internal/project"
	"github.com/wexinc/lintkit/internal/tui"
	"github.com/wexinc/lintkit/internal/tui/styles"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the linter and formatter for a project",
	Long: `Set up the linter and formatter for a Node project.

lintkit asks for a framework and a preset, then:
  1. removes existing ESLint/Prettier packages, config files and
     package.json fields
  2. adds a lint script to package.json
  3. installs the packages for the selection
  4. writes .eslintrc.json (migrated to eslint.config.mjs unless
     --no-migrate) and, for the Prettier preset, .prettierrc.json

Examples:
  lintkit init                                  # Ask interactively
  lintkit init --framework react --preset airbnb
  lintkit init --dir ./web --package-manager pnpm --no-migrate`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addInitFlags(initCmd)
}

func addInitFlags(c *cobra.Command) {
	c.Flags().StringP("dir", "d", ".", "Project directory containing package.json")
	c.Flags().StringP("framework", "f", "", "Framework: javascript, react or vue (or 1-3)")
	c.Flags().StringP("preset", "p", "", "Preset: prettier, airbnb, standard or recommended (or 1-4)")
	c.Flags().Bool("plain", false, "Use the numbered prompt instead of the interactive picker")
	c.Flags().String("package-manager", "", "Package manager: auto, npm, yarn or pnpm")
	c.Flags().Bool("no-migrate", false, "Keep .eslintrc.json instead of migrating to eslint.config.mjs")
	c.Flags().BoolP("verbose", "v", false, "Log every step to stderr")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}

	cfg, closeLog, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyInitFlags(cmd, cfg); err != nil {
		return err
	}

	info, err := project.NewDetector().Detect(dir)
	if err != nil {
		return lkerrors.Wrap(err, lkerrors.ErrNotFound, "project directory not found").WithDetails("dir", dir)
	}
	if !info.HasManifest {
		return lkerrors.ManifestNotFound(manifest.NewAccessor(dir).Path())
	}
	if project.IsHomeDirectory(dir) {
		logging.Warn("running in the home directory", "dir", dir)
	}

	framework, preset, ok, err := askSelection(cmd)
	if err != nil || !ok {
		return err
	}

	pm := project.Resolve(cfg.PackageManager, info)
	logging.Info("starting setup", "dir", dir, "package_manager", string(pm), "migrate", cfg.Migrate.Enabled)

	runner := newRunner(cmd, dir)
	gen := generate.New(dir, runner)
	gen.Out = cmd.OutOrStdout()
	gen.PackageManager = pm
	gen.Preprocessor.ScriptName = cfg.Lint.ScriptName
	gen.Preprocessor.Script = cfg.Lint.Script
	gen.Writer.Migrate = artifact.MigrateOptions{
		Enabled: cfg.Migrate.Enabled,
		Command: cfg.Migrate.Command,
	}

	result, err := gen.Generate(cmd.Context(), framework, preset)
	if err != nil {
		return err
	}
	if !result.Skipped {
		printSummary(cmd, result, pm)
	}
	return nil
}

// applyInitFlags layers command-line overrides on top of the config file.
func applyInitFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("package-manager") {
		raw, _ := cmd.Flags().GetString("package-manager")
		pm, err := project.ParsePackageManager(raw)
		if err != nil {
			return lkerrors.Wrap(err, lkerrors.ErrConfig, "invalid --package-manager").
				WithDetails("value", raw)
		}
		cfg.PackageManager = pm
	}
	if noMigrate, _ := cmd.Flags().GetBool("no-migrate"); noMigrate {
		cfg.Migrate.Enabled = false
	}
	return nil
}

// askSelection resolves framework and preset from flags or menus. ok is false
// when the user gave an invalid menu answer or cancelled; a notice has
// already been printed and the command should end without error.
func askSelection(cmd *cobra.Command) (policy.Framework, policy.Preset, bool, error) {
	frameworkFlag, _ := cmd.Flags().GetString("framework")
	presetFlag, _ := cmd.Flags().GetString("preset")
	plain, _ := cmd.Flags().GetBool("plain")

	var chooser tui.Chooser
	choose := func(title string, options []string) (int, bool, error) {
		if chooser == nil {
			chooser = tui.NewChooser(cmd.InOrStdin(), cmd.OutOrStdout(), plain)
		}
		idx, err := chooser.Choose(title, options)
		switch {
		case errors.Is(err, tui.ErrInvalidChoice):
			fmt.Fprintln(cmd.OutOrStdout(), tui.InvalidChoiceMessage(len(options)))
			return -1, false, nil
		case errors.Is(err, tui.ErrCancelled):
			fmt.Fprintln(cmd.OutOrStdout(), styles.MutedTextStyle.Render("Cancelled."))
			return -1, false, nil
		case err != nil:
			return -1, false, err
		}
		return idx, true, nil
	}

	var framework policy.Framework
	if frameworkFlag != "" {
		// An unknown value falls through to the generator's invalid-choice notice.
		parsed, err := policy.ParseFramework(frameworkFlag)
		if err != nil {
			parsed = policy.Framework(frameworkFlag)
		}
		framework = parsed
	} else {
		idx, ok, err := choose("Which framework does the project use?", policy.FrameworkLabels())
		if !ok {
			return "", "", false, err
		}
		framework = policy.Frameworks[idx]
	}

	var preset policy.Preset
	if presetFlag != "" {
		parsed, err := policy.ParsePreset(presetFlag)
		if err != nil {
			parsed = policy.Preset(presetFlag)
		}
		preset = parsed
	} else {
		idx, ok, err := choose("Which configuration do you want?", policy.PresetLabels())
		if !ok {
			return "", "", false, err
		}
		preset = policy.Presets[idx]
	}

	return framework, preset, true, nil
}

func printSummary(cmd *cobra.Command, result *generate.Result, pm project.PackageManager) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	printRemoved(out, result.Preprocess)
	if len(result.Files) > 0 {
		fmt.Fprintln(out, styles.HeadingStyle.Render("Written"))
		for _, name := range result.Files {
			fmt.Fprintf(out, "  %s %s\n", styles.IconDone, name)
		}
	}
	if pre := result.Preprocess; pre != nil && pre.ScriptName != "" {
		fmt.Fprintf(out, "Run %s to lint the project.\n", styles.KeyStyle.Render(string(pm)+" run "+pre.ScriptName))
	}
}

func printRemoved(out io.Writer, pre *manifest.PreprocessResult) {
	if pre == nil || !pre.Changed() {
		return
	}
	fmt.Fprintln(out, styles.HeadingStyle.Render("Removed"))
	for _, name := range pre.RemovedDependencies {
		fmt.Fprintf(out, "  %s %s\n", styles.IconRemoved, name)
	}
	for _, name := range pre.RemovedFiles {
		fmt.Fprintf(out, "  %s %s\n", styles.IconRemoved, name)
	}
	for _, field := range pre.RemovedFields {
		fmt.Fprintf(out, "  %s package.json field %q\n", styles.IconRemoved, field)
	}
}
