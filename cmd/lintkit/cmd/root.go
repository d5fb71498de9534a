// Package cmd provides the CLI commands for lintkit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wexinc/lintkit/internal/config"
	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/installer"
	"github.com/wexinc/lintkit/internal/logging"
	"github.com/wexinc/lintkit/internal/tui/styles"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lintkit",
	Short: "Set up ESLint and Prettier in a Node project",
	Long: `lintkit replaces whatever linter and formatter setup a Node project has
with a fresh, known-good one.

It removes existing ESLint/Prettier packages, config files and package.json
fields, installs the packages for the chosen framework and preset, writes
the new policy files and adds a lint script.

Running lintkit with no subcommand is the same as "lintkit init".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInit,
}

func init() {
	addInitFlags(rootCmd)
}

// newRunner builds the command runner for a project directory.
// Tests replace it with an installer.Recorder.
var newRunner = func(cmd *cobra.Command, dir string) installer.Runner {
	r := installer.NewShellRunner(dir)
	r.Stdin = cmd.InOrStdin()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()
	return r
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("lintkit {{.Version}}\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(os.Stderr, styles.IconFailed+" "+lkerrors.Describe(err))
		stop()
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// projectDir resolves the --dir flag to an absolute path.
func projectDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", lkerrors.Wrap(err, lkerrors.ErrFilesystem, "failed to resolve project directory").
			WithDetails("dir", dir)
	}
	return abs, nil
}

// loadConfig reads .lintkit.yaml from dir and sets up the global logger.
// The returned cleanup closes the log file.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, func(), error) {
	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		return nil, func() {}, lkerrors.ConfigParseError(filepath.Join(dir, config.DefaultConfigPath), err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	lc := cfg.LoggingConfig(verbose)
	if lc.LogDir != "" && !filepath.IsAbs(lc.LogDir) {
		lc.LogDir = filepath.Join(dir, lc.LogDir)
	}
	if verbose {
		lc.ConsoleWriter = cmd.ErrOrStderr()
	}
	if err := logging.InitGlobal(lc); err != nil {
		return nil, func() {}, lkerrors.Wrap(err, lkerrors.ErrConfig, "failed to initialize logging")
	}
	return cfg, func() { _ = logging.CloseGlobal() }, nil
}
