package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wexinc/lintkit/internal/config"
	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/tui/styles"
)

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the lintkit configuration file",
	Long: `Manage .lintkit.yaml, the optional per-project configuration.

Every setting can also be overridden with a LINTKIT_ environment variable,
for example LINTKIT_PACKAGE_MANAGER=pnpm. The same variables are read from
a .env file in the project directory.`,
}

// configInitCmd writes a default configuration file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .lintkit.yaml",
	Long: `Write a .lintkit.yaml with every setting at its default value.

Examples:
  lintkit config init
  lintkit config init --force   # overwrite an existing file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConfigInit,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:           "show",
	Short:         "Print the effective configuration",
	Long:          "Print the configuration after applying .lintkit.yaml and environment overrides.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configCmd.PersistentFlags().StringP("dir", "d", ".", "Project directory")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, config.DefaultConfigPath)

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return lkerrors.WithSuggestion(lkerrors.ErrConfig,
			"configuration file already exists",
			"Use --force to overwrite it.").WithDetails("path", path)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return lkerrors.Wrap(err, lkerrors.ErrFilesystem, "failed to write configuration").
			WithDetails("path", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", styles.IconDone, path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		return lkerrors.ConfigParseError(filepath.Join(dir, config.DefaultConfigPath), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "package_manager:  %s\n", cfg.PackageManager)
	fmt.Fprintf(out, "lint.script_name: %s\n", cfg.Lint.ScriptName)
	fmt.Fprintf(out, "lint.script:      %s\n", cfg.Lint.Script)
	fmt.Fprintf(out, "migrate.enabled:  %t\n", cfg.Migrate.Enabled)
	fmt.Fprintf(out, "migrate.command:  %s\n", cfg.Migrate.Command)
	fmt.Fprintf(out, "log.level:        %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "log.dir:          %s\n", cfg.Log.Dir)
	fmt.Fprintf(out, "log.json:         %t\n", cfg.Log.JSON)
	return nil
}
