package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/lintkit/internal/manifest"
	"github.com/wexinc/lintkit/internal/tui/styles"
)

// cleanCmd represents the clean command.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove existing linter and formatter setup",
	Long: `Remove every ESLint and Prettier trace from a project without
installing anything new.

Packages whose name contains "eslint" or "prettier" are dropped from
dependencies and devDependencies, their config files are deleted, the
eslintConfig and prettier fields are removed from package.json and the
lint script is set. Running clean twice changes nothing the second time.

Examples:
  lintkit clean
  lintkit clean --dir ./web`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringP("dir", "d", ".", "Project directory containing package.json")
	cleanCmd.Flags().BoolP("verbose", "v", false, "Log every step to stderr")
}

func runClean(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}

	cfg, closeLog, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}
	defer closeLog()

	pre := manifest.NewPreprocessor(dir)
	pre.ScriptName = cfg.Lint.ScriptName
	pre.Script = cfg.Lint.Script

	result, err := pre.Preprocess()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Changed() {
		fmt.Fprintln(out, styles.MutedTextStyle.Render("Nothing to remove."))
	}
	printRemoved(out, result)
	fmt.Fprintf(out, "%s script %q set to %q\n", styles.IconDone, result.ScriptName, result.Script)
	return nil
}
