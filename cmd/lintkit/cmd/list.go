package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/lintkit/internal/policy"
	"github.com/wexinc/lintkit/internal/tui/styles"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported frameworks and presets",
	Long: `List the frameworks and presets accepted by --framework and --preset.

Either the id or the menu number can be passed.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.HeadingStyle.Render("Frameworks"))
	for i, f := range policy.Frameworks {
		fmt.Fprintf(out, "  %d. %-12s %s\n", i+1, styles.KeyStyle.Render(string(f)), f.Label())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.HeadingStyle.Render("Presets"))
	for i, p := range policy.Presets {
		fmt.Fprintf(out, "  %d. %-12s %s\n", i+1, styles.KeyStyle.Render(string(p)), p.Label())
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d combinations supported.\n", len(policy.Selections()))
	return nil
}
