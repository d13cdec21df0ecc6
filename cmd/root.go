package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/clean"
	"github.com/tonicformac/deepclean/internal/engine"
	"github.com/tonicformac/deepclean/internal/logging"
	"github.com/tonicformac/deepclean/internal/resolve"
	"github.com/tonicformac/deepclean/internal/scan"
	"github.com/tonicformac/deepclean/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "deepclean",
	Short: "Reclaim disk space from caches, logs and temporary files",
	Long: `deepclean scans a fixed set of cleanup categories (user caches,
system caches, log files, temporary files, developer artifacts),
reports how much space each one holds, and deletes what you select.

Run without arguments for the interactive interface, or use the scan
and clean subcommands directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			// Piped output gets the plain scan report.
			return scanCmd.RunE(cmd, args)
		}
		program := tea.NewProgram(ui.InitialModel(newEngine(false)), tea.WithAltScreen())
		_, err := program.Run()
		return err
	},
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(diskCmd)
}

// newEngine wires a fresh engine over the default catalog. Each
// invocation owns its instance; there is no shared global engine.
func newEngine(dryRun bool) *engine.Engine {
	scanner := scan.New(catalog.Default(), resolve.New())
	executor := clean.NewExecutor(clean.WithDryRun(dryRun))
	return engine.New(scanner, executor, engine.WithLogger(logging.Default()))
}
