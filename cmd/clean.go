package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/engine"
)

var (
	cleanCategories []string
	cleanAll        bool
	cleanDryRun     bool
	cleanYes        bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Scan, then delete the selected categories",
	Long: `clean runs a fresh scan, deletes every item in the selected
categories, and reports how much space was freed. Deletion failures on
individual items are reported but do not stop the rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cleanAll && len(cleanCategories) == 0 {
			return fmt.Errorf("select categories with --categories or use --all")
		}

		selection, err := parseSelection(cleanCategories, cleanAll)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		eng := newEngine(cleanDryRun)
		results, err := eng.ScanAll(ctx)
		if err != nil {
			if errors.Is(err, engine.ErrCancelled) {
				return fmt.Errorf("cancelled during scan")
			}
			return err
		}

		var bytes int64
		var items int
		for _, result := range results {
			if selection[result.Category] {
				bytes += result.TotalSize
				items += result.ItemCount
			}
		}
		if items == 0 {
			fmt.Println("Nothing to clean.")
			return nil
		}

		verb := "Deleting"
		if cleanDryRun {
			verb = "Would delete"
		}
		fmt.Printf("%s %s across %d items.\n", verb, humanize.Bytes(uint64(bytes)), items)

		if !cleanDryRun && !cleanYes {
			if !confirm("Proceed? This cannot be undone. [y/N] ") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		outcome, err := eng.Clean(ctx, selection)
		cancelled := errors.Is(err, engine.ErrCancelled)
		if err != nil && !cancelled {
			return err
		}

		if cleanDryRun {
			fmt.Printf("Dry run: %s would be freed.\n", humanize.Bytes(uint64(outcome.BytesFreed)))
			return nil
		}

		fmt.Printf("Freed %s (%d items deleted).\n", humanize.Bytes(uint64(outcome.BytesFreed)), outcome.Deleted)
		for _, failure := range outcome.Failures {
			fmt.Fprintf(os.Stderr, "could not delete %s: %s\n", failure.Path, failure.Reason)
		}
		if cancelled {
			fmt.Println("Cancelled before completion; deletions already made are kept.")
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringSliceVarP(&cleanCategories, "categories", "c", nil, "category ids to clean (see 'deepclean categories')")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "clean every category")
	cleanCmd.Flags().BoolVarP(&cleanDryRun, "dry-run", "n", false, "report what would be deleted without deleting")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "skip the confirmation prompt")
}

func parseSelection(ids []string, all bool) (map[catalog.ID]bool, error) {
	known := make(map[catalog.ID]bool)
	for _, cat := range catalog.Default() {
		known[cat.ID] = true
	}

	selection := make(map[catalog.ID]bool)
	if all {
		for id := range known {
			selection[id] = true
		}
		return selection, nil
	}
	for _, raw := range ids {
		id := catalog.ID(strings.TrimSpace(raw))
		if !known[id] {
			return nil, fmt.Errorf("unknown category %q", raw)
		}
		selection[id] = true
	}
	return selection, nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
