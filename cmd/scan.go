package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/engine"
	"github.com/tonicformac/deepclean/internal/scan"
)

var scanVerbose bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan all categories and report reclaimable space",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		eng := newEngine(false)
		results, err := eng.ScanAll(ctx)
		if err != nil && !errors.Is(err, engine.ErrCancelled) {
			return err
		}
		if errors.Is(err, engine.ErrCancelled) {
			fmt.Println("Scan cancelled; showing completed categories.")
		}

		printResults(results)
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "list every scanned item")
}

func printResults(results []scan.Result) {
	var total int64
	for _, result := range results {
		info := catalog.InfoFor(result.Category)
		total += result.TotalSize
		fmt.Printf("%-22s %10s  %6d items", info.Name, humanize.Bytes(uint64(result.TotalSize)), result.ItemCount)
		if len(result.Skipped) > 0 {
			fmt.Printf("  (%d unreadable)", len(result.Skipped))
		}
		fmt.Println()
		if scanVerbose {
			for _, item := range result.Items {
				fmt.Printf("    %10s  %s\n", humanize.Bytes(uint64(item.Size)), item.Path)
			}
		}
	}
	fmt.Printf("\nTotal reclaimable: %s\n", humanize.Bytes(uint64(total)))
}
