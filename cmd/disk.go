package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tonicformac/deepclean/internal/metrics"
)

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Show capacity of the root and home volumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := []string{"/"}
		if home, err := os.UserHomeDir(); err == nil && home != "/" {
			paths = append(paths, home)
		}
		for _, path := range paths {
			usage, err := metrics.DiskUsage(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				continue
			}
			fmt.Printf("%-30s %10s total  %10s used  %10s free  %5.1f%%\n",
				usage.Path,
				humanize.Bytes(usage.Total),
				humanize.Bytes(usage.Used),
				humanize.Bytes(usage.Free),
				usage.UsedPercent)
		}
		return nil
	},
}
