package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/resolve"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List cleanup categories and their resolved roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := resolve.New()
		for _, cat := range catalog.Default() {
			info := catalog.InfoFor(cat.ID)
			roots := resolver.Roots(cat)
			fmt.Printf("%-14s %s\n", cat.ID, info.Name)
			if info.Description != "" {
				fmt.Printf("               %s\n", info.Description)
			}
			if len(roots) == 0 {
				fmt.Printf("               no roots present on this system\n")
			}
			for _, root := range roots {
				fmt.Printf("               %s\n", root)
			}
			fmt.Println()
		}
		return nil
	},
}
