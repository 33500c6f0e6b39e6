package cmd

import (
	"fmt"

	"hackscout/internal/source"

	"github.com/spf13/cobra"
)

// sitesCmd lists well-known hackathon directories.
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List popular hackathon sites",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range source.PopularSites() {
			fmt.Printf("%s\n  %s\n  %s\n", s.Name, s.URL, s.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}
