package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// catalogCmd scrapes every catalog source and prints the records as JSON.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Scrape the hackathon catalog and print records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		sources, err := loadSources(cfg)
		if err != nil {
			return err
		}
		svc, err := buildScraper(cfg, sources)
		if err != nil {
			return err
		}
		records := svc.FetchCatalog(context.Background())
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
