package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// scrapeCmd scrapes a single custom URL with the generic fallback rules.
var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a single URL outside the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		svc, err := buildScraper(cfg, nil)
		if err != nil {
			return err
		}
		record, err := svc.FetchCustom(context.Background(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
