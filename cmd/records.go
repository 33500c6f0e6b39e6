package cmd

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"hackscout/internal/model"
	"hackscout/internal/redisclient"
	"hackscout/internal/storage"

	"github.com/spf13/cobra"
)

// recordsCmd prints the snapshots persisted by the serve worker.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Print scraped records persisted in redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		sources, err := loadSources(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		type snapshot struct {
			Source    string                `json:"source"`
			Refreshed time.Time             `json:"refreshed,omitempty"`
			Records   []model.ScrapedRecord `json:"records"`
		}
		var out []snapshot
		for _, src := range sources {
			records, err := store.Records(ctx, src.ID)
			if err != nil {
				return err
			}
			refreshed, err := store.LastRefreshed(ctx, src.ID)
			if err != nil {
				return err
			}
			out = append(out, snapshot{Source: src.ID, Refreshed: refreshed, Records: records})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
