package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackscout/internal/redisclient"
	"hackscout/internal/storage"
	"hackscout/worker"

	"github.com/spf13/cobra"
)

// serveCmd runs the catalog collector: periodic scrapes persisted to redis.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog refresh worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		sources, err := loadSources(cfg)
		if err != nil {
			return err
		}
		svc, err := buildScraper(cfg, sources)
		if err != nil {
			return err
		}
		interval, err := time.ParseDuration(cfg.Scraper.FetchInterval)
		if err != nil {
			return fmt.Errorf("invalid scraper.fetch_interval: %w", err)
		}
		recordTTL, err := time.ParseDuration(cfg.Scraper.RecordTTL)
		if err != nil {
			return fmt.Errorf("invalid scraper.record_ttl: %w", err)
		}

		collector := &worker.CatalogCollector{
			Scraper:   svc,
			Store:     store,
			Sources:   sources,
			Interval:  interval,
			RecordTTL: recordTTL,
		}
		slog.Info("starting catalog collector", "sources", len(sources), "interval", interval)

		mgr := worker.NewManager(collector)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
