package worker

import (
	"context"
	"log/slog"
	"time"

	"hackscout/internal/model"
	"hackscout/internal/scraper"
	"hackscout/internal/source"
	"hackscout/internal/storage"
)

// CatalogCollector periodically scrapes the catalog and persists each
// source's snapshot to redis.
type CatalogCollector struct {
	Scraper   *scraper.Service
	Store     *storage.RedisStore
	Sources   []source.Config
	Interval  time.Duration
	RecordTTL time.Duration
}

func (w *CatalogCollector) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 30 * time.Minute
	}
	if w.RecordTTL <= 0 {
		w.RecordTTL = 24 * time.Hour
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *CatalogCollector) runOnce(ctx context.Context) {
	records := w.Scraper.FetchCatalog(ctx)

	counts := make(map[string]int, len(w.Sources))
	for _, src := range w.Sources {
		var part []model.ScrapedRecord
		for _, r := range records {
			if r.Source == src.ID {
				part = append(part, r)
			}
		}
		counts[src.ID] = len(part)
		if err := w.Store.SaveRecords(ctx, src.ID, part, w.RecordTTL); err != nil {
			slog.Error("catalog-collector: store error", "source", src.ID, "error", err)
		}
	}
	slog.Info("catalog-collector: refresh completed", "total", len(records), "counts", counts)
}
