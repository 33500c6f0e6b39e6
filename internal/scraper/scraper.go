// Package scraper implements the content retrieval service: catalog scraping
// with a per-source TTL cache, and best-effort scraping of arbitrary URLs.
package scraper

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"hackscout/internal/model"
	"hackscout/internal/source"

	"github.com/PuerkitoBio/goquery"
)

// Options configures a Service.
type Options struct {
	Sources      []source.Config
	UserAgent    string
	Timeout      time.Duration // direct fetch
	RelayTimeout time.Duration // fetch through the relay
	RelayURL     string        // empty disables the relay hop
	CacheTTL     time.Duration
	Now          func() time.Time // test hook; defaults to time.Now
}

// Service scrapes hackathon listings. Catalog results are cached per source;
// custom URLs are never cached.
type Service struct {
	sources []source.Config
	fetcher *fetcher
	cache   *recordCache
	now     func() time.Time
}

func New(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		sources: opts.Sources,
		fetcher: newFetcher(opts.UserAgent, opts.RelayURL, opts.Timeout, opts.RelayTimeout),
		cache:   newRecordCache(opts.CacheTTL, now),
		now:     now,
	}
}

// FetchCatalog scrapes every catalog source and returns the concatenation of
// their records in catalog declaration order. Cached sources skip the network;
// uncached sources are fetched concurrently. A failing source contributes zero
// records and never fails the call.
func (s *Service) FetchCatalog(ctx context.Context) []model.ScrapedRecord {
	slots := make([][]model.ScrapedRecord, len(s.sources))
	var wg sync.WaitGroup

	for i, src := range s.sources {
		if records, ok := s.cache.get(src.ID); ok {
			slots[i] = records
			continue
		}
		wg.Add(1)
		go func(i int, src source.Config) {
			defer wg.Done()
			records := s.fetchSource(ctx, src)
			s.cache.put(src.ID, records)
			slots[i] = records
		}(i, src)
	}
	wg.Wait()

	var out []model.ScrapedRecord
	for _, records := range slots {
		out = append(out, records...)
	}
	return out
}

func (s *Service) fetchSource(ctx context.Context, src source.Config) []model.ScrapedRecord {
	body, err := s.fetcher.get(ctx, src.ListingURL)
	if err != nil {
		slog.Error("scraper: source fetch error", "source", src.ID, "error", err)
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		slog.Error("scraper: source parse error", "source", src.ID, "error", err)
		return nil
	}
	base, err := url.Parse(src.ListingURL)
	if err != nil {
		base = nil
	}
	records := extractItems(doc, src, base, s.now())
	slog.Info("scraper: source scraped", "source", src.ID, "records", len(records))
	return records
}

// FetchCustom scrapes a single caller-supplied URL with the generic fallback
// rules. Unlike the catalog path, fetch and parse failures are surfaced as
// *FetchError and *ParseError respectively.
func (s *Service) FetchCustom(ctx context.Context, pageURL string) (model.ScrapedRecord, error) {
	body, err := s.fetcher.get(ctx, pageURL)
	if err != nil {
		return model.ScrapedRecord{}, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return model.ScrapedRecord{}, &ParseError{URL: pageURL, Err: err}
	}
	return extractCustom(doc, pageURL, s.now()), nil
}

// InvalidateCache drops all cached records; the next FetchCatalog re-fetches
// every source.
func (s *Service) InvalidateCache() {
	s.cache.clear()
}
