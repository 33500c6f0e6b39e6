package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hackscout/internal/source"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// listingPage renders a catalog-style page with one ".item" per title.
// An empty title still renders the container so drop rules can be exercised.
func listingPage(titles ...string) string {
	page := "<html><body>"
	for i, title := range titles {
		page += fmt.Sprintf(`<div class="item"><span class="t">%s</span><span class="d">desc %d</span><a href="/e/%d">go</a></div>`, title, i, i)
	}
	return page + "</body></html>"
}

func testSource(id, listingURL string) source.Config {
	return source.Config{
		ID:         id,
		ListingURL: listingURL,
		Container:  ".item",
		Fields: map[string]source.Rule{
			source.FieldTitle:       {Selector: ".t", Kind: source.KindText},
			source.FieldDescription: {Selector: ".d", Kind: source.KindText},
			source.FieldLink:        {Selector: "a", Kind: source.KindLink},
		},
	}
}

// countingServer serves the same body on every request and counts hits.
func countingServer(t *testing.T, delay time.Duration, status int, body string) (*httptest.Server, *int64) {
	t.Helper()
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		if delay > 0 {
			time.Sleep(delay)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetchCatalogOrderDeterministic(t *testing.T) {
	// The first source responds slowly; catalog order must still win.
	slow, _ := countingServer(t, 80*time.Millisecond, http.StatusOK, listingPage("Alpha Hack"))
	fast, _ := countingServer(t, 0, http.StatusOK, listingPage("Beta Hack", "Gamma Hack"))

	svc := New(Options{
		Sources: []source.Config{testSource("slow.example", slow.URL), testSource("fast.example", fast.URL)},
	})
	records := svc.FetchCatalog(context.Background())
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	wantTitles := []string{"Alpha Hack", "Beta Hack", "Gamma Hack"}
	for i, w := range wantTitles {
		if records[i].Title != w {
			t.Errorf("record %d: title = %q, want %q", i, records[i].Title, w)
		}
	}
	if records[0].Source != "slow.example" || records[1].Source != "fast.example" {
		t.Errorf("unexpected source order: %q then %q", records[0].Source, records[1].Source)
	}
}

func TestFetchCatalogCachesWithinTTL(t *testing.T) {
	srvA, hitsA := countingServer(t, 0, http.StatusOK, listingPage("One"))
	srvB, hitsB := countingServer(t, 0, http.StatusOK, listingPage("Two"))
	clk := newFakeClock()

	svc := New(Options{
		Sources:  []source.Config{testSource("a", srvA.URL), testSource("b", srvB.URL)},
		CacheTTL: 5 * time.Minute,
		Now:      clk.Now,
	})

	first := svc.FetchCatalog(context.Background())
	if got := atomic.LoadInt64(hitsA) + atomic.LoadInt64(hitsB); got != 2 {
		t.Fatalf("cold call: expected 2 fetches, got %d", got)
	}

	clk.Advance(4 * time.Minute)
	second := svc.FetchCatalog(context.Background())
	if got := atomic.LoadInt64(hitsA) + atomic.LoadInt64(hitsB); got != 2 {
		t.Errorf("warm call performed network fetches: total hits %d", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached records differ from first call")
	}
}

func TestFetchCatalogRefetchesAfterTTL(t *testing.T) {
	srv, hits := countingServer(t, 0, http.StatusOK, listingPage("One"))
	clk := newFakeClock()

	svc := New(Options{
		Sources:  []source.Config{testSource("a", srv.URL)},
		CacheTTL: 5 * time.Minute,
		Now:      clk.Now,
	})

	svc.FetchCatalog(context.Background())
	clk.Advance(5 * time.Minute)
	svc.FetchCatalog(context.Background())
	if got := atomic.LoadInt64(hits); got != 2 {
		t.Errorf("expected re-fetch after TTL, got %d hits", got)
	}
}

func TestInvalidateCacheForcesRefetch(t *testing.T) {
	srv, hits := countingServer(t, 0, http.StatusOK, listingPage("One"))

	svc := New(Options{Sources: []source.Config{testSource("a", srv.URL)}})
	svc.FetchCatalog(context.Background())
	svc.InvalidateCache()
	svc.FetchCatalog(context.Background())
	if got := atomic.LoadInt64(hits); got != 2 {
		t.Errorf("expected cold fetch after invalidate, got %d hits", got)
	}
}

func TestCatalogDropsItemsWithoutTitle(t *testing.T) {
	srv, _ := countingServer(t, 0, http.StatusOK, listingPage("Kept", "", "Also Kept"))

	svc := New(Options{Sources: []source.Config{testSource("a", srv.URL)}})
	records := svc.FetchCatalog(context.Background())
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Kept" || records[1].Title != "Also Kept" {
		t.Errorf("unexpected titles: %q, %q", records[0].Title, records[1].Title)
	}
}

func TestCatalogSourceFailureDoesNotAbortOthers(t *testing.T) {
	broken, _ := countingServer(t, 0, http.StatusInternalServerError, "boom")
	healthy, _ := countingServer(t, 0, http.StatusOK, listingPage("Survivor"))

	svc := New(Options{
		Sources: []source.Config{testSource("broken", broken.URL), testSource("healthy", healthy.URL)},
	})
	records := svc.FetchCatalog(context.Background())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "Survivor" {
		t.Errorf("title = %q, want Survivor", records[0].Title)
	}
}

func TestFetchCustomDefaults(t *testing.T) {
	srv, _ := countingServer(t, 0, http.StatusOK, "<html><body><p>nothing useful</p></body></html>")

	svc := New(Options{})
	rec, err := svc.FetchCustom(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchCustom error: %v", err)
	}
	if rec.Title != "Unknown Title" {
		t.Errorf("title = %q, want Unknown Title", rec.Title)
	}
	if rec.Description != "No description available" {
		t.Errorf("description = %q", rec.Description)
	}
	if rec.Date != "Date not specified" {
		t.Errorf("date = %q", rec.Date)
	}
	if rec.Location != "Location not specified" {
		t.Errorf("location = %q", rec.Location)
	}
	if rec.Prize != "Prize information not available" {
		t.Errorf("prize = %q", rec.Prize)
	}
	if rec.Source != "Custom URL" {
		t.Errorf("source = %q, want Custom URL", rec.Source)
	}
}

func TestFetchCustomExtractsFields(t *testing.T) {
	page := `<html><body>
		<h1>Global AI Hack</h1>
		<div class="description">Build something.</div>
		<div class="event-date">June 1-3</div>
		<span class="location">Berlin</span>
		<span class="prize">$10k</span>
	</body></html>`
	srv, _ := countingServer(t, 0, http.StatusOK, page)

	svc := New(Options{})
	rec, err := svc.FetchCustom(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchCustom error: %v", err)
	}
	if rec.Title != "Global AI Hack" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Description != "Build something." {
		t.Errorf("description = %q", rec.Description)
	}
	if rec.Date != "June 1-3" {
		t.Errorf("date = %q", rec.Date)
	}
	if rec.Location != "Berlin" {
		t.Errorf("location = %q", rec.Location)
	}
	if rec.Prize != "$10k" {
		t.Errorf("prize = %q", rec.Prize)
	}
	if rec.Link != srv.URL {
		t.Errorf("link = %q, want %q", rec.Link, srv.URL)
	}
}

func TestFetchCustomSurfacesFetchError(t *testing.T) {
	srv, _ := countingServer(t, 0, http.StatusNotFound, "gone")

	svc := New(Options{})
	_, err := svc.FetchCustom(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fe.URL != srv.URL {
		t.Errorf("error URL = %q, want %q", fe.URL, srv.URL)
	}
}

func TestRelayFallbackOnTransportFailure(t *testing.T) {
	// A closed server yields a connection error, which should route the
	// single retry through the relay.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	var relayHits int64
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&relayHits, 1)
		if got := r.URL.Query().Get("url"); got != deadURL {
			t.Errorf("relay url param = %q, want %q", got, deadURL)
		}
		fmt.Fprint(w, "<html><body><h1>Relayed Hack</h1></body></html>")
	}))
	defer relay.Close()

	svc := New(Options{RelayURL: relay.URL})
	rec, err := svc.FetchCustom(context.Background(), deadURL)
	if err != nil {
		t.Fatalf("FetchCustom error: %v", err)
	}
	if rec.Title != "Relayed Hack" {
		t.Errorf("title = %q", rec.Title)
	}
	if atomic.LoadInt64(&relayHits) != 1 {
		t.Errorf("relay hits = %d, want 1", relayHits)
	}
}

func TestRelayNotUsedForOriginStatus(t *testing.T) {
	origin, _ := countingServer(t, 0, http.StatusForbidden, "nope")
	var relayHits int64
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&relayHits, 1)
	}))
	defer relay.Close()

	svc := New(Options{RelayURL: relay.URL})
	_, err := svc.FetchCustom(context.Background(), origin.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if atomic.LoadInt64(&relayHits) != 0 {
		t.Errorf("relay consulted for an origin status error: %d hits", relayHits)
	}
}
