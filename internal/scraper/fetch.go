package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// fetcher retrieves raw page markup. A direct GET is attempted first; if it
// fails for a transport-level reason and a relay is configured, exactly one
// retry goes through the relay. Origin 4xx/5xx responses are final.
type fetcher struct {
	client      *http.Client
	relayClient *http.Client
	relayURL    string
	userAgent   string
}

func newFetcher(userAgent, relayURL string, timeout, relayTimeout time.Duration) *fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if relayTimeout <= 0 {
		relayTimeout = 15 * time.Second
	}
	return &fetcher{
		client:      &http.Client{Timeout: timeout},
		relayClient: &http.Client{Timeout: relayTimeout},
		relayURL:    relayURL,
		userAgent:   userAgent,
	}
}

// get returns the page body. Every failure is a *FetchError.
func (f *fetcher) get(ctx context.Context, pageURL string) ([]byte, error) {
	body, status, err := f.do(ctx, f.client, pageURL)
	if err == nil && status >= 200 && status < 300 {
		return body, nil
	}
	if err == nil {
		// Origin answered; do not mask its status with a relay hop.
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("status %d", status)}
	}
	if f.relayURL == "" {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	slog.Info("scraper: direct fetch failed, trying relay", "url", pageURL, "error", err)
	relayed := f.relayURL + "?url=" + url.QueryEscape(pageURL)
	body, status, err = f.do(ctx, f.relayClient, relayed)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("relay status %d", status)}
	}
	return body, nil
}

func (f *fetcher) do(ctx context.Context, client *http.Client, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
