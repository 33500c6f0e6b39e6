package scraper

import "fmt"

// FetchError reports that a page could not be retrieved: network failure,
// timeout, or a non-2xx status from the origin.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports that a retrieved page could not be loaded as markup.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.URL, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }
