package model

import "time"

// ScrapedRecord is one hackathon listing extracted from a page.
// Title is the only required field; extraction drops catalog items without one.
type ScrapedRecord struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"`
	Location    string    `json:"location,omitempty"`
	Prize       string    `json:"prize,omitempty"`
	Link        string    `json:"link,omitempty"`
	Source      string    `json:"source"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// Site describes a well-known hackathon listing site.
type Site struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
