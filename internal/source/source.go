// Package source defines the catalog of known hackathon listing sites and the
// per-field extraction rules the scraper applies to them.
package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects how a matched element is turned into a field value.
type Kind string

const (
	// KindText takes the element's trimmed text content.
	KindText Kind = "text"
	// KindAttr takes a named attribute verbatim.
	KindAttr Kind = "attr"
	// KindLink takes an href-like attribute and resolves it to an absolute URL
	// against the page's base URL.
	KindLink Kind = "link"
)

// Rule is one field extraction rule: a CSS selector plus how to read the match.
type Rule struct {
	Selector string `yaml:"selector"`
	Kind     Kind   `yaml:"kind"`
	Attr     string `yaml:"attr"` // for KindAttr/KindLink; defaults to href for links
}

// Config describes one catalog source. The Container selector matches each
// repeated listing item on the page. Immutable after startup.
type Config struct {
	ID         string          `yaml:"id"`
	ListingURL string          `yaml:"listing_url"`
	Container  string          `yaml:"container"`
	Fields     map[string]Rule `yaml:"fields"`
}

// Field names recognized by the extraction rules.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldLocation    = "location"
	FieldPrize       = "prize"
	FieldLink        = "link"
)

// Validate checks the invariants every catalog source must hold.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("source: missing id")
	}
	if strings.TrimSpace(c.ListingURL) == "" {
		return fmt.Errorf("source %s: missing listing_url", c.ID)
	}
	if strings.TrimSpace(c.Container) == "" {
		return fmt.Errorf("source %s: missing container selector", c.ID)
	}
	r, ok := c.Fields[FieldTitle]
	if !ok || strings.TrimSpace(r.Selector) == "" {
		return fmt.Errorf("source %s: missing title rule", c.ID)
	}
	return nil
}

// Catalog returns the built-in sources in declaration order.
func Catalog() []Config {
	return []Config{
		{
			ID:         "devpost.com",
			ListingURL: "https://devpost.com/hackathons",
			Container:  ".challenge-listing",
			Fields: map[string]Rule{
				FieldTitle:       {Selector: ".challenge-title", Kind: KindText},
				FieldDescription: {Selector: ".challenge-description", Kind: KindText},
				FieldDate:        {Selector: ".submission-period", Kind: KindText},
				FieldPrize:       {Selector: ".prize-amount", Kind: KindText},
				FieldLink:        {Selector: "a", Kind: KindLink},
			},
		},
		{
			ID:         "mlh.io",
			ListingURL: "https://mlh.io/seasons/2024/events",
			Container:  ".event",
			Fields: map[string]Rule{
				FieldTitle:       {Selector: ".event-name", Kind: KindText},
				FieldDescription: {Selector: ".event-description", Kind: KindText},
				FieldDate:        {Selector: ".event-date", Kind: KindText},
				FieldLocation:    {Selector: ".event-location", Kind: KindText},
				FieldLink:        {Selector: "a", Kind: KindLink},
			},
		},
		{
			ID:         "hackathon.com",
			ListingURL: "https://www.hackathon.com/events",
			Container:  ".event-card",
			Fields: map[string]Rule{
				FieldTitle:       {Selector: ".event-title", Kind: KindText},
				FieldDescription: {Selector: ".event-description", Kind: KindText},
				FieldDate:        {Selector: ".event-date", Kind: KindText},
				FieldLocation:    {Selector: ".event-location", Kind: KindText},
				FieldLink:        {Selector: "a", Kind: KindLink},
			},
		},
	}
}

// LoadExtra reads additional sources from a YAML file and validates them.
// Extras are appended after the built-in catalog in file order.
func LoadExtra(path string) ([]Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var extra []Config
	if err := yaml.Unmarshal(b, &extra); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	for _, c := range extra {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return extra, nil
}
