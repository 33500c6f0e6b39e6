package scraper

import (
	"net/url"
	"strings"
	"time"

	"hackscout/internal/model"
	"hackscout/internal/source"

	"github.com/PuerkitoBio/goquery"
)

// extractItems walks a listing page and builds one record per container match.
// Items whose title rule resolves to an empty string are dropped.
func extractItems(doc *goquery.Document, cfg source.Config, base *url.URL, now time.Time) []model.ScrapedRecord {
	var out []model.ScrapedRecord
	doc.Find(cfg.Container).Each(func(_ int, sel *goquery.Selection) {
		rec := model.ScrapedRecord{Source: cfg.ID, ScrapedAt: now}
		for field, rule := range cfg.Fields {
			setField(&rec, field, extractField(sel, rule, base))
		}
		if rec.Title == "" {
			return
		}
		out = append(out, rec)
	})
	return out
}

// extractField applies one rule to the first matching element under sel.
func extractField(sel *goquery.Selection, rule source.Rule, base *url.URL) string {
	found := sel.Find(rule.Selector).First()
	switch rule.Kind {
	case source.KindAttr:
		v, _ := found.Attr(rule.Attr)
		return strings.TrimSpace(v)
	case source.KindLink:
		attr := rule.Attr
		if attr == "" {
			attr = "href"
		}
		href, ok := found.Attr(attr)
		if !ok {
			return ""
		}
		return resolveURL(base, strings.TrimSpace(href))
	default:
		return strings.TrimSpace(found.Text())
	}
}

func setField(rec *model.ScrapedRecord, field, value string) {
	switch field {
	case source.FieldTitle:
		rec.Title = value
	case source.FieldDescription:
		rec.Description = value
	case source.FieldDate:
		rec.Date = value
	case source.FieldLocation:
		rec.Location = value
	case source.FieldPrize:
		rec.Prize = value
	case source.FieldLink:
		rec.Link = value
	}
}

func resolveURL(base *url.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() || base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// Generic fallback rules for pages outside the catalog. Each field takes the
// first match among a set of common tag/class patterns.
var customRules = []struct {
	field    string
	selector string
	fallback string
}{
	{source.FieldTitle, "h1, .title, .event-title, .hackathon-title", "Unknown Title"},
	{source.FieldDescription, ".description, .event-description, .hackathon-description", "No description available"},
	{source.FieldDate, ".date, .event-date, .hackathon-date", "Date not specified"},
	{source.FieldLocation, ".location, .event-location, .hackathon-location", "Location not specified"},
	{source.FieldPrize, ".prize, .prize-amount, .hackathon-prize", "Prize information not available"},
}

// extractCustom builds a single best-effort record from an arbitrary page.
// Unresolved fields keep their documented defaults; the title is never dropped.
func extractCustom(doc *goquery.Document, pageURL string, now time.Time) model.ScrapedRecord {
	rec := model.ScrapedRecord{
		Source:    "Custom URL",
		Link:      pageURL,
		ScrapedAt: now,
	}
	for _, r := range customRules {
		v := strings.TrimSpace(doc.Find(r.selector).First().Text())
		if v == "" {
			v = r.fallback
		}
		setField(&rec, r.field, v)
	}
	return rec
}
