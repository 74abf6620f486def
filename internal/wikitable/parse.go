// Package wikitable turns the travel tables of a wiki page into the same
// normalized input shape the URL parameter path produces. Parsing is a best
// effort accumulator: rows that yield no location contribute nothing, bad
// dates are kept with an empty date, and nothing here ever returns an error
// for malformed cell content.
package wikitable

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"travelmap/internal/extract"
	"travelmap/internal/regions"
)

// Trip is one parsed travel event. Date is an ISO-8601 day or empty when the
// cell did not parse; callers filtering by date must treat empty defensively.
type Trip struct {
	Date         string            `json:"date,omitempty"`
	LocationText string            `json:"locationText"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

// Row is the parser's view of one table row: ordered cell texts plus the
// flags the DOM walk already resolved.
type Row struct {
	Cells    []string
	Excluded bool
	Header   bool
}

// Accumulation collects trips per region across all parsed tables. Province
// trips always land in their own buckets and are never merged into states.
type Accumulation struct {
	WorkStates        map[string][]Trip
	WorkProvinces     map[string][]Trip
	PersonalStates    map[string][]Trip
	PersonalProvinces map[string][]Trip

	// Insertion order per bucket, so downstream output is deterministic.
	workStateOrder    []string
	workProvOrder     []string
	persStateOrder    []string
	persProvOrder     []string
}

func NewAccumulation() *Accumulation {
	return &Accumulation{
		WorkStates:        make(map[string][]Trip),
		WorkProvinces:     make(map[string][]Trip),
		PersonalStates:    make(map[string][]Trip),
		PersonalProvinces: make(map[string][]Trip),
	}
}

// Parse scrapes every recognized table out of raw HTML. The only error is a
// document that does not parse at all.
func Parse(rawHTML string) (*Accumulation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	acc := NewAccumulation()
	for _, ts := range tableSelectors {
		doc.Find(ts.selector).Each(func(_ int, table *goquery.Selection) {
			acc.AddRows(collectRows(table), ts.kind)
		})
	}
	return acc, nil
}

// collectRows flattens a table selection into Row records.
func collectRows(table *goquery.Selection) []Row {
	var rows []Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row := Row{
			Excluded: tr.HasClass(excludeClass),
			Header:   tr.Find("th").Length() > 0,
		}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row.Cells = append(row.Cells, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, row)
	})
	return rows
}

// AddRows runs the schema for one table kind over a row sequence. This is the
// pure core of the parser; the goquery walk above only feeds it.
func (a *Accumulation) AddRows(rows []Row, kind TableKind) {
	schema, ok := schemas[kind]
	if !ok {
		return
	}
	for _, row := range rows {
		if row.Excluded || row.Header || len(row.Cells) < schema.MinColumns {
			continue
		}

		locCol := schema.LocationColumn
		if locCol < 0 {
			locCol = len(row.Cells) - 1
		}
		locationText := row.Cells[locCol]

		var matches []extract.Match
		if schema.MultiLocation {
			matches = extract.All(locationText)
		} else if m := extract.One(locationText); m != nil {
			matches = []extract.Match{*m}
		}
		if len(matches) == 0 {
			continue
		}

		trip := Trip{
			Date:         parseDate(cellAt(row.Cells, schema.DateColumn)),
			LocationText: locationText,
			Attributes:   rowAttributes(row.Cells, kind),
		}
		for _, m := range matches {
			a.add(schema.Collection, m, trip)
		}
	}
}

func (a *Accumulation) add(col Collection, m extract.Match, trip Trip) {
	var bucket map[string][]Trip
	var order *[]string
	switch {
	case col == WorkTravel && m.Kind == regions.Province:
		bucket, order = a.WorkProvinces, &a.workProvOrder
	case col == WorkTravel:
		bucket, order = a.WorkStates, &a.workStateOrder
	case m.Kind == regions.Province:
		bucket, order = a.PersonalProvinces, &a.persProvOrder
	default:
		bucket, order = a.PersonalStates, &a.persStateOrder
	}
	if _, seen := bucket[m.Code]; !seen {
		*order = append(*order, m.Code)
	}
	bucket[m.Code] = append(bucket[m.Code], trip)
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// Accepted date layouts, tried in order. The wiki is hand edited so a couple
// of human formats show up alongside ISO days.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseDate(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	// Date ranges like "2025-02-15 - 2025-02-18" keep the start day.
	if start, _, ok := strings.Cut(cell, " - "); ok {
		cell = strings.TrimSpace(start)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func rowAttributes(cells []string, kind TableKind) map[string]string {
	attrs := make(map[string]string)
	switch kind {
	case GoLive, Immersion:
		if v := cellAt(cells, 1); v != "" {
			attrs["customer"] = v
		}
		if v := cellAt(cells, 2); v != "" {
			attrs["type"] = v
		}
	case AdHoc:
		if v := cellAt(cells, 0); v != "" {
			attrs["customer"] = v
		}
		if v := cellAt(cells, 1); v != "" {
			attrs["type"] = v
		}
	case Personal:
		if v := cellAt(cells, 0); v != "" {
			attrs["destination"] = v
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
