// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litscope pipeline:
// parsed bibliographic records, analysis results, and stage configuration.
package types

import "time"

// Article is one parsed bibliographic record from a PubMed results export.
// Articles are created once by the parser and never mutated afterward.
type Article struct {
	// Title is the article title. May be empty for malformed records.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author names in source order. Duplicates are kept.
	Authors []string `json:"authors" yaml:"authors"`

	// Journal is the journal title, when present.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// PubDateRaw is the publication date exactly as it appears in the
	// export (e.g. "2023 Jan", "2023 Jan 15", "2023").
	PubDateRaw string `json:"publication_date" yaml:"publication_date"`

	// Date is the parsed publication date. A zero Date means the raw
	// string could not be resolved to at least a year; such articles are
	// excluded from date-bucketed analyses but still count for hotspots.
	Date time.Time `json:"-" yaml:"-"`

	// Abstract is the abstract text, when present.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords are the subject terms explicitly tagged in the source
	// record (MeSH descriptors and author keywords), as opposed to terms
	// derived from the title and abstract text.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// PMID is the PubMed identifier.
	PMID string `json:"pmid,omitempty" yaml:"pmid,omitempty"`

	// DOI is the bare DOI (no https://doi.org/ prefix).
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// HasDate reports whether the article carries a resolvable publication date.
func (a Article) HasDate() bool {
	return !a.Date.IsZero()
}
