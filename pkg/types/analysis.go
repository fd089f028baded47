// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// KeywordCount pairs a normalized keyword with its aggregate frequency.
// Slices of KeywordCount are ordered by count descending, ties broken by
// first occurrence in the analyzed article sequence.
type KeywordCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// TimeBucket is a fixed-width, contiguous window of calendar months.
// Start and End are the inclusive boundary days of the window.
type TimeBucket struct {
	// Period labels the bucket: "2023-01" for single-month windows,
	// "2023-01/2023-03" (ISO interval style) for wider ones.
	Period string    `json:"period" yaml:"period"`
	Start  time.Time `json:"start" yaml:"start"`
	End    time.Time `json:"end" yaml:"end"`
}

// TrendPoint is one (period, count) sample of a keyword's trajectory.
type TrendPoint struct {
	Period string `json:"period" yaml:"period"`
	Count  int    `json:"count" yaml:"count"`
}

// TrendSeries is the per-month frequency trajectory of a single keyword.
// Points is dense: it carries exactly one entry per month bucket in the
// analyzed date range, zero-filled for months where the term is absent.
type TrendSeries struct {
	Term   string       `json:"term" yaml:"term"`
	Points []TrendPoint `json:"points" yaml:"points"`
}

// PublicationBucket counts articles published inside one time bucket.
type PublicationBucket struct {
	TimeBucket `yaml:",inline"`
	Count      int `json:"count" yaml:"count"`
}

// DateRange is the inclusive span of valid publication dates in an
// article set.
type DateRange struct {
	Earliest time.Time `json:"earliest" yaml:"earliest"`
	Latest   time.Time `json:"latest" yaml:"latest"`
}

// Report is the composite output of a comprehensive analysis run: the
// three aggregations over one parsed article set plus summary statistics.
type Report struct {
	// File is the base name of the analyzed results file.
	File string `json:"file_analyzed" yaml:"file_analyzed"`

	// GeneratedAt records when the analysis ran.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// TotalArticles is the number of parsed articles.
	TotalArticles int `json:"article_count" yaml:"article_count"`

	// ExcludedNoDate is the number of articles left out of date-bucketed
	// analyses because their publication date could not be resolved.
	ExcludedNoDate int `json:"excluded_no_date" yaml:"excluded_no_date"`

	// DateRange spans the valid publication dates. Nil when no article
	// has a resolvable date.
	DateRange *DateRange `json:"date_range,omitempty" yaml:"date_range,omitempty"`

	// MonthsPerPeriod is the publication-count bucket width used.
	MonthsPerPeriod int `json:"months_per_period" yaml:"months_per_period"`

	Hotspots          []KeywordCount      `json:"hotspots" yaml:"hotspots"`
	Trends            []TrendSeries       `json:"trends" yaml:"trends"`
	PublicationCounts []PublicationBucket `json:"publication_counts" yaml:"publication_counts"`
}
