// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"time"

	"github.com/pdiddy/litscope/pkg/types"
)

// ComposeReport runs the three aggregators over one parsed article set and
// merges their outputs with summary statistics: total article count, the
// number excluded from date-based analyses, and the overall date range.
// Any aggregator failure short-circuits the whole composition; partial
// reports are never returned.
func ComposeReport(articles []types.Article, topKeywords, trendKeywords, monthsPerPeriod int, cfg types.AnalysisConfig) (*types.Report, error) {
	pubCounts, err := CountPublications(articles, monthsPerPeriod)
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		GeneratedAt:       time.Now().UTC(),
		TotalArticles:     len(articles),
		MonthsPerPeriod:   monthsPerPeriod,
		Hotspots:          RankHotspots(articles, topKeywords, cfg),
		Trends:            BuildTrends(articles, trendKeywords, cfg),
		PublicationCounts: pubCounts,
	}

	var earliest, latest time.Time
	for _, a := range articles {
		if !a.HasDate() {
			report.ExcludedNoDate++
			continue
		}
		if earliest.IsZero() || a.Date.Before(earliest) {
			earliest = a.Date
		}
		if latest.IsZero() || a.Date.After(latest) {
			latest = a.Date
		}
	}
	if !earliest.IsZero() {
		report.DateRange = &types.DateRange{Earliest: earliest, Latest: latest}
	}

	return report, nil
}
