// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"github.com/pdiddy/litscope/pkg/types"
)

// BuildTrends computes the per-month frequency trajectory of the topN
// keywords. Only articles with a resolvable publication date participate:
// keyword ranking, the bucket range, and the counts all come from the
// dated subset, and undated articles are excluded entirely rather than
// collected in an "unknown" bucket. Buckets are always one calendar month
// wide (coarser aggregation is the publication counter's concern) and
// every returned series is dense across the full range, zero-filled where
// a term does not appear.
func BuildTrends(articles []types.Article, topN int, cfg types.AnalysisConfig) []types.TrendSeries {
	dated, first, last, ok := datedSpan(articles)
	if !ok {
		return nil
	}

	top := RankHotspots(dated, topN, cfg)
	if len(top) == 0 {
		return nil
	}

	topSet := make(map[string]bool, len(top))
	for _, kc := range top {
		topSet[kc.Term] = true
	}

	// perMonth[term][monthIdx - first] = occurrences.
	months := last - first + 1
	perMonth := make(map[string][]int, len(top))
	for _, kc := range top {
		perMonth[kc.Term] = make([]int, months)
	}

	ex := newExtractor(cfg)
	for _, a := range dated {
		slot := monthIndex(a.Date) - first
		for _, kw := range ex.extract(a) {
			if topSet[kw] {
				perMonth[kw][slot]++
			}
		}
	}

	series := make([]types.TrendSeries, 0, len(top))
	for _, kc := range top {
		s := types.TrendSeries{
			Term:   kc.Term,
			Points: make([]types.TrendPoint, months),
		}
		for i := 0; i < months; i++ {
			s.Points[i] = types.TrendPoint{
				Period: monthLabel(first + i),
				Count:  perMonth[kc.Term][i],
			}
		}
		series = append(series, s)
	}
	return series
}
