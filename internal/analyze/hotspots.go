// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"

	"github.com/pdiddy/litscope/pkg/types"
)

// RankHotspots aggregates keyword frequencies across articles and returns
// the topN most frequent terms, ordered by count descending. Ties break by
// first occurrence across the input sequence, never alphabetically, so
// output is reproducible from input order alone. topN <= 0 means no limit.
func RankHotspots(articles []types.Article, topN int, cfg types.AnalysisConfig) []types.KeywordCount {
	ex := newExtractor(cfg)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, a := range articles {
		for _, kw := range ex.extract(a) {
			if _, ok := counts[kw]; !ok {
				firstSeen[kw] = order
				order++
			}
			counts[kw]++
		}
	}

	ranked := make([]types.KeywordCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, types.KeywordCount{Term: term, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Term] < firstSeen[ranked[j].Term]
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
