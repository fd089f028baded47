// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"github.com/pdiddy/litscope/pkg/types"
)

// CountPublications buckets articles by publication date into contiguous
// windows of exactly monthsPerPeriod calendar months, starting from the
// month of the earliest valid date. Every dated article increments exactly
// one bucket; empty buckets are still emitted so the series plots without
// caller-side gap filling. monthsPerPeriod below 1 is rejected with a
// validation error before any work.
func CountPublications(articles []types.Article, monthsPerPeriod int) ([]types.PublicationBucket, error) {
	if monthsPerPeriod < 1 {
		return nil, invalidParamErr("months_per_period must be >= 1, got %d", monthsPerPeriod)
	}

	dated, first, last, ok := datedSpan(articles)
	if !ok {
		return []types.PublicationBucket{}, nil
	}

	periods := (last-first)/monthsPerPeriod + 1
	buckets := make([]types.PublicationBucket, periods)
	for i := range buckets {
		buckets[i] = types.PublicationBucket{
			TimeBucket: makeBucket(first+i*monthsPerPeriod, monthsPerPeriod),
		}
	}

	for _, a := range dated {
		buckets[(monthIndex(a.Date)-first)/monthsPerPeriod].Count++
	}
	return buckets, nil
}
