// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"fmt"
	"time"

	"github.com/pdiddy/litscope/pkg/types"
)

// monthIndex maps a date to a linear month count so bucket arithmetic is
// plain integer math.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// monthStart returns the first day of the month at linear index idx, UTC.
func monthStart(idx int) time.Time {
	return time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, time.UTC)
}

// monthLabel formats a month as "2006-01".
func monthLabel(idx int) string {
	return fmt.Sprintf("%04d-%02d", idx/12, idx%12+1)
}

// makeBucket builds the TimeBucket covering months [startIdx, startIdx+width).
// Single-month buckets are labeled "2023-01"; wider ones use the ISO
// interval style "2023-01/2023-03". Start and End are the inclusive
// boundary days.
func makeBucket(startIdx, width int) types.TimeBucket {
	endIdx := startIdx + width - 1
	label := monthLabel(startIdx)
	if width > 1 {
		label += "/" + monthLabel(endIdx)
	}
	return types.TimeBucket{
		Period: label,
		Start:  monthStart(startIdx),
		End:    monthStart(endIdx + 1).AddDate(0, 0, -1),
	}
}

// datedSpan returns the articles with a resolvable publication date and
// the linear month indices of the earliest and latest dates. ok is false
// when no article carries a valid date.
func datedSpan(articles []types.Article) (dated []types.Article, first, last int, ok bool) {
	for _, a := range articles {
		if !a.HasDate() {
			continue
		}
		idx := monthIndex(a.Date)
		if len(dated) == 0 {
			first, last = idx, idx
		} else {
			if idx < first {
				first = idx
			}
			if idx > last {
				last = idx
			}
		}
		dated = append(dated, a)
	}
	return dated, first, last, len(dated) > 0
}
