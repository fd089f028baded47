// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"testing"
	"time"

	"github.com/pdiddy/litscope/pkg/types"
)

func TestCountPublicationsMonthly(t *testing.T) {
	articles := []types.Article{
		datedArticle(time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)),
		datedArticle(time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)),
		datedArticle(time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)),
	}

	buckets, err := CountPublications(articles, 1)
	if err != nil {
		t.Fatalf("CountPublications: %v", err)
	}

	wantPeriods := []string{"2023-01", "2023-02", "2023-03"}
	wantCounts := []int{2, 0, 1}
	if len(buckets) != len(wantPeriods) {
		t.Fatalf("len(buckets) = %d, want %d", len(buckets), len(wantPeriods))
	}
	for i, b := range buckets {
		if b.Period != wantPeriods[i] {
			t.Errorf("buckets[%d].Period = %q, want %q", i, b.Period, wantPeriods[i])
		}
		if b.Count != wantCounts[i] {
			t.Errorf("buckets[%d].Count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}
}

func TestCountPublicationsQuarterly(t *testing.T) {
	articles := []types.Article{
		datedArticle(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		datedArticle(time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)),
		datedArticle(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	buckets, err := CountPublications(articles, 3)
	if err != nil {
		t.Fatalf("CountPublications: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("len(buckets) = %d, want 2", len(buckets))
	}

	first := buckets[0]
	if first.Period != "2023-01/2023-03" {
		t.Errorf("Period = %q, want 2023-01/2023-03", first.Period)
	}
	if want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC); !first.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", first.Start, want)
	}
	if want := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC); !first.End.Equal(want) {
		t.Errorf("End = %v, want %v", first.End, want)
	}
	if first.Count != 2 {
		t.Errorf("first.Count = %d, want 2", first.Count)
	}
	if buckets[1].Count != 1 {
		t.Errorf("second.Count = %d, want 1", buckets[1].Count)
	}
}

func TestCountPublicationsEveryDatedArticleCounted(t *testing.T) {
	var articles []types.Article
	for m := time.Month(1); m <= 12; m++ {
		articles = append(articles, datedArticle(time.Date(2023, m, 15, 0, 0, 0, 0, time.UTC)))
	}
	articles = append(articles, types.Article{Title: "undated"})

	for _, width := range []int{1, 2, 3, 5, 12, 24} {
		buckets, err := CountPublications(articles, width)
		if err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		if total != 12 {
			t.Errorf("width %d: counted %d dated articles, want 12", width, total)
		}
	}
}

func TestCountPublicationsInvalidWindow(t *testing.T) {
	for _, mpp := range []int{0, -1, -12} {
		_, err := CountPublications(nil, mpp)
		if !IsCode(err, CodeInvalidParameter) {
			t.Errorf("months_per_period=%d: err = %v, want invalid_parameter", mpp, err)
		}
	}
}

func TestCountPublicationsNoDatedArticles(t *testing.T) {
	articles := []types.Article{{Title: "undated one"}, {Title: "undated two"}}
	buckets, err := CountPublications(articles, 3)
	if err != nil {
		t.Fatalf("CountPublications: %v", err)
	}
	if len(buckets) != 0 {
		t.Errorf("buckets = %v, want empty", buckets)
	}
}
