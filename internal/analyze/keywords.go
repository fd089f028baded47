// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze computes research-landscape statistics over parsed
// articles: frequent keywords (hotspots), keyword frequency over time
// (trends), and publication volume over time. All operations are pure
// functions over in-memory data; the Engine adds file resolution and a
// structured error surface on top.
package analyze

import (
	"strings"
	"unicode"

	"github.com/pdiddy/litscope/pkg/types"
)

// defaultMinTokenLen is the minimum free-text token length counted as a
// keyword when the config does not override it.
const defaultMinTokenLen = 3

// defaultStopwords lists common English function words plus the section
// labels of structured abstracts. Overridable via AnalysisConfig so the
// list is a configuration surface, not a hidden constant.
var defaultStopwords = []string{
	"the", "and", "for", "are", "was", "were", "with", "that", "this",
	"these", "those", "from", "into", "have", "has", "had", "been", "being",
	"but", "not", "can", "could", "may", "might", "will", "would", "should",
	"shall", "must", "than", "then", "also", "both", "each", "such", "more",
	"most", "some", "any", "all", "other", "our", "their", "its", "his",
	"her", "they", "them", "which", "what", "when", "where", "while",
	"during", "between", "among", "after", "before", "about", "above",
	"below", "under", "over", "however", "therefore", "thus", "using",
	"used", "use", "based", "within", "without", "per", "via", "due",
	"background", "methods", "results", "conclusions", "conclusion",
	"objective", "objectives", "purpose", "study", "studies",
}

// extractor caches the resolved tokenization settings for one analysis run.
type extractor struct {
	minLen    int
	stopwords map[string]struct{}
}

func newExtractor(cfg types.AnalysisConfig) *extractor {
	minLen := cfg.MinTokenLen
	if minLen <= 0 {
		minLen = defaultMinTokenLen
	}

	words := cfg.Stopwords
	if len(words) == 0 {
		words = defaultStopwords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}

	return &extractor{minLen: minLen, stopwords: set}
}

// extract returns the multiset of normalized keywords for one article:
// free-text tokens from title and abstract, plus declared keywords
// lowercased verbatim. Repeats are preserved deliberately, so an article
// that mentions a term repeatedly contributes proportionally more weight
// to that term's global frequency.
func (e *extractor) extract(a types.Article) []string {
	text := strings.ToLower(a.Title + " " + a.Abstract)
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(tokens)+len(a.Keywords))
	for _, tok := range tokens {
		if len(tok) < e.minLen {
			continue
		}
		if _, stop := e.stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}

	// Declared keywords compete on equal footing with derived tokens.
	// They are normalized to lower case but never re-tokenized, so
	// multi-word subject terms stay whole.
	for _, kw := range a.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}

	return out
}

// ExtractKeywords derives the keyword multiset for a single article using
// the given configuration.
func ExtractKeywords(a types.Article, cfg types.AnalysisConfig) []string {
	return newExtractor(cfg).extract(a)
}
