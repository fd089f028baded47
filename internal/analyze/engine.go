// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/litscope/internal/parse"
	"github.com/pdiddy/litscope/internal/results"
	"github.com/pdiddy/litscope/pkg/types"
)

// Engine resolves result files against a configured directory and exposes
// the analysis operations behind a structured success-or-error contract.
// The resolved directory is explicit state passed in at construction, not
// a shared global, so the engine is testable without filesystem setup
// beyond its own directory. Engines hold no mutable state: every call
// re-parses its input, so concurrent invocations are independent and
// idempotent given identical input.
type Engine struct {
	resultsDir string
	cfg        types.AnalysisConfig
	warn       io.Writer
}

// NewEngine returns an engine rooted at resultsDir. Parser warnings are
// written to warn; io.Discard silences them.
func NewEngine(resultsDir string, cfg types.AnalysisConfig, warn io.Writer) *Engine {
	if warn == nil {
		warn = io.Discard
	}
	return &Engine{resultsDir: resultsDir, cfg: cfg, warn: warn}
}

// LoadArticles resolves name inside the results directory and parses it.
// Bare names resolve against the configured directory; absolute paths and
// paths with separators are used as-is. A missing file yields a not-found
// error carrying the attempted path and the available alternatives; a file
// that cannot be decoded yields a parse-failure error; a well-formed file
// with zero valid records yields an empty-result error.
func (e *Engine) LoadArticles(name string) ([]types.Article, error) {
	path := name
	if !filepath.IsAbs(name) && filepath.Dir(name) == "." {
		path = filepath.Join(e.resultsDir, name)
	}

	if _, err := os.Stat(path); err != nil {
		available, _ := results.ListFiles(e.resultsDir)
		return nil, notFoundErr(path, available)
	}

	articles, err := parse.ParseFile(path, e.warn)
	if err != nil {
		return nil, parseFailureErr(path, err)
	}
	if len(articles) == 0 {
		return nil, emptyResultErr(path)
	}
	return articles, nil
}

// AnalyzeHotspots returns the topN most frequent keywords across the
// article set. topN <= 0 returns the full ranking.
func (e *Engine) AnalyzeHotspots(articles []types.Article, topN int) []types.KeywordCount {
	return RankHotspots(articles, topN, e.cfg)
}

// AnalyzeTrends returns a dense monthly frequency series for each of the
// topN keywords, computed over dated articles only.
func (e *Engine) AnalyzeTrends(articles []types.Article, topN int) []types.TrendSeries {
	return BuildTrends(articles, topN, e.cfg)
}

// AnalyzePublicationCounts buckets dated articles into windows of
// monthsPerPeriod calendar months.
func (e *Engine) AnalyzePublicationCounts(articles []types.Article, monthsPerPeriod int) ([]types.PublicationBucket, error) {
	return CountPublications(articles, monthsPerPeriod)
}

// ComprehensiveAnalysis parses the named results file and composes the
// full report. Parameters are validated before any file I/O so an invalid
// request never touches the filesystem.
func (e *Engine) ComprehensiveAnalysis(name string, topKeywords, trendKeywords, monthsPerPeriod int) (*types.Report, error) {
	if monthsPerPeriod < 1 {
		return nil, invalidParamErr("months_per_period must be >= 1, got %d", monthsPerPeriod)
	}

	articles, err := e.LoadArticles(name)
	if err != nil {
		return nil, err
	}

	report, err := ComposeReport(articles, topKeywords, trendKeywords, monthsPerPeriod, e.cfg)
	if err != nil {
		return nil, err
	}
	report.File = filepath.Base(name)
	return report, nil
}
