// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns PubMed results exports into structured articles.
//
// The text format (version 1, fixed contract with the exporter in
// internal/pubmed) is a sequence of record blocks:
//
//	Article 1
//	--------------------------------------------------------------------------------
//	Title: <one line, continuation lines allowed>
//	Authors: <comma-separated names, or N/A>
//	Journal: <journal title>
//	Publication Date: <e.g. "2023 Jan 15", "2023 Jan", "2023">
//	Abstract:
//	<abstract text, any number of lines>
//	Keywords: <comma-separated declared keywords>
//	PMID: <id>
//	DOI: https://doi.org/<doi>
//	================================================================================
//
// Unrecognized lines append to the most recently opened multi-line field
// (title or abstract), so wrapped titles and multi-paragraph abstracts
// survive. A block with neither title nor abstract is dropped with a
// warning rather than failing the whole parse. JSON exports of the same
// records ({"articles": [...]}) are handled by ParseJSON.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/litscope/pkg/types"
)

// Field labels of the version-1 text format, up to and including the colon.
const (
	labelTitle    = "Title:"
	labelAuthors  = "Authors:"
	labelJournal  = "Journal:"
	labelPubDate  = "Publication Date:"
	labelAbstract = "Abstract:"
	labelKeywords = "Keywords:"
	labelPMID     = "PMID:"
	labelDOI      = "DOI:"

	doiURLPrefix = "https://doi.org/"
)

// ParseFile reads a results file and returns its articles. Files ending
// in .json are decoded as JSON exports; everything else is parsed as the
// version-1 text format. Warnings for skipped blocks go to w. A file with
// no recognized blocks yields an empty slice, not an error: callers decide
// whether that is itself an error condition.
func ParseFile(path string, w io.Writer) ([]types.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(f)
	}
	return ParseText(f, w)
}

// blockState tracks one record block while its lines are consumed.
type blockState struct {
	article types.Article
	open    bool   // a block header has been seen
	section string // "title", "abstract", or ""
}

// applyField consumes one labeled field line, reporting whether the line
// carried a known label. Labels match up to the colon so fields with
// empty values survive: the exporter writes "Keywords: " for a record
// without subject terms, and line trimming leaves the bare "Keywords:"
// behind.
func (st *blockState) applyField(line string) bool {
	i := strings.Index(line, ":")
	if i < 0 {
		return false
	}
	value := strings.TrimSpace(line[i+1:])

	switch line[:i+1] {
	case labelTitle:
		st.article.Title = value
		st.section = "title"
	case labelAuthors:
		st.article.Authors = splitList(value)
		st.section = ""
	case labelJournal:
		st.article.Journal = value
		st.section = ""
	case labelPubDate:
		st.article.PubDateRaw = value
		st.section = ""
	case labelAbstract:
		st.article.Abstract = value
		st.section = "abstract"
	case labelKeywords:
		st.article.Keywords = splitList(value)
		st.section = ""
	case labelPMID:
		st.article.PMID = value
		st.section = ""
	case labelDOI:
		st.article.DOI = strings.TrimPrefix(value, doiURLPrefix)
		st.section = ""
	default:
		return false
	}
	return true
}

// ParseText parses the version-1 text format from r. Blocks that produce
// neither a title nor an abstract are skipped with a warning on w.
func ParseText(r io.Reader, w io.Writer) ([]types.Article, error) {
	var (
		articles []types.Article
		st       blockState
		prev     string
		skipped  int
	)

	flush := func() {
		if !st.open {
			return
		}
		a := st.article
		a.Title = strings.TrimSpace(a.Title)
		a.Abstract = strings.TrimSpace(a.Abstract)
		if a.Title == "" && a.Abstract == "" {
			skipped++
			fmt.Fprintf(w, "warning: skipping record %d: no title or abstract\n",
				len(articles)+skipped)
		} else {
			a.Date, _ = ParseDate(a.PubDateRaw)
			articles = append(articles, a)
		}
		st = blockState{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		// Separator line under an "Article N" header starts a new block.
		case strings.HasPrefix(line, "----------") && strings.HasPrefix(prev, "Article "):
			flush()
			st.open = true

		case !st.open:
			// Preamble before the first block header is ignored.

		case strings.HasPrefix(line, "===================="):
			st.section = ""

		case st.applyField(line):

		case line != "" && st.section == "abstract":
			if st.article.Abstract != "" {
				st.article.Abstract += " "
			}
			st.article.Abstract += line

		case line != "" && st.section == "title":
			st.article.Title += " " + line
		}

		prev = line
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	flush()

	return articles, nil
}

// splitList splits a comma-separated field into trimmed entries. The
// exporter writes "N/A" for absent author lists; that yields nil.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
