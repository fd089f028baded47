// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/litscope/pkg/types"
)

// The text export format (version 1) is the fixed contract shared with
// internal/parse. Changing any label or delimiter here is a format
// version bump and must be mirrored in the parser.
const (
	blockRule  = 80
	naAuthors  = "N/A"
	doiURLBase = "https://doi.org/"
)

// ExportText writes articles to w in the version-1 text format.
func ExportText(w io.Writer, articles []types.Article) error {
	for i, a := range articles {
		authors := naAuthors
		if len(a.Authors) > 0 {
			authors = strings.Join(a.Authors, ", ")
		}

		_, err := fmt.Fprintf(w, "Article %d\n%s\nTitle: %s\nAuthors: %s\nJournal: %s\nPublication Date: %s\nAbstract:\n%s\nKeywords: %s\nPMID: %s\nDOI: %s%s\n%s\n\n",
			i+1,
			strings.Repeat("-", blockRule),
			a.Title,
			authors,
			a.Journal,
			a.PubDateRaw,
			a.Abstract,
			strings.Join(a.Keywords, ", "),
			a.PMID,
			doiURLBase, a.DOI,
			strings.Repeat("=", blockRule),
		)
		if err != nil {
			return fmt.Errorf("writing article %d: %w", i+1, err)
		}
	}
	return nil
}

// ExportJSON writes articles to w as the JSON export shape
// ({"articles": [...]}), indented for readability.
func ExportJSON(w io.Writer, articles []types.Article) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Articles []types.Article `json:"articles"`
	}{Articles: articles})
}

// WriteExports writes both export forms of one result set to
// dir/<base>.txt and dir/<base>.json, creating dir as needed. It returns
// the two file names.
func WriteExports(dir, base string, articles []types.Article) (txtName, jsonName string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating results directory: %w", err)
	}

	txtName = base + ".txt"
	jsonName = base + ".json"

	txtFile, err := os.Create(filepath.Join(dir, txtName))
	if err != nil {
		return "", "", fmt.Errorf("creating %s: %w", txtName, err)
	}
	defer txtFile.Close()
	if err := ExportText(txtFile, articles); err != nil {
		return "", "", err
	}

	jsonFile, err := os.Create(filepath.Join(dir, jsonName))
	if err != nil {
		return "", "", fmt.Errorf("creating %s: %w", jsonName, err)
	}
	defer jsonFile.Close()
	if err := ExportJSON(jsonFile, articles); err != nil {
		return "", "", err
	}

	return txtName, jsonName, nil
}
