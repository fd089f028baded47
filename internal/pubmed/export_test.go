// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litscope/internal/parse"
	"github.com/pdiddy/litscope/pkg/types"
)

func sampleArticles() []types.Article {
	return []types.Article{
		{
			Title:      "Immunotherapy in solid tumors",
			Authors:    []string{"Chen Wei", "Smith John A"},
			Journal:    "Nature Reviews Cancer",
			PubDateRaw: "2023 Jan 15",
			Date:       time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			Abstract:   "BACKGROUND: Immunotherapy reshapes treatment. RESULTS: Durable responses.",
			Keywords:   []string{"Immunotherapy", "Neoplasms"},
			PMID:       "36650001",
			DOI:        "10.1038/s41568-022-00547-1",
		},
		{
			Title:      "Screening uptake in rural cohorts",
			Journal:    "The Lancet Oncology",
			PubDateRaw: "2023 Mar",
			Date:       time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			Abstract:   "Screening uptake remains uneven.",
			PMID:       "36650002",
		},
	}
}

// Exported text must survive a parse round trip unchanged. This is the
// closest thing the text format has to a schema, so both sides of the
// contract are exercised in one place.
func TestExportTextRoundTrip(t *testing.T) {
	want := sampleArticles()

	var buf bytes.Buffer
	require.NoError(t, ExportText(&buf, want))

	got, err := parse.ParseText(&buf, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExportTextShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportText(&buf, sampleArticles()))
	out := buf.String()

	assert.Contains(t, out, "Article 1\n"+strings.Repeat("-", 80)+"\n")
	assert.Contains(t, out, "Article 2\n")
	assert.Contains(t, out, "Title: Immunotherapy in solid tumors\n")
	assert.Contains(t, out, "Authors: Chen Wei, Smith John A\n")
	// Missing authors render as the N/A placeholder.
	assert.Contains(t, out, "Authors: N/A\n")
	assert.Contains(t, out, "DOI: https://doi.org/10.1038/s41568-022-00547-1\n")
	assert.Contains(t, out, strings.Repeat("=", 80)+"\n")
}

func TestExportJSONRoundTrip(t *testing.T) {
	want := sampleArticles()

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, want))

	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := parse.ParseFile(path, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteExports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	articles := sampleArticles()

	txtName, jsonName, err := WriteExports(dir, "cancer_20230301", articles)
	require.NoError(t, err)
	assert.Equal(t, "cancer_20230301.txt", txtName)
	assert.Equal(t, "cancer_20230301.json", jsonName)

	for _, name := range []string{txtName, jsonName} {
		got, err := parse.ParseFile(filepath.Join(dir, name), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, articles, got, "re-parsing %s", name)
	}
}

func TestExportTextEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportText(&buf, nil))
	assert.Empty(t, buf.String())
}
