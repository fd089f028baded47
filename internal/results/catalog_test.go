// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalogRecordAndList(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	first, err := c.Record(ctx, ExportRecord{
		Query:        "cancer immunotherapy",
		TxtFile:      "cancer_20230301.txt",
		JSONFile:     "cancer_20230301.json",
		ArticleCount: 42,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := c.Record(ctx, ExportRecord{
		Query:        "crispr screening",
		TxtFile:      "crispr_20230302.txt",
		JSONFile:     "crispr_20230302.json",
		ArticleCount: 7,
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "crispr screening", records[0].Query)
	assert.Equal(t, "cancer immunotherapy", records[1].Query)
	assert.Equal(t, 42, records[1].ArticleCount)
	assert.Equal(t, "cancer_20230301.txt", records[1].TxtFile)
	assert.Equal(t, "cancer_20230301.json", records[1].JSONFile)
}

func TestCatalogPreservesCreatedAt(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	created := time.Date(2023, 3, 1, 12, 30, 0, 0, time.UTC)
	_, err := c.Record(ctx, ExportRecord{
		Query:     "cancer",
		TxtFile:   "a.txt",
		JSONFile:  "a.json",
		CreatedAt: created,
	})
	require.NoError(t, err)

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].CreatedAt.Equal(created))
}

func TestCatalogEmptyList(t *testing.T) {
	c := openTestCatalog(t)
	records, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpenCatalogCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	c, err := OpenCatalog(dir)
	require.NoError(t, err)
	defer c.Close()

	if _, err := os.Stat(filepath.Join(dir, "catalog.db")); err != nil {
		t.Errorf("catalog.db not created: %v", err)
	}
}

func TestOpenCatalogReopens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c, err := OpenCatalog(dir)
	require.NoError(t, err)
	_, err = c.Record(ctx, ExportRecord{Query: "q", TxtFile: "a.txt", JSONFile: "a.json"})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	// Records survive a close/reopen cycle.
	c2, err := OpenCatalog(dir)
	require.NoError(t, err)
	defer c2.Close()

	records, err := c2.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
