// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results manages the exported results directory: listing result
// files and maintaining a SQLite catalog of export runs.
package results

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ListFiles returns the result files (.txt and .json) in dir, sorted by
// name. A missing directory is not an error; it lists as empty.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading results directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".json") {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files, nil
}
