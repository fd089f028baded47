// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/litscope/pkg/types"
)

// jsonExport is the top-level shape of a JSON results file.
type jsonExport struct {
	Articles []types.Article `json:"articles"`
}

// ParseJSON decodes a JSON results export ({"articles": [...]}) from r.
// Publication dates are re-resolved from their raw strings so that JSON
// and text exports of the same records analyze identically.
func ParseJSON(r io.Reader) ([]types.Article, error) {
	var export jsonExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON results file: %w", err)
	}

	for i := range export.Articles {
		export.Articles[i].Date, _ = ParseDate(export.Articles[i].PubDateRaw)
	}
	return export.Articles, nil
}
