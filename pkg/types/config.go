// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "litscope/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the PubMed search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email identifies the caller to NCBI, as E-utilities usage policy
	// requires. Loaded from config or the ncbi-email secret.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults caps the number of records retrieved (default 1000).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of records fetched per efetch call (default 100).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// BatchDelay is the pause between consecutive efetch calls (default 1s),
	// keeping request rates inside NCBI limits.
	BatchDelay time.Duration `json:"batch_delay" yaml:"batch_delay"`
}

// AnalysisConfig holds settings for the analysis engine. The zero value
// selects the built-in defaults.
type AnalysisConfig struct {
	// MinTokenLen is the minimum length of a free-text token to count as
	// a keyword (default 3).
	MinTokenLen int `json:"min_token_len" yaml:"min_token_len"`

	// Stopwords overrides the built-in English stopword list when non-empty.
	Stopwords []string `json:"stopwords,omitempty" yaml:"stopwords,omitempty"`
}

// ResultsConfig holds settings for the results directory and catalog.
type ResultsConfig struct {
	// Dir is the directory holding exported result files and the catalog
	// database (default "results").
	Dir string `json:"dir" yaml:"dir"`
}
