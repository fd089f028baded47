// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API and writes result
// exports in the text and JSON formats consumed by internal/parse.
package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/litscope/internal/httputil"
	"github.com/pdiddy/litscope/pkg/types"
)

// eutilsBase is the E-utilities endpoint. Declared as a var so tests can
// substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const (
	defaultMaxResults = 1000
	defaultBatchSize  = 100
)

// Client searches PubMed through the esearch/efetch E-utilities pair.
type Client struct {
	HTTP *http.Client
	Cfg  types.SearchConfig
}

// NewClient returns a Client with the timeout from cfg applied.
func NewClient(cfg types.SearchConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HTTP: &http.Client{Timeout: timeout},
		Cfg:  cfg,
	}
}

// Search runs an advanced PubMed query and fetches up to MaxResults
// records in batches. The optional date range (inclusive, "YYYY/MM/DD")
// is appended to the query as a publication-date filter, matching PubMed
// advanced search syntax. Per-batch progress goes to w.
func (c *Client) Search(ctx context.Context, query, dateFrom, dateTo string, w io.Writer) ([]types.Article, error) {
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}

	term := query
	if dateFrom != "" && dateTo != "" {
		term += fmt.Sprintf(" AND (%q[Date - Publication] : %q[Date - Publication])", dateFrom, dateTo)
	}

	maxResults := c.Cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	sr, err := c.esearch(ctx, term, maxResults)
	if err != nil {
		return nil, err
	}
	if sr.Count == 0 {
		return nil, nil
	}

	total := sr.Count
	if total > maxResults {
		total = maxResults
	}
	fmt.Fprintf(w, "found %d results, retrieving up to %d\n", sr.Count, total)

	batchSize := c.Cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var articles []types.Article
	for start := 0; start < total; start += batchSize {
		if start > 0 && c.Cfg.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.Cfg.BatchDelay):
			}
		}

		batch, err := c.efetch(ctx, sr.WebEnv, sr.QueryKey, start, batchSize)
		if err != nil {
			return nil, fmt.Errorf("fetching records %d-%d: %w", start+1, start+batchSize, err)
		}
		articles = append(articles, batch...)
		fmt.Fprintf(w, "retrieved %d/%d records\n", len(articles), total)
	}

	if len(articles) > maxResults {
		articles = articles[:maxResults]
	}
	return articles, nil
}

// esearchResult is the subset of the esearch XML response the client uses.
type esearchResult struct {
	Count    int    `xml:"Count"`
	WebEnv   string `xml:"WebEnv"`
	QueryKey string `xml:"QueryKey"`
}

func (c *Client) esearch(ctx context.Context, term string, maxResults int) (*esearchResult, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", term)
	params.Set("retmax", fmt.Sprint(maxResults))
	params.Set("usehistory", "y")
	c.addIdentity(params)

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("esearch request: %w", err)
	}
	defer body.Close()

	var sr esearchResult
	if err := xml.NewDecoder(body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return &sr, nil
}

func (c *Client) efetch(ctx context.Context, webEnv, queryKey string, start, count int) ([]types.Article, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("WebEnv", webEnv)
	params.Set("query_key", queryKey)
	params.Set("retstart", fmt.Sprint(start))
	params.Set("retmax", fmt.Sprint(count))
	params.Set("retmode", "xml")
	c.addIdentity(params)

	body, err := c.get(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var set pubmedArticleSet
	if err := xml.NewDecoder(body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	articles := make([]types.Article, 0, len(set.Articles))
	for _, rec := range set.Articles {
		articles = append(articles, rec.toArticle())
	}
	return articles, nil
}

// addIdentity attaches the caller email and API key NCBI usage policy asks for.
func (c *Client) addIdentity(params url.Values) {
	if c.Cfg.Email != "" {
		params.Set("email", c.Cfg.Email)
	}
	if c.Cfg.APIKey != "" {
		params.Set("api_key", c.Cfg.APIKey)
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (io.ReadCloser, error) {
	u := fmt.Sprintf("%s/%s?%s", eutilsBase, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.Cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.Cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}
