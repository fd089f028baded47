// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litscope/internal/pubmed"
	"github.com/pdiddy/litscope/internal/results"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search PubMed and export the results",
	Long: `Search runs a PubMed advanced-search query through the NCBI E-utilities
API and writes the results into the results directory, in both the text
format the analysis commands consume and a JSON form of the same records.
Each export is recorded in the results catalog.

NCBI asks callers to identify themselves: set search.email in the config
or put the address in .secrets/ncbi-email. An API key (.secrets/ncbi-api-key)
raises the request rate limit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	out, _ := cmd.Flags().GetString("out")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	if (from == "") != (to == "") {
		return fmt.Errorf("--from and --to must be given together (YYYY/MM/DD)")
	}

	cfg := searchConfig()
	if maxResults > 0 {
		cfg.MaxResults = maxResults
	}
	if cfg.Email == "" {
		return fmt.Errorf("NCBI requires a contact email: set search.email or .secrets/ncbi-email")
	}

	client := pubmed.NewClient(cfg)
	articles, err := client.Search(context.Background(), query, from, to, os.Stderr)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		return fmt.Errorf("no results found for the given criteria")
	}

	base := out
	if base == "" {
		base = "pubmed_results_" + timestamp()
	} else {
		base = strings.TrimSuffix(strings.TrimSuffix(base, ".json"), ".txt")
	}

	dir := resultsDir(cmd)
	txtName, jsonName, err := pubmed.WriteExports(dir, base, articles)
	if err != nil {
		return err
	}

	// Catalog failures should not discard a completed export.
	if catalog, cErr := results.OpenCatalog(dir); cErr == nil {
		defer catalog.Close()
		_, cErr = catalog.Record(context.Background(), results.ExportRecord{
			Query:        query,
			TxtFile:      txtName,
			JSONFile:     jsonName,
			ArticleCount: len(articles),
		})
		if cErr != nil {
			fmt.Fprintf(os.Stderr, "warning: catalog update failed: %v\n", cErr)
		}
	} else {
		fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", cErr)
	}

	fmt.Printf("Exported %d articles to %s and %s\n", len(articles), txtName, jsonName)
	return nil
}

func init() {
	searchCmd.Flags().String("from", "", "publication date range start (YYYY/MM/DD)")
	searchCmd.Flags().String("to", "", "publication date range end (YYYY/MM/DD)")
	searchCmd.Flags().Int("max-results", 0, "maximum records to retrieve (0 = config default)")
	searchCmd.Flags().String("out", "", "base name for the export files (default: pubmed_results_<timestamp>)")

	rootCmd.AddCommand(searchCmd)
}
