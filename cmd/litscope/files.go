// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litscope/internal/results"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List result files in the results directory",
	Long: `Files lists the exported result files (.txt and .json) available for
analysis, together with catalog entries recording which search produced
which files.`,
	RunE: runFiles,
}

func runFiles(cmd *cobra.Command, args []string) error {
	dir := resultsDir(cmd)
	jsonOutput, _ := cmd.Flags().GetBool("json")

	files, err := results.ListFiles(dir)
	if err != nil {
		return err
	}

	var records []results.ExportRecord
	if catalog, cErr := results.OpenCatalog(dir); cErr == nil {
		defer catalog.Close()
		records, _ = catalog.List(context.Background())
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Directory string                 `json:"directory"`
			Files     []string               `json:"files"`
			Exports   []results.ExportRecord `json:"exports,omitempty"`
		}{Directory: dir, Files: files, Exports: records})
	}

	if len(files) == 0 {
		fmt.Printf("No result files in %s.\n", dir)
		return nil
	}

	fmt.Printf("Result files in %s:\n", dir)
	for _, f := range files {
		fmt.Println("  ", f)
	}

	if len(records) > 0 {
		fmt.Printf("\n%-6s  %-40s  %-8s  %s\n", "ID", "Query", "Articles", "Created")
		fmt.Println(strings.Repeat("-", 80))
		for _, r := range records {
			query := r.Query
			if len(query) > 40 {
				query = query[:37] + "..."
			}
			fmt.Printf("%-6d  %-40s  %-8d  %s\n",
				r.ID, query, r.ArticleCount, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func init() {
	filesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(filesCmd)
}
