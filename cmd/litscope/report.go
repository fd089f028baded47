// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Generate a comprehensive analysis report",
	Long: `Report runs all three analyses (hotspots, trends, publication counts)
over one results file and merges them with summary statistics: total
article count, how many articles were excluded from date-based analyses,
and the date range covered.

--out writes the report to a file; the extension selects the format
(.yaml or .json). Without --out the report prints to stdout as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	topKeywords, _ := cmd.Flags().GetInt("top-keywords")
	trendKeywords, _ := cmd.Flags().GetInt("trend-keywords")
	months, _ := cmd.Flags().GetInt("months-per-period")
	out, _ := cmd.Flags().GetString("out")

	engine := newEngine(cmd)
	report, err := engine.ComprehensiveAnalysis(args[0], topKeywords, trendKeywords, months)
	if err != nil {
		return err
	}

	if out == "" {
		return printJSON(report)
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(out)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(report)
	case ".json":
		data, err = json.MarshalIndent(report, "", "  ")
	default:
		return fmt.Errorf("unsupported report format %q: use .yaml or .json", filepath.Ext(out))
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Printf("Report written to %s\n", out)
	return nil
}

func init() {
	reportCmd.Flags().Int("top-keywords", 20, "number of top keywords for hotspot analysis")
	reportCmd.Flags().Int("trend-keywords", 10, "number of top keywords to trace over time")
	reportCmd.Flags().Int("months-per-period", 3, "calendar months per publication-count period")
	reportCmd.Flags().String("out", "", "write the report to a file (.yaml or .json)")

	rootCmd.AddCommand(reportCmd)
}
