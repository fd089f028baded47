// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litscope/internal/analyze"
)

var hotspotsCmd = &cobra.Command{
	Use:   "hotspots [file]",
	Short: "Rank the most frequent keywords in a results file",
	Long: `Hotspots parses a results file and ranks keywords by aggregate frequency
across titles, abstracts, and declared subject terms. Ties rank by first
appearance in the file, so output is deterministic for a given file.

--top 0 returns the full ranking.`,
	Args: cobra.ExactArgs(1),
	RunE: runHotspots,
}

func runHotspots(cmd *cobra.Command, args []string) error {
	topN, _ := cmd.Flags().GetInt("top")

	engine := newEngine(cmd)
	articles, err := engine.LoadArticles(args[0])
	if err != nil {
		return err
	}

	hotspots := engine.AnalyzeHotspots(articles, topN)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(hotspots)
	}

	fmt.Printf("%-4s  %-50s  %s\n", "Rank", "Term", "Count")
	fmt.Println(strings.Repeat("-", 64))
	for i, kc := range hotspots {
		fmt.Printf("%-4d  %-50s  %d\n", i+1, kc.Term, kc.Count)
	}
	fmt.Printf("\n%d articles analyzed\n", len(articles))
	return nil
}

var trendsCmd = &cobra.Command{
	Use:   "trends [file]",
	Short: "Show monthly frequency series for the top keywords",
	Long: `Trends parses a results file, ranks keywords over the articles that carry
a resolvable publication date, and prints one dense monthly frequency
series per top keyword. Articles without a valid date are excluded.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

func runTrends(cmd *cobra.Command, args []string) error {
	topN, _ := cmd.Flags().GetInt("top")

	engine := newEngine(cmd)
	articles, err := engine.LoadArticles(args[0])
	if err != nil {
		return err
	}

	series := engine.AnalyzeTrends(articles, topN)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(series)
	}

	if len(series) == 0 {
		fmt.Println("No articles with a resolvable publication date.")
		return nil
	}

	for _, s := range series {
		fmt.Printf("%s\n", s.Term)
		for _, p := range s.Points {
			fmt.Printf("  %s  %s (%d)\n", p.Period, strings.Repeat("#", p.Count), p.Count)
		}
	}
	return nil
}

var pubcountCmd = &cobra.Command{
	Use:   "pubcount [file]",
	Short: "Count publications per time period",
	Long: `Pubcount parses a results file and counts articles per contiguous window
of --months-per-period calendar months, starting from the earliest valid
publication date. Empty periods are included so the series has no gaps.`,
	Args: cobra.ExactArgs(1),
	RunE: runPubcount,
}

func runPubcount(cmd *cobra.Command, args []string) error {
	months, _ := cmd.Flags().GetInt("months-per-period")

	engine := newEngine(cmd)
	articles, err := engine.LoadArticles(args[0])
	if err != nil {
		return err
	}

	buckets, err := engine.AnalyzePublicationCounts(articles, months)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(buckets)
	}

	total := 0
	fmt.Printf("%-18s  %s\n", "Period", "Count")
	fmt.Println(strings.Repeat("-", 26))
	for _, b := range buckets {
		fmt.Printf("%-18s  %d\n", b.Period, b.Count)
		total += b.Count
	}
	fmt.Printf("\n%d dated articles of %d total\n", total, len(articles))
	return nil
}

// newEngine builds the analysis engine from the resolved configuration.
// Parser warnings go to stderr.
func newEngine(cmd *cobra.Command) *analyze.Engine {
	return analyze.NewEngine(resultsDir(cmd), analysisConfig(), os.Stderr)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	hotspotsCmd.Flags().Int("top", 20, "number of top keywords (0 = all)")
	hotspotsCmd.Flags().Bool("json", false, "output as JSON")

	trendsCmd.Flags().Int("top", 10, "number of top keywords to trace")
	trendsCmd.Flags().Bool("json", false, "output as JSON")

	pubcountCmd.Flags().Int("months-per-period", 3, "calendar months per counting period")
	pubcountCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(hotspotsCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(pubcountCmd)
}
