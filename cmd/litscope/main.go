// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litscope CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litscope/internal/secrets"
	"github.com/pdiddy/litscope/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loadedSecrets[key]
}

// rootCmd is the base command for the litscope CLI.
var rootCmd = &cobra.Command{
	Use:   "litscope",
	Short: "Search PubMed and analyze the research landscape",
	Long: `litscope searches PubMed, exports result files, and computes aggregate
research-landscape statistics over them: frequent keywords (hotspots),
keyword frequency over time (trends), and publication volume over time.

The search command writes text and JSON exports into the results directory;
the analysis commands (hotspots, trends, pubcount, report) re-parse a
result file on every call, so output always reflects the file's current
contents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litscope.yaml or ~/.config/litscope/config.yaml)")
	rootCmd.PersistentFlags().String("results-dir", "", "directory holding result files (default: results)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litscope"))
		}
	}

	viper.SetEnvPrefix("LITSCOPE")
	viper.AutomaticEnv()

	viper.SetDefault("results.dir", "results")
	viper.SetDefault("analysis.min_token_len", 3)
	viper.SetDefault("search.max_results", 1000)
	viper.SetDefault("search.batch_size", 100)
	viper.SetDefault("search.batch_delay", "1s")
	viper.SetDefault("search.timeout", "30s")
	viper.SetDefault("search.user_agent", "litscope/"+version)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resultsDir resolves the results directory: flag, then config, then default.
func resultsDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("results-dir"); dir != "" {
		return dir
	}
	return viper.GetString("results.dir")
}

// analysisConfig builds the engine configuration from viper.
func analysisConfig() types.AnalysisConfig {
	return types.AnalysisConfig{
		MinTokenLen: viper.GetInt("analysis.min_token_len"),
		Stopwords:   viper.GetStringSlice("analysis.stopwords"),
	}
}

// searchConfig builds the PubMed client configuration from viper and the
// loaded secrets.
func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		Email:      secretDefault("ncbi-email", viper.GetString("search.email")),
		APIKey:     secretDefault("ncbi-api-key", viper.GetString("search.api_key")),
		MaxResults: viper.GetInt("search.max_results"),
		BatchSize:  viper.GetInt("search.batch_size"),
		BatchDelay: viper.GetDuration("search.batch_delay"),
	}
}

// timestamp is the suffix appended to default export file names.
func timestamp() string {
	return time.Now().Format("20060102_150405")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
