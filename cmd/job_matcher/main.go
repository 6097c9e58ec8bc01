// Package main provides the entry point for the job matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "job_matcher",
	Short: "Resume parsing and job matching engine",
	Long:  "Job Matcher parses resumes into structured candidate profiles and scores them against job postings for recommendations and a personalized feed.",
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to JSON config file")
}

// resolveConfig layers the configuration sources: explicit flag values win
// over the config file, and whatever is still unset is filled from the
// environment.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	fileCfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	merged := flags.MergeWithDefaults(fileCfg)
	merged.FromEnv()
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
