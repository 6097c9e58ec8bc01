package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/match"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against a job posting",
	Long:  "Score a candidate profile against a single job posting and print the recommendation: weighted score, match percentage, matching and missing skills.",
	RunE:  runMatch,
}

var (
	matchProfileFile string
	matchProfileID   string
	matchJobFile     string
	matchJobID       string
	matchDBURL       string
	matchOut         string
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to candidate profile JSON")
	matchCmd.Flags().StringVar(&matchProfileID, "profile-id", "", "Profile ID to load from the database")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting JSON")
	matchCmd.Flags().StringVar(&matchJobID, "job-id", "", "Job ID to load from the database")
	matchCmd.Flags().StringVar(&matchDBURL, "db-url", "", "PostgreSQL URL (required with --job-id or --profile-id)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchProfileFile != "" && matchProfileID != "" {
		return fmt.Errorf("cannot use --profile with --profile-id")
	}
	if matchProfileFile == "" && matchProfileID == "" {
		return fmt.Errorf("must provide either --profile or --profile-id")
	}
	if matchJobFile != "" && matchJobID != "" {
		return fmt.Errorf("cannot use --job with --job-id")
	}
	if matchJobFile == "" && matchJobID == "" {
		return fmt.Errorf("must provide either --job or --job-id")
	}

	cfg, err := resolveConfig(cfgFile, config.Config{DatabaseURL: matchDBURL})
	if err != nil {
		return err
	}

	ctx := context.Background()

	var st *store.Store
	if matchJobID != "" || matchProfileID != "" {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--db-url (or database_url via config) is required with --job-id/--profile-id")
		}
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	var profile *types.CandidateProfile
	if matchProfileFile != "" {
		profile, err = readProfile(matchProfileFile)
		if err != nil {
			return err
		}
	} else {
		id, err := uuid.Parse(matchProfileID)
		if err != nil {
			return fmt.Errorf("invalid profile id %q: %w", matchProfileID, err)
		}
		profile, err = st.GetProfile(ctx, id)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("profile not found: %s", matchProfileID)
		}
	}

	var job *types.Job
	if matchJobFile != "" {
		job, err = readJob(matchJobFile)
		if err != nil {
			return err
		}
	} else {
		job, err = st.GetJob(ctx, matchJobID)
		if err != nil {
			return err
		}
		if job == nil {
			return fmt.Errorf("job not found: %s", matchJobID)
		}
	}

	rec := match.NewScorer().Recommend(profile, job)
	return writeJSON(matchOut, rec)
}

func readProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

func readJob(path string) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}
