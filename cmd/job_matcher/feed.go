package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/feed"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Build a personalized ranked job feed for a candidate profile",
	Long:  "Score every job in the catalog against a candidate profile and print the ranked feed with match percentages, matched skills and human-readable match reasons.",
	RunE:  runFeed,
}

var (
	feedProfileFile string
	feedProfileID   string
	feedJobsFile    string
	feedDBURL       string
	feedLocation    string
	feedRole        string
	feedLimit       int
	feedConcurrency int
	feedOut         string
	feedVerbose     bool
)

func init() {
	feedCmd.Flags().StringVarP(&feedProfileFile, "profile", "p", "", "Path to candidate profile JSON")
	feedCmd.Flags().StringVar(&feedProfileID, "profile-id", "", "Profile ID to load from the database")
	feedCmd.Flags().StringVarP(&feedJobsFile, "jobs", "j", "", "Path to JSON file with an array of jobs")
	feedCmd.Flags().StringVar(&feedDBURL, "db-url", "", "PostgreSQL URL to load the job catalog from")
	feedCmd.Flags().StringVar(&feedLocation, "location", "", "Preferred location")
	feedCmd.Flags().StringVar(&feedRole, "role", "", "Preferred role")
	feedCmd.Flags().IntVar(&feedLimit, "limit", 0, "Maximum feed entries to print (0 = all)")
	feedCmd.Flags().IntVar(&feedConcurrency, "concurrency", 0, "Parallel job scorers (0 = default)")
	feedCmd.Flags().StringVarP(&feedOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	feedCmd.Flags().BoolVarP(&feedVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(feedCmd)
}

func runFeed(_ *cobra.Command, _ []string) error {
	if feedProfileFile != "" && feedProfileID != "" {
		return fmt.Errorf("cannot use --profile with --profile-id")
	}
	if feedProfileFile == "" && feedProfileID == "" {
		return fmt.Errorf("must provide either --profile or --profile-id")
	}

	cfg, err := resolveConfig(cfgFile, config.Config{
		DatabaseURL:     feedDBURL,
		FeedConcurrency: feedConcurrency,
		FeedLimit:       feedLimit,
		Verbose:         feedVerbose,
	})
	if err != nil {
		return err
	}

	if feedJobsFile != "" && feedDBURL != "" {
		return fmt.Errorf("cannot use --jobs with --db-url")
	}
	if feedJobsFile == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("must provide either --jobs or a database URL")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	var st *store.Store
	if cfg.DatabaseURL != "" && (feedJobsFile == "" || feedProfileID != "") {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	var profile *types.CandidateProfile
	if feedProfileFile != "" {
		profile, err = readProfile(feedProfileFile)
		if err != nil {
			return err
		}
	} else {
		if st == nil {
			return fmt.Errorf("--db-url (or database_url via config) is required with --profile-id")
		}
		id, err := uuid.Parse(feedProfileID)
		if err != nil {
			return fmt.Errorf("invalid profile id %q: %w", feedProfileID, err)
		}
		profile, err = st.GetProfile(ctx, id)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("profile not found: %s", feedProfileID)
		}
	}

	var jobs []*types.Job
	if feedJobsFile != "" {
		jobs, err = readJobs(feedJobsFile)
		if err != nil {
			return err
		}
	} else {
		stored, err := st.ListJobs(ctx, store.JobFilters{})
		if err != nil {
			return err
		}
		jobs = make([]*types.Job, len(stored))
		for i := range stored {
			jobs[i] = &stored[i]
		}
	}

	prefs := types.FeedPreferences{
		Skills:            profile.Skills.AllSkillsNormalized,
		YearsExperience:   profile.TotalYearsExperience,
		PreferredRole:     feedRole,
		PreferredLocation: feedLocation,
	}

	var opts []feed.Option
	if cfg.FeedConcurrency > 0 {
		opts = append(opts, feed.WithConcurrency(cfg.FeedConcurrency))
	}
	ranked, err := feed.NewRanker(log, opts...).RankAll(ctx, prefs, jobs)
	if err != nil {
		return fmt.Errorf("failed to rank feed: %w", err)
	}

	if cfg.FeedLimit > 0 && len(ranked) > cfg.FeedLimit {
		ranked = ranked[:cfg.FeedLimit]
	}
	return writeJSON(feedOut, ranked)
}

func readJobs(path string) ([]*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []*types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	return jobs, nil
}
