package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/store"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/verify"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Validate and import scraped job records into the catalog",
	Long:  "Read a JSON array of scraped job records, drop records that fail validity checks, skip records already seen in the dedupe window, and upsert the rest into the catalog.",
	RunE:  runImportJobs,
}

var (
	importFile     string
	importDBURL    string
	importRedisURL string
	importProbe    bool
	importForce    bool
	importPrune    bool
	importVerbose  bool
)

func init() {
	importJobsCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to JSON file with an array of scraped job records (required)")
	importJobsCmd.Flags().StringVar(&importDBURL, "db-url", "", "PostgreSQL URL")
	importJobsCmd.Flags().StringVar(&importRedisURL, "redis-url", "", "Redis URL for deduplication (optional)")
	importJobsCmd.Flags().BoolVar(&importProbe, "probe", false, "Probe posting URLs for dead or closed pages")
	importJobsCmd.Flags().BoolVar(&importForce, "force", false, "Re-import records even inside the dedupe window")
	importJobsCmd.Flags().BoolVar(&importPrune, "prune", false, "Delete expired postings after the import")
	importJobsCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = importJobsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cfgFile, config.Config{
		DatabaseURL: importDBURL,
		RedisURL:    importRedisURL,
		ProbeURLs:   importProbe,
		Verbose:     importVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url (or database_url via config) is required")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read records file: %w", err)
	}
	var records []types.RawJobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse records JSON: %w", err)
	}

	ctx := context.Background()

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	var deduper *store.Deduper
	if cfg.RedisURL != "" {
		deduper, err = store.NewDeduper(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = deduper.Close() }()
	}

	checks := verify.DefaultChecks()
	if cfg.ProbeURLs {
		checks = []verify.Check{
			&verify.RequiredFieldsCheck{},
			&verify.CompanyProfileCheck{},
			&verify.VagueDescriptionCheck{},
			verify.NewLinkProbeCheck(true),
		}
	}
	verifier := verify.NewVerifier(log, checks...)

	imported, rejected, skipped := 0, 0, 0
	for i := range records {
		rec := &records[i]

		if !verifier.IsValid(ctx, rec) {
			rejected++
			continue
		}

		if deduper != nil {
			if importForce {
				if err := deduper.Forget(ctx, rec.JobID); err != nil {
					return err
				}
			}
			first, err := deduper.MarkSeen(ctx, rec.JobID)
			if err != nil {
				return err
			}
			if !first {
				skipped++
				continue
			}
		}

		if err := st.UpsertJob(ctx, recordToJob(rec)); err != nil {
			return err
		}
		imported++
	}

	fmt.Fprintf(os.Stderr, "Imported %d jobs (%d rejected, %d duplicates skipped)\n", imported, rejected, skipped)

	if importPrune {
		pruned, err := st.DeleteExpiredJobs(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Pruned %d expired jobs\n", pruned)
	}
	return nil
}

// recordToJob converts a validated scraped record into a catalog job.
// Unparseable posted_at values fall back to the import time so the feed
// tie-break still has a stable timestamp.
func recordToJob(rec *types.RawJobRecord) *types.Job {
	postedAt := time.Now().UTC()
	if rec.PostedAt != "" {
		if t, err := dateparse.ParseAny(rec.PostedAt); err == nil {
			postedAt = t.UTC()
		}
	}

	return &types.Job{
		JobID:           rec.JobID,
		Company:         rec.Company,
		Role:            rec.Role,
		Location:        rec.Location,
		IsRemote:        rec.IsRemote,
		Type:            rec.Type,
		RequiredSkills:  rec.RequiredSkills,
		PreferredSkills: rec.PreferredSkills,
		ExperienceLevel: rec.ExperienceLevel,
		Description:     rec.Description,
		Salary:          rec.Salary,
		PostedAt:        postedAt,
		URL:             rec.URL,
		Source:          rec.Source,
		IsVerified:      true,
	}
}
