package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/store"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List or inspect stored candidate profiles",
	Long:  "List recently stored candidate profiles, or print one full profile document with --id.",
	RunE:  runProfiles,
}

var (
	profilesDBURL string
	profilesID    string
	profilesLimit int
	profilesOut   string
)

func init() {
	profilesCmd.Flags().StringVar(&profilesDBURL, "db-url", "", "PostgreSQL URL")
	profilesCmd.Flags().StringVar(&profilesID, "id", "", "Profile ID to print in full")
	profilesCmd.Flags().IntVar(&profilesLimit, "limit", 0, "Maximum profiles to list (0 = default)")
	profilesCmd.Flags().StringVarP(&profilesOut, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cfgFile, config.Config{DatabaseURL: profilesDBURL})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url (or database_url via config) is required")
	}

	ctx := context.Background()

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	if profilesID != "" {
		id, err := uuid.Parse(profilesID)
		if err != nil {
			return fmt.Errorf("invalid profile id %q: %w", profilesID, err)
		}
		profile, err := st.GetProfile(ctx, id)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("profile not found: %s", profilesID)
		}
		return writeJSON(profilesOut, profile)
	}

	summaries, err := st.ListProfiles(ctx, profilesLimit)
	if err != nil {
		return err
	}
	return writeJSON(profilesOut, summaries)
}
