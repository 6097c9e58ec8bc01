package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/pipeline"
	"github.com/jonathan/job-matcher/internal/resume"
	"github.com/jonathan/job-matcher/internal/store"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into a structured candidate profile",
	Long:  "Parse a resume file (PDF, DOCX, DOC, TXT or RTF) into a candidate profile JSON with derived experience and completeness fields. PDFs without a text layer fall back to OCR.",
	RunE:  runParseResume,
}

var (
	parseResumeFile     string
	parseResumeUserID   string
	parseResumeOut      string
	parseResumeProvider string
	parseResumeModel    string
	parseResumeAPIKey   string
	parseResumeDBURL    string
	parseResumeVerbose  bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "file", "f", "", "Path to the resume file (required)")
	parseResumeCmd.Flags().StringVar(&parseResumeUserID, "user-id", "", "User ID to attach to the profile")
	parseResumeCmd.Flags().StringVarP(&parseResumeOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeProvider, "provider", "", "LLM provider: groq or gemini (default groq)")
	parseResumeCmd.Flags().StringVar(&parseResumeModel, "model", "", "Model name override")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "LLM API key (overrides GROQ_API_KEY/GEMINI_API_KEY env vars)")
	parseResumeCmd.Flags().StringVar(&parseResumeDBURL, "db-url", "", "PostgreSQL URL to store the profile (optional)")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = parseResumeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cfgFile, config.Config{
		Provider:    parseResumeProvider,
		Model:       parseResumeModel,
		APIKey:      parseResumeAPIKey,
		DatabaseURL: parseResumeDBURL,
		Verbose:     parseResumeVerbose,
	})
	if err != nil {
		return err
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	llmCfg, apiKey, err := llmConfig(cfg.Provider, cfg.Model, cfg.APIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	parser := pipeline.DefaultParser(resume.NewLLMExtractor(client, log), log)
	profile := parser.Parse(ctx, parseResumeFile, parseResumeUserID)

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.SaveProfile(ctx, uuid.Nil, profile)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Stored profile %s\n", id)
	}

	return writeJSON(parseResumeOut, profile)
}

// llmConfig maps the resolved provider choice onto an llm.Config. API key
// lookup has already happened through resolveConfig by the time this runs.
func llmConfig(provider, model, apiKey string) (*llm.Config, string, error) {
	var cfg *llm.Config
	switch provider {
	case "groq", "":
		cfg = llm.DefaultGroqConfig()
	case "gemini":
		cfg = llm.DefaultGeminiConfig()
	default:
		return nil, "", fmt.Errorf("unknown provider %q (expected groq or gemini)", provider)
	}
	if model != "" {
		cfg.Model = model
	}
	if apiKey == "" {
		return nil, "", fmt.Errorf("API key is required (set GROQ_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}
	return cfg, apiKey, nil
}

// writeJSON marshals v with indentation to path, or stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
