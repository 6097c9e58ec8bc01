// Package pipeline wires text extraction, LLM parsing, and profile building
// into the end-to-end resume ingestion flow.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/extract"
	"github.com/jonathan/job-matcher/internal/resume"
	"github.com/jonathan/job-matcher/internal/types"
)

// TextExtractor pulls raw text from a resume file on disk.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// ResumeParser runs the full resume-to-profile pipeline. Every stage failure
// still yields a profile: a failed parse produces a skeleton profile carrying
// the error, never a nil result.
type ResumeParser struct {
	extractor  TextExtractor
	structured resume.StructuredExtractor
	builder    *resume.Builder
	logger     *zap.Logger
}

// NewResumeParser assembles the pipeline from its stages.
func NewResumeParser(extractor TextExtractor, structured resume.StructuredExtractor, builder *resume.Builder, logger *zap.Logger) *ResumeParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeParser{
		extractor:  extractor,
		structured: structured,
		builder:    builder,
		logger:     logger,
	}
}

// Parse converts the resume file at path into a candidate profile for userID.
func (p *ResumeParser) Parse(ctx context.Context, path, userID string) *types.CandidateProfile {
	text, err := p.extractor.ExtractText(path)
	if err != nil {
		p.logger.Warn("text extraction failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return p.builder.FailedProfile(userID, err)
	}

	data, err := p.structured.Extract(ctx, text)
	if err != nil {
		p.logger.Warn("structured extraction failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return p.builder.FailedProfile(userID, err)
	}

	profile := p.builder.Build(data, userID)
	p.logger.Info("resume parsed",
		zap.String("user_id", userID),
		zap.String("status", profile.ParsingStatus),
		zap.Float64("total_years", profile.TotalYearsExperience),
		zap.Int("completeness", profile.ProfileCompleteness),
	)
	return profile
}

// DefaultParser builds a ResumeParser with the production stages: file text
// extraction with OCR fallback, LLM structured extraction, and the profile
// builder.
func DefaultParser(structured resume.StructuredExtractor, logger *zap.Logger) *ResumeParser {
	return NewResumeParser(
		extract.New(logger),
		structured,
		resume.NewBuilder(logger),
		logger,
	)
}
