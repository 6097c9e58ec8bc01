package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// SaveProfile stores a parsed candidate profile as a JSONB document and
// returns its ID. The profile keeps its ID when it already has one so a
// re-parse of the same resume overwrites the previous document.
func (s *Store) SaveProfile(ctx context.Context, profileID uuid.UUID, profile *types.CandidateProfile) (uuid.UUID, error) {
	if profileID == uuid.Nil {
		profileID = uuid.New()
	}

	jsonBytes, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidate_profiles (id, parsing_status, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET parsing_status = $2, content = $3, updated_at = NOW()`,
		profileID, profile.ParsingStatus, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profileID, nil
}

// GetProfile retrieves a candidate profile by ID
func (s *Store) GetProfile(ctx context.Context, profileID uuid.UUID) (*types.CandidateProfile, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM candidate_profiles WHERE id = $1`,
		profileID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// ProfileSummary is a lightweight view of a stored profile for listing
type ProfileSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ParsingStatus string    `json:"parsing_status"`
	CreatedAt     string    `json:"created_at"`
}

// ListProfiles retrieves recent candidate profiles
func (s *Store) ListProfiles(ctx context.Context, limit int) ([]ProfileSummary, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, content, parsing_status, created_at::text
		 FROM candidate_profiles ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []ProfileSummary
	for rows.Next() {
		var p ProfileSummary
		var content []byte
		if err := rows.Scan(&p.ID, &content, &p.ParsingStatus, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		p.Name = profileName(content)
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// profileName pulls the candidate name out of a stored profile document.
// Decoding through the CandidateProfile JSON tags keeps this in lockstep with
// the document shape.
func profileName(content []byte) string {
	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return ""
	}
	return profile.PersonalInfo.FullName
}
