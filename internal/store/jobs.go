package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// UpsertJob inserts a job posting, updating the stored row when the same
// job_id arrives again from a later scrape.
func (s *Store) UpsertJob(ctx context.Context, job *types.Job) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO jobs (job_id, company, role, location, is_remote, type,
		                   required_skills, preferred_skills, experience_level,
		                   min_years_experience, max_years_experience,
		                   description, salary, posted_at, expire_at, url, source, is_verified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 ON CONFLICT (job_id) DO UPDATE SET
		   company = $2, role = $3, location = $4, is_remote = $5, type = $6,
		   required_skills = $7, preferred_skills = $8, experience_level = $9,
		   min_years_experience = $10, max_years_experience = $11,
		   description = $12, salary = $13, posted_at = $14, expire_at = $15,
		   url = $16, source = $17, is_verified = $18, updated_at = NOW()`,
		job.JobID, job.Company, job.Role, job.Location, job.IsRemote, job.Type,
		job.RequiredSkills, job.PreferredSkills, job.ExperienceLevel,
		job.MinYearsExperience, job.MaxYearsExperience,
		job.Description, job.Salary, job.PostedAt, job.ExpireAt, job.URL, job.Source, job.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job %s: %w", job.JobID, err)
	}
	return nil
}

// GetJob retrieves a job posting by its job_id
func (s *Store) GetJob(ctx context.Context, jobID string) (*types.Job, error) {
	var job types.Job
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_id, company, role, location, is_remote, type,
		        required_skills, preferred_skills, experience_level,
		        min_years_experience, max_years_experience,
		        description, salary, posted_at, expire_at, url, source, is_verified
		 FROM jobs WHERE job_id = $1`,
		jobID,
	).Scan(&job.ID, &job.JobID, &job.Company, &job.Role, &job.Location, &job.IsRemote, &job.Type,
		&job.RequiredSkills, &job.PreferredSkills, &job.ExperienceLevel,
		&job.MinYearsExperience, &job.MaxYearsExperience,
		&job.Description, &job.Salary, &job.PostedAt, &job.ExpireAt, &job.URL, &job.Source, &job.IsVerified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return &job, nil
}

// JobFilters holds optional filters for listing jobs
type JobFilters struct {
	Location   string
	RemoteOnly bool
	Source     string
	Limit      int
}

// ListJobs retrieves job postings with optional filters, newest first
func (s *Store) ListJobs(ctx context.Context, filters JobFilters) ([]types.Job, error) {
	if filters.Limit == 0 {
		filters.Limit = 200
	}

	query := `SELECT id, job_id, company, role, location, is_remote, type,
		       required_skills, preferred_skills, experience_level,
		       min_years_experience, max_years_experience,
		       description, salary, posted_at, expire_at, url, source, is_verified
		FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}
	if filters.RemoteOnly {
		query += " AND is_remote = TRUE"
	}
	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY posted_at DESC, job_id ASC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var job types.Job
		if err := rows.Scan(&job.ID, &job.JobID, &job.Company, &job.Role, &job.Location, &job.IsRemote, &job.Type,
			&job.RequiredSkills, &job.PreferredSkills, &job.ExperienceLevel,
			&job.MinYearsExperience, &job.MaxYearsExperience,
			&job.Description, &job.Salary, &job.PostedAt, &job.ExpireAt, &job.URL, &job.Source, &job.IsVerified); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// DeleteExpiredJobs removes postings whose expire_at has passed and returns
// the number of rows removed.
func (s *Store) DeleteExpiredJobs(ctx context.Context) (int64, error) {
	result, err := s.pool.Exec(ctx,
		`DELETE FROM jobs WHERE expire_at IS NOT NULL AND expire_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired jobs: %w", err)
	}
	return result.RowsAffected(), nil
}
