// Copyright 2026 The CareerPort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/careerport/careerport/internal/jobs"
	"github.com/jackc/pgx/v5"
)

// JobRepository implements jobs.Repository.
type JobRepository struct {
	db *DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `
	id, title, description, status, company_id, location,
	employment_type, experience_level,
	salary_min, salary_max, salary_currency,
	tags, created_by, created_at, updated_at, published_at`

// Create inserts a job posting.
func (r *JobRepository) Create(ctx context.Context, job *jobs.Job) error {
	min, max, currency := salaryColumns(job.SalaryRange)
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		job.ID, job.Title, job.Description, job.Status, job.CompanyID, job.Location,
		job.EmploymentType, job.ExperienceLevel,
		min, max, currency,
		job.Tags, job.CreatedBy, job.CreatedAt, job.UpdatedAt, job.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// GetByID retrieves a job posting by ID.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*jobs.Job, error) {
	row := r.db.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobs.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to query job: %w", err)
	}
	return job, nil
}

// Update overwrites a job posting.
func (r *JobRepository) Update(ctx context.Context, job *jobs.Job) error {
	min, max, currency := salaryColumns(job.SalaryRange)
	tag, err := r.db.pool.Exec(ctx, `
		UPDATE jobs SET
			title = $2, description = $3, status = $4, company_id = $5, location = $6,
			employment_type = $7, experience_level = $8,
			salary_min = $9, salary_max = $10, salary_currency = $11,
			tags = $12, updated_at = $13, published_at = $14
		WHERE id = $1
	`,
		job.ID, job.Title, job.Description, job.Status, job.CompanyID, job.Location,
		job.EmploymentType, job.ExperienceLevel,
		min, max, currency,
		job.Tags, job.UpdatedAt, job.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return jobs.ErrJobNotFound
	}
	return nil
}

// Delete removes a job posting.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return jobs.ErrJobNotFound
	}
	return nil
}

// List returns all job postings, newest first.
func (r *JobRepository) List(ctx context.Context) ([]*jobs.Job, error) {
	rows, err := r.db.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var result []*jobs.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

// Count returns total and published posting counts.
func (r *JobRepository) Count(ctx context.Context) (int64, int64, error) {
	var total, published int64
	err := r.db.pool.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE status = 'published') FROM jobs
	`).Scan(&total, &published)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return total, published, nil
}

func salaryColumns(r *jobs.SalaryRange) (*int64, *int64, string) {
	if r == nil {
		return nil, nil, ""
	}
	return r.Min, r.Max, r.Currency
}

func scanJob(row pgx.Row) (*jobs.Job, error) {
	var job jobs.Job
	var min, max *int64
	var currency string
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Status, &job.CompanyID, &job.Location,
		&job.EmploymentType, &job.ExperienceLevel,
		&min, &max, &currency,
		&job.Tags, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt, &job.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	if min != nil || max != nil || currency != "" {
		job.SalaryRange = &jobs.SalaryRange{Min: min, Max: max, Currency: currency}
	}
	return &job, nil
}
