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

	"github.com/careerport/careerport/internal/companies"
	"github.com/jackc/pgx/v5"
)

// CompanyRepository implements companies.Repository.
type CompanyRepository struct {
	db *DB
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a company profile.
func (r *CompanyRepository) Create(ctx context.Context, company *companies.Company) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO companies (id, name, description, website, logo_url, industry, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		company.ID, company.Name, company.Description, company.Website,
		company.LogoURL, company.Industry, company.Size, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

// GetByID retrieves a company profile by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*companies.Company, error) {
	var company companies.Company
	err := r.db.pool.QueryRow(ctx, `
		SELECT id, name, description, website, logo_url, industry, size, created_at, updated_at
		FROM companies WHERE id = $1
	`, id).Scan(
		&company.ID, &company.Name, &company.Description, &company.Website,
		&company.LogoURL, &company.Industry, &company.Size, &company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, companies.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to query company: %w", err)
	}
	return &company, nil
}

// Update overwrites a company profile.
func (r *CompanyRepository) Update(ctx context.Context, company *companies.Company) error {
	tag, err := r.db.pool.Exec(ctx, `
		UPDATE companies SET
			name = $2, description = $3, website = $4, logo_url = $5,
			industry = $6, size = $7, updated_at = $8
		WHERE id = $1
	`,
		company.ID, company.Name, company.Description, company.Website,
		company.LogoURL, company.Industry, company.Size, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return companies.ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company profile.
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return companies.ErrCompanyNotFound
	}
	return nil
}

// List returns all company profiles ordered by name.
func (r *CompanyRepository) List(ctx context.Context) ([]*companies.Company, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, name, description, website, logo_url, industry, size, created_at, updated_at
		FROM companies ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var result []*companies.Company
	for rows.Next() {
		var company companies.Company
		if err := rows.Scan(
			&company.ID, &company.Name, &company.Description, &company.Website,
			&company.LogoURL, &company.Industry, &company.Size, &company.CreatedAt, &company.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		result = append(result, &company)
	}
	return result, rows.Err()
}

// Count returns the number of company profiles.
func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.pool.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}

// Industries returns the distinct non-empty industries in use.
func (r *CompanyRepository) Industries(ctx context.Context) ([]string, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT DISTINCT industry FROM companies WHERE industry <> '' ORDER BY industry
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}
	defer rows.Close()

	var industries []string
	for rows.Next() {
		var industry string
		if err := rows.Scan(&industry); err != nil {
			return nil, fmt.Errorf("failed to scan industry: %w", err)
		}
		industries = append(industries, industry)
	}
	return industries, rows.Err()
}
