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

	"github.com/careerport/careerport/internal/settings"
	"github.com/jackc/pgx/v5"
)

// SettingsRepository implements settings.Repository over the single-row
// portal_settings table.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the settings document.
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var s settings.Settings
	err := r.db.pool.QueryRow(ctx, `
		SELECT site_name, support_email, jobs_per_page, updated_at, updated_by
		FROM portal_settings WHERE id = TRUE
	`).Scan(&s.SiteName, &s.SupportEmail, &s.JobsPerPage, &s.UpdatedAt, &s.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	return &s, nil
}

// Put creates or replaces the settings document.
func (r *SettingsRepository) Put(ctx context.Context, s *settings.Settings) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO portal_settings (id, site_name, support_email, jobs_per_page, updated_at, updated_by)
		VALUES (TRUE, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			support_email = EXCLUDED.support_email,
			jobs_per_page = EXCLUDED.jobs_per_page,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
	`, s.SiteName, s.SupportEmail, s.JobsPerPage, s.UpdatedAt, s.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
