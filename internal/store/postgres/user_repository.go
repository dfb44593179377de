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

	"github.com/careerport/careerport/internal/directory"
	"github.com/jackc/pgx/v5"
)

// UserRepository implements directory.Repository.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new portal user repository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates or replaces a portal user record keyed by uid.
func (r *UserRepository) Upsert(ctx context.Context, user *directory.User) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO portal_users (id, email, display_name, role, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			role = EXCLUDED.role,
			photo_url = EXCLUDED.photo_url
	`, user.ID, user.Email, user.DisplayName, user.Role, user.PhotoURL, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert portal user: %w", err)
	}
	return nil
}

// GetByID retrieves a portal user record.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*directory.User, error) {
	var user directory.User
	err := r.db.pool.QueryRow(ctx, `
		SELECT id, email, display_name, role, photo_url, created_at
		FROM portal_users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.DisplayName, &user.Role, &user.PhotoURL, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query portal user: %w", err)
	}
	return &user, nil
}

// List returns all portal user records ordered by display name.
func (r *UserRepository) List(ctx context.Context) ([]*directory.User, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, email, display_name, role, photo_url, created_at
		FROM portal_users ORDER BY display_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list portal users: %w", err)
	}
	defer rows.Close()

	var result []*directory.User
	for rows.Next() {
		var user directory.User
		if err := rows.Scan(&user.ID, &user.Email, &user.DisplayName, &user.Role, &user.PhotoURL, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portal user: %w", err)
		}
		result = append(result, &user)
	}
	return result, rows.Err()
}

// Count returns the number of portal user records.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.pool.QueryRow(ctx, `SELECT count(*) FROM portal_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count portal users: %w", err)
	}
	return count, nil
}
