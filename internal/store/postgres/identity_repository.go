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
	"time"

	"github.com/careerport/careerport/internal/identity"
	"github.com/careerport/careerport/internal/rbac"
	"github.com/jackc/pgx/v5"
)

// AccountRepository implements identity.AccountRepository.
type AccountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts an account.
func (r *AccountRepository) Create(ctx context.Context, account *identity.Account) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO accounts (uid, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, account.UID, account.Email, account.PasswordHash, now)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	account.CreatedAt = now
	return nil
}

// GetByUID retrieves an account by uid.
func (r *AccountRepository) GetByUID(ctx context.Context, uid string) (*identity.Account, error) {
	return r.getBy(ctx, `WHERE uid = $1`, uid)
}

// GetByEmail retrieves an account by email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*identity.Account, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *AccountRepository) getBy(ctx context.Context, where, arg string) (*identity.Account, error) {
	var account identity.Account
	err := r.db.pool.QueryRow(ctx,
		`SELECT uid, email, password_hash, created_at FROM accounts `+where, arg,
	).Scan(&account.UID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	return &account, nil
}

// ClaimsRepository implements identity.ClaimsRepository.
type ClaimsRepository struct {
	db *DB
}

// NewClaimsRepository creates a new custom-claims repository.
func NewClaimsRepository(db *DB) *ClaimsRepository {
	return &ClaimsRepository{db: db}
}

// Get retrieves the claims document for a uid.
func (r *ClaimsRepository) Get(ctx context.Context, uid string) (*identity.CustomClaims, error) {
	var role string
	var perms []string
	err := r.db.pool.QueryRow(ctx,
		`SELECT role, permissions FROM custom_claims WHERE uid = $1`, uid,
	).Scan(&role, &perms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrClaimsNotFound
		}
		return nil, fmt.Errorf("failed to query custom claims: %w", err)
	}

	claims := identity.CustomClaims{Role: rbac.Role(role)}
	claims.Permissions = make([]rbac.Permission, len(perms))
	for i, p := range perms {
		claims.Permissions[i] = rbac.Permission(p)
	}
	return &claims, nil
}

// Set creates or replaces the claims document for a uid.
func (r *ClaimsRepository) Set(ctx context.Context, uid string, claims identity.CustomClaims) error {
	perms := make([]string, len(claims.Permissions))
	for i, p := range claims.Permissions {
		perms[i] = string(p)
	}
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO custom_claims (uid, role, permissions, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (uid) DO UPDATE SET
			role = EXCLUDED.role,
			permissions = EXCLUDED.permissions,
			updated_at = now()
	`, uid, string(claims.Role), perms)
	if err != nil {
		return fmt.Errorf("failed to upsert custom claims: %w", err)
	}
	return nil
}

// Delete removes the claims document for a uid.
func (r *ClaimsRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.db.pool.Exec(ctx, `DELETE FROM custom_claims WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete custom claims: %w", err)
	}
	return nil
}
