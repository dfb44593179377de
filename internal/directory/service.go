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

package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerport/careerport/internal/identity"
	"github.com/careerport/careerport/internal/observability/logger"
	"github.com/careerport/careerport/internal/rbac"
)

// Service manages portal user records and keeps the identity provider's
// custom claims in lockstep with the persisted role.
type Service struct {
	repo     Repository
	claims   ClaimsWriter
	registry *rbac.Registry
}

// NewService creates a directory service.
func NewService(repo Repository, claims ClaimsWriter, registry *rbac.Registry) *Service {
	return &Service{repo: repo, claims: claims, registry: registry}
}

// Get fetches a portal user record.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all portal user records.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Set creates or updates a portal user record together with the identity
// provider's custom claims, as a single logical unit.
//
// The claims write goes first: an inconsistent record with correct
// claims is lower-risk than correct-looking records backed by stale
// claims. If the record write then fails, the previous claims are
// restored (or cleared for a principal that had none) and the record
// error surfaces to the caller.
//
// Permissions are computed from the registry at write time. The input
// carries only a role; a client-supplied permission list has no path
// into the provider.
func (s *Service) Set(ctx context.Context, user User) (*User, error) {
	previous, err := s.claims.GetCustomClaims(ctx, user.ID)
	if err != nil && !errors.Is(err, identity.ErrClaimsNotFound) {
		return nil, fmt.Errorf("failed to read current claims: %w", err)
	}

	next := identity.CustomClaims{
		Role:        user.Role,
		Permissions: s.registry.PermissionsFor(user.Role),
	}
	if err := s.claims.SetCustomClaims(ctx, user.ID, next); err != nil {
		return nil, fmt.Errorf("failed to write custom claims: %w", err)
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := s.repo.Upsert(ctx, &user); err != nil {
		s.rollbackClaims(ctx, user.ID, previous)
		return nil, fmt.Errorf("failed to persist portal user: %w", err)
	}

	return &user, nil
}

// rollbackClaims restores the pre-write claims state after a failed
// record write. A rollback failure leaves claims ahead of the record,
// which the next successful Set repairs; it is logged, not returned,
// because the record error is the one the caller must see.
func (s *Service) rollbackClaims(ctx context.Context, uid string, previous *identity.CustomClaims) {
	var err error
	if previous != nil {
		err = s.claims.SetCustomClaims(ctx, uid, *previous)
	} else {
		err = s.claims.ClearCustomClaims(ctx, uid)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to roll back custom claims",
			logger.UserID(uid),
			logger.Error(err),
		)
	}
}
