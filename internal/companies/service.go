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

package companies

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides company profile business logic.
type Service struct {
	repo Repository
}

// NewService creates a company service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Draft holds the caller-editable fields of a profile.
type Draft struct {
	Name        string
	Description string
	Website     string
	LogoURL     string
	Industry    string
	Size        Size
}

// Create stores a new company profile.
func (s *Service) Create(ctx context.Context, draft Draft) (*Company, error) {
	now := time.Now()
	company := &Company{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Website:     draft.Website,
		LogoURL:     draft.LogoURL,
		Industry:    draft.Industry,
		Size:        draft.Size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// Get fetches a profile by ID.
func (s *Service) Get(ctx context.Context, id string) (*Company, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]*Company, error) {
	return s.repo.List(ctx)
}

// Update overwrites a profile's editable fields.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (*Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = draft.Name
	company.Description = draft.Description
	company.Website = draft.Website
	company.LogoURL = draft.LogoURL
	company.Industry = draft.Industry
	company.Size = draft.Size
	company.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
