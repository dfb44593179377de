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

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides job posting business logic.
type Service struct {
	repo Repository
}

// NewService creates a job service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Draft holds the caller-editable fields of a posting.
type Draft struct {
	Title           string
	Description     string
	Status          Status
	CompanyID       string
	Location        string
	EmploymentType  EmploymentType
	ExperienceLevel ExperienceLevel
	SalaryRange     *SalaryRange
	Tags            []string
}

// Create stores a new posting. createdBy is the authenticated uid; the
// handler takes it from the request's validated claims.
func (s *Service) Create(ctx context.Context, draft Draft, createdBy string) (*Job, error) {
	now := time.Now()
	job := &Job{
		ID:              uuid.NewString(),
		Title:           draft.Title,
		Description:     draft.Description,
		Status:          draft.Status,
		CompanyID:       draft.CompanyID,
		Location:        draft.Location,
		EmploymentType:  draft.EmploymentType,
		ExperienceLevel: draft.ExperienceLevel,
		SalaryRange:     draft.SalaryRange,
		Tags:            draft.Tags,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if job.Status == "" {
		job.Status = StatusDraft
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	if job.SalaryRange != nil && job.SalaryRange.Currency == "" {
		job.SalaryRange.Currency = DefaultCurrency
	}
	if job.Status == StatusPublished {
		job.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Get fetches a posting by ID.
func (s *Service) Get(ctx context.Context, id string) (*Job, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all postings.
func (s *Service) List(ctx context.Context) ([]*Job, error) {
	return s.repo.List(ctx)
}

// Update overwrites a posting's editable fields. PublishedAt is stamped
// on the draft→published transition and kept stable afterwards.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (*Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job.Title = draft.Title
	job.Description = draft.Description
	job.CompanyID = draft.CompanyID
	job.Location = draft.Location
	job.EmploymentType = draft.EmploymentType
	job.ExperienceLevel = draft.ExperienceLevel
	job.SalaryRange = draft.SalaryRange
	job.Tags = draft.Tags
	if job.Tags == nil {
		job.Tags = []string{}
	}
	if job.SalaryRange != nil && job.SalaryRange.Currency == "" {
		job.SalaryRange.Currency = DefaultCurrency
	}
	if draft.Status != "" && draft.Status != job.Status {
		if draft.Status == StatusPublished && job.PublishedAt == nil {
			job.PublishedAt = &now
		}
		job.Status = draft.Status
	}
	job.UpdatedAt = now

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a posting.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
