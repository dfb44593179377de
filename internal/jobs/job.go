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
	"errors"
	"time"
)

// Domain errors
var (
	ErrJobNotFound = errors.New("job not found")
)

// Status is a job posting's lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// EmploymentType categorizes the engagement.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// ExperienceLevel categorizes seniority.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

// DefaultCurrency applies when a salary range omits one.
const DefaultCurrency = "INR"

// SalaryRange is an optional compensation band.
type SalaryRange struct {
	Min      *int64 `json:"min,omitempty"`
	Max      *int64 `json:"max,omitempty"`
	Currency string `json:"currency"`
}

// Job is a posting on the careers portal. CreatedBy always holds the
// authenticated uid of the principal that created the posting; it is
// never taken from a request payload.
type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Status          Status          `json:"status"`
	CompanyID       string          `json:"companyId"`
	Location        string          `json:"location"`
	EmploymentType  EmploymentType  `json:"employmentType"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	SalaryRange     *SalaryRange    `json:"salaryRange,omitempty"`
	Tags            []string        `json:"tags"`
	CreatedBy       string          `json:"createdBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	PublishedAt     *time.Time      `json:"publishedAt,omitempty"`
}

// Repository persists job postings.
type Repository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Job, error)
	Count(ctx context.Context) (total, published int64, err error)
}
