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

package analytics

import (
	"context"
	"fmt"

	"github.com/careerport/careerport/internal/companies"
	"github.com/careerport/careerport/internal/directory"
	"github.com/careerport/careerport/internal/jobs"
)

// Summary is the dashboard snapshot computed per request; nothing is
// cached or persisted.
type Summary struct {
	TotalJobs        int64    `json:"totalJobs"`
	PublishedJobs    int64    `json:"publishedJobs"`
	TotalCompanies   int64    `json:"totalCompanies"`
	TotalTeamMembers int64    `json:"totalTeamMembers"`
	Industries       []string `json:"industries"`
}

// Service aggregates counts across the portal's stores.
type Service struct {
	jobs      jobs.Repository
	companies companies.Repository
	users     directory.Repository
}

// NewService creates an analytics service.
func NewService(jobRepo jobs.Repository, companyRepo companies.Repository, userRepo directory.Repository) *Service {
	return &Service{jobs: jobRepo, companies: companyRepo, users: userRepo}
}

// Summary computes the current dashboard snapshot.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	totalJobs, publishedJobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	totalCompanies, err := s.companies.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	industries, err := s.companies.Industries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}
	if industries == nil {
		industries = []string{}
	}

	totalMembers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count portal users: %w", err)
	}

	return &Summary{
		TotalJobs:        totalJobs,
		PublishedJobs:    publishedJobs,
		TotalCompanies:   totalCompanies,
		TotalTeamMembers: totalMembers,
		Industries:       industries,
	}, nil
}
