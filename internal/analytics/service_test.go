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

package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/careerport/careerport/internal/analytics"
	"github.com/careerport/careerport/internal/companies"
	"github.com/careerport/careerport/internal/directory"
	"github.com/careerport/careerport/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJobRepo struct {
	jobs.Repository
	total     int64
	published int64
	err       error
}

func (s *stubJobRepo) Count(ctx context.Context) (int64, int64, error) {
	return s.total, s.published, s.err
}

type stubCompanyRepo struct {
	companies.Repository
	total      int64
	industries []string
}

func (s *stubCompanyRepo) Count(ctx context.Context) (int64, error) {
	return s.total, nil
}

func (s *stubCompanyRepo) Industries(ctx context.Context) ([]string, error) {
	return s.industries, nil
}

type stubUserRepo struct {
	directory.Repository
	total int64
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return s.total, nil
}

// TestPurpose: Verifies Summary aggregates counts from all three stores
// and carries the distinct industry list through.
// Scope: Unit Test
// Expected: Every field of the snapshot reflects its store's counts.
func TestAnalytics_Summary(t *testing.T) {
	svc := analytics.NewService(
		&stubJobRepo{total: 12, published: 7},
		&stubCompanyRepo{total: 4, industries: []string{"Robotics", "Fintech"}},
		&stubUserRepo{total: 9},
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), summary.TotalJobs)
	assert.Equal(t, int64(7), summary.PublishedJobs)
	assert.Equal(t, int64(4), summary.TotalCompanies)
	assert.Equal(t, int64(9), summary.TotalTeamMembers)
	assert.Equal(t, []string{"Robotics", "Fintech"}, summary.Industries)
}

// TestPurpose: Verifies an empty portal yields zero counts and a non-nil
// empty industry list rather than a null.
// Scope: Unit Test
// Expected: Industries serializes as [] not null.
func TestAnalytics_Summary_Empty(t *testing.T) {
	svc := analytics.NewService(&stubJobRepo{}, &stubCompanyRepo{}, &stubUserRepo{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalJobs)
	assert.NotNil(t, summary.Industries)
	assert.Empty(t, summary.Industries)
}

// TestPurpose: Verifies a failing store aborts the snapshot with a wrapped
// error instead of returning partial numbers.
// Scope: Unit Test
// Expected: Summary returns nil and the underlying failure.
func TestAnalytics_Summary_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := analytics.NewService(&stubJobRepo{err: storeErr}, &stubCompanyRepo{}, &stubUserRepo{})

	summary, err := svc.Summary(context.Background())
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, storeErr)
}
