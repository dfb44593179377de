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

package companies_test

import (
	"context"
	"testing"

	"github.com/careerport/careerport/internal/companies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRepository implements companies.Repository in memory.
type MockRepository struct {
	store map[string]*companies.Company
}

func NewMockRepository() *MockRepository {
	return &MockRepository{store: map[string]*companies.Company{}}
}

func (m *MockRepository) Create(ctx context.Context, company *companies.Company) error {
	clone := *company
	m.store[company.ID] = &clone
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*companies.Company, error) {
	if c, ok := m.store[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, companies.ErrCompanyNotFound
}

func (m *MockRepository) Update(ctx context.Context, company *companies.Company) error {
	if _, ok := m.store[company.ID]; !ok {
		return companies.ErrCompanyNotFound
	}
	clone := *company
	m.store[company.ID] = &clone
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.store[id]; !ok {
		return companies.ErrCompanyNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MockRepository) List(ctx context.Context) ([]*companies.Company, error) {
	result := make([]*companies.Company, 0, len(m.store))
	for _, c := range m.store {
		result = append(result, c)
	}
	return result, nil
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.store)), nil
}

func (m *MockRepository) Industries(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var result []string
	for _, c := range m.store {
		if c.Industry != "" && !seen[c.Industry] {
			seen[c.Industry] = true
			result = append(result, c.Industry)
		}
	}
	return result, nil
}

// TestPurpose: Verifies Create assigns an ID and timestamps and persists
// the draft fields unchanged.
// Scope: Unit Test
// Expected: The stored profile matches the draft with generated metadata.
func TestCompanies_Create(t *testing.T) {
	repo := NewMockRepository()
	svc := companies.NewService(repo)

	company, err := svc.Create(context.Background(), companies.Draft{
		Name:        "Acme Robotics",
		Description: "Industrial automation",
		Website:     "https://acme.example",
		Industry:    "Manufacturing",
		Size:        companies.Size51to200,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, company.ID)
	assert.Equal(t, "Acme Robotics", company.Name)
	assert.Equal(t, companies.Size51to200, company.Size)
	assert.False(t, company.CreatedAt.IsZero())

	stored, err := svc.Get(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, company.Name, stored.Name)
}

// TestPurpose: Verifies Update overwrites editable fields, advances the
// update timestamp and preserves the creation timestamp.
// Scope: Unit Test
// Expected: Name changes, CreatedAt stays, UpdatedAt moves forward.
func TestCompanies_Update(t *testing.T) {
	svc := companies.NewService(NewMockRepository())
	ctx := context.Background()

	company, err := svc.Create(ctx, companies.Draft{Name: "Acme", Industry: "Manufacturing"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, company.ID, companies.Draft{
		Name: "Acme Robotics", Industry: "Robotics", Size: companies.SizeOver1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Robotics", updated.Name)
	assert.Equal(t, "Robotics", updated.Industry)
	assert.Equal(t, company.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(company.UpdatedAt))
}

// TestPurpose: Verifies Get, Update and Delete surface the not-found error
// for unknown company IDs.
// Scope: Unit Test
// Expected: All three operations return ErrCompanyNotFound.
func TestCompanies_NotFound(t *testing.T) {
	svc := companies.NewService(NewMockRepository())
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, companies.ErrCompanyNotFound)

	_, err = svc.Update(ctx, "missing", companies.Draft{Name: "X"})
	assert.ErrorIs(t, err, companies.ErrCompanyNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, companies.ErrCompanyNotFound)
}
