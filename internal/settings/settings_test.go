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

package settings_test

import (
	"context"
	"testing"

	"github.com/careerport/careerport/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRepository implements settings.Repository in memory.
type MockRepository struct {
	doc *settings.Settings
}

func (m *MockRepository) Get(ctx context.Context) (*settings.Settings, error) {
	if m.doc == nil {
		return nil, settings.ErrSettingsNotFound
	}
	clone := *m.doc
	return &clone, nil
}

func (m *MockRepository) Put(ctx context.Context, s *settings.Settings) error {
	clone := *s
	m.doc = &clone
	return nil
}

// TestPurpose: Verifies Get falls back to the built-in defaults before any
// settings document has been written.
// Scope: Unit Test
// Expected: Default site name and page size instead of a not-found error.
func TestSettings_Get_Defaults(t *testing.T) {
	svc := settings.NewService(&MockRepository{})

	current, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CareerPort", current.SiteName)
	assert.Equal(t, 20, current.JobsPerPage)
	assert.Empty(t, current.UpdatedBy)
}

// TestPurpose: Verifies Put stamps the writer uid and update time and that
// a subsequent Get returns the written document instead of defaults.
// Scope: Unit Test
// Expected: Stored document matches input with stamped metadata.
func TestSettings_PutThenGet(t *testing.T) {
	svc := settings.NewService(&MockRepository{})
	ctx := context.Background()

	written, err := svc.Put(ctx, settings.Settings{
		SiteName:     "Acme Careers",
		SupportEmail: "talent@acme.example",
		JobsPerPage:  50,
	}, "uid-writer")
	require.NoError(t, err)

	assert.Equal(t, "uid-writer", written.UpdatedBy)
	assert.False(t, written.UpdatedAt.IsZero())

	current, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Careers", current.SiteName)
	assert.Equal(t, 50, current.JobsPerPage)
	assert.Equal(t, "uid-writer", current.UpdatedBy)
}
