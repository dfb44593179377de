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

package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/careerport/careerport/internal/directory"
	"github.com/careerport/careerport/internal/identity"
	"github.com/careerport/careerport/internal/rbac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRepository implements directory.Repository with an injectable
// upsert failure.
type MockRepository struct {
	users      map[string]*directory.User
	upsertErr  error
	upsertCall int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{users: map[string]*directory.User{}}
}

func (m *MockRepository) Upsert(ctx context.Context, user *directory.User) error {
	m.upsertCall++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*directory.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, directory.ErrUserNotFound
}

func (m *MockRepository) List(ctx context.Context) ([]*directory.User, error) {
	result := make([]*directory.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// MockClaimsWriter implements directory.ClaimsWriter and records the
// order of provider writes relative to record writes.
type MockClaimsWriter struct {
	docs  map[string]identity.CustomClaims
	trace *[]string
}

func NewMockClaimsWriter(trace *[]string) *MockClaimsWriter {
	return &MockClaimsWriter{docs: map[string]identity.CustomClaims{}, trace: trace}
}

func (m *MockClaimsWriter) SetCustomClaims(ctx context.Context, uid string, claims identity.CustomClaims) error {
	if m.trace != nil {
		*m.trace = append(*m.trace, "claims")
	}
	m.docs[uid] = claims
	return nil
}

func (m *MockClaimsWriter) GetCustomClaims(ctx context.Context, uid string) (*identity.CustomClaims, error) {
	if c, ok := m.docs[uid]; ok {
		return &c, nil
	}
	return nil, identity.ErrClaimsNotFound
}

func (m *MockClaimsWriter) ClearCustomClaims(ctx context.Context, uid string) error {
	delete(m.docs, uid)
	return nil
}

// tracingRepository wraps MockRepository to record record-write order.
type tracingRepository struct {
	*MockRepository
	trace *[]string
}

func (r *tracingRepository) Upsert(ctx context.Context, user *directory.User) error {
	*r.trace = append(*r.trace, "record")
	return r.MockRepository.Upsert(ctx, user)
}

// TestPurpose: Verifies Set writes provider claims before the record and
// that the claims equal Registry[role], never a caller-supplied list.
// Scope: Unit Test
// Expected: Write order is claims → record; stored permissions match the
// registry for the assigned role.
func TestDirectory_Set_WritesClaimsBeforeRecord(t *testing.T) {
	var trace []string
	repo := &tracingRepository{MockRepository: NewMockRepository(), trace: &trace}
	claims := NewMockClaimsWriter(&trace)
	registry := rbac.NewRegistry()
	svc := directory.NewService(repo, claims, registry)

	_, err := svc.Set(context.Background(), directory.User{
		ID:          "uid-1",
		Email:       "recruiter@careerport.test",
		DisplayName: "Rae Cruz",
		Role:        rbac.RoleRecruiter,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"claims", "record"}, trace)
	stored := claims.docs["uid-1"]
	assert.Equal(t, rbac.RoleRecruiter, stored.Role)
	assert.ElementsMatch(t, registry.PermissionsFor(rbac.RoleRecruiter), stored.Permissions)
}

// TestPurpose: Verifies a record-write failure rolls the provider claims
// back to their previous value and surfaces the record error.
// Scope: Unit Test
// Expected: Claims revert to the admin role written beforehand; Set
// returns the repository failure.
func TestDirectory_Set_RecordFailureRestoresPreviousClaims(t *testing.T) {
	repo := NewMockRepository()
	claims := NewMockClaimsWriter(nil)
	registry := rbac.NewRegistry()
	svc := directory.NewService(repo, claims, registry)
	ctx := context.Background()

	_, err := svc.Set(ctx, directory.User{
		ID: "uid-2", Email: "a@careerport.test", DisplayName: "A", Role: rbac.RoleAdmin,
	})
	require.NoError(t, err)

	repo.upsertErr = errors.New("store unavailable")
	_, err = svc.Set(ctx, directory.User{
		ID: "uid-2", Email: "a@careerport.test", DisplayName: "A", Role: rbac.RoleViewer,
	})
	require.Error(t, err)

	restored, err := claims.GetCustomClaims(ctx, "uid-2")
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleAdmin, restored.Role)
}

// TestPurpose: Verifies a record-write failure for a brand-new principal
// clears the just-written claims instead of leaving orphans.
// Scope: Unit Test
// Expected: No claims document remains for the uid.
func TestDirectory_Set_RecordFailureClearsClaimsForNewPrincipal(t *testing.T) {
	repo := NewMockRepository()
	repo.upsertErr = errors.New("store unavailable")
	claims := NewMockClaimsWriter(nil)
	svc := directory.NewService(repo, claims, rbac.NewRegistry())

	_, err := svc.Set(context.Background(), directory.User{
		ID: "uid-3", Email: "new@careerport.test", DisplayName: "New", Role: rbac.RoleViewer,
	})
	require.Error(t, err)

	_, err = claims.GetCustomClaims(context.Background(), "uid-3")
	assert.ErrorIs(t, err, identity.ErrClaimsNotFound)
}

// TestPurpose: Verifies a role change recomputes permissions from the
// registry rather than carrying the old set forward.
// Scope: Unit Test
// Expected: Claims permissions shrink when demoting admin → viewer.
func TestDirectory_Set_RoleChangeRecomputesPermissions(t *testing.T) {
	repo := NewMockRepository()
	claims := NewMockClaimsWriter(nil)
	registry := rbac.NewRegistry()
	svc := directory.NewService(repo, claims, registry)
	ctx := context.Background()

	_, err := svc.Set(ctx, directory.User{
		ID: "uid-4", Email: "b@careerport.test", DisplayName: "B", Role: rbac.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = svc.Set(ctx, directory.User{
		ID: "uid-4", Email: "b@careerport.test", DisplayName: "B", Role: rbac.RoleViewer,
	})
	require.NoError(t, err)

	stored, err := claims.GetCustomClaims(ctx, "uid-4")
	require.NoError(t, err)
	assert.ElementsMatch(t, registry.PermissionsFor(rbac.RoleViewer), stored.Permissions)

	record, err := repo.GetByID(ctx, "uid-4")
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleViewer, record.Role)
}
