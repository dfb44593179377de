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

package auth_test

import (
	"testing"

	"github.com/careerport/careerport/internal/auth"
	"github.com/careerport/careerport/internal/rbac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPurpose: Verifies that a well-formed claim map decodes into typed
// Claims with permissions taken from the registry.
// Scope: Unit Test
// Expected: UID and role carried over, permissions equal Registry[role].
func TestAuth_DecodeClaims_WellFormed(t *testing.T) {
	reg := rbac.NewRegistry()

	claims, err := auth.DecodeClaims(map[string]any{
		"sub":  "user-1",
		"role": "recruiter",
	}, reg)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UID)
	assert.Equal(t, rbac.RoleRecruiter, claims.Role)
	assert.ElementsMatch(t, reg.PermissionsFor(rbac.RoleRecruiter), claims.Permissions)
}

// TestPurpose: Verifies that a permissions list embedded in the token is
// ignored and permissions are recomputed from the registry.
// Scope: Unit Test
// Security: Registry is the single source of truth across token lifetimes;
// stale or forged embedded grants must not survive decode.
// Expected: Decoded permissions equal Registry[role], not the embedded list.
func TestAuth_DecodeClaims_RecomputesEmbeddedPermissions(t *testing.T) {
	reg := rbac.NewRegistry()

	claims, err := auth.DecodeClaims(map[string]any{
		"sub":         "user-2",
		"role":        "viewer",
		"permissions": []any{"jobs.write", "users.write", "settings.write"},
	}, reg)
	require.NoError(t, err)

	assert.ElementsMatch(t, reg.PermissionsFor(rbac.RoleViewer), claims.Permissions)
	assert.False(t, claims.HasPermission(rbac.PermJobsWrite))
	assert.False(t, claims.HasPermission(rbac.PermUsersWrite))
}

// TestPurpose: Verifies decode is deterministic: the same claim map always
// yields identical Claims.
// Scope: Unit Test
// Expected: Two decodes of one map are deeply equal.
func TestAuth_DecodeClaims_Idempotent(t *testing.T) {
	reg := rbac.NewRegistry()
	tokenClaims := map[string]any{
		"sub":  "user-3",
		"role": "admin",
	}

	first, err := auth.DecodeClaims(tokenClaims, reg)
	require.NoError(t, err)
	second, err := auth.DecodeClaims(tokenClaims, reg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestPurpose: Verifies malformed claim maps are rejected with the
// InvalidClaims kind.
// Scope: Unit Test
// Expected: Missing subject, missing role, and unknown role all fail shape
// validation; the kind is InvalidClaims in every case.
func TestAuth_DecodeClaims_MalformedShapes(t *testing.T) {
	reg := rbac.NewRegistry()

	cases := map[string]map[string]any{
		"missing subject": {"role": "admin"},
		"empty subject":   {"sub": "", "role": "admin"},
		"missing role":    {"sub": "user-4"},
		"empty role":      {"sub": "user-4", "role": ""},
		"unknown role":    {"sub": "user-4", "role": "owner"},
		"non-string role": {"sub": "user-4", "role": 7},
		"non-string sub":  {"sub": 7, "role": "admin"},
	}

	for name, tokenClaims := range cases {
		_, err := auth.DecodeClaims(tokenClaims, reg)
		require.Error(t, err, name)
		assert.Equal(t, auth.KindInvalidClaims, auth.KindOf(err), name)
	}
}

// TestPurpose: Verifies the "uid" fallback subject key is honored when
// "sub" is absent.
// Scope: Unit Test
// Expected: UID resolves from the uid claim.
func TestAuth_DecodeClaims_UIDFallback(t *testing.T) {
	claims, err := auth.DecodeClaims(map[string]any{
		"uid":  "user-5",
		"role": "viewer",
	}, rbac.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, "user-5", claims.UID)
}
