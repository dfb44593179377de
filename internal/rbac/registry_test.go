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

package rbac_test

import (
	"testing"

	"github.com/careerport/careerport/internal/rbac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedGrants is the full role×permission truth table. Every pair not
// listed here must be denied; the test below checks both directions.
var expectedGrants = map[rbac.Role][]rbac.Permission{
	rbac.RoleSuperAdmin: {
		rbac.PermJobsRead, rbac.PermJobsWrite,
		rbac.PermCompaniesRead, rbac.PermCompaniesWrite,
		rbac.PermUsersRead, rbac.PermUsersWrite,
		rbac.PermAnalyticsRead,
		rbac.PermSettingsRead, rbac.PermSettingsWrite,
	},
	rbac.RoleAdmin: {
		rbac.PermJobsRead, rbac.PermJobsWrite,
		rbac.PermCompaniesRead, rbac.PermCompaniesWrite,
		rbac.PermUsersRead, rbac.PermUsersWrite,
		rbac.PermAnalyticsRead,
		rbac.PermSettingsRead,
	},
	rbac.RoleRecruiter: {
		rbac.PermJobsRead, rbac.PermJobsWrite,
		rbac.PermCompaniesRead,
		rbac.PermAnalyticsRead,
	},
	rbac.RoleContentEditor: {
		rbac.PermJobsRead, rbac.PermJobsWrite,
		rbac.PermCompaniesRead, rbac.PermCompaniesWrite,
	},
	rbac.RoleViewer: {
		rbac.PermJobsRead,
		rbac.PermCompaniesRead,
		rbac.PermAnalyticsRead,
	},
}

// TestPurpose: Checks every (role, permission) pair in the closed enums
// against the fixed truth table, in both the grant and the deny direction.
// Scope: Unit Test
// Expected: RoleHasPermission matches expectedGrants exactly.
func TestRBAC_Registry_ExhaustiveMatrix(t *testing.T) {
	reg := rbac.NewRegistry()

	for _, role := range rbac.Roles {
		granted := make(map[rbac.Permission]bool)
		for _, p := range expectedGrants[role] {
			granted[p] = true
		}
		for _, perm := range rbac.Permissions {
			assert.Equal(t, granted[perm], reg.RoleHasPermission(role, perm),
				"role %q permission %q", role, perm)
		}
	}
}

// TestPurpose: Pins the spec's minimum grants that external callers rely on.
// Scope: Unit Test
// Expected: Recruiters can write jobs but never manage users; viewers are read-only.
func TestRBAC_Registry_KnownBoundaries(t *testing.T) {
	reg := rbac.NewRegistry()

	assert.True(t, reg.RoleHasPermission(rbac.RoleRecruiter, rbac.PermJobsWrite))
	assert.True(t, reg.RoleHasPermission(rbac.RoleRecruiter, rbac.PermJobsRead))
	assert.False(t, reg.RoleHasPermission(rbac.RoleRecruiter, rbac.PermUsersWrite))
	assert.True(t, reg.RoleHasPermission(rbac.RoleContentEditor, rbac.PermJobsWrite))
	assert.False(t, reg.RoleHasPermission(rbac.RoleContentEditor, rbac.PermUsersWrite))
	assert.False(t, reg.RoleHasPermission(rbac.RoleViewer, rbac.PermJobsWrite))
	assert.True(t, reg.RoleHasPermission(rbac.RoleSuperAdmin, rbac.PermSettingsWrite))
	assert.False(t, reg.RoleHasPermission(rbac.RoleAdmin, rbac.PermSettingsWrite))
}

// TestPurpose: Verifies monotonic superiority: any permission held by a
// lesser role is also held by super_admin.
// Scope: Unit Test
// Expected: super_admin's set is a superset of every other role's set.
func TestRBAC_Registry_SuperAdminSuperset(t *testing.T) {
	reg := rbac.NewRegistry()

	for _, role := range rbac.Roles {
		if role == rbac.RoleSuperAdmin {
			continue
		}
		for _, perm := range rbac.Permissions {
			if reg.RoleHasPermission(role, perm) {
				assert.True(t, reg.RoleHasPermission(rbac.RoleSuperAdmin, perm),
					"super_admin missing %q granted to %q", perm, role)
			}
		}
	}
}

// TestPurpose: Ensures every role maps to a non-empty set and that the
// returned slice is a copy the caller cannot use to mutate the registry.
// Scope: Unit Test
// Expected: Non-empty, deterministic, isolated results.
func TestRBAC_Registry_PermissionsForIsTotalAndIsolated(t *testing.T) {
	reg := rbac.NewRegistry()

	for _, role := range rbac.Roles {
		perms := reg.PermissionsFor(role)
		require.NotEmpty(t, perms, "role %q must map to a non-empty set", role)

		perms[0] = rbac.Permission("tampered")
		again := reg.PermissionsFor(role)
		assert.NotContains(t, again, rbac.Permission("tampered"))
		assert.ElementsMatch(t, expectedGrants[role], again)
	}
}

// TestPurpose: Confirms ParseRole accepts exactly the closed enum.
// Scope: Unit Test
// Expected: All five roles parse; anything else is rejected.
func TestRBAC_ParseRole_ClosedEnum(t *testing.T) {
	for _, role := range rbac.Roles {
		parsed, ok := rbac.ParseRole(string(role))
		require.True(t, ok)
		assert.Equal(t, role, parsed)
	}

	for _, raw := range []string{"", "root", "Admin", "superadmin", "viewer "} {
		_, ok := rbac.ParseRole(raw)
		assert.False(t, ok, "input %q must not parse", raw)
	}
}
