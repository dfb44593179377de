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

package rbac

// Registry is the total role → permission-set mapping. It is built once
// at process start and never mutated afterwards; lookups are pure and
// safe for concurrent use without locking.
//
// super_admin must hold every permission grantable to any other role.
// That superiority is a table convention, not a runtime check; the
// exhaustive test suite pins it.
type Registry struct {
	grants map[Role]map[Permission]struct{}
}

// NewRegistry constructs the default CareerPort registry.
func NewRegistry() *Registry {
	return newRegistry(map[Role][]Permission{
		RoleSuperAdmin: {
			PermJobsRead, PermJobsWrite,
			PermCompaniesRead, PermCompaniesWrite,
			PermUsersRead, PermUsersWrite,
			PermAnalyticsRead,
			PermSettingsRead, PermSettingsWrite,
		},
		RoleAdmin: {
			PermJobsRead, PermJobsWrite,
			PermCompaniesRead, PermCompaniesWrite,
			PermUsersRead, PermUsersWrite,
			PermAnalyticsRead,
			PermSettingsRead,
		},
		RoleRecruiter: {
			PermJobsRead, PermJobsWrite,
			PermCompaniesRead,
			PermAnalyticsRead,
		},
		RoleContentEditor: {
			PermJobsRead, PermJobsWrite,
			PermCompaniesRead, PermCompaniesWrite,
		},
		RoleViewer: {
			PermJobsRead,
			PermCompaniesRead,
			PermAnalyticsRead,
		},
	})
}

func newRegistry(table map[Role][]Permission) *Registry {
	grants := make(map[Role]map[Permission]struct{}, len(table))
	for role, perms := range table {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		grants[role] = set
	}
	return &Registry{grants: grants}
}

// PermissionsFor returns the permissions granted to the role. The result
// is a fresh slice; callers may not reach the registry's internal state
// through it. Roles outside the closed enum map to an empty set.
func (r *Registry) PermissionsFor(role Role) []Permission {
	set := r.grants[role]
	perms := make([]Permission, 0, len(set))
	for _, p := range Permissions {
		if _, ok := set[p]; ok {
			perms = append(perms, p)
		}
	}
	return perms
}

// RoleHasPermission reports whether the role's permission set contains
// the permission.
func (r *Registry) RoleHasPermission(role Role, permission Permission) bool {
	_, ok := r.grants[role][permission]
	return ok
}
