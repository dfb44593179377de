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

// Role is a closed enumerated category determining a principal's
// permission set. Roles are compared by exact match; there is no
// hierarchy encoded in the value itself.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleAdmin         Role = "admin"
	RoleRecruiter     Role = "recruiter"
	RoleContentEditor Role = "content_editor"
	RoleViewer        Role = "viewer"
)

// Roles lists every member of the closed Role enum.
var Roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleRecruiter,
	RoleContentEditor,
	RoleViewer,
}

// ParseRole maps a raw string to a Role. The second return value is
// false when the input is not a member of the closed enum.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleRecruiter, RoleContentEditor, RoleViewer:
		return Role(raw), true
	}
	return "", false
}

// Permission is an atomic "<resource>.<action>" grant, compared by
// exact string match. No wildcard or prefix semantics.
type Permission string

const (
	PermJobsRead       Permission = "jobs.read"
	PermJobsWrite      Permission = "jobs.write"
	PermCompaniesRead  Permission = "companies.read"
	PermCompaniesWrite Permission = "companies.write"
	PermUsersRead      Permission = "users.read"
	PermUsersWrite     Permission = "users.write"
	PermAnalyticsRead  Permission = "analytics.read"
	PermSettingsRead   Permission = "settings.read"
	PermSettingsWrite  Permission = "settings.write"
)

// Permissions lists every member of the closed Permission catalog.
var Permissions = []Permission{
	PermJobsRead,
	PermJobsWrite,
	PermCompaniesRead,
	PermCompaniesWrite,
	PermUsersRead,
	PermUsersWrite,
	PermAnalyticsRead,
	PermSettingsRead,
	PermSettingsWrite,
}
