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

package auth

import (
	"github.com/careerport/careerport/internal/rbac"
)

// Claims is the decoded, trusted representation of a request's
// principal. It is derived fresh from each verified token and is never
// persisted independently of the identity provider.
type Claims struct {
	UID         string            `json:"uid"`
	Role        rbac.Role         `json:"role"`
	Permissions []rbac.Permission `json:"permissions"`
}

// HasPermission reports whether the claims carry the permission.
func (c Claims) HasPermission(permission rbac.Permission) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// DecodeClaims validates the shape of a verified token's claim map and
// builds typed Claims from it. Signature and expiry are the identity
// provider's concern and are checked upstream; this function only cares
// about claim shape.
//
// Permissions are always recomputed from the registry. A permission list
// embedded in the token is ignored: the registry definition may have
// changed since the token was issued, and the registry is the single
// source of truth across token lifetimes.
func DecodeClaims(tokenClaims map[string]any, registry *rbac.Registry) (Claims, error) {
	uid := subjectOf(tokenClaims)
	if uid == "" {
		return Claims{}, newError(KindInvalidClaims, "token is missing a subject identifier", nil)
	}

	rawRole, ok := tokenClaims["role"].(string)
	if !ok || rawRole == "" {
		return Claims{}, newError(KindInvalidClaims, "token is missing a role claim", nil)
	}
	role, ok := rbac.ParseRole(rawRole)
	if !ok {
		return Claims{}, newError(KindInvalidClaims, "token role is not a recognized role", nil)
	}

	return Claims{
		UID:         uid,
		Role:        role,
		Permissions: registry.PermissionsFor(role),
	}, nil
}

// subjectOf resolves the stable subject identifier. The provider writes
// "sub"; "uid" is accepted for claim maps relayed by front-end bootstrap
// code that already flattened the token.
func subjectOf(tokenClaims map[string]any) string {
	if sub, ok := tokenClaims["sub"].(string); ok && sub != "" {
		return sub
	}
	if uid, ok := tokenClaims["uid"].(string); ok && uid != "" {
		return uid
	}
	return ""
}
