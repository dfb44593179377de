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
	"context"
	"strings"

	"github.com/careerport/careerport/internal/rbac"
)

// TokenVerifier is the identity provider's verification contract. Verify
// checks signature and expiry and returns the raw claim map. When
// checkRevoked is set, the provider must also reject tokens whose
// principal has been revoked since issuance; claims-sensitive reads pass
// it so a just-revoked principal does not ride out the token's natural
// expiry.
type TokenVerifier interface {
	Verify(ctx context.Context, token string, checkRevoked bool) (map[string]any, error)
}

// Guard is the request-time enforcement point every protected operation
// calls before executing. It is stateless per call and safe for
// concurrent use; the verifier call is its only suspension point, and a
// transient provider failure surfaces as Unauthenticated with no retry
// at this layer.
type Guard struct {
	verifier TokenVerifier
	registry *rbac.Registry
}

// NewGuard constructs a Guard. The registry is threaded in explicitly so
// tests can substitute alternate tables.
func NewGuard(verifier TokenVerifier, registry *rbac.Registry) *Guard {
	return &Guard{verifier: verifier, registry: registry}
}

// Authenticate verifies the bearer token in the Authorization header and
// decodes its claims without any permission check. checkRevoked forces
// the provider's revocation lookup.
func (g *Guard) Authenticate(ctx context.Context, authorizationHeader string, checkRevoked bool) (Claims, error) {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return Claims{}, err
	}

	tokenClaims, err := g.verifier.Verify(ctx, token, checkRevoked)
	if err != nil {
		return Claims{}, newError(KindUnauthenticated, "token verification failed", err)
	}

	return DecodeClaims(tokenClaims, g.registry)
}

// Authorize runs the full pipeline: bearer extraction, provider
// verification, claims decode, then the permission check. When more than
// one permission is required the principal must hold ALL of them.
//
// Exactly one outcome is produced per call: the validated Claims, or an
// *Error whose Kind is Unauthenticated, InvalidClaims, or Forbidden.
func (g *Guard) Authorize(ctx context.Context, authorizationHeader string, required ...rbac.Permission) (Claims, error) {
	claims, err := g.Authenticate(ctx, authorizationHeader, false)
	if err != nil {
		return Claims{}, err
	}

	for _, permission := range required {
		if !claims.HasPermission(permission) {
			return Claims{}, newError(KindForbidden, "missing permission "+string(permission), nil)
		}
	}

	return claims, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", newError(KindUnauthenticated, "missing authorization header", nil)
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", newError(KindUnauthenticated, "authorization header is not a bearer token", nil)
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", newError(KindUnauthenticated, "empty bearer token", nil)
	}
	return token, nil
}
