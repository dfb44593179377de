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

package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service is the identity provider: it authenticates accounts, stores
// custom claims, and issues and verifies RS256-signed identity tokens.
//
// The signing key is generated at startup; key rotation and persistence
// are out of scope. Token revocation infrastructure is likewise out of
// scope: Verify accepts the checkRevoked flag as part of the provider
// contract, and a remote provider honors it, but this implementation has
// no revocation state to consult.
type Service struct {
	accounts   AccountRepository
	claims     ClaimsRepository
	hasher     *PasswordHasher
	signingKey *rsa.PrivateKey
	issuer     string
	tokenTTL   time.Duration
}

// NewService creates the identity provider.
func NewService(accounts AccountRepository, claims ClaimsRepository, hasher *PasswordHasher, issuer string, tokenTTL time.Duration) (*Service, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	return &Service{
		accounts:   accounts,
		claims:     claims,
		hasher:     hasher,
		signingKey: key,
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}, nil
}

// ProvisionAccount creates a login-capable account and returns its uid.
func (s *Service) ProvisionAccount(ctx context.Context, email, password string) (string, error) {
	if existing, err := s.accounts.GetByEmail(ctx, email); err == nil && existing != nil {
		return "", ErrAccountAlreadyExists
	} else if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}
	return account.UID, nil
}

// Authenticate checks an email/password pair and returns the account uid.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	return account.UID, nil
}

// SetCustomClaims stores the claims document for a principal. Callers
// compute permissions from the registry at write time; a client-supplied
// permission list must never reach this method.
func (s *Service) SetCustomClaims(ctx context.Context, uid string, claims CustomClaims) error {
	return s.claims.Set(ctx, uid, claims)
}

// GetCustomClaims returns the stored claims document for a principal.
func (s *Service) GetCustomClaims(ctx context.Context, uid string) (*CustomClaims, error) {
	return s.claims.Get(ctx, uid)
}

// ClearCustomClaims removes the claims document for a principal.
func (s *Service) ClearCustomClaims(ctx context.Context, uid string) error {
	return s.claims.Delete(ctx, uid)
}

// IssueToken signs an identity token for the principal. The embedded
// role and permissions reflect the stored claims document at issuance;
// an account with no claims document gets a token without a role claim,
// which downstream decoding rejects.
func (s *Service) IssueToken(ctx context.Context, uid string) (string, error) {
	now := time.Now()
	tokenClaims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": uid,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	custom, err := s.claims.Get(ctx, uid)
	if err != nil && !errors.Is(err, ErrClaimsNotFound) {
		return "", fmt.Errorf("failed to load custom claims: %w", err)
	}
	if custom != nil {
		tokenClaims["role"] = string(custom.Role)
		perms := make([]string, len(custom.Permissions))
		for i, p := range custom.Permissions {
			perms[i] = string(p)
		}
		tokenClaims["permissions"] = perms
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, tokenClaims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a token's signature, expiry, and issuer and returns the
// raw claim map. It implements the Guard's TokenVerifier contract.
func (s *Service) Verify(ctx context.Context, tokenString string, checkRevoked bool) (map[string]any, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return &s.signingKey.PublicKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{"RS256"}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	// checkRevoked has nothing to consult here; see the Service doc.
	_ = checkRevoked

	return map[string]any(claims), nil
}
