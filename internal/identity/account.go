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
	"errors"
	"time"

	"github.com/careerport/careerport/internal/rbac"
)

// Domain errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrClaimsNotFound       = errors.New("custom claims not found")
	ErrTokenInvalid         = errors.New("token is invalid")
)

// Account is a login-capable identity held by the provider. Portal user
// records (display name, role) live in the directory; the account only
// carries what authentication needs.
type Account struct {
	UID          string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CustomClaims is the provider-side claims document mirrored from a
// principal's persisted role. Permissions are computed from the registry
// at write time; they are embedded into issued tokens but recomputed
// again at decode time.
type CustomClaims struct {
	Role        rbac.Role         `json:"role"`
	Permissions []rbac.Permission `json:"permissions"`
}

// AccountRepository persists provider accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByUID(ctx context.Context, uid string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// ClaimsRepository persists custom-claims documents keyed by uid.
type ClaimsRepository interface {
	Get(ctx context.Context, uid string) (*CustomClaims, error)
	Set(ctx context.Context, uid string, claims CustomClaims) error
	Delete(ctx context.Context, uid string) error
}
