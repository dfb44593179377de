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

package directory

import (
	"context"
	"errors"
	"time"

	"github.com/careerport/careerport/internal/identity"
	"github.com/careerport/careerport/internal/rbac"
)

// Domain errors
var (
	ErrUserNotFound = errors.New("portal user not found")
)

// User is the persisted association of a stable identity with contact
// metadata and a role. The role field here is the source of truth that
// the identity provider's custom claims must mirror after every write.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        rbac.Role `json:"role"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository persists portal user records.
type Repository interface {
	Upsert(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}

// ClaimsWriter is the slice of the identity provider the directory needs
// for role propagation.
type ClaimsWriter interface {
	SetCustomClaims(ctx context.Context, uid string, claims identity.CustomClaims) error
	GetCustomClaims(ctx context.Context, uid string) (*identity.CustomClaims, error)
	ClearCustomClaims(ctx context.Context, uid string) error
}
