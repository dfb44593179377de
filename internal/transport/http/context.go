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

package http

import (
	"context"

	"github.com/careerport/careerport/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

func withClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims retrieves the validated claims placed in the context by the
// permission middleware. The zero value means the request never passed
// through it.
func GetClaims(ctx context.Context) auth.Claims {
	if val, ok := ctx.Value(claimsKey).(auth.Claims); ok {
		return val
	}
	return auth.Claims{}
}
