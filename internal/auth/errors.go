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
	"errors"
	"fmt"
)

// Kind is the closed set of authorization rejection categories. Callers
// dispatch on Kind, never on message text; Message is diagnostic only.
type Kind int

const (
	// KindUnauthenticated covers a missing, malformed, expired, or
	// unverifiable bearer token. Maps to HTTP 401.
	KindUnauthenticated Kind = iota + 1

	// KindInvalidClaims covers a token that verifies but whose claim
	// shape is unusable (missing subject, unknown role). Maps to HTTP
	// 403 at the boundary.
	KindInvalidClaims

	// KindForbidden covers an authenticated principal lacking a required
	// permission. Maps to HTTP 403.
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInvalidClaims:
		return "invalid_claims"
	case KindForbidden:
		return "forbidden"
	}
	return "unknown"
}

// Error is the discriminated rejection type produced by the Guard and
// the claims codec.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("auth: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the rejection Kind from an error chain. It returns 0
// when the error is not an authorization rejection.
func KindOf(err error) Kind {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return 0
}
