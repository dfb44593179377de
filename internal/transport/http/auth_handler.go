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
	"log/slog"
	"net/http"

	"github.com/careerport/careerport/internal/observability/logger"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates the credentials and issues a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	uid, err := h.identityService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.loginFailures.Add(r.Context(), 1)
		}
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.identityService.IssueToken(r.Context(), uid)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to issue token",
			logger.Error(err),
			logger.UserID(uid),
		)
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	response := map[string]any{
		"uid":   uid,
		"token": token,
	}
	if custom, err := h.identityService.GetCustomClaims(r.Context(), uid); err == nil {
		response["role"] = custom.Role
		response["permissions"] = custom.Permissions
	}

	respondJSON(w, http.StatusOK, response)
}

// GetClaims returns the caller's validated role and permission set. This
// is the one read that forces the provider's revocation lookup, so a
// principal whose access was just revoked sees it here before the token
// naturally expires.
func (h *Handler) GetClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.guard.Authenticate(r.Context(), r.Header.Get("Authorization"), true)
	if err != nil {
		h.respondAuthError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"uid":         claims.UID,
		"role":        claims.Role,
		"permissions": claims.Permissions,
	})
}
