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

	"github.com/careerport/careerport/internal/directory"
	"github.com/careerport/careerport/internal/observability/logger"
	"github.com/careerport/careerport/internal/rbac"
)

// UserRequest represents a team member role assignment
type UserRequest struct {
	UID         string `json:"uid" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=super_admin admin recruiter content_editor viewer"`
	PhotoURL    string `json:"photoUrl" validate:"omitempty,url"`
}

// ListUsers returns the team directory.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.directoryService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list users", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"users": list})
}

// SetUser assigns a role to a principal. The provider's claims are
// written before the directory record so a half-applied assignment never
// leaves a principal with stale permissions.
func (h *Handler) SetUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	role, ok := rbac.ParseRole(req.Role)
	if !ok {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": map[string]string{"Role": "oneof"},
		})
		return
	}

	user, err := h.directoryService.Set(r.Context(), directory.User{
		ID:          req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        role,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to set user role",
			logger.Error(err),
			logger.UserID(req.UID),
			logger.Role(req.Role),
		)
		respondError(w, http.StatusInternalServerError, "failed to set user role")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}
