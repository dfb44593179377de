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
	"github.com/careerport/careerport/internal/settings"
)

// SettingsRequest represents the portal settings payload
type SettingsRequest struct {
	SiteName     string `json:"siteName" validate:"required"`
	SupportEmail string `json:"supportEmail" validate:"omitempty,email"`
	JobsPerPage  int    `json:"jobsPerPage" validate:"required,min=1,max=100"`
}

// GetSettings returns the portal settings, defaults included.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	current, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to load settings", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	respondJSON(w, http.StatusOK, current)
}

// PutSettings overwrites the portal settings, stamped with the caller.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	claims := GetClaims(r.Context())
	updated, err := h.settingsService.Put(r.Context(), settings.Settings{
		SiteName:     req.SiteName,
		SupportEmail: req.SupportEmail,
		JobsPerPage:  req.JobsPerPage,
	}, claims.UID)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to save settings",
			logger.Error(err),
			logger.UserID(claims.UID),
		)
		respondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
