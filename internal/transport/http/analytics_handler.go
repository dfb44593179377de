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

// GetAnalytics returns the dashboard snapshot.
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to compute analytics", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to compute analytics")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
