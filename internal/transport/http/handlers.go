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
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/careerport/careerport/internal/analytics"
	"github.com/careerport/careerport/internal/auth"
	"github.com/careerport/careerport/internal/companies"
	"github.com/careerport/careerport/internal/directory"
	"github.com/careerport/careerport/internal/identity"
	"github.com/careerport/careerport/internal/jobs"
	"github.com/careerport/careerport/internal/observability/metrics"
	"github.com/careerport/careerport/internal/rbac"
	"github.com/careerport/careerport/internal/settings"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
)

// Handler holds HTTP handlers and dependencies
type Handler struct {
	identityService  *identity.Service
	jobService       *jobs.Service
	companyService   *companies.Service
	directoryService *directory.Service
	analyticsService *analytics.Service
	settingsService  *settings.Service
	guard            *auth.Guard
	validate         *validator.Validate
	metrics          *metricsRecorder
}

type metricsRecorder struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	authDenials     metric.Int64Counter
	loginFailures   metric.Int64Counter
}

// NewHandler creates a new HTTP handler
func NewHandler(
	identityService *identity.Service,
	jobService *jobs.Service,
	companyService *companies.Service,
	directoryService *directory.Service,
	analyticsService *analytics.Service,
	settingsService *settings.Service,
	guard *auth.Guard,
	portalMetrics *metrics.PortalMetrics,
) *Handler {
	h := &Handler{
		identityService:  identityService,
		jobService:       jobService,
		companyService:   companyService,
		directoryService: directoryService,
		analyticsService: analyticsService,
		settingsService:  settingsService,
		guard:            guard,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
	}
	if portalMetrics != nil {
		h.metrics = &metricsRecorder{
			requestCount:    portalMetrics.RequestCount,
			requestDuration: portalMetrics.RequestDuration,
			authDenials:     portalMetrics.AuthDenials,
			loginFailures:   portalMetrics.LoginFailures,
		}
	}
	return h
}

// NewRouter creates a new HTTP router
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	})
	r.Use(LoggingMiddleware())
	r.Use(MetricsMiddleware(h.metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", h.HealthCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Authentication
		r.Post("/auth/login", h.Login)
		r.Get("/auth/claims", h.GetClaims)

		// Job postings
		r.Route("/jobs", func(r chi.Router) {
			r.With(h.RequirePermission(rbac.PermJobsRead)).Get("/", h.ListJobs)
			r.With(h.RequirePermission(rbac.PermJobsRead)).Get("/{jobID}", h.GetJob)
			r.With(h.RequirePermission(rbac.PermJobsWrite)).Post("/", h.CreateJob)
			r.With(h.RequirePermission(rbac.PermJobsWrite)).Put("/{jobID}", h.UpdateJob)
			r.With(h.RequirePermission(rbac.PermJobsWrite)).Delete("/{jobID}", h.DeleteJob)
		})

		// Company profiles
		r.Route("/companies", func(r chi.Router) {
			r.With(h.RequirePermission(rbac.PermCompaniesRead)).Get("/", h.ListCompanies)
			r.With(h.RequirePermission(rbac.PermCompaniesRead)).Get("/{companyID}", h.GetCompany)
			r.With(h.RequirePermission(rbac.PermCompaniesWrite)).Post("/", h.CreateCompany)
			r.With(h.RequirePermission(rbac.PermCompaniesWrite)).Put("/{companyID}", h.UpdateCompany)
			r.With(h.RequirePermission(rbac.PermCompaniesWrite)).Delete("/{companyID}", h.DeleteCompany)
		})

		// Team directory
		r.With(h.RequirePermission(rbac.PermUsersRead)).Get("/users", h.ListUsers)
		r.With(h.RequirePermission(rbac.PermUsersWrite)).Post("/users", h.SetUser)

		// Dashboard
		r.With(h.RequirePermission(rbac.PermAnalyticsRead)).Get("/analytics", h.GetAnalytics)

		// Portal settings
		r.With(h.RequirePermission(rbac.PermSettingsRead)).Get("/settings", h.GetSettings)
		r.With(h.RequirePermission(rbac.PermSettingsWrite)).Put("/settings", h.PutSettings)
	})

	return r
}

// HealthCheck returns the health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "careerport",
	})
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// decodeAndValidate decodes the JSON body into req and runs struct
// validation. A false return means the 422 response has been written.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		details := map[string]string{}
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				details[fieldErr.Field()] = fieldErr.Tag()
			}
		}
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": details,
		})
		return false
	}
	return true
}
