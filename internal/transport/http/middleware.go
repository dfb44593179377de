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
	"time"

	"github.com/careerport/careerport/internal/auth"
	"github.com/careerport/careerport/internal/observability/logger"
	"github.com/careerport/careerport/internal/rbac"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Log request start
			slog.InfoContext(r.Context(), "http_request_start",
				logger.RequestID(middleware.GetReqID(r.Context())),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.RemoteAddr(r.RemoteAddr),
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				slog.InfoContext(r.Context(), "http_request_end",
					logger.RequestID(middleware.GetReqID(r.Context())),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.RemoteAddr(r.RemoteAddr),
					logger.UserAgent(r.UserAgent()),
					logger.StatusCode(ww.Status()),
					logger.Duration(time.Since(start).Milliseconds()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// MetricsMiddleware records request counts and durations.
func MetricsMiddleware(m *metricsRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.Int("status", ww.Status()),
			)
			m.requestCount.Add(r.Context(), 1, attrs)
			m.requestDuration.Record(r.Context(), float64(time.Since(start).Milliseconds()), attrs)
		})
	}
}

// RequirePermission enforces the full authorization pipeline: bearer
// extraction, token verification, claims decode, then an ALL-of check on
// the listed permissions. The validated claims land in the request
// context for the handler.
//
// The response status is decided by the failure kind alone, never by
// matching on error text: Unauthenticated maps to 401, InvalidClaims and
// Forbidden map to 403.
func (h *Handler) RequirePermission(required ...rbac.Permission) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := h.guard.Authorize(r.Context(), r.Header.Get("Authorization"), required...)
			if err != nil {
				h.respondAuthError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func (h *Handler) respondAuthError(w http.ResponseWriter, r *http.Request, err error) {
	kind := auth.KindOf(err)

	if h.metrics != nil && kind != 0 {
		h.metrics.authDenials.Add(r.Context(), 1,
			metric.WithAttributes(attribute.String("kind", kind.String())))
	}

	switch kind {
	case auth.KindUnauthenticated:
		respondError(w, http.StatusUnauthorized, "authentication required")
	case auth.KindInvalidClaims:
		respondError(w, http.StatusForbidden, "invalid role claims")
	case auth.KindForbidden:
		respondError(w, http.StatusForbidden, "insufficient permissions")
	default:
		slog.ErrorContext(r.Context(), "authorization pipeline failure", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
