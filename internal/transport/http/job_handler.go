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
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerport/careerport/internal/jobs"
	"github.com/careerport/careerport/internal/observability/logger"
	"github.com/go-chi/chi/v5"
)

// JobRequest represents a job posting payload. CreatedBy is never part
// of it; the handler takes the creator from the validated claims.
type JobRequest struct {
	Title           string            `json:"title" validate:"required"`
	Description     string            `json:"description"`
	Status          string            `json:"status" validate:"omitempty,oneof=draft published archived"`
	CompanyID       string            `json:"companyId" validate:"required"`
	Location        string            `json:"location"`
	EmploymentType  string            `json:"employmentType" validate:"omitempty,oneof=full_time part_time contract internship"`
	ExperienceLevel string            `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior lead"`
	SalaryRange     *jobs.SalaryRange `json:"salaryRange"`
	Tags            []string          `json:"tags"`
}

func (req *JobRequest) draft() jobs.Draft {
	return jobs.Draft{
		Title:           req.Title,
		Description:     req.Description,
		Status:          jobs.Status(req.Status),
		CompanyID:       req.CompanyID,
		Location:        req.Location,
		EmploymentType:  jobs.EmploymentType(req.EmploymentType),
		ExperienceLevel: jobs.ExperienceLevel(req.ExperienceLevel),
		SalaryRange:     req.SalaryRange,
		Tags:            req.Tags,
	}
}

// ListJobs returns all postings.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	list, err := h.jobService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list jobs", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"jobs": list})
}

// GetJob returns one posting.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Get(r.Context(), chi.URLParam(r, "jobID"))
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, "job not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to get job", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// CreateJob stores a new posting attributed to the caller.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	claims := GetClaims(r.Context())
	job, err := h.jobService.Create(r.Context(), req.draft(), claims.UID)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create job",
			logger.Error(err),
			logger.UserID(claims.UID),
		)
		respondError(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

// UpdateJob overwrites a posting's editable fields.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	job, err := h.jobService.Update(r.Context(), chi.URLParam(r, "jobID"), req.draft())
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, "job not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to update job",
			logger.Error(err),
			logger.JobID(chi.URLParam(r, "jobID")),
		)
		respondError(w, http.StatusInternalServerError, "failed to update job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// DeleteJob removes a posting.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Delete(r.Context(), chi.URLParam(r, "jobID")); err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, "job not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to delete job",
			logger.Error(err),
			logger.JobID(chi.URLParam(r, "jobID")),
		)
		respondError(w, http.StatusInternalServerError, "failed to delete job")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "job deleted"})
}
