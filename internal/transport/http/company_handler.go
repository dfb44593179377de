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

	"github.com/careerport/careerport/internal/companies"
	"github.com/careerport/careerport/internal/observability/logger"
	"github.com/go-chi/chi/v5"
)

// CompanyRequest represents a company profile payload
type CompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url"`
	Industry    string `json:"industry"`
	Size        string `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
}

func (req *CompanyRequest) draft() companies.Draft {
	return companies.Draft{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		Size:        companies.Size(req.Size),
	}
}

// ListCompanies returns all profiles.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	list, err := h.companyService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list companies", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"companies": list})
}

// GetCompany returns one profile.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyService.Get(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, "company not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to get company", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get company")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// CreateCompany stores a new profile.
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	company, err := h.companyService.Create(r.Context(), req.draft())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create company", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create company")
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

// UpdateCompany overwrites a profile's editable fields.
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	company, err := h.companyService.Update(r.Context(), chi.URLParam(r, "companyID"), req.draft())
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, "company not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to update company",
			logger.Error(err),
			logger.CompanyID(chi.URLParam(r, "companyID")),
		)
		respondError(w, http.StatusInternalServerError, "failed to update company")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// DeleteCompany removes a profile.
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.Delete(r.Context(), chi.URLParam(r, "companyID")); err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, "company not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to delete company",
			logger.Error(err),
			logger.CompanyID(chi.URLParam(r, "companyID")),
		)
		respondError(w, http.StatusInternalServerError, "failed to delete company")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "company deleted"})
}
