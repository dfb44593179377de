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

package settings

import (
	"context"
	"errors"
	"time"
)

// Domain errors
var (
	ErrSettingsNotFound = errors.New("portal settings not found")
)

// Settings is the single portal-wide configuration document.
type Settings struct {
	SiteName     string    `json:"siteName"`
	SupportEmail string    `json:"supportEmail"`
	JobsPerPage  int       `json:"jobsPerPage"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UpdatedBy    string    `json:"updatedBy,omitempty"`
}

// Repository persists the settings document.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Put(ctx context.Context, settings *Settings) error
}

// Service reads and writes the portal settings document.
type Service struct {
	repo Repository
}

// NewService creates a settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Defaults returned when no document has been written yet.
var defaults = Settings{
	SiteName:    "CareerPort",
	JobsPerPage: 20,
}

// Get returns the current settings, falling back to defaults before the
// first write.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			d := defaults
			return &d, nil
		}
		return nil, err
	}
	return current, nil
}

// Put overwrites the settings document. updatedBy is the authenticated
// uid of the writer.
func (s *Service) Put(ctx context.Context, settings Settings, updatedBy string) (*Settings, error) {
	settings.UpdatedAt = time.Now()
	settings.UpdatedBy = updatedBy
	if err := s.repo.Put(ctx, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
