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

package companies

import (
	"context"
	"errors"
	"time"
)

// Domain errors
var (
	ErrCompanyNotFound = errors.New("company not found")
)

// Size is a closed head-count band.
type Size string

const (
	Size1to10     Size = "1-10"
	Size11to50    Size = "11-50"
	Size51to200   Size = "51-200"
	Size201to500  Size = "201-500"
	Size501to1000 Size = "501-1000"
	SizeOver1000  Size = "1000+"
)

// Company is an employer profile on the careers portal.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Size        Size      `json:"size,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository persists company profiles.
type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Company, error)
	Count(ctx context.Context) (int64, error)
	Industries(ctx context.Context) ([]string, error)
}
