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

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Config holds metrics configuration
type Config struct {
	Enabled bool
}

// Meter wraps OpenTelemetry meter
type Meter struct {
	meter metric.Meter
}

// New creates a new meter instance
func New(ctx context.Context, cfg Config, serviceName string) (*Meter, error) {
	if !cfg.Enabled {
		return &Meter{
			meter: otel.Meter("noop"),
		}, nil
	}

	// Get meter from global meter provider
	// In production, configure a proper meter provider with exporters
	meter := otel.Meter(serviceName)

	return &Meter{
		meter: meter,
	}, nil
}

// GetMeter returns the underlying meter
func (m *Meter) GetMeter() metric.Meter {
	return m.meter
}

// CreateCounter creates a new counter metric
func (m *Meter) CreateCounter(name, description string) (metric.Int64Counter, error) {
	counter, err := m.meter.Int64Counter(
		name,
		metric.WithDescription(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return counter, nil
}

// CreateHistogram creates a new histogram metric
func (m *Meter) CreateHistogram(name, description, unit string) (metric.Float64Histogram, error) {
	histogram, err := m.meter.Float64Histogram(
		name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", name, err)
	}
	return histogram, nil
}

// CreateUpDownCounter creates a new up/down counter metric
func (m *Meter) CreateUpDownCounter(name, description string) (metric.Int64UpDownCounter, error) {
	counter, err := m.meter.Int64UpDownCounter(
		name,
		metric.WithDescription(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create up/down counter %s: %w", name, err)
	}
	return counter, nil
}

// PortalMetrics bundles the instruments the HTTP layer records.
type PortalMetrics struct {
	RequestCount     metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	AuthDenials      metric.Int64Counter
	LoginFailures    metric.Int64Counter
	ClaimsSyncErrors metric.Int64Counter
}

// NewPortalMetrics creates the portal's instrument set.
func NewPortalMetrics(m *Meter) (*PortalMetrics, error) {
	requestCount, err := m.CreateCounter("http_requests_total", "Total HTTP requests handled")
	if err != nil {
		return nil, err
	}
	requestDuration, err := m.CreateHistogram("http_request_duration", "HTTP request duration", "ms")
	if err != nil {
		return nil, err
	}
	authDenials, err := m.CreateCounter("authz_denials_total", "Requests rejected by the permission guard")
	if err != nil {
		return nil, err
	}
	loginFailures, err := m.CreateCounter("login_failures_total", "Failed login attempts")
	if err != nil {
		return nil, err
	}
	claimsSyncErrors, err := m.CreateCounter("claims_sync_errors_total", "Failed role claim synchronizations")
	if err != nil {
		return nil, err
	}
	return &PortalMetrics{
		RequestCount:     requestCount,
		RequestDuration:  requestDuration,
		AuthDenials:      authDenials,
		LoginFailures:    loginFailures,
		ClaimsSyncErrors: claimsSyncErrors,
	}, nil
}
