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

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerport/careerport/internal/analytics"
	"github.com/careerport/careerport/internal/auth"
	"github.com/careerport/careerport/internal/companies"
	"github.com/careerport/careerport/internal/config"
	"github.com/careerport/careerport/internal/directory"
	"github.com/careerport/careerport/internal/identity"
	"github.com/careerport/careerport/internal/jobs"
	"github.com/careerport/careerport/internal/observability/logger"
	"github.com/careerport/careerport/internal/observability/metrics"
	"github.com/careerport/careerport/internal/observability/tracing"
	"github.com/careerport/careerport/internal/rbac"
	"github.com/careerport/careerport/internal/settings"
	"github.com/careerport/careerport/internal/store/postgres"
	transportHTTP "github.com/careerport/careerport/internal/transport/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.InitLogger(logger.Config{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})
	slog.Info("starting careerport admin portal")

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrate(cfg); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Initialize context
	ctx := context.Background()

	// Initialize tracer
	tracer, err := tracing.New(ctx, tracing.Config{
		Enabled:        cfg.Observability.OTELEnabled,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		SamplingRate:   1.0,
	})
	if err != nil {
		slog.Error("failed to initialize tracer", logger.Error(err))
	}
	defer tracer.Shutdown(ctx)

	// Initialize meter
	var portalMetrics *metrics.PortalMetrics
	meter, err := metrics.New(ctx, metrics.Config{
		Enabled: cfg.Observability.OTELEnabled,
	}, cfg.Observability.ServiceName)
	if err != nil {
		slog.Error("failed to initialize meter", logger.Error(err))
	} else {
		portalMetrics, err = metrics.NewPortalMetrics(meter)
		if err != nil {
			slog.Error("failed to create portal metrics", logger.Error(err))
		}
	}

	// Initialize database
	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		slog.Error("failed to connect to database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("connected to database")

	// Initialize repositories
	accountRepo := postgres.NewAccountRepository(db)
	claimsRepo := postgres.NewClaimsRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	userRepo := postgres.NewUserRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)

	// Initialize helpers
	passwordHasher := identity.NewPasswordHasher(
		cfg.Security.Argon2Memory,
		cfg.Security.Argon2Iterations,
		cfg.Security.Argon2Parallelism,
		cfg.Security.Argon2SaltLength,
		cfg.Security.Argon2KeyLength,
	)
	registry := rbac.NewRegistry()

	// Initialize services
	identityService, err := identity.NewService(
		accountRepo,
		claimsRepo,
		passwordHasher,
		cfg.Identity.Issuer,
		cfg.Identity.TokenTTL,
	)
	if err != nil {
		slog.Error("failed to initialize identity service", logger.Error(err))
		os.Exit(1)
	}

	jobService := jobs.NewService(jobRepo)
	companyService := companies.NewService(companyRepo)
	directoryService := directory.NewService(userRepo, identityService, registry)
	analyticsService := analytics.NewService(jobRepo, companyRepo, userRepo)
	settingsService := settings.NewService(settingsRepo)
	guard := auth.NewGuard(identityService, registry)

	// Seed the initial super admin when configured and absent
	if err := bootstrapAdmin(ctx, cfg, identityService, directoryService); err != nil {
		slog.Error("bootstrap failed", logger.Error(err))
		os.Exit(1)
	}

	// Initialize HTTP handler
	handler := transportHTTP.NewHandler(
		identityService,
		jobService,
		companyService,
		directoryService,
		analyticsService,
		settingsService,
		guard,
		portalMetrics,
	)

	// Create router
	router := transportHTTP.NewRouter(handler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		slog.Info("starting http server", logger.Component("server"), logger.Operation("listen"))
		slog.Info(fmt.Sprintf("listening on %s", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", logger.Error(err))
	}

	slog.Info("server stopped")
}

// bootstrapAdmin provisions the configured super admin account on first
// start. An already-provisioned account is left untouched.
func bootstrapAdmin(
	ctx context.Context,
	cfg *config.Config,
	identityService *identity.Service,
	directoryService *directory.Service,
) error {
	if cfg.Bootstrap.AdminEmail == "" {
		return nil
	}

	uid, err := identityService.ProvisionAccount(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
	if err != nil {
		if errors.Is(err, identity.ErrAccountAlreadyExists) {
			slog.Info("bootstrap admin already provisioned", logger.Email(cfg.Bootstrap.AdminEmail))
			return nil
		}
		return fmt.Errorf("failed to provision bootstrap admin: %w", err)
	}

	if _, err := directoryService.Set(ctx, directory.User{
		ID:          uid,
		Email:       cfg.Bootstrap.AdminEmail,
		DisplayName: cfg.Bootstrap.AdminName,
		Role:        rbac.RoleSuperAdmin,
	}); err != nil {
		return fmt.Errorf("failed to assign bootstrap admin role: %w", err)
	}

	slog.Info("bootstrap admin provisioned",
		logger.UserID(uid),
		logger.Email(cfg.Bootstrap.AdminEmail),
		logger.Role(string(rbac.RoleSuperAdmin)),
	)
	return nil
}

func runMigrate(cfg *config.Config) error {
	ctx := context.Background()
	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Applying initial schema...")
	if err := db.Migrate(ctx, postgres.InitialSchema); err != nil {
		return err
	}
	fmt.Println("Migration successful.")
	return nil
}
