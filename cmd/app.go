// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/tenant-identity-service/internal/authorization"
	"github.com/canonical/tenant-identity-service/internal/cache"
	"github.com/canonical/tenant-identity-service/internal/config"
	"github.com/canonical/tenant-identity-service/internal/db"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/mail"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/monitoring/prometheus"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/pkg/account"
	"github.com/canonical/tenant-identity-service/pkg/authentication"
	"github.com/canonical/tenant-identity-service/pkg/external"
	"github.com/canonical/tenant-identity-service/pkg/notifications"
	"github.com/canonical/tenant-identity-service/pkg/tenant"
	"github.com/canonical/tenant-identity-service/pkg/tokens"
)

// app holds the wired dependency graph shared by the commands that talk
// to the database directly.
type app struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	monitor monitoring.MonitorInterface
	tracer  *tracing.Tracer

	db       *db.DBClient
	identity *identity.Store
	sender   *mail.Client
	cipher   *security.Cipher
	storage  *storage.Storage

	tenants  *tenant.Service
	accounts *account.Service
	auth     *authentication.Middleware
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

func newApp(specs *config.EnvSpec) (*app, error) {
	a := new(app)
	a.specs = specs

	a.logger = logging.NewLogger(specs.LogLevel)
	a.monitor = prometheus.NewMonitor("tenant-identity-service", a.logger)
	a.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, a.logger))

	isolation := sql.LevelReadCommitted
	if specs.TxSerializable {
		isolation = sql.LevelSerializable
	}

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
			Isolation:       isolation,
			Retry: db.RetryConfig{
				MaxRetries: specs.TxMaxRetries,
				BaseDelay:  specs.TxRetryBaseDelay,
				MaxDelay:   specs.TxRetryMaxDelay,
			},
		},
		a.tracer,
		a.monitor,
		a.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	a.db = dbClient

	a.cipher, err = security.NewCipher(specs.EncryptionKey, specs.EncryptionIV)
	if err != nil {
		dbClient.Close()
		return nil, fmt.Errorf("invalid encryption settings: %w", err)
	}

	a.storage = storage.NewStorage(dbClient, a.tracer, a.monitor, a.logger)

	a.identity = identity.NewStore(
		a.storage,
		a.cipher,
		identity.Config{
			TokenSecret: []byte(specs.IdentityTokenSecret),
			TokenTTL:    specs.IdentityTokenLifetime,
			BcryptCost:  specs.BcryptCost,
		},
		a.tracer,
		a.monitor,
		a.logger,
	)

	issuer, err := tokens.NewIssuer(
		tokens.IssuerConfig{
			Secret:            []byte(specs.JWTSecret),
			Issuer:            specs.JWTIssuer,
			Audience:          specs.JWTAudience,
			ExpirationMinutes: specs.JWTExpirationMinutes,
		},
		a.identity,
	)
	if err != nil {
		dbClient.Close()
		return nil, fmt.Errorf("invalid jwt settings: %w", err)
	}

	refresh := tokens.NewRefreshManager(a.storage, a.identity, issuer, dbClient, specs.RefreshTokenLifetime, a.tracer, a.monitor, a.logger)

	notifier := notifications.NewNotifier(
		a.storage,
		a.cipher,
		notifications.Links{
			BaseURL:           specs.FrontendBaseURL,
			ConfirmSignupPath: specs.ConfirmSignupPath,
			ConfirmEmailPath:  specs.ConfirmEmailPath,
			AcceptInvitePath:  specs.AcceptInvitePath,
			ResetPasswordPath: specs.ResetPasswordPath,
		},
		a.tracer,
		a.monitor,
		a.logger,
	)

	a.sender = mail.NewClient(
		mail.Config{BaseURL: specs.ResendBaseURL, APIKey: specs.ResendAPIKey, From: specs.MailFrom},
		a.tracer,
		a.monitor,
		a.logger,
	)

	a.tenants = tenant.NewService(a.storage, a.identity, notifier, refresh, dbClient, a.tracer, a.monitor, a.logger)
	a.accounts = account.NewService(a.identity, a.storage, notifier, refresh, dbClient, a.tracer, a.monitor, a.logger)

	a.auth = authentication.NewMiddleware(
		authentication.NewJWTVerifier(issuer, a.tracer, a.monitor, a.logger),
		authorization.NewAuthorizer(a.tracer, a.monitor, a.logger),
		a.tracer,
		a.monitor,
		a.logger,
	)

	return a, nil
}

// outboxWorker builds the delivery worker draining the notification outbox.
func (a *app) outboxWorker() *notifications.Worker {
	return notifications.NewWorker(
		a.storage,
		a.sender,
		a.cipher,
		notifications.WorkerConfig{
			PollInterval:   a.specs.OutboxPollInterval,
			BatchSize:      a.specs.OutboxBatchSize,
			LeaseTTL:       a.specs.OutboxLeaseTTL,
			MaxAttempts:    a.specs.OutboxMaxAttempts,
			RetryBaseDelay: a.specs.OutboxRetryBase,
			RetryMaxDelay:  a.specs.OutboxRetryMax,
		},
		a.tracer,
		a.monitor,
		a.logger,
	)
}

// externalLogin wires the redis backed code bridge and the configured OIDC
// providers. Providers whose discovery fails are skipped.
func (a *app) externalLogin(ctx context.Context) (*external.Service, *cache.Cache) {
	redisClient := cache.NewClient(cache.Config{
		Addr:     a.specs.RedisAddr,
		Password: a.specs.RedisPassword,
		DB:       a.specs.RedisDB,
	})
	codeCache := cache.NewCache(redisClient, a.tracer, a.monitor, a.logger)

	providers := make([]external.ProviderInterface, 0, 1)

	if a.specs.GoogleClientID != "" {
		google, err := external.NewProvider(ctx, external.ProviderConfig{
			Name:         "google",
			Issuer:       a.specs.GoogleIssuer,
			ClientID:     a.specs.GoogleClientID,
			ClientSecret: a.specs.GoogleClientSecret,
			RedirectURL:  a.specs.GoogleRedirectURL,
		})
		if err != nil {
			a.logger.Errorf("google login disabled: %v", err)
		} else {
			providers = append(providers, google)
		}
	}

	service := external.NewService(
		providers,
		codeCache,
		external.NewCodeBridge(codeCache, a.specs.ExternalCodeTTL),
		a.identity,
		a.accounts,
		a.tracer,
		a.monitor,
		a.logger,
	)

	return service, codeCache
}

func (a *app) Close() {
	a.db.Close()
	a.logger.Sync()
}
