// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	TxSerializable   bool          `envconfig:"tx_serializable" default:"false"`
	TxMaxRetries     uint64        `envconfig:"tx_max_retries" default:"3"`
	TxRetryBaseDelay time.Duration `envconfig:"tx_retry_base_delay" default:"50ms"`
	TxRetryMaxDelay  time.Duration `envconfig:"tx_retry_max_delay" default:"1s"`

	DefaultTenantID string `envconfig:"default_tenant_id"`

	JWTSecret            string        `envconfig:"jwt_secret" required:"true"`
	JWTIssuer            string        `envconfig:"jwt_issuer" default:"tenant-identity-service"`
	JWTAudience          string        `envconfig:"jwt_audience" default:"tenant-identity-service"`
	JWTExpirationMinutes int           `envconfig:"jwt_expiration_minutes" default:"60"`
	RefreshTokenLifetime time.Duration `envconfig:"refresh_token_lifetime" default:"720h"`

	// IdentityTokenSecret signs email confirmation and password reset tokens
	IdentityTokenSecret   string        `envconfig:"identity_token_secret" required:"true"`
	IdentityTokenLifetime time.Duration `envconfig:"identity_token_lifetime" default:"24h"`
	BcryptCost            int           `envconfig:"bcrypt_cost" default:"12"`

	EncryptionKey string `envconfig:"encryption_key" required:"true"`
	EncryptionIV  string `envconfig:"encryption_iv" required:"true"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	ExternalCodeTTL time.Duration `envconfig:"external_code_ttl" default:"60s"`

	ResendAPIKey  string `envconfig:"resend_api_key"`
	ResendBaseURL string `envconfig:"resend_base_url" default:"https://api.resend.com"`
	MailFrom      string `envconfig:"mail_from" default:"no-reply@example.com"`

	FrontendBaseURL        string `envconfig:"frontend_base_url" default:"http://localhost:3000"`
	ConfirmSignupPath      string `envconfig:"confirm_signup_path" default:"/confirm-signup"`
	ConfirmEmailPath       string `envconfig:"confirm_email_path" default:"/confirm-email"`
	AcceptInvitePath       string `envconfig:"accept_invite_path" default:"/accept-invite"`
	ResetPasswordPath      string `envconfig:"reset_password_path" default:"/reset-password"`
	ExternalLoginReturnURL string `envconfig:"external_login_return_url" default:"http://localhost:3000/external-login"`

	OutboxEnabled      bool          `envconfig:"outbox_enabled" default:"true"`
	OutboxPollInterval time.Duration `envconfig:"outbox_poll_interval" default:"2s"`
	OutboxBatchSize    uint64        `envconfig:"outbox_batch_size" default:"20"`
	OutboxLeaseTTL     time.Duration `envconfig:"outbox_lease_ttl" default:"30s"`
	OutboxMaxAttempts  int           `envconfig:"outbox_max_attempts" default:"8"`
	OutboxRetryBase    time.Duration `envconfig:"outbox_retry_base" default:"5s"`
	OutboxRetryMax     time.Duration `envconfig:"outbox_retry_max" default:"10m"`

	GoogleIssuer       string `envconfig:"google_issuer" default:"https://accounts.google.com"`
	GoogleClientID     string `envconfig:"google_client_id"`
	GoogleClientSecret string `envconfig:"google_client_secret"`
	GoogleRedirectURL  string `envconfig:"google_redirect_url"`
}
