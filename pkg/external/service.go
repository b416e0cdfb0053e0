// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

const (
	stateKeyPrefix = "ext_state:"
	stateTTL       = 10 * time.Minute
	randomBytes    = 32
)

type loginState struct {
	Provider string `json:"provider"`
	TenantID string `json:"tenantId,omitempty"`
	Nonce    string `json:"nonce"`
	Verifier string `json:"verifier"`
}

type Service struct {
	providers map[string]ProviderInterface
	cache     CacheInterface
	codes     *CodeBridge
	identity  IdentityInterface
	sessions  SessionInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) provider(name string) (ProviderInterface, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, apperrors.NotFound("external provider %s is not configured", name)
	}

	return p, nil
}

// Begin starts a login with provider into tenantID, empty for the user's
// default tenant, and returns the URL to send the browser to.
func (s *Service) Begin(ctx context.Context, provider, tenantID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "external.Service.Begin")
	defer span.End()

	p, err := s.provider(provider)
	if err != nil {
		return "", err
	}

	state, err := security.RandomToken(randomBytes)
	if err != nil {
		return "", err
	}

	nonce, err := security.RandomToken(randomBytes)
	if err != nil {
		return "", err
	}

	st := loginState{Provider: p.Name(), TenantID: tenantID, Nonce: nonce, Verifier: oauth2.GenerateVerifier()}
	if err := s.cache.SetJSON(ctx, stateKeyPrefix+security.Hash(state), st, stateTTL); err != nil {
		return "", apperrors.ServiceUnavailable(err, "login state store unavailable")
	}

	return p.AuthCodeURL(state, st.Nonce, st.Verifier), nil
}

// Callback finishes the provider round trip. Unknown verified emails get an
// account with a confirmed email and an unusable random password. The
// tenant and roles are resolved here and travel in the returned code,
// which is redeemed with Exchange.
func (s *Service) Callback(ctx context.Context, provider, state, code string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "external.Service.Callback")
	defer span.End()

	p, err := s.provider(provider)
	if err != nil {
		return "", err
	}

	if state == "" || code == "" {
		return "", apperrors.BadRequest("state and code are required")
	}

	st := new(loginState)

	found, err := s.cache.GetDelJSON(ctx, stateKeyPrefix+security.Hash(state), st)
	if err != nil {
		return "", apperrors.ServiceUnavailable(err, "login state store unavailable")
	}

	if !found || st.Provider != p.Name() {
		s.logger.Security().AuthnFailure("", "invalid external login state")
		return "", apperrors.Unauthorized("invalid or expired login state")
	}

	ident, err := p.Exchange(ctx, code, st.Nonce, st.Verifier)
	if err != nil {
		s.logger.Warnf("external login with %s failed: %v", provider, err)
		return "", apperrors.Unauthorized("external login failed")
	}

	if ident.Email == "" || !ident.EmailVerified {
		s.logger.Security().AuthnFailure("", "unverified external email")
		return "", apperrors.Unauthorized("provider did not return a verified email")
	}

	user, err := s.findOrCreate(ctx, ident)
	if err != nil {
		return "", err
	}

	if !user.Enabled {
		s.logger.Security().AuthnFailure(user.ID, "user disabled")
		return "", apperrors.Unauthorized("external login failed")
	}

	grant, err := s.sessions.Grant(ctx, user, st.TenantID)
	if err != nil {
		return "", err
	}

	return s.codes.Issue(ctx, LoginCode{
		UserID:      user.ID,
		TenantID:    grant.TenantID,
		Roles:       grant.Roles,
		Permissions: grant.Permissions,
		Provider:    p.Name(),
	})
}

func (s *Service) findOrCreate(ctx context.Context, ident *Identity) (*types.User, error) {
	user, err := s.identity.FindByEmail(ctx, ident.Email)
	if err == nil || !apperrors.Is(err, apperrors.KindNotFound) {
		return user, err
	}

	password, err := security.RandomToken(randomBytes)
	if err != nil {
		return nil, err
	}

	user, err = s.identity.CreateUser(ctx, identity.NewUser{
		Email:          ident.Email,
		FirstName:      ident.FirstName,
		LastName:       ident.LastName,
		Password:       password,
		EmailConfirmed: true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("created user %s from external login", user.ID)

	return user, nil
}

// Exchange redeems a one-time code for a token pair minted from the grant
// the code carries.
func (s *Service) Exchange(ctx context.Context, code string) (*types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "external.Service.Exchange")
	defer span.End()

	payload, err := s.codes.Redeem(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.identity.FindByID(ctx, payload.UserID)
	if apperrors.Is(err, apperrors.KindNotFound) || (err == nil && !user.Enabled) {
		s.logger.Security().AuthnFailure(payload.UserID, "user gone before code exchange")
		return nil, apperrors.Unauthorized("invalid or expired code")
	}

	if err != nil {
		return nil, err
	}

	return s.sessions.SignInWithGrant(ctx, user, payload.Grant())
}

func NewService(
	providers []ProviderInterface,
	cache CacheInterface,
	codes *CodeBridge,
	identity IdentityInterface,
	sessions SessionInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := &Service{
		providers: make(map[string]ProviderInterface, len(providers)),
		cache:     cache,
		codes:     codes,
		identity:  identity,
		sessions:  sessions,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}

	for _, p := range providers {
		s.providers[p.Name()] = p
	}

	return s
}
