// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/notifications"
)

var errInvalidCredentials = apperrors.Unauthorized("invalid email or password")

type Service struct {
	identity IdentityInterface
	storage  StorageInterface
	notifier NotifierInterface
	tokens   TokensInterface
	tx       TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// Login checks the password and signs the user into req.TenantID, or into
// their oldest enabled membership when no tenant is requested. Users
// without any membership get a token without tenant claim.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Login")
	defer span.End()

	user, err := s.identity.FindByEmail(ctx, req.Email)
	if apperrors.Is(err, apperrors.KindNotFound) {
		s.logger.Security().AuthnFailure("", "unknown email")
		return nil, errInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if !s.identity.CheckPassword(ctx, user, req.Password) {
		s.logger.Security().AuthnFailure(user.ID, "wrong password")
		return nil, errInvalidCredentials
	}

	if !user.Enabled {
		s.logger.Security().AuthnFailure(user.ID, "user disabled")
		return nil, errInvalidCredentials
	}

	if !user.EmailConfirmed {
		return nil, apperrors.Forbidden("email is not confirmed")
	}

	return s.SignIn(ctx, user, req.TenantID)
}

// SignIn issues a token pair for an already authenticated user.
func (s *Service) SignIn(ctx context.Context, user *types.User, tenantID string) (*types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SignIn")
	defer span.End()

	tenantID, err := s.loginTenant(ctx, user.ID, tenantID)
	if err != nil {
		s.logger.Security().AuthnFailure(user.ID, "no access to tenant")
		return nil, err
	}

	pair, err := s.tokens.IssuePair(ctx, user, tenantID)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(user.ID)

	return pair, nil
}

// Grant resolves the tenant and the roles a sign in of user would get,
// without issuing any token.
func (s *Service) Grant(ctx context.Context, user *types.User, tenantID string) (*types.SessionGrant, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Grant")
	defer span.End()

	tenantID, err := s.loginTenant(ctx, user.ID, tenantID)
	if err != nil {
		s.logger.Security().AuthnFailure(user.ID, "no access to tenant")
		return nil, err
	}

	return s.tokens.Grant(ctx, user.ID, tenantID)
}

// SignInWithGrant issues a token pair from a grant resolved by Grant.
func (s *Service) SignInWithGrant(ctx context.Context, user *types.User, grant *types.SessionGrant) (*types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SignInWithGrant")
	defer span.End()

	pair, err := s.tokens.IssueGrantedPair(ctx, user, grant)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(user.ID)

	return pair, nil
}

func (s *Service) loginTenant(ctx context.Context, userID, requested string) (string, error) {
	var membership *types.Membership

	if requested != "" {
		m, err := s.storage.GetMembership(ctx, storage.ForTenant(requested), userID)
		if errors.Is(err, storage.ErrNotFound) || (err == nil && !m.Enabled) {
			return "", apperrors.Forbidden("user is not a member of this tenant")
		}

		if err != nil {
			return "", err
		}

		membership = m
	} else {
		memberships, err := s.storage.ListMembershipsByUser(ctx, storage.AdminLookup(), userID)
		if err != nil {
			return "", err
		}

		for _, m := range memberships {
			if m.Enabled {
				membership = m
				break
			}
		}

		if membership == nil {
			return "", nil
		}
	}

	tenant, err := s.storage.GetTenantByID(ctx, storage.ForTenant(membership.TenantID), membership.TenantID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", apperrors.Forbidden("tenant is not available")
	}

	if err != nil {
		return "", err
	}

	if tenant.Status != types.TenantActive || !tenant.Enabled {
		return "", apperrors.Forbidden("tenant is %s", strings.ToLower(string(tenant.Status)))
	}

	return tenant.ID, nil
}

// RegisterUser creates a user outside of any tenant and queues the
// confirmation email.
func (s *Service) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*RegisterUserResult, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.RegisterUser")
	defer span.End()

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.Validation("passwords do not match")
	}

	var result *RegisterUserResult

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		user, err := s.identity.CreateUser(ctx, identity.NewUser{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		})
		if err != nil {
			return err
		}

		token, err := s.identity.GenerateEmailConfirmationToken(ctx, user)
		if err != nil {
			return err
		}

		recipient := notifications.Recipient{UserID: user.ID, Email: strings.TrimSpace(req.Email), Name: user.FirstName}
		if err := s.notifier.EmailConfirmation(ctx, recipient, token); err != nil {
			return err
		}

		result = &RegisterUserResult{UserID: user.ID}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) ConfirmEmail(ctx context.Context, userID, token string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.ConfirmEmail")
	defer span.End()

	if userID == "" || token == "" {
		return apperrors.BadRequest("userId and token are required")
	}

	_, err := s.identity.ConfirmEmail(ctx, userID, token)

	return err
}

// ForgotPassword queues a reset link for confirmed accounts. It succeeds
// silently for unknown emails so callers cannot enumerate accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.ForgotPassword")
	defer span.End()

	user, err := s.identity.FindByEmail(ctx, email)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	if !user.EmailConfirmed || !user.Enabled {
		s.logger.Debugf("skipping password reset for user %s", user.ID)
		return nil
	}

	token, err := s.identity.GeneratePasswordResetToken(ctx, user)
	if err != nil {
		return err
	}

	recipient := notifications.Recipient{UserID: user.ID, Email: strings.TrimSpace(email), Name: user.FirstName}

	return s.notifier.PasswordReset(ctx, recipient, token)
}

// ResetPassword sets a new password and signs the user out everywhere.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.ResetPassword")
	defer span.End()

	return s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		if err := s.identity.ResetPassword(ctx, req.UserID, req.Token, req.NewPassword); err != nil {
			return err
		}

		return s.tokens.RevokeAllForUser(ctx, req.UserID)
	})
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Refresh")
	defer span.End()

	return s.tokens.Refresh(ctx, refreshToken)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.Logout")
	defer span.End()

	return s.tokens.Revoke(ctx, refreshToken)
}

func NewService(
	identity IdentityInterface,
	storage StorageInterface,
	notifier NotifierInterface,
	tokens TokensInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		identity: identity,
		storage:  storage,
		notifier: notifier,
		tokens:   tokens,
		tx:       tx,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
