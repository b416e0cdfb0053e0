// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type signupState int

const (
	signupStart signupState = iota
	signupTenantCreated
	signupUserCreated
	signupConfirmationSent
	signupCommitted
	signupRolledBack
)

func (s signupState) String() string {
	switch s {
	case signupStart:
		return "START"
	case signupTenantCreated:
		return "TENANT_CREATED"
	case signupUserCreated:
		return "USER_CREATED"
	case signupConfirmationSent:
		return "CONFIRMATION_SENT"
	case signupCommitted:
		return "COMMITTED"
	case signupRolledBack:
		return "ROLLED_BACK"
	default:
		return fmt.Sprintf("signupState(%d)", int(s))
	}
}

var signupTransitions = map[signupState][]signupState{
	signupStart:            {signupTenantCreated, signupRolledBack},
	signupTenantCreated:    {signupUserCreated, signupRolledBack},
	signupUserCreated:      {signupConfirmationSent, signupRolledBack},
	signupConfirmationSent: {signupCommitted, signupRolledBack},
}

// signupSaga tracks one signup attempt. COMMITTED and ROLLED_BACK are final.
type signupSaga struct {
	state signupState
}

func (s *signupSaga) advance(to signupState) error {
	for _, allowed := range signupTransitions[s.state] {
		if allowed == to {
			s.state = to
			return nil
		}
	}

	return fmt.Errorf("invalid signup transition %s -> %s", s.state, to)
}

// Signup creates a PENDING tenant with its first user and queues the
// confirmation email. Nothing is persisted unless every step succeeds.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*SignupResult, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Signup")
	defer span.End()

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.Validation("passwords do not match")
	}

	name := strings.TrimSpace(req.TenantName)
	if name == "" {
		return nil, apperrors.Validation("tenant name is required")
	}

	var (
		saga   *signupSaga
		result *SignupResult
	)

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		// every retry starts over on a fresh transaction
		saga = &signupSaga{state: signupStart}

		exists, err := s.storage.TenantNameExists(ctx, storage.AdminLookup(), name)
		if err != nil {
			return err
		}

		if exists {
			return apperrors.Validation("tenant name is already in use")
		}

		tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{TradeName: name, Status: types.TenantPending})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return apperrors.Validation("tenant name is already in use")
		}

		if err != nil {
			return err
		}

		if err := saga.advance(signupTenantCreated); err != nil {
			return err
		}

		user, err := s.identity.CreateUser(ctx, identity.NewUser{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		})
		if err != nil {
			return err
		}

		if err := saga.advance(signupUserCreated); err != nil {
			return err
		}

		token, err := s.identity.GenerateSignupToken(ctx, user, tenant.ID)
		if err != nil {
			return err
		}

		err = s.notifier.SignupConfirmation(ctx, recipientOf(user, strings.TrimSpace(req.Email)), tenant.TradeName, tenant.ID, token)
		if err != nil {
			return err
		}

		if err := saga.advance(signupConfirmationSent); err != nil {
			return err
		}

		result = &SignupResult{TenantID: tenant.ID, UserID: user.ID}

		return nil
	})

	if err != nil {
		if saga != nil {
			s.logger.Debugf("signup rolled back at %s: %v", saga.state, err)
			_ = saga.advance(signupRolledBack)
		}
		return nil, err
	}

	if err := saga.advance(signupCommitted); err != nil {
		return nil, err
	}

	s.logger.Infof("tenant %s signed up, awaiting confirmation", result.TenantID)

	return result, nil
}
