// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

const throwawayPasswordBytes = 32

// Invite adds the user owning req.Email to req.TenantID. Existing users
// become members straight away, unknown emails get an account with a
// throwaway password and a pending invitation holding the requested role.
func (s *Service) Invite(ctx context.Context, req *InviteRequest) (*InviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Invite")
	defer span.End()

	role, err := memberRole(ctx, req.TenantID, req.Role)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}

	var result *InviteResult

	err = s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		tenant, err := s.getTenant(ctx, req.TenantID)
		if err != nil {
			return err
		}

		// users are global, only their memberships belong to a tenant
		user, err := s.storage.GetUserWithMemberships(ctx, storage.AdminLookup(), security.Hash(email))
		switch {
		case errors.Is(err, storage.ErrNotFound):
			result, err = s.inviteNewUser(ctx, tenant, req, email, role)
			return err
		case err != nil:
			return err
		}

		if user.MemberOf(tenant.ID) != nil {
			return apperrors.Validation("user is already a member of this tenant")
		}

		pending, err := s.storage.GetPendingInvitation(ctx, storage.ForTenant(tenant.ID), user.ID)
		switch {
		case err == nil:
			result, err = s.resendInvitation(ctx, tenant, user, pending, email)
			return err
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		result, err = s.addExistingUser(ctx, tenant, user, email, role)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actor(ctx), "tenant.invite", req.TenantID)

	return result, nil
}

func (s *Service) inviteNewUser(ctx context.Context, tenant *types.Tenant, req *InviteRequest, email string, role types.Role) (*InviteResult, error) {
	password, err := security.RandomToken(throwawayPasswordBytes)
	if err != nil {
		return nil, err
	}

	user, err := s.identity.CreateUser(ctx, identity.NewUser{
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}

	record, err := s.identity.FindRoleByName(ctx, role)
	if err != nil {
		return nil, err
	}

	_, err = s.storage.CreateInvitation(ctx, &types.Invitation{
		TenantID: tenant.ID,
		UserID:   user.ID,
		RoleID:   record.ID,
		Role:     record.Name,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.identity.GenerateEmailConfirmationToken(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Invitation(ctx, recipientOf(user, email), tenant.TradeName, tenant.ID, token); err != nil {
		return nil, err
	}

	return &InviteResult{UserID: user.ID, Completed: false}, nil
}

// resendInvitation handles a second invite for a user that never completed
// the first one. The role stays the one recorded on the invitation.
func (s *Service) resendInvitation(ctx context.Context, tenant *types.Tenant, user *types.User, pending *types.Invitation, email string) (*InviteResult, error) {
	token, err := s.identity.GenerateEmailConfirmationToken(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Invitation(ctx, recipientOf(user, email), tenant.TradeName, tenant.ID, token); err != nil {
		return nil, err
	}

	s.logger.Debugf("resent invitation %s", pending.ID)

	return &InviteResult{UserID: user.ID, Completed: false}, nil
}

func (s *Service) addExistingUser(ctx context.Context, tenant *types.Tenant, user *types.User, email string, role types.Role) (*InviteResult, error) {
	record, err := s.identity.FindRoleByName(ctx, role)
	if err != nil {
		return nil, err
	}

	if _, err := s.addMember(ctx, tenant.ID, user.ID, record); err != nil {
		return nil, err
	}

	if err := s.identity.AssignRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	if err := s.notifier.MemberAdded(ctx, recipientOf(user, email), tenant.TradeName, tenant.ID); err != nil {
		return nil, err
	}

	return &InviteResult{UserID: user.ID, Completed: true}, nil
}

// ValidateInvite consumes the invitation link and hands back a token the
// invitee uses to choose a password. No membership is created here.
func (s *Service) ValidateInvite(ctx context.Context, userID, tenantID, token string) (*ValidateInviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ValidateInvite")
	defer span.End()

	if userID == "" || tenantID == "" || token == "" {
		return nil, apperrors.BadRequest("userId, tenantId and token are required")
	}

	var result *ValidateInviteResult

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		if _, err := s.pendingInvitation(ctx, tenantID, userID); err != nil {
			return err
		}

		user, err := s.identity.ConfirmEmail(ctx, userID, token)
		if err != nil {
			return err
		}

		email, err := s.identity.DecryptEmail(user)
		if err != nil {
			return err
		}

		reset, err := s.identity.GeneratePasswordResetToken(ctx, user)
		if err != nil {
			return err
		}

		result = &ValidateInviteResult{Email: email, SetPasswordToken: reset}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CompleteInvite sets the invitee's password, creates the membership with
// the invited role and signs them in.
func (s *Service) CompleteInvite(ctx context.Context, req *CompleteInviteRequest) (*types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CompleteInvite")
	defer span.End()

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.Validation("passwords do not match")
	}

	var pair *types.TokenPair

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		invitation, err := s.pendingInvitation(ctx, req.TenantID, req.UserID)
		if err != nil {
			return err
		}

		if err := s.identity.ResetPassword(ctx, req.UserID, req.SetPasswordToken, req.Password); err != nil {
			return err
		}

		record, err := s.identity.FindRoleByName(ctx, invitation.Role)
		if err != nil {
			return err
		}

		if _, err := s.addMember(ctx, req.TenantID, req.UserID, record); err != nil {
			return err
		}

		if err := s.identity.AssignRole(ctx, req.UserID, invitation.Role); err != nil {
			return err
		}

		if err := s.storage.AcceptInvitation(ctx, invitation.ID, s.now()); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.BadRequest("invitation is no longer pending")
			}
			return err
		}

		user, err := s.identity.FindByID(ctx, req.UserID)
		if err != nil {
			return err
		}

		pair, err = s.tokens.IssuePair(ctx, user, req.TenantID)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("user %s joined tenant %s", req.UserID, req.TenantID)

	return pair, nil
}

func (s *Service) pendingInvitation(ctx context.Context, tenantID, userID string) (*types.Invitation, error) {
	invitation, err := s.storage.GetPendingInvitation(ctx, storage.ForTenant(tenantID), userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.BadRequest("invalid invitation")
	}

	return invitation, err
}
