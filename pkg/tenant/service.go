// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/authentication"
	"github.com/canonical/tenant-identity-service/pkg/notifications"
)

type Service struct {
	storage  StorageInterface
	identity IdentityInterface
	notifier NotifierInterface
	tokens   TokenPairIssuerInterface
	tx       TxRunnerInterface
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	identity IdentityInterface,
	notifier NotifierInterface,
	tokens TokenPairIssuerInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		identity: identity,
		notifier: notifier,
		tokens:   tokens,
		tx:       tx,
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// memberRole resolves the role requested for a member of tenantID.
// Platform roles cannot be granted through a tenant, Owner only by an Owner
// of the same tenant or a platform role.
func memberRole(ctx context.Context, tenantID, raw string) (types.Role, error) {
	if strings.TrimSpace(raw) == "" {
		return types.DefaultInviteRole, nil
	}

	role, ok := types.ParseRole(raw)
	if !ok {
		return "", apperrors.Validation("unknown role %q", raw)
	}

	if role == types.RoleSuperAdmin || role == types.RoleDeveloper {
		return "", apperrors.Validation("role %s cannot be granted in a tenant", role)
	}

	if role == types.RoleOwner && !canGrantOwner(ctx, tenantID) {
		return "", apperrors.Forbidden("role %s can only be granted by an owner", role)
	}

	return role, nil
}

func canGrantOwner(ctx context.Context, tenantID string) bool {
	p, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return false
	}

	for _, r := range p.Roles {
		switch types.Role(r) {
		case types.RoleSuperAdmin, types.RoleDeveloper:
			return true
		case types.RoleOwner:
			if p.TenantID == tenantID {
				return true
			}
		}
	}

	return false
}

func (s *Service) addMember(ctx context.Context, tenantID, userID string, role *types.RoleRecord) (*types.Membership, error) {
	m, err := s.storage.CreateMembership(ctx, &types.Membership{
		UserID:   userID,
		TenantID: tenantID,
		RoleID:   role.ID,
		Role:     role.Name,
	})

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return nil, apperrors.Validation("user is already a member of this tenant")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, apperrors.NotFound("tenant or user not found")
	}

	return m, err
}

func (s *Service) getTenant(ctx context.Context, tenantID string) (*types.Tenant, error) {
	t, err := s.storage.GetTenantByID(ctx, storage.ForTenant(tenantID), tenantID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NotFound("tenant not found")
	}

	return t, err
}

func actor(ctx context.Context) string {
	userID, _ := authentication.GetUserID(ctx)
	return userID
}

// Register creates an ACTIVE tenant without owner, for platform operators.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Register")
	defer span.End()

	name := strings.TrimSpace(req.TradeName)
	if name == "" {
		return nil, apperrors.Validation("tenant name is required")
	}

	var created *types.Tenant

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		exists, err := s.storage.TenantNameExists(ctx, storage.AdminLookup(), name)
		if err != nil {
			return err
		}

		if exists {
			return apperrors.Validation("tenant name is already in use")
		}

		created, err = s.storage.CreateTenant(ctx, &types.Tenant{
			TradeName: name,
			LegalName: strings.TrimSpace(req.LegalName),
			Document:  strings.TrimSpace(req.Document),
			Status:    types.TenantActive,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return apperrors.Validation("tenant name is already in use")
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actor(ctx), "tenant.register", created.ID)

	return created, nil
}

// AssignUser adds an existing user to tenantID.
func (s *Service) AssignUser(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AssignUser")
	defer span.End()

	role, err := memberRole(ctx, tenantID, string(role))
	if err != nil {
		return nil, err
	}

	var membership *types.Membership

	err = s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		if _, err := s.getTenant(ctx, tenantID); err != nil {
			return err
		}

		if _, err := s.identity.FindByID(ctx, userID); err != nil {
			return err
		}

		_, err := s.storage.GetMembership(ctx, storage.ForTenant(tenantID), userID)
		switch {
		case err == nil:
			return apperrors.Validation("user is already a member of this tenant")
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		record, err := s.identity.FindRoleByName(ctx, role)
		if err != nil {
			return err
		}

		membership, err = s.addMember(ctx, tenantID, userID, record)
		if err != nil {
			return err
		}

		return s.identity.AssignRole(ctx, userID, role)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actor(ctx), "tenant.assign_user", tenantID)

	return membership, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateStatus")
	defer span.End()

	status = types.TenantStatus(strings.ToUpper(strings.TrimSpace(string(status))))
	// PENDING is only reachable through signup
	if !status.Valid() || status == types.TenantPending {
		return nil, apperrors.Validation("invalid tenant status %q", status)
	}

	var updated *types.Tenant

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		t, err := s.getTenant(ctx, id)
		if err != nil {
			return err
		}

		if err := s.storage.UpdateTenantStatus(ctx, id, status); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.NotFound("tenant not found")
			}
			return err
		}

		t.Status = status
		updated = t

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actor(ctx), "tenant.status."+strings.ToLower(string(status)), id)

	return updated, nil
}

func (s *Service) ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx, storage.AdminLookup(), page, size)
}

func (s *Service) ListMembers(ctx context.Context, tenantID string, page, size int64) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByTenant(ctx, storage.ForTenant(tenantID), page, size)
}

func recipientOf(user *types.User, email string) notifications.Recipient {
	return notifications.Recipient{UserID: user.ID, Email: email, Name: user.FirstName}
}
