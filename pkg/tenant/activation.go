// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

// Activate confirms the owner's email with the signup token issued for
// tenantID, makes them Owner and moves the tenant to ACTIVE. Only a PENDING
// tenant without members can be activated. The token is single use, a
// replay fails with BadRequest and changes nothing.
func (s *Service) Activate(ctx context.Context, userID, tenantID, token string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Activate")
	defer span.End()

	if userID == "" || tenantID == "" || token == "" {
		return nil, apperrors.BadRequest("userId, tenantId and token are required")
	}

	var activated *types.Tenant

	err := s.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		if _, err := s.identity.ConfirmSignup(ctx, userID, tenantID, token); err != nil {
			return err
		}

		tenant, err := s.getTenant(ctx, tenantID)
		if err != nil {
			return err
		}

		if tenant.Status != types.TenantPending {
			return apperrors.Validation("tenant is not pending activation")
		}

		hasMembers, err := s.storage.TenantHasMembers(ctx, storage.ForTenant(tenantID))
		if err != nil {
			return err
		}

		if hasMembers {
			return apperrors.Validation("tenant already has members")
		}

		owner, err := s.identity.FindRoleByName(ctx, types.RoleOwner)
		if err != nil {
			return err
		}

		if _, err := s.addMember(ctx, tenantID, userID, owner); err != nil {
			return err
		}

		if err := s.identity.AssignRole(ctx, userID, types.RoleOwner); err != nil {
			return err
		}

		if err := s.storage.UpdateTenantStatus(ctx, tenant.ID, types.TenantActive); err != nil {
			return err
		}
		tenant.Status = types.TenantActive

		activated = tenant

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("tenant %s activated by user %s", tenantID, userID)

	return activated, nil
}
