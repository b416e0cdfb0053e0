// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/authorization"
	httptypes "github.com/canonical/tenant-identity-service/internal/http/types"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/tenancy"
	"github.com/canonical/tenant-identity-service/internal/types"
)

// GuardInterface is the subset of the authentication middleware the
// tenant routes rely on.
type GuardInterface interface {
	RequirePermission(perm string) func(http.Handler) http.Handler
	RequireRole(allowed ...types.Role) func(http.Handler) http.Handler
}

type API struct {
	service  ServiceInterface
	guard    GuardInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v1/tenant", func(r chi.Router) {
		r.Post("/signup", a.signup)
		r.Get("/confirm-signup", a.confirmSignup)
		r.Get("/validate-invite", a.validateInvite)
		r.Post("/complete-invite", a.completeInvite)

		r.With(a.guard.RequireRole(types.RoleDeveloper)).Post("/register", a.register)
		r.With(a.guard.RequireRole(types.RoleSuperAdmin, types.RoleDeveloper)).Get("/list", a.list)
		r.With(a.guard.RequireRole(types.RoleSuperAdmin)).Patch("/{id}/status", a.updateStatus)

		r.With(a.guard.RequirePermission(authorization.TenantsManage)).Post("/assign-user", a.assignUser)
		r.With(a.guard.RequirePermission(authorization.TenantsManage)).Post("/invite", a.invite)
		r.With(a.guard.RequirePermission(authorization.TenantsRead)).Get("/members", a.members)
	})
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	req := new(SignupRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	result, err := a.service.Signup(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "check your inbox to confirm your email", result, a.logger)
}

func (a *API) confirmSignup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tenant, err := a.service.Activate(r.Context(), q.Get("userId"), q.Get("tenantId"), q.Get("token"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "tenant activated", tenant, a.logger)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := new(RegisterRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	tenant, err := a.service.Register(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "tenant registered", tenant, a.logger)
}

// requestTenant returns the tenant resolved for the request. A tenant id in
// the body must agree with it.
func requestTenant(r *http.Request, fromBody string) (string, error) {
	tenantID := tenancy.TenantID(r.Context())

	switch {
	case tenantID == "":
		return "", apperrors.BadRequest("tenant is required")
	case fromBody != "" && fromBody != tenantID:
		return "", apperrors.BadRequest("tenantId does not match the request tenant")
	}

	return tenantID, nil
}

func (a *API) assignUser(w http.ResponseWriter, r *http.Request) {
	req := new(AssignUserRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	tenantID, err := requestTenant(r, req.TenantID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	membership, err := a.service.AssignUser(r.Context(), tenantID, req.UserID, types.Role(req.Role))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "user assigned", membership, a.logger)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	req := new(InviteRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	tenantID, err := requestTenant(r, "")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}
	req.TenantID = tenantID

	result, err := a.service.Invite(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	message := "invitation sent"
	if result.Completed {
		message = "user added to tenant"
	}

	httptypes.WriteData(w, http.StatusOK, message, result, a.logger)
}

func (a *API) validateInvite(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := a.service.ValidateInvite(r.Context(), q.Get("userId"), q.Get("tenantId"), q.Get("token"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "invitation is valid", result, a.logger)
}

func (a *API) completeInvite(w http.ResponseWriter, r *http.Request) {
	req := new(CompleteInviteRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	pair, err := a.service.CompleteInvite(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "invitation completed", pair, a.logger)
}

func (a *API) updateStatus(w http.ResponseWriter, r *http.Request) {
	req := new(UpdateStatusRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	tenant, err := a.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), types.TenantStatus(req.Status))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "tenant status updated", tenant, a.logger)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, size := httptypes.PageParams(r)

	tenants, err := a.service.ListTenants(r.Context(), page, size)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "", tenants, a.logger)
}

func (a *API) members(w http.ResponseWriter, r *http.Request) {
	tenantID, err := requestTenant(r, "")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	page, size := httptypes.PageParams(r)

	members, err := a.service.ListMembers(r.Context(), tenantID, page, size)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "", members, a.logger)
}

func NewAPI(service ServiceInterface, guard GuardInterface, validate *validator.Validate, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		guard:    guard,
		validate: validate,
		logger:   logger,
	}
}
