// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/tenant-identity-service/internal/http/types"
	"github.com/canonical/tenant-identity-service/internal/logging"
)

const forgotPasswordMessage = "if the email is registered, a reset link is on its way"

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register-user", a.registerUser)
		r.Get("/confirm-email", a.confirmEmail)
		r.Post("/login", a.login)
		r.Post("/refresh", a.refresh)
		r.Post("/logout", a.logout)
		r.Post("/forgot-password", a.forgotPassword)
		r.Post("/reset-password", a.resetPassword)
	})
}

func (a *API) registerUser(w http.ResponseWriter, r *http.Request) {
	req := new(RegisterUserRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	result, err := a.service.RegisterUser(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "check your inbox to confirm your email", result, a.logger)
}

func (a *API) confirmEmail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if err := a.service.ConfirmEmail(r.Context(), q.Get("userId"), q.Get("token")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "email confirmed", nil, a.logger)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	req := new(LoginRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	pair, err := a.service.Login(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "", pair, a.logger)
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	req := new(RefreshRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	pair, err := a.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "", pair, a.logger)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	req := new(RefreshRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.Logout(r.Context(), req.RefreshToken); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "logged out", nil, a.logger)
}

func (a *API) forgotPassword(w http.ResponseWriter, r *http.Request) {
	req := new(ForgotPasswordRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.ForgotPassword(r.Context(), req.Email); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, forgotPasswordMessage, nil, a.logger)
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	req := new(ResetPasswordRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.ResetPassword(r.Context(), req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "password updated", nil, a.logger)
}

func NewAPI(service ServiceInterface, validate *validator.Validate, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}
