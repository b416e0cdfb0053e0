// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	httptypes "github.com/canonical/tenant-identity-service/internal/http/types"
	"github.com/canonical/tenant-identity-service/internal/logging"
)

type ExchangeRequest struct {
	Code string `json:"code" validate:"required"`
}

type API struct {
	service   ServiceInterface
	returnURL string
	validate  *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/auth/external/{provider}/login", a.login)
	mux.Get("/api/v1/auth/external/{provider}/callback", a.callback)
	mux.Post("/api/v1/auth/external/exchange", a.exchange)
}

// login takes an optional tenantId query parameter, the tenant the session
// will be bound to.
func (a *API) login(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenantId")
	if tenantID != "" {
		if err := a.validate.Var(tenantID, "uuid"); err != nil {
			httptypes.WriteError(w, apperrors.BadRequest("tenantId must be a uuid"), a.logger)
			return
		}
	}

	redirect, err := a.service.Begin(r.Context(), chi.URLParam(r, "provider"), tenantID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}

// callback sends the browser back to the frontend with either a one-time
// code or an error parameter.
func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	back, err := url.Parse(a.returnURL)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	params := back.Query()

	if providerErr := q.Get("error"); providerErr != "" {
		params.Set("error", providerErr)
	} else if code, err := a.service.Callback(r.Context(), chi.URLParam(r, "provider"), q.Get("state"), q.Get("code")); err != nil {
		a.logger.Debugf("external login callback failed: %v", err)
		params.Set("error", "login_failed")
	} else {
		params.Set("code", code)
	}

	back.RawQuery = params.Encode()

	http.Redirect(w, r, back.String(), http.StatusFound)
}

func (a *API) exchange(w http.ResponseWriter, r *http.Request) {
	req := new(ExchangeRequest)
	if err := httptypes.DecodeAndValidate(r, req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	pair, err := a.service.Exchange(r.Context(), req.Code)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "", pair, a.logger)
}

func NewAPI(service ServiceInterface, returnURL string, validate *validator.Validate, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		returnURL: returnURL,
		validate:  validate,
		logger:    logger,
	}
}
