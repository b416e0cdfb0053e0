// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/logging"
)

// Response is the json envelope returned by every endpoint.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	StatusCode int         `json:"statusCode"`
}

func StatusFromKind(k apperrors.Kind) int {
	switch k {
	case apperrors.KindValidation, apperrors.KindBadRequest:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, body Response, logger logging.LoggerInterface) {
	body.StatusCode = status

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

func WriteData(w http.ResponseWriter, status int, message string, data interface{}, logger logging.LoggerInterface) {
	WriteJSON(w, status, Response{Success: true, Message: message, Data: data}, logger)
}

// WriteError translates err once into the envelope. Internal errors are
// logged and reported with a generic message.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperrors.KindInternal {
		logger.Errorf("request failed: %v", err)
		WriteJSON(w, http.StatusInternalServerError, Response{Message: "internal server error"}, logger)
		return
	}

	if appErr.Kind == apperrors.KindServiceUnavailable {
		logger.Warnf("dependency unavailable: %v", err)
	}

	WriteJSON(w, StatusFromKind(appErr.Kind), Response{Message: appErr.Message, Errors: appErr.Reasons}, logger)
}

// ValidationError turns validator failures into a Validation error with one reason per field.
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.BadRequest("invalid request: %v", err)
	}

	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, describe(fe))
	}

	return apperrors.ValidationReasons("invalid request", reasons...)
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// DecodeAndValidate reads a json body into v and runs struct validation.
func DecodeAndValidate(r *http.Request, v interface{}, validate *validator.Validate) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.BadRequest("invalid request body")
	}

	if err := validate.Struct(v); err != nil {
		return ValidationError(err)
	}

	return nil
}

// NewValidator returns a validator reporting json field names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	return v
}
