// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperrors holds the domain error taxonomy shared by services and
// the http layer.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindServiceUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindServiceUnavailable:
		return "service_unavailable"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Reasons []string

	cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Reasons) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Reasons, "; "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

func Validation(format string, args ...interface{}) error {
	return newError(KindValidation, nil, format, args...)
}

// ValidationReasons joins several policy failures into one error.
func ValidationReasons(message string, reasons ...string) error {
	e := newError(KindValidation, nil, "%s", message)
	e.Reasons = reasons

	return e
}

func NotFound(format string, args ...interface{}) error {
	return newError(KindNotFound, nil, format, args...)
}

func BadRequest(format string, args ...interface{}) error {
	return newError(KindBadRequest, nil, format, args...)
}

func Unauthorized(format string, args ...interface{}) error {
	return newError(KindUnauthorized, nil, format, args...)
}

func Forbidden(format string, args ...interface{}) error {
	return newError(KindForbidden, nil, format, args...)
}

func ServiceUnavailable(cause error, format string, args ...interface{}) error {
	return newError(KindServiceUnavailable, cause, format, args...)
}

// Wrap attaches a kind to an infrastructure error so callers can use errors.Is on the cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	return newError(kind, cause, format, args...)
}

// KindOf reports the kind of the first *Error in the chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	return KindOf(err) == kind
}

// IsDomain is true for errors that carry a non internal kind, those are never retried.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind != KindInternal
}
