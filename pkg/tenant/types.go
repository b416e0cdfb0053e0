// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

type SignupRequest struct {
	TenantName      string `json:"tenantName" validate:"required,max=200"`
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=256"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type SignupResult struct {
	TenantID string `json:"tenantId"`
	UserID   string `json:"userId"`
}

type RegisterRequest struct {
	TradeName string `json:"tradeName" validate:"required,max=200"`
	LegalName string `json:"legalName" validate:"max=200"`
	Document  string `json:"document" validate:"max=50"`
}

type AssignUserRequest struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	TenantID string `json:"tenantId" validate:"omitempty,uuid"`
	Role     string `json:"role"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type InviteRequest struct {
	TenantID  string `json:"-"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=256"`
	Role      string `json:"role"`
}

type InviteResult struct {
	UserID    string `json:"userId"`
	Completed bool   `json:"completed"`
}

type ValidateInviteResult struct {
	Email            string `json:"email"`
	SetPasswordToken string `json:"setPasswordToken"`
}

type CompleteInviteRequest struct {
	UserID           string `json:"userId" validate:"required,uuid"`
	TenantID         string `json:"tenantId" validate:"required,uuid"`
	SetPasswordToken string `json:"setPasswordToken" validate:"required"`
	Password         string `json:"password" validate:"required"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
