// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity owns user credentials: account creation, password
// hashing, stamp bound confirmation and reset tokens, role assignment.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

const (
	MinPasswordLength = 6
	stampBytes        = 32
)

type NewUser struct {
	Email          string
	FirstName      string
	LastName       string
	Password       string
	EmailConfirmed bool
}

type Config struct {
	TokenSecret []byte
	TokenTTL    time.Duration
	BcryptCost  int
}

type Store struct {
	storage StorageInterface
	cipher  CipherInterface
	tokens  *userTokens
	cost    int
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ValidatePassword reports the password policy violations of p, nil when
// the password is acceptable.
func ValidatePassword(p string) []string {
	reasons := make([]string, 0)

	if strings.TrimSpace(p) == "" {
		reasons = append(reasons, "password is required")
	}

	if utf8.RuneCountInString(p) < MinPasswordLength {
		reasons = append(reasons, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if len(reasons) == 0 {
		return nil
	}

	return reasons
}

func (s *Store) newStamp() (string, error) {
	return security.RandomToken(stampBytes)
}

func (s *Store) CreateUser(ctx context.Context, in NewUser) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.CreateUser")
	defer span.End()

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}

	if reasons := ValidatePassword(in.Password); reasons != nil {
		return nil, apperrors.ValidationReasons("invalid password", reasons...)
	}

	emailHash := security.Hash(email)

	_, err := s.storage.GetUserByEmailHash(ctx, storage.AdminLookup(), emailHash)
	switch {
	case err == nil:
		return nil, apperrors.Validation("email is already registered")
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	encrypted, err := s.cipher.Encrypt(email)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	stamp, err := s.newStamp()
	if err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName))

	user, err := s.storage.CreateUser(ctx, &types.User{
		EmailEncrypted:     encrypted,
		EmailHash:          emailHash,
		FirstName:          strings.TrimSpace(in.FirstName),
		LastName:           strings.TrimSpace(in.LastName),
		FullName:           fullName,
		NormalizedFullName: strings.ToUpper(fullName),
		PasswordHash:       string(hash),
		SecurityStamp:      stamp,
		EmailConfirmed:     in.EmailConfirmed,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.Validation("email is already registered")
		}
		return nil, err
	}

	s.logger.Debugf("created user %s", user.ID)

	return user, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.FindByID")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, storage.AdminLookup(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NotFound("user not found")
	}

	return user, err
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.FindByEmail")
	defer span.End()

	user, err := s.storage.GetUserByEmailHash(ctx, storage.AdminLookup(), security.Hash(email))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NotFound("user not found")
	}

	return user, err
}

func (s *Store) DecryptEmail(user *types.User) (string, error) {
	email, err := s.cipher.Decrypt(user.EmailEncrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt email of user %s: %w", user.ID, err)
	}

	return email, nil
}

func (s *Store) CheckPassword(ctx context.Context, user *types.User, password string) bool {
	_, span := s.tracer.Start(ctx, "identity.Store.CheckPassword")
	defer span.End()

	if user == nil || user.PasswordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *Store) GenerateEmailConfirmationToken(ctx context.Context, user *types.User) (string, error) {
	_, span := s.tracer.Start(ctx, "identity.Store.GenerateEmailConfirmationToken")
	defer span.End()

	return s.tokens.sign(purposeEmailConfirmation, user.ID, "", user.SecurityStamp)
}

// ConfirmEmail marks the email confirmed and rotates the security stamp,
// which makes the token single use.
func (s *Store) ConfirmEmail(ctx context.Context, userID, token string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.ConfirmEmail")
	defer span.End()

	return s.confirm(ctx, purposeEmailConfirmation, userID, "", token)
}

// GenerateSignupToken issues the token that activates tenantID, it cannot
// confirm an email on its own nor activate any other tenant.
func (s *Store) GenerateSignupToken(ctx context.Context, user *types.User, tenantID string) (string, error) {
	_, span := s.tracer.Start(ctx, "identity.Store.GenerateSignupToken")
	defer span.End()

	if tenantID == "" {
		return "", apperrors.BadRequest("tenant id is required")
	}

	return s.tokens.sign(purposeSignup, user.ID, tenantID, user.SecurityStamp)
}

// ConfirmSignup confirms the owner's email with a token issued for tenantID.
func (s *Store) ConfirmSignup(ctx context.Context, userID, tenantID, token string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.ConfirmSignup")
	defer span.End()

	if tenantID == "" {
		return nil, apperrors.BadRequest("invalid token")
	}

	return s.confirm(ctx, purposeSignup, userID, tenantID, token)
}

func (s *Store) confirm(ctx context.Context, purpose, userID, tenantID, token string) (*types.User, error) {
	stamp, err := s.tokens.verify(purpose, userID, tenantID, token)
	if err != nil {
		s.logger.Debugf("rejected %s token for user %s: %v", purpose, userID, err)
		return nil, apperrors.BadRequest("invalid token")
	}

	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.SecurityStamp != stamp {
		return nil, apperrors.BadRequest("invalid token")
	}

	newStamp, err := s.newStamp()
	if err != nil {
		return nil, err
	}

	if err := s.storage.ConfirmUserEmail(ctx, userID, stamp, newStamp); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.BadRequest("invalid token")
		}
		return nil, err
	}

	user.EmailConfirmed = true
	user.SecurityStamp = newStamp

	return user, nil
}

func (s *Store) GeneratePasswordResetToken(ctx context.Context, user *types.User) (string, error) {
	_, span := s.tracer.Start(ctx, "identity.Store.GeneratePasswordResetToken")
	defer span.End()

	return s.tokens.sign(purposePasswordReset, user.ID, "", user.SecurityStamp)
}

func (s *Store) ResetPassword(ctx context.Context, userID, token, password string) error {
	ctx, span := s.tracer.Start(ctx, "identity.Store.ResetPassword")
	defer span.End()

	if reasons := ValidatePassword(password); reasons != nil {
		return apperrors.ValidationReasons("invalid password", reasons...)
	}

	stamp, err := s.tokens.verify(purposePasswordReset, userID, "", token)
	if err != nil {
		s.logger.Debugf("rejected reset token for user %s: %v", userID, err)
		return apperrors.BadRequest("invalid token")
	}

	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.SecurityStamp != stamp {
		return apperrors.BadRequest("invalid token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newStamp, err := s.newStamp()
	if err != nil {
		return err
	}

	if err := s.storage.UpdateUserPassword(ctx, userID, string(hash), newStamp); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound("user not found")
		}
		return err
	}

	return nil
}

func (s *Store) FindRoleByName(ctx context.Context, role types.Role) (*types.RoleRecord, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.FindRoleByName")
	defer span.End()

	r, err := s.storage.GetRoleByName(ctx, role)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NotFound("role %s not found", role)
	}

	return r, err
}

func (s *Store) AssignRole(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "identity.Store.AssignRole")
	defer span.End()

	r, err := s.FindRoleByName(ctx, role)
	if err != nil {
		return err
	}

	return s.storage.AssignUserRole(ctx, userID, r.ID)
}

// RolesAndPermissions resolves the effective roles of a user in tenantID.
// Platform roles (Developer, SuperAdmin) apply everywhere, tenant roles
// only come from the user's membership in tenantID.
func (s *Store) RolesAndPermissions(ctx context.Context, userID, tenantID string) ([]string, []string, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Store.RolesAndPermissions")
	defer span.End()

	global, err := s.storage.ListUserRoles(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	roleIDs := make([]string, 0, len(global)+1)
	roles := make([]string, 0, len(global)+1)
	seen := make(map[string]bool)

	add := func(id string, name types.Role) {
		if seen[id] {
			return
		}
		seen[id] = true
		roleIDs = append(roleIDs, id)
		roles = append(roles, string(name))
	}

	for _, r := range global {
		if r.Name == types.RoleDeveloper || r.Name == types.RoleSuperAdmin {
			add(r.ID, r.Name)
		}
	}

	if tenantID != "" {
		m, err := s.storage.GetMembership(ctx, storage.ForTenant(tenantID), userID)
		switch {
		case err == nil:
			add(m.RoleID, m.Role)
		case !errors.Is(err, storage.ErrNotFound):
			return nil, nil, err
		}
	}

	if len(roleIDs) == 0 {
		return roles, []string{}, nil
	}

	perms, err := s.storage.ListPermissionsByRoles(ctx, roleIDs)
	if err != nil {
		return nil, nil, err
	}

	return roles, perms, nil
}

func NewStore(s StorageInterface, cipher CipherInterface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	store := new(Store)

	store.storage = s
	store.cipher = cipher
	store.cost = cfg.BcryptCost
	if store.cost == 0 {
		store.cost = bcrypt.DefaultCost
	}
	store.now = time.Now
	store.tokens = &userTokens{
		secret: cfg.TokenSecret,
		ttl:    cfg.TokenTTL,
		now:    func() time.Time { return store.now() },
	}

	store.tracer = tracer
	store.monitor = monitor
	store.logger = logger

	return store
}
