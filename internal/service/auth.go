package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/opentransit/stationhub/internal/domain"
	"github.com/opentransit/stationhub/internal/store"
	"github.com/opentransit/stationhub/pkg/cryptox"
	"github.com/opentransit/stationhub/pkg/idx"
	"github.com/opentransit/stationhub/pkg/jwtx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

var (
	// ErrUserNotFound covers both an unknown identifier and a wrong
	// password at login. Collapsing the two keeps the response from
	// confirming which accounts exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when the username or email is taken.
	ErrUserExists = errors.New("username or email already registered")

	// ErrActivationCodeNotFound is returned when no account carries the
	// submitted activation code.
	ErrActivationCodeNotFound = errors.New("activation code not found")
)

// defaultProfilePicture is assigned to accounts created without one.
const defaultProfilePicture = "user.jpg"

type RegisterInput struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService orchestrates registration, activation, login and the
// profile operations behind the bearer-token gate.
type AuthService struct {
	Store   store.Store
	Encoder *cryptox.PasswordEncoder
	Tokens  jwtx.Issuer
}

// Register validates the payload, encodes the password, and creates an
// inactive account carrying a fresh activation code. Delivering the code
// to the user is an external concern.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := validateRegister(in); err != nil {
		return domain.User{}, err
	}

	code, err := cryptox.GenerateCode(cryptox.CodeSize128)
	if err != nil {
		return domain.User{}, fmt.Errorf("generate activation code: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:             idx.New().String(),
		FullName:       in.FullName,
		Username:       in.Username,
		Email:          in.Email,
		Password:       s.Encoder.Encode(in.Password),
		Role:           domain.RoleUser,
		IsActive:       false,
		ActivationCode: code,
		ProfilePicture: defaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration rejected, duplicate username or email",
				slog.String("username", in.Username),
			)
			return domain.User{}, ErrUserExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// Login looks up an active account by email or username and verifies the
// password. Both an unknown identifier and a password mismatch surface the
// same ErrUserNotFound; on success it issues a bearer token over the
// account's id and role.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login failed, unknown or inactive identifier")
			return "", ErrUserNotFound
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return "", err
	}

	if !s.Encoder.Matches(password, user.Password) {
		log.Warn("login failed, password mismatch", slog.String("user_id", user.ID))
		return "", ErrUserNotFound
	}

	token, err := s.Tokens.Issue(user.ID, user.Role.String())
	if err != nil {
		log.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return token, nil
}

// Activate redeems an activation code, flipping the matching account to
// active. The code is not invalidated by redemption.
func (s *AuthService) Activate(ctx context.Context, code string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().RedeemActivationCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("activation attempted with unknown code")
			return domain.User{}, ErrActivationCodeNotFound
		}
		log.Error("failed to redeem activation code", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user activated", slog.String("user_id", user.ID))
	return user, nil
}

// Me returns the profile behind a verified token subject. A directory miss
// here means the account vanished after the token was issued; callers
// treat it as an internal error, not a 404.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("load profile for %s: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile mutates the caller's full name and profile picture. Role
// is never touched by this operation.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, fullName, profilePicture string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().UpdateProfile(ctx, userID, fullName, profilePicture); err != nil {
		log.Error("failed to update profile", slog.String("user_id", userID), slog.Any("error", err))
		return domain.User{}, err
	}

	return s.Me(ctx, userID)
}

// UpdatePassword applies the shared password policy, then re-encodes and
// stores the new password.
func (s *AuthService) UpdatePassword(ctx context.Context, userID, password, confirm string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := validateUpdatePassword(password, confirm); err != nil {
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdatePassword(ctx, userID, s.Encoder.Encode(password)); err != nil {
		log.Error("failed to update password", slog.String("user_id", userID), slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("password updated", slog.String("user_id", userID))
	return s.Me(ctx, userID)
}
