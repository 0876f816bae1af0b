package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/hash"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

const TokenTypeBearer = "bearer"

type AuthService struct {
	Users  UserRepo
	Tokens TokenIssuer
	Hasher hash.Hasher
	Events events.Publisher
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	stored, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{Username: username, Password: stored}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			l.Warn("register_error", "status", 400, "reason", "username taken", "username", username)
			return nil, ErrUsernameTaken
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	publish(ctx, s.Events, events.TopicUsers, idKey(user.ID), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	user, err := s.Users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown username")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}
	if !s.Hasher.Check(user.Password, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(user.Username, s.Tokens.TTL())
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   exp,
	}, nil
}

// UpdateProfile changes only the supplied fields of user. Issued tokens
// carry the username, so a rename invalidates them.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User, patch models.UserPatch) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.update_profile", "user_id", user.ID)

	if patch.Username != nil && *patch.Username == "" {
		return nil, fmt.Errorf("username must not be empty: %w", ErrValidation)
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, fmt.Errorf("password must not be empty: %w", ErrValidation)
		}
		stored, err := s.Hasher.Hash(*patch.Password)
		if err != nil {
			l.Error("update_profile_error", "status", 500, "reason", "cannot hash the password", "error", err)
			return nil, err
		}
		patch.Password = &stored
	}

	updated, err := s.Users.UpdateUser(ctx, user.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrConflict):
			l.Warn("update_profile_error", "status", 400, "reason", "username taken")
			return nil, ErrUsernameTaken
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		}
		l.Error("update_profile_error", "status", 500, "error", err)
		return nil, err
	}

	publish(ctx, s.Events, events.TopicUsers, idKey(updated.ID), map[string]any{
		"type":     "user_updated",
		"user_id":  updated.ID,
		"username": updated.Username,
	})
	return updated, nil
}

// DeleteAccount removes the user and their cart.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint) error {
	l := logging.FromContext(ctx).With("svc", "auth.delete_account", "user_id", userID)

	if err := s.Users.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		l.Error("delete_account_error", "status", 500, "error", err)
		return err
	}

	publish(ctx, s.Events, events.TopicUsers, idKey(userID), map[string]any{
		"type":    "user_deleted",
		"user_id": userID,
	})
	return nil
}
