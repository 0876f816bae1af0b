package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
)

type UserLookup interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Guard resolves a bearer token to the user it was issued for.
type Guard struct {
	Tokens TokenVerifier
	Users  UserLookup
}

func (g *Guard) Authenticate(ctx context.Context, token string) (*models.User, error) {
	username, err := g.Tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := g.Users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
