package service

import (
	"errors"
	"fmt"
)

// Every error returned by the services that is the caller's fault wraps one
// of these three kinds.
var (
	ErrValidation      = errors.New("validation")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
)

var (
	ErrUsernameTaken      = fmt.Errorf("username already taken: %w", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("invalid username or password: %w", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("invalid or expired token: %w", ErrUnauthenticated)
	ErrUserNotFound       = fmt.Errorf("user not found: %w", ErrUnauthenticated)
	ErrProductNotFound    = fmt.Errorf("product not found: %w", ErrNotFound)
	ErrCartItemNotFound   = fmt.Errorf("cart item not found: %w", ErrNotFound)
)
