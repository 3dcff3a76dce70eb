package db

import (
	"context"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type UserInterface interface {
	// Register creates a new user with role "user", and returns its id.
	//
	// When the email is used by another user, error wrapping ErrConflict is returned.
	Register(ctx context.Context, user domain.NewUser) (int64, error)

	// FindByEmail returns the user having the email.
	//
	// When there are no such users, error wrapping ErrMissing is returned.
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// List returns all users, ordered by id.
	List(ctx context.Context) ([]domain.User, error)

	// SetBlocked updates "is_blocked" of the user.
	//
	// It does not fail even if the user does not exist.
	SetBlocked(ctx context.Context, userId int64, isBlocked bool) error

	// Delete removes the user.
	//
	// Projects, documents and settings of the user are removed by the database (cascade).
	// It does not fail even if the user does not exist.
	Delete(ctx context.Context, userId int64) error
}
