package db

import (
	"context"
	"errors"

	domerr "github.com/docstokg/docstokg-web/pkg/domain/errors"
)

var ErrMissing = domerr.ErrMissing
var ErrConflict = domerr.ErrConflict

type Database interface {
	Runs() RunInterface
	Users() UserInterface
	Projects() ProjectInterface
	Settings() SettingInterface
	Schema() SchemaInterface
	Close() error
}

type SchemaInterface interface {
	// Ensure makes tables required by this application exist.
	//
	// It is idempotent. Once it succeeds, following calls do nothing.
	Ensure(ctx context.Context) error
}

// IsMissing tells err is caused by missing entities.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissing)
}
