package db

import (
	"context"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type ProjectInterface interface {
	// List returns projects owned by the user and passing the filter, newest first.
	List(ctx context.Context, userId int64, filter domain.ProjectFilter) ([]domain.Project, error)

	// Create creates a project and returns it.
	//
	// When the user already has a project with the same name, error wrapping ErrConflict is returned.
	Create(ctx context.Context, project domain.NewProject) (domain.Project, error)

	// Delete deletes the project with its settings and documents.
	//
	// When the project is not found, error wrapping ErrMissing is returned.
	Delete(ctx context.Context, userId int64, projectName string) error

	// SetFavorite updates "is_favorite" of the project.
	//
	// When the project is not found, error wrapping ErrMissing is returned.
	SetFavorite(ctx context.Context, userId int64, projectName string, favorite bool) error
}

type SettingInterface interface {
	// Get returns the setting of the project.
	//
	// When the setting is not found, error wrapping ErrMissing is returned.
	Get(ctx context.Context, userId int64, projectName string) (domain.Setting, error)

	// Upsert creates or updates the setting of the project.
	//
	// When the project is not found, error wrapping ErrMissing is returned.
	Upsert(ctx context.Context, setting domain.Setting) error
}
