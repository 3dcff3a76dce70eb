package db

import (
	"context"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type RunInterface interface {
	// Progress returns the most recent run (the run with the largest id)
	// which processes documents of the project owned by the user.
	//
	// Runs without documents of the project are not counted.
	//
	// # Returns
	//
	// - *domain.Run: the run. When the project has no such runs, it is nil.
	//
	// - error
	Progress(ctx context.Context, userId int64, projectName string) (*domain.Run, error)

	// History returns all runs which process documents of the project owned by the user,
	// newest (largest id) first.
	//
	// Each run is annotated with the number of documents of the project it processes.
	History(ctx context.Context, userId int64, projectName string) ([]domain.RunSummary, error)

	// Documents returns documents of the project owned by the user and processed by the run,
	// ordered by document name.
	Documents(ctx context.Context, userId int64, projectName string, runId int64) ([]domain.Document, error)
}
