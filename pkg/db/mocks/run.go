package mocks

import (
	"context"

	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/domain"
)

type ProjectKey struct {
	UserId      int64
	ProjectName string
}

type MockRunInterface struct {
	Impl struct {
		Progress  func(ctx context.Context, userId int64, projectName string) (*domain.Run, error)
		History   func(ctx context.Context, userId int64, projectName string) ([]domain.RunSummary, error)
		Documents func(ctx context.Context, userId int64, projectName string, runId int64) ([]domain.Document, error)
	}
	Calls struct {
		Progress  CallLog[ProjectKey]
		History   CallLog[ProjectKey]
		Documents CallLog[struct {
			ProjectKey
			RunId int64
		}]
	}
}

func NewRunInterface() *MockRunInterface {
	return &MockRunInterface{}
}

var _ kdb.RunInterface = &MockRunInterface{}

func (m *MockRunInterface) Progress(ctx context.Context, userId int64, projectName string) (*domain.Run, error) {
	m.Calls.Progress = append(m.Calls.Progress, ProjectKey{UserId: userId, ProjectName: projectName})
	if m.Impl.Progress == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Progress(ctx, userId, projectName)
}

func (m *MockRunInterface) History(ctx context.Context, userId int64, projectName string) ([]domain.RunSummary, error) {
	m.Calls.History = append(m.Calls.History, ProjectKey{UserId: userId, ProjectName: projectName})
	if m.Impl.History == nil {
		panic(errNotImplemented)
	}
	return m.Impl.History(ctx, userId, projectName)
}

func (m *MockRunInterface) Documents(ctx context.Context, userId int64, projectName string, runId int64) ([]domain.Document, error) {
	m.Calls.Documents = append(m.Calls.Documents, struct {
		ProjectKey
		RunId int64
	}{
		ProjectKey: ProjectKey{UserId: userId, ProjectName: projectName},
		RunId:      runId,
	})
	if m.Impl.Documents == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Documents(ctx, userId, projectName, runId)
}
