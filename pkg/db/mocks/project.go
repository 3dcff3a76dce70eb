package mocks

import (
	"context"

	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/domain"
)

type MockProjectInterface struct {
	Impl struct {
		List        func(ctx context.Context, userId int64, filter domain.ProjectFilter) ([]domain.Project, error)
		Create      func(ctx context.Context, project domain.NewProject) (domain.Project, error)
		Delete      func(ctx context.Context, userId int64, projectName string) error
		SetFavorite func(ctx context.Context, userId int64, projectName string, favorite bool) error
	}
	Calls struct {
		List CallLog[struct {
			UserId int64
			Filter domain.ProjectFilter
		}]
		Create      CallLog[domain.NewProject]
		Delete      CallLog[ProjectKey]
		SetFavorite CallLog[struct {
			ProjectKey
			Favorite bool
		}]
	}
}

func NewProjectInterface() *MockProjectInterface {
	return &MockProjectInterface{}
}

var _ kdb.ProjectInterface = &MockProjectInterface{}

func (m *MockProjectInterface) List(ctx context.Context, userId int64, filter domain.ProjectFilter) ([]domain.Project, error) {
	m.Calls.List = append(m.Calls.List, struct {
		UserId int64
		Filter domain.ProjectFilter
	}{UserId: userId, Filter: filter})
	if m.Impl.List == nil {
		panic(errNotImplemented)
	}
	return m.Impl.List(ctx, userId, filter)
}

func (m *MockProjectInterface) Create(ctx context.Context, project domain.NewProject) (domain.Project, error) {
	m.Calls.Create = append(m.Calls.Create, project)
	if m.Impl.Create == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Create(ctx, project)
}

func (m *MockProjectInterface) Delete(ctx context.Context, userId int64, projectName string) error {
	m.Calls.Delete = append(m.Calls.Delete, ProjectKey{UserId: userId, ProjectName: projectName})
	if m.Impl.Delete == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Delete(ctx, userId, projectName)
}

func (m *MockProjectInterface) SetFavorite(ctx context.Context, userId int64, projectName string, favorite bool) error {
	m.Calls.SetFavorite = append(m.Calls.SetFavorite, struct {
		ProjectKey
		Favorite bool
	}{
		ProjectKey: ProjectKey{UserId: userId, ProjectName: projectName},
		Favorite:   favorite,
	})
	if m.Impl.SetFavorite == nil {
		panic(errNotImplemented)
	}
	return m.Impl.SetFavorite(ctx, userId, projectName, favorite)
}

type MockSettingInterface struct {
	Impl struct {
		Get    func(ctx context.Context, userId int64, projectName string) (domain.Setting, error)
		Upsert func(ctx context.Context, setting domain.Setting) error
	}
	Calls struct {
		Get    CallLog[ProjectKey]
		Upsert CallLog[domain.Setting]
	}
}

func NewSettingInterface() *MockSettingInterface {
	return &MockSettingInterface{}
}

var _ kdb.SettingInterface = &MockSettingInterface{}

func (m *MockSettingInterface) Get(ctx context.Context, userId int64, projectName string) (domain.Setting, error) {
	m.Calls.Get = append(m.Calls.Get, ProjectKey{UserId: userId, ProjectName: projectName})
	if m.Impl.Get == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Get(ctx, userId, projectName)
}

func (m *MockSettingInterface) Upsert(ctx context.Context, setting domain.Setting) error {
	m.Calls.Upsert = append(m.Calls.Upsert, setting)
	if m.Impl.Upsert == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Upsert(ctx, setting)
}

type MockSchemaInterface struct {
	Impl struct {
		Ensure func(ctx context.Context) error
	}
	Calls struct {
		Ensure CallLog[struct{}]
	}
}

func NewSchemaInterface() *MockSchemaInterface {
	return &MockSchemaInterface{}
}

var _ kdb.SchemaInterface = &MockSchemaInterface{}

func (m *MockSchemaInterface) Ensure(ctx context.Context) error {
	m.Calls.Ensure = append(m.Calls.Ensure, struct{}{})
	if m.Impl.Ensure == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Ensure(ctx)
}
