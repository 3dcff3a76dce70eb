package mocks

import (
	"context"

	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/domain"
)

type MockUserInterface struct {
	Impl struct {
		Register    func(ctx context.Context, user domain.NewUser) (int64, error)
		FindByEmail func(ctx context.Context, email string) (domain.User, error)
		List        func(ctx context.Context) ([]domain.User, error)
		SetBlocked  func(ctx context.Context, userId int64, isBlocked bool) error
		Delete      func(ctx context.Context, userId int64) error
	}
	Calls struct {
		Register    CallLog[domain.NewUser]
		FindByEmail CallLog[string]
		List        CallLog[struct{}]
		SetBlocked  CallLog[struct {
			UserId    int64
			IsBlocked bool
		}]
		Delete CallLog[int64]
	}
}

func NewUserInterface() *MockUserInterface {
	return &MockUserInterface{}
}

var _ kdb.UserInterface = &MockUserInterface{}

func (m *MockUserInterface) Register(ctx context.Context, user domain.NewUser) (int64, error) {
	m.Calls.Register = append(m.Calls.Register, user)
	if m.Impl.Register == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Register(ctx, user)
}

func (m *MockUserInterface) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	m.Calls.FindByEmail = append(m.Calls.FindByEmail, email)
	if m.Impl.FindByEmail == nil {
		panic(errNotImplemented)
	}
	return m.Impl.FindByEmail(ctx, email)
}

func (m *MockUserInterface) List(ctx context.Context) ([]domain.User, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List == nil {
		panic(errNotImplemented)
	}
	return m.Impl.List(ctx)
}

func (m *MockUserInterface) SetBlocked(ctx context.Context, userId int64, isBlocked bool) error {
	m.Calls.SetBlocked = append(m.Calls.SetBlocked, struct {
		UserId    int64
		IsBlocked bool
	}{UserId: userId, IsBlocked: isBlocked})
	if m.Impl.SetBlocked == nil {
		panic(errNotImplemented)
	}
	return m.Impl.SetBlocked(ctx, userId, isBlocked)
}

func (m *MockUserInterface) Delete(ctx context.Context, userId int64) error {
	m.Calls.Delete = append(m.Calls.Delete, userId)
	if m.Impl.Delete == nil {
		panic(errNotImplemented)
	}
	return m.Impl.Delete(ctx, userId)
}
