package mocks

import (
	"context"

	kdb "github.com/docstokg/docstokg-web/pkg/db"
)

type MockDatabase struct {
	RunInterface     *MockRunInterface
	UserInterface    *MockUserInterface
	ProjectInterface *MockProjectInterface
	SettingInterface *MockSettingInterface
	SchemaInterface  *MockSchemaInterface
	Closed           bool
}

// NewDatabase returns a database whose schema is always ensured.
func NewDatabase() *MockDatabase {
	schema := NewSchemaInterface()
	schema.Impl.Ensure = func(ctx context.Context) error { return nil }
	return &MockDatabase{
		RunInterface:     NewRunInterface(),
		UserInterface:    NewUserInterface(),
		ProjectInterface: NewProjectInterface(),
		SettingInterface: NewSettingInterface(),
		SchemaInterface:  schema,
	}
}

var _ kdb.Database = &MockDatabase{}

func (m *MockDatabase) Runs() kdb.RunInterface {
	return m.RunInterface
}

func (m *MockDatabase) Users() kdb.UserInterface {
	return m.UserInterface
}

func (m *MockDatabase) Projects() kdb.ProjectInterface {
	return m.ProjectInterface
}

func (m *MockDatabase) Settings() kdb.SettingInterface {
	return m.SettingInterface
}

func (m *MockDatabase) Schema() kdb.SchemaInterface {
	return m.SchemaInterface
}

func (m *MockDatabase) Close() error {
	m.Closed = true
	return nil
}
