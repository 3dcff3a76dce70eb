package postgres

import (
	"io/fs"

	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	kpgproject "github.com/docstokg/docstokg-web/pkg/db/postgres/project"
	kpgrun "github.com/docstokg/docstokg-web/pkg/db/postgres/run"
	kpgschema "github.com/docstokg/docstokg-web/pkg/db/postgres/schema"
	kpgsetting "github.com/docstokg/docstokg-web/pkg/db/postgres/setting"
	kpguser "github.com/docstokg/docstokg-web/pkg/db/postgres/user"
)

type docsDBPostgres struct {
	pool     kpool.Pool
	runs     kdb.RunInterface
	users    kdb.UserInterface
	projects kdb.ProjectInterface
	settings kdb.SettingInterface
	schema   kdb.SchemaInterface
}

type Config struct {
	SchemaRepository fs.FS
}

func DefaultConfig() Config {
	return Config{
		SchemaRepository: kpgschema.Repository(),
	}
}

type Option func(*Config) *Config

// WithSchemaRepository replaces the schema bundled in the binary.
func WithSchemaRepository(repository fs.FS) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

// New returns a Database backed by PostgreSQL at url.
//
// It does not connect until the first query.
func New(url string, options ...Option) kdb.Database {
	return NewWithPool(kpool.Lazy(url), options...)
}

// NewWithPool returns a Database using the pool.
func NewWithPool(p kpool.Pool, options ...Option) kdb.Database {
	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	return &docsDBPostgres{
		pool:     p,
		runs:     kpgrun.New(p),
		users:    kpguser.New(p),
		projects: kpgproject.New(p),
		settings: kpgsetting.New(p),
		schema:   kpgschema.New(p, c.SchemaRepository),
	}
}

func (k *docsDBPostgres) Runs() kdb.RunInterface {
	return k.runs
}

func (k *docsDBPostgres) Users() kdb.UserInterface {
	return k.users
}

func (k *docsDBPostgres) Projects() kdb.ProjectInterface {
	return k.projects
}

func (k *docsDBPostgres) Settings() kdb.SettingInterface {
	return k.settings
}

func (k *docsDBPostgres) Schema() kdb.SchemaInterface {
	return k.schema
}

func (k *docsDBPostgres) Close() error {
	k.pool.Close()
	return nil
}
