package schema

import (
	"cmp"
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	xe "github.com/docstokg/docstokg-web/pkg/errors"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"golang.org/x/sync/singleflight"
)

//go:embed repository
var embedded embed.FS

// Repository returns the schema repository bundled in the binary.
//
// It has directories named by version numbers ("1", "2", ...),
// and each of them has *.sql files to be applied in lexical order.
func Repository() fs.FS {
	sub, err := fs.Sub(embedded, "repository")
	if err != nil {
		panic(err) // embedded path should exist
	}
	return sub
}

// key of advisory lock serializing upgrades among processes.
const upgradeLockKey int64 = 0x646f63736b67

type pgSchema struct {
	pool       kpool.Pool
	repository fs.FS

	ensured atomic.Bool
	flight  singleflight.Group
}

var _ kdb.SchemaInterface = &pgSchema{}

// New creates a new Schema.
//
// # Args
//
// - pool: connection pool to the database.
//
// - repository: schema repository. See Repository.
func New(pool kpool.Pool, repository fs.FS) *pgSchema {
	return &pgSchema{
		pool:       pool,
		repository: repository,
	}
}

type version struct {
	Version int
	Root    string
}

func (v version) Apply(ctx context.Context, repo fs.FS, conn kpool.Queryer) error {
	entries, err := fs.ReadDir(repo, v.Root)
	if err != nil {
		return err
	}
	// fs.ReadDir returns entries sorted by filename.
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}

		query, err := fs.ReadFile(repo, path.Join(v.Root, e.Name()))
		if err != nil {
			return err
		}
		if _, err := conn.Exec(ctx, string(query)); err != nil {
			return xe.WrapWithNote("applying "+path.Join(v.Root, e.Name()), err)
		}
	}
	return nil
}

// Version returns the version of schema applied to the database.
//
// When no schema is applied yet, it returns 0.
func (s *pgSchema) Version(ctx context.Context) (int, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return -1, err
	}
	defer conn.Release()

	return version0(ctx, conn)
}

func version0(ctx context.Context, conn kpool.Queryer) (int, error) {
	var version *int
	if err := conn.QueryRow(
		ctx, `SELECT max("version") FROM "schema_version"`,
	).Scan(&version); err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			if pgerr.Code == pgerrcode.UndefinedTable {
				return 0, nil
			}
		}
		return -1, err
	}
	if version == nil {
		return 0, nil
	}
	return *version, nil
}

// Upgrade applies schema versions newer than the current one, in a transaction.
func (s *pgSchema) Upgrade(ctx context.Context) error {
	schemaVersions, err := s.versions()
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx, `SELECT pg_advisory_xact_lock($1)`, upgradeLockKey,
	); err != nil {
		return err
	}

	// "schema_version" may be missing. Look it up without aborting the transaction.
	var exists bool
	if err := tx.QueryRow(
		ctx, `SELECT to_regclass('"schema_version"') IS NOT NULL`,
	).Scan(&exists); err != nil {
		return err
	}
	currentVersion := 0
	if exists {
		if currentVersion, err = version0(ctx, tx); err != nil {
			return err
		}
	}

	for _, v := range schemaVersions {
		if v.Version <= currentVersion {
			continue
		}
		if err := v.Apply(ctx, s.repository, tx); err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx, `DELETE FROM "schema_version"`,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO "schema_version" ("version") VALUES ($1)`,
			v.Version,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// Ensure makes the database have the latest schema.
//
// Once it succeeds, following calls return nil without accessing the database.
// Concurrent calls share one upgrade.
func (s *pgSchema) Ensure(ctx context.Context) error {
	if s.ensured.Load() {
		return nil
	}

	ch := s.flight.DoChan("ensure", func() (any, error) {
		if s.ensured.Load() {
			return nil, nil
		}
		if err := s.Upgrade(context.WithoutCancel(ctx)); err != nil {
			return nil, xe.Wrap(err)
		}
		s.ensured.Store(true)
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-ch:
		return r.Err
	}
}

// versions lookup the schema from the schema repository.
//
// # Returns
//
// - []version: The list of schema versions, sorted by version number.
//
// - error: The error if any.
func (s *pgSchema) versions() ([]version, error) {
	dir, err := fs.ReadDir(s.repository, ".")
	if err != nil {
		return nil, err
	}

	schemaVersions := make([]version, 0, len(dir))
	for _, entry := range dir {
		if !entry.IsDir() {
			continue
		}

		v, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		schemaVersions = append(schemaVersions, version{
			Version: v,
			Root:    entry.Name(),
		})
	}
	slices.SortFunc(
		schemaVersions,
		func(i, j version) int { return cmp.Compare(i.Version, j.Version) },
	)

	return schemaVersions, nil
}
