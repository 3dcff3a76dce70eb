package testenv

import (
	"context"
	"os"
	"testing"

	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	"github.com/docstokg/docstokg-web/pkg/db/postgres/schema"
	"github.com/jackc/pgx/v4/pgxpool"
)

// EnvDBURI is the name of environment variable giving the database for tests.
//
// Tests using PoolBroaker are skipped when it is empty.
const EnvDBURI = "DOCSTOKG_TEST_DBURI"

// PoolBroaker is a interface to get a pool.
type PoolBroaker interface {
	// GetPool returns a pool.
	//
	// Tables are cleaned up before returning and after t.
	GetPool(ctx context.Context, t *testing.T) kpool.Pool
}

type pg struct {
	pool *pgxpool.Pool
}

func (p *pg) GetPool(ctx context.Context, t *testing.T) kpool.Pool {
	t.Cleanup(func() {
		t.Helper()
		ClearTables(context.WithoutCancel(ctx), p.pool, t)
	})

	ClearTables(ctx, p.pool, t)
	return kpool.Wrap(p.pool)
}

// NewPoolBroaker returns a PoolBroaker connecting to the database given by DOCSTOKG_TEST_DBURI.
//
// The latest schema is applied to the database before returning.
//
// # Args
//
// - ctx: context for connecting.
//
// - t: scope of the PoolBroaker.
// When this test is finished, the connection will be closed.
func NewPoolBroaker(ctx context.Context, t *testing.T) PoolBroaker {
	t.Helper()

	uri := os.Getenv(EnvDBURI)
	if uri == "" {
		t.Skipf("%s is not set. skip tests with database.", EnvDBURI)
	}

	pool, err := pgxpool.Connect(ctx, uri)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if err := schema.New(kpool.Wrap(pool), schema.Repository()).Upgrade(ctx); err != nil {
		t.Fatal(err)
	}

	return &pg{pool: pool}
}

func ClearTables(ctx context.Context, p *pgxpool.Pool, t *testing.T) {
	t.Helper()

	conn, err := p.Acquire(ctx)
	if err != nil {
		t.Errorf("fail to clean-up tables.: %v", err)
		return
	}
	defer conn.Release()

	for _, command := range []string{
		`truncate "user" RESTART IDENTITY cascade`,
		`truncate "run" RESTART IDENTITY cascade`,
		// by cascade, all row in tables should be deleted.
	} {
		if _, err := conn.Exec(ctx, command); err != nil {
			t.Errorf("fail to clean-up tables.: %v", err)
		}
	}
}
