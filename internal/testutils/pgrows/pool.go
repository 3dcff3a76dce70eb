package pgrows

import (
	"context"
	"errors"
	"sync"

	kpool "github.com/docstokg/docstokg-web/pkg/conn/db/postgres/pool"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// Query is a query received by Pool.
type Query struct {
	SQL  string
	Args []interface{}
}

// Result is a response for a query. Either of Rows, Tag or Err is used.
type Result struct {
	Rows *Rows
	Tag  pgconn.CommandTag
	Err  error
}

// Pool is a kpool.Pool answering queries with Results in order.
//
// Queries are recorded in Queries.
type Pool struct {
	mu       sync.Mutex
	results  []Result
	Queries  []Query
	Acquired int
	Released int
}

var _ kpool.Pool = &Pool{}

// NewPool returns Pool responding results for each query in order.
func NewPool(results ...Result) *Pool {
	return &Pool{results: results}
}

func (p *Pool) next(sql string, args []interface{}) Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Queries = append(p.Queries, Query{SQL: sql, Args: args})
	if len(p.results) == 0 {
		return Result{Err: errors.New("[pgrows] no more results")}
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r
}

func (p *Pool) Begin(context.Context) (kpool.Tx, error) {
	return &conn{pool: p}, nil
}

func (p *Pool) BeginTx(ctx context.Context, _ pgx.TxOptions) (kpool.Tx, error) {
	return p.Begin(ctx)
}

func (p *Pool) Acquire(context.Context) (kpool.Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Acquired += 1
	return &conn{pool: p}, nil
}

func (p *Pool) Ping(context.Context) error { return nil }

func (p *Pool) Close() {}

type conn struct {
	pool *Pool
}

func (c *conn) Begin(ctx context.Context) (kpool.Tx, error) {
	return c.pool.Begin(ctx)
}

func (c *conn) BeginTx(ctx context.Context, opts pgx.TxOptions) (kpool.Tx, error) {
	return c.pool.BeginTx(ctx, opts)
}

func (c *conn) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	r := c.pool.next(sql, args)
	return r.Tag, r.Err
}

func (c *conn) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	r := c.pool.next(sql, args)
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Rows == nil {
		return New(nil), nil
	}
	return r.Rows, nil
}

func (c *conn) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	rows, err := c.Query(ctx, sql, args...)
	return row{rows: rows, err: err}
}

func (c *conn) Release() {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	c.pool.Released += 1
}

func (c *conn) Ping(context.Context) error { return nil }

func (c *conn) Commit(context.Context) error { return nil }

func (c *conn) Rollback(context.Context) error { return nil }

type row struct {
	rows pgx.Rows
	err  error
}

func (r row) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	defer r.rows.Close()
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}
	return r.rows.Scan(dest...)
}
