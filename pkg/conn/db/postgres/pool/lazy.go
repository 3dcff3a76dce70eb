package pool

import (
	"context"
	"sync"

	xe "github.com/docstokg/docstokg-web/pkg/errors"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/sync/singleflight"
)

// LazyPool is a Pool which connects to the database on its first use.
//
// The underlying pool is created once per LazyPool and shared by all callers.
// Concurrent first uses wait for a single connection attempt.
// When the attempt fails, the error is returned to the callers waiting for it,
// and the next use tries again.
type LazyPool struct {
	connect func(context.Context) (Pool, error)

	mu     sync.RWMutex
	pool   Pool
	flight singleflight.Group
}

var _ Pool = &LazyPool{}

// Lazy returns a LazyPool connecting to the database at uri.
func Lazy(uri string) *LazyPool {
	return LazyWith(func(ctx context.Context) (Pool, error) {
		p, err := pgxpool.Connect(ctx, uri)
		if err != nil {
			return nil, err
		}
		return Wrap(p), nil
	})
}

// LazyWith returns a LazyPool which uses connect to create the underlying pool.
func LazyWith(connect func(context.Context) (Pool, error)) *LazyPool {
	return &LazyPool{connect: connect}
}

// Get returns the underlying pool, connecting if it is not yet.
func (l *LazyPool) Get(ctx context.Context) (Pool, error) {
	l.mu.RLock()
	p := l.pool
	l.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	ch := l.flight.DoChan("connect", func() (any, error) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.pool != nil {
			return l.pool, nil
		}

		// the attempt is shared. it should not be aborted by the first caller leaving.
		p, err := l.connect(context.WithoutCancel(ctx))
		if err != nil {
			return nil, xe.Wrap(err)
		}
		l.pool = p
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(Pool), nil
	}
}

func (l *LazyPool) Begin(ctx context.Context) (Tx, error) {
	p, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return p.Begin(ctx)
}

func (l *LazyPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (Tx, error) {
	p, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return p.BeginTx(ctx, txOptions)
}

func (l *LazyPool) Acquire(ctx context.Context) (Conn, error) {
	p, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return p.Acquire(ctx)
}

func (l *LazyPool) Ping(ctx context.Context) error {
	p, err := l.Get(ctx)
	if err != nil {
		return err
	}
	return p.Ping(ctx)
}

// Close closes the underlying pool if connected. The LazyPool can connect again after that.
func (l *LazyPool) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		l.pool.Close()
		l.pool = nil
	}
}
