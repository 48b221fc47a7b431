package docstore

import (
	"context"
	"fmt"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// Options selects and locates a backend.
type Options struct {
	Backend     Backend
	Path        string
	RedisURL    string
	PostgresURL string
}

// Open returns the Store configured by opts. An empty backend means sqlite.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend requires a path")
		}
		s, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend requires a url")
		}
		s, err := NewRedisStore(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendPostgres:
		if opts.PostgresURL == "" {
			return nil, fmt.Errorf("postgres backend requires a url")
		}
		s, err := OpenPostgres(ctx, opts.PostgresURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
