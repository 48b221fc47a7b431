package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Document fields are stored under fieldPrefix, so presenceField can never
// collide with one. presenceField marks a hash as existing with no fields.
const (
	fieldPrefix   = "f:"
	presenceField = "doc"
)

// RedisStore keeps each document in a hash, one hash field per top-level
// document field.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to redisURL and pings it.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisStoreWithClient(client), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "cptrack:doc:"}
}

func (s *RedisStore) key(ref Ref) string {
	return s.prefix + ref.String()
}

func (s *RedisStore) Get(ctx context.Context, ref Ref) (Snapshot, error) {
	vals, err := s.client.HGetAll(ctx, s.key(ref)).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %s: %w", ref, err)
	}
	if len(vals) == 0 {
		return Snapshot{Ref: ref}, nil
	}
	f := make(Fields, len(vals))
	for k, v := range vals {
		name, ok := strings.CutPrefix(k, fieldPrefix)
		if !ok {
			continue
		}
		if !json.Valid([]byte(v)) {
			return Snapshot{}, fmt.Errorf("decoding %s: field %q is not JSON", ref, name)
		}
		f[name] = json.RawMessage(v)
	}
	return Snapshot{Ref: ref, Exists: true, Fields: f}, nil
}

func (s *RedisStore) Set(ctx context.Context, ref Ref, fields Fields, opts ...SetOption) error {
	o := applySetOptions(opts)
	key := s.key(ref)
	args := hashArgs(fields)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if !o.merge {
			pipe.Del(ctx, key)
		}
		pipe.HSet(ctx, key, args...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", ref, err)
	}
	return nil
}

func (s *RedisStore) Update(ctx context.Context, ref Ref, fields Fields) error {
	key := s.key(ref)
	args := hashArgs(fields)
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, args...)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("updating %s: %w", ref, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating %s: %w", ref, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks that redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func hashArgs(fields Fields) []any {
	args := make([]any, 0, 2*len(fields)+2)
	args = append(args, presenceField, "1")
	for k, v := range fields {
		args = append(args, fieldPrefix+k, string(v))
	}
	return args
}
