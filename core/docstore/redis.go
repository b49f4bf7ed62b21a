package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rwk-afmg/core/reconcile"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection as a list of identities plus one JSON value per document.
//
//	<prefix>:collections        set of collection names
//	<prefix>:collection:<name>  list of identities in creation order
//	<prefix>:doc:<identity>     JSON encoded reconcile.Stored
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRedisStore creates a store on top of an open client.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "afmg"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) collectionsKey() string {
	return s.prefix + ":collections"
}

func (s *RedisStore) collectionKey(name string) string {
	return s.prefix + ":collection:" + name
}

func (s *RedisStore) docKey(id string) string {
	return s.prefix + ":doc:" + id
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]reconcile.Materialized, error) {
	docs, err := s.Documents(ctx, collection)
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.Materialized, 0, len(docs))
	for _, d := range docs {
		out = append(out, reconcile.Materialized{Identity: d.Identity, SourceID: d.SourceID})
	}
	return out, nil
}

func (s *RedisStore) CreateMany(ctx context.Context, collection string, docs []reconcile.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(docs))
	values := make([]any, 0, len(docs))
	payloads := make([][]byte, 0, len(docs))
	for _, d := range docs {
		id := uuid.NewString()
		data, err := json.Marshal(reconcile.Stored{Identity: id, Document: d})
		if err != nil {
			return nil, fmt.Errorf("failed to encode document: %w", err)
		}
		ids = append(ids, id)
		values = append(values, id)
		payloads = append(payloads, data)
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			pipe.Set(ctx, s.docKey(id), payloads[i], 0)
		}
		pipe.RPush(ctx, s.collectionKey(collection), values...)
		pipe.SAdd(ctx, s.collectionsKey(), collection)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *RedisStore) UpdateMany(ctx context.Context, collection string, updates []reconcile.Update) error {
	if len(updates) == 0 {
		return nil
	}

	existing, err := s.Documents(ctx, collection)
	if err != nil {
		return err
	}
	byID := make(map[string]reconcile.Stored, len(existing))
	for _, d := range existing {
		byID[d.Identity] = d
	}

	payloads := make(map[string][]byte, len(updates))
	for _, u := range updates {
		prior, ok := byID[u.Identity]
		if !ok {
			return fmt.Errorf("%s/%s: %w", collection, u.Identity, ErrNotFound)
		}
		doc := u.Document
		doc.Permission = prior.Permission
		data, err := json.Marshal(reconcile.Stored{Identity: u.Identity, Document: doc})
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		payloads[u.Identity] = data
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for id, data := range payloads {
			pipe.Set(ctx, s.docKey(id), data, 0)
		}
		return nil
	})
	return err
}

func (s *RedisStore) Drop(ctx context.Context, collection string) error {
	ids, err := s.rdb.LRange(ctx, s.collectionKey(collection), 0, -1).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.docKey(id))
	}
	keys = append(keys, s.collectionKey(collection))

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.SRem(ctx, s.collectionsKey(), collection)
		return nil
	})
	return err
}

func (s *RedisStore) Documents(ctx context.Context, collection string) ([]reconcile.Stored, error) {
	ids, err := s.rdb.LRange(ctx, s.collectionKey(collection), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.docKey(id))
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.Stored, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s/%s: %w", collection, ids[i], ErrNotFound)
		}
		var stored reconcile.Stored
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", ids[i], err)
		}
		out = append(out, stored)
	}
	return out, nil
}

// Collections returns the names of every collection written by this store.
func (s *RedisStore) Collections(ctx context.Context) ([]string, error) {
	return s.rdb.SMembers(ctx, s.collectionsKey()).Result()
}
