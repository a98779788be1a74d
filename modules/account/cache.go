package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/wordchain/pkg/cache"
	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// Cache holds recently looked-up accounts.
type Cache interface {
	Get(ctx context.Context, id string) (session.Account, bool, error)
	Set(ctx context.Context, acc session.Account) error
	Delete(ctx context.Context, id string) error
}

// CachedStore serves Lookup from a Cache and falls back to the wrapped
// Store. Cache failures are logged and never fail the operation.
type CachedStore struct {
	Store
	cache Cache
	log   *slog.Logger
}

func NewCachedStore(store Store, c Cache, log *slog.Logger) *CachedStore {
	if log == nil {
		log = logger.Discard()
	}
	return &CachedStore{Store: store, cache: c, log: log}
}

func (s *CachedStore) Lookup(ctx context.Context, id string) (session.Account, error) {
	acc, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "account cache read failed", logger.Component("account"), logger.Error(err))
	}
	if ok {
		return acc, nil
	}

	acc, err = s.Store.Lookup(ctx, id)
	if err != nil {
		return session.Account{}, err
	}

	if err := s.cache.Set(ctx, acc); err != nil {
		s.log.WarnContext(ctx, "account cache write failed", logger.Component("account"), logger.Error(err))
	}
	return acc, nil
}

// Delete removes the account from the store first, then from the cache.
func (s *CachedStore) Delete(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "account cache invalidation failed", logger.Component("account"), logger.Error(err))
	}
	return nil
}

// RedisCache stores accounts as JSON under "<prefix><id>".
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: "wordchain:account:", ttl: ttl}
}

type cachedAccount struct {
	ID   string `json:"id"`
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

func (c *RedisCache) Get(ctx context.Context, id string) (session.Account, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Account{}, false, nil
	}
	if err != nil {
		return session.Account{}, false, fmt.Errorf("account cache: get: %w", err)
	}

	var v cachedAccount
	if err := json.Unmarshal(raw, &v); err != nil {
		return session.Account{}, false, fmt.Errorf("account cache: decode: %w", err)
	}
	return session.Account{ID: v.ID, PasswordSalt: v.Salt, PasswordHash: v.Hash}, true, nil
}

func (c *RedisCache) Set(ctx context.Context, acc session.Account) error {
	raw, err := json.Marshal(cachedAccount{ID: acc.ID, Salt: acc.PasswordSalt, Hash: acc.PasswordHash})
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.prefix+acc.ID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("account cache: set: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.prefix+id).Err(); err != nil {
		return fmt.Errorf("account cache: del: %w", err)
	}
	return nil
}

// MemoryCache is a per-process Cache backed by an LRU.
type MemoryCache struct {
	lru *cache.LRU[string, session.Account]
}

func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = DefaultConfig().CacheSize
	}
	return &MemoryCache{lru: cache.NewLRU[string, session.Account](size, ttl)}
}

func (c *MemoryCache) Get(_ context.Context, id string) (session.Account, bool, error) {
	acc, ok := c.lru.Get(id)
	return acc, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, acc session.Account) error {
	c.lru.Put(acc.ID, acc)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, id string) error {
	c.lru.Remove(id)
	return nil
}
