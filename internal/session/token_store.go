// Package session stores refresh token hashes.  Only the SHA-256 hash of a
// refresh token ever reaches this package; the raw value lives with the
// client.  Redis is the primary backend so sessions survive restarts and are
// shared across replicas.  Without Redis the store falls back to an
// in-process map, which is acceptable for a single-property deployment.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a refresh token hash is unknown or expired.
var ErrNotFound = errors.New("session: token not found")

const keyPrefix = "ch:session:"

type memEntry struct {
	userID int64
	role   string
	exp    time.Time
}

// TokenStore maps refresh token hashes to operator identity.  The role is
// stored alongside the id so refresh can mint a new access token without a
// round trip to the upstream API.
type TokenStore struct {
	rdb *redis.Client

	mu  sync.Mutex
	mem map[string]memEntry
}

// NewTokenStore builds a store backed by rdb, or by process memory when rdb
// is nil.
func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb, mem: make(map[string]memEntry)}
}

// Save records a refresh token hash with the given TTL, replacing any
// previous entry for the same hash.
func (s *TokenStore) Save(ctx context.Context, hash string, userID int64, role string, ttl time.Duration) error {
	if s.rdb != nil {
		val := fmt.Sprintf("%d:%s", userID, role)
		return s.rdb.Set(ctx, keyPrefix+hash, val, ttl).Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem[hash] = memEntry{userID: userID, role: role, exp: time.Now().Add(ttl)}
	return nil
}

// Lookup resolves a refresh token hash to the owning user id and role.
func (s *TokenStore) Lookup(ctx context.Context, hash string) (int64, string, error) {
	if s.rdb != nil {
		v, err := s.rdb.Get(ctx, keyPrefix+hash).Result()
		if errors.Is(err, redis.Nil) {
			return 0, "", ErrNotFound
		}
		if err != nil {
			return 0, "", err
		}
		idStr, role, _ := strings.Cut(v, ":")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return 0, "", ErrNotFound
		}
		return id, role, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.mem[hash]
	if !ok || time.Now().After(e.exp) {
		delete(s.mem, hash)
		return 0, "", ErrNotFound
	}
	return e.userID, e.role, nil
}

// Delete revokes a refresh token hash.  Deleting an unknown hash is not an
// error; logout must be idempotent.
func (s *TokenStore) Delete(ctx context.Context, hash string) error {
	if s.rdb != nil {
		return s.rdb.Del(ctx, keyPrefix+hash).Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mem, hash)
	return nil
}
