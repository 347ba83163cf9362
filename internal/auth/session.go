package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks issued token ids. It is the switch between fully
// stateless tokens and revocable, store-backed sessions.
type SessionStore interface {
	Create(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}

// StatelessSessions trusts signature and expiry alone. Tokens cannot be revoked.
type StatelessSessions struct{}

func (StatelessSessions) Create(context.Context, string, int64, time.Duration) error { return nil }

func (StatelessSessions) Exists(context.Context, string) (bool, error) { return true, nil }

func (StatelessSessions) Revoke(context.Context, string) error { return nil }

const sessionKeyPrefix = "portal:session:"

// RedisSessionStore keeps one key per token id, expiring with the token.
type RedisSessionStore struct {
	client redis.Cmdable
}

// NewRedisSessionStore builds a store on top of an existing client.
func NewRedisSessionStore(client redis.Cmdable) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(tokenID), strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, sessionKey(tokenID)).Err()
}

func sessionKey(tokenID string) string {
	return sessionKeyPrefix + tokenID
}
