package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session entries in Redis.
const keyPrefix = "auth_"

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

// Key returns the Redis key under which a token's session lives.
func Key(token string) string {
	return keyPrefix + token
}

// Store maps opaque session tokens to user IDs with an expiry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Issue generates a random opaque token and stores it against userID.
func (s *Store) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, Key(token), userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user ID bound to a session key, or "" when the key is
// unknown or expired. Absence is not an error.
func (s *Store) Resolve(ctx context.Context, key string) (string, error) {
	userID, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Revoke removes a session key. Revoking an unknown key is a no-op.
func (s *Store) Revoke(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// IsAlive reports whether the backing Redis server answers a ping.
func (s *Store) IsAlive(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}
