package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix         = "session:"
	accountSessionsKeyPrefix = "account_sessions:"
)

// SessionStore tracks server-side sessions so tokens can be revoked before
// they expire.
//
//go:generate mockgen -source=auth_session.go -destination=mock/auth_session_mock.go -package=mock
type SessionStore interface {
	Create(ctx context.Context, accountID uuid.UUID, ttl time.Duration) (string, error)
	Exists(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeAll(ctx context.Context, accountID uuid.UUID) error
}

type redisSessionStore struct {
	client redis.Cmdable
}

func NewSessionStore(client redis.Cmdable) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func accountSessionsKey(accountID string) string {
	return accountSessionsKeyPrefix + accountID
}

func (s *redisSessionStore) Create(ctx context.Context, accountID uuid.UUID, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	setKey := accountSessionsKey(accountID.String())

	if err := s.client.Set(ctx, sessionKey(sessionID), accountID.String(), ttl).Err(); err != nil {
		return "", err
	}
	if err := s.client.SAdd(ctx, setKey, sessionID).Err(); err != nil {
		return "", err
	}
	// the index lives as long as the newest session
	if err := s.client.Expire(ctx, setKey, ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *redisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke is a no-op for unknown or already expired sessions.
func (s *redisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	accountID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return err
	}
	return s.client.SRem(ctx, accountSessionsKey(accountID), sessionID).Err()
}

func (s *redisSessionStore) RevokeAll(ctx context.Context, accountID uuid.UUID) error {
	setKey := accountSessionsKey(accountID.String())

	ids, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}

	if len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = sessionKey(id)
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return s.client.Del(ctx, setKey).Err()
}
