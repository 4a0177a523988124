package auth

import (
	"context"
	"time"

	"eventadmin/internal/cache"
)

const revokedSessionKeyPrefix = "revoked_session:"

// SessionStoreInterface defines the interface for session revocation.
type SessionStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionStore keeps a revocation list of logged-out session tokens in Redis.
// Entries expire together with the token itself, so the list stays small.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Revoke marks a session token id as logged out until it would expire anyway.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := revokedSessionKeyPrefix + tokenID
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsRevoked checks whether a session token id has been revoked.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedSessionKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // fail safe
	}
	return data != nil, nil
}
