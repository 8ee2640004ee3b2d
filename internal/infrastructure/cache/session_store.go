package cache

import (
	"context"
	"time"
)

// SessionStore guarda los JTI de tokens revocados hasta su expiración natural.
type SessionStore struct {
	cache RedisClient
}

func NewSessionStore(cache RedisClient) *SessionStore {
	return &SessionStore{cache: cache}
}

func revokedKey(jti string) string { return "revoked:" + jti }

// Revoke marca el token como revocado durante ttl. Con ttl <= 0 el token ya expiró y no hay nada que guardar.
func (s *SessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedKey(jti), "1", ttl)
}

// IsRevoked indica si el token fue revocado por un cierre de sesión.
func (s *SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.cache.Exists(ctx, revokedKey(jti))
}
