package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// RecoveryTokenStore keeps one-time password-recovery tokens in Redis.
// Key format: recovery:<token> → user id. The TTL bounds how long an unused
// recovery link stays valid; Consume deletes the key so a link cannot be
// replayed.
type RecoveryTokenStore struct {
	client *redis.Client
}

func NewRecoveryTokenStore(client *redis.Client) *RecoveryTokenStore {
	return &RecoveryTokenStore{client: client}
}

// Mint stores a fresh random token for userID and returns it.
func (s *RecoveryTokenStore) Mint(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("recovery token: %w", err)
	}
	token := hex.EncodeToString(b)

	if err := s.client.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("recovery token store: %w", err)
	}
	return token, nil
}

// Consume resolves token to its user id and deletes it atomically. Unknown
// or expired tokens fail with domain.ErrRecoveryTokenInvalid.
func (s *RecoveryTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrRecoveryTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("recovery token lookup: %w", err)
	}
	return userID, nil
}

func (s *RecoveryTokenStore) key(token string) string {
	return "recovery:" + token
}
