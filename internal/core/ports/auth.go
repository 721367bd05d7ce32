package ports

import (
	"context"
	"time"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// AuthRepository persists credential rows of the internal identity provider.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
	SetPassword(ctx context.Context, userID, passwordHash string) error
}

// RecoveryTokenStore holds one-time password-recovery tokens. Tokens expire
// on their own; Consume removes the token so it cannot be replayed.
type RecoveryTokenStore interface {
	Mint(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (string, error)
}

// AuthService exchanges credentials for bearer tokens and completes the
// recovery-link flow started by account creation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.AuthUser, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}
