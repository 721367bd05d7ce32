package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

const recoveryTokenTTL = 24 * time.Hour

// AccountService manages back-office accounts: an identity-provider row plus
// a profile row, always created and deleted together.
type AccountService struct {
	repo       ports.AccountRepository
	recovery   ports.RecoveryTokenStore
	appBaseURL string
	logger     zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, recovery ports.RecoveryTokenStore, appBaseURL string, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, recovery: recovery, appBaseURL: appBaseURL, logger: logger}
}

// Create provisions the auth user and its profile in one transaction, then
// mints the one-time recovery link the admin hands to the new user. The
// account has no usable password until that link is followed.
func (s *AccountService) Create(ctx context.Context, in ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	user := &domain.AuthUser{
		ID:        id,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	profile := &domain.Profile{
		ID:        id,
		Email:     in.Email,
		FullName:  in.FullName,
		Username:  in.Username,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, user, profile)
	if err != nil {
		return nil, err
	}

	token, err := s.recovery.Mint(ctx, id, recoveryTokenTTL)
	if err != nil {
		// The account exists; surface the link failure rather than a
		// half-rolled-back creation.
		s.logger.Error().Err(err).Str("account_id", id).Msg("recovery token mint failed")
		return nil, err
	}

	s.logger.Info().Str("account_id", id).Str("role", in.Role).Msg("account created")

	return &ports.CreateAccountResult{
		Profile:      created,
		RecoveryLink: s.appBaseURL + "/reset-password?token=" + token,
	}, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context, search string) ([]domain.Profile, error) {
	return s.repo.List(ctx, search)
}

func (s *AccountService) Update(ctx context.Context, id string, in ports.UpdateAccountInput) (*domain.Profile, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.FullName.Set {
		fields["full_name"] = in.FullName.Value
	}
	if in.Username.Set {
		fields["username"] = in.Username.Value
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}

	updated, err := s.repo.Update(ctx, id, fields, in.Role)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Msg("account deleted")
	return nil
}
