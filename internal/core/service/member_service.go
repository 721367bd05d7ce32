package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type MemberService struct {
	repo   ports.MemberRepository
	logger zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, logger zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, logger: logger}
}

func (s *MemberService) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	return s.repo.ListEmployees(ctx, search)
}

func (s *MemberService) Add(ctx context.Context, projectID, userID int64) (*domain.ProjectMember, error) {
	m, err := s.repo.AddProjectMember(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("project_id", projectID).Int64("user_id", userID).Msg("project member added")
	return m, nil
}

func (s *MemberService) ListForProject(ctx context.Context, projectID int64) ([]domain.ProjectMember, error) {
	return s.repo.ListProjectMembers(ctx, projectID)
}

func (s *MemberService) Remove(ctx context.Context, projectID, userID int64) error {
	if err := s.repo.RemoveProjectMember(ctx, projectID, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("project_id", projectID).Int64("user_id", userID).Msg("project member removed")
	return nil
}
