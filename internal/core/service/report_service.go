package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/ports"
)

type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) MilestoneProgress(ctx context.Context, projectID int64) ([]ports.MilestoneProgressRow, error) {
	rows, err := s.repo.MilestoneProgress(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Total > 0 {
			rows[i].Progress = int(math.Round(float64(rows[i].Done) / float64(rows[i].Total) * 100))
		}
	}
	return rows, nil
}

func (s *ReportService) Burndown(ctx context.Context, projectID int64) ([]ports.BurndownPoint, error) {
	return s.repo.Burndown(ctx, projectID)
}

func (s *ReportService) TaskStatusSummary(ctx context.Context, projectID int64) ([]ports.StatusCountRow, error) {
	return s.repo.TaskStatusSummary(ctx, projectID)
}
