package ports

import "context"

// MilestoneProgressRow is one milestone with its task completion ratio.
// Progress is a rounded percentage, 0 when the milestone has no tasks.
type MilestoneProgressRow struct {
	MilestoneID int64  `json:"milestone_id"`
	Title       string `json:"title"`
	Total       int    `json:"total"`
	Done        int    `json:"done"`
	Progress    int    `json:"progress"`
}

// BurndownPoint is one day of the cumulative created-vs-done series.
type BurndownPoint struct {
	Day   string `json:"day"`
	Total int    `json:"total"`
	Done  int    `json:"done"`
}

// StatusCountRow is a task count bucketed by status.
type StatusCountRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ReportRepository interface {
	MilestoneProgress(ctx context.Context, projectID int64) ([]MilestoneProgressRow, error)
	Burndown(ctx context.Context, projectID int64) ([]BurndownPoint, error)
	TaskStatusSummary(ctx context.Context, projectID int64) ([]StatusCountRow, error)
}

type ReportService interface {
	MilestoneProgress(ctx context.Context, projectID int64) ([]MilestoneProgressRow, error)
	Burndown(ctx context.Context, projectID int64) ([]BurndownPoint, error)
	TaskStatusSummary(ctx context.Context, projectID int64) ([]StatusCountRow, error)
}
