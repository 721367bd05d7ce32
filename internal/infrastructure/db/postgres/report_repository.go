package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskhive/backoffice/internal/core/ports"
)

// ReportRepository runs the aggregate queries behind the reports endpoints.
// These are raw SQL because gorm's query builder cannot express FILTER
// clauses or generate_series; project_id is still a bound parameter.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) MilestoneProgress(ctx context.Context, projectID int64) ([]ports.MilestoneProgressRow, error) {
	var rows []ports.MilestoneProgressRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id AS milestone_id, m.title,
		       count(t.id)::int AS total,
		       count(*) FILTER (WHERE t.status = 'done')::int AS done
		FROM milestones m
		LEFT JOIN tasks t ON t.milestone_id = m.id AND t.is_archived = false
		WHERE m.project_id = ?
		GROUP BY m.id, m.title
		ORDER BY m.start_date NULLS LAST, m.id DESC`, projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Burndown estimates per-day totals from created_at/updated_at; the schema
// keeps no per-transition event log.
func (r *ReportRepository) Burndown(ctx context.Context, projectID int64) ([]ports.BurndownPoint, error) {
	var rows []ports.BurndownPoint
	err := r.db.WithContext(ctx).Raw(`
		WITH days AS (
			SELECT generate_series(
				(SELECT min(created_at)::date FROM tasks WHERE project_id = @pid),
				(SELECT greatest(max(updated_at), now())::date FROM tasks WHERE project_id = @pid),
				interval '1 day'
			)::date AS day
		)
		SELECT d.day::text AS day,
		       (SELECT count(*) FROM tasks t WHERE t.project_id = @pid AND t.created_at::date <= d.day)::int AS total,
		       (SELECT count(*) FROM tasks t WHERE t.project_id = @pid AND t.status = 'done' AND t.updated_at::date <= d.day)::int AS done
		FROM days d
		ORDER BY d.day ASC`, map[string]any{"pid": projectID}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) TaskStatusSummary(ctx context.Context, projectID int64) ([]ports.StatusCountRow, error) {
	var rows []ports.StatusCountRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, count(*)::int AS count
		FROM tasks
		WHERE project_id = ? AND is_archived = false
		GROUP BY status`, projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
