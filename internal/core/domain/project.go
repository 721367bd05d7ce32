package domain

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Project is the central aggregate: tasks and milestones hang off it.
type Project struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	CustomerID  *int64        `json:"customer_id" gorm:"index"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Progress    int           `json:"progress"`
	Status      ProjectStatus `json:"status"`
	CreatedBy   *string       `json:"created_by" gorm:"type:uuid"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Customer *Customer `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

// DatesOrdered reports whether start and end, when both set, are in order.
// Used by create and update paths before any persistence call.
func DatesOrdered(start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !start.After(*end)
}
