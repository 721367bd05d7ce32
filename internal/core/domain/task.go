package domain

import "time"

// TaskStatus mirrors the kanban columns.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task belongs to a project and optionally to a milestone of the same
// project. Archiving is a soft delete: list endpoints skip archived tasks
// unless asked otherwise.
type Task struct {
	ID          int64        `json:"id" gorm:"primaryKey"`
	ProjectID   int64        `json:"project_id" gorm:"index"`
	MilestoneID *int64       `json:"milestone_id" gorm:"index"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"index"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  *string      `json:"assignee_id" gorm:"type:uuid;index"`
	DueDate     *time.Time   `json:"due_date"`
	OrderIndex  int          `json:"order_index"`
	IsArchived  bool         `json:"is_archived"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Project   *Project   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Milestone *Milestone `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}
