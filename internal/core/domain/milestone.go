package domain

import "time"

// Milestone groups tasks of a project under a delivery target. Its status
// reuses the task status enum.
type Milestone struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	ProjectID   int64      `json:"project_id" gorm:"index"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Project *Project `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
