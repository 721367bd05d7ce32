package handler

import (
	"strings"

	"github.com/google/uuid"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type createTaskRequest struct {
	ProjectID   int64     `json:"project_id" validate:"required,gt=0"`
	MilestoneID *int64    `json:"milestone_id" validate:"omitempty,gt=0"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" validate:"omitempty,oneof=todo in_progress blocked done"`
	Priority    *string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  *string   `json:"assignee_id" validate:"omitempty,uuid"`
	DueDate     *DateTime `json:"due_date"`
	OrderIndex  *int      `json:"order_index" validate:"omitempty,gte=0"`
}

func (r *createTaskRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Description)
}

func (r *createTaskRequest) validate() error {
	var fe fieldErrors
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

func (r *createTaskRequest) status() domain.TaskStatus {
	if r.Status == nil {
		return domain.TaskTodo
	}
	return domain.TaskStatus(*r.Status)
}

func (r *createTaskRequest) priority() domain.TaskPriority {
	if r.Priority == nil {
		return domain.PriorityMedium
	}
	return domain.TaskPriority(*r.Priority)
}

type updateTaskRequest struct {
	Title       *string                   `json:"title" validate:"omitempty,min=1,max=200"`
	Description domain.Optional[string]   `json:"description"`
	Status      *string                   `json:"status" validate:"omitempty,oneof=todo in_progress blocked done"`
	Priority    *string                   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  domain.Optional[string]   `json:"assignee_id"`
	DueDate     domain.Optional[DateTime] `json:"due_date"`
	MilestoneID domain.Optional[int64]    `json:"milestone_id"`
	OrderIndex  *int                      `json:"order_index" validate:"omitempty,gte=0"`
	IsArchived  *bool                     `json:"is_archived"`
}

func (r *updateTaskRequest) normalize() {
	trimPtr(&r.Title)
	trimOpt(&r.Description)
}

func (r *updateTaskRequest) validate() error {
	var fe fieldErrors
	if r.Description.Set && r.Description.Value != nil && len(*r.Description.Value) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	if r.MilestoneID.Set && r.MilestoneID.Value != nil && *r.MilestoneID.Value <= 0 {
		fe.addf("milestone_id must be a positive integer")
	}
	if r.AssigneeID.Set && r.AssigneeID.Value != nil {
		if _, err := uuid.Parse(*r.AssigneeID.Value); err != nil {
			fe.addf("assignee_id must be a valid uuid")
		}
	}
	return fe.err()
}

func (r *updateTaskRequest) status() *domain.TaskStatus {
	if r.Status == nil {
		return nil
	}
	s := domain.TaskStatus(*r.Status)
	return &s
}

func (r *updateTaskRequest) priority() *domain.TaskPriority {
	if r.Priority == nil {
		return nil
	}
	p := domain.TaskPriority(*r.Priority)
	return &p
}

type reorderTaskRequest struct {
	ID         int64   `json:"id" validate:"required,gt=0"`
	OrderIndex int     `json:"order_index" validate:"gte=0"`
	Status     *string `json:"status" validate:"omitempty,oneof=todo in_progress blocked done"`
}

func (r *reorderTaskRequest) status() *domain.TaskStatus {
	if r.Status == nil {
		return nil
	}
	s := domain.TaskStatus(*r.Status)
	return &s
}

type taskEnvelope struct {
	Task *domain.Task `json:"task"`
}

type taskListEnvelope struct {
	Items []domain.Task `json:"items"`
}
