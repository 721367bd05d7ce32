package handler

import (
	"strings"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type createMilestoneRequest struct {
	ProjectID   int64     `json:"project_id" validate:"required,gt=0"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description *string   `json:"description"`
	StartDate   *DateTime `json:"start_date"`
	DueDate     *DateTime `json:"due_date"`
	Status      *string   `json:"status" validate:"omitempty,oneof=todo in_progress blocked done"`
}

func (r *createMilestoneRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Description)
}

func (r *createMilestoneRequest) validate() error {
	var fe fieldErrors
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

func (r *createMilestoneRequest) status() domain.TaskStatus {
	if r.Status == nil {
		return domain.TaskTodo
	}
	return domain.TaskStatus(*r.Status)
}

type updateMilestoneRequest struct {
	Title       *string                   `json:"title" validate:"omitempty,min=1,max=200"`
	Description domain.Optional[string]   `json:"description"`
	StartDate   domain.Optional[DateTime] `json:"start_date"`
	DueDate     domain.Optional[DateTime] `json:"due_date"`
	Status      *string                   `json:"status" validate:"omitempty,oneof=todo in_progress blocked done"`
}

func (r *updateMilestoneRequest) normalize() {
	trimPtr(&r.Title)
	trimOpt(&r.Description)
}

func (r *updateMilestoneRequest) validate() error {
	var fe fieldErrors
	if r.Description.Set && r.Description.Value != nil && len(*r.Description.Value) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

func (r *updateMilestoneRequest) status() *domain.TaskStatus {
	if r.Status == nil {
		return nil
	}
	s := domain.TaskStatus(*r.Status)
	return &s
}

type milestoneEnvelope struct {
	Milestone *domain.Milestone `json:"milestone"`
}

type milestoneListEnvelope struct {
	Milestones []domain.Milestone `json:"milestones"`
}
