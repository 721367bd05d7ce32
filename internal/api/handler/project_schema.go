package handler

import (
	"strings"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type createProjectRequest struct {
	CustomerID  *int64    `json:"customer_id" validate:"omitempty,gt=0"`
	Title       string    `json:"title" validate:"required,min=3,max=200"`
	Description *string   `json:"description"`
	StartDate   *DateTime `json:"start_date"`
	EndDate     *DateTime `json:"end_date"`
	Progress    *int      `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Status      *string   `json:"status" validate:"omitempty,oneof=planned active paused completed cancelled"`
}

func (r *createProjectRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Description)
}

func (r *createProjectRequest) validate() error {
	var fe fieldErrors
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

func (r *createProjectRequest) status() domain.ProjectStatus {
	if r.Status == nil {
		return domain.ProjectPlanned
	}
	return domain.ProjectStatus(*r.Status)
}

type updateProjectRequest struct {
	CustomerID  domain.Optional[int64]    `json:"customer_id"`
	Title       *string                   `json:"title" validate:"omitempty,min=3,max=200"`
	Description domain.Optional[string]   `json:"description"`
	StartDate   domain.Optional[DateTime] `json:"start_date"`
	EndDate     domain.Optional[DateTime] `json:"end_date"`
	Progress    *int                      `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Status      *string                   `json:"status" validate:"omitempty,oneof=planned active paused completed cancelled"`
}

func (r *updateProjectRequest) normalize() {
	trimPtr(&r.Title)
	trimOpt(&r.Description)
}

func (r *updateProjectRequest) validate() error {
	var fe fieldErrors
	if r.CustomerID.Set && r.CustomerID.Value != nil && *r.CustomerID.Value <= 0 {
		fe.addf("customer_id must be a positive integer")
	}
	if r.Description.Set && r.Description.Value != nil && len(*r.Description.Value) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

func (r *updateProjectRequest) status() *domain.ProjectStatus {
	if r.Status == nil {
		return nil
	}
	s := domain.ProjectStatus(*r.Status)
	return &s
}

type projectEnvelope struct {
	Project *domain.Project `json:"project"`
}

type projectListEnvelope struct {
	Projects []domain.Project `json:"projects"`
}
