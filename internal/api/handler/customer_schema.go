package handler

import (
	"strings"

	"github.com/taskhive/backoffice/internal/core/domain"
)

const maxDescriptionLen = 10000

type createCustomerRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description"`
}

func (r *createCustomerRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Description)
}

func (r *createCustomerRequest) validate() error {
	var fe fieldErrors
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

type updateCustomerRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,min=3,max=200"`
	Description domain.Optional[string] `json:"description"`
}

func (r *updateCustomerRequest) normalize() {
	trimPtr(&r.Title)
	trimOpt(&r.Description)
}

func (r *updateCustomerRequest) validate() error {
	var fe fieldErrors
	if r.Description.Set && r.Description.Value != nil && len(*r.Description.Value) > maxDescriptionLen {
		fe.addf("description must be at most %d characters", maxDescriptionLen)
	}
	return fe.err()
}

type customerEnvelope struct {
	Customer *domain.Customer `json:"customer"`
}

type customerListEnvelope struct {
	Customers []domain.Customer `json:"customers"`
}
