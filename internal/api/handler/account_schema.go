package handler

import (
	"strings"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type createAccountRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Role     string  `json:"role" validate:"required,oneof=admin user"`
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Username *string `json:"username" validate:"omitempty,min=3,max=60"`
}

func (r *createAccountRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	trimPtr(&r.FullName)
	trimPtr(&r.Username)
}

type updateAccountRequest struct {
	Role     *string                 `json:"role" validate:"omitempty,oneof=admin user"`
	FullName domain.Optional[string] `json:"full_name"`
	Username domain.Optional[string] `json:"username"`
}

func (r *updateAccountRequest) normalize() {
	trimOpt(&r.FullName)
	trimOpt(&r.Username)
}

// validate covers the constraints inside Optional wrappers, which the tag
// validator cannot reach.
func (r *updateAccountRequest) validate() error {
	var fe fieldErrors
	if r.Username.Set && r.Username.Value != nil && len(*r.Username.Value) < 3 {
		fe.addf("username must be at least 3 characters")
	}
	if r.FullName.Set && r.FullName.Value != nil && len(*r.FullName.Value) > 200 {
		fe.addf("full_name must be at most 200 characters")
	}
	return fe.err()
}

type accountEnvelope struct {
	Account *domain.Profile `json:"account"`
}

type createAccountEnvelope struct {
	Account      *domain.Profile `json:"account"`
	RecoveryLink string          `json:"recovery_link"`
}

type accountListEnvelope struct {
	Accounts []domain.Profile `json:"accounts"`
}

// --- shared string helpers ---

func trimPtr(s **string) {
	if *s != nil {
		t := strings.TrimSpace(**s)
		*s = &t
	}
}

func trimOpt(o *domain.Optional[string]) {
	if o.Set && o.Value != nil {
		t := strings.TrimSpace(*o.Value)
		o.Value = &t
	}
}
