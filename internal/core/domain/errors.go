package domain

import "errors"

// Sentinel errors carry the failure kind from the point of detection to the
// central HTTP error handler. Handlers and services never encode status codes
// by matching message text.
var (
	ErrUnauthorized         = errors.New("missing or invalid bearer token")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("admin access required")
	ErrRecoveryTokenInvalid = errors.New("recovery token invalid or expired")

	ErrEmailTaken   = errors.New("email already in use")
	ErrMemberExists = errors.New("member already added to project")

	ErrAccountNotFound   = errors.New("account not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrMemberNotFound    = errors.New("member not found")

	ErrDateRange         = errors.New("start date cannot be after end date")
	ErrMilestoneMismatch = errors.New("milestone does not belong to project")
	ErrInvalidReference  = errors.New("referenced record does not exist")
)
