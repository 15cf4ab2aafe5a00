package domain

import "errors"

// Business-rule failures surfaced to the HTTP boundary. Store and queue
// failures are wrapped separately and treated as dependency errors.
var (
	ErrInviteNotFound   = errors.New("invite not found")
	ErrInviteExpired    = errors.New("invite has expired")
	ErrInviteUsed       = errors.New("invite has already been used")
	ErrInviteNotPending = errors.New("invite is not pending")
	ErrDuplicateInvite  = errors.New("a pending invite already exists for this email")
	ErrAlreadyMember    = errors.New("user is already a member of this fund")
	ErrInvalidRole      = errors.New("invalid role")
	ErrForbidden        = errors.New("operation not permitted")
	ErrMissingFields    = errors.New("password, first name and last name are required")
	ErrUserNotFound     = errors.New("user not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrFundNotFound     = errors.New("fund not found")
)
