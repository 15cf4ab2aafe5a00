package service

import (
	"context"
	"time"

	"investor-portal-backend/internal/domain"
)

// InviteCreation is the outcome of creating or resending an invite.
// EmailError carries a degraded-delivery advisory; it never fails the call.
type InviteCreation struct {
	Invite     *domain.Invite `json:"invite"`
	EmailError string         `json:"email_error,omitempty"`
}

// Verification is a token lookup enriched for the acceptance screen.
type Verification struct {
	Invite         *domain.Invite `json:"invite"`
	FundName       string         `json:"fund_name"`
	InviterName    string         `json:"inviter_name"`
	IsExistingUser bool           `json:"is_existing_user"`
}

// AcceptRequest carries the acceptance form. Password and names are only
// required when no account exists for the invited email.
type AcceptRequest struct {
	Token     string
	Password  string
	FirstName string
	LastName  string
}

// Acceptance is the result of a successful accept. Credentials are only
// issued on the new-user branch; existing users sign in separately.
type Acceptance struct {
	User           *domain.User `json:"user"`
	AccessToken    string       `json:"access_token,omitempty"`
	RefreshToken   string       `json:"refresh_token,omitempty"`
	IsExistingUser bool         `json:"is_existing_user"`
}

type InviteService interface {
	CreateInvite(ctx context.Context, fundID, inviterID int32, email string, role domain.MemberRole, now time.Time) (*InviteCreation, error)
	VerifyToken(ctx context.Context, token string, now time.Time) (*Verification, error)
	AcceptInvite(ctx context.Context, req AcceptRequest, now time.Time) (*Acceptance, error)
	CancelInvite(ctx context.Context, inviteID string, fundID int32, now time.Time) error
	ResendInvite(ctx context.Context, inviteID string, fundID int32, now time.Time) (*InviteCreation, error)
	ListInvites(ctx context.Context, fundID int32) ([]domain.Invite, error)
}

type MemberService interface {
	UpdateMemberRole(ctx context.Context, callerID, fundID, userID int32, role domain.MemberRole) error
	RemoveMember(ctx context.Context, callerID, fundID, userID int32) error
	ListMembers(ctx context.Context, fundID int32) ([]domain.User, []domain.Membership, error)
}

// ReminderScheduler translates invite lifecycle events into delayed-job
// operations. All methods degrade to no-ops when the queue backend is
// unavailable; they never fail the triggering operation.
type ReminderScheduler interface {
	ScheduleReminders(ctx context.Context, inviteID string, fundID int32, now time.Time)
	CancelReminders(ctx context.Context, inviteID string) int
	CancelReminder(ctx context.Context, inviteID string, reminderType domain.ReminderType) bool
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, fundName, inviterName, inviteURL string) error
	SendInviteReminder(ctx context.Context, email, fundName, inviteURL string, expiresAt time.Time) error
}
