package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusCancelled InviteStatus = "cancelled"
)

type MemberRole string

const (
	RoleManager    MemberRole = "manager"
	RoleAccountant MemberRole = "accountant"
	RoleAttorney   MemberRole = "attorney"
	RoleInvestor   MemberRole = "investor"
)

// Valid reports whether the role is one of the four member roles.
func (r MemberRole) Valid() bool {
	switch r {
	case RoleManager, RoleAccountant, RoleAttorney, RoleInvestor:
		return true
	}
	return false
}

// Invite is an offer for an email address to join a fund with a role.
// The token is fixed for the life of the invite; resend only moves ExpiresAt.
type Invite struct {
	ID              string       `json:"id"`
	Email           string       `json:"email"`
	FundID          int32        `json:"fund_id"`
	Role            MemberRole   `json:"role"`
	Token           string       `json:"token"`
	Status          InviteStatus `json:"status"`
	InvitedByUserID int32        `json:"invited_by_user_id"`
	ExpiresAt       time.Time    `json:"expires_at"`
	AcceptedAt      *time.Time   `json:"accepted_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
