package repository

import (
	"context"
	"time"

	"investor-portal-backend/internal/domain"
)

type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	GetByToken(ctx context.Context, token string) (*domain.Invite, error)
	GetByID(ctx context.Context, id string) (*domain.Invite, error)
	GetPendingByEmailAndFund(ctx context.Context, email string, fundID int32) (*domain.Invite, error)
	UpdateStatus(ctx context.Context, id string, status domain.InviteStatus, acceptedAt *time.Time) error
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error
	ListByFund(ctx context.Context, fundID int32) ([]domain.Invite, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id int32) error

	// Memberships
	UpsertMembership(ctx context.Context, m *domain.Membership) error
	GetMembership(ctx context.Context, userID, fundID int32) (*domain.Membership, error)
	UpdateMembershipRole(ctx context.Context, userID, fundID int32, role domain.MemberRole) error
	RemoveMembership(ctx context.Context, userID, fundID int32) error
	ListMembersByFund(ctx context.Context, fundID int32) ([]domain.User, []domain.Membership, error)
}

type FundRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Fund, error)
}

type InvestorProfileRepository interface {
	// Ensure creates the profile for (userID, fundID) if it does not
	// exist yet. Calling it twice leaves exactly one record.
	Ensure(ctx context.Context, userID, fundID int32) error
	GetByUserAndFund(ctx context.Context, userID, fundID int32) (*domain.InvestorProfile, error)
}

type ReminderJobRepository interface {
	Enqueue(ctx context.Context, job *domain.ReminderJob) error
	CancelByInvite(ctx context.Context, inviteID string) (int64, error)
	Cancel(ctx context.Context, inviteID string, reminderType domain.ReminderType) (bool, error)
	ListDue(ctx context.Context, now time.Time, limit int32) ([]domain.ReminderJob, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	PurgeSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
