package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"investor-portal-backend/internal/domain"
)

// MockInviteRepo
type MockInviteRepo struct {
	mock.Mock
}

func (m *MockInviteRepo) Create(ctx context.Context, inv *domain.Invite) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInviteRepo) GetByToken(ctx context.Context, token string) (*domain.Invite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}
func (m *MockInviteRepo) GetByID(ctx context.Context, id string) (*domain.Invite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}
func (m *MockInviteRepo) GetPendingByEmailAndFund(ctx context.Context, email string, fundID int32) (*domain.Invite, error) {
	args := m.Called(ctx, email, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}
func (m *MockInviteRepo) UpdateStatus(ctx context.Context, id string, status domain.InviteStatus, acceptedAt *time.Time) error {
	args := m.Called(ctx, id, status, acceptedAt)
	return args.Error(0)
}
func (m *MockInviteRepo) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	args := m.Called(ctx, id, expiresAt)
	return args.Error(0)
}
func (m *MockInviteRepo) ListByFund(ctx context.Context, fundID int32) ([]domain.Invite, error) {
	args := m.Called(ctx, fundID)
	return args.Get(0).([]domain.Invite), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) UpsertMembership(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}
func (m *MockUserRepo) GetMembership(ctx context.Context, userID, fundID int32) (*domain.Membership, error) {
	args := m.Called(ctx, userID, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockUserRepo) UpdateMembershipRole(ctx context.Context, userID, fundID int32, role domain.MemberRole) error {
	args := m.Called(ctx, userID, fundID, role)
	return args.Error(0)
}
func (m *MockUserRepo) RemoveMembership(ctx context.Context, userID, fundID int32) error {
	args := m.Called(ctx, userID, fundID)
	return args.Error(0)
}
func (m *MockUserRepo) ListMembersByFund(ctx context.Context, fundID int32) ([]domain.User, []domain.Membership, error) {
	args := m.Called(ctx, fundID)
	return args.Get(0).([]domain.User), args.Get(1).([]domain.Membership), args.Error(2)
}

// MockFundRepo
type MockFundRepo struct {
	mock.Mock
}

func (m *MockFundRepo) GetByID(ctx context.Context, id int32) (*domain.Fund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Ensure(ctx context.Context, userID, fundID int32) error {
	args := m.Called(ctx, userID, fundID)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByUserAndFund(ctx context.Context, userID, fundID int32) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, userID, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}

// MockReminderScheduler
type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) ScheduleReminders(ctx context.Context, inviteID string, fundID int32, now time.Time) {
	m.Called(ctx, inviteID, fundID, now)
}
func (m *MockReminderScheduler) CancelReminders(ctx context.Context, inviteID string) int {
	args := m.Called(ctx, inviteID)
	return args.Int(0)
}
func (m *MockReminderScheduler) CancelReminder(ctx context.Context, inviteID string, reminderType domain.ReminderType) bool {
	args := m.Called(ctx, inviteID, reminderType)
	return args.Bool(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, email, fundName, inviterName, inviteURL string) error {
	args := m.Called(ctx, email, fundName, inviterName, inviteURL)
	return args.Error(0)
}
func (m *MockEmailService) SendInviteReminder(ctx context.Context, email, fundName, inviteURL string, expiresAt time.Time) error {
	args := m.Called(ctx, email, fundName, inviteURL, expiresAt)
	return args.Error(0)
}
