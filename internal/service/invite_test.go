package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/security"
)

var testToken = strings.Repeat("ab", 32)

type inviteFixture struct {
	inviteRepo  *MockInviteRepo
	userRepo    *MockUserRepo
	fundRepo    *MockFundRepo
	profileRepo *MockProfileRepo
	reminders   *MockReminderScheduler
	email       *MockEmailService
	svc         InviteService
}

func newInviteFixture() *inviteFixture {
	f := &inviteFixture{
		inviteRepo:  new(MockInviteRepo),
		userRepo:    new(MockUserRepo),
		fundRepo:    new(MockFundRepo),
		profileRepo: new(MockProfileRepo),
		reminders:   new(MockReminderScheduler),
		email:       new(MockEmailService),
	}
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 60, 60*24*7)
	f.svc = NewInviteService(
		f.inviteRepo, f.userRepo, f.fundRepo, f.profileRepo,
		f.reminders, f.email, tokens,
		func() (string, error) { return testToken, nil },
		"https://portal.test", 7,
	)
	return f
}

func pendingInvite(now time.Time) *domain.Invite {
	return &domain.Invite{
		ID:              "inv-1",
		Email:           "a@x.com",
		FundID:          1,
		Role:            domain.RoleInvestor,
		Token:           testToken,
		Status:          domain.InviteStatusPending,
		InvitedByUserID: 9,
		ExpiresAt:       now.Add(7 * 24 * time.Hour),
		CreatedAt:       now,
	}
}

func TestInviteService_CreateInvite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.inviteRepo.On("GetPendingByEmailAndFund", ctx, "a@x.com", int32(1)).Return(nil, domain.ErrInviteNotFound)
		f.inviteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Invite")).Return(nil)
		f.reminders.On("ScheduleReminders", ctx, mock.AnythingOfType("string"), int32(1), now).Return()
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9, FirstName: "Mara", LastName: "Chen"}, nil)
		f.email.On("SendInvitation", ctx, "a@x.com", "Citadel Fund I", "Mara Chen",
			"https://portal.test/invite/accept?token="+testToken).Return(nil)

		result, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.NoError(t, err)
		assert.Len(t, result.Invite.Token, 64)
		assert.Equal(t, domain.InviteStatusPending, result.Invite.Status)
		assert.Equal(t, now.Add(7*24*time.Hour), result.Invite.ExpiresAt)
		assert.Empty(t, result.EmailError)
		f.inviteRepo.AssertExpectations(t)
		f.reminders.AssertExpectations(t)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		f := newInviteFixture()
		_, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.MemberRole("janitor"), now)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("AlreadyMember", func(t *testing.T) {
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: 2, Email: "a@x.com"}, nil)
		f.userRepo.On("GetMembership", ctx, int32(2), int32(1)).Return(&domain.Membership{UserID: 2, FundID: 1}, nil)

		_, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
		f.inviteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicatePending", func(t *testing.T) {
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.inviteRepo.On("GetPendingByEmailAndFund", ctx, "a@x.com", int32(1)).Return(pendingInvite(now), nil)

		_, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.ErrorIs(t, err, domain.ErrDuplicateInvite)
	})

	t.Run("DuplicateLostRace", func(t *testing.T) {
		// Two concurrent creates: the pre-check saw nothing but the
		// partial unique index rejected the insert.
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.inviteRepo.On("GetPendingByEmailAndFund", ctx, "a@x.com", int32(1)).Return(nil, domain.ErrInviteNotFound)
		f.inviteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Invite")).Return(domain.ErrDuplicateInvite)

		_, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.ErrorIs(t, err, domain.ErrDuplicateInvite)
		f.reminders.AssertNotCalled(t, "ScheduleReminders", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UserLookupFailurePropagates", func(t *testing.T) {
		// A store outage must not be read as "no such user": that would
		// skip the already-member check and create the invite anyway.
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, assert.AnError)

		_, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.ErrorIs(t, err, assert.AnError)
		f.inviteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MembershipLookupFailurePropagates", func(t *testing.T) {
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: 2, Email: "a@x.com"}, nil)
		f.userRepo.On("GetMembership", ctx, int32(2), int32(1)).Return(nil, assert.AnError)

		_, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.ErrorIs(t, err, assert.AnError)
		f.inviteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("EmailFailureIsAdvisory", func(t *testing.T) {
		f := newInviteFixture()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.inviteRepo.On("GetPendingByEmailAndFund", ctx, "a@x.com", int32(1)).Return(nil, domain.ErrInviteNotFound)
		f.inviteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Invite")).Return(nil)
		f.reminders.On("ScheduleReminders", ctx, mock.AnythingOfType("string"), int32(1), now).Return()
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9, FirstName: "Mara", LastName: "Chen"}, nil)
		f.email.On("SendInvitation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		result, err := f.svc.CreateInvite(ctx, 1, 9, "a@x.com", domain.RoleInvestor, now)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.EmailError)
	})
}

func TestInviteService_VerifyToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: 2, Email: "a@x.com"}, nil)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9, FirstName: "Mara", LastName: "Chen"}, nil)

		v, err := f.svc.VerifyToken(ctx, testToken, now)
		assert.NoError(t, err)
		assert.True(t, v.IsExistingUser)
		assert.Equal(t, "Citadel Fund I", v.FundName)
		assert.Equal(t, "Mara Chen", v.InviterName)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newInviteFixture()
		f.inviteRepo.On("GetByToken", ctx, "bogus").Return(nil, domain.ErrInviteNotFound)

		_, err := f.svc.VerifyToken(ctx, "bogus", now)
		assert.ErrorIs(t, err, domain.ErrInviteNotFound)
	})

	t.Run("Expired", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)

		_, err := f.svc.VerifyToken(ctx, testToken, now.Add(8*24*time.Hour))
		assert.ErrorIs(t, err, domain.ErrInviteExpired)
	})

	t.Run("AlreadyUsed", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		inv.Status = domain.InviteStatusAccepted
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)

		_, err := f.svc.VerifyToken(ctx, testToken, now)
		assert.ErrorIs(t, err, domain.ErrInviteUsed)
	})

	t.Run("UserLookupFailurePropagates", func(t *testing.T) {
		// Only a definite not-found may flip IsExistingUser to false; a
		// failing store must not route an existing user to the signup form.
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, assert.AnError)

		_, err := f.svc.VerifyToken(ctx, testToken, now)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Cancelled", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		inv.Status = domain.InviteStatusCancelled
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)

		_, err := f.svc.VerifyToken(ctx, testToken, now)
		assert.ErrorIs(t, err, domain.ErrInviteUsed)
	})
}

func TestInviteService_AcceptInvite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newUserReq := AcceptRequest{
		Token:     testToken,
		Password:  "s3cret-pass",
		FirstName: "Ada",
		LastName:  "Ng",
	}

	t.Run("NewUserSuccess", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9, FirstName: "Mara", LastName: "Chen"}, nil)
		f.userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).Return(nil)
		f.userRepo.On("UpsertMembership", ctx, mock.AnythingOfType("*domain.Membership")).Return(nil)
		f.profileRepo.On("Ensure", ctx, int32(7), int32(1)).Return(nil)
		f.inviteRepo.On("UpdateStatus", ctx, "inv-1", domain.InviteStatusAccepted, mock.AnythingOfType("*time.Time")).Return(nil)
		f.reminders.On("CancelReminders", ctx, "inv-1").Return(2)

		acc, err := f.svc.AcceptInvite(ctx, newUserReq, now)
		assert.NoError(t, err)
		assert.False(t, acc.IsExistingUser)
		assert.Equal(t, int32(7), acc.User.ID)
		assert.NotEmpty(t, acc.AccessToken)
		assert.NotEmpty(t, acc.RefreshToken)
		f.inviteRepo.AssertExpectations(t)
		f.profileRepo.AssertExpectations(t)
	})

	t.Run("NewUserMissingFields", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9}, nil)

		_, err := f.svc.AcceptInvite(ctx, AcceptRequest{Token: testToken}, now)
		assert.ErrorIs(t, err, domain.ErrMissingFields)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ExistingUserNoCredentials", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		existing := &domain.User{ID: 2, Email: "a@x.com"}
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(existing, nil)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9}, nil)
		f.userRepo.On("UpsertMembership", ctx, mock.AnythingOfType("*domain.Membership")).Return(nil)
		f.profileRepo.On("Ensure", ctx, int32(2), int32(1)).Return(nil)
		f.inviteRepo.On("UpdateStatus", ctx, "inv-1", domain.InviteStatusAccepted, mock.AnythingOfType("*time.Time")).Return(nil)
		f.reminders.On("CancelReminders", ctx, "inv-1").Return(2)

		acc, err := f.svc.AcceptInvite(ctx, AcceptRequest{Token: testToken}, now)
		assert.NoError(t, err)
		assert.True(t, acc.IsExistingUser)
		assert.Empty(t, acc.AccessToken)
		assert.Empty(t, acc.RefreshToken)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ProfileFailureRollsBackAccount", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9}, nil)
		f.userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).Return(nil)
		f.userRepo.On("UpsertMembership", ctx, mock.AnythingOfType("*domain.Membership")).Return(nil)
		f.profileRepo.On("Ensure", ctx, int32(7), int32(1)).Return(assert.AnError)
		f.userRepo.On("Delete", ctx, int32(7)).Return(nil)

		_, err := f.svc.AcceptInvite(ctx, newUserReq, now)
		assert.Error(t, err)
		f.userRepo.AssertCalled(t, "Delete", ctx, int32(7))
		f.inviteRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UserRecheckFailurePropagates", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, domain.ErrUserNotFound).Once()
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, assert.AnError).Once()
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9}, nil)

		_, err := f.svc.AcceptInvite(ctx, newUserReq, now)
		assert.ErrorIs(t, err, assert.AnError)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ExpiredTokenPropagates", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)

		_, err := f.svc.AcceptInvite(ctx, newUserReq, now.Add(8*24*time.Hour))
		assert.ErrorIs(t, err, domain.ErrInviteExpired)
	})

	t.Run("StatusWriteFailureIsNonFatal", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		existing := &domain.User{ID: 2, Email: "a@x.com"}
		f.inviteRepo.On("GetByToken", ctx, testToken).Return(inv, nil)
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByEmail", ctx, "a@x.com").Return(existing, nil)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9}, nil)
		f.userRepo.On("UpsertMembership", ctx, mock.AnythingOfType("*domain.Membership")).Return(nil)
		f.profileRepo.On("Ensure", ctx, int32(2), int32(1)).Return(nil)
		f.inviteRepo.On("UpdateStatus", ctx, "inv-1", domain.InviteStatusAccepted, mock.AnythingOfType("*time.Time")).
			Return(assert.AnError)
		f.reminders.On("CancelReminders", ctx, "inv-1").Return(0)

		acc, err := f.svc.AcceptInvite(ctx, AcceptRequest{Token: testToken}, now)
		assert.NoError(t, err)
		assert.NotNil(t, acc.User)
	})
}

func TestInviteService_CancelInvite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByID", ctx, "inv-1").Return(inv, nil)
		f.inviteRepo.On("UpdateStatus", ctx, "inv-1", domain.InviteStatusCancelled, (*time.Time)(nil)).Return(nil)
		f.reminders.On("CancelReminders", ctx, "inv-1").Return(2)

		err := f.svc.CancelInvite(ctx, "inv-1", 1, now)
		assert.NoError(t, err)
		f.reminders.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newInviteFixture()
		f.inviteRepo.On("GetByID", ctx, "inv-x").Return(nil, domain.ErrInviteNotFound)

		err := f.svc.CancelInvite(ctx, "inv-x", 1, now)
		assert.ErrorIs(t, err, domain.ErrInviteNotFound)
	})

	t.Run("FundMismatch", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		f.inviteRepo.On("GetByID", ctx, "inv-1").Return(inv, nil)

		err := f.svc.CancelInvite(ctx, "inv-1", 2, now)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("TerminalState", func(t *testing.T) {
		for _, status := range []domain.InviteStatus{domain.InviteStatusAccepted, domain.InviteStatusCancelled} {
			f := newInviteFixture()
			inv := pendingInvite(now)
			inv.Status = status
			f.inviteRepo.On("GetByID", ctx, "inv-1").Return(inv, nil)

			err := f.svc.CancelInvite(ctx, "inv-1", 1, now)
			assert.ErrorIs(t, err, domain.ErrInviteNotPending)
			f.inviteRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})
}

func TestInviteService_ResendInvite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ResetsExpiryKeepsToken", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		later := now.Add(4 * 24 * time.Hour)
		f.inviteRepo.On("GetByID", ctx, "inv-1").Return(inv, nil)
		f.inviteRepo.On("UpdateExpiry", ctx, "inv-1", later.Add(7*24*time.Hour)).Return(nil)
		f.reminders.On("CancelReminders", ctx, "inv-1").Return(2)
		f.reminders.On("ScheduleReminders", ctx, "inv-1", int32(1), later).Return()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9, FirstName: "Mara", LastName: "Chen"}, nil)
		f.email.On("SendInvitation", ctx, "a@x.com", "Citadel Fund I", "Mara Chen",
			"https://portal.test/invite/accept?token="+testToken).Return(nil)

		result, err := f.svc.ResendInvite(ctx, "inv-1", 1, later)
		assert.NoError(t, err)
		assert.Equal(t, testToken, result.Invite.Token)
		assert.Equal(t, later.Add(7*24*time.Hour), result.Invite.ExpiresAt)
		f.reminders.AssertExpectations(t)
	})

	t.Run("ExpiryNeverDecreases", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		t0 := now.Add(time.Hour)
		t1 := now.Add(2 * time.Hour)
		f.inviteRepo.On("GetByID", ctx, "inv-1").Return(inv, nil)
		f.inviteRepo.On("UpdateExpiry", ctx, "inv-1", mock.AnythingOfType("time.Time")).Return(nil)
		f.reminders.On("CancelReminders", ctx, "inv-1").Return(2)
		f.reminders.On("ScheduleReminders", ctx, "inv-1", int32(1), mock.AnythingOfType("time.Time")).Return()
		f.fundRepo.On("GetByID", ctx, int32(1)).Return(&domain.Fund{ID: 1, Name: "Citadel Fund I"}, nil)
		f.userRepo.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9}, nil)
		f.email.On("SendInvitation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		first, err := f.svc.ResendInvite(ctx, "inv-1", 1, t0)
		assert.NoError(t, err)
		firstExpiry := first.Invite.ExpiresAt
		second, err := f.svc.ResendInvite(ctx, "inv-1", 1, t1)
		assert.NoError(t, err)
		assert.True(t, second.Invite.ExpiresAt.After(firstExpiry))
	})

	t.Run("TerminalState", func(t *testing.T) {
		f := newInviteFixture()
		inv := pendingInvite(now)
		inv.Status = domain.InviteStatusAccepted
		f.inviteRepo.On("GetByID", ctx, "inv-1").Return(inv, nil)

		_, err := f.svc.ResendInvite(ctx, "inv-1", 1, now)
		assert.ErrorIs(t, err, domain.ErrInviteNotPending)
	})
}
