package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/logger"
	"investor-portal-backend/internal/repository"
	"investor-portal-backend/internal/security"
)

// TokenGeneratorFunc produces opaque invite tokens. Injected so tests can
// substitute a deterministic source.
type TokenGeneratorFunc func() (string, error)

type inviteService struct {
	inviteRepo  repository.InviteRepository
	userRepo    repository.UserRepository
	fundRepo    repository.FundRepository
	profileRepo repository.InvestorProfileRepository
	reminders   ReminderScheduler
	emailSvc    EmailService
	tokens      security.TokenManager
	generate    TokenGeneratorFunc
	baseURL     string
	expiryDays  int
}

func NewInviteService(
	inviteRepo repository.InviteRepository,
	userRepo repository.UserRepository,
	fundRepo repository.FundRepository,
	profileRepo repository.InvestorProfileRepository,
	reminders ReminderScheduler,
	emailSvc EmailService,
	tokens security.TokenManager,
	generate TokenGeneratorFunc,
	baseURL string,
	expiryDays int,
) InviteService {
	if generate == nil {
		generate = security.GenerateInviteToken
	}
	if expiryDays <= 0 {
		expiryDays = security.InviteExpiryDays
	}
	return &inviteService{
		inviteRepo:  inviteRepo,
		userRepo:    userRepo,
		fundRepo:    fundRepo,
		profileRepo: profileRepo,
		reminders:   reminders,
		emailSvc:    emailSvc,
		tokens:      tokens,
		generate:    generate,
		baseURL:     baseURL,
		expiryDays:  expiryDays,
	}
}

func (s *inviteService) CreateInvite(ctx context.Context, fundID, inviterID int32, email string, role domain.MemberRole, now time.Time) (*InviteCreation, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	fund, err := s.fundRepo.GetByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if user != nil {
		_, err := s.userRepo.GetMembership(ctx, user.ID, fundID)
		if err == nil {
			return nil, domain.ErrAlreadyMember
		}
		if !errors.Is(err, domain.ErrMemberNotFound) {
			return nil, err
		}
	}

	// Pre-check for readability; the partial unique index closes the race
	// between two concurrent creates.
	if existing, err := s.inviteRepo.GetPendingByEmailAndFund(ctx, email, fundID); err == nil && existing != nil {
		return nil, domain.ErrDuplicateInvite
	}

	token, err := s.generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	inv := &domain.Invite{
		ID:              uuid.NewString(),
		Email:           email,
		FundID:          fundID,
		Role:            role,
		Token:           token,
		Status:          domain.InviteStatusPending,
		InvitedByUserID: inviterID,
		ExpiresAt:       security.ComputeExpiry(now, s.expiryDays),
		CreatedAt:       now,
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	// Fire-and-forget relative to the invite write: reminder or email
	// trouble never fails the create.
	s.reminders.ScheduleReminders(ctx, inv.ID, fundID, now)

	result := &InviteCreation{Invite: inv}
	if err := s.emailSvc.SendInvitation(ctx, email, fund.Name, s.inviterName(ctx, inviterID), s.acceptURL(token)); err != nil {
		logger.Error("Failed to send invitation email", "invite_id", inv.ID, "email", email, "error", err)
		result.EmailError = err.Error()
	}
	return result, nil
}

func (s *inviteService) VerifyToken(ctx context.Context, token string, now time.Time) (*Verification, error) {
	inv, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if now.After(inv.ExpiresAt) {
		return nil, domain.ErrInviteExpired
	}
	if inv.Status != domain.InviteStatusPending {
		return nil, domain.ErrInviteUsed
	}

	fund, err := s.fundRepo.GetByID(ctx, inv.FundID)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, inv.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return &Verification{
		Invite:         inv,
		FundName:       fund.Name,
		InviterName:    s.inviterName(ctx, inv.InvitedByUserID),
		IsExistingUser: existing != nil,
	}, nil
}

func (s *inviteService) AcceptInvite(ctx context.Context, req AcceptRequest, now time.Time) (*Acceptance, error) {
	v, err := s.VerifyToken(ctx, req.Token, now)
	if err != nil {
		return nil, err
	}
	inv := v.Invite

	// Re-check the account here rather than trusting the verification:
	// a crash after account creation but before the final status write
	// leaves the invite pending, and a retried accept must take the
	// existing-user path instead of attempting a duplicate create.
	existing, err := s.userRepo.GetByEmail(ctx, inv.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	var acc *Acceptance
	if existing != nil {
		acc, err = s.acceptExisting(ctx, inv, existing, now)
	} else {
		acc, err = s.acceptNew(ctx, inv, req, now)
	}
	if err != nil {
		return nil, err
	}

	// Best-effort bookkeeping: the account already exists, so a failed
	// status write is logged rather than surfaced.
	acceptedAt := now
	if err := s.inviteRepo.UpdateStatus(ctx, inv.ID, domain.InviteStatusAccepted, &acceptedAt); err != nil {
		logger.Error("Failed to mark invite accepted", "invite_id", inv.ID, "error", err)
	}
	s.reminders.CancelReminders(ctx, inv.ID)

	return acc, nil
}

func (s *inviteService) acceptExisting(ctx context.Context, inv *domain.Invite, user *domain.User, now time.Time) (*Acceptance, error) {
	m := &domain.Membership{
		UserID:   user.ID,
		FundID:   inv.FundID,
		Role:     inv.Role,
		JoinedAt: now,
	}
	if err := s.userRepo.UpsertMembership(ctx, m); err != nil {
		return nil, err
	}

	if inv.Role == domain.RoleInvestor {
		if err := s.profileRepo.Ensure(ctx, user.ID, inv.FundID); err != nil {
			return nil, err
		}
	}

	// No new credentials: the caller is expected to already hold a
	// session and signs in separately otherwise.
	return &Acceptance{User: user, IsExistingUser: true}, nil
}

func (s *inviteService) acceptNew(ctx context.Context, inv *domain.Invite, req AcceptRequest, now time.Time) (*Acceptance, error) {
	if req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        inv.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	m := &domain.Membership{
		UserID:   user.ID,
		FundID:   inv.FundID,
		Role:     inv.Role,
		JoinedAt: now,
	}
	if err := s.userRepo.UpsertMembership(ctx, m); err != nil {
		s.compensateUser(ctx, user.ID)
		return nil, err
	}

	if inv.Role == domain.RoleInvestor {
		if err := s.profileRepo.Ensure(ctx, user.ID, inv.FundID); err != nil {
			// No transaction spans the two stores; roll back the account
			// we just created.
			s.compensateUser(ctx, user.ID)
			return nil, err
		}
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, inv.FundID, inv.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &Acceptance{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *inviteService) compensateUser(ctx context.Context, userID int32) {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.Error("Failed to roll back user after partial accept", "user_id", userID, "error", err)
	}
}

func (s *inviteService) CancelInvite(ctx context.Context, inviteID string, fundID int32, now time.Time) error {
	inv, err := s.guardPending(ctx, inviteID, fundID)
	if err != nil {
		return err
	}

	if err := s.inviteRepo.UpdateStatus(ctx, inv.ID, domain.InviteStatusCancelled, nil); err != nil {
		return err
	}
	s.reminders.CancelReminders(ctx, inv.ID)
	return nil
}

func (s *inviteService) ResendInvite(ctx context.Context, inviteID string, fundID int32, now time.Time) (*InviteCreation, error) {
	inv, err := s.guardPending(ctx, inviteID, fundID)
	if err != nil {
		return nil, err
	}

	// Token never changes; only the expiry window moves.
	inv.ExpiresAt = security.ComputeExpiry(now, s.expiryDays)
	if err := s.inviteRepo.UpdateExpiry(ctx, inv.ID, inv.ExpiresAt); err != nil {
		return nil, err
	}

	s.reminders.CancelReminders(ctx, inv.ID)
	s.reminders.ScheduleReminders(ctx, inv.ID, inv.FundID, now)

	fund, err := s.fundRepo.GetByID(ctx, inv.FundID)
	if err != nil {
		return nil, err
	}

	result := &InviteCreation{Invite: inv}
	if err := s.emailSvc.SendInvitation(ctx, inv.Email, fund.Name, s.inviterName(ctx, inv.InvitedByUserID), s.acceptURL(inv.Token)); err != nil {
		logger.Error("Failed to resend invitation email", "invite_id", inv.ID, "email", inv.Email, "error", err)
		result.EmailError = err.Error()
	}
	return result, nil
}

func (s *inviteService) ListInvites(ctx context.Context, fundID int32) ([]domain.Invite, error) {
	return s.inviteRepo.ListByFund(ctx, fundID)
}

// guardPending applies the shared cancel/resend checks: the invite must
// exist, belong to the caller's fund, and still be pending.
func (s *inviteService) guardPending(ctx context.Context, inviteID string, fundID int32) (*domain.Invite, error) {
	inv, err := s.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if inv.FundID != fundID {
		return nil, domain.ErrForbidden
	}
	if inv.Status != domain.InviteStatusPending {
		return nil, domain.ErrInviteNotPending
	}
	return inv, nil
}

func (s *inviteService) inviterName(ctx context.Context, userID int32) string {
	inviter, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ""
	}
	return inviter.FirstName + " " + inviter.LastName
}

func (s *inviteService) acceptURL(token string) string {
	return fmt.Sprintf("%s/invite/accept?token=%s", s.baseURL, token)
}
