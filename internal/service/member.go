package service

import (
	"context"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/repository"
)

type memberService struct {
	userRepo repository.UserRepository
}

func NewMemberService(userRepo repository.UserRepository) MemberService {
	return &memberService{userRepo: userRepo}
}

func (s *memberService) UpdateMemberRole(ctx context.Context, callerID, fundID, userID int32, role domain.MemberRole) error {
	if callerID == userID {
		return domain.ErrForbidden
	}
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	// Membership lookups are fund-scoped, so a user outside the caller's
	// fund is indistinguishable from no membership at all.
	if _, err := s.userRepo.GetMembership(ctx, userID, fundID); err != nil {
		return err
	}
	return s.userRepo.UpdateMembershipRole(ctx, userID, fundID, role)
}

func (s *memberService) RemoveMember(ctx context.Context, callerID, fundID, userID int32) error {
	if callerID == userID {
		return domain.ErrForbidden
	}

	// Clears the fund binding; the account itself survives.
	return s.userRepo.RemoveMembership(ctx, userID, fundID)
}

func (s *memberService) ListMembers(ctx context.Context, fundID int32) ([]domain.User, []domain.Membership, error) {
	return s.userRepo.ListMembersByFund(ctx, fundID)
}
