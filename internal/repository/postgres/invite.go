package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/repository"

	"github.com/lib/pq"
)

type inviteRepository struct {
	db *sql.DB
}

func NewInviteRepository(db *sql.DB) repository.InviteRepository {
	return &inviteRepository{db: db}
}

const inviteColumns = `id, email, fund_id, role, token, status, invited_by_user_id, expires_at, accepted_at, created_at, updated_at`

func (r *inviteRepository) Create(ctx context.Context, inv *domain.Invite) error {
	query := `INSERT INTO invites (id, email, fund_id, role, token, status, invited_by_user_id, expires_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	inv.UpdatedAt = inv.CreatedAt
	_, err := r.db.ExecContext(ctx, query, inv.ID, inv.Email, inv.FundID, inv.Role, inv.Token, inv.Status,
		inv.InvitedByUserID, inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		// The partial unique index on (fund_id, lower(email)) for pending
		// invites makes concurrent duplicate creates lose here.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateInvite
		}
		return err
	}
	return nil
}

func (r *inviteRepository) GetByToken(ctx context.Context, token string) (*domain.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE token = $1`
	return r.scanInvite(r.db.QueryRowContext(ctx, query, token))
}

func (r *inviteRepository) GetByID(ctx context.Context, id string) (*domain.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE id = $1`
	return r.scanInvite(r.db.QueryRowContext(ctx, query, id))
}

func (r *inviteRepository) GetPendingByEmailAndFund(ctx context.Context, email string, fundID int32) (*domain.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE LOWER(email) = LOWER($1) AND fund_id = $2 AND status = $3`
	return r.scanInvite(r.db.QueryRowContext(ctx, query, email, fundID, domain.InviteStatusPending))
}

func (r *inviteRepository) UpdateStatus(ctx context.Context, id string, status domain.InviteStatus, acceptedAt *time.Time) error {
	query := `UPDATE invites SET status = $1, accepted_at = $2, updated_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, status, acceptedAt, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrInviteNotFound
	}
	return nil
}

func (r *inviteRepository) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	query := `UPDATE invites SET expires_at = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, expiresAt, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrInviteNotFound
	}
	return nil
}

func (r *inviteRepository) ListByFund(ctx context.Context, fundID int32) ([]domain.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE fund_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		inv := domain.Invite{}
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.FundID, &inv.Role, &inv.Token, &inv.Status,
			&inv.InvitedByUserID, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *inviteRepository) scanInvite(row *sql.Row) (*domain.Invite, error) {
	inv := &domain.Invite{}
	err := row.Scan(&inv.ID, &inv.Email, &inv.FundID, &inv.Role, &inv.Token, &inv.Status,
		&inv.InvitedByUserID, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInviteNotFound
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}
