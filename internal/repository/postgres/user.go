package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, first_name, last_name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, email, password_hash, first_name, last_name, created_at, updated_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, first_name, last_name, created_at, updated_at FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *userRepository) UpsertMembership(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (user_id, fund_id, role, joined_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, fund_id) DO UPDATE SET role = EXCLUDED.role`
	_, err := r.db.ExecContext(ctx, query, m.UserID, m.FundID, m.Role, m.JoinedAt)
	return err
}

func (r *userRepository) GetMembership(ctx context.Context, userID, fundID int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT user_id, fund_id, role, joined_at FROM memberships WHERE user_id = $1 AND fund_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, fundID).Scan(&m.UserID, &m.FundID, &m.Role, &m.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *userRepository) UpdateMembershipRole(ctx context.Context, userID, fundID int32, role domain.MemberRole) error {
	res, err := r.db.ExecContext(ctx, `UPDATE memberships SET role = $1 WHERE user_id = $2 AND fund_id = $3`, role, userID, fundID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *userRepository) RemoveMembership(ctx context.Context, userID, fundID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE user_id = $1 AND fund_id = $2`, userID, fundID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *userRepository) ListMembersByFund(ctx context.Context, fundID int32) ([]domain.User, []domain.Membership, error) {
	query := `SELECT u.id, u.email, u.first_name, u.last_name, u.created_at, u.updated_at,
	                 m.user_id, m.fund_id, m.role, m.joined_at
	          FROM memberships m
	          JOIN users u ON u.id = m.user_id
	          WHERE m.fund_id = $1
	          ORDER BY m.joined_at`
	rows, err := r.db.QueryContext(ctx, query, fundID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var users []domain.User
	var memberships []domain.Membership
	for rows.Next() {
		var u domain.User
		var m domain.Membership
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
			&m.UserID, &m.FundID, &m.Role, &m.JoinedAt); err != nil {
			return nil, nil, err
		}
		users = append(users, u)
		memberships = append(memberships, m)
	}
	return users, memberships, rows.Err()
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
