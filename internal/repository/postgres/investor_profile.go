package postgres

import (
	"context"
	"database/sql"
	"time"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/repository"
)

type investorProfileRepository struct {
	db *sql.DB
}

func NewInvestorProfileRepository(db *sql.DB) repository.InvestorProfileRepository {
	return &investorProfileRepository{db: db}
}

func (r *investorProfileRepository) Ensure(ctx context.Context, userID, fundID int32) error {
	query := `INSERT INTO investor_profiles (user_id, fund_id, created_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, fund_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, userID, fundID, time.Now().UTC())
	return err
}

func (r *investorProfileRepository) GetByUserAndFund(ctx context.Context, userID, fundID int32) (*domain.InvestorProfile, error) {
	p := &domain.InvestorProfile{}
	query := `SELECT id, user_id, fund_id, created_at FROM investor_profiles WHERE user_id = $1 AND fund_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, fundID).Scan(&p.ID, &p.UserID, &p.FundID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
