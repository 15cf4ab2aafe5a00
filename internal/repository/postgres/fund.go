package postgres

import (
	"context"
	"database/sql"
	"errors"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/repository"
)

type fundRepository struct {
	db *sql.DB
}

func NewFundRepository(db *sql.DB) repository.FundRepository {
	return &fundRepository{db: db}
}

func (r *fundRepository) GetByID(ctx context.Context, id int32) (*domain.Fund, error) {
	f := &domain.Fund{}
	query := `SELECT id, name, created_at FROM funds WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFundNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
