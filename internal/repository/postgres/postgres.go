package postgres

import (
	"database/sql"

	"investor-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.InviteRepository
	repository.UserRepository
	repository.FundRepository
	repository.InvestorProfileRepository
	repository.ReminderJobRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		InviteRepository:          NewInviteRepository(db),
		UserRepository:            NewUserRepository(db),
		FundRepository:            NewFundRepository(db),
		InvestorProfileRepository: NewInvestorProfileRepository(db),
		ReminderJobRepository:     NewReminderJobRepository(db),
	}
}
