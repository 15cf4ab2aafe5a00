package domain

import "time"

// InvestorProfile is the fund-scoped record required for investor-role
// accounts, separate from the core user record. At most one exists per
// (user, fund) pair.
type InvestorProfile struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	FundID    int32     `json:"fund_id"`
	CreatedAt time.Time `json:"created_at"`
}
