package postgres

import (
	"context"
	"database/sql"
	"time"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/repository"
)

type reminderJobRepository struct {
	db *sql.DB
}

func NewReminderJobRepository(db *sql.DB) repository.ReminderJobRepository {
	return &reminderJobRepository{db: db}
}

func (r *reminderJobRepository) Enqueue(ctx context.Context, job *domain.ReminderJob) error {
	query := `INSERT INTO invite_reminders (id, invite_id, fund_id, reminder_type, run_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, job.ID, job.InviteID, job.FundID, job.Type, job.RunAt, job.CreatedAt)
	return err
}

func (r *reminderJobRepository) CancelByInvite(ctx context.Context, inviteID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invite_reminders WHERE invite_id = $1 AND sent_at IS NULL`, inviteID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *reminderJobRepository) Cancel(ctx context.Context, inviteID string, reminderType domain.ReminderType) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM invite_reminders WHERE invite_id = $1 AND reminder_type = $2 AND sent_at IS NULL`,
		inviteID, reminderType)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *reminderJobRepository) ListDue(ctx context.Context, now time.Time, limit int32) ([]domain.ReminderJob, error) {
	query := `SELECT id, invite_id, fund_id, reminder_type, run_at, sent_at, created_at
	          FROM invite_reminders
	          WHERE sent_at IS NULL AND run_at <= $1
	          ORDER BY run_at
	          LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.ReminderJob
	for rows.Next() {
		var j domain.ReminderJob
		if err := rows.Scan(&j.ID, &j.InviteID, &j.FundID, &j.Type, &j.RunAt, &j.SentAt, &j.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *reminderJobRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE invite_reminders SET sent_at = $1 WHERE id = $2`, sentAt, id)
	return err
}

func (r *reminderJobRepository) PurgeSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invite_reminders WHERE sent_at IS NOT NULL AND sent_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
