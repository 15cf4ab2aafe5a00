package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/logger"
	"investor-portal-backend/internal/repository"
)

// Reminder delays relative to invite creation (or resend).
const (
	day3Delay = 3 * 24 * time.Hour
	day5Delay = 5 * 24 * time.Hour
)

// ReminderScheduler enqueues and cancels delayed invite reminder jobs.
// Reminder delivery is a nicety, not correctness-critical: every method
// degrades to a logged no-op when the queue backend is unavailable so
// that outages never block invite creation, acceptance or cancellation.
type ReminderScheduler struct {
	jobs repository.ReminderJobRepository
}

// NewReminderScheduler wraps the queue backend. Passing a nil repository
// yields a scheduler that is permanently unavailable.
func NewReminderScheduler(jobs repository.ReminderJobRepository) *ReminderScheduler {
	return &ReminderScheduler{jobs: jobs}
}

func (s *ReminderScheduler) available() bool {
	return s != nil && s.jobs != nil
}

// ScheduleReminders enqueues the day-3 and day-5 reminders anchored at now.
func (s *ReminderScheduler) ScheduleReminders(ctx context.Context, inviteID string, fundID int32, now time.Time) {
	if !s.available() {
		logger.Warn("Reminder queue unavailable, skipping schedule", "invite_id", inviteID)
		return
	}

	reminders := []struct {
		reminderType domain.ReminderType
		delay        time.Duration
	}{
		{domain.ReminderDay3, day3Delay},
		{domain.ReminderDay5, day5Delay},
	}

	for _, r := range reminders {
		job := &domain.ReminderJob{
			ID:        uuid.NewString(),
			InviteID:  inviteID,
			FundID:    fundID,
			Type:      r.reminderType,
			RunAt:     now.Add(r.delay),
			CreatedAt: now,
		}
		if err := s.jobs.Enqueue(ctx, job); err != nil {
			logger.Error("Failed to enqueue invite reminder",
				"invite_id", inviteID, "type", r.reminderType, "error", err)
		}
	}
}

// CancelReminders removes all unsent reminders for an invite and returns
// the count cancelled. Best-effort: failures are logged, not raised.
func (s *ReminderScheduler) CancelReminders(ctx context.Context, inviteID string) int {
	if !s.available() {
		return 0
	}
	n, err := s.jobs.CancelByInvite(ctx, inviteID)
	if err != nil {
		logger.Error("Failed to cancel invite reminders", "invite_id", inviteID, "error", err)
		return 0
	}
	return int(n)
}

// CancelReminder removes a single reminder by type. Returns false when the
// backend is unavailable or no matching job existed.
func (s *ReminderScheduler) CancelReminder(ctx context.Context, inviteID string, reminderType domain.ReminderType) bool {
	if !s.available() {
		return false
	}
	ok, err := s.jobs.Cancel(ctx, inviteID, reminderType)
	if err != nil {
		logger.Error("Failed to cancel invite reminder",
			"invite_id", inviteID, "type", reminderType, "error", err)
		return false
	}
	return ok
}
