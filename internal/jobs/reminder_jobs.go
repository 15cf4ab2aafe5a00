package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/logger"
)

const dispatchBatchSize = 100

// DispatchInviteReminders sends every due reminder whose invite is still
// pending. Jobs for accepted, cancelled or expired invites are stamped
// sent without an email so they are not retried.
func (jr *JobRunner) DispatchInviteReminders() {
	jr.runWithRecovery("DispatchInviteReminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		due, err := jr.store.ListDue(ctx, now, dispatchBatchSize)
		if err != nil {
			logger.Error("Failed to list due invite reminders", "error", err)
			return
		}

		sent := 0
		for _, job := range due {
			inv, err := jr.store.InviteRepository.GetByID(ctx, job.InviteID)
			if err != nil {
				if errors.Is(err, domain.ErrInviteNotFound) {
					jr.finish(ctx, job.ID, now)
					continue
				}
				logger.Error("Failed to load invite for reminder", "invite_id", job.InviteID, "error", err)
				continue
			}

			if inv.Status != domain.InviteStatusPending || now.After(inv.ExpiresAt) {
				jr.finish(ctx, job.ID, now)
				continue
			}

			fund, err := jr.store.FundRepository.GetByID(ctx, inv.FundID)
			if err != nil {
				logger.Error("Failed to load fund for reminder", "fund_id", inv.FundID, "error", err)
				continue
			}

			url := fmt.Sprintf("%s/invite/accept?token=%s", jr.config.App.BaseURL, inv.Token)
			if err := jr.emailSvc.SendInviteReminder(ctx, inv.Email, fund.Name, url, inv.ExpiresAt); err != nil {
				logger.Error("Failed to send invite reminder",
					"invite_id", inv.ID, "type", job.Type, "email", inv.Email, "error", err)
				continue
			}

			jr.finish(ctx, job.ID, now)
			sent++
			logger.Debug("Sent invite reminder", "invite_id", inv.ID, "type", job.Type, "email", inv.Email)
		}

		logger.Info("Invite reminders dispatched", "due", len(due), "sent", sent)
	})
}

// PurgeSentReminders deletes reminder rows stamped sent before the
// retention cutoff.
func (jr *JobRunner) PurgeSentReminders() {
	jr.runWithRecovery("PurgeSentReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Scheduler.PurgeRetentionDays)

		n, err := jr.store.PurgeSentBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge sent reminders", "error", err)
			return
		}
		logger.Info("Purged sent reminders", "count", n, "cutoff", cutoff)
	})
}

func (jr *JobRunner) finish(ctx context.Context, jobID string, now time.Time) {
	if err := jr.store.MarkSent(ctx, jobID, now); err != nil {
		logger.Error("Failed to mark reminder sent", "job_id", jobID, "error", err)
	}
}
