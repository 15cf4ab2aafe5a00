package domain

import "time"

type ReminderType string

const (
	ReminderDay3 ReminderType = "day3"
	ReminderDay5 ReminderType = "day5"
)

// ReminderJob is a delayed notification queued against an invite. Jobs
// are keyed by (invite id, type); the cron runner dispatches them once
// RunAt has passed and the invite is still pending.
type ReminderJob struct {
	ID        string       `json:"id"`
	InviteID  string       `json:"invite_id"`
	FundID    int32        `json:"fund_id"`
	Type      ReminderType `json:"type"`
	RunAt     time.Time    `json:"run_at"`
	SentAt    *time.Time   `json:"sent_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
