package domain

import "time"

// Fund is the tenant: an isolated customer organization whose users,
// invites and data are scoped by fund id.
type Fund struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
