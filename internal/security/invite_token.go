package security

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// InviteTokenBytes of entropy per invite token; hex encoding doubles the
// length on the wire.
const InviteTokenBytes = 32

// InviteExpiryDays is the window applied at creation and on resend.
const InviteExpiryDays = 7

// GenerateInviteToken returns a 64-character lowercase hex token from a
// cryptographically secure source.
func GenerateInviteToken() (string, error) {
	buf := make([]byte, InviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ComputeExpiry is pure: now always comes from the caller.
func ComputeExpiry(now time.Time, days int) time.Time {
	return now.Add(time.Duration(days) * 24 * time.Hour)
}
