package member

import "time"

// NewMember is a transient registration from the self-service bot.
// Approval promotes it to a full employee record and deletes it.
type NewMember struct {
	ID        string
	FullName  string
	Phone     string
	ChatID    *int64 // messaging chat that registered, if any
	CreatedAt time.Time
}
