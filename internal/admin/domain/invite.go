package domain

import "time"

type Invite struct {
	ID        string
	Email     string
	Role      string
	Accepted  bool
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the invite deadline is strictly before now. An
// invite without a deadline never expires.
func (i Invite) IsExpired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}
