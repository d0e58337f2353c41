package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories per concern.
type Store interface {
	Activity() Activity

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Activity interface {
	// RecordActivity inserts one audit entry. The id is provided by the caller.
	RecordActivity(ctx context.Context, a domain.Activity) error

	// GetActivity returns one entry by id.
	GetActivity(ctx context.Context, id string) (domain.Activity, error)

	// ListRecentActivity returns the newest entries first.
	ListRecentActivity(ctx context.Context, limit int) ([]domain.Activity, error)

	// ListSessionActivity returns the newest entries of one view session first.
	ListSessionActivity(ctx context.Context, sessionID string, limit int) ([]domain.Activity, error)

	// DeleteActivityBefore removes entries created before cutoff.
	DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
