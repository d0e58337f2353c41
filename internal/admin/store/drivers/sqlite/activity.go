package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/internal/admin/store"
	"github.com/aussiebroadwan/teamdesk/pkg/idx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

const activityColumns = `id, session_id, action, target_id, outcome, detail, created_at`

const insertActivity = `INSERT INTO activity (` + activityColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const getActivity = `SELECT ` + activityColumns + ` FROM activity WHERE id = ?`

const listRecentActivity = `SELECT ` + activityColumns + ` FROM activity
ORDER BY created_at DESC, id DESC
LIMIT ?`

const listSessionActivity = `SELECT ` + activityColumns + ` FROM activity
WHERE session_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`

const deleteActivityBefore = `DELETE FROM activity WHERE created_at < ?`

type activityRepo struct {
	db dbtx
}

func (r *activityRepo) RecordActivity(ctx context.Context, a domain.Activity) error {
	if a.ID.IsZero() {
		a.ID = idx.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertActivity,
		a.ID.String(),
		a.SessionID.String(),
		string(a.Action),
		a.TargetID,
		string(a.Outcome),
		a.Detail,
		toMillis(a.CreatedAt),
	)
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *activityRepo) GetActivity(ctx context.Context, id string) (domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, getActivity, id)
	a, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, mapNotFound(err)
	}
	return a, nil
}

func (r *activityRepo) ListRecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	return r.list(ctx, listRecentActivity, clampLimit(limit))
}

func (r *activityRepo) ListSessionActivity(ctx context.Context, sessionID string, limit int) ([]domain.Activity, error) {
	return r.list(ctx, listSessionActivity, sessionID, clampLimit(limit))
}

func (r *activityRepo) DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteActivityBefore, toMillis(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *activityRepo) list(ctx context.Context, query string, args ...any) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(s scanner) (domain.Activity, error) {
	var (
		id, session, action, target, outcome, detail string
		created                                      int64
	)
	if err := s.Scan(&id, &session, &action, &target, &outcome, &detail, &created); err != nil {
		return domain.Activity{}, err
	}
	return domain.Activity{
		ID:        idx.ID(id),
		SessionID: idx.ID(session),
		Action:    domain.Action(action),
		TargetID:  target,
		Outcome:   domain.Outcome(outcome),
		Detail:    detail,
		CreatedAt: fromMillis(created),
	}, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

func isUniqueViolation(err error) bool {
	return err != nil && !errors.Is(err, sql.ErrNoRows) &&
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
