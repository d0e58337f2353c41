package team

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/pkg/idx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// execute runs cmd against the remote API or the activity store and returns
// the result event to feed back into the loop.
func (v *View) execute(ctx context.Context, cmd Command) Event {
	ctx, span := v.tracer.Start(ctx, "team."+commandName(cmd),
		trace.WithAttributes(attribute.String("team.view_id", v.id.String())),
	)
	defer span.End()

	res := v.dispatch(ctx, cmd)
	if err := resultErr(res); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res
}

func (v *View) dispatch(ctx context.Context, cmd Command) Event {
	switch c := cmd.(type) {
	case LoadUsers:
		users, err := v.remote.ListUsers(ctx)
		if err != nil {
			v.logger.Warn("failed to load users", slog.Uint64("gen", c.Gen), slog.Any("error", err))
		}
		return UsersLoaded{Gen: c.Gen, Users: users, Err: err}

	case LoadInvites:
		invites, err := v.remote.ListInvites(ctx)
		if err != nil {
			v.logger.Warn("failed to load invites", slog.Uint64("gen", c.Gen), slog.Any("error", err))
		}
		return InvitesLoaded{Gen: c.Gen, Invites: invites, Err: err}

	case DeleteUser:
		err := v.remote.DeleteUser(ctx, c.ID)
		v.logMutation("delete user", c.ID, err)
		return UserDeleted{ID: c.ID, Err: err}

	case UpdateUser:
		err := v.remote.UpdateUser(ctx, c.ID, c.FirstName, c.LastName)
		v.logMutation("update user", c.ID, err)
		return UserUpdated{ID: c.ID, Err: err}

	case ResendInvite:
		err := v.remote.ResendInvite(ctx, c.ID)
		v.logMutation("resend invite", c.ID, err)
		return InviteResent{ID: c.ID, Err: err}

	case CreateInvite:
		err := v.remote.CreateInvite(ctx, c.Email, c.Role)
		v.logMutation("create invite", c.Email, err)
		return InviteCreated{Email: c.Email, Err: err}

	case RecordActivity:
		return ActivityRecorded{Action: c.Action, Err: v.record(ctx, c)}

	default:
		return ActivityRecorded{Err: fmt.Errorf("unknown command %T", cmd)}
	}
}

// record persists an activity. Failures are logged and never surface as a
// mutation failure.
func (v *View) record(ctx context.Context, c RecordActivity) error {
	if c.Outcome == domain.OutcomeUnsupported {
		v.logger.Warn("unsupported action requested",
			slog.String("action", string(c.Action)),
			slog.String("target_id", c.TargetID),
		)
	}

	if v.activity == nil {
		return nil
	}

	now := v.now()
	err := v.activity.RecordActivity(ctx, domain.Activity{
		ID:        idx.NewAt(now),
		SessionID: v.id,
		Action:    c.Action,
		TargetID:  c.TargetID,
		Outcome:   c.Outcome,
		Detail:    c.Detail,
		CreatedAt: now,
	})
	if err != nil {
		v.logger.Error("failed to record activity",
			slog.String("action", string(c.Action)),
			slog.Any("error", err),
		)
	}
	return err
}

func (v *View) logMutation(what, target string, err error) {
	if err != nil {
		v.logger.Warn(what+" failed", slog.String("target_id", target), slog.Any("error", err))
		return
	}
	v.logger.Info(what, slog.String("target_id", target))
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case LoadUsers:
		return "list_users"
	case LoadInvites:
		return "list_invites"
	case DeleteUser:
		return "delete_user"
	case UpdateUser:
		return "update_user"
	case ResendInvite:
		return "resend_invite"
	case CreateInvite:
		return "create_invite"
	case RecordActivity:
		return "record_activity"
	default:
		return "unknown"
	}
}

func resultErr(ev Event) error {
	switch e := ev.(type) {
	case UsersLoaded:
		return e.Err
	case InvitesLoaded:
		return e.Err
	case UserDeleted:
		return e.Err
	case UserUpdated:
		return e.Err
	case InviteResent:
		return e.Err
	case InviteCreated:
		return e.Err
	case ActivityRecorded:
		return e.Err
	}
	return nil
}

func eventName(ev Event) string {
	return fmt.Sprintf("%T", ev)
}
