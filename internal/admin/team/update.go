package team

import (
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/internal/admin/i18n"
	"github.com/aussiebroadwan/teamdesk/pkg/idx"
)

// DefaultRole is used when an invite is submitted without a role.
const DefaultRole = "member"

var validRoles = []string{"admin", "member", "developer"}

// Reduce applies ev to s. It returns the next state and the commands to run,
// or an error and s unchanged when the event is not allowed right now.
// Reduce never touches Pending; the event loop owns that counter.
func Reduce(s State, ev Event, now time.Time) (State, []Command, error) {
	switch ev := ev.(type) {
	case Mounted:
		if s.Mounted {
			return s, nil, nil
		}
		s.Mounted = true
		return refetch(s)

	case RefetchRequested:
		return refetch(s)

	case UsersLoaded:
		if ev.Gen < s.UsersGen {
			return s, nil, nil
		}
		s.UsersGen = ev.Gen
		if ev.Err != nil {
			s.Failure = &Failure{Op: OpListUsers, Message: describe(ev.Err)}
			return s, nil, nil
		}
		s.Users = slices.Clone(ev.Users)
		s.Failure = clearFailure(s.Failure, OpListUsers)
		return s, nil, nil

	case InvitesLoaded:
		if ev.Gen < s.InvitesGen {
			return s, nil, nil
		}
		s.InvitesGen = ev.Gen
		if ev.Err != nil {
			s.Failure = &Failure{Op: OpListInvites, Message: describe(ev.Err)}
			return s, nil, nil
		}
		s.Invites = slices.Clone(ev.Invites)
		s.Failure = clearFailure(s.Failure, OpListInvites)
		return s, nil, nil

	case EditUserSelected:
		return selectUser(s, ev.UserID, OverlayEditing)

	case RemoveUserSelected:
		return selectUser(s, ev.UserID, OverlayConfirmingDelete)

	case OverlayClosed:
		if s.Submitting {
			return s, nil, ErrBusy
		}
		switch s.Overlay {
		case OverlayIdle:
			return s, nil, nil
		case OverlayEditing, OverlayConfirmingDelete:
			s.Overlay = OverlayIdle
			s.SelectedUser = nil
			return s, nil, nil
		default:
			return s, nil, ErrInvalidTransition
		}

	case DeleteConfirmed:
		if err := expect(s, OverlayConfirmingDelete); err != nil {
			return s, nil, err
		}
		if s.SelectedUser == nil {
			return s, nil, ErrNoSelection
		}
		s.Submitting = true
		return s, []Command{DeleteUser{ID: s.SelectedUser.ID}}, nil

	case UserDeleted:
		s.Submitting = false
		if ev.Err != nil {
			s.Failure = &Failure{Op: OpDeleteUser, Message: describe(ev.Err)}
			return s, []Command{failed(domain.ActionDeleteUser, ev.ID, ev.Err)}, nil
		}
		s = closeOverlay(s)
		next, cmds, _ := refetch(s)
		return next, append(cmds, ok(domain.ActionDeleteUser, ev.ID, "")), nil

	case EditSubmitted:
		if err := expect(s, OverlayEditing); err != nil {
			return s, nil, err
		}
		if s.SelectedUser == nil {
			return s, nil, ErrNoSelection
		}
		s.Submitting = true
		return s, []Command{UpdateUser{
			ID:        s.SelectedUser.ID,
			FirstName: strings.TrimSpace(ev.FirstName),
			LastName:  strings.TrimSpace(ev.LastName),
		}}, nil

	case UserUpdated:
		s.Submitting = false
		if ev.Err != nil {
			s.Failure = &Failure{Op: OpUpdateUser, Message: describe(ev.Err)}
			return s, []Command{failed(domain.ActionUpdateUser, ev.ID, ev.Err)}, nil
		}
		s = closeOverlay(s)
		next, cmds, _ := refetch(s)
		return next, append(cmds, ok(domain.ActionUpdateUser, ev.ID, "")), nil

	case ResendInviteSelected:
		inv, err := selectInvite(s, ev.InviteID)
		if err != nil {
			return s, nil, err
		}
		s.SelectedInvite = &inv
		return s, []Command{ResendInvite{ID: inv.ID}}, nil

	case InviteResent:
		if ev.Err != nil {
			s.Failure = &Failure{Op: OpResendInvite, Message: describe(ev.Err)}
			return s, []Command{failed(domain.ActionResendInvite, ev.ID, ev.Err)}, nil
		}
		s.Notices = pushNotice(s.Notices, notice(now, domain.NoticeSuccess, i18n.NoticeInviteResent))
		return s, []Command{ok(domain.ActionResendInvite, ev.ID, "")}, nil

	case RemoveInviteSelected:
		inv, err := selectInvite(s, ev.InviteID)
		if err != nil {
			return s, nil, err
		}
		s.SelectedInvite = &inv
		s.Notices = pushNotice(s.Notices, notice(now, domain.NoticeWarning, i18n.NoticeInviteRemoveUnsup))
		return s, []Command{RecordActivity{
			Action:   domain.ActionRemoveInvite,
			TargetID: inv.ID,
			Outcome:  domain.OutcomeUnsupported,
			Detail:   "no remove endpoint for invites",
		}}, nil

	case InviteModalOpened:
		if s.Overlay != OverlayIdle {
			return s, nil, ErrOverlayActive
		}
		s.Overlay = OverlayInviting
		return s, nil, nil

	case InviteSubmitted:
		if err := expect(s, OverlayInviting); err != nil {
			return s, nil, err
		}
		email, role, err := normalizeInvite(ev.Email, ev.Role)
		if err != nil {
			return s, nil, err
		}
		s.Submitting = true
		return s, []Command{CreateInvite{Email: email, Role: role}}, nil

	case InviteCreated:
		s.Submitting = false
		if ev.Err != nil {
			s.Failure = &Failure{Op: OpCreateInvite, Message: describe(ev.Err)}
			return s, []Command{failed(domain.ActionCreateInvite, ev.Email, ev.Err)}, nil
		}
		s.Notices = pushNotice(s.Notices, notice(now, domain.NoticeSuccess, i18n.NoticeInviteCreated, ev.Email))
		s.Overlay = OverlayIdle
		next, cmds, _ := refetch(s)
		return next, append(cmds, ok(domain.ActionCreateInvite, ev.Email, "")), nil

	case InviteModalClosed:
		if s.Submitting {
			return s, nil, ErrBusy
		}
		switch s.Overlay {
		case OverlayIdle:
			return s, nil, nil
		case OverlayInviting:
			s.Overlay = OverlayIdle
			return refetch(s)
		default:
			return s, nil, ErrInvalidTransition
		}

	case PageRequested:
		switch ev.Direction {
		case DirectionNext:
			s.Page.Offset += s.Page.Limit
		case DirectionPrev:
			s.Page.Offset = max(0, s.Page.Offset-s.Page.Limit)
		default:
			return s, nil, ErrInvalidInput
		}
		return s, nil, nil

	case ErrorDismissed:
		s.Failure = nil
		return s, nil, nil

	case NoticesConsumed:
		if len(ev.IDs) == 0 || len(s.Notices) == 0 {
			return s, nil, nil
		}
		s.Notices = slices.DeleteFunc(slices.Clone(s.Notices), func(n domain.Notice) bool {
			return slices.Contains(ev.IDs, n.ID.String())
		})
		return s, nil, nil

	case ActivityRecorded:
		return s, nil, nil

	default:
		return s, nil, ErrInvalidTransition
	}
}

func refetch(s State) (State, []Command, error) {
	s.Refetch++
	return s, []Command{LoadUsers{Gen: s.Refetch}, LoadInvites{Gen: s.Refetch}}, nil
}

func selectUser(s State, id string, to Overlay) (State, []Command, error) {
	if s.Overlay != OverlayIdle || s.Submitting {
		return s, nil, ErrOverlayActive
	}
	u, found := s.findUser(id)
	if !found {
		return s, nil, ErrUnknownUser
	}
	s.SelectedUser = &u
	s.Overlay = to
	return s, nil, nil
}

func selectInvite(s State, id string) (domain.Invite, error) {
	if s.Overlay != OverlayIdle || s.Submitting {
		return domain.Invite{}, ErrOverlayActive
	}
	inv, found := s.findInvite(id)
	if !found {
		return domain.Invite{}, ErrUnknownInvite
	}
	return inv, nil
}

func expect(s State, want Overlay) error {
	if s.Submitting {
		return ErrBusy
	}
	if s.Overlay != want {
		return ErrInvalidTransition
	}
	return nil
}

func closeOverlay(s State) State {
	s.Overlay = OverlayIdle
	s.SelectedUser = nil
	return s
}

func clearFailure(f *Failure, op Op) *Failure {
	if f != nil && f.Op == op {
		return nil
	}
	return f
}

func normalizeInvite(email, role string) (string, string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", "", ErrInvalidInput
	}

	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = DefaultRole
	}
	if !slices.Contains(validRoles, role) {
		return "", "", ErrInvalidInput
	}
	return email, role, nil
}

// pushNotice queues n, dropping the oldest notices beyond MaxNotices.
func pushNotice(queue []domain.Notice, n domain.Notice) []domain.Notice {
	queue = append(slices.Clone(queue), n)
	if over := len(queue) - MaxNotices; over > 0 {
		queue = slices.Delete(queue, 0, over)
	}
	return queue
}

func notice(now time.Time, kind domain.NoticeKind, key string, args ...any) domain.Notice {
	return domain.Notice{ID: idx.NewAt(now), Kind: kind, Key: key, Args: args}
}

func ok(action domain.Action, target, detail string) RecordActivity {
	return RecordActivity{Action: action, TargetID: target, Outcome: domain.OutcomeOK, Detail: detail}
}

func failed(action domain.Action, target string, err error) RecordActivity {
	return RecordActivity{Action: action, TargetID: target, Outcome: domain.OutcomeFailed, Detail: describe(err)}
}
