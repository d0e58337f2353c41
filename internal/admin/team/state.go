package team

import (
	"slices"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
)

// DefaultLimit is the page size shown before any paging happens.
const DefaultLimit = 10

// MaxNotices bounds the notice queue of a view whose notices are never
// consumed by a page render.
const MaxNotices = 20

type Overlay int

const (
	OverlayIdle Overlay = iota
	OverlayEditing
	OverlayConfirmingDelete
	OverlayInviting
)

func (o Overlay) String() string {
	switch o {
	case OverlayIdle:
		return "idle"
	case OverlayEditing:
		return "editing"
	case OverlayConfirmingDelete:
		return "confirming-delete"
	case OverlayInviting:
		return "inviting"
	default:
		return "unknown"
	}
}

// MarshalText renders the overlay name in JSON snapshots.
func (o Overlay) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Op names a remote operation for error reporting.
type Op string

const (
	OpListUsers    Op = "list_users"
	OpListInvites  Op = "list_invites"
	OpDeleteUser   Op = "delete_user"
	OpUpdateUser   Op = "update_user"
	OpResendInvite Op = "resend_invite"
	OpCreateInvite Op = "create_invite"
)

// Failure is the last remote error, shown until dismissed or superseded.
type Failure struct {
	Op      Op     `json:"op"`
	Message string `json:"message"`
}

// Page is the pagination window. It is displayed but not sent to the API.
type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// State is everything the team page renders. The event loop owns the live
// copy; everyone else sees clones.
type State struct {
	Mounted bool `json:"mounted"`

	Users   []domain.User   `json:"users"`
	Invites []domain.Invite `json:"invites"`

	Overlay        Overlay        `json:"overlay"`
	SelectedUser   *domain.User   `json:"selected_user,omitempty"`
	SelectedInvite *domain.Invite `json:"selected_invite,omitempty"`
	Submitting     bool           `json:"submitting"`

	// Refetch increments on every reload request; loads are tagged with it.
	Refetch    uint64 `json:"refetch"`
	UsersGen   uint64 `json:"users_gen"`
	InvitesGen uint64 `json:"invites_gen"`

	Page    Page            `json:"page"`
	Failure *Failure        `json:"failure,omitempty"`
	Notices []domain.Notice `json:"notices,omitempty"`

	// Pending counts commands dispatched but not yet answered.
	Pending int `json:"pending"`
}

// NewState returns the pre-mount state.
func NewState(limit int) State {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return State{Page: Page{Limit: limit}}
}

// DeleteUser reports whether the delete confirmation is showing.
func (s State) DeleteUser() bool { return s.Overlay == OverlayConfirmingDelete }

// ShowInviteModal reports whether the invite modal is showing.
func (s State) ShowInviteModal() bool { return s.Overlay == OverlayInviting }

// Idle reports whether no overlay is open and nothing is being submitted.
func (s State) Idle() bool { return s.Overlay == OverlayIdle && !s.Submitting }

// Clone deep-copies the slices and pointers so the copy can be read without
// locking.
func (s State) Clone() State {
	out := s
	out.Users = slices.Clone(s.Users)
	out.Invites = slices.Clone(s.Invites)
	out.Notices = slices.Clone(s.Notices)
	if s.SelectedUser != nil {
		u := *s.SelectedUser
		out.SelectedUser = &u
	}
	if s.SelectedInvite != nil {
		i := *s.SelectedInvite
		out.SelectedInvite = &i
	}
	if s.Failure != nil {
		f := *s.Failure
		out.Failure = &f
	}
	return out
}

func (s State) findUser(id string) (domain.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s State) findInvite(id string) (domain.Invite, bool) {
	for _, i := range s.Invites {
		if i.ID == id {
			return i, true
		}
	}
	return domain.Invite{}, false
}
