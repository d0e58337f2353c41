package team

import "github.com/aussiebroadwan/teamdesk/internal/admin/domain"

// Event is an input to the reducer: operator actions and remote results.
type Event interface {
	event()
}

// result marks events that answer a dispatched command.
type result interface {
	Event
	result()
}

// Operator actions.
type (
	Mounted          struct{}
	RefetchRequested struct{}

	EditUserSelected   struct{ UserID string }
	RemoveUserSelected struct{ UserID string }
	// OverlayClosed closes the edit or delete overlay without a network call.
	OverlayClosed   struct{}
	DeleteConfirmed struct{}
	EditSubmitted   struct {
		FirstName string
		LastName  string
	}

	ResendInviteSelected struct{ InviteID string }
	RemoveInviteSelected struct{ InviteID string }

	InviteModalOpened struct{}
	InviteSubmitted   struct {
		Email string
		Role  string
	}
	InviteModalClosed struct{}

	PageRequested  struct{ Direction Direction }
	ErrorDismissed struct{}

	// NoticesConsumed drops the notices a render has shown.
	NoticesConsumed struct{ IDs []string }
)

// Remote results.
type (
	UsersLoaded struct {
		Gen   uint64
		Users []domain.User
		Err   error
	}
	InvitesLoaded struct {
		Gen     uint64
		Invites []domain.Invite
		Err     error
	}
	UserDeleted struct {
		ID  string
		Err error
	}
	UserUpdated struct {
		ID  string
		Err error
	}
	InviteResent struct {
		ID  string
		Err error
	}
	InviteCreated struct {
		Email string
		Err   error
	}
	ActivityRecorded struct {
		Action domain.Action
		Err    error
	}
)

type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

func (Mounted) event()              {}
func (RefetchRequested) event()     {}
func (EditUserSelected) event()     {}
func (RemoveUserSelected) event()   {}
func (OverlayClosed) event()        {}
func (DeleteConfirmed) event()      {}
func (EditSubmitted) event()        {}
func (ResendInviteSelected) event() {}
func (RemoveInviteSelected) event() {}
func (InviteModalOpened) event()    {}
func (InviteSubmitted) event()      {}
func (InviteModalClosed) event()    {}
func (PageRequested) event()        {}
func (ErrorDismissed) event()       {}
func (NoticesConsumed) event()      {}

func (UsersLoaded) event()      {}
func (InvitesLoaded) event()    {}
func (UserDeleted) event()      {}
func (UserUpdated) event()      {}
func (InviteResent) event()     {}
func (InviteCreated) event()    {}
func (ActivityRecorded) event() {}

func (UsersLoaded) result()      {}
func (InvitesLoaded) result()    {}
func (UserDeleted) result()      {}
func (UserUpdated) result()      {}
func (InviteResent) result()     {}
func (InviteCreated) result()    {}
func (ActivityRecorded) result() {}
