package team

import "github.com/aussiebroadwan/teamdesk/internal/admin/domain"

// Command is a side effect requested by the reducer. The view runs each one
// in its own goroutine and feeds the matching result event back.
type Command interface {
	command()
}

type (
	LoadUsers    struct{ Gen uint64 }
	LoadInvites  struct{ Gen uint64 }
	DeleteUser   struct{ ID string }
	UpdateUser   struct{ ID, FirstName, LastName string }
	ResendInvite struct{ ID string }
	CreateInvite struct{ Email, Role string }

	RecordActivity struct {
		Action   domain.Action
		TargetID string
		Outcome  domain.Outcome
		Detail   string
	}
)

func (LoadUsers) command()      {}
func (LoadInvites) command()    {}
func (DeleteUser) command()     {}
func (UpdateUser) command()     {}
func (ResendInvite) command()   {}
func (CreateInvite) command()   {}
func (RecordActivity) command() {}
