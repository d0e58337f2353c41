package domain

import (
	"time"

	"github.com/aussiebroadwan/teamdesk/pkg/idx"
)

type Action string

const (
	ActionDeleteUser   Action = "delete_user"
	ActionUpdateUser   Action = "update_user"
	ActionResendInvite Action = "resend_invite"
	ActionCreateInvite Action = "create_invite"
	ActionRemoveInvite Action = "remove_invite"
)

type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeFailed      Outcome = "failed"
	OutcomeUnsupported Outcome = "unsupported"
)

// Activity is one audited mutation attempt made from a view session.
type Activity struct {
	ID        idx.ID
	SessionID idx.ID
	Action    Action
	TargetID  string
	Outcome   Outcome
	Detail    string
	CreatedAt time.Time
}
