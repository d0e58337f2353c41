package team

import (
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/internal/admin/i18n"
)

// InvitePlaceholderName fills the name cell of invite rows.
const InvitePlaceholderName = "-"

type RowKind string

const (
	RowUser   RowKind = "user"
	RowInvite RowKind = "invite"
)

// RowAction is one entry of a row's action menu.
type RowAction struct {
	Name   string `json:"name"`
	Label  string `json:"label"` // i18n key
	Danger bool   `json:"danger"`
}

// Action names, also used as the last path segment of the form actions.
const (
	RowActionEdit         = "edit"
	RowActionRemove       = "remove"
	RowActionResend       = "resend"
	RowActionRemoveInvite = "remove"
)

// Row is a displayable table row for a user or an invite.
type Row struct {
	Kind      RowKind     `json:"kind"`
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Initials  string      `json:"initials,omitempty"`
	AvatarURL string      `json:"avatar_url,omitempty"`
	Email     string      `json:"email"`
	Role      string      `json:"role,omitempty"`
	Expired   bool        `json:"expired"`
	Actions   []RowAction `json:"actions"`
}

var (
	userActions = []RowAction{
		{Name: RowActionEdit, Label: i18n.ActionEditUser},
		{Name: RowActionRemove, Label: i18n.ActionRemoveUser, Danger: true},
	}
	inviteActions = []RowAction{
		{Name: RowActionResend, Label: i18n.ActionResendInvite},
		{Name: RowActionRemoveInvite, Label: i18n.ActionRemoveInvite, Danger: true},
	}
)

// BuildRows formats users then invites. Expiry is evaluated against now.
func BuildRows(users []domain.User, invites []domain.Invite, now time.Time) []Row {
	rows := make([]Row, 0, len(users)+len(invites))

	for _, u := range users {
		rows = append(rows, Row{
			Kind:      RowUser,
			ID:        u.ID,
			Name:      u.DisplayName(),
			Initials:  u.Initials(),
			AvatarURL: u.AvatarURL,
			Email:     u.Email,
			Role:      u.Role,
			Actions:   userActions,
		})
	}

	for _, inv := range invites {
		rows = append(rows, Row{
			Kind:    RowInvite,
			ID:      inv.ID,
			Name:    InvitePlaceholderName,
			Email:   inv.Email,
			Role:    inv.Role,
			Expired: inv.IsExpired(now),
			Actions: inviteActions,
		})
	}

	return rows
}

// MemberCount counts users without an API token.
func MemberCount(users []domain.User) int {
	n := 0
	for _, u := range users {
		if u.IsMember() {
			n++
		}
	}
	return n
}
