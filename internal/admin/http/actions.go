package http

import (
	"net/http"

	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
)

// Form action builders. Each maps one POST route onto a view event.

func fixed(ev team.Event) func(*http.Request) (team.Event, error) {
	return func(*http.Request) (team.Event, error) { return ev, nil }
}

func editUser(r *http.Request) (team.Event, error) {
	return team.EditUserSelected{UserID: r.PathValue("id")}, nil
}

func removeUser(r *http.Request) (team.Event, error) {
	return team.RemoveUserSelected{UserID: r.PathValue("id")}, nil
}

func updateUser(r *http.Request) (team.Event, error) {
	if err := r.ParseForm(); err != nil {
		return nil, team.ErrInvalidInput
	}
	return team.EditSubmitted{
		FirstName: r.PostForm.Get("first_name"),
		LastName:  r.PostForm.Get("last_name"),
	}, nil
}

func resendInvite(r *http.Request) (team.Event, error) {
	return team.ResendInviteSelected{InviteID: r.PathValue("id")}, nil
}

func removeInvite(r *http.Request) (team.Event, error) {
	return team.RemoveInviteSelected{InviteID: r.PathValue("id")}, nil
}

func createInvite(r *http.Request) (team.Event, error) {
	if err := r.ParseForm(); err != nil {
		return nil, team.ErrInvalidInput
	}
	return team.InviteSubmitted{
		Email: r.PostForm.Get("email"),
		Role:  r.PostForm.Get("role"),
	}, nil
}

func changePage(r *http.Request) (team.Event, error) {
	return team.PageRequested{Direction: team.Direction(r.PathValue("direction"))}, nil
}
