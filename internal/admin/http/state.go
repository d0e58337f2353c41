package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/teamdesk/internal/admin/i18n"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"
	"golang.org/x/text/message"
)

// SelectedUserResponse is the user an overlay acts on.
type SelectedUserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// StateResponse is a view snapshot as returned by the JSON API.
type StateResponse struct {
	ViewID       string                `json:"view_id"`
	Overlay      string                `json:"overlay"`
	SelectedUser *SelectedUserResponse `json:"selected_user,omitempty"`
	Submitting   bool                  `json:"submitting"`
	Rows         []team.Row            `json:"rows"`
	MemberCount  int                   `json:"member_count"`
	Footer       string                `json:"footer"`
	Page         team.Page             `json:"page"`
	Refetch      uint64                `json:"refetch"`
	Pending      int                   `json:"pending"`
	Failure      *team.Failure         `json:"failure,omitempty"`
	Notices      []noticeView          `json:"notices"`
}

func newStateResponse(viewID string, s team.State, p *message.Printer, now timeSource) StateResponse {
	resp := StateResponse{
		ViewID:      viewID,
		Overlay:     s.Overlay.String(),
		Submitting:  s.Submitting,
		Rows:        team.BuildRows(s.Users, s.Invites, now()),
		MemberCount: team.MemberCount(s.Users),
		Footer:      i18n.MemberCount(p, team.MemberCount(s.Users)),
		Page:        s.Page,
		Refetch:     s.Refetch,
		Pending:     s.Pending,
		Failure:     s.Failure,
		Notices:     noticeViews(s.Notices, p),
	}
	if u := s.SelectedUser; u != nil {
		resp.SelectedUser = &SelectedUserResponse{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
	}
	return resp
}

// HandleState godoc
//
//	@Summary		Team view state
//	@Description	Returns the caller's view snapshot: rows, overlay, pagination, pending notices and the last failure. Reading does not consume notices.
//	@Tags			Team
//	@Produce		json
//	@Param			X-Team-View	header		string				false	"view session id (falls back to the session cookie)"
//	@Success		200			{object}	StateResponse
//	@Failure		401			{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		503			{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/team/state [get].
func (h *TeamHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	v, err := h.viewFor(w, r)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to open view", slog.Any("error", err))
		httpx.WriteError(w, http.StatusServiceUnavailable, "unavailable", "could not open team view")
		return
	}

	h.waitIdle(ctx, v)
	httpx.WriteJSON(w, http.StatusOK, newStateResponse(v.ID().String(), v.Snapshot(), i18n.Printer(i18n.ResolveTag(r)), h.now()))
}
