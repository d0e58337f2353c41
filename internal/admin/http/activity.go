package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/internal/admin/store"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"
)

// ActivityResponse is one audited mutation attempt.
type ActivityResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Action    string    `json:"action"`
	TargetID  string    `json:"target_id"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityListResponse wraps a page of activity.
type ActivityListResponse struct {
	Activity []ActivityResponse `json:"activity"`
}

type ActivityHandler struct {
	Store    store.Store
	Registry *team.Registry
}

// ServeHTTP godoc
//
//	@Summary		Recent activity
//	@Description	Lists audited mutations newest first. scope=session (default) limits the list to the caller's view session; scope=all returns every session.
//	@Tags			Team
//	@Produce		json
//	@Param			scope	query		string	false	"session or all"	Enums(session, all)
//	@Param			limit	query		int		false	"max entries (default 50, max 500)"
//	@Success		200		{object}	ActivityListResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/team/activity [get].
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	var (
		list []domain.Activity
		err  error
	)
	switch q.Get("scope") {
	case "", "session":
		// Only the caller's own live view session is listed.
		if v, ok := h.Registry.Lookup(sessionID(r), httpx.SubjectFromContext(ctx)); ok {
			list, err = h.Store.Activity().ListSessionActivity(ctx, v.ID().String(), limit)
		}
	case "all":
		list, err = h.Store.Activity().ListRecentActivity(ctx, limit)
	default:
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "scope must be session or all")
		return
	}
	if err != nil {
		log.Error("failed to list activity", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not list activity")
		return
	}

	resp := ActivityListResponse{Activity: make([]ActivityResponse, 0, len(list))}
	for _, a := range list {
		resp.Activity = append(resp.Activity, newActivityResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Activity entry
//	@Description	Returns one audited mutation by id.
//	@Tags			Team
//	@Produce		json
//	@Param			id	path		string	true	"activity id"
//	@Success		200	{object}	ActivityResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/team/activity/{id} [get].
func (h *ActivityHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.Store.Activity().GetActivity(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "activity not found")
		return
	case err != nil:
		slogx.FromContext(ctx).Error("failed to get activity", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not load activity")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newActivityResponse(a))
}

func newActivityResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID.String(),
		SessionID: a.SessionID.String(),
		Action:    string(a.Action),
		TargetID:  a.TargetID,
		Outcome:   string(a.Outcome),
		Detail:    a.Detail,
		CreatedAt: a.CreatedAt,
	}
}
