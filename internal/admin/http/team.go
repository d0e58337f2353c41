package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/aussiebroadwan/teamdesk/internal/admin/i18n"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"
)

const (
	rejectConflict = "conflict"
	rejectNotFound = "not_found"
	rejectInvalid  = "invalid_request"
)

type timeSource func() time.Time

// TeamHandler serves the team page and its form actions.
type TeamHandler struct {
	Registry *team.Registry

	// RenderTimeout bounds how long a render waits for in-flight calls.
	RenderTimeout time.Duration
	// AuthEnabled hides write controls from operators without team:write.
	AuthEnabled bool

	Now timeSource
}

// HandlePage godoc
//
//	@Summary		Team page
//	@Description	Renders the team management page for the caller's view session. Waits up to the render timeout for in-flight remote calls first.
//	@Tags			Team
//	@Produce		html
//	@Param			lang		query	string	false	"language override (en, es)"
//	@Param			rejected	query	string	false	"code of the last rejected action"
//	@Success		200
//	@Failure		503	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/team [get].
func (h *TeamHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	v, err := h.viewFor(w, r)
	if err != nil {
		log.Error("failed to open view", slog.Any("error", err))
		httpx.WriteError(w, http.StatusServiceUnavailable, "unavailable", "could not open team view")
		return
	}
	ctx = slogx.WithView(ctx, v.ID().String())
	log = slogx.FromContext(ctx)

	h.waitIdle(ctx, v)
	s := v.Snapshot()

	tag := i18n.ResolveTag(r)
	p := i18n.Printer(tag)
	data := buildPage(s, v.ID().String(), tag, p, h.now(), h.canWrite(r), r.URL.Query().Get("rejected"))

	component, err := pageComponent(data, p)
	if err != nil {
		log.Error("failed to prepare page", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not render page")
		return
	}

	httpx.NoCache(w)
	templ.Handler(component).ServeHTTP(w, r)

	if len(data.Notices) > 0 {
		ids := make([]string, 0, len(data.Notices))
		for _, n := range data.Notices {
			ids = append(ids, n.ID)
		}
		if err := v.Send(ctx, team.NoticesConsumed{IDs: ids}); err != nil {
			log.Warn("failed to consume notices", slog.Any("error", err))
		}
	}
}

// Action turns a form post into a view event. Browsers are redirected back to
// the page; JSON clients get the resulting state.
func (h *TeamHandler) Action(build func(*http.Request) (team.Event, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		v, err := h.viewFor(w, r)
		if err != nil {
			log.Error("failed to open view", slog.Any("error", err))
			httpx.WriteError(w, http.StatusServiceUnavailable, "unavailable", "could not open team view")
			return
		}
		ctx = slogx.WithView(ctx, v.ID().String())
		log = slogx.FromContext(ctx)

		ev, err := build(r)
		if err == nil {
			err = v.Send(ctx, ev)
		}

		if err != nil {
			log.Info("team action rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
		}

		if wantsJSON(r) {
			if err != nil {
				code, errCode := statusFor(err)
				httpx.WriteError(w, code, errCode, err.Error())
				return
			}
			h.waitIdle(ctx, v)
			httpx.WriteJSON(w, http.StatusOK, newStateResponse(v.ID().String(), v.Snapshot(), i18n.Printer(i18n.ResolveTag(r)), h.now()))
			return
		}

		target := "/team"
		if err != nil {
			_, errCode := statusFor(err)
			target += "?" + url.Values{"rejected": {errCode}}.Encode()
		}
		httpx.SeeOther(w, r, target)
	}
}

func (h *TeamHandler) waitIdle(ctx context.Context, v *team.View) {
	if h.RenderTimeout <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, h.RenderTimeout)
	defer cancel()

	if err := v.WaitIdle(ctx); err != nil {
		slogx.FromContext(ctx).Debug("rendering before view settled", slog.Any("error", err))
	}
}

func (h *TeamHandler) now() timeSource {
	if h.Now != nil {
		return h.Now
	}
	return time.Now
}

func (h *TeamHandler) canWrite(r *http.Request) bool {
	if !h.AuthEnabled {
		return true
	}
	scopes, _ := r.Context().Value(httpx.CtxKeyScopes).([]string)
	return slices.Contains(scopes, httpx.ScopeTeamWrite)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, team.ErrOverlayActive),
		errors.Is(err, team.ErrInvalidTransition),
		errors.Is(err, team.ErrBusy),
		errors.Is(err, team.ErrNoSelection):
		return http.StatusConflict, rejectConflict
	case errors.Is(err, team.ErrUnknownUser), errors.Is(err, team.ErrUnknownInvite):
		return http.StatusNotFound, rejectNotFound
	case errors.Is(err, team.ErrInvalidInput):
		return http.StatusBadRequest, rejectInvalid
	case errors.Is(err, team.ErrClosed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "server_error"
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
