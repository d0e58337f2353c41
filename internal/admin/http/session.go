package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
)

const (
	// SessionCookieName holds the view session id.
	SessionCookieName = "teamdesk_view"
	// SessionHeader lets API clients pick a view session without cookies.
	SessionHeader = "X-Team-View"
)

func sessionID(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(SessionHeader)); v != "" {
		return v
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// viewFor resolves the caller's view, creating and mounting one on first use.
// Views belong to the authenticated operator; another operator's session id
// yields a fresh view.
func (h *TeamHandler) viewFor(w http.ResponseWriter, r *http.Request) (*team.View, error) {
	v, created, err := h.Registry.Get(r.Context(), sessionID(r), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		return nil, err
	}
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    v.ID().String(),
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}
	w.Header().Set(SessionHeader, v.ID().String())
	return v, nil
}
