package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/store"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"

	_ "github.com/aussiebroadwan/teamdesk/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      *httpx.TokenVerifier // nil disables operator authentication
	buildVersion  string
	startTime     time.Time
	renderTimeout time.Duration
	logger        *slog.Logger

	store    store.Store
	remote   RemoteHealth
	registry *team.Registry
}

func NewRouter(
	registry *team.Registry,
	st store.Store,
	remote RemoteHealth,
	verifier *httpx.TokenVerifier,
	buildVersion string,
	renderTimeout time.Duration,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		renderTimeout: renderTimeout,
		logger:        logger,
		store:         st,
		remote:        remote,
		registry:      registry,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerTeam()
	r.registerAPI()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TeamDesk Admin API
//	@version		0.1.0
//	@description	Team management view over the commerce admin API: list users and invites, edit and remove users, resend and create invites.
//	@description
//	@description				Page routes answer with HTML and redirect after form posts. Send Accept: application/json to a form route to get the resulting view state instead.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/teamdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 operator token with team:read or team:write scope. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication and a scope check when a verifier is
// configured.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	if r.verifier == nil {
		return httpx.Chain(h, httpx.RateLimitByIP(limit))
	}
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByOperator(limit),
	)
}

func (r *Router) teamHandler() *TeamHandler {
	return &TeamHandler{
		Registry:      r.registry,
		RenderTimeout: r.renderTimeout,
		AuthEnabled:   r.verifier != nil,
	}
}

func (r *Router) registerTeam() {
	h := r.teamHandler()

	read := func(hf http.HandlerFunc) http.Handler {
		return r.secured(hf, httpx.ReadLimit, httpx.ScopeTeamRead, httpx.ScopeTeamWrite)
	}
	write := func(hf http.HandlerFunc) http.Handler {
		return r.secured(hf, httpx.MutationLimit, httpx.ScopeTeamWrite)
	}

	r.Mux.Handle("GET /{$}", http.RedirectHandler("/team", http.StatusSeeOther))
	r.Mux.Handle("GET /team", read(h.HandlePage))

	// Navigation-only actions: they open or close overlays, or reload.
	r.Mux.Handle("POST /team/refresh", read(h.Action(fixed(team.RefetchRequested{}))))
	r.Mux.Handle("POST /team/page/{direction}", read(h.Action(changePage)))
	r.Mux.Handle("POST /team/error/dismiss", read(h.Action(fixed(team.ErrorDismissed{}))))
	r.Mux.Handle("POST /team/overlay/close", read(h.Action(fixed(team.OverlayClosed{}))))
	r.Mux.Handle("POST /team/invite/close", read(h.Action(fixed(team.InviteModalClosed{}))))

	// Actions that lead to a write against the admin API.
	r.Mux.Handle("POST /team/users/{id}/edit", write(h.Action(editUser)))
	r.Mux.Handle("POST /team/users/{id}/remove", write(h.Action(removeUser)))
	r.Mux.Handle("POST /team/users/delete", write(h.Action(fixed(team.DeleteConfirmed{}))))
	r.Mux.Handle("POST /team/users/update", write(h.Action(updateUser)))
	r.Mux.Handle("POST /team/invites/{id}/resend", write(h.Action(resendInvite)))
	r.Mux.Handle("POST /team/invites/{id}/remove", write(h.Action(removeInvite)))
	r.Mux.Handle("POST /team/invite", write(h.Action(fixed(team.InviteModalOpened{}))))
	r.Mux.Handle("POST /team/invites", write(h.Action(createInvite)))
}

func (r *Router) registerAPI() {
	h := r.teamHandler()

	r.Mux.Handle("GET /v1/team/state",
		r.secured(http.HandlerFunc(h.HandleState), httpx.ReadLimit, httpx.ScopeTeamRead, httpx.ScopeTeamWrite),
	)
	activity := &ActivityHandler{Store: r.store, Registry: r.registry}
	r.Mux.Handle("GET /v1/team/activity",
		r.secured(activity, httpx.ReadLimit, httpx.ScopeTeamRead, httpx.ScopeTeamWrite),
	)
	r.Mux.Handle("GET /v1/team/activity/{id}",
		r.secured(http.HandlerFunc(activity.HandleGet), httpx.ReadLimit, httpx.ScopeTeamRead, httpx.ScopeTeamWrite),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.remote),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
}
