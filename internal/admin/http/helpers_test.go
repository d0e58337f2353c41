package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"
	"github.com/aussiebroadwan/teamdesk/pkg/teamsdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// fakeAPI is an in-process stand-in for the admin API.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []string
	users   []teamsdk.User
	invites []teamsdk.Invite
	down    bool
}

func newFakeAPI() *fakeAPI {
	now := time.Now().UTC()
	return &fakeAPI{
		users: []teamsdk.User{
			{ID: "usr_1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Role: "admin"},
			{ID: "usr_2", Email: "bob@example.com", FirstName: "Bob", Role: "member"},
			{ID: "usr_3", Email: "ci@example.com", APIToken: "sk_live_123", Role: "developer"},
		},
		invites: []teamsdk.Invite{
			{ID: "inv_1", UserEmail: "late@example.com", Role: "member", ExpiresAt: now.Add(-24 * time.Hour)},
			{ID: "inv_2", UserEmail: "soon@example.com", Role: "member", ExpiresAt: now.Add(24 * time.Hour)},
		},
	}
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path == "/health" {
		if f.down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("OK"))
		return
	}

	f.calls = append(f.calls, r.Method+" "+r.URL.Path)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/admin/users":
		_ = json.NewEncoder(w).Encode(teamsdk.ListUsersResponse{Users: f.users})
	case r.Method == http.MethodGet && r.URL.Path == "/admin/invites":
		_ = json.NewEncoder(w).Encode(teamsdk.ListInvitesResponse{Invites: f.invites})
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/admin/users/"):
		id := strings.TrimPrefix(r.URL.Path, "/admin/users/")
		kept := f.users[:0:0]
		for _, u := range f.users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		f.users = kept
		_ = json.NewEncoder(w).Encode(teamsdk.DeleteResponse{ID: id, Object: "user", Deleted: true})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/resend"):
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	case r.Method == http.MethodPost && r.URL.Path == "/admin/invites":
		var req teamsdk.CreateInviteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.invites = append(f.invites, teamsdk.Invite{
			ID: "inv_new", UserEmail: req.User, Role: req.Role, ExpiresAt: time.Now().Add(time.Hour),
		})
		_, _ = w.Write([]byte(`{}`))
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/admin/users/"):
		var req teamsdk.UpdateUserRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		id := strings.TrimPrefix(r.URL.Path, "/admin/users/")
		for i := range f.users {
			if f.users[i].ID == id {
				f.users[i].FirstName = req.FirstName
				f.users[i].LastName = req.LastName
				_ = json.NewEncoder(w).Encode(teamsdk.UserResponse{User: f.users[i]})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"not_found","message":"user not found"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"not_found","message":"no route"}`))
	}
}

type testEnv struct {
	api      *fakeAPI
	server   *httptest.Server
	client   *http.Client
	verifier *httpx.TokenVerifier
}

func newTestEnv(t *testing.T, verifier *httpx.TokenVerifier) *testEnv {
	t.Helper()

	api := newFakeAPI()
	apiServer := httptest.NewServer(api)
	t.Cleanup(apiServer.Close)

	sdk := teamsdk.NewClient(apiServer.URL, "test-token")

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slogx.Discard()
	registry := team.NewRegistry(team.Options{
		Remote:   team.SDKRemote{Client: sdk},
		Activity: st.Activity(),
		Logger:   logger,
	})
	t.Cleanup(registry.Close)

	router := NewRouter(registry, st, sdk, verifier, "test", 2*time.Second, logger)
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		api:      api,
		server:   server,
		client:   &http.Client{Jar: jar, Timeout: 5 * time.Second},
		verifier: verifier,
	}
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, e.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// post submits a form and follows the redirect back to the page.
func (e *testEnv) post(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, e.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) postJSON(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, e.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func parsePage(t *testing.T, resp *http.Response) *html.Node {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc, err := html.Parse(strings.NewReader(string(body)))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(key string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		_, ok := attr(n, key)
		return ok
	}
}

func withID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, _ := attr(n, "id")
		return v == id
	}
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func rows(doc *html.Node) []*html.Node {
	return findAll(doc, func(n *html.Node) bool {
		_, ok := attr(n, "data-kind")
		return n.Data == "tr" && ok
	})
}
