package team_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/app"
	"github.com/aussiebroadwan/teamdesk/pkg/teamsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Helpers for the team admin end-to-end tests. The commerce admin API is
 * played by a WireMock container; the team admin runs in-process against it.
 */

const wiremockImage = "wiremock/wiremock:3.9.1"

// setupWireMock starts WireMock and returns its base URL.
func setupWireMock(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in -short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        wiremockImage,
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor: wait.ForHTTP("/__admin/mappings").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// stub registers a WireMock mapping answering method+path with body.
func stub(t *testing.T, wiremockURL, method, path string, status int, body any) {
	t.Helper()

	response := map[string]any{
		"status":  status,
		"headers": map[string]string{"Content-Type": "application/json"},
	}
	if body != nil {
		response["jsonBody"] = body
	}
	mapping := map[string]any{
		"request":  map[string]any{"method": method, "urlPath": path},
		"response": response,
	}

	resp := postJSON(t, wiremockURL+"/__admin/mappings", mapping)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// requestCount asks WireMock how many times method+path was called.
func requestCount(t *testing.T, wiremockURL, method, path string) int {
	t.Helper()

	resp := postJSON(t, wiremockURL+"/__admin/requests/count", map[string]any{
		"method":  method,
		"urlPath": path,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Count
}

func postJSON(t *testing.T, target string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(target, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// seedTeam stubs the list endpoints with two users and one expired invite.
func seedTeam(t *testing.T, wiremockURL string) {
	t.Helper()

	stub(t, wiremockURL, http.MethodGet, "/admin/users", http.StatusOK, teamsdk.ListUsersResponse{
		Users: []teamsdk.User{
			{ID: "usr_1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Role: "admin"},
			{ID: "usr_2", Email: "bob@example.com", FirstName: "Bob", Role: "member"},
		},
	})
	stub(t, wiremockURL, http.MethodGet, "/admin/invites", http.StatusOK, teamsdk.ListInvitesResponse{
		Invites: []teamsdk.Invite{
			{ID: "inv_1", UserEmail: "late@example.com", Role: "member", ExpiresAt: time.Now().Add(-time.Hour).UTC()},
		},
	})
	stub(t, wiremockURL, http.MethodGet, "/health", http.StatusOK, map[string]string{"status": "ok"})
}

// teamAdmin is the service under test, served in-process.
type teamAdmin struct {
	baseURL string
	client  *http.Client
}

func startTeamAdmin(t *testing.T, wiremockURL string) *teamAdmin {
	t.Helper()

	application, err := app.New(app.Config{
		APIURL:               wiremockURL,
		APIToken:             "e2e-token",
		APITimeout:           5 * time.Second,
		DatabaseFile:         filepath.Join(t.TempDir(), "teamdesk.db"),
		RenderTimeout:        5 * time.Second,
		ViewIdleTTL:          time.Hour,
		ActivityRetention:    time.Hour,
		PageSize:             10,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	})
	require.NoError(t, err)

	server := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		server.Close()
		_ = application.Shutdown()
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &teamAdmin{
		baseURL: server.URL,
		client:  &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}
}

func (a *teamAdmin) page(t *testing.T) string {
	t.Helper()
	resp, err := a.client.Get(a.baseURL + "/team")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// submit posts a form and returns the page it redirects to.
func (a *teamAdmin) submit(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := a.client.Post(a.baseURL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
