package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenVerifier(t *testing.T) {
	v := &httpx.TokenVerifier{Secret: []byte("s3cret"), Issuer: "idp"}

	t.Run("round trip", func(t *testing.T) {
		raw, err := v.Sign("op_1", []string{httpx.ScopeTeamRead, httpx.ScopeTeamWrite}, time.Minute)
		require.NoError(t, err)

		claims, err := v.Verify(raw)
		require.NoError(t, err)
		require.Equal(t, "op_1", claims.Subject)
		require.Equal(t, []string{httpx.ScopeTeamRead, httpx.ScopeTeamWrite}, claims.Scopes())
	})

	t.Run("expired token rejected", func(t *testing.T) {
		raw, err := v.Sign("op_1", nil, -time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(raw)
		require.ErrorIs(t, err, httpx.ErrTokenInvalid)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := &httpx.TokenVerifier{Secret: []byte("other"), Issuer: "idp"}
		raw, err := other.Sign("op_1", nil, time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(raw)
		require.ErrorIs(t, err, httpx.ErrTokenInvalid)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		other := &httpx.TokenVerifier{Secret: []byte("s3cret"), Issuer: "someone-else"}
		raw, err := other.Sign("op_1", nil, time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(raw)
		require.ErrorIs(t, err, httpx.ErrTokenInvalid)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, httpx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "op_1",
				Issuer:    "idp",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.Verify(raw)
		require.ErrorIs(t, err, httpx.ErrTokenInvalid)
	})
}

func TestAuthnAndScopes(t *testing.T) {
	v := &httpx.TokenVerifier{Secret: []byte("s3cret")}

	var subject string
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = httpx.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}),
		httpx.AuthnMiddleware(v),
		httpx.RequireAnyScope(httpx.ScopeTeamWrite),
	)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("insufficient scope", func(t *testing.T) {
		raw, err := v.Sign("op_1", []string{httpx.ScopeTeamRead}, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("cookie token accepted", func(t *testing.T) {
		raw, err := v.Sign("op_2", []string{httpx.ScopeTeamWrite}, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: httpx.TokenCookieName, Value: raw})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "op_2", subject)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
