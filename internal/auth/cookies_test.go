package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplens/internal/auth"
)

func TestSetAuthCookiesAttributes(t *testing.T) {
	b := auth.NewCookieBinder("", true, 15*time.Minute, time.Hour)
	rec := httptest.NewRecorder()
	b.SetAuthCookies(rec, auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	access := byName[auth.AccessTokenCookie]
	require.NotNil(t, access)
	assert.Equal(t, "acc", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, int(15*time.Minute/time.Second), access.MaxAge)

	refresh := byName[auth.RefreshTokenCookie]
	require.NotNil(t, refresh)
	assert.Equal(t, "ref", refresh.Value)
	assert.Equal(t, int(time.Hour/time.Second), refresh.MaxAge)
}

func TestClearAuthCookies(t *testing.T) {
	b := auth.NewCookieBinder("", false, 15*time.Minute, time.Hour)
	rec := httptest.NewRecorder()
	b.ClearAuthCookies(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	}
}

func TestAccessTokenFromRequestPrefersCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: "from-cookie"})
	r.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", auth.AccessTokenFromRequest(r))
}

func TestAccessTokenFromRequestBearerFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", auth.AccessTokenFromRequest(r))

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, auth.AccessTokenFromRequest(bare))
}

func TestRefreshTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	assert.Empty(t, auth.RefreshTokenFromRequest(r))

	r.AddCookie(&http.Cookie{Name: auth.RefreshTokenCookie, Value: "ref"})
	assert.Equal(t, "ref", auth.RefreshTokenFromRequest(r))
}
