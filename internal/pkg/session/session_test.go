package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestResolver_Resolve_NewSession(t *testing.T) {
	resolver := NewResolver()
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))

	id := resolver.Resolve(c)

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sessionId", cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 604800, cookies[0].MaxAge)
}

func TestResolver_Resolve_ExistingSession(t *testing.T) {
	resolver := NewResolver()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	// No format validation is applied to an existing value
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: "not-even-a-uuid"})
	c, rec := newContext(req)

	id := resolver.Resolve(c)

	assert.Equal(t, "not-even-a-uuid", id)
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestResolver_Resolve_EmptyCookieIssuesNewSession(t *testing.T) {
	resolver := NewResolver()
	resolver.newID = func() string { return "fixed-id" }

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Cookie", "sessionId=")
	c, rec := newContext(req)

	id := resolver.Resolve(c)

	assert.Equal(t, "fixed-id", id)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "fixed-id", cookies[0].Value)
}

func TestResolver_Resolve_GeneratesDistinctIDs(t *testing.T) {
	resolver := NewResolver()

	c1, _ := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
	c2, _ := newContext(httptest.NewRequest(http.MethodPost, "/", nil))

	assert.NotEqual(t, resolver.Resolve(c1), resolver.Resolve(c2))
}

func TestNewResolverFromConfig(t *testing.T) {
	t.Run("Defaults for empty config", func(t *testing.T) {
		resolver := NewResolverFromConfig(models.SessionConfig{})

		assert.Equal(t, DefaultCookieName, resolver.CookieName)
		assert.Equal(t, DefaultCookiePath, resolver.Path)
		assert.Equal(t, 7*24*time.Hour, resolver.MaxAge)
	})

	t.Run("Overrides", func(t *testing.T) {
		resolver := NewResolverFromConfig(models.SessionConfig{CookieName: "sid", CookiePath: "/app", MaxAge: 60})

		assert.Equal(t, "sid", resolver.CookieName)
		assert.Equal(t, "/app", resolver.Path)
		assert.Equal(t, time.Minute, resolver.MaxAge)
	})
}

func TestResolver_FromRequest(t *testing.T) {
	resolver := NewResolver()

	_, ok := resolver.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: "abc"})
	id, ok := resolver.FromRequest(req)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
