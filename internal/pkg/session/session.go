package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/models"
)

const (
	// DefaultCookieName is the cookie carrying the anonymous visitor id
	DefaultCookieName = "sessionId"
	// DefaultCookiePath scopes the cookie to the whole site
	DefaultCookiePath = "/"
	// DefaultMaxAge is 7 days
	DefaultMaxAge = 7 * 24 * time.Hour
)

// Resolver reads or issues the anonymous session cookie
type Resolver struct {
	CookieName string
	Path       string
	MaxAge     time.Duration
	newID      func() string
}

// NewResolver creates a resolver with the default cookie settings
func NewResolver() *Resolver {
	return &Resolver{
		CookieName: DefaultCookieName,
		Path:       DefaultCookiePath,
		MaxAge:     DefaultMaxAge,
		newID:      func() string { return uuid.New().String() },
	}
}

// NewResolverFromConfig creates a resolver from the session config,
// falling back to defaults for unset values
func NewResolverFromConfig(cfg models.SessionConfig) *Resolver {
	r := NewResolver()
	if cfg.CookieName != "" {
		r.CookieName = cfg.CookieName
	}
	if cfg.CookiePath != "" {
		r.Path = cfg.CookiePath
	}
	if cfg.MaxAge > 0 {
		r.MaxAge = time.Duration(cfg.MaxAge) * time.Second
	}
	return r
}

// Resolve returns the visitor's session id. An existing non-empty cookie is
// returned as is; otherwise a new id is generated and set on the response.
func (r *Resolver) Resolve(c echo.Context) string {
	if id, ok := r.FromRequest(c.Request()); ok {
		return id
	}

	id := r.newID()
	c.SetCookie(&http.Cookie{
		Name:   r.CookieName,
		Value:  id,
		Path:   r.Path,
		MaxAge: int(r.MaxAge / time.Second),
	})
	return id
}

// FromRequest reads the session id without issuing a cookie
func (r *Resolver) FromRequest(req *http.Request) (string, bool) {
	cookie, err := req.Cookie(r.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
