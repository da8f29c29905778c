package transport

import (
	"net/http"

	"github.com/bigmonlabs/bigmonctl/pkg/constants"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, token string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {
	// No authentication applied
}

// SessionCookieAuth implements the controller's session cookie scheme: the
// access token travels in a Cookie header under a fixed cookie name.
type SessionCookieAuth struct {
	Cookie string // cookie name, defaults to session_cookie
}

// Apply implements the Authenticator interface for SessionCookieAuth.
func (a *SessionCookieAuth) Apply(req *http.Request, token string) {
	cookie := a.Cookie
	if cookie == "" {
		cookie = constants.SessionCookieName
	}
	req.Header.Set("Cookie", cookie+"="+token)
}
