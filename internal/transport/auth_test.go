package transport

import (
	"net/http"
	"testing"
)

// TestNoAuth tests that NoAuth applies no authentication.
func TestNoAuth(t *testing.T) {
	auth := &NoAuth{}
	req := &http.Request{
		Header: make(http.Header),
	}

	auth.Apply(req, "test-token")

	// Should not have any authentication headers
	if len(req.Header) != 0 {
		t.Errorf("Expected no headers, got %d", len(req.Header))
	}
}

// TestSessionCookieAuth tests the controller's session cookie scheme.
func TestSessionCookieAuth(t *testing.T) {
	auth := &SessionCookieAuth{}
	req := &http.Request{
		Header: make(http.Header),
	}

	auth.Apply(req, "test-token")

	cookie := req.Header.Get("Cookie")
	expected := "session_cookie=test-token"
	if cookie != expected {
		t.Errorf("Expected Cookie header '%s', got '%s'", expected, cookie)
	}

	// Should not have Authorization header
	if req.Header.Get("Authorization") != "" {
		t.Error("Should not have Authorization header")
	}
}

// TestSessionCookieAuthCustomName tests overriding the cookie name.
func TestSessionCookieAuthCustomName(t *testing.T) {
	auth := &SessionCookieAuth{Cookie: "bmf_session"}
	req := &http.Request{
		Header: make(http.Header),
	}

	auth.Apply(req, "test-token")

	cookie := req.Header.Get("Cookie")
	expected := "bmf_session=test-token"
	if cookie != expected {
		t.Errorf("Expected Cookie header '%s', got '%s'", expected, cookie)
	}
}
