package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestSessionStore_CreateGet verifies the session round trip.
func TestSessionStore_CreateGet(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create("admin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(token))
	}

	session, ok := ss.Get(token)
	if !ok {
		t.Fatal("session not found")
	}
	if session.Username != "admin" {
		t.Fatalf("username = %q, want admin", session.Username)
	}
}

// TestSessionStore_Delete verifies logout invalidates the token.
func TestSessionStore_Delete(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("admin")
	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Fatal("deleted session still retrievable")
	}
}

// TestSessionStore_Expiry verifies stale sessions are rejected.
func TestSessionStore_Expiry(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("admin")

	ss.mu.Lock()
	s := ss.sessions[token]
	s.CreatedAt = time.Now().Add(-9 * time.Hour)
	ss.sessions[token] = s
	ss.mu.Unlock()

	if _, ok := ss.Get(token); ok {
		t.Fatal("expired session still retrievable")
	}
}

// TestSessionStore_UnknownToken verifies a forged token is rejected.
func TestSessionStore_UnknownToken(t *testing.T) {
	ss := NewSessionStore()
	if _, ok := ss.Get("deadbeef"); ok {
		t.Fatal("unknown token should not resolve")
	}
}

// TestAuthMiddleware_SetsContext verifies a valid cookie puts the session
// in the request context.
func TestAuthMiddleware_SetsContext(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("admin")

	var got Session
	var found bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/admin-events", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("session not placed in context")
	}
	if got.Username != "admin" {
		t.Fatalf("username = %q, want admin", got.Username)
	}
}

// TestAuthMiddleware_NoCookie verifies requests without a cookie pass
// through unauthenticated.
func TestAuthMiddleware_NoCookie(t *testing.T) {
	ss := NewSessionStore()

	var found bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = GetSessionFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if found {
		t.Fatal("expected no session for cookieless request")
	}
}

// TestRequireAdmin_RedirectsAnonymous verifies the login redirect.
func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/admin-events", nil))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("redirect location = %q, want /admin", loc)
	}
}

// TestRequireAdmin_PassesAuthenticated verifies a session in context gets
// through.
func TestRequireAdmin_PassesAuthenticated(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/admin-events", nil)
	req = req.WithContext(ContextWithSession(req.Context(), Session{Username: "admin", CreatedAt: time.Now()}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

// TestSessionCookieRoundTrip verifies set then clear.
func TestSessionCookieRoundTrip(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "tok123")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "tok123" {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	rr = httptest.NewRecorder()
	ClearSessionCookie(rr)
	cookies = rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got: %+v", cookies)
	}
}
