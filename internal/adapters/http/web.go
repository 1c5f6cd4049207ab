// Package web wires the HTTP surface: public pages, the admin area, and
// the middleware chain around them.
package web

import (
	"net/http"
	"time"

	"tapsandtakeout/internal/adapters/email"
	"tapsandtakeout/internal/adapters/http/middleware"
	"tapsandtakeout/internal/adapters/storage/content"
)

// Stores holds all storage dependencies.
type Stores struct {
	ContentStore content.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the global per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// loginLimiter throttles password attempts separately from normal traffic.
var loginLimiter = middleware.NewRateLimiter(10, time.Minute)

// Admin credential (set by SetAdminPasswordHash)
var adminPasswordHash []byte

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender = email.NewNoopSender()

// Contact form addressing
var contactToAddress string
var contactFromAddress string

// SetEmailSender sets the global email sender for contact-form delivery.
func SetEmailSender(sender email.Sender, to, from string) {
	emailSender = sender
	contactToAddress = to
	contactFromAddress = from
}

// SetAdminPasswordHash sets the bcrypt hash the login form checks against.
func SetAdminPasswordHash(hash []byte) {
	adminPasswordHash = hash
}

// NewMux wires HTTP handlers for the app.
// PRE: csrfKey is 32 bytes
func NewMux(staticDir string, s *Stores, csrfKey []byte) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)
	trustedOrigins := []string{"localhost:8080", "127.0.0.1:8080"}

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, trustedOrigins),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
