package web

import (
	"net/http"

	"tapsandtakeout/internal/adapters/http/middleware"
)

// registerRoutes attaches all page handlers to the mux. Admin content
// editors sit behind RequireAdmin; the login page itself does not.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/menu", handleMenu)
	mux.HandleFunc("/events", handleEvents)
	mux.HandleFunc("/contact", handleContact)
	mux.HandleFunc("/healthz", handleHealthz)

	mux.HandleFunc("/admin", handleAdminLogin)
	mux.HandleFunc("/logout", handleLogout)
	mux.Handle("/admin-events", middleware.RequireAdmin(http.HandlerFunc(handleAdminEvents)))
	mux.Handle("/admin-menu", middleware.RequireAdmin(http.HandlerFunc(handleAdminMenu)))
}
