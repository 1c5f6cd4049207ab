package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tapsandtakeout/internal/adapters/http/middleware"
	"tapsandtakeout/internal/application/orchestrators"
	"tapsandtakeout/internal/application/projections"
	"tapsandtakeout/internal/domain/event"
	"tapsandtakeout/internal/domain/menu"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// today returns the server's current calendar date.
func today() event.Date {
	t := timeNow()
	return event.NewDate(t.Year(), t.Month(), t.Day())
}

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

type homeData struct {
	Flash string
}

// handleHome renders the landing page. The root pattern matches every
// unregistered path, so anything but "/" is a 404.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "index.html", homeData{Flash: consumeFlash(w, r)})
}

type menuPageData struct {
	Flash string
	Menu  []menu.Section
}

// handleMenu renders the public menu.
func handleMenu(w http.ResponseWriter, r *http.Request) {
	sections, err := stores.ContentStore.Menu(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "menu.html", menuPageData{Flash: consumeFlash(w, r), Menu: sections})
}

type eventsPageData struct {
	Flash    string
	Pinned   []event.Event
	Upcoming []event.Event
}

// handleEvents renders the public events page: pinned first (no dates
// shown), then upcoming dated events in ascending order.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryPublicEvents(r.Context(), projections.PublicEventsDeps{
		ContentStore: stores.ContentStore,
	}, today())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "events.html", eventsPageData{
		Flash:    consumeFlash(w, r),
		Pinned:   result.Pinned,
		Upcoming: result.Upcoming,
	})
}

type contactPageData struct {
	Flash  string
	Form   orchestrators.ContactMessage
	Errors map[string]string
}

// handleContact renders the contact page and accepts form submissions.
// Delivery goes through the configured email sender; without a Resend key
// that is a logging noop, but the form behaves the same either way.
func handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		form, errs := orchestrators.ParseContactForm(
			r.FormValue("name"),
			r.FormValue("email"),
			r.FormValue("message"),
		)
		if len(errs) > 0 {
			renderTemplateStatus(w, r, "contact.html", contactPageData{Form: form, Errors: errs}, http.StatusBadRequest)
			return
		}
		err := orchestrators.ExecuteSendContact(r.Context(), form, orchestrators.ContactDeps{
			Sender: emailSender,
			To:     contactToAddress,
			From:   contactFromAddress,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		setFlash(w, "Thanks! We'll get back to you soon.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "contact.html", contactPageData{Flash: consumeFlash(w, r)})
}

// handleHealthz reports liveness plus collection sizes as JSON.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := stores.ContentStore.Events(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	sections, err := stores.ContentStore.Menu(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":        "ok",
		"events_count":  len(events),
		"menu_sections": len(sections),
	})
}

type loginPageData struct {
	Flash string
	Error string
}

// handleAdminLogin renders the login form and checks credentials. Wrong
// credentials get a 403 with an inline message and no session mutation.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		if !loginLimiter.Allow(r.RemoteAddr) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
			Username:   r.FormValue("username"),
			Password:   r.FormValue("password"),
			RemoteAddr: r.RemoteAddr,
		}, orchestrators.LoginDeps{PasswordHash: adminPasswordHash})
		if err != nil {
			renderTemplateStatus(w, r, "admin_login.html", loginPageData{Error: "Invalid credentials."}, http.StatusForbidden)
			return
		}
		token, err := sessions.Create(orchestrators.AdminUsername)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin-events", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "admin_login.html", loginPageData{Flash: consumeFlash(w, r)})
}

// handleLogout clears the session and returns to the login page.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
