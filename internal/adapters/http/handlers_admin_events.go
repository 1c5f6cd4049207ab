package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"tapsandtakeout/internal/application/orchestrators"
	"tapsandtakeout/internal/domain/event"
	"tapsandtakeout/internal/domain/sanitize"
)

// eventForm echoes a submission back into the template on validation
// failure. Title and Description carry the cleaned values; Date stays a
// raw string so a malformed value is shown as typed.
type eventForm struct {
	Title       string
	Date        string
	Description string
	Pinned      bool
}

type adminEventsData struct {
	Flash       string
	Events      []event.Event
	FormData    eventForm         // the add form at the top of the page
	FormErrors  map[string]string // errors scoped to the add form
	RowIndex    int               // row with errors, -1 when none
	RowFormData eventForm
	RowErrors   map[string]string
	GlobalError string // index failures, not tied to any field
}

func newAdminEventsData(events []event.Event) adminEventsData {
	return adminEventsData{
		Events:     events,
		FormErrors: map[string]string{},
		RowIndex:   -1,
		RowErrors:  map[string]string{},
	}
}

func eventDeps() orchestrators.EventDeps {
	return orchestrators.EventDeps{
		ContentStore: stores.ContentStore,
		GenerateID:   generateID,
		Today:        today,
	}
}

// handleAdminEvents renders the events editor and dispatches its POST
// actions: add, update, delete, clear_past.
func handleAdminEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := stores.ContentStore.Events(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	if r.Method != "POST" {
		data := newAdminEventsData(events)
		data.Flash = consumeFlash(w, r)
		renderTemplate(w, r, "admin_events.html", data)
		return
	}

	action := r.FormValue("action")
	pinned := r.FormValue("pinned") != ""
	cleaned, fieldErrs := event.ParseForm(
		r.FormValue("title"),
		r.FormValue("date"),
		r.FormValue("description"),
		pinned,
	)
	form := eventForm{
		Title:       cleaned.Title,
		Date:        sanitize.Text(r.FormValue("date"), false),
		Description: cleaned.Description,
		Pinned:      pinned,
	}

	switch action {
	case "add":
		if len(fieldErrs) > 0 {
			slog.Warn("validation_failure", "form", "event_add", "errors", fieldErrs)
			data := newAdminEventsData(events)
			data.FormData = form
			data.FormErrors = fieldErrs
			renderTemplateStatus(w, r, "admin_events.html", data, http.StatusBadRequest)
			return
		}
		added, err := orchestrators.ExecuteAddEvent(ctx, cleaned, eventDeps())
		if err != nil {
			internalError(w, err)
			return
		}
		setFlash(w, fmt.Sprintf("Added event “%s”.", added.Title))
		http.Redirect(w, r, "/admin-events", http.StatusSeeOther)

	case "update", "delete":
		// Bounds come first: a stale index is reported even when the
		// submitted fields are also invalid.
		idx, perr := strconv.Atoi(r.FormValue("index"))
		if perr != nil || idx < 0 || idx >= len(events) {
			slog.Warn("validation_failure", "form", "event_row_index", "index", r.FormValue("index"))
			data := newAdminEventsData(events)
			data.GlobalError = "Invalid index"
			renderTemplateStatus(w, r, "admin_events.html", data, http.StatusBadRequest)
			return
		}

		if action == "update" {
			if len(fieldErrs) > 0 {
				slog.Warn("validation_failure", "form", "event_update", "index", idx, "errors", fieldErrs)
				data := newAdminEventsData(events)
				data.RowIndex = idx
				data.RowFormData = form
				data.RowErrors = fieldErrs
				renderTemplateStatus(w, r, "admin_events.html", data, http.StatusBadRequest)
				return
			}
			updated, err := orchestrators.ExecuteUpdateEvent(ctx, orchestrators.UpdateEventInput{
				Index: idx,
				Event: cleaned,
			}, eventDeps())
			if err != nil {
				adminEventsWriteError(w, r, events, err)
				return
			}
			setFlash(w, fmt.Sprintf("Updated event “%s”.", updated.Title))
			http.Redirect(w, r, "/admin-events", http.StatusSeeOther)
			return
		}

		deleted, err := orchestrators.ExecuteDeleteEvent(ctx, idx, eventDeps())
		if err != nil {
			adminEventsWriteError(w, r, events, err)
			return
		}
		setFlash(w, fmt.Sprintf("Deleted event “%s”.", deleted.Title))
		http.Redirect(w, r, "/admin-events", http.StatusSeeOther)

	case "clear_past":
		removed, err := orchestrators.ExecuteClearPast(ctx, eventDeps())
		if err != nil {
			internalError(w, err)
			return
		}
		setFlash(w, fmt.Sprintf("Removed %d past event(s).", removed))
		http.Redirect(w, r, "/admin-events", http.StatusSeeOther)

	default:
		renderTemplate(w, r, "admin_events.html", newAdminEventsData(events))
	}
}

// adminEventsWriteError distinguishes a lost race on the index (the
// collection changed between load and mutate) from a real storage fault.
func adminEventsWriteError(w http.ResponseWriter, r *http.Request, events []event.Event, err error) {
	if errors.Is(err, event.ErrIndexOutOfRange) {
		data := newAdminEventsData(events)
		data.GlobalError = "Invalid index"
		renderTemplateStatus(w, r, "admin_events.html", data, http.StatusBadRequest)
		return
	}
	internalError(w, err)
}
