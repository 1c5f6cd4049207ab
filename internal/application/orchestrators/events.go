package orchestrators

import (
	"context"
	"log/slog"

	"tapsandtakeout/internal/domain/event"
)

// ContentStoreForEvents defines the store interface needed by the event
// orchestrators.
type ContentStoreForEvents interface {
	Events(ctx context.Context) ([]event.Event, error)
	SaveEvents(ctx context.Context, events []event.Event) error
}

// EventDeps holds dependencies shared by the event orchestrators.
type EventDeps struct {
	ContentStore ContentStoreForEvents
	GenerateID   func() string
	Today        func() event.Date
}

// ExecuteAddEvent appends a validated event to the collection and persists
// it. A pinned event submitted without a date is stored with today's date;
// the public view ignores it either way.
// PRE: e passed form validation
// POST: collection grows by one; the stored event is returned with its ID
func ExecuteAddEvent(ctx context.Context, e event.Event, deps EventDeps) (event.Event, error) {
	if e.Date.IsZero() {
		e.Date = deps.Today()
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}
	e.ID = deps.GenerateID()

	events, err := deps.ContentStore.Events(ctx)
	if err != nil {
		return event.Event{}, err
	}
	events = append(events, e)
	if err := deps.ContentStore.SaveEvents(ctx, events); err != nil {
		return event.Event{}, err
	}

	slog.Info("admin_event", "event", "event_added", "event_id", e.ID, "title", e.Title, "pinned", e.Pinned)
	return e, nil
}

// UpdateEventInput carries input for the update orchestrator.
type UpdateEventInput struct {
	Index int
	Event event.Event
}

// ExecuteUpdateEvent replaces the event at Index in place. The existing
// event's ID is preserved so the row keeps its stable identity across
// edits.
// PRE: input.Event passed form validation
// POST: collection length unchanged; returns event.ErrIndexOutOfRange for
// a stale or forged index, leaving the stored collection untouched
func ExecuteUpdateEvent(ctx context.Context, input UpdateEventInput, deps EventDeps) (event.Event, error) {
	events, err := deps.ContentStore.Events(ctx)
	if err != nil {
		return event.Event{}, err
	}
	if input.Index < 0 || input.Index >= len(events) {
		return event.Event{}, event.ErrIndexOutOfRange
	}

	e := input.Event
	if e.Date.IsZero() {
		e.Date = deps.Today()
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}
	e.ID = events[input.Index].ID
	if e.ID == "" {
		e.ID = deps.GenerateID()
	}
	oldTitle := events[input.Index].Title
	events[input.Index] = e

	if err := deps.ContentStore.SaveEvents(ctx, events); err != nil {
		return event.Event{}, err
	}

	slog.Info("admin_event", "event", "event_updated", "event_id", e.ID, "old_title", oldTitle, "title", e.Title, "pinned", e.Pinned)
	return e, nil
}

// ExecuteDeleteEvent removes the event at index and persists the shortened
// collection.
// POST: returns the deleted event, or event.ErrIndexOutOfRange with the
// stored collection untouched
func ExecuteDeleteEvent(ctx context.Context, index int, deps EventDeps) (event.Event, error) {
	events, err := deps.ContentStore.Events(ctx)
	if err != nil {
		return event.Event{}, err
	}
	if index < 0 || index >= len(events) {
		return event.Event{}, event.ErrIndexOutOfRange
	}

	deleted := events[index]
	events = append(events[:index], events[index+1:]...)
	if err := deps.ContentStore.SaveEvents(ctx, events); err != nil {
		return event.Event{}, err
	}

	slog.Info("admin_event", "event", "event_deleted", "event_id", deleted.ID, "title", deleted.Title)
	return deleted, nil
}

// ExecuteClearPast removes every non-pinned event dated strictly before
// yesterday and persists the result. Running it twice in a row removes
// nothing the second time.
// POST: returns the number of events removed
func ExecuteClearPast(ctx context.Context, deps EventDeps) (int, error) {
	events, err := deps.ContentStore.Events(ctx)
	if err != nil {
		return 0, err
	}
	kept, removed := event.RemovePast(events, deps.Today())
	if err := deps.ContentStore.SaveEvents(ctx, kept); err != nil {
		return 0, err
	}

	slog.Info("admin_event", "event", "events_cleared", "removed", removed)
	return removed, nil
}
