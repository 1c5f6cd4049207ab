// Package projections holds the application's read-side queries.
package projections

import (
	"context"
	"sort"

	"tapsandtakeout/internal/domain/event"
)

// ContentStoreForPublicEvents defines the store interface needed by the
// public events query.
type ContentStoreForPublicEvents interface {
	Events(ctx context.Context) ([]event.Event, error)
}

// PublicEventsDeps holds dependencies for QueryPublicEvents.
type PublicEventsDeps struct {
	ContentStore ContentStoreForPublicEvents
}

// PublicEventsResult is the public events page view: pinned events in
// storage order (their dates are never displayed), then upcoming dated
// events sorted ascending.
type PublicEventsResult struct {
	Pinned   []event.Event
	Upcoming []event.Event
}

// QueryPublicEvents assembles the public events view for the given date.
// Non-pinned events dated strictly before yesterday are excluded; they
// stay in storage until an explicit clear-past.
// PRE: today is the server's current date
// POST: Upcoming is non-decreasing by date; Pinned keeps storage order
func QueryPublicEvents(ctx context.Context, deps PublicEventsDeps, today event.Date) (PublicEventsResult, error) {
	events, err := deps.ContentStore.Events(ctx)
	if err != nil {
		return PublicEventsResult{}, err
	}

	yesterday := today.AddDays(-1)
	result := PublicEventsResult{
		Pinned:   []event.Event{},
		Upcoming: []event.Event{},
	}
	for _, e := range events {
		switch {
		case e.Pinned:
			result.Pinned = append(result.Pinned, e)
		case !e.Date.Before(yesterday):
			result.Upcoming = append(result.Upcoming, e)
		}
	}
	sort.SliceStable(result.Upcoming, func(i, j int) bool {
		return result.Upcoming[i].Date.Before(result.Upcoming[j].Date)
	})
	return result, nil
}
