// Package content persists the two site collections: the events calendar
// and the menu.
package content

import (
	"context"

	"tapsandtakeout/internal/domain/event"
	"tapsandtakeout/internal/domain/menu"
)

// Store owns durable load/save of the events and menu collections. Loads
// return a fresh working copy; saves fully replace the stored collection.
type Store interface {
	Events(ctx context.Context) ([]event.Event, error)
	SaveEvents(ctx context.Context, events []event.Event) error
	Menu(ctx context.Context) ([]menu.Section, error)
	SaveMenu(ctx context.Context, sections []menu.Section) error
}
