package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tapsandtakeout/internal/domain/event"
	"tapsandtakeout/internal/domain/menu"
)

const (
	eventsFileName = "events.json"
	menuFileName   = "menu.json"
	filePermission = 0o644
)

// JSONStore keeps each collection in a flat JSON file under a data
// directory. Saves overwrite the whole file; there is no partial-write
// protection and concurrent writers race with last-writer-wins, which is
// acceptable for a single shared admin credential.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a store rooted at dir. The directory is created
// lazily on first save.
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

// EventsPath returns the path of the events file.
func (s *JSONStore) EventsPath() string {
	return filepath.Join(s.dir, eventsFileName)
}

// MenuPath returns the path of the menu file.
func (s *JSONStore) MenuPath() string {
	return filepath.Join(s.dir, menuFileName)
}

// Events loads the events collection. A missing file means no events yet.
// PRE: none
// POST: returns a non-nil slice; dates are structured values, parsed from
// their YYYY-MM-DD storage form
func (s *JSONStore) Events(_ context.Context) ([]event.Event, error) {
	data, err := os.ReadFile(s.EventsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []event.Event{}, nil
		}
		return nil, fmt.Errorf("read events: %w", err)
	}
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}

// SaveEvents overwrites the events file with the given collection.
// PRE: every event has been validated
// POST: the file holds exactly the given events, dates as YYYY-MM-DD strings
func (s *JSONStore) SaveEvents(_ context.Context, events []event.Event) error {
	return s.write(s.EventsPath(), events)
}

// Menu loads the menu collection. A missing file yields the default seed
// menu, so the site has usable content before the first admin edit.
func (s *JSONStore) Menu(_ context.Context) ([]menu.Section, error) {
	data, err := os.ReadFile(s.MenuPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return menu.DefaultMenu(), nil
		}
		return nil, fmt.Errorf("read menu: %w", err)
	}
	var sections []menu.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if sections == nil {
		sections = []menu.Section{}
	}
	return sections, nil
}

// SaveMenu overwrites the menu file with the given collection.
func (s *JSONStore) SaveMenu(_ context.Context, sections []menu.Section) error {
	return s.write(s.MenuPath(), sections)
}

func (s *JSONStore) write(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
