// Package menu models the restaurant menu: an ordered list of sections,
// each holding an ordered list of items.
package menu

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"tapsandtakeout/internal/domain/sanitize"
)

// Max length constants for admin-editable fields.
const (
	MaxSectionNameLength     = 60
	MaxItemNameLength        = 80
	MaxItemDescriptionLength = 400
)

// Domain errors
var (
	ErrSectionIndexOutOfRange = errors.New("section index out of range")
	ErrItemIndexOutOfRange    = errors.New("item index out of range")
	ErrEmptySectionName       = errors.New("section name cannot be empty")
	ErrEmptyItemName          = errors.New("item name cannot be empty")
)

// Section is a named group of menu items. Sections and their items keep
// insertion order; admin mutations address both by position.
type Section struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"section"`
	Items []Item `json:"items"`
}

// Item is a single menu entry.
type Item struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks the section's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (s *Section) Validate() error {
	if s.Name == "" {
		return ErrEmptySectionName
	}
	if utf8.RuneCountInString(s.Name) > MaxSectionNameLength {
		return fmt.Errorf("section name cannot exceed %d characters", MaxSectionNameLength)
	}
	for i := range s.Items {
		if err := s.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the item's invariants.
func (it *Item) Validate() error {
	if it.Name == "" {
		return ErrEmptyItemName
	}
	if utf8.RuneCountInString(it.Name) > MaxItemNameLength {
		return fmt.Errorf("item name cannot exceed %d characters", MaxItemNameLength)
	}
	if utf8.RuneCountInString(it.Description) > MaxItemDescriptionLength {
		return fmt.Errorf("item description cannot exceed %d characters", MaxItemDescriptionLength)
	}
	return nil
}

// ParseSectionForm sanitizes and validates a raw section name. The map is
// keyed "section_name"; empty means valid.
// PRE: input is the already-decoded form value, untrusted
// POST: no side effects
func ParseSectionForm(name string) (string, map[string]string) {
	name = sanitize.Text(name, false)
	errs := make(map[string]string)
	if name == "" {
		errs["section_name"] = "Section name is required."
	} else if utf8.RuneCountInString(name) > MaxSectionNameLength {
		errs["section_name"] = fmt.Sprintf("Section name must be %d characters or fewer.", MaxSectionNameLength)
	}
	return name, errs
}

// ParseItemForm sanitizes and validates raw item form fields. The map is
// keyed "item_name" / "item_description"; empty means valid.
// PRE: inputs are the already-decoded form values, untrusted
// POST: no side effects; returned Item holds the cleaned values
func ParseItemForm(name, description string) (Item, map[string]string) {
	it := Item{
		Name:        sanitize.Text(name, false),
		Description: sanitize.Text(description, true),
	}
	errs := make(map[string]string)
	if it.Name == "" {
		errs["item_name"] = "Item name is required."
	} else if utf8.RuneCountInString(it.Name) > MaxItemNameLength {
		errs["item_name"] = fmt.Sprintf("Item name must be %d characters or fewer.", MaxItemNameLength)
	}
	if utf8.RuneCountInString(it.Description) > MaxItemDescriptionLength {
		errs["item_description"] = fmt.Sprintf("Description must be %d characters or fewer.", MaxItemDescriptionLength)
	}
	return it, errs
}
