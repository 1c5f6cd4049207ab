package orchestrators

import (
	"context"
	"log/slog"

	"tapsandtakeout/internal/domain/menu"
)

// ContentStoreForMenu defines the store interface needed by the menu
// orchestrators.
type ContentStoreForMenu interface {
	Menu(ctx context.Context) ([]menu.Section, error)
	SaveMenu(ctx context.Context, sections []menu.Section) error
}

// MenuDeps holds dependencies shared by the menu orchestrators.
type MenuDeps struct {
	ContentStore ContentStoreForMenu
	GenerateID   func() string
}

// ExecuteAddSection appends an empty section and persists the menu.
// PRE: name passed form validation
// POST: menu grows by one section; the stored section is returned
func ExecuteAddSection(ctx context.Context, name string, deps MenuDeps) (menu.Section, error) {
	s := menu.Section{ID: deps.GenerateID(), Name: name, Items: []menu.Item{}}
	if err := s.Validate(); err != nil {
		return menu.Section{}, err
	}

	sections, err := deps.ContentStore.Menu(ctx)
	if err != nil {
		return menu.Section{}, err
	}
	sections = append(sections, s)
	if err := deps.ContentStore.SaveMenu(ctx, sections); err != nil {
		return menu.Section{}, err
	}

	slog.Info("admin_event", "event", "menu_section_added", "section_id", s.ID, "section", s.Name)
	return s, nil
}

// ExecuteDeleteSection removes the section at index, items and all.
// POST: returns the deleted section, or menu.ErrSectionIndexOutOfRange
// with the stored menu untouched
func ExecuteDeleteSection(ctx context.Context, index int, deps MenuDeps) (menu.Section, error) {
	sections, err := deps.ContentStore.Menu(ctx)
	if err != nil {
		return menu.Section{}, err
	}
	if index < 0 || index >= len(sections) {
		return menu.Section{}, menu.ErrSectionIndexOutOfRange
	}

	deleted := sections[index]
	sections = append(sections[:index], sections[index+1:]...)
	if err := deps.ContentStore.SaveMenu(ctx, sections); err != nil {
		return menu.Section{}, err
	}

	slog.Info("admin_event", "event", "menu_section_deleted", "section_id", deleted.ID, "section", deleted.Name)
	return deleted, nil
}

// ItemInput addresses an item-scoped mutation. ItemIndex is ignored by
// ExecuteAddItem.
type ItemInput struct {
	SectionIndex int
	ItemIndex    int
	Item         menu.Item
}

// ExecuteAddItem appends an item to the section at SectionIndex.
// PRE: input.Item passed form validation
// POST: section's item list grows by one; the stored item is returned
func ExecuteAddItem(ctx context.Context, input ItemInput, deps MenuDeps) (menu.Item, error) {
	it := input.Item
	if err := it.Validate(); err != nil {
		return menu.Item{}, err
	}

	sections, err := deps.ContentStore.Menu(ctx)
	if err != nil {
		return menu.Item{}, err
	}
	if input.SectionIndex < 0 || input.SectionIndex >= len(sections) {
		return menu.Item{}, menu.ErrSectionIndexOutOfRange
	}

	it.ID = deps.GenerateID()
	sections[input.SectionIndex].Items = append(sections[input.SectionIndex].Items, it)
	if err := deps.ContentStore.SaveMenu(ctx, sections); err != nil {
		return menu.Item{}, err
	}

	slog.Info("admin_event", "event", "menu_item_added", "item_id", it.ID, "section", sections[input.SectionIndex].Name, "item", it.Name)
	return it, nil
}

// ExecuteUpdateItem replaces the item at (SectionIndex, ItemIndex) in
// place, preserving the existing item's ID.
// PRE: input.Item passed form validation
// POST: menu shape unchanged; both indexes are bounds-checked against the
// current collection, section first
func ExecuteUpdateItem(ctx context.Context, input ItemInput, deps MenuDeps) (menu.Item, error) {
	it := input.Item
	if err := it.Validate(); err != nil {
		return menu.Item{}, err
	}

	sections, err := deps.ContentStore.Menu(ctx)
	if err != nil {
		return menu.Item{}, err
	}
	if input.SectionIndex < 0 || input.SectionIndex >= len(sections) {
		return menu.Item{}, menu.ErrSectionIndexOutOfRange
	}
	items := sections[input.SectionIndex].Items
	if input.ItemIndex < 0 || input.ItemIndex >= len(items) {
		return menu.Item{}, menu.ErrItemIndexOutOfRange
	}

	it.ID = items[input.ItemIndex].ID
	if it.ID == "" {
		it.ID = deps.GenerateID()
	}
	oldName := items[input.ItemIndex].Name
	items[input.ItemIndex] = it
	if err := deps.ContentStore.SaveMenu(ctx, sections); err != nil {
		return menu.Item{}, err
	}

	slog.Info("admin_event", "event", "menu_item_updated", "item_id", it.ID, "section", sections[input.SectionIndex].Name, "old_name", oldName, "item", it.Name)
	return it, nil
}

// ExecuteDeleteItem removes the item at (SectionIndex, ItemIndex).
// POST: returns the deleted item, or an index error with the stored menu
// untouched
func ExecuteDeleteItem(ctx context.Context, input ItemInput, deps MenuDeps) (menu.Item, error) {
	sections, err := deps.ContentStore.Menu(ctx)
	if err != nil {
		return menu.Item{}, err
	}
	if input.SectionIndex < 0 || input.SectionIndex >= len(sections) {
		return menu.Item{}, menu.ErrSectionIndexOutOfRange
	}
	items := sections[input.SectionIndex].Items
	if input.ItemIndex < 0 || input.ItemIndex >= len(items) {
		return menu.Item{}, menu.ErrItemIndexOutOfRange
	}

	deleted := items[input.ItemIndex]
	sections[input.SectionIndex].Items = append(items[:input.ItemIndex], items[input.ItemIndex+1:]...)
	if err := deps.ContentStore.SaveMenu(ctx, sections); err != nil {
		return menu.Item{}, err
	}

	slog.Info("admin_event", "event", "menu_item_deleted", "item_id", deleted.ID, "section", sections[input.SectionIndex].Name, "item", deleted.Name)
	return deleted, nil
}
