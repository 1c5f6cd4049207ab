package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tapsandtakeout/internal/domain/menu"
)

type mockMenuStore struct {
	sections  []menu.Section
	saveCount int
	failSave  bool
}

func (m *mockMenuStore) Menu(ctx context.Context) ([]menu.Section, error) {
	out := make([]menu.Section, len(m.sections))
	copy(out, m.sections)
	return out, nil
}

func (m *mockMenuStore) SaveMenu(ctx context.Context, sections []menu.Section) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.sections = sections
	m.saveCount++
	return nil
}

func testMenuDeps(store *mockMenuStore) MenuDeps {
	n := 0
	return MenuDeps{
		ContentStore: store,
		GenerateID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func twoSectionMenu() []menu.Section {
	return []menu.Section{
		{ID: "s1", Name: "Mains", Items: []menu.Item{
			{ID: "i1", Name: "Burger", Description: "With fries"},
			{ID: "i2", Name: "Fish & Chips"},
		}},
		{ID: "s2", Name: "Drinks", Items: []menu.Item{
			{ID: "i3", Name: "Beer"},
		}},
	}
}

// TestExecuteAddSection tests appending a named, empty section.
func TestExecuteAddSection(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	s, err := ExecuteAddSection(context.Background(), "Desserts", deps)
	if err != nil {
		t.Fatalf("add section failed: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected an ID stamped on the new section")
	}
	if len(store.sections) != 3 || store.sections[2].Name != "Desserts" {
		t.Fatalf("section not appended: %+v", store.sections)
	}
	if len(store.sections[2].Items) != 0 {
		t.Fatalf("new section should start empty: %+v", store.sections[2].Items)
	}
}

// TestExecuteDeleteSection tests removal of a section with its items.
func TestExecuteDeleteSection(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	deleted, err := ExecuteDeleteSection(context.Background(), 0, deps)
	if err != nil {
		t.Fatalf("delete section failed: %v", err)
	}
	if deleted.Name != "Mains" {
		t.Fatalf("deleted the wrong section: %+v", deleted)
	}
	if len(store.sections) != 1 || store.sections[0].Name != "Drinks" {
		t.Fatalf("unexpected remainder: %+v", store.sections)
	}

	if _, err := ExecuteDeleteSection(context.Background(), 7, deps); !errors.Is(err, menu.ErrSectionIndexOutOfRange) {
		t.Fatalf("expected ErrSectionIndexOutOfRange, got %v", err)
	}
}

// TestExecuteAddItem tests appending an item to an existing section.
func TestExecuteAddItem(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	it, err := ExecuteAddItem(context.Background(), ItemInput{
		SectionIndex: 1,
		Item:         menu.Item{Name: "Cider", Description: "Local"},
	}, deps)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if it.ID == "" {
		t.Fatal("expected an ID stamped on the new item")
	}
	items := store.sections[1].Items
	if len(items) != 2 || items[1].Name != "Cider" {
		t.Fatalf("item not appended: %+v", items)
	}
}

// TestExecuteAddItem_BadSection tests the section bounds check.
func TestExecuteAddItem_BadSection(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	_, err := ExecuteAddItem(context.Background(), ItemInput{
		SectionIndex: 5,
		Item:         menu.Item{Name: "Orphan"},
	}, deps)
	if !errors.Is(err, menu.ErrSectionIndexOutOfRange) {
		t.Fatalf("expected ErrSectionIndexOutOfRange, got %v", err)
	}
	if store.saveCount != 0 {
		t.Fatal("rejected add must not persist")
	}
}

// TestExecuteUpdateItem tests in-place replacement with ID preservation.
func TestExecuteUpdateItem(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	it, err := ExecuteUpdateItem(context.Background(), ItemInput{
		SectionIndex: 0,
		ItemIndex:    1,
		Item:         menu.Item{Name: "Fish & Chips", Description: "Beer battered"},
	}, deps)
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if it.ID != "i2" {
		t.Fatalf("expected stable ID across edits, got %q", it.ID)
	}
	if store.sections[0].Items[1].Description != "Beer battered" {
		t.Fatalf("item not updated: %+v", store.sections[0].Items)
	}
	if store.sections[0].Items[0].Name != "Burger" {
		t.Fatalf("wrong row mutated: %+v", store.sections[0].Items)
	}
}

// TestExecuteUpdateItem_SectionCheckedFirst tests that when both indexes
// are stale, the section error wins.
func TestExecuteUpdateItem_SectionCheckedFirst(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	_, err := ExecuteUpdateItem(context.Background(), ItemInput{
		SectionIndex: 9,
		ItemIndex:    9,
		Item:         menu.Item{Name: "X"},
	}, deps)
	if !errors.Is(err, menu.ErrSectionIndexOutOfRange) {
		t.Fatalf("expected ErrSectionIndexOutOfRange, got %v", err)
	}

	_, err = ExecuteUpdateItem(context.Background(), ItemInput{
		SectionIndex: 1,
		ItemIndex:    9,
		Item:         menu.Item{Name: "X"},
	}, deps)
	if !errors.Is(err, menu.ErrItemIndexOutOfRange) {
		t.Fatalf("expected ErrItemIndexOutOfRange, got %v", err)
	}
	if store.saveCount != 0 {
		t.Fatal("rejected updates must not persist")
	}
}

// TestExecuteDeleteItem tests removal by (section, item) index.
func TestExecuteDeleteItem(t *testing.T) {
	store := &mockMenuStore{sections: twoSectionMenu()}
	deps := testMenuDeps(store)

	deleted, err := ExecuteDeleteItem(context.Background(), ItemInput{
		SectionIndex: 0,
		ItemIndex:    0,
	}, deps)
	if err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if deleted.Name != "Burger" {
		t.Fatalf("deleted the wrong item: %+v", deleted)
	}
	items := store.sections[0].Items
	if len(items) != 1 || items[0].Name != "Fish & Chips" {
		t.Fatalf("unexpected remainder: %+v", items)
	}

	_, err = ExecuteDeleteItem(context.Background(), ItemInput{SectionIndex: 0, ItemIndex: 4}, deps)
	if !errors.Is(err, menu.ErrItemIndexOutOfRange) {
		t.Fatalf("expected ErrItemIndexOutOfRange, got %v", err)
	}
}
