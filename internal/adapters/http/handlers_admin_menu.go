package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"tapsandtakeout/internal/application/orchestrators"
	"tapsandtakeout/internal/domain/menu"
)

type itemForm struct {
	Name        string
	Description string
}

type adminMenuData struct {
	Flash string
	Menu  []menu.Section

	SectionFormData   string            // echo of the add-section form
	SectionFormErrors map[string]string // errors scoped to the add-section form
	SectionError      string            // section index failures

	ItemRowSection int // section whose item form has errors, -1 when none
	ItemRowItem    int // item row with errors, -1 for the add-item form
	ItemFormData   itemForm
	ItemFormErrors map[string]string
	ItemError      string // item index failures
}

func newAdminMenuData(sections []menu.Section) adminMenuData {
	return adminMenuData{
		Menu:              sections,
		SectionFormErrors: map[string]string{},
		ItemRowSection:    -1,
		ItemRowItem:       -1,
		ItemFormErrors:    map[string]string{},
	}
}

func menuDeps() orchestrators.MenuDeps {
	return orchestrators.MenuDeps{
		ContentStore: stores.ContentStore,
		GenerateID:   generateID,
	}
}

// handleAdminMenu renders the menu editor and dispatches its POST actions:
// add_section, delete_section, add_item, update_item, delete_item.
func handleAdminMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sections, err := stores.ContentStore.Menu(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	if r.Method != "POST" {
		data := newAdminMenuData(sections)
		data.Flash = consumeFlash(w, r)
		renderTemplate(w, r, "admin_menu.html", data)
		return
	}

	action := r.FormValue("action")
	sectionName, sectionErrs := menu.ParseSectionForm(r.FormValue("section_name"))
	item, itemErrs := menu.ParseItemForm(r.FormValue("item_name"), r.FormValue("item_description"))
	itemEcho := itemForm{
		Name:        item.Name,
		Description: item.Description,
	}

	// parseSectionIndex bounds-checks section_index against the current
	// menu; the two error sinks differ between section and item actions.
	parseSectionIndex := func() (int, bool) {
		si, perr := strconv.Atoi(r.FormValue("section_index"))
		if perr != nil || si < 0 || si >= len(sections) {
			return 0, false
		}
		return si, true
	}

	switch action {
	case "add_section":
		if len(sectionErrs) > 0 {
			slog.Warn("validation_failure", "form", "menu_add_section", "errors", sectionErrs)
			data := newAdminMenuData(sections)
			data.SectionFormData = sectionName
			data.SectionFormErrors = sectionErrs
			renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
			return
		}
		added, err := orchestrators.ExecuteAddSection(ctx, sectionName, menuDeps())
		if err != nil {
			internalError(w, err)
			return
		}
		setFlash(w, fmt.Sprintf("Added section “%s”.", added.Name))
		http.Redirect(w, r, "/admin-menu", http.StatusSeeOther)

	case "delete_section":
		si, ok := parseSectionIndex()
		if !ok {
			slog.Warn("validation_failure", "form", "menu_section_index", "index", r.FormValue("section_index"))
			data := newAdminMenuData(sections)
			data.SectionError = "Invalid section index"
			renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
			return
		}
		deleted, err := orchestrators.ExecuteDeleteSection(ctx, si, menuDeps())
		if err != nil {
			adminMenuWriteError(w, r, sections, err)
			return
		}
		setFlash(w, fmt.Sprintf("Deleted section “%s”.", deleted.Name))
		http.Redirect(w, r, "/admin-menu", http.StatusSeeOther)

	case "add_item":
		si, ok := parseSectionIndex()
		if !ok {
			slog.Warn("validation_failure", "form", "menu_item_section_index", "index", r.FormValue("section_index"))
			data := newAdminMenuData(sections)
			data.ItemError = "Invalid section index"
			renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
			return
		}
		if len(itemErrs) > 0 {
			slog.Warn("validation_failure", "form", "menu_item_add", "section", si, "errors", itemErrs)
			data := newAdminMenuData(sections)
			data.ItemRowSection = si
			data.ItemFormData = itemEcho
			data.ItemFormErrors = itemErrs
			renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
			return
		}
		added, err := orchestrators.ExecuteAddItem(ctx, orchestrators.ItemInput{
			SectionIndex: si,
			Item:         item,
		}, menuDeps())
		if err != nil {
			adminMenuWriteError(w, r, sections, err)
			return
		}
		setFlash(w, fmt.Sprintf("Added item “%s” to %s.", added.Name, sections[si].Name))
		http.Redirect(w, r, "/admin-menu", http.StatusSeeOther)

	case "update_item", "delete_item":
		// Section bounds first, then item bounds, then field validation.
		si, ok := parseSectionIndex()
		if !ok {
			slog.Warn("validation_failure", "form", "menu_item_section_index", "index", r.FormValue("section_index"))
			data := newAdminMenuData(sections)
			data.ItemError = "Invalid section index"
			renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
			return
		}
		ii, perr := strconv.Atoi(r.FormValue("item_index"))
		if perr != nil || ii < 0 || ii >= len(sections[si].Items) {
			slog.Warn("validation_failure", "form", "menu_item_index", "index", r.FormValue("item_index"))
			data := newAdminMenuData(sections)
			data.ItemError = "Invalid item index"
			renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
			return
		}

		if action == "update_item" {
			if len(itemErrs) > 0 {
				slog.Warn("validation_failure", "form", "menu_item_update", "section", si, "item", ii, "errors", itemErrs)
				data := newAdminMenuData(sections)
				data.ItemRowSection = si
				data.ItemRowItem = ii
				data.ItemFormData = itemEcho
				data.ItemFormErrors = itemErrs
				renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
				return
			}
			updated, err := orchestrators.ExecuteUpdateItem(ctx, orchestrators.ItemInput{
				SectionIndex: si,
				ItemIndex:    ii,
				Item:         item,
			}, menuDeps())
			if err != nil {
				adminMenuWriteError(w, r, sections, err)
				return
			}
			setFlash(w, fmt.Sprintf("Updated item “%s”.", updated.Name))
			http.Redirect(w, r, "/admin-menu", http.StatusSeeOther)
			return
		}

		deleted, err := orchestrators.ExecuteDeleteItem(ctx, orchestrators.ItemInput{
			SectionIndex: si,
			ItemIndex:    ii,
		}, menuDeps())
		if err != nil {
			adminMenuWriteError(w, r, sections, err)
			return
		}
		setFlash(w, fmt.Sprintf("Deleted item “%s”.", deleted.Name))
		http.Redirect(w, r, "/admin-menu", http.StatusSeeOther)

	default:
		renderTemplate(w, r, "admin_menu.html", newAdminMenuData(sections))
	}
}

// adminMenuWriteError maps a lost index race to a 400 re-render and
// anything else to a 500.
func adminMenuWriteError(w http.ResponseWriter, r *http.Request, sections []menu.Section, err error) {
	data := newAdminMenuData(sections)
	switch {
	case errors.Is(err, menu.ErrSectionIndexOutOfRange):
		data.ItemError = "Invalid section index"
	case errors.Is(err, menu.ErrItemIndexOutOfRange):
		data.ItemError = "Invalid item index"
	default:
		internalError(w, err)
		return
	}
	renderTemplateStatus(w, r, "admin_menu.html", data, http.StatusBadRequest)
}
