package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a mutation names an id that is not in the
// collection. Callers absorb it; it should not occur via normal UI flow.
var ErrNotFound = errors.New("product not found")

// InvalidDraftError carries the per-field failures of a rejected submit.
type InvalidDraftError struct {
	Fields FieldErrors
}

func (e *InvalidDraftError) Error() string {
	return fmt.Sprintf("draft failed validation on %d field(s)", len(e.Fields))
}

// NoticeKind classifies a transient notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
)

// Notice is the transient message emitted after a successful mutation,
// shown by the presentation layer for a fixed duration.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Controller owns the product collection and the session state: view
// mode, current page, active search term, and the edit-session state
// machine (creating vs editing a specific id). All mutation runs
// synchronously inside a single event handler, so the controller needs no
// locking.
type Controller struct {
	catalog *Catalog
	mode    ViewMode
	page    int
	search  string
	editing string // product id under edit; empty means creating
}

// NewController returns an isolated controller with session defaults:
// list view, page 1, empty search, create mode.
func NewController() *Controller {
	return &Controller{
		catalog: NewCatalog(),
		mode:    ViewList,
		page:    1,
	}
}

// Len returns the size of the full (unfiltered) collection.
func (ct *Controller) Len() int { return ct.catalog.Len() }

// Products returns the full collection in insertion order.
func (ct *Controller) Products() []Product { return ct.catalog.Products() }

// Get returns the product with the given id.
func (ct *Controller) Get(id string) (Product, bool) { return ct.catalog.Get(id) }

// Page returns the current page number (always >= 1).
func (ct *Controller) Page() int { return ct.page }

// Mode returns the current view mode.
func (ct *Controller) Mode() ViewMode { return ct.mode }

// SearchTerm returns the active (already applied) search term.
func (ct *Controller) SearchTerm() string { return ct.search }

// Editing returns the id of the product under edit, if any.
func (ct *Controller) Editing() (string, bool) {
	return ct.editing, ct.editing != ""
}

// View derives the visible slice for the current session state. The
// three-step pipeline (filter, paginate, slice) is recomputed in full on
// every call rather than patched incrementally.
func (ct *Controller) View() View {
	filtered := filterProducts(ct.catalog.Products(), ct.search)
	pages := totalPages(len(filtered), PageSize)
	return View{
		Items:      pageSlice(filtered, ct.page, PageSize),
		Total:      len(filtered),
		TotalPages: pages,
		Page:       ct.page,
		Mode:       ct.mode,
		Search:     ct.search,
	}
}

// Add appends a new product built from a validated draft, assigning a
// fresh id. Validation happens before this is called; Add itself has no
// failure path.
func (ct *Controller) Add(d Draft) (Product, Notice) {
	p := materialize(uuid.NewString(), d)
	ct.catalog.append(p)
	return p, Notice{Kind: NoticeSuccess, Message: fmt.Sprintf("Added %q", p.Name)}
}

// Update replaces the product with the given id in place, keeping its
// position and id. Returns ErrNotFound when the id is absent. Renaming a
// product out of the active filter can shrink the filtered set, so the
// current page is pulled back in range afterwards.
func (ct *Controller) Update(id string, d Draft) (Product, Notice, error) {
	p := materialize(id, d)
	if !ct.catalog.replace(p) {
		return Product{}, Notice{}, ErrNotFound
	}
	ct.clampPage()
	return p, Notice{Kind: NoticeSuccess, Message: fmt.Sprintf("Updated %q", p.Name)}, nil
}

// Delete removes the product with the given id. Deleting an unknown id is
// a no-op. The current page is pulled back in range when the removal
// shrinks the filtered set below it.
func (ct *Controller) Delete(id string) (Notice, bool) {
	p, ok := ct.catalog.Get(id)
	if !ok {
		return Notice{}, false
	}
	ct.catalog.remove(id)
	if ct.editing == id {
		ct.editing = ""
	}
	ct.clampPage()
	return Notice{Kind: NoticeInfo, Message: fmt.Sprintf("Deleted %q", p.Name)}, true
}

// Submit commits a draft according to the edit-session state: an update
// for the product under edit, otherwise an add. Any failing field rejects
// the submit without touching state. On success the session returns to
// create mode.
func (ct *Controller) Submit(d Draft) (Product, Notice, error) {
	if errs := ValidateDraft(d); !errs.OK() {
		return Product{}, Notice{}, &InvalidDraftError{Fields: errs}
	}
	if ct.editing != "" {
		id := ct.editing
		p, notice, err := ct.Update(id, d)
		if err != nil {
			return Product{}, Notice{}, err
		}
		ct.editing = ""
		return p, notice, nil
	}
	p, notice := ct.Add(d)
	return p, notice, nil
}

// Search applies a new search term (trimmed, matched case-insensitively)
// and resets the page to 1: a term change invalidates the previous page,
// since the filtered set can shrink below its range.
func (ct *Controller) Search(term string) {
	ct.search = strings.TrimSpace(term)
	ct.page = 1
}

// ChangePage moves to page n when 1 <= n <= totalPages for the current
// filtered set, and silently ignores the request otherwise.
func (ct *Controller) ChangePage(n int) bool {
	filtered := filterProducts(ct.catalog.Products(), ct.search)
	pages := totalPages(len(filtered), PageSize)
	if n < 1 || n > pages {
		return false
	}
	ct.page = n
	return true
}

// SwitchView sets the display mode. Page and search are untouched.
func (ct *Controller) SwitchView(mode ViewMode) {
	ct.mode = mode
}

// BeginEdit moves the session into edit mode for the given id and returns
// the product's fields as a draft. Fails silently when the id is absent.
func (ct *Controller) BeginEdit(id string) (Draft, bool) {
	p, ok := ct.catalog.Get(id)
	if !ok {
		return Draft{}, false
	}
	ct.editing = id
	return DraftOf(p), true
}

// CancelEdit returns the session to create mode, discarding the draft.
func (ct *Controller) CancelEdit() {
	ct.editing = ""
}

func (ct *Controller) clampPage() {
	filtered := filterProducts(ct.catalog.Products(), ct.search)
	pages := totalPages(len(filtered), PageSize)
	if pages == 0 {
		ct.page = 1
		return
	}
	if ct.page > pages {
		ct.page = pages
	}
}
