// Package catalog implements the product collection, its derived views,
// and the edit-session state machine driving the shelfctl UI.
package catalog

// Categories is the fixed set of category labels a product may carry.
var Categories = []string{
	"electronics",
	"clothing",
	"home",
	"books",
	"toys",
	"sports",
}

// PlaceholderImage is substituted when a product has no image reference.
const PlaceholderImage = "https://placehold.co/150x150"

// Product is the catalog's sole entity. IDs are assigned at creation and
// never change; everything else is overwritten wholesale on update.
type Product struct {
	ID          string
	Name        string
	Price       float64
	Category    string
	Stock       int
	Description string
	Image       string
}

// ImageURL returns the stored image reference, or the shared placeholder
// when none was provided.
func (p Product) ImageURL() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

// ValidCategory reports whether label is one of the fixed category set.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// Draft holds the not-yet-committed field values a user is entering for a
// new or edited product. Numeric fields stay as raw text until validation
// parses them.
type Draft struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	Description string
	Image       string
}

// DraftOf loads a product's fields back into an editable draft.
func DraftOf(p Product) Draft {
	return Draft{
		Name:        p.Name,
		Price:       formatPrice(p.Price),
		Category:    p.Category,
		Stock:       formatStock(p.Stock),
		Description: p.Description,
		Image:       p.Image,
	}
}
