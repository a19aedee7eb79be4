package catalog

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifies a draft field in validation results.
type Field string

const (
	FieldName        Field = "name"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldStock       Field = "stock"
	FieldDescription Field = "description"
	FieldImage       Field = "image"
)

// RequiredFields lists the fields that must be present before a draft can
// be submitted. Description and image are optional.
var RequiredFields = []Field{FieldName, FieldPrice, FieldCategory, FieldStock}

// FieldErrors maps failing fields to a human-readable message. An empty
// map means the draft passed.
type FieldErrors map[Field]string

// OK reports whether no field failed.
func (e FieldErrors) OK() bool { return len(e) == 0 }

// draftValues carries the parsed draft for the structural cross-check.
// Range constraints mirror the product invariants.
type draftValues struct {
	Name     string  `validate:"required,max=100"`
	Price    float64 `validate:"min=0"`
	Category string  `validate:"required"`
	Stock    int     `validate:"min=0"`
}

var validate = validator.New()

// ValidateDraft checks every field and returns all failures at once. A
// submit is only accepted when the result is empty.
func ValidateDraft(d Draft) FieldErrors {
	errs := FieldErrors{}
	for _, f := range []Field{FieldName, FieldPrice, FieldCategory, FieldStock} {
		if msg := ValidateField(d, f); msg != "" {
			errs[f] = msg
		}
	}
	if !errs.OK() {
		return errs
	}
	// Field checks passed; run the struct-level cross-check over the
	// parsed values as well.
	price, _ := parsePrice(d.Price)
	stock, _ := parseStock(d.Stock)
	values := draftValues{
		Name:     strings.TrimSpace(d.Name),
		Price:    price,
		Category: strings.TrimSpace(d.Category),
		Stock:    stock,
	}
	if err := validate.Struct(values); err != nil {
		if invalid, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range invalid {
				errs[structField(fe.Field())] = crossCheckMessage(fe)
			}
		}
	}
	return errs
}

// crossCheckMessage words a struct-level failure in the same register as
// the per-field checks.
func crossCheckMessage(fe validator.FieldError) string {
	switch structField(fe.Field()) {
	case FieldName:
		if fe.Tag() == "max" {
			return "name must be 100 characters or fewer"
		}
		return "name is required"
	case FieldPrice:
		return "price must not be negative"
	case FieldCategory:
		return "category is required"
	case FieldStock:
		return "stock must not be negative"
	}
	return "invalid value"
}

// ValidateField checks a single field, used when focus leaves a form
// input. Unknown and optional fields always pass.
func ValidateField(d Draft, f Field) string {
	switch f {
	case FieldName:
		if strings.TrimSpace(d.Name) == "" {
			return "name is required"
		}
	case FieldPrice:
		raw := strings.TrimSpace(d.Price)
		if raw == "" {
			return "price is required"
		}
		price, err := parsePrice(raw)
		if err != nil {
			return "price must be a number"
		}
		if price < 0 {
			return "price must not be negative"
		}
	case FieldCategory:
		label := strings.TrimSpace(d.Category)
		if label == "" {
			return "category is required"
		}
		if !ValidCategory(label) {
			return "unknown category"
		}
	case FieldStock:
		raw := strings.TrimSpace(d.Stock)
		if raw == "" {
			// Blank stock is rejected rather than defaulted to zero:
			// stock is a required field.
			return "stock is required"
		}
		stock, err := parseStock(raw)
		if err != nil {
			return "stock must be a whole number"
		}
		if stock < 0 {
			return "stock must not be negative"
		}
	}
	return ""
}

func parsePrice(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func parseStock(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatStock(v int) string {
	return strconv.Itoa(v)
}

func structField(name string) Field {
	switch name {
	case "Name":
		return FieldName
	case "Price":
		return FieldPrice
	case "Category":
		return FieldCategory
	case "Stock":
		return FieldStock
	}
	return Field(strings.ToLower(name))
}

// materialize builds a product from a draft that already passed
// validation. The id is supplied by the caller.
func materialize(id string, d Draft) Product {
	price, _ := parsePrice(d.Price)
	stock, _ := parseStock(d.Stock)
	return Product{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		Price:       price,
		Category:    strings.TrimSpace(d.Category),
		Stock:       stock,
		Description: strings.TrimSpace(d.Description),
		Image:       strings.TrimSpace(d.Image),
	}
}
