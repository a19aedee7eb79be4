package catalog

// Catalog is the slice-backed product collection. Insertion order is the
// display order; nothing sorts it implicitly.
type Catalog struct {
	products []Product
}

// NewCatalog returns an empty collection.
func NewCatalog() *Catalog {
	return &Catalog{products: []Product{}}
}

// Len returns the number of stored products.
func (c *Catalog) Len() int { return len(c.products) }

// Products returns a copy of the collection in insertion order.
func (c *Catalog) Products() []Product {
	dup := make([]Product, len(c.products))
	copy(dup, c.products)
	return dup
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// append adds a product to the end of the collection.
func (c *Catalog) append(p Product) {
	c.products = append(c.products, p)
}

// replace overwrites the product with p's id in place, preserving its
// position. Reports false when the id is absent.
func (c *Catalog) replace(p Product) bool {
	for i, existing := range c.products {
		if existing.ID == p.ID {
			c.products[i] = p
			return true
		}
	}
	return false
}

// remove deletes the product with the given id. Removing an unknown id is
// a no-op and reports false.
func (c *Catalog) remove(id string) bool {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}
