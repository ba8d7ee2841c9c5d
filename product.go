package kasir

import (
	"strings"
)

// Product is a catalog entry. Ids are unique and assigned max+1 on insert;
// cart lines and ledger items copy the name and price by value, so editing
// or deleting a product never rewrites history.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// defaultProducts is the seed set used when the catalog has never been
// populated. No network dependency: the set is fixed.
func defaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Pulsa 10.000", Price: M(12000)},
		{ID: 2, Name: "Pulsa 20.000", Price: M(21000)},
		{ID: 3, Name: "Paket Data 5GB", Price: M(60000)},
		{ID: 4, Name: "Paket Data 10GB", Price: M(110000)},
	}
}

// Catalog is the in-memory product list synced to a Store. It owns the
// products slice exclusively; readers get snapshots.
type Catalog struct {
	store    Store
	products []Product
}

// OpenCatalog loads the persisted catalog, or an empty one if none was
// ever saved.
func OpenCatalog(store Store) (*Catalog, error) {
	c := &Catalog{store: store}
	if _, err := store.Read(ProductsKey, &c.products); err != nil {
		return nil, err
	}
	return c, nil
}

// SeedIfEmpty populates an empty catalog with the default product set and
// reports whether it did. A non-empty catalog is left untouched.
func (c *Catalog) SeedIfEmpty() (bool, error) {
	if len(c.products) > 0 {
		return false, nil
	}
	c.products = defaultProducts()
	if err := c.persist(); err != nil {
		c.products = nil
		return false, err
	}
	return true, nil
}

// Add validates and appends a new product, persisting the whole catalog.
// The id is max(existing ids)+1, or 1 for an empty catalog. On any error
// the catalog is unchanged.
func (c *Catalog) Add(name string, price Money) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price.IsNegative() {
		return Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	var max int64
	for _, p := range c.products {
		if p.ID > max {
			max = p.ID
		}
	}
	p := Product{ID: max + 1, Name: name, Price: price}
	c.products = append(c.products, p)
	if err := c.persist(); err != nil {
		c.products = c.products[:len(c.products)-1]
		return Product{}, err
	}
	return p, nil
}

// Delete removes the product with the given id and reports whether it was
// present. Deleting an absent id is not an error. Callers holding a Cart
// are responsible for purging its lines for this id (see Cart.RemoveProduct);
// historical transactions are never rewritten.
func (c *Catalog) Delete(id int64) (bool, error) {
	for i, p := range c.products {
		if p.ID != id {
			continue
		}
		removed := p
		c.products = append(c.products[:i], c.products[i+1:]...)
		if err := c.persist(); err != nil {
			c.products = append(c.products[:i], append([]Product{removed}, c.products[i:]...)...)
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int64) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Products returns a snapshot of the catalog in insertion order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) persist() error {
	return c.store.Write(ProductsKey, c.products)
}
