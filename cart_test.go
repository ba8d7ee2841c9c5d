package kasir

import (
	"errors"
	"testing"
)

func seededCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, _ := newTestCatalog(t)
	if _, err := c.SeedIfEmpty(); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCartAdd(t *testing.T) {
	catalog := seededCatalog(t)
	cart := NewCart()

	if err := cart.Add(catalog, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.Add(catalog, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.Add(catalog, 3); err != nil {
		t.Fatal(err)
	}

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("repeated add quantity = %d, want 2", lines[0].Quantity)
	}
	if !cart.Total().Equal(M(84000)) {
		t.Errorf("Total = %s, want 84000", cart.Total())
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	catalog := seededCatalog(t)
	cart := NewCart()

	err := cart.Add(catalog, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Add(99) error = %v, want ErrNotFound", err)
	}
	if cart.Len() != 0 {
		t.Errorf("failed add must leave the cart empty, got %d lines", cart.Len())
	}
}

func TestCartRemove(t *testing.T) {
	catalog := seededCatalog(t)
	cart := NewCart()
	cart.Add(catalog, 1)
	cart.Add(catalog, 2)

	if !cart.Remove(0) {
		t.Error("Remove(0) should report success")
	}
	if cart.Len() != 1 {
		t.Errorf("cart has %d lines after remove, want 1", cart.Len())
	}
	// stale indices must not panic
	if cart.Remove(5) {
		t.Error("Remove(5) out of range should report failure")
	}
	if cart.Remove(-1) {
		t.Error("Remove(-1) should report failure")
	}
}

func TestCartRemoveProduct(t *testing.T) {
	catalog := seededCatalog(t)
	cart := NewCart()
	cart.Add(catalog, 1)
	cart.Add(catalog, 1)
	cart.Add(catalog, 2)

	if removed := cart.RemoveProduct(1); removed != 1 {
		t.Errorf("RemoveProduct(1) = %d lines, want 1", removed)
	}
	if cart.Len() != 1 {
		t.Errorf("cart has %d lines, want 1", cart.Len())
	}
	if removed := cart.RemoveProduct(99); removed != 0 {
		t.Errorf("RemoveProduct(99) = %d, want 0", removed)
	}
}

func TestCartPriceCapturedAtAddTime(t *testing.T) {
	catalog := seededCatalog(t)
	cart := NewCart()
	cart.Add(catalog, 1)

	// deleting the product from the catalog does not reach into the cart
	if _, err := catalog.Delete(1); err != nil {
		t.Fatal(err)
	}
	lines := cart.Lines()
	if len(lines) != 1 || !lines[0].Price.Equal(M(12000)) {
		t.Errorf("cart line should keep the captured price, got %+v", lines)
	}
}
