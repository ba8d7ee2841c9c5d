package kasir

import (
	"errors"
	"testing"
)

func newTestCatalog(t *testing.T) (*Catalog, *MemStore) {
	t.Helper()
	store := NewMemStore()
	c, err := OpenCatalog(store)
	if err != nil {
		t.Fatal(err)
	}
	return c, store
}

func TestSeedIfEmpty(t *testing.T) {
	c, store := newTestCatalog(t)

	seeded, err := c.SeedIfEmpty()
	if err != nil {
		t.Fatal(err)
	}
	if !seeded {
		t.Fatal("first seed should populate the catalog")
	}
	if c.Len() != 4 {
		t.Fatalf("seeded catalog has %d products, want 4", c.Len())
	}

	// a second seed must not touch a populated catalog
	seeded, err = c.SeedIfEmpty()
	if err != nil {
		t.Fatal(err)
	}
	if seeded {
		t.Error("second seed should be a no-op")
	}

	// the seed survives a reopen
	c2, err := OpenCatalog(store)
	if err != nil {
		t.Fatal(err)
	}
	if c2.Len() != 4 {
		t.Errorf("reopened catalog has %d products, want 4", c2.Len())
	}
}

func TestCatalogAdd(t *testing.T) {
	c, _ := newTestCatalog(t)

	p, err := c.Add("Pulsa 5.000", M(7000))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 1 {
		t.Errorf("first id = %d, want 1", p.ID)
	}

	p2, err := c.Add("Pulsa 50.000", M(51000))
	if err != nil {
		t.Fatal(err)
	}
	if p2.ID != 2 {
		t.Errorf("second id = %d, want 2", p2.ID)
	}

	tests := []struct {
		name  string
		price Money
	}{
		{"", M(1000)},
		{"   ", M(1000)},
		{"Negative", M(-1)},
	}
	for _, tt := range tests {
		if _, err := c.Add(tt.name, tt.price); err == nil {
			t.Errorf("Add(%q, %s) should be rejected", tt.name, tt.price)
		} else {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Add(%q, %s) error = %v, want a ValidationError", tt.name, tt.price, err)
			}
		}
	}
	if c.Len() != 2 {
		t.Errorf("rejected adds must leave the catalog unchanged, got %d products", c.Len())
	}
}

func TestCatalogIDsAfterDelete(t *testing.T) {
	c, _ := newTestCatalog(t)
	if _, err := c.SeedIfEmpty(); err != nil {
		t.Fatal(err)
	}

	// deleting a middle id keeps max+1 allocation monotonic
	if found, err := c.Delete(2); err != nil || !found {
		t.Fatalf("Delete(2) = %v, %v", found, err)
	}
	p, err := c.Add("Token Listrik", M(22000))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 5 {
		t.Errorf("id after deleting 2 = %d, want 5", p.ID)
	}

	// deleting the max id frees it for reuse
	if found, err := c.Delete(5); err != nil || !found {
		t.Fatalf("Delete(5) = %v, %v", found, err)
	}
	p, err = c.Add("Token Listrik", M(22000))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 5 {
		t.Errorf("id after deleting the max = %d, want 5", p.ID)
	}
}

func TestCatalogDeleteAbsent(t *testing.T) {
	c, _ := newTestCatalog(t)
	if _, err := c.SeedIfEmpty(); err != nil {
		t.Fatal(err)
	}

	found, err := c.Delete(99)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("deleting an absent id should report not found")
	}
	if c.Len() != 4 {
		t.Errorf("catalog has %d products after absent delete, want 4", c.Len())
	}
}

func TestCatalogRollbackOnWriteFailure(t *testing.T) {
	c, store := newTestCatalog(t)
	if _, err := c.SeedIfEmpty(); err != nil {
		t.Fatal(err)
	}

	store.FailWrites(errors.New("disk full"))

	if _, err := c.Add("Pulsa 5.000", M(7000)); err == nil {
		t.Fatal("Add should surface the write failure")
	}
	if c.Len() != 4 {
		t.Errorf("failed Add must roll back, got %d products", c.Len())
	}

	if _, err := c.Delete(1); err == nil {
		t.Fatal("Delete should surface the write failure")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("failed Delete must restore the product")
	}
}
