package repository

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nagraajm/bls-exportpro/models"
)

func newTestStore(t *testing.T) *JSONStore[*models.Customer] {
	t.Helper()
	return NewJSONStore[*models.Customer](filepath.Join(t.TempDir(), "customers.json"))
}

func TestJSONStoreCreateAssignsIDAndTimestamps(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(&models.Customer{CompanyName: "Medex Trading"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be stamped")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatal("createdAt and updatedAt should match on create")
	}
}

func TestJSONStoreFindByIDMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.FindByID("nope")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing id, got %+v", got)
	}
}

func TestJSONStoreUpdateOnlyTouchesMutatedFields(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(&models.Customer{
		CompanyName: "Medex Trading",
		Country:     "Cambodia",
		Email:       "ops@medex.example",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := store.Update(created.ID, func(c *models.Customer) {
		c.Country = "Myanmar"
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Country != "Myanmar" {
		t.Fatalf("country = %q, want Myanmar", updated.Country)
	}
	if updated.CompanyName != "Medex Trading" || updated.Email != "ops@medex.example" {
		t.Fatal("untouched fields must survive an update")
	}
	if updated.UpdatedAt.Before(created.CreatedAt) {
		t.Fatal("updatedAt must not go backwards")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("createdAt must not change on update")
	}
}

func TestJSONStoreUpdateMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Update("nope", func(c *models.Customer) { c.City = "x" })
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil result for missing id")
	}
}

func TestJSONStoreDelete(t *testing.T) {
	store := newTestStore(t)

	created, _ := store.Create(&models.Customer{CompanyName: "Gone Soon"})

	deleted, err := store.Delete(created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = store.Delete(created.ID)
	if err != nil || deleted {
		t.Fatalf("second Delete = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestJSONStorePaginatePartitionsWithoutOverlap(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.Create(&models.Customer{CompanyName: fmt.Sprintf("Company %d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	seen := map[string]bool{}
	sizes := []int{}
	for page := 1; page <= 3; page++ {
		result, err := store.Paginate(page, 2, nil)
		if err != nil {
			t.Fatalf("Paginate page %d: %v", page, err)
		}
		if result.Total != 5 || result.TotalPages != 3 {
			t.Fatalf("page %d: total=%d totalPages=%d, want 5/3", page, result.Total, result.TotalPages)
		}
		sizes = append(sizes, len(result.Data))
		for _, c := range result.Data {
			if seen[c.ID] {
				t.Fatalf("id %s appeared on two pages", c.ID)
			}
			seen[c.ID] = true
		}
	}
	if sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 1 {
		t.Fatalf("page sizes = %v, want [2 2 1]", sizes)
	}

	// Out-of-range page yields an empty page, not an error.
	result, err := store.Paginate(4, 2, nil)
	if err != nil {
		t.Fatalf("Paginate page 4: %v", err)
	}
	if len(result.Data) != 0 || result.Total != 5 {
		t.Fatalf("out-of-range page: data=%d total=%d, want 0/5", len(result.Data), result.Total)
	}
}

func TestJSONStorePaginateCountsFilteredTotal(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 4; i++ {
		country := "India"
		if i%2 == 0 {
			country = "Cambodia"
		}
		if _, err := store.Create(&models.Customer{CompanyName: fmt.Sprintf("C%d", i), Country: country}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	result, err := store.Paginate(1, 10, func(c *models.Customer) bool { return c.Country == "Cambodia" })
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if result.Total != 2 || len(result.Data) != 2 {
		t.Fatalf("filtered page: total=%d len=%d, want 2/2", result.Total, len(result.Data))
	}
	for _, c := range result.Data {
		if c.Country != "Cambodia" {
			t.Fatalf("predicate leak: %+v", c)
		}
	}
}
