package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

func sampleProducts(t *testing.T) []domain.Product {
	t.Helper()

	expiry, err := time.Parse(domain.ExpiryDateFormat, "2099-12-31")
	if err != nil {
		t.Fatal(err)
	}

	electronics, err := domain.NewElectronics("E1", "Laptop", domain.NewAmountFromFloat(999.99), 5, 2, "X")
	if err != nil {
		t.Fatal(err)
	}
	grocery, err := domain.NewGrocery("G1", "Milk", domain.NewAmountFromFloat(3.50), 10, expiry)
	if err != nil {
		t.Fatal(err)
	}
	clothing, err := domain.NewClothing("C1", "Shirt", domain.NewAmountFromFloat(19.90), 3, "M", "Cotton")
	if err != nil {
		t.Fatal(err)
	}

	return []domain.Product{electronics, grocery, clothing}
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore()
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	if err := store.Save(ctx, path, sampleProducts(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 products, got %d", len(loaded))
	}

	electronics, ok := loaded[0].(*domain.Electronics)
	if !ok {
		t.Fatalf("expected *domain.Electronics, got %T", loaded[0])
	}
	if electronics.ID() != "E1" || electronics.WarrantyYears() != 2 || electronics.Brand() != "X" {
		t.Fatalf("electronics fields lost: %s", electronics.Describe())
	}
	if electronics.Price() != domain.NewAmountFromFloat(999.99) {
		t.Fatalf("expected price 99999 cents, got %d", electronics.Price())
	}

	grocery, ok := loaded[1].(*domain.Grocery)
	if !ok {
		t.Fatalf("expected *domain.Grocery, got %T", loaded[1])
	}
	if got := grocery.ExpiryDate().Format(domain.ExpiryDateFormat); got != "2099-12-31" {
		t.Fatalf("expected expiry 2099-12-31, got %s", got)
	}

	clothing, ok := loaded[2].(*domain.Clothing)
	if !ok {
		t.Fatalf("expected *domain.Clothing, got %T", loaded[2])
	}
	if clothing.Size() != "M" || clothing.Material() != "Cotton" {
		t.Fatalf("clothing fields lost: %s", clothing.Describe())
	}
}

func TestStore_SaveFormat(t *testing.T) {
	store := NewStore()
	path := filepath.Join(t.TempDir(), "inventory.json")

	if err := store.Save(context.Background(), path, sampleProducts(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		`"type": "Electronics"`,
		`"type": "Grocery"`,
		`"type": "Clothing"`,
		`"expiry_date": "2099-12-31"`,
		`"price": 3.5`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("snapshot missing %s:\n%s", want, content)
		}
	}

	// kind-specific fields are omitted where they do not apply
	if strings.Count(content, "warranty_years") != 1 {
		t.Errorf("expected exactly one warranty_years field:\n%s", content)
	}
	if !strings.HasPrefix(content, "[") {
		t.Errorf("expected a top-level JSON array:\n%s", content)
	}
}

func TestStore_SaveEmpty(t *testing.T) {
	store := NewStore()
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	if err := store.Save(ctx, path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty snapshot, got %d products", len(loaded))
	}
}

func TestStore_SaveUnwritablePath(t *testing.T) {
	store := NewStore()
	path := filepath.Join(t.TempDir(), "missing-dir", "inventory.json")

	err := store.Save(context.Background(), path, sampleProducts(t))
	if !serviceerrors.IsOfKind(err, serviceerrors.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
}

func TestStore_LoadErrors(t *testing.T) {
	store := NewStore()
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(ctx, filepath.Join(dir, "nope.json"))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindIO) {
			t.Fatalf("expected KindIO, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := store.Load(ctx, path)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindParse) {
			t.Fatalf("expected KindParse, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		path := filepath.Join(dir, "furniture.json")
		snapshot := `[{"type": "Furniture", "product_id": "F1", "name": "Chair", "price": 10, "quantity_in_stock": 1}]`
		if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := store.Load(ctx, path)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnknownProductKind) {
			t.Fatalf("expected KindUnknownProductKind, got %v", err)
		}
	})

	t.Run("bad expiry date", func(t *testing.T) {
		path := filepath.Join(dir, "baddate.json")
		snapshot := `[{"type": "Grocery", "product_id": "G1", "name": "Milk", "price": 3.5, "quantity_in_stock": 10, "expiry_date": "soon"}]`
		if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := store.Load(ctx, path)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindParse) {
			t.Fatalf("expected KindParse, got %v", err)
		}
	})
}
