package domain

import (
	"errors"
	"testing"
	"time"
)

func futureDate() time.Time {
	return time.Now().AddDate(1, 0, 0)
}

func pastDate() time.Time {
	return time.Now().AddDate(-1, 0, 0)
}

func TestNewElectronics(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := NewElectronics("E1", "Laptop", NewAmountFromCents(99900), 5, 2, "X")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.ID() != "E1" || p.Name() != "Laptop" || p.Price() != 99900 || p.Stock() != 5 {
			t.Fatalf("unexpected common fields: %+v", p)
		}
		if p.WarrantyYears() != 2 || p.Brand() != "X" {
			t.Fatalf("unexpected kind fields: warranty=%d brand=%q", p.WarrantyYears(), p.Brand())
		}
		if p.Kind() != KindElectronics {
			t.Fatalf("expected kind %q, got %q", KindElectronics, p.Kind())
		}
	})

	t.Run("invalid fields", func(t *testing.T) {
		tests := []struct {
			name     string
			id       string
			price    Amount
			stock    int
			warranty int
		}{
			{"empty id", "", 100, 1, 0},
			{"negative price", "E1", -1, 1, 0},
			{"negative stock", "E1", 100, -1, 0},
			{"negative warranty", "E1", 100, 1, -1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewElectronics(tt.id, "Laptop", tt.price, tt.stock, tt.warranty, "X")
				if !errors.Is(err, ErrInvalidProduct) {
					t.Fatalf("expected ErrInvalidProduct, got %v", err)
				}
			})
		}
	})
}

func TestProduct_Sell_StockRule(t *testing.T) {
	newProducts := func(t *testing.T, stock int) []Product {
		t.Helper()
		e, err := NewElectronics("E1", "Laptop", 99900, stock, 2, "X")
		if err != nil {
			t.Fatal(err)
		}
		c, err := NewClothing("C1", "Shirt", 1999, stock, "M", "Cotton")
		if err != nil {
			t.Fatal(err)
		}
		g, err := NewGrocery("G1", "Milk", 350, stock, futureDate())
		if err != nil {
			t.Fatal(err)
		}
		return []Product{e, c, g}
	}

	t.Run("decrements by exactly the quantity", func(t *testing.T) {
		for _, p := range newProducts(t, 10) {
			if err := p.Sell(3); err != nil {
				t.Fatalf("%s: expected no error, got %v", p.Kind(), err)
			}
			if p.Stock() != 7 {
				t.Fatalf("%s: expected stock 7, got %d", p.Kind(), p.Stock())
			}
		}
	})

	t.Run("sell entire stock", func(t *testing.T) {
		for _, p := range newProducts(t, 4) {
			if err := p.Sell(4); err != nil {
				t.Fatalf("%s: expected no error, got %v", p.Kind(), err)
			}
			if p.Stock() != 0 {
				t.Fatalf("%s: expected stock 0, got %d", p.Kind(), p.Stock())
			}
		}
	})

	t.Run("insufficient stock leaves state unchanged", func(t *testing.T) {
		for _, p := range newProducts(t, 5) {
			if err := p.Sell(6); !errors.Is(err, ErrInsufficientStock) {
				t.Fatalf("%s: expected ErrInsufficientStock, got %v", p.Kind(), err)
			}
			if p.Stock() != 5 {
				t.Fatalf("%s: expected stock unchanged at 5, got %d", p.Kind(), p.Stock())
			}
		}
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		for _, p := range newProducts(t, 5) {
			for _, q := range []int{0, -1} {
				if err := p.Sell(q); !errors.Is(err, ErrInvalidQuantity) {
					t.Fatalf("%s: Sell(%d) expected ErrInvalidQuantity, got %v", p.Kind(), q, err)
				}
			}
			if p.Stock() != 5 {
				t.Fatalf("%s: expected stock unchanged at 5, got %d", p.Kind(), p.Stock())
			}
		}
	})
}

func TestGrocery_Sell_ExpiryRule(t *testing.T) {
	t.Run("expired fails regardless of quantity", func(t *testing.T) {
		g, err := NewGrocery("G1", "Milk", 350, 10, pastDate())
		if err != nil {
			t.Fatal(err)
		}
		for _, q := range []int{1, 5, 100} {
			if err := g.Sell(q); !errors.Is(err, ErrExpired) {
				t.Fatalf("Sell(%d): expected ErrExpired, got %v", q, err)
			}
		}
		if g.Stock() != 10 {
			t.Fatalf("expected stock unchanged at 10, got %d", g.Stock())
		}
	})

	t.Run("expiry check precedes stock check", func(t *testing.T) {
		g, err := NewGrocery("G1", "Milk", 350, 1, pastDate())
		if err != nil {
			t.Fatal(err)
		}
		// quantity over stock, but expired wins
		if err := g.Sell(5); !errors.Is(err, ErrExpired) {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
	})

	t.Run("invalid quantity checked before expiry", func(t *testing.T) {
		g, err := NewGrocery("G1", "Milk", 350, 1, pastDate())
		if err != nil {
			t.Fatal(err)
		}
		if err := g.Sell(0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestGrocery_IsExpired(t *testing.T) {
	expired, err := NewGrocery("G1", "Milk", 350, 1, pastDate())
	if err != nil {
		t.Fatal(err)
	}
	if !expired.IsExpired() {
		t.Fatal("expected past expiry date to be expired")
	}

	fresh, err := NewGrocery("G2", "Bread", 250, 1, futureDate())
	if err != nil {
		t.Fatal(err)
	}
	if fresh.IsExpired() {
		t.Fatal("expected future expiry date to not be expired")
	}
}

func TestProduct_Restock(t *testing.T) {
	p, err := NewClothing("C1", "Shirt", 1999, 2, "M", "Cotton")
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Restock(8); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Stock() != 10 {
		t.Fatalf("expected stock 10, got %d", p.Stock())
	}

	for _, q := range []int{0, -3} {
		if err := p.Restock(q); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("Restock(%d): expected ErrInvalidQuantity, got %v", q, err)
		}
	}
	if p.Stock() != 10 {
		t.Fatalf("expected stock unchanged at 10, got %d", p.Stock())
	}
}

func TestProduct_TotalValue(t *testing.T) {
	e, err := NewElectronics("E1", "Laptop", NewAmountFromFloat(100.00), 5, 2, "X")
	if err != nil {
		t.Fatal(err)
	}
	if e.TotalValue() != NewAmountFromFloat(500.00) {
		t.Fatalf("expected 50000 cents, got %d", e.TotalValue())
	}

	if err := e.Sell(2); err != nil {
		t.Fatal(err)
	}
	if e.TotalValue() != NewAmountFromFloat(300.00) {
		t.Fatalf("expected 30000 cents after sale, got %d", e.TotalValue())
	}

	empty, err := NewGrocery("G1", "Milk", 350, 0, futureDate())
	if err != nil {
		t.Fatal(err)
	}
	if empty.TotalValue() != 0 {
		t.Fatalf("expected 0 for empty stock, got %d", empty.TotalValue())
	}
}

func TestProduct_Describe(t *testing.T) {
	t.Run("electronics", func(t *testing.T) {
		p, err := NewElectronics("E1", "Laptop", NewAmountFromFloat(999.99), 5, 2, "X")
		if err != nil {
			t.Fatal(err)
		}
		want := "ID: E1, Name: Laptop, Price: $999.99, Stock: 5, Brand: X, Warranty: 2 yrs"
		if got := p.Describe(); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("clothing", func(t *testing.T) {
		p, err := NewClothing("C1", "Shirt", NewAmountFromFloat(19.90), 3, "M", "Cotton")
		if err != nil {
			t.Fatal(err)
		}
		want := "ID: C1, Name: Shirt, Price: $19.90, Stock: 3, Size: M, Material: Cotton"
		if got := p.Describe(); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("expired grocery", func(t *testing.T) {
		expiry, err := time.Parse(ExpiryDateFormat, "2000-01-01")
		if err != nil {
			t.Fatal(err)
		}
		p, err := NewGrocery("G1", "Milk", NewAmountFromFloat(3.50), 10, expiry)
		if err != nil {
			t.Fatal(err)
		}
		want := "ID: G1, Name: Milk, Price: $3.50, Stock: 10, Expiry: 2000-01-01 (Expired)"
		if got := p.Describe(); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("valid grocery", func(t *testing.T) {
		expiry := futureDate()
		p, err := NewGrocery("G1", "Milk", NewAmountFromFloat(3.50), 10, expiry)
		if err != nil {
			t.Fatal(err)
		}
		want := "ID: G1, Name: Milk, Price: $3.50, Stock: 10, Expiry: " + expiry.Format(ExpiryDateFormat) + " (Valid)"
		if got := p.Describe(); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})
}
