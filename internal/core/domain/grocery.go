package domain

import (
	"fmt"
	"time"
)

// ExpiryDateFormat is the wire format for grocery expiry dates.
const ExpiryDateFormat = "2006-01-02"

type Grocery struct {
	base
	expiryDate time.Time
}

func NewGrocery(id, name string, price Amount, stock int, expiryDate time.Time) (*Grocery, error) {
	b, err := newBase(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	return &Grocery{base: b, expiryDate: expiryDate}, nil
}

func (g *Grocery) Kind() Kind {
	return KindGrocery
}

func (g *Grocery) ExpiryDate() time.Time {
	return g.expiryDate
}

// IsExpired is derived from the expiry date at call time, never stored.
func (g *Grocery) IsExpired() bool {
	return time.Now().After(g.expiryDate)
}

// Sell rejects expired stock before the quantity is compared against stock.
func (g *Grocery) Sell(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if g.IsExpired() {
		return ErrExpired
	}
	return g.deduct(quantity)
}

func (g *Grocery) Clone() Product {
	clone := *g
	return &clone
}

func (g *Grocery) Describe() string {
	status := "Valid"
	if g.IsExpired() {
		status = "Expired"
	}
	return fmt.Sprintf("%s, Expiry: %s (%s)", g.describe(), g.expiryDate.Format(ExpiryDateFormat), status)
}
