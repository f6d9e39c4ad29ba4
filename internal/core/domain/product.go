package domain

import "fmt"

// Product is the capability set shared by every product kind. Concrete types
// embed base for the common fields and behavior and override only what their
// kind changes.
type Product interface {
	ID() string
	Name() string
	Price() Amount
	Stock() int
	Kind() Kind
	// Restock increases stock by a positive amount.
	Restock(amount int) error
	// Sell decreases stock by quantity if the kind's preconditions hold.
	// On failure stock is unchanged.
	Sell(quantity int) error
	// TotalValue is price times stock.
	TotalValue() Amount
	// Describe renders the human-readable summary line.
	Describe() string
	// Clone returns an independent copy detached from the receiver.
	Clone() Product
}

type base struct {
	id    string
	name  string
	price Amount
	stock int
}

func newBase(id, name string, price Amount, stock int) (base, error) {
	if id == "" {
		return base{}, fmt.Errorf("%w: empty product id", ErrInvalidProduct)
	}
	if name == "" {
		return base{}, fmt.Errorf("%w: empty name", ErrInvalidProduct)
	}
	if price < 0 {
		return base{}, fmt.Errorf("%w: negative price", ErrInvalidProduct)
	}
	if stock < 0 {
		return base{}, fmt.Errorf("%w: negative stock", ErrInvalidProduct)
	}
	return base{id: id, name: name, price: price, stock: stock}, nil
}

func (b *base) ID() string {
	return b.id
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Price() Amount {
	return b.price
}

func (b *base) Stock() int {
	return b.stock
}

func (b *base) TotalValue() Amount {
	return b.price.Multiply(b.stock)
}

func (b *base) Restock(amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	b.stock += amount
	return nil
}

// Sell applies the stock-only rule shared by Electronics and Clothing.
// Grocery overrides it with an expiry check.
func (b *base) Sell(quantity int) error {
	return b.deduct(quantity)
}

func (b *base) deduct(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > b.stock {
		return ErrInsufficientStock
	}
	b.stock -= quantity
	return nil
}

func (b *base) describe() string {
	return fmt.Sprintf("ID: %s, Name: %s, Price: $%.2f, Stock: %d", b.id, b.name, b.price.Dollars(), b.stock)
}
