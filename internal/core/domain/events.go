package domain

import "time"

type ProductAddedEvent struct {
	ProductID string    `json:"product_id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	AddedAt   time.Time `json:"added_at"`
}

func (e *ProductAddedEvent) GetName() string {
	return "product.added"
}

func (e *ProductAddedEvent) GetEntityName() string {
	return "product"
}

func NewProductAddedEvent(p Product) *ProductAddedEvent {
	return &ProductAddedEvent{
		ProductID: p.ID(),
		Kind:      p.Kind(),
		Name:      p.Name(),
		Stock:     p.Stock(),
		AddedAt:   time.Now(),
	}
}

type ProductSoldEvent struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Remaining int       `json:"remaining"`
	SoldAt    time.Time `json:"sold_at"`
}

func (e *ProductSoldEvent) GetName() string {
	return "product.sold"
}

func (e *ProductSoldEvent) GetEntityName() string {
	return "product"
}

func NewProductSoldEvent(productID string, quantity, remaining int) *ProductSoldEvent {
	return &ProductSoldEvent{
		ProductID: productID,
		Quantity:  quantity,
		Remaining: remaining,
		SoldAt:    time.Now(),
	}
}

type ProductRestockedEvent struct {
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Stock       int       `json:"stock"`
	RestockedAt time.Time `json:"restocked_at"`
}

func (e *ProductRestockedEvent) GetName() string {
	return "product.restocked"
}

func (e *ProductRestockedEvent) GetEntityName() string {
	return "product"
}

func NewProductRestockedEvent(productID string, quantity, stock int) *ProductRestockedEvent {
	return &ProductRestockedEvent{
		ProductID:   productID,
		Quantity:    quantity,
		Stock:       stock,
		RestockedAt: time.Now(),
	}
}

type RemovalReason string

const (
	RemovalReasonDeleted RemovalReason = "deleted"
	RemovalReasonExpired RemovalReason = "expired"
)

type ProductRemovedEvent struct {
	ProductID string        `json:"product_id"`
	Kind      Kind          `json:"kind"`
	Reason    RemovalReason `json:"reason"`
	RemovedAt time.Time     `json:"removed_at"`
}

func (e *ProductRemovedEvent) GetName() string {
	return "product.removed"
}

func (e *ProductRemovedEvent) GetEntityName() string {
	return "product"
}

func NewProductRemovedEvent(p Product, reason RemovalReason) *ProductRemovedEvent {
	return &ProductRemovedEvent{
		ProductID: p.ID(),
		Kind:      p.Kind(),
		Reason:    reason,
		RemovedAt: time.Now(),
	}
}
