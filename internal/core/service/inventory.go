package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/dto"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/port"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
	"github.com/rafaelleal24/inventory/internal/core/utils"
)

// InventoryService is the owning registry of all products, keyed by product
// id. Invariants (id uniqueness, non-negative stock) span reads and writes, so
// every operation runs under one coarse lock; the data volume this targets
// does not warrant anything finer. Query operations return detached copies,
// never the owned pointers, so callers may read results without the lock.
type InventoryService struct {
	mu          sync.Mutex
	products    map[string]domain.Product
	store       port.SnapshotPort
	broker      port.BrokerPort
	idempotency *IdempotencyService[string]
}

func NewInventoryService(store port.SnapshotPort, broker port.BrokerPort, idempotency *IdempotencyService[string]) *InventoryService {
	return &InventoryService{
		products:    make(map[string]domain.Product),
		store:       store,
		broker:      broker,
		idempotency: idempotency,
	}
}

// AddProduct constructs a product from the request and inserts it. A non-empty
// idempotencyKey makes retries with the same key and payload return the
// original product instead of a duplicate-id error.
func (s *InventoryService) AddProduct(ctx context.Context, request *dto.AddProductRequest, idempotencyKey string) (domain.Product, error) {
	if idempotencyKey == "" || s.idempotency == nil {
		return s.addProduct(ctx, request)
	}

	payloadHash := utils.HashJSON(request)
	existingID, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		return nil, err
	}
	if existingID != nil {
		return s.GetByID(ctx, *existingID)
	}

	product, err := s.addProduct(ctx, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	id := product.ID()
	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, &id)
	return product, nil
}

func (s *InventoryService) addProduct(ctx context.Context, request *dto.AddProductRequest) (domain.Product, error) {
	product, err := buildProduct(request)
	if err != nil {
		logger.Error(ctx, "inventory: add failed", err, map[string]any{
			"product_id": request.ProductID,
			"kind":       request.Kind,
		})
		return nil, err
	}

	if err := s.Add(ctx, product); err != nil {
		return nil, err
	}
	return product.Clone(), nil
}

// Add inserts an already-constructed product, rejecting duplicate ids.
func (s *InventoryService) Add(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	if _, exists := s.products[product.ID()]; exists {
		s.mu.Unlock()
		return serviceerrors.NewDuplicateIDError(fmt.Sprintf("product %s already exists", product.ID()))
	}
	s.products[product.ID()] = product
	event := domain.NewProductAddedEvent(product)
	s.mu.Unlock()

	logger.Info(ctx, "Product added", map[string]any{
		"product_id": event.ProductID,
		"kind":       string(event.Kind),
	})
	s.publish(ctx, event)
	return nil
}

func (s *InventoryService) GetByID(ctx context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	return product.Clone(), nil
}

func (s *InventoryService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	product, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	delete(s.products, id)
	s.mu.Unlock()

	logger.Info(ctx, "Product removed", map[string]any{"product_id": id})
	s.publish(ctx, domain.NewProductRemovedEvent(product, domain.RemovalReasonDeleted))
	return nil
}

// Sell delegates to the product's kind rule. Stock is only mutated when every
// precondition holds.
func (s *InventoryService) Sell(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	product, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err := product.Sell(quantity); err != nil {
		s.mu.Unlock()
		svcErr := parseDomainError(err, id)
		logger.Error(ctx, "inventory: sell failed", svcErr, map[string]any{
			"product_id": id,
			"quantity":   quantity,
		})
		return svcErr
	}
	remaining := product.Stock()
	s.mu.Unlock()

	logger.Info(ctx, "Product sold", map[string]any{
		"product_id": id,
		"quantity":   quantity,
		"remaining":  remaining,
	})
	s.publish(ctx, domain.NewProductSoldEvent(id, quantity, remaining))
	return nil
}

func (s *InventoryService) Restock(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	product, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err := product.Restock(quantity); err != nil {
		s.mu.Unlock()
		return parseDomainError(err, id)
	}
	stock := product.Stock()
	s.mu.Unlock()

	logger.Info(ctx, "Product restocked", map[string]any{
		"product_id": id,
		"quantity":   quantity,
		"stock":      stock,
	})
	s.publish(ctx, domain.NewProductRestockedEvent(id, quantity, stock))
	return nil
}

// SearchByName matches the name case-insensitively as a substring. Result
// order follows registry iteration order.
func (s *InventoryService) SearchByName(ctx context.Context, name string) []domain.Product {
	needle := strings.ToLower(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []domain.Product
	for _, product := range s.products {
		if strings.Contains(strings.ToLower(product.Name()), needle) {
			matches = append(matches, product.Clone())
		}
	}
	return matches
}

func (s *InventoryService) SearchByKind(ctx context.Context, kind domain.Kind) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []domain.Product
	for _, product := range s.products {
		if product.Kind() == kind {
			matches = append(matches, product.Clone())
		}
	}
	return matches
}

func (s *InventoryService) ListAll(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, product.Clone())
	}
	return products
}

func (s *InventoryService) TotalValue(ctx context.Context) domain.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := domain.Amount(0)
	for _, product := range s.products {
		total = total.Add(product.TotalValue())
	}
	return total
}

// SweepExpired removes every grocery whose expiry date has passed and returns
// how many were removed. Calling it again removes nothing new.
func (s *InventoryService) SweepExpired(ctx context.Context) int {
	s.mu.Lock()
	var swept []domain.Product
	for id, product := range s.products {
		if grocery, ok := product.(*domain.Grocery); ok && grocery.IsExpired() {
			delete(s.products, id)
			swept = append(swept, product)
		}
	}
	s.mu.Unlock()

	for _, product := range swept {
		logger.Info(ctx, "Expired product swept", map[string]any{"product_id": product.ID()})
		s.publish(ctx, domain.NewProductRemovedEvent(product, domain.RemovalReasonExpired))
	}
	return len(swept)
}

// Save writes the full product set to the named destination, overwriting it.
// Products are sorted by id so repeated saves of the same state produce
// identical, diffable output.
func (s *InventoryService) Save(ctx context.Context, name string) error {
	s.mu.Lock()
	products := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, product.Clone())
	}
	s.mu.Unlock()

	sort.Slice(products, func(i, j int) bool { return products[i].ID() < products[j].ID() })

	if err := s.store.Save(ctx, name, products); err != nil {
		logger.Error(ctx, "inventory: save failed", err, map[string]any{"destination": name})
		return err
	}

	logger.Info(ctx, "Inventory saved", map[string]any{"destination": name, "products": len(products)})
	return nil
}

// Load replaces the registry contents with the persisted set. The replacement
// is staged into a fresh map and swapped in only when the whole snapshot
// decoded cleanly, so a failed load leaves prior contents untouched.
func (s *InventoryService) Load(ctx context.Context, name string) error {
	products, err := s.store.Load(ctx, name)
	if err != nil {
		logger.Error(ctx, "inventory: load failed", err, map[string]any{"source": name})
		return err
	}

	staged := make(map[string]domain.Product, len(products))
	for _, product := range products {
		if _, exists := staged[product.ID()]; exists {
			return serviceerrors.NewDuplicateIDError(fmt.Sprintf("snapshot contains duplicate product %s", product.ID()))
		}
		staged[product.ID()] = product
	}

	s.mu.Lock()
	s.products = staged
	s.mu.Unlock()

	logger.Info(ctx, "Inventory loaded", map[string]any{"source": name, "products": len(products)})
	return nil
}

func (s *InventoryService) publish(ctx context.Context, event domain.Event) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(ctx, event); err != nil {
		logger.Error(ctx, "broker: publish failed", err, map[string]any{"event": event.GetName()})
	}
}

func buildProduct(request *dto.AddProductRequest) (domain.Product, error) {
	kind, err := domain.ParseKind(request.Kind)
	if err != nil {
		return nil, serviceerrors.NewInvalidArgumentError(fmt.Sprintf("unknown product kind %q", request.Kind))
	}

	price := domain.NewAmountFromFloat(request.Price)

	switch kind {
	case domain.KindElectronics:
		product, err := domain.NewElectronics(request.ProductID, request.Name, price, request.Stock, request.WarrantyYears, request.Brand)
		if err != nil {
			return nil, parseDomainError(err, request.ProductID)
		}
		return product, nil
	case domain.KindGrocery:
		expiry, err := time.Parse(domain.ExpiryDateFormat, request.ExpiryDate)
		if err != nil {
			return nil, serviceerrors.NewInvalidArgumentError(fmt.Sprintf("invalid expiry date %q, want YYYY-MM-DD", request.ExpiryDate))
		}
		product, err := domain.NewGrocery(request.ProductID, request.Name, price, request.Stock, expiry)
		if err != nil {
			return nil, parseDomainError(err, request.ProductID)
		}
		return product, nil
	default:
		product, err := domain.NewClothing(request.ProductID, request.Name, price, request.Stock, request.Size, request.Material)
		if err != nil {
			return nil, parseDomainError(err, request.ProductID)
		}
		return product, nil
	}
}

// parseDomainError maps domain sentinels onto the service error taxonomy.
func parseDomainError(err error, productID string) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return serviceerrors.NewInsufficientStockError(fmt.Sprintf("insufficient stock for product %s", productID))
	case errors.Is(err, domain.ErrExpired):
		return serviceerrors.NewExpiredError(fmt.Sprintf("product %s is expired", productID))
	case errors.Is(err, domain.ErrInvalidQuantity):
		return serviceerrors.NewInvalidArgumentError("quantity must be positive")
	case errors.Is(err, domain.ErrInvalidProduct):
		return serviceerrors.NewInvalidArgumentError(err.Error())
	case errors.Is(err, domain.ErrUnknownKind):
		return serviceerrors.NewUnknownKindError(err.Error())
	default:
		return err
	}
}
