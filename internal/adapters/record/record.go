// Package record holds the persisted shape of a product, shared by the file
// and mongo snapshot stores so both speak the same format.
package record

import (
	"fmt"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

// ProductRecord is one persisted product. Type carries the kind tag; only the
// fields belonging to that kind are set, the rest stay nil and are omitted.
type ProductRecord struct {
	Type            string  `json:"type" bson:"type"`
	ProductID       string  `json:"product_id" bson:"product_id"`
	Name            string  `json:"name" bson:"name"`
	Price           float64 `json:"price" bson:"price"`
	QuantityInStock int     `json:"quantity_in_stock" bson:"quantity_in_stock"`

	WarrantyYears *int    `json:"warranty_years,omitempty" bson:"warranty_years,omitempty"`
	Brand         *string `json:"brand,omitempty" bson:"brand,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	Size          *string `json:"size,omitempty" bson:"size,omitempty"`
	Material      *string `json:"material,omitempty" bson:"material,omitempty"`
}

func Encode(product domain.Product) ProductRecord {
	rec := ProductRecord{
		Type:            string(product.Kind()),
		ProductID:       product.ID(),
		Name:            product.Name(),
		Price:           product.Price().Dollars(),
		QuantityInStock: product.Stock(),
	}

	switch p := product.(type) {
	case *domain.Electronics:
		warranty := p.WarrantyYears()
		brand := p.Brand()
		rec.WarrantyYears = &warranty
		rec.Brand = &brand
	case *domain.Grocery:
		expiry := p.ExpiryDate().Format(domain.ExpiryDateFormat)
		rec.ExpiryDate = &expiry
	case *domain.Clothing:
		size := p.Size()
		material := p.Material()
		rec.Size = &size
		rec.Material = &material
	}

	return rec
}

func (rec ProductRecord) Decode() (domain.Product, error) {
	kind, err := domain.ParseKind(rec.Type)
	if err != nil {
		return nil, serviceerrors.NewUnknownKindError(fmt.Sprintf("unknown product kind %q for product %s", rec.Type, rec.ProductID))
	}

	price := domain.NewAmountFromFloat(rec.Price)

	var product domain.Product
	switch kind {
	case domain.KindElectronics:
		product, err = domain.NewElectronics(rec.ProductID, rec.Name, price, rec.QuantityInStock, intOrZero(rec.WarrantyYears), stringOrEmpty(rec.Brand))
	case domain.KindGrocery:
		if rec.ExpiryDate == nil {
			return nil, serviceerrors.NewParseError(fmt.Sprintf("product %s is missing expiry_date", rec.ProductID))
		}
		var expiry time.Time
		expiry, err = time.Parse(domain.ExpiryDateFormat, *rec.ExpiryDate)
		if err != nil {
			return nil, serviceerrors.NewParseError(fmt.Sprintf("product %s has invalid expiry_date %q, want YYYY-MM-DD", rec.ProductID, *rec.ExpiryDate))
		}
		product, err = domain.NewGrocery(rec.ProductID, rec.Name, price, rec.QuantityInStock, expiry)
	default:
		product, err = domain.NewClothing(rec.ProductID, rec.Name, price, rec.QuantityInStock, stringOrEmpty(rec.Size), stringOrEmpty(rec.Material))
	}
	if err != nil {
		return nil, serviceerrors.NewParseError(fmt.Sprintf("product %s is invalid: %v", rec.ProductID, err))
	}

	return product, nil
}

func EncodeAll(products []domain.Product) []ProductRecord {
	records := make([]ProductRecord, len(products))
	for i, product := range products {
		records[i] = Encode(product)
	}
	return records
}

func DecodeAll(records []ProductRecord) ([]domain.Product, error) {
	products := make([]domain.Product, len(records))
	for i, rec := range records {
		product, err := rec.Decode()
		if err != nil {
			return nil, err
		}
		products[i] = product
	}
	return products, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
