package domain

import "fmt"

type Electronics struct {
	base
	warrantyYears int
	brand         string
}

func NewElectronics(id, name string, price Amount, stock, warrantyYears int, brand string) (*Electronics, error) {
	b, err := newBase(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	if warrantyYears < 0 {
		return nil, fmt.Errorf("%w: negative warranty", ErrInvalidProduct)
	}
	return &Electronics{base: b, warrantyYears: warrantyYears, brand: brand}, nil
}

func (e *Electronics) Kind() Kind {
	return KindElectronics
}

func (e *Electronics) WarrantyYears() int {
	return e.warrantyYears
}

func (e *Electronics) Brand() string {
	return e.brand
}

func (e *Electronics) Clone() Product {
	clone := *e
	return &clone
}

func (e *Electronics) Describe() string {
	return fmt.Sprintf("%s, Brand: %s, Warranty: %d yrs", e.describe(), e.brand, e.warrantyYears)
}
