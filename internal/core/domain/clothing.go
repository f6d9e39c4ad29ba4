package domain

import "fmt"

type Clothing struct {
	base
	size     string
	material string
}

func NewClothing(id, name string, price Amount, stock int, size, material string) (*Clothing, error) {
	b, err := newBase(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	return &Clothing{base: b, size: size, material: material}, nil
}

func (c *Clothing) Kind() Kind {
	return KindClothing
}

func (c *Clothing) Size() string {
	return c.size
}

func (c *Clothing) Material() string {
	return c.material
}

func (c *Clothing) Clone() Product {
	clone := *c
	return &clone
}

func (c *Clothing) Describe() string {
	return fmt.Sprintf("%s, Size: %s, Material: %s", c.describe(), c.size, c.material)
}
