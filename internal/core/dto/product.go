package dto

type AddProductRequest struct {
	Kind      string  `json:"kind" binding:"required"`
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Stock     int     `json:"stock" binding:"gte=0"`

	// kind-specific fields, validated by the service against the kind
	WarrantyYears int    `json:"warranty_years,omitempty"`
	Brand         string `json:"brand,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	Size          string `json:"size,omitempty"`
	Material      string `json:"material,omitempty"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type SnapshotRequest struct {
	File string `json:"file" binding:"required"`
}
