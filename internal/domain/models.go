package domain

import (
	"time"
)

// Variant is a purchasable size/color combination of a product
type Variant struct {
	ID      string  `json:"id"`
	Size    string  `json:"size"`
	Color   string  `json:"color"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
	SKU     string  `json:"sku"`
	Barcode string  `json:"barcode"`
}

// Product is a catalog entry owning its variants
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  string    `json:"category"`
	Variants  []Variant `json:"variants"`
	CreatedAt time.Time `json:"createdAt"`
}

// TotalStock sums stock across all variants of the product.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// VariantIndex returns the position of the variant with the given id, or -1.
func (p *Product) VariantIndex(variantID string) int {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return i
		}
	}
	return -1
}

// OrderItem is a snapshot of a variant taken when the order was placed
type OrderItem struct {
	VariantID   string  `json:"variantId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Order represents a recorded sale
type Order struct {
	ID           string      `json:"id"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	CustomerName string      `json:"customerName,omitempty"`
}

// ProductPatch names the product fields that may be updated.
// A nil field is left untouched.
type ProductPatch struct {
	Name     *string
	Brand    *string
	Category *string
}

// VariantPatch names the variant fields that may be updated.
// Size, color, SKU and barcode have no update path.
type VariantPatch struct {
	Price *float64
	Stock *int
}

// VariantInput carries the fields required to add a variant.
// A nil Price or Stock means the caller did not supply it.
type VariantInput struct {
	Size  string
	Color string
	Price *float64
	Stock *int
}
