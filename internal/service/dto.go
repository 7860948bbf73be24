package service

import "github.com/jafarshop/stockroom/internal/domain"

// CreateOrderRequest represents the order creation payload
type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName string             `json:"customerName"`
}

// OrderItemRequest is one line of an order, copied from the chosen variant
type OrderItemRequest struct {
	VariantID   string  `json:"variantId" binding:"required"`
	ProductID   string  `json:"productId" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
}

// UpdateOrderStatusRequest represents the status change payload
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// VariantMatch pairs a variant with the product that owns it
type VariantMatch struct {
	Product domain.Product `json:"product"`
	Variant domain.Variant `json:"variant"`
}
