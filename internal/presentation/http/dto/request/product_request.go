package request

import "github.com/dvillalba/fogonpos-api/pkg/pagination"

// CreateProductRequest represents the create product request body
type CreateProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	Code       string  `json:"code" binding:"required"`
	Category   string  `json:"category"`
	Price      int64   `json:"price" binding:"min=0"`
	Stock      int     `json:"stock"`
	StockAlert int     `json:"stock_alert"`
	TrackStock bool    `json:"track_stock"`
	Active     *bool   `json:"active"`
	Notes      *string `json:"notes"`
}

// UpdateProductRequest represents the update product request body
type UpdateProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category"`
	Price      int64   `json:"price" binding:"min=0"`
	Stock      int     `json:"stock"`
	StockAlert int     `json:"stock_alert"`
	TrackStock bool    `json:"track_stock"`
	Active     bool    `json:"active"`
	Notes      *string `json:"notes"`
}

// ListProductsRequest represents the product list query parameters
type ListProductsRequest struct {
	pagination.PaginationParams
	Search     string `form:"search"`
	Category   string `form:"category"`
	LowStock   bool   `form:"low_stock"`
	ActiveOnly bool   `form:"active_only"`
}
