package request

import "github.com/dvillalba/fogonpos-api/pkg/pagination"

// CustomerRequest represents the create/update customer request body
type CustomerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	TaxID     *string `json:"tax_id"`
	TaxExempt bool    `json:"tax_exempt"`
}

// ListCustomersRequest represents the customer list query parameters
type ListCustomersRequest struct {
	pagination.PaginationParams
	Search string `form:"search"`
}
