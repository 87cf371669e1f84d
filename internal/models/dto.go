package models

// CreateItemRequest represents the body of POST /api/items. Required fields
// are pointers so that a present-but-zero quantity or price still satisfies
// the required check; quantity may legitimately be zero or negative.
type CreateItemRequest struct {
	ProductName *string  `json:"productName" validate:"required"`
	SKU         *string  `json:"sku" validate:"required"`
	Category    *string  `json:"category,omitempty"`
	Quantity    *int64   `json:"quantity" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Supplier    *string  `json:"supplier,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

// UpdateItemRequest represents the body of PUT /api/items/:id. Every field
// is optional; only fields present in the payload are merged onto the
// existing record. There is deliberately no id field: an id supplied by the
// client is discarded in favor of the path parameter.
type UpdateItemRequest struct {
	ProductName *string  `json:"productName,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Quantity    *int64   `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Supplier    *string  `json:"supplier,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

// ListFilter carries the query parameters of GET /api/items. An empty string
// means the parameter was absent.
type ListFilter struct {
	// Search is a case-insensitive substring matched against productName,
	// sku, supplier, and location.
	Search string
	// Category is a case-sensitive exact match.
	Category string
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
