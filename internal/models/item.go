package models

import "time"

// TimestampFormat is the layout used for the lastUpdated field. Timestamps
// are stored as strings so the persisted document stays human-readable.
const TimestampFormat = time.RFC3339

// InventoryItem represents a single inventory record. The id and the
// lastUpdated timestamp are assigned by the store, never by clients.
type InventoryItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category,omitempty"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	Supplier    string  `json:"supplier,omitempty"`
	Location    string  `json:"location,omitempty"`
	LastUpdated string  `json:"lastUpdated"`
}

// Timestamp returns the current time formatted for the lastUpdated field.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampFormat)
}
