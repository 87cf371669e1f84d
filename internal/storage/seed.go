package storage

import "github.com/stocktrack/inventory-service/internal/models"

// SeedItems returns the example collection written on first run, when no
// persisted document exists yet.
func SeedItems() []models.InventoryItem {
	now := models.Timestamp()

	return []models.InventoryItem{
		{
			ID:          1,
			ProductName: "Wireless Mouse",
			SKU:         "WM001",
			Category:    "Electronics",
			Quantity:    42,
			Price:       24.99,
			Supplier:    "Acme Peripherals",
			Location:    "A1-03",
			LastUpdated: now,
		},
		{
			ID:          2,
			ProductName: "USB-C Hub",
			SKU:         "UH201",
			Category:    "Electronics",
			Quantity:    18,
			Price:       39.5,
			Supplier:    "Portify",
			Location:    "A1-07",
			LastUpdated: now,
		},
		{
			ID:          3,
			ProductName: "Desk Lamp",
			SKU:         "DL310",
			Category:    "Office",
			Quantity:    7,
			Price:       17.25,
			Supplier:    "Brightline",
			Location:    "B2-01",
			LastUpdated: now,
		},
	}
}
