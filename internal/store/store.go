package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/stocktrack/inventory-service/internal/models"
	"github.com/stocktrack/inventory-service/internal/storage"
	"github.com/stocktrack/inventory-service/pkg/metrics"
)

// Store owns the canonical inventory collection. Every operation reads the
// full document from durable storage; every mutation rewrites it fully. A
// mutex serializes the read-modify-write pair of mutating operations so
// concurrent requests cannot lose updates; reads take no lock and always see
// a complete document thanks to the atomic-rename write path.
type Store struct {
	doc     storage.Document
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu sync.Mutex
}

// New creates a store over the given document. metrics may be nil.
func New(doc storage.Document, logger *slog.Logger, m *metrics.Metrics) *Store {
	return &Store{
		doc:     doc,
		logger:  logger,
		metrics: m,
	}
}

// List returns the collection in storage order, narrowed by the filter.
// Search keeps items whose productName, sku, supplier, or location contains
// the term case-insensitively; category is a case-sensitive exact match.
// An empty result is not an error.
func (s *Store) List(ctx context.Context, filter models.ListFilter) ([]models.InventoryItem, error) {
	start := time.Now()

	items, err := s.doc.Read(ctx)
	if err != nil {
		s.observe("list", "error", start, -1)
		return nil, errors.Wrap(err, "list items")
	}

	result := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if filter.Search != "" && !matchesSearch(item, filter.Search) {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		result = append(result, item)
	}

	s.observe("list", "success", start, len(items))
	return result, nil
}

// Get returns the item with the given id, or models.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	start := time.Now()

	items, err := s.doc.Read(ctx)
	if err != nil {
		s.observe("get", "error", start, -1)
		return nil, errors.Wrap(err, "get item")
	}

	for i := range items {
		if items[i].ID == id {
			s.observe("get", "success", start, len(items))
			return &items[i], nil
		}
	}

	s.observe("get", "not_found", start, len(items))
	return nil, models.ErrNotFound
}

// Create validates the request, assigns a fresh id and timestamp, appends
// the record, and persists the full collection. The new id is one above the
// current maximum (1 for an empty collection), so deleting the max-id item
// frees its id for reuse.
func (s *Store) Create(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, error) {
	start := time.Now()

	if err := models.ValidateCreateItemRequest(req); err != nil {
		s.observe("create", "invalid", start, -1)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.doc.Read(ctx)
	if err != nil {
		s.observe("create", "error", start, -1)
		return nil, errors.Wrap(err, "create item")
	}

	item := models.InventoryItem{
		ID:          nextID(items),
		ProductName: *req.ProductName,
		SKU:         *req.SKU,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		LastUpdated: models.Timestamp(),
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Location != nil {
		item.Location = *req.Location
	}

	items = append(items, item)
	if err := s.doc.Write(ctx, items); err != nil {
		s.observe("create", "error", start, -1)
		return nil, errors.Wrap(err, "persist created item")
	}

	s.logger.Info("Item created", "id", item.ID, "sku", item.SKU)
	s.observe("create", "success", start, len(items))
	return &item, nil
}

// Update shallow-merges the supplied fields over the existing record, pins
// the id, refreshes lastUpdated, and persists. Fields absent from the
// request are left untouched.
func (s *Store) Update(ctx context.Context, id int64, req *models.UpdateItemRequest) (*models.InventoryItem, error) {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.doc.Read(ctx)
	if err != nil {
		s.observe("update", "error", start, -1)
		return nil, errors.Wrap(err, "update item")
	}

	idx := indexOf(items, id)
	if idx < 0 {
		s.observe("update", "not_found", start, len(items))
		return nil, models.ErrNotFound
	}

	item := &items[idx]
	if req.ProductName != nil {
		item.ProductName = *req.ProductName
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	item.LastUpdated = models.Timestamp()

	if err := s.doc.Write(ctx, items); err != nil {
		s.observe("update", "error", start, -1)
		return nil, errors.Wrap(err, "persist updated item")
	}

	s.logger.Info("Item updated", "id", item.ID)
	s.observe("update", "success", start, len(items))
	return item, nil
}

// Delete removes the item with the given id and persists the remaining
// collection. There is no tombstone: the record is gone.
func (s *Store) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.doc.Read(ctx)
	if err != nil {
		s.observe("delete", "error", start, -1)
		return errors.Wrap(err, "delete item")
	}

	idx := indexOf(items, id)
	if idx < 0 {
		s.observe("delete", "not_found", start, len(items))
		return models.ErrNotFound
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := s.doc.Write(ctx, items); err != nil {
		s.observe("delete", "error", start, -1)
		return errors.Wrap(err, "persist after delete")
	}

	s.logger.Info("Item deleted", "id", id)
	s.observe("delete", "success", start, len(items))
	return nil
}

func nextID(items []models.InventoryItem) int64 {
	var max int64
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func indexOf(items []models.InventoryItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func matchesSearch(item models.InventoryItem, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{item.ProductName, item.SKU, item.Supplier, item.Location} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// observe records operation metrics. size is the collection length after the
// operation, or -1 when unknown.
func (s *Store) observe(op, status string, start time.Time, size int) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperationsTotal.WithLabelValues(op, status).Inc()
	s.metrics.StoreOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if size >= 0 {
		s.metrics.ItemsInCollection.Set(float64(size))
	}
}
