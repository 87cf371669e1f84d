package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/stocktrack/inventory-service/internal/models"
	"github.com/stocktrack/inventory-service/pkg/metrics"
)

// Document is the persistence port of the store: the full collection is read
// before each operation and rewritten after each mutation. Implementations
// must not cache between calls.
type Document interface {
	Read(ctx context.Context) ([]models.InventoryItem, error)
	Write(ctx context.Context, items []models.InventoryItem) error
}

// FileDocument persists the collection as a single pretty-printed JSON file.
// Writes go to a temporary file in the same directory followed by a rename,
// so a crash mid-write never leaves a truncated document behind.
type FileDocument struct {
	path    string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewFileDocument creates a file-backed document at path. metrics may be nil.
func NewFileDocument(path string, logger *slog.Logger, m *metrics.Metrics) *FileDocument {
	return &FileDocument{
		path:    path,
		logger:  logger,
		metrics: m,
	}
}

// Read loads the full collection from disk. On the very first read, when the
// file does not exist yet, the seed collection is written and returned.
func (d *FileDocument) Read(ctx context.Context) ([]models.InventoryItem, error) {
	start := time.Now()

	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			d.logger.Info("Data file missing, writing seed collection", "path", d.path)
			seed := SeedItems()
			if err := d.Write(ctx, seed); err != nil {
				d.observe("read", "error", start)
				return nil, errors.Wrap(err, "seed inventory document")
			}
			d.observe("read", "success", start)
			return seed, nil
		}
		d.logger.Error("Failed to read data file", "path", d.path, "error", err)
		d.observe("read", "error", start)
		return nil, &models.StorageError{Op: "read", Err: err}
	}

	var items []models.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		d.logger.Error("Data file is corrupt", "path", d.path, "error", err)
		d.observe("read", "error", start)
		return nil, &models.StorageError{Op: "read", Err: errors.Wrap(err, "decode inventory document")}
	}

	d.observe("read", "success", start)
	return items, nil
}

// Write replaces the persisted collection. The document is marshalled with
// two-space indentation to keep it human-readable on disk.
func (d *FileDocument) Write(_ context.Context, items []models.InventoryItem) error {
	start := time.Now()

	if items == nil {
		items = []models.InventoryItem{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: errors.Wrap(err, "encode inventory document")}
	}
	data = append(data, '\n')

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*.json")
	if err != nil {
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: err}
	}

	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		d.logger.Error("Failed to replace data file", "path", d.path, "error", err)
		d.observe("write", "error", start)
		return &models.StorageError{Op: "write", Err: err}
	}

	if d.metrics != nil {
		d.metrics.DocumentSizeBytes.Set(float64(len(data)))
	}
	d.logger.Debug("Data file written", "path", d.path, "items", len(items), "bytes", len(data))
	d.observe("write", "success", start)
	return nil
}

// Health reports whether the data file is accessible. A missing file is
// healthy: it means the seed has not been written yet.
func (d *FileDocument) Health(_ context.Context) error {
	if _, err := os.Stat(d.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "stat data file")
	}
	return nil
}

// Path returns the location of the backing file.
func (d *FileDocument) Path() string {
	return d.path
}

func (d *FileDocument) observe(op, status string, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.DocumentIOTotal.WithLabelValues(op, status).Inc()
	d.metrics.DocumentIODuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
