package ingest

import (
	"fmt"

	"gorm.io/gorm"
)

// DefaultBatchSize is the bulk-insert threshold for high-volume stages.
const DefaultBatchSize = 500

// BatchWriter buffers rows and writes each full buffer with one bulk
// insert. It suits record sets whose generated ids are never read back
// within the writing stage.
type BatchWriter[T any] struct {
	tx    *gorm.DB
	size  int
	rows  []T
	total int
}

// NewBatchWriter creates a BatchWriter that flushes every size rows.
// A non-positive size falls back to DefaultBatchSize.
func NewBatchWriter[T any](tx *gorm.DB, size int) *BatchWriter[T] {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &BatchWriter[T]{
		tx:   tx,
		size: size,
		rows: make([]T, 0, size),
	}
}

// Add buffers one row, flushing when the buffer reaches the batch size.
func (w *BatchWriter[T]) Add(row T) error {
	w.rows = append(w.rows, row)
	if len(w.rows) >= w.size {
		return w.Flush()
	}
	return nil
}

// Flush writes any buffered rows. It must be called once after the last
// Add to drain the remainder.
func (w *BatchWriter[T]) Flush() error {
	if len(w.rows) == 0 {
		return nil
	}
	if err := w.tx.CreateInBatches(w.rows, w.size).Error; err != nil {
		return fmt.Errorf("bulk insert: %w", err)
	}
	w.total += len(w.rows)
	w.rows = w.rows[:0]
	return nil
}

// Buffered returns how many rows await the next flush.
func (w *BatchWriter[T]) Buffered() int {
	return len(w.rows)
}

// Total returns how many rows have been written so far.
func (w *BatchWriter[T]) Total() int {
	return w.total
}
