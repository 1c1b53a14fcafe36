// Package pkg provides shared utilities for boundsmith.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileSpill is a generic append-only accumulator that keeps items of type T
// on disk instead of the heap. Directory scans use it to merge per-unit
// boundary lists without holding every record in memory.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewFileSpill creates a new FileSpill backed by a temp file.
func NewFileSpill[T any]() (FileSpill[T], error) {
	tmpDir := filepath.Join(os.TempDir(), "boundsmith-spill")
	if err := os.MkdirAll(tmpDir, 0o750); err != nil {
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.CreateTemp(tmpDir, "spill-*.gob")
	if err != nil {
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append encodes one item at the end of the spill.
func (f *fileSpillImpl[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("encode item: %w", err)
	}

	f.length++

	return nil
}

// AppendBatch appends items in order.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of items appended so far.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Path returns the backing file path.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// Get decodes the item at index. Gob streams are sequential, so Get pays a
// linear decode; Range is the cheap way to read everything.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T

	if index >= f.length {
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, f.length)
	}

	var item T

	err := f.decodeEach(func(i uint64, decoded T) (bool, error) {
		if i == index {
			item = decoded
			return false, nil
		}

		return true, nil
	})
	if err != nil {
		return zero, err
	}

	return item, nil
}

// Range calls fn for every item in append order.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.decodeEach(func(i uint64, item T) (bool, error) {
		if err := fn(i, item); err != nil {
			return false, err
		}

		return true, nil
	})
}

// Close releases the backing file.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close filespill", "path", f.path, "error", err)
		return err
	}

	f.file = nil

	return nil
}

// decodeEach re-opens the spill and streams items to fn until fn asks to
// stop or the stream ends. Callers must hold the mutex.
func (f *fileSpillImpl[T]) decodeEach(fn func(index uint64, item T) (bool, error)) error {
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := gob.NewDecoder(file)

	for i := uint64(0); i < f.length; i++ {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode item at index %d: %w", i, err)
		}

		keep, err := fn(i, item)
		if err != nil {
			return err
		}

		if !keep {
			return nil
		}
	}

	return nil
}
