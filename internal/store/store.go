package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"
)

type Collection string

const (
	Products Collection = "products"
	Partners Collection = "partners"
	Orders   Collection = "orders"
	Sales    Collection = "sales"
)

var ErrUnknownCollection = errors.New("unknown collection")

type Store interface {
	Read(ctx context.Context, c Collection) []json.RawMessage
	Write(ctx context.Context, c Collection, records []json.RawMessage) error
}

// fileStore keeps every collection as one JSON array per file and rewrites
// the whole file on each write. Writes are last-writer-wins across processes.
type fileStore struct {
	logger *slog.Logger
	paths  map[Collection]string
}

func NewFileStore(logger *slog.Logger, cfg config.Store) *fileStore {
	return &fileStore{
		logger: logger.With(slog.String("component", "store")),
		paths: map[Collection]string{
			Products: resolve(cfg.DataDir, cfg.ProductsFile),
			Partners: resolve(cfg.DataDir, cfg.PartnersFile),
			Orders:   resolve(cfg.DataDir, cfg.OrdersFile),
			Sales:    resolve(cfg.DataDir, cfg.SalesFile),
		},
	}
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func (s *fileStore) Path(c Collection) string {
	return s.paths[c]
}

// Read never fails: a missing, unreadable or malformed file reads as an
// empty collection.
func (s *fileStore) Read(ctx context.Context, c Collection) []json.RawMessage {
	path, ok := s.paths[c]
	if !ok {
		s.logger.ErrorContext(ctx, "failed to read collection", slog.String("collection", string(c)), slog.Any("error", ErrUnknownCollection))
		return []json.RawMessage{}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.DebugContext(ctx, "collection file does not exist", slog.String("path", path))
		return []json.RawMessage{}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read collection", slog.String("path", path), slog.Any("error", err))
		return []json.RawMessage{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []json.RawMessage{}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.ErrorContext(ctx, "failed to parse collection", slog.String("path", path), slog.Any("error", err))
		return []json.RawMessage{}
	}
	if records == nil {
		return []json.RawMessage{}
	}
	return records
}

// Write replaces the collection file. Inside a unit of work the previous
// file contents are kept so a rollback can put them back.
func (s *fileStore) Write(ctx context.Context, c Collection, records []json.RawMessage) error {
	path, ok := s.paths[c]
	if !ok {
		return fmt.Errorf("failed to write %s: %w", c, ErrUnknownCollection)
	}

	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode collection", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("failed to encode %s: %w", c, err)
	}

	if tx := trm.ExtractTx(ctx); tx != nil {
		if err := tx.Track(path, func() (func() error, error) { return s.snapshot(path) }); err != nil {
			s.logger.ErrorContext(ctx, "failed to snapshot collection", slog.String("path", path), slog.Any("error", err))
			return fmt.Errorf("failed to snapshot %s: %w", c, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.ErrorContext(ctx, "failed to write collection", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("failed to write %s: %w", c, err)
	}
	return nil
}

func (s *fileStore) snapshot(path string) (func() error, error) {
	prev, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return func() error {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return func() error {
		s.logger.Warn("restoring collection", slog.String("path", path))
		return os.WriteFile(path, prev, 0o644)
	}, nil
}
