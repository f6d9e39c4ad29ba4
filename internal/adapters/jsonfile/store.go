// Package jsonfile persists inventory snapshots as a JSON array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rafaelleal24/inventory/internal/adapters/record"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/port"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

type Store struct{}

func NewStore() port.SnapshotPort {
	return &Store{}
}

// Save overwrites the file at path with the full product set.
func (s *Store) Save(ctx context.Context, path string, products []domain.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return serviceerrors.NewIOError(fmt.Sprintf("cannot write snapshot %s: %v", path, err))
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(record.EncodeAll(products)); err != nil {
		return serviceerrors.NewIOError(fmt.Sprintf("cannot write snapshot %s: %v", path, err))
	}

	return nil
}

func (s *Store) Load(ctx context.Context, path string) ([]domain.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, serviceerrors.NewIOError(fmt.Sprintf("cannot read snapshot %s: %v", path, err))
	}
	defer file.Close()

	var records []record.ProductRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, serviceerrors.NewParseError(fmt.Sprintf("snapshot %s is not valid JSON: %v", path, err))
	}

	return record.DecodeAll(records)
}
