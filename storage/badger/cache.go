// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package badger implements the storage.EmbeddingCache interface on
// BadgerDB. An in-memory mode is provided for tests.
package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/docqa/core"
	"github.com/poiesic/docqa/storage"
)

// EmbeddingCache stores embedding matrices in BadgerDB keyed by
// chunk-sequence fingerprint.
type EmbeddingCache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.EmbeddingCache = (*EmbeddingCache)(nil)

// NewEmbeddingCache creates an embedding cache on an open backend.
func NewEmbeddingCache(backend *Backend) (*EmbeddingCache, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &EmbeddingCache{
		backend: backend,
		logger:  slog.Default().With("component", "embedding-cache"),
	}, nil
}

// NewMemoryCache creates an embedding cache on a fresh in-memory backend.
// Intended for tests; the caller owns both and closes the cache, which
// closes the backend.
func NewMemoryCache() (*EmbeddingCache, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return NewEmbeddingCache(backend)
}

// Get returns the cached embedding matrix for the fingerprint.
func (c *EmbeddingCache) Get(ctx context.Context, fp core.Fingerprint) ([][]float32, bool, error) {
	if c.backend.IsClosed() {
		return nil, false, storage.ErrStorageClosed
	}

	var vectors [][]float32
	found := false

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(fp))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			vectors, err = storage.UnmarshalVectors(val)
			if err != nil {
				return err
			}
			found = true
			return nil
		})
	}, false)
	if err != nil {
		return nil, false, err
	}

	if found {
		c.logger.Debug("embedding cache hit", "fingerprint", fp, "rows", len(vectors))
	}
	return vectors, found, nil
}

// Put stores the embedding matrix for the fingerprint.
func (c *EmbeddingCache) Put(ctx context.Context, fp core.Fingerprint, vectors [][]float32) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	value := storage.MarshalVectors(vectors)
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeEmbeddingKey(fp), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	c.logger.Debug("cached embeddings", "fingerprint", fp, "rows", len(vectors), "bytes", len(value))
	return nil
}

// Delete removes the entry for the fingerprint.
func (c *EmbeddingCache) Delete(ctx context.Context, fp core.Fingerprint) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeEmbeddingKey(fp)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (c *EmbeddingCache) Close() error {
	return c.backend.Close()
}
