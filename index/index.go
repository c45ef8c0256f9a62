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


// Package index provides an exact inner-product vector index.
//
// The corpus is one document's chunk set, small enough that exhaustive
// search beats any approximation tier. Rows are unit-normalized at build
// time so inner product equals cosine similarity.
package index

import (
	"math"
	"sort"

	"github.com/poiesic/docqa/core"
)

// Hit is a search match: a stored row and its similarity to the query.
type Hit struct {
	Row   int
	Score float32
}

// Flat is a flat, read-only vector index over a fixed embedding set.
// Build once per document, query many times. Not safe for concurrent
// mutation, but there is none after construction.
type Flat struct {
	dim  int
	rows [][]float32
}

// Build constructs a flat index from embeddings. Every row is normalized
// to unit length. The dimension is fixed by the first embedding; any row
// of a different dimension fails with core.ErrDimensionMismatch.
func Build(embeddings [][]float32) (*Flat, error) {
	if len(embeddings) == 0 {
		return &Flat{}, nil
	}

	dim := len(embeddings[0])
	if dim == 0 {
		return nil, core.ErrDimensionMismatch
	}

	rows := make([][]float32, len(embeddings))
	for i, emb := range embeddings {
		if len(emb) != dim {
			return nil, core.ErrDimensionMismatch
		}
		rows[i] = normalize(emb)
	}

	return &Flat{dim: dim, rows: rows}, nil
}

// Len returns the number of stored rows.
func (f *Flat) Len() int {
	return len(f.rows)
}

// Dimension returns the embedding dimension, or 0 for an empty index.
func (f *Flat) Dimension() int {
	return f.dim
}

// Search returns the topK rows most similar to the query vector, strictly
// descending by score, ties broken by ascending row index. topK larger
// than the row count is clamped, not an error. An empty index returns no
// hits. A query of mismatched dimension fails with
// core.ErrDimensionMismatch.
func (f *Flat) Search(query []float32, topK int) ([]Hit, error) {
	if len(f.rows) == 0 {
		return nil, nil
	}
	if len(query) != f.dim {
		return nil, core.ErrDimensionMismatch
	}
	if topK <= 0 {
		return nil, nil
	}
	if topK > len(f.rows) {
		topK = len(f.rows)
	}

	q := normalize(query)

	hits := make([]Hit, len(f.rows))
	for i, row := range f.rows {
		hits[i] = Hit{Row: i, Score: dot(row, q)}
	}

	// Stable keeps the ascending-row order of equal scores.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	return hits[:topK], nil
}

// normalize returns a unit-length copy of v. The zero vector is returned
// unchanged, since it has no direction to preserve.
func normalize(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if sumSquares == 0 {
		copy(out, v)
		return out
	}
	norm := float32(1.0 / math.Sqrt(sumSquares))
	for i, x := range v {
		out[i] = x * norm
	}
	return out
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
