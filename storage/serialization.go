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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

// MUS serializers for cache records. The cache stores a single fixed
// shape (a matrix of float32 embeddings), so the serializers are written
// directly instead of generated.
var (
	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
	matrixMUS = ord.NewSliceSer[[]float32](vectorMUS)
)

// MarshalVectors serializes an embedding matrix to bytes.
func MarshalVectors(vectors [][]float32) []byte {
	buf := make([]byte, matrixMUS.Size(vectors))
	matrixMUS.Marshal(vectors, buf)
	return buf
}

// UnmarshalVectors deserializes an embedding matrix from bytes.
func UnmarshalVectors(data []byte) ([][]float32, error) {
	vectors, n, err := matrixMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if n != len(data) {
		return nil, ErrTruncatedData
	}
	return vectors, nil
}
