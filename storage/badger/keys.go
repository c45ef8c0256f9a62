package badger

import (
	"fmt"

	"github.com/poiesic/docqa/core"
)

// Key prefixes for different data types
const (
	embeddingCachePrefix = "embcache"
)

// makeEmbeddingKey generates a key for a cached embedding matrix by
// chunk-sequence fingerprint.
func makeEmbeddingKey(fp core.Fingerprint) []byte {
	return []byte(fmt.Sprintf("%s:%s", embeddingCachePrefix, fp))
}
