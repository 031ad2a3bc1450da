package config

import "fmt"

type CacheKeyStruct struct{}

// CacheKey is the registry of Redis cache key builders.
var CacheKey = &CacheKeyStruct{}

// PaperPayloadKey returns the cache key for an assembled paper. The
// cached value includes the answer key; it is never sent to clients raw.
func (r *CacheKeyStruct) PaperPayloadKey(paperID string) string {
	return fmt.Sprintf("paper:%s:payload", paperID)
}
