// Package cache is a small string cache for fetched wiki pages and GeoJSON
// boundary files. The file cache is the default in server mode; the memory
// cache backs tests.
package cache

import (
	"encoding/base64"
	"hash/fnv"
	"io"
	"time"

	"github.com/samber/lo"
)

type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	// SetTTL stores a value that Get stops returning after ttl.
	SetTTL(key, value string, ttl time.Duration) error
}

// Key turns an arbitrary string (usually a URL) into a short filesystem safe
// cache key.
func Key(s string) string {
	h := fnv.New64a()
	lo.Must(io.WriteString(h, s))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
