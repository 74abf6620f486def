package cache

import (
	"os"
	"path/filepath"
	"time"
)

const ttlSuffix = ".expires"

// FileCache stores entries as plain files under Dir. TTL is enforced with a
// sidecar expiry file, so entries survive restarts but expire on read.
type FileCache struct {
	Dir string
}

var _ Cache = (*FileCache)(nil)

func NewFileCache(dir string) *FileCache {
	return &FileCache{Dir: dir}
}

func (fc *FileCache) Get(key string) (string, bool) {
	path := filepath.Join(fc.Dir, key)
	if expiry, ok := readExpiry(path); ok && time.Now().After(expiry) {
		_ = os.Remove(path)
		_ = os.Remove(path + ttlSuffix)
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (fc *FileCache) Set(key, value string) error {
	path := filepath.Join(fc.Dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(value), 0644)
}

func (fc *FileCache) SetTTL(key, value string, ttl time.Duration) error {
	if err := fc.Set(key, value); err != nil {
		return err
	}
	path := filepath.Join(fc.Dir, key)
	return os.WriteFile(path+ttlSuffix, []byte(time.Now().Add(ttl).Format(time.RFC3339)), 0644)
}

func readExpiry(path string) (time.Time, bool) {
	data, err := os.ReadFile(path + ttlSuffix)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
