// Package cache persists fetched raw reports so repeated runs against the
// same profile do not hit the backend again.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
)

// ReportCache stores raw report markdown keyed by a model+prompt digest.
type ReportCache struct {
	Dir string
}

// KeyFrom builds a cache key from the model name and request prompt.
func KeyFrom(model, prompt string) string {
	h := sha256.Sum256([]byte(model + "\n\n" + prompt))
	return hex.EncodeToString(h[:])
}

func (c *ReportCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *ReportCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".md")
}

// Get returns the cached report for key, if present.
func (c *ReportCache) Get(_ context.Context, key string) (string, bool, error) {
	if err := c.ensureDir(); err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return "", false, nil
	}
	return string(b), true, nil
}

// Save writes a fetched report to the cache.
func (c *ReportCache) Save(_ context.Context, key, markdown string) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), []byte(markdown), 0o644)
}
