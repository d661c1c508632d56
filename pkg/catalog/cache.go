package catalog

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache persists catalog snapshots as JSON artifacts next to a content hash
// of the enriched collection set. The hash decides whether derived caches
// must be rebuilt after a refresh (change detection, not a rebuild every
// cycle).
type Cache struct {
	Dir string
}

func NewCache(dir string) *Cache {
	return &Cache{Dir: dir}
}

func (c *Cache) path(name string) string {
	return filepath.Join(c.Dir, name)
}

func writeJSONAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cache-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// SaveSnapshot persists every kind as its own artifact.
func (c *Cache) SaveSnapshot(snap *Snapshot) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return err
	}
	files := map[string]interface{}{
		"cached_products.json":    snap.Products,
		"cached_collections.json": snap.Collections,
		"articles.json":           snap.Articles,
		"cached_pages.json":       snap.Pages,
		"shop.json":               snap.Shop,
	}
	for name, v := range files {
		if err := writeJSONAtomic(c.path(name), v); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
	}
	return nil
}

// LoadSnapshot restores the last persisted snapshot, used on boot before
// the first live refresh completes. A missing artifact is not an error;
// the kind simply starts empty.
func (c *Cache) LoadSnapshot() *Snapshot {
	snap := &Snapshot{}
	readJSON(c.path("cached_products.json"), &snap.Products)
	readJSON(c.path("cached_collections.json"), &snap.Collections)
	readJSON(c.path("articles.json"), &snap.Articles)
	readJSON(c.path("cached_pages.json"), &snap.Pages)
	readJSON(c.path("shop.json"), &snap.Shop)
	return snap
}

// CollectionsHash returns the md5 content hash of the enriched collection
// set.
func CollectionsHash(collections []Collection) string {
	data, err := json.Marshal(collections)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", md5.Sum(data))
}

// CollectionsChanged compares the current hash against the persisted prior
// hash and records the new value. It reports true when the derived caches
// must be rebuilt.
func (c *Cache) CollectionsChanged(collections []Collection) bool {
	current := CollectionsHash(collections)
	if current == "" {
		return false
	}
	hashPath := c.path("collections.hash")

	prev, err := os.ReadFile(hashPath)
	if err == nil && strings.TrimSpace(string(prev)) == current {
		return false
	}
	if err := os.MkdirAll(c.Dir, 0755); err == nil {
		os.WriteFile(hashPath, []byte(current), 0644)
	}
	return true
}
