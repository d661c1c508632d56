package catalog

import (
	"testing"
)

func TestCollectionsChanged(t *testing.T) {
	cache := NewCache(t.TempDir())
	collections := []Collection{
		{ID: 1, Title: "Zellige", Handle: "zellige", ProductCount: 3},
	}

	if !cache.CollectionsChanged(collections) {
		t.Error("first observation should report a change")
	}
	if cache.CollectionsChanged(collections) {
		t.Error("unchanged set reported as changed")
	}

	collections[0].ProductCount = 4
	if !cache.CollectionsChanged(collections) {
		t.Error("content change not detected")
	}
	if cache.CollectionsChanged(collections) {
		t.Error("hash not persisted after change")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cache := NewCache(t.TempDir())
	snap := &Snapshot{
		Products:    []Product{{ID: 1, Title: "Tile A", Handle: "a"}},
		Collections: []Collection{{ID: 2, Title: "Blue", Handle: "blue"}},
		Articles:    []BlogArticle{{Title: "Care Guide", URL: "/blogs/news/care"}},
		Pages:       []Page{{ID: 3, Title: "Shipping", Handle: "shipping-policy"}},
		Shop:        Shop{Name: "Tile Shop", Currency: "USD"},
	}

	if err := cache.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got := cache.LoadSnapshot()
	if len(got.Products) != 1 || got.Products[0].Handle != "a" {
		t.Errorf("products = %+v", got.Products)
	}
	if len(got.Collections) != 1 || got.Collections[0].Handle != "blue" {
		t.Errorf("collections = %+v", got.Collections)
	}
	if len(got.Articles) != 1 || got.Articles[0].URL != "/blogs/news/care" {
		t.Errorf("articles = %+v", got.Articles)
	}
	if len(got.Pages) != 1 || got.Pages[0].Handle != "shipping-policy" {
		t.Errorf("pages = %+v", got.Pages)
	}
	if got.Shop.Name != "Tile Shop" || got.Shop.Currency != "USD" {
		t.Errorf("shop = %+v", got.Shop)
	}
}

func TestLoadSnapshotMissingArtifacts(t *testing.T) {
	got := NewCache(t.TempDir()).LoadSnapshot()
	if got == nil {
		t.Fatal("LoadSnapshot returned nil")
	}
	if len(got.Products) != 0 || len(got.Pages) != 0 {
		t.Errorf("missing artifacts should load empty, got %+v", got)
	}
}
