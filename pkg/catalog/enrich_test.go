package catalog

import (
	"strings"
	"testing"
)

func enrichProducts() []Product {
	return []Product{
		{Title: "Blue Zellige Tile", Handle: "blue-zellige", Tags: "color_blue, zellige"},
		{Title: "Green Zellige Tile", Handle: "green-zellige", Tags: "color_green, zellige"},
		{Title: "Terracotta Square", Handle: "terracotta-square", Tags: "color_terracotta"},
	}
}

func TestEnrichCollectionsTagRules(t *testing.T) {
	collections := []Collection{
		{
			Title: "All Zellige",
			Rules: []Rule{{Column: "tag", Relation: "equals", Condition: "Zellige"}},
		},
	}

	got := EnrichCollections(collections, enrichProducts(), nil)
	if got[0].ProductCount != 2 {
		t.Errorf("ProductCount = %d, want 2", got[0].ProductCount)
	}
	if len(got[0].ProductTitles) != 2 {
		t.Errorf("ProductTitles = %v", got[0].ProductTitles)
	}
	// Rule conditions become searchable tags on the collection itself.
	if got[0].Tags != "zellige" {
		t.Errorf("Tags = %q, want %q", got[0].Tags, "zellige")
	}
}

func TestEnrichCollectionsTitleFallback(t *testing.T) {
	// Manual collection, no rules: members resolve by title keywords.
	collections := []Collection{
		{Title: "Terracotta Square"},
	}

	got := EnrichCollections(collections, enrichProducts(), nil)
	if got[0].ProductCount != 1 {
		t.Errorf("ProductCount = %d, want 1", got[0].ProductCount)
	}
	if len(got[0].ProductTitles) != 1 || got[0].ProductTitles[0] != "Terracotta Square" {
		t.Errorf("ProductTitles = %v", got[0].ProductTitles)
	}
}

func TestEnrichCollectionsDescribesEmptyBody(t *testing.T) {
	collections := []Collection{
		{
			Title: "All Zellige",
			Rules: []Rule{{Column: "tag", Relation: "equals", Condition: "zellige"}},
		},
		{
			Title:    "Already Described",
			BodyHTML: "Keep me.",
			Rules:    []Rule{{Column: "tag", Relation: "equals", Condition: "zellige"}},
		},
	}

	describe := func(title string, productTitles []string) string {
		return "Generated for " + title
	}

	got := EnrichCollections(collections, enrichProducts(), describe)
	if !strings.HasPrefix(got[0].BodyHTML, "Generated for") {
		t.Errorf("empty body not described: %q", got[0].BodyHTML)
	}
	if got[1].BodyHTML != "Keep me." {
		t.Errorf("existing body overwritten: %q", got[1].BodyHTML)
	}
}

func TestEnrichCollectionsNoMatches(t *testing.T) {
	got := EnrichCollections([]Collection{{Title: "Imaginary Things"}}, enrichProducts(), nil)
	if got[0].ProductCount != 0 {
		t.Errorf("ProductCount = %d, want 0", got[0].ProductCount)
	}
}
