package scoring

import (
	"testing"

	"shopbot-be/pkg/catalog"
)

func TestRankCollectionsExcludesEmpty(t *testing.T) {
	collections := []catalog.Collection{
		{Title: "Terracotta Collection", Handle: "terracotta", ProductCount: 0},
		{Title: "Terracotta Classics", Handle: "classics", ProductCount: 5},
	}

	got := RankCollections(collections, "terracotta", noneShown)
	for _, c := range got {
		if c.Collection.Handle == "terracotta" {
			t.Error("zero-product collection entered candidacy")
		}
	}
	if len(got) != 1 || got[0].Collection.Handle != "classics" {
		t.Errorf("want classics only, got %+v", got)
	}
}

func TestRankCollectionsWeights(t *testing.T) {
	collections := []catalog.Collection{
		{
			Title:        "Hexagon Tiles",
			Handle:       "hex",
			ProductCount: 4,
		},
		{
			Title:         "Shapes",
			Handle:        "shapes",
			ProductCount:  4,
			ProductTitles: []string{"Hexagon Blue", "Square Green"},
		},
	}

	got := RankCollections(collections, "hexagon", noneShown)
	if len(got) != 2 {
		t.Fatalf("want 2 candidates, got %d", len(got))
	}
	// Title hit (+5) outranks a member-title hit (+2).
	if got[0].Collection.Handle != "hex" {
		t.Errorf("title match should rank first, got %q", got[0].Collection.Handle)
	}
	if got[0].MatchScore <= got[1].MatchScore {
		t.Errorf("scores not ordered: %d vs %d", got[0].MatchScore, got[1].MatchScore)
	}
}

func TestRankCollectionsTagHit(t *testing.T) {
	collections := []catalog.Collection{
		{Title: "Wall Decor", Handle: "tagged", ProductCount: 2, Tags: "color_terracotta"},
		{Title: "Wall Decor II", Handle: "untagged", ProductCount: 2},
	}

	got := RankCollections(collections, "terracotta wall", noneShown)
	if len(got) < 2 {
		t.Fatalf("want 2 candidates, got %d", len(got))
	}
	if got[0].Collection.Handle != "tagged" {
		t.Errorf("tag hit should rank first, got %q", got[0].Collection.Handle)
	}
}

func TestRankCollectionsSessionExclusionAndCut(t *testing.T) {
	var collections []catalog.Collection
	for _, h := range []string{"a", "b", "c", "d"} {
		collections = append(collections, catalog.Collection{
			Title:        "Zellige " + h,
			Handle:       h,
			ProductCount: 1,
		})
	}
	wasShown := func(h string) bool { return h == "a" }

	got := RankCollections(collections, "zellige", wasShown)
	if len(got) != 3 {
		t.Fatalf("want top 3, got %d", len(got))
	}
	for _, c := range got {
		if c.Collection.Handle == "a" {
			t.Error("shown collection surfaced again")
		}
	}
}
