package scoring

import (
	"math/rand"
	"strings"
	"testing"

	"shopbot-be/pkg/catalog"
)

func noneShown(string) bool { return false }

func testRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func product(title, handle, tags, body string) catalog.Product {
	return catalog.Product{
		Title:    title,
		Handle:   handle,
		Tags:     tags,
		BodyHTML: body,
	}
}

const longBody = "A beautiful handmade tile crafted from natural clay, perfect for interior walls and floors alike."

func TestRankProductsPromotesExactTitleMatch(t *testing.T) {
	products := []catalog.Product{
		product("Kitchen Backsplash Tile", "kitchen-backsplash-tile", "usage_kitchen", longBody),
		product("Green Hexagon", "green-hexagon", "color_green", longBody),
	}

	sel := RankProducts(products, "kitchen backsplash tile", "", noneShown, testRand())
	if sel.Promoted == nil {
		t.Fatal("expected a promoted product")
	}
	if sel.Promoted.Product.Handle != "kitchen-backsplash-tile" {
		t.Errorf("promoted %q", sel.Promoted.Product.Handle)
	}
	if sel.Promoted.Similarity != 1.0 {
		t.Errorf("all-words title match should pin similarity to 1.0, got %v", sel.Promoted.Similarity)
	}
	if len(sel.Listed) != 0 {
		t.Error("promotion must be the sole answer")
	}
}

func TestRankProductsPromotionNeedsAccumulationBar(t *testing.T) {
	// High fuzzy similarity but a weak keyword score must not be promoted:
	// the candidate never clears the accumulation bar.
	products := []catalog.Product{
		product("Moroccan Zellige Tile", "zellige", "", longBody),
	}

	sel := RankProducts(products, "moroccan zellige tiles", "", noneShown, testRand())
	if sel.Promoted != nil {
		t.Fatalf("weak keyword score promoted: score=%d sim=%v",
			sel.Promoted.MatchScore, sel.Promoted.Similarity)
	}
	if len(sel.Listed) == 0 || sel.Listed[0].Product.Handle != "zellige" {
		t.Error("candidate should still appear in the list")
	}
}

func TestRankProductsRequiredTagGate(t *testing.T) {
	products := []catalog.Product{
		product("Blue Kitchen Square", "gated", "color_blue,usage_kitchen", longBody),
		product("Blue Square", "no-tags", "", longBody+" blue kitchen"),
	}

	// "blue" and "kitchen" both resolve to required tags; with N=2 a
	// candidate must match at least max(1, N-1)=1 of them.
	sel := RankProducts(products, "blue kitchen", "", noneShown, testRand())
	for _, c := range sel.Listed {
		if c.Product.Handle == "no-tags" {
			t.Error("candidate without any required tag must be excluded")
		}
	}
	if sel.Promoted != nil && sel.Promoted.Product.Handle == "no-tags" {
		t.Error("gated product promoted")
	}
}

func TestRankProductsToleratesOneMissingTag(t *testing.T) {
	products := []catalog.Product{
		product("Blue Tile", "only-blue", "color_blue", longBody),
	}

	// Two required tags, one matched: max(1, 2-1) = 1, so it stays in.
	sel := RankProducts(products, "blue kitchen", "", noneShown, testRand())
	if sel.Promoted == nil && len(sel.Listed) == 0 {
		t.Error("product matching N-1 required tags should remain a candidate")
	}
}

func TestRankProductsExcludesSamples(t *testing.T) {
	products := []catalog.Product{
		product("Blue Tile Sample", "sample-1", "color_blue", longBody),
		product("Blue Tile", "real", "color_blue", longBody),
	}

	sel := RankProducts(products, "blue tile", "", noneShown, testRand())
	check := func(handle string) {
		if strings.Contains(handle, "sample") {
			t.Errorf("sample product %q surfaced", handle)
		}
	}
	if sel.Promoted != nil {
		check(sel.Promoted.Product.Handle)
	}
	for _, c := range sel.Listed {
		check(c.Product.Handle)
	}
}

func TestRankProductsSessionExclusion(t *testing.T) {
	products := []catalog.Product{
		product("Blue Hexagon Tile", "seen", "color_blue", longBody),
		product("Blue Square Tile", "fresh", "color_blue", longBody),
	}
	wasShown := func(h string) bool { return h == "seen" }

	sel := RankProducts(products, "blue tile", "", wasShown, testRand())
	if sel.Promoted != nil && sel.Promoted.Product.Handle == "seen" {
		t.Error("shown product was promoted again")
	}
	for _, c := range sel.Listed {
		if c.Product.Handle == "seen" {
			t.Error("shown product listed again")
		}
	}
}

func TestRankProductsListOrderedByScoreThenSimilarity(t *testing.T) {
	// Neither keyword maps to a required tag and no title holds all the
	// query words, so both items stay on the list path.
	products := []catalog.Product{
		product("Moroccan Wall Art", "weak", "", longBody),
		product("Floor Tile Classic", "strong", "", longBody),
	}

	sel := RankProducts(products, "moroccan floor tile", "", noneShown, testRand())
	if sel.Promoted != nil {
		t.Fatalf("unexpected promotion of %q", sel.Promoted.Product.Handle)
	}
	if len(sel.Listed) != 2 {
		t.Fatalf("want 2 listed, got %d", len(sel.Listed))
	}
	if sel.Listed[0].Product.Handle != "strong" {
		t.Errorf("higher score should list first, got %q", sel.Listed[0].Product.Handle)
	}
	if sel.Listed[0].MatchScore < sel.Listed[1].MatchScore {
		t.Errorf("list not sorted by score: %d before %d",
			sel.Listed[0].MatchScore, sel.Listed[1].MatchScore)
	}
}

func TestRankProductsRandomFallback(t *testing.T) {
	products := []catalog.Product{
		product("Alpha", "a", "", longBody),
		product("Beta", "b", "", longBody),
		product("Gamma", "c", "", longBody),
		product("Delta Sample", "d-sample", "", longBody),
		product("Epsilon", "e", "", longBody),
	}

	sel := RankProducts(products, "xyzzy quux", "", noneShown, testRand())
	if !sel.Random {
		t.Fatal("expected random fallback for a query matching nothing")
	}
	if len(sel.Listed) != 3 {
		t.Fatalf("fallback should pick 3 items, got %d", len(sel.Listed))
	}
	for _, c := range sel.Listed {
		if strings.Contains(c.Product.Handle, "sample") {
			t.Error("sample product in random fallback")
		}
	}

	// Same seed, same picks.
	again := RankProducts(products, "xyzzy quux", "", noneShown, testRand())
	for i := range sel.Listed {
		if sel.Listed[i].Product.Handle != again.Listed[i].Product.Handle {
			t.Error("seeded fallback should be reproducible")
		}
	}
}

func TestRankProductsContextExpandsKeywords(t *testing.T) {
	products := []catalog.Product{
		product("Glazed Wall Tile", "glazed", "usage_kitchen", longBody),
	}

	scoreOf := func(sel ProductSelection, handle string) int {
		if sel.Promoted != nil && sel.Promoted.Product.Handle == handle {
			return sel.Promoted.MatchScore
		}
		for _, c := range sel.Listed {
			if c.Product.Handle == handle {
				return c.MatchScore
			}
		}
		return 0
	}

	// Without context the candidate stays a plain list entry.
	without := RankProducts(products, "glazed tile for cooking", "", noneShown, testRand())
	if without.Promoted != nil {
		t.Fatalf("unexpected promotion without context: %+v", without.Promoted)
	}
	if got := scoreOf(without, "glazed"); got != 10 {
		t.Errorf("score without context = %d, want 10", got)
	}

	// Kitchen context appends kitchen/backsplash/cook/usage_kitchen keywords:
	// tag hits and usage boosts lift the same product over the outright
	// promotion score.
	with := RankProducts(products, "glazed tile for cooking", "kitchen", noneShown, testRand())
	if with.Promoted == nil {
		t.Fatal("kitchen context should promote the kitchen-tagged product")
	}
	if got := scoreOf(with, "glazed"); got != 20 {
		t.Errorf("score with context = %d, want 20", got)
	}
}

func TestDetectContext(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"tiles for my kitchen", "kitchen"},
		{"shower wall ideas", "bathroom"},
		{"tiles for a bar counter", "restaurant"},
		{"blue hexagon tiles", ""},
	}
	for _, tt := range tests {
		if got := DetectContext(tt.message); got != tt.want {
			t.Errorf("DetectContext(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
