package respond

import (
	"strings"
	"testing"
)

func TestTagEmojis(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{
			name: "known tags sorted and distinct",
			tags: []string{"color_blue", "usage_kitchen", "color_blue"},
			want: "🍽️ 🔵",
		},
		{
			name: "unknown tag falls back",
			tags: []string{"made_up_tag"},
			want: defaultEmoji,
		},
		{
			name: "duplicate emoji collapses",
			tags: []string{"material_cement", "breeze_blocks"},
			want: "🧱",
		},
		{
			name: "empty",
			tags: nil,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagEmojis(tt.tags); got != tt.want {
				t.Errorf("TagEmojis(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestPromotedProduct(t *testing.T) {
	got := PromotedProduct("Blue Tile", "A great choice!", "https://shop.example.com/products/blue-tile")
	if !strings.Contains(got, "Yes! We have <b>Blue Tile</b>") {
		t.Errorf("missing promotion lead-in: %q", got)
	}
	if !strings.Contains(got, "href='https://shop.example.com/products/blue-tile'") {
		t.Errorf("missing product link: %q", got)
	}
}

func TestProductCarousel(t *testing.T) {
	got := ProductCarousel("Here you go!", []ProductCard{
		{Title: "Blue Tile", Summary: "Nice.", URL: "/products/blue", Tags: []string{"color_blue"}},
		{Title: "Green Tile", Summary: "Also nice.", URL: "/products/green"},
	})

	if !strings.HasPrefix(got, "Here you go!<br>") {
		t.Errorf("intro missing: %q", got)
	}
	if !strings.Contains(got, `class="product-carousel"`) {
		t.Error("carousel wrapper missing")
	}
	if strings.Count(got, `class="product-card"`) != 2 {
		t.Errorf("want 2 cards: %q", got)
	}
	if !strings.Contains(got, "🔵 Blue Tile") {
		t.Error("tag emoji not rendered next to the title")
	}
}

func TestCollectionListShowsCounts(t *testing.T) {
	got := CollectionList("Intro", []CollectionItem{
		{Title: "Zellige", Summary: "Glossy squares.", URL: "/collections/zellige", Count: 12},
	})
	if !strings.Contains(got, "<b>Zellige</b> (12 products)") {
		t.Errorf("count missing: %q", got)
	}
}

func TestFAQAnswerOmitsEmptyLink(t *testing.T) {
	withURL := FAQAnswer("Shipping", "3-5 days.", "/faq#shipping")
	if !strings.Contains(withURL, "Read more") {
		t.Errorf("link missing: %q", withURL)
	}
	withoutURL := FAQAnswer("Shipping", "3-5 days.", "")
	if strings.Contains(withoutURL, "Read more") {
		t.Errorf("link rendered for empty url: %q", withoutURL)
	}
}
