package respond

import (
	"fmt"
	"sort"
	"strings"
)

// tagEmojis decorate carousel cards by catalog tag.
var tagEmojis = map[string]string{
	// usage
	"usage_kitchen":  "🍽️",
	"usage_bathroom": "🚿",
	"usage_interior": "🏠",

	// colors
	"color_terracotta": "🧱",
	"color_white":      "⚪",
	"color_black":      "⚫",
	"color_blue":       "🔵",
	"color_green":      "🟢",
	"color_navy":       "🌊",
	"color_beige":      "🟤",
	"color_brown":      "🪵",
	"color_grey":       "⬜",
	"color_pink":       "🌸",
	"color_yellow":     "🌞",

	// finishes
	"finish_matte":        "🪨",
	"finish-glossy":       "💎",
	"finish-satin-sealed": "✨",
	"finish-raw":          "🌿",
	"finish-natural":      "🍃",

	// shapes
	"tileshape_hexagon":   "⬡",
	"tileshape_circle":    "⭕",
	"tileshape_square":    "◼️",
	"tileshape_rectangle": "⬛",
	"tileshape_2x6":       "➖",
	"tileshape_3x3":       "〰️",

	// style
	"style_modern":   "🧊",
	"style_handmade": "🖐️",
	"style_natural":  "🌿",
	"style_rustic":   "🌾",

	// materials
	"material_clay":       "🏺",
	"material_cement":     "🧱",
	"breeze_blocks":       "🧱",
	"material_concrete":   "🏗️",
	"material_ceramic":    "🔷",
	"material_terracotta": "🧡",
}

const defaultEmoji = "🧩"

// TagEmojis renders the distinct, sorted emoji set for a product's tags.
func TagEmojis(tags []string) string {
	set := map[string]bool{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		emoji, ok := tagEmojis[tag]
		if !ok {
			emoji = defaultEmoji
		}
		set[emoji] = true
	}
	emojis := make([]string, 0, len(set))
	for e := range set {
		emojis = append(emojis, e)
	}
	sort.Strings(emojis)
	return strings.Join(emojis, " ")
}

// ProductCard is one carousel entry.
type ProductCard struct {
	Title    string
	Summary  string
	URL      string
	ImageURL string
	Tags     []string
}

// PromotedProduct renders the single high-confidence answer.
func PromotedProduct(title, summary, url string) string {
	return fmt.Sprintf(
		"Yes! We have <b>%s</b>.<br>%s<br><a href='%s' target='_blank' style='color: #007bff; text-decoration: underline;'>View product</a>",
		title, summary, url,
	)
}

// ProductCarousel renders an intro line followed by a horizontal card list.
func ProductCarousel(intro string, cards []ProductCard) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("<br>")
	b.WriteString(`<div class="product-carousel" style="display: flex; gap: 20px; overflow-x: auto; padding: 10px 0;">`)
	for _, card := range cards {
		fmt.Fprintf(&b, `
        <div class="product-card" style="flex: 0 0 220px; border: 1px solid #ccc; border-radius: 12px; padding: 12px; text-align: center; background: #fff;">
            <img src="%s" alt="%s" style="max-width: 100%%; height: auto; border-radius: 8px;" />
            <h4 style="margin: 10px 0 4px;">%s %s</h4>
            <p style="font-size: 0.9rem; color: #333;">%s</p>
            <a href="%s" target="_blank" style="color: #007bff; text-decoration: underline; font-weight: bold;">View product</a>
        </div>
        `, card.ImageURL, card.Title, TagEmojis(card.Tags), card.Title, card.Summary, card.URL)
	}
	b.WriteString("</div>")
	return b.String()
}

// BlogItem is one article entry in a blog answer.
type BlogItem struct {
	Title   string
	Summary string
	URL     string
}

// BlogList renders an intro followed by linked article summaries.
func BlogList(intro string, items []BlogItem) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("<br>")
	for _, item := range items {
		fmt.Fprintf(&b, "📰 <b>%s</b><br>%s<br>", item.Title, item.Summary)
		fmt.Fprintf(&b, "<a href='%s' target='_blank' style='color: #007bff; text-decoration: underline;'>View article</a><br><br>", item.URL)
	}
	return b.String()
}

// CollectionItem is one collection entry.
type CollectionItem struct {
	Title   string
	Summary string
	URL     string
	Count   int
}

// CollectionList renders an intro followed by linked collection summaries.
func CollectionList(intro string, items []CollectionItem) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("<br>")
	for _, item := range items {
		fmt.Fprintf(&b, "🗂️ <b>%s</b> (%d products)<br>%s<br>", item.Title, item.Count, item.Summary)
		fmt.Fprintf(&b, "<a href='%s' target='_blank' style='color: #007bff; text-decoration: underline;'>View collection</a><br><br>", item.URL)
	}
	return b.String()
}

// PageAnswer renders a page summary with its link.
func PageAnswer(summary, url string) string {
	return fmt.Sprintf("%s<br><br><a href='%s' target='_blank'>Read more</a>", summary, url)
}

// FAQAnswer renders a matched FAQ entry.
func FAQAnswer(title, answer, url string) string {
	out := fmt.Sprintf("<b>%s</b><br>%s", title, answer)
	if url != "" {
		out += fmt.Sprintf("<br><a href='%s' target='_blank' style='color: #007bff; text-decoration: underline;'>Read more</a>", url)
	}
	return out
}
