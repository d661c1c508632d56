package scoring

import (
	"strings"

	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/intent"
	"shopbot-be/pkg/similarity"
)

// directPageHandles routes specific intents straight to a known page,
// bypassing scoring entirely.
var directPageHandles = map[intent.Intent]string{
	intent.Contact:     "contact-book",
	intent.Studio:      "clay-sma-info-contact",
	intent.Book:        "book-design-consultation",
	intent.ReturnsInfo: "return-and-cancellation-policy",
	intent.Shipping:    "shipping-policy",
	intent.Trade:       "trade",
	intent.OurStory:    "who-we-are",
}

// irrelevantHandles are storefront chrome pages that must never be offered
// as an answer.
var irrelevantHandles = map[string]bool{
	"wishlist":                 true,
	"accessibility-disclaimer": true,
	"cart":                     true,
	"order-status":             true,
	"search":                   true,
	"404":                      true,
	"gift-card":                true,
	"account":                  true,
	"login":                    true,
	"register":                 true,
}

// RoutePage resolves the page for a page-flavored intent. Intents with a
// direct handle win outright when the page exists; everything else falls
// back to best fuzzy similarity over title plus body, skipping storefront
// chrome. Returns nil when no page fits.
func RoutePage(pages []catalog.Page, query string, in intent.Intent) *catalog.Page {
	query = strings.TrimSpace(strings.ToLower(query))

	if handle, ok := directPageHandles[in]; ok {
		for i := range pages {
			if pages[i].Handle == handle {
				return &pages[i]
			}
		}
	}

	var best *catalog.Page
	bestScore := 0.0
	for i := range pages {
		if irrelevantHandles[pages[i].Handle] {
			continue
		}
		text := strings.ToLower(pages[i].Title + " " + pages[i].BodyHTML)
		score := similarity.Ratio(query, text)
		if score > bestScore {
			bestScore = score
			best = &pages[i]
		}
	}
	return best
}
