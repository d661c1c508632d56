package scoring

import (
	"math/rand"
	"sort"
	"strings"

	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/similarity"
	"shopbot-be/pkg/textutil"
)

// tagFilters maps query words to the catalog tag they require. A word with
// an entry here turns the tag into a near-mandatory facet (the gate below
// tolerates exactly one miss).
var tagFilters = map[string]string{
	// usage
	"kitchen":    "usage_kitchen",
	"bathroom":   "usage_bathroom",
	"interior":   "usage_interior",
	"shower":     "usage_bathroom",
	"backsplash": "usage_kitchen",
	"restaurant": "usage_interior",

	// colors
	"terracotta":   "color_terracotta",
	"burnt orange": "color_terracotta",
	"earthy":       "color_terracotta",
	"white":        "color_white",
	"black":        "color_black",
	"blue":         "color_blue",
	"green":        "color_green",
	"navy":         "color_navy",
	"beige":        "color_beige",
	"brown":        "color_brown",
	"grey":         "color_grey",
	"pink":         "color_pink",
	"yellow":       "color_yellow",

	// finishes
	"matte":          "finish_matte",
	"glossy":         "finish_glossy",
	"satin":          "finish-satin-sealed",
	"sealed":         "finish-satin-sealed",
	"natural finish": "finish-natural",
	"natural clay":   "material_terracotta",
	"rough":          "finish-raw",

	// shapes
	"hexagon":   "tileshape_hexagon",
	"circle":    "tileshape_circle",
	"square":    "tileshape_square",
	"rectangle": "tileshape_rectangle",
	"2x6":       "tileshape_2x6",
	"3x3":       "tileshape_3x3",

	// style
	"modern":      "style_modern",
	"handmade":    "style_handmade",
	"natural":     "style_natural",
	"rustic":      "style_rustic",
	"handcrafted": "style_handmade",

	// material
	"clay":                "material_clay",
	"cement":              "material_cement",
	"concrete":            "material_concrete",
	"ceramic":             "material_ceramic",
	"terracotta material": "material_terracotta",
}

// contextKeywords expand the query when the message implies a room.
var contextKeywords = map[string][]string{
	"kitchen":    {"kitchen", "backsplash", "cook", "usage_kitchen"},
	"bathroom":   {"bathroom", "shower", "sink", "usage_bathroom"},
	"restaurant": {"restaurant", "bar", "counter", "usage_interior"},
}

// DetectContext reports which room the message is about, or "" when none.
func DetectContext(message string) string {
	kitchen := []string{"kitchen", "cooking", "dining"}
	bathroom := []string{"bathroom", "shower", "sink"}
	restaurant := []string{"restaurant", "café", "bar", "dining area"}

	containsAny := func(words []string) bool {
		for _, w := range words {
			if strings.Contains(message, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny(kitchen):
		return "kitchen"
	case containsAny(bathroom):
		return "bathroom"
	case containsAny(restaurant):
		return "restaurant"
	}
	return ""
}

// defaultBody stands in for products without a description so thin-body
// handling stays uniform.
const defaultBody = "This is a beautiful product available in our store. Feel free to explore more details!"

// Product weight table.
const (
	productTitleHit   = 3
	productBodyHit    = 2
	productTagHit     = 4
	productUsageBoost = 1  // "backsplash" or "kitchen" keyword
	thinBodyPenalty   = -2 // body under thinBodyMin chars
	thinBodyMin       = 40
	allWordsBonus     = 10

	// promotionBar is the score a candidate must reach while scanning
	// before it may be tracked as the single best match.
	promotionBar = 10
	// promotionScore promotes the tracked best outright regardless of
	// similarity.
	promotionScore = 18
	// promotionSimilarity promotes the tracked best on fuzzy evidence.
	promotionSimilarity = 0.7
)

// ProductCandidate is a product with its request-scoped scores.
type ProductCandidate struct {
	Product catalog.Product
	Candidate
}

// ProductSelection is the outcome of ranking a product query.
type ProductSelection struct {
	// Promoted, when set, is the single high-confidence answer and Listed
	// is empty.
	Promoted *ProductCandidate
	// Listed holds up to three carousel entries.
	Listed []ProductCandidate
	// Random marks Listed as the non-personalized fallback.
	Random bool
}

// RankProducts scores every eligible product against the message and applies
// the selection policy: single promotion when the best candidate clears the
// double threshold, else a top-3 list, else up to 3 random eligible items.
// wasShown excludes items already presented this session on every path.
func RankProducts(products []catalog.Product, userMessage, context string, wasShown func(handle string) bool, rng *rand.Rand) ProductSelection {
	userMessage = strings.TrimSpace(strings.ToLower(userMessage))
	keywords := strings.Fields(userMessage)

	requiredTags := map[string]bool{}
	for _, word := range keywords {
		if tag, ok := tagFilters[strings.TrimSpace(word)]; ok {
			requiredTags[tag] = true
		}
	}

	if context != "" {
		keywords = append(keywords, contextKeywords[context]...)
	}

	normalizedMessage := textutil.Normalize(userMessage)
	queryWords := strings.Fields(normalizedMessage)

	var candidates []ProductCandidate
	var best *ProductCandidate
	bestSimilarity := 0.0

	for _, product := range products {
		normalizedTitle := textutil.Normalize(product.Title)
		body := strings.ToLower(textutil.StripHTML(product.BodyHTML))
		if body == "" {
			body = strings.ToLower(defaultBody)
		}
		tags := product.TagList()

		if product.IsSample() || wasShown(product.Handle) {
			continue
		}

		if len(requiredTags) > 0 {
			matches := 0
			for req := range requiredTags {
				for _, tag := range tags {
					if tag == req {
						matches++
						break
					}
				}
			}
			need := len(requiredTags) - 1
			if need < 1 {
				need = 1
			}
			if matches < need {
				continue
			}
		}

		score := 0
		for _, kw := range keywords {
			kw = strings.TrimSpace(strings.ToLower(kw))
			if strings.Contains(normalizedTitle, kw) {
				score += productTitleHit
			}
			if strings.Contains(body, kw) {
				score += productBodyHit
			}
			for _, tag := range tags {
				if strings.Contains(tag, kw) {
					score += productTagHit
					break
				}
			}
			if kw == "backsplash" || kw == "kitchen" {
				score += productUsageBoost
			}
		}

		if len(body) < thinBodyMin {
			score += thinBodyPenalty
		}

		sim := 0.0
		if containsAllWords(normalizedTitle, queryWords) {
			sim = 1.0
			score += allWordsBonus
		} else {
			sim = similarity.Ratio(normalizedMessage, normalizedTitle)
		}

		if score > 0 {
			cand := ProductCandidate{Product: product, Candidate: Candidate{MatchScore: score, Similarity: sim}}
			candidates = append(candidates, cand)

			// Only strong keyword matches may claim the promotion slot,
			// so one lucky fuzzy hit cannot hijack the answer.
			if sim > bestSimilarity && score >= promotionBar {
				bestSimilarity = sim
				c := cand
				best = &c
			}
		}
	}

	if best != nil && (bestSimilarity > promotionSimilarity || best.MatchScore >= promotionScore) {
		return ProductSelection{Promoted: best}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].MatchScore != candidates[j].MatchScore {
				return candidates[i].MatchScore > candidates[j].MatchScore
			}
			return candidates[i].Similarity > candidates[j].Similarity
		})
		if len(candidates) > 3 {
			candidates = candidates[:3]
		}
		return ProductSelection{Listed: candidates}
	}

	return ProductSelection{Listed: randomProducts(products, wasShown, rng), Random: true}
}

// randomProducts picks up to 3 random eligible products for the
// no-candidate fallback.
func randomProducts(products []catalog.Product, wasShown func(string) bool, rng *rand.Rand) []ProductCandidate {
	var eligible []catalog.Product
	for _, p := range products {
		if !p.IsSample() && !wasShown(p.Handle) {
			eligible = append(eligible, p)
		}
	}
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if len(eligible) > 3 {
		eligible = eligible[:3]
	}
	out := make([]ProductCandidate, 0, len(eligible))
	for _, p := range eligible {
		out = append(out, ProductCandidate{Product: p})
	}
	return out
}

func containsAllWords(haystack string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}
