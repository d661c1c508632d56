package catalog

import (
	"strings"

	"shopbot-be/pkg/textutil"
)

// Describer produces a short collection description from its title and a
// few member product titles. Best-effort: an empty return leaves the
// collection body untouched.
type Describer func(title string, productTitles []string) string

// EnrichCollections fills in ProductCount and ProductTitles for every
// collection and, when a Describer is supplied, generates a body for
// collections that have none. Smart collections resolve members through
// their tag rules; manual collections fall back to title-keyword matching.
func EnrichCollections(collections []Collection, products []Product, describe Describer) []Collection {
	tagToProducts := map[string][]*Product{}
	for i := range products {
		for _, tag := range products[i].TagList() {
			tagToProducts[tag] = append(tagToProducts[tag], &products[i])
		}
	}

	enriched := make([]Collection, len(collections))
	for i, col := range collections {
		var matched []*Product
		var ruleTags []string

		for _, rule := range col.Rules {
			if rule.Column != "tag" {
				continue
			}
			tag := strings.ToLower(strings.TrimSpace(rule.Condition))
			ruleTags = append(ruleTags, tag)
			matched = append(matched, tagToProducts[tag]...)
		}
		if col.Tags == "" && len(ruleTags) > 0 {
			col.Tags = strings.Join(ruleTags, ",")
		}

		if len(matched) == 0 {
			keywords := titleKeywords(col.Title)
			if len(keywords) > 0 {
				for j := range products {
					title := strings.ToLower(products[j].Title)
					if containsAll(title, keywords) {
						matched = append(matched, &products[j])
					}
				}
			}
		}

		col.ProductCount = len(matched)
		col.ProductTitles = make([]string, 0, len(matched))
		for _, p := range matched {
			col.ProductTitles = append(col.ProductTitles, p.Title)
		}

		if col.BodyHTML == "" && len(matched) > 0 && describe != nil {
			sample := col.ProductTitles
			if len(sample) > 10 {
				sample = sample[:10]
			}
			if desc := describe(col.Title, sample); desc != "" {
				col.BodyHTML = desc
			}
		}

		enriched[i] = col
	}
	return enriched
}

// titleKeywords keeps only words long enough to be discriminating.
func titleKeywords(title string) []string {
	var keywords []string
	for _, word := range textutil.Keywords(title) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}
