package catalog

import (
	"strings"

	"shopbot-be/pkg/textutil"
)

// Variant is a purchasable product variant.
type Variant struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

// Image is a product image reference.
type Image struct {
	Src string `json:"src"`
}

// Product is a storefront product. Handle is the stable URL slug and
// primary key within its kind.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	BodyHTML    string    `json:"body_html"`
	Tags        string    `json:"tags"` // comma-separated
	ProductType string    `json:"product_type"`
	Status      string    `json:"status"`
	Variants    []Variant `json:"variants"`
	Image       Image     `json:"image"`
}

// Available reports whether any variant has inventory on hand. Products
// with no stock never enter ranking candidacy.
func (p *Product) Available() bool {
	for _, v := range p.Variants {
		if v.InventoryQuantity > 0 {
			return true
		}
	}
	return false
}

// IsSample reports whether the product is a sample variant, which is
// excluded from both single-answer promotion and list results.
func (p *Product) IsSample() bool {
	if strings.Contains(strings.ToLower(p.Title), "sample") {
		return true
	}
	for _, tag := range textutil.SplitTags(p.Tags) {
		if strings.Contains(tag, "sample") {
			return true
		}
	}
	return false
}

// TagList returns the product tags split, trimmed and lower-cased.
func (p *Product) TagList() []string {
	return textutil.SplitTags(p.Tags)
}

// Collection is a custom or smart collection, enriched offline with its
// member product titles and count.
type Collection struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Handle        string   `json:"handle"`
	BodyHTML      string   `json:"body_html"`
	Tags          string   `json:"tags"` // comma-separated, filled from tag rules
	ProductCount  int      `json:"product_count"`
	ProductTitles []string `json:"product_titles"`
	Rules         []Rule   `json:"rules,omitempty"`
}

// Rule is a smart-collection membership rule (only tag rules are used for
// enrichment).
type Rule struct {
	Column    string `json:"column"`
	Relation  string `json:"relation"`
	Condition string `json:"condition"`
}

// BlogArticle is a published blog post.
type BlogArticle struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Tags        string `json:"tags"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// Page is a published static page (policies, contact, FAQ pages, ...).
type Page struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	BodyHTML    string `json:"body_html"`
	PublishedAt string `json:"published_at"`
}

// Shop is the storefront's public identity, used as LLM context.
type Shop struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Snapshot is an immutable view of the catalog. A refresh builds a complete
// replacement snapshot and swaps it in; scorers never observe a torn read.
type Snapshot struct {
	Products    []Product
	Collections []Collection
	Articles    []BlogArticle
	Pages       []Page
	Shop        Shop
}
