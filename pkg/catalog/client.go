package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiVersion = "2024-01"

// Client fetches catalog data from the Shopify Admin REST API. All list
// endpoints are paginated via the Link header; fetchers follow rel="next"
// until absent.
type Client struct {
	StoreURL    string
	AccessToken string
	HTTPClient  *http.Client
}

func NewClient(storeURL, accessToken string) *Client {
	return &Client{
		StoreURL:    strings.TrimRight(storeURL, "/"),
		AccessToken: accessToken,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, url string, out interface{}) (nextURL string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("shopify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("shopify error: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	return nextPageURL(resp.Header.Get("Link")), nil
}

// nextPageURL extracts the rel="next" target from a Link header, or ""
// when there is no next page.
func nextPageURL(linkHeader string) string {
	if !strings.Contains(linkHeader, `rel="next"`) {
		return ""
	}
	for _, part := range strings.Split(linkHeader, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		urlPart := strings.SplitN(part, ";", 2)[0]
		return strings.Trim(strings.TrimSpace(urlPart), "<>")
	}
	return ""
}

// GetProducts returns all active products that have at least one variant in
// stock.
func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	url := fmt.Sprintf("%s/admin/api/%s/products.json?limit=250&status=active&fields=id,title,handle,body_html,tags,product_type,variants,image",
		c.StoreURL, apiVersion)

	var all []Product
	for url != "" {
		var page struct {
			Products []Product `json:"products"`
		}
		next, err := c.get(ctx, url, &page)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Products...)
		url = next
	}

	available := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Available() {
			available = append(available, p)
		}
	}
	return available, nil
}

// GetCollections returns custom and smart collections combined.
func (c *Client) GetCollections(ctx context.Context) ([]Collection, error) {
	var all []Collection
	for _, endpoint := range []string{"custom_collections", "smart_collections"} {
		url := fmt.Sprintf("%s/admin/api/%s/%s.json?limit=250", c.StoreURL, apiVersion, endpoint)
		for url != "" {
			raw := map[string]json.RawMessage{}
			next, err := c.get(ctx, url, &raw)
			if err != nil {
				return nil, err
			}
			var page []Collection
			if data, ok := raw[endpoint]; ok {
				if err := json.Unmarshal(data, &page); err != nil {
					return nil, fmt.Errorf("unmarshal %s: %w", endpoint, err)
				}
			}
			all = append(all, page...)
			url = next
		}
	}
	return all, nil
}

// GetPages returns published static pages only.
func (c *Client) GetPages(ctx context.Context) ([]Page, error) {
	url := fmt.Sprintf("%s/admin/api/%s/pages.json?limit=250", c.StoreURL, apiVersion)

	var published []Page
	for url != "" {
		var page struct {
			Pages []Page `json:"pages"`
		}
		next, err := c.get(ctx, url, &page)
		if err != nil {
			return nil, err
		}
		for _, p := range page.Pages {
			if p.PublishedAt != "" {
				published = append(published, p)
			}
		}
		url = next
	}
	return published, nil
}

// GetBlogArticles returns all published articles across every blog, with
// article URLs resolved through the owning blog's handle.
func (c *Client) GetBlogArticles(ctx context.Context) ([]BlogArticle, error) {
	url := fmt.Sprintf("%s/admin/api/%s/blogs.json", c.StoreURL, apiVersion)
	var blogList struct {
		Blogs []struct {
			ID     int64  `json:"id"`
			Handle string `json:"handle"`
		} `json:"blogs"`
	}
	if _, err := c.get(ctx, url, &blogList); err != nil {
		return nil, err
	}

	var all []BlogArticle
	for _, blog := range blogList.Blogs {
		articlesURL := fmt.Sprintf("%s/admin/api/%s/blogs/%d/articles.json?limit=250", c.StoreURL, apiVersion, blog.ID)
		for articlesURL != "" {
			var page struct {
				Articles []struct {
					Title       string `json:"title"`
					BodyHTML    string `json:"body_html"`
					Tags        string `json:"tags"`
					Author      string `json:"author"`
					Handle      string `json:"handle"`
					PublishedAt string `json:"published_at"`
				} `json:"articles"`
			}
			next, err := c.get(ctx, articlesURL, &page)
			if err != nil {
				return nil, err
			}
			for _, a := range page.Articles {
				if a.PublishedAt == "" {
					continue
				}
				all = append(all, BlogArticle{
					Title:       a.Title,
					Content:     a.BodyHTML,
					Tags:        a.Tags,
					Author:      a.Author,
					URL:         fmt.Sprintf("%s/blogs/%s/%s", c.StoreURL, blog.Handle, a.Handle),
					PublishedAt: a.PublishedAt,
				})
			}
			articlesURL = next
		}
	}
	return all, nil
}

// GetShop returns the shop's public identity. Failures degrade to an empty
// Shop; the caller treats this as best-effort context.
func (c *Client) GetShop(ctx context.Context) (Shop, error) {
	url := fmt.Sprintf("%s/admin/api/%s/shop.json", c.StoreURL, apiVersion)
	var out struct {
		Shop Shop `json:"shop"`
	}
	if _, err := c.get(ctx, url, &out); err != nil {
		return Shop{}, err
	}
	return out.Shop, nil
}

// ProductURL builds the public storefront URL for a product handle.
func (c *Client) ProductURL(handle string) string {
	return fmt.Sprintf("%s/products/%s", c.StoreURL, handle)
}

// PageURL builds the public storefront URL for a page handle.
func (c *Client) PageURL(handle string) string {
	return fmt.Sprintf("%s/pages/%s", c.StoreURL, handle)
}

// CollectionURL builds the public storefront URL for a collection handle.
func (c *Client) CollectionURL(handle string) string {
	return fmt.Sprintf("%s/collections/%s", c.StoreURL, handle)
}
