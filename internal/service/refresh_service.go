package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"shopbot-be/internal/constant"
	"shopbot-be/internal/pkg/logger"
	"shopbot-be/pkg/catalog"
)

// IRefreshService pulls the full catalog from the storefront API and
// publishes the raw snapshot for the consumer to enrich and swap in.
type IRefreshService interface {
	RefreshNow(ctx context.Context) error
	StartPeriodic(ctx context.Context, every time.Duration)
}

type refreshService struct {
	client    *catalog.Client
	publisher message.Publisher
	logger    logger.ILogger
}

func NewRefreshService(client *catalog.Client, publisher message.Publisher, sysLogger logger.ILogger) IRefreshService {
	return &refreshService{
		client:    client,
		publisher: publisher,
		logger:    sysLogger,
	}
}

// RefreshNow fetches every catalog kind and publishes the result. The fetch
// is all-or-nothing: a partial catalog never reaches the store.
func (s *refreshService) RefreshNow(ctx context.Context) error {
	products, err := s.client.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}
	collections, err := s.client.GetCollections(ctx)
	if err != nil {
		return fmt.Errorf("fetch collections: %w", err)
	}
	pages, err := s.client.GetPages(ctx)
	if err != nil {
		return fmt.Errorf("fetch pages: %w", err)
	}
	articles, err := s.client.GetBlogArticles(ctx)
	if err != nil {
		return fmt.Errorf("fetch articles: %w", err)
	}
	shop, err := s.client.GetShop(ctx)
	if err != nil {
		return fmt.Errorf("fetch shop: %w", err)
	}

	snap := &catalog.Snapshot{
		Products:    products,
		Collections: collections,
		Articles:    articles,
		Pages:       pages,
		Shop:        shop,
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	s.logger.Info("refresh", "catalog fetched", map[string]interface{}{
		"products":    len(products),
		"collections": len(collections),
		"pages":       len(pages),
		"articles":    len(articles),
	})

	return s.publisher.Publish(constant.TopicCatalogRefreshed, message.NewMessage(uuid.NewString(), payload))
}

// StartPeriodic refreshes immediately and then on the given interval until
// the context is cancelled.
func (s *refreshService) StartPeriodic(ctx context.Context, every time.Duration) {
	go func() {
		if err := s.RefreshNow(ctx); err != nil {
			s.logger.Error("refresh", "initial catalog refresh failed", map[string]interface{}{"error": err.Error()})
		}

		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.RefreshNow(ctx); err != nil {
					s.logger.Error("refresh", "catalog refresh failed", map[string]interface{}{"error": err.Error()})
				}
			}
		}
	}()
}
