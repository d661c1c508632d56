package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"shopbot-be/internal/constant"
	"shopbot-be/internal/pkg/logger"
	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/respond"
)

// IConsumerService receives raw catalog snapshots, enriches collections
// when their content changed, persists the cache files and swaps the live
// store.
type IConsumerService interface {
	Start(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	store      *catalog.Store
	cache      *catalog.Cache
	composer   *respond.Composer
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	store *catalog.Store,
	cache *catalog.Cache,
	composer *respond.Composer,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		store:      store,
		cache:      cache,
		composer:   composer,
		logger:     sysLogger,
	}
}

func (s *consumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, constant.TopicCatalogRefreshed)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(ctx, msg)
			msg.Ack()
		}
	}()
	return nil
}

func (s *consumerService) handle(ctx context.Context, msg *message.Message) {
	var snap catalog.Snapshot
	if err := json.Unmarshal(msg.Payload, &snap); err != nil {
		s.logger.Error("consumer", "bad snapshot payload", map[string]interface{}{"error": err.Error()})
		return
	}

	if s.cache.CollectionsChanged(snap.Collections) {
		describe := func(title string, productTitles []string) string {
			return s.composer.DescribeCollection(ctx, title, productTitles)
		}
		snap.Collections = catalog.EnrichCollections(snap.Collections, snap.Products, describe)
		s.logger.Info("consumer", "collections enriched", map[string]interface{}{
			"collections": len(snap.Collections),
		})
	} else if prev := s.store.Snapshot(); len(prev.Collections) > 0 {
		// Content unchanged: keep the previously enriched collections
		// instead of regenerating descriptions.
		snap.Collections = prev.Collections
	} else if cached := s.cache.LoadSnapshot(); cached != nil && len(cached.Collections) > 0 {
		snap.Collections = cached.Collections
	}

	if err := s.cache.SaveSnapshot(&snap); err != nil {
		s.logger.Warn("consumer", "snapshot cache write failed", map[string]interface{}{"error": err.Error()})
	}

	s.store.Swap(&snap)
	s.logger.Info("consumer", "catalog swapped in", map[string]interface{}{
		"products": len(snap.Products),
		"pages":    len(snap.Pages),
		"articles": len(snap.Articles),
	})
}
