package bootstrap

import (
	"context"
	"log"
	"math/rand"
	"time"

	"shopbot-be/internal/config"
	"shopbot-be/internal/controller"
	"shopbot-be/internal/pkg/logger"
	"shopbot-be/internal/service"
	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/embedding"
	"shopbot-be/pkg/faq"
	"shopbot-be/pkg/intent"
	"shopbot-be/pkg/llm/factory"
	"shopbot-be/pkg/respond"
	"shopbot-be/pkg/session"
	"shopbot-be/pkg/sheets"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	RefreshService  service.IRefreshService
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (text-embedding-004)")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("❌ LLM provider: %v", err)
	}
	composer := respond.NewComposer(llmProvider)

	// 4. Catalog
	catalogClient := catalog.NewClient(cfg.Shopify.StoreURL, cfg.Shopify.AccessToken)
	catalogCache := catalog.NewCache(cfg.Data.CacheDir)
	catalogStore := catalog.NewStore()
	// Serve from the last persisted snapshot until the first live refresh
	// lands.
	catalogStore.Swap(catalogCache.LoadSnapshot())

	// 5. Classifier (fails open: an absent or corrupt model still boots)
	model, err := intent.LoadModel(cfg.Data.ModelPath)
	if err != nil {
		sysLogger.Warn("bootstrap", "intent model unavailable, classifier starts untrained", map[string]interface{}{
			"path":  cfg.Data.ModelPath,
			"error": err.Error(),
		})
		model = intent.NewModel()
	}
	classifier := intent.NewClassifier(model)

	// 6. FAQ index (optional artifact pair)
	faqIndex, err := faq.LoadIndex(cfg.Data.FAQEntries, cfg.Data.FAQVectors, embeddingProvider)
	if err != nil {
		sysLogger.Warn("bootstrap", "faq index unavailable", map[string]interface{}{"error": err.Error()})
		faqIndex = nil
	}

	// 7. Interaction sink (optional)
	var sink service.InteractionSink
	if cfg.Sheets.SpreadsheetID != "" {
		s, err := sheets.NewSink(context.Background(), cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			sysLogger.Warn("bootstrap", "sheet logging disabled", map[string]interface{}{"error": err.Error()})
		} else {
			sink = s
		}
	}

	// 8. Services
	sessions := session.NewStore()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	chatService := service.NewChatService(
		catalogStore,
		catalogClient,
		sessions,
		classifier,
		faqIndex,
		composer,
		sink,
		sysLogger,
		rng,
	)

	refreshService := service.NewRefreshService(catalogClient, pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, catalogStore, catalogCache, composer, sysLogger)

	// 9. Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		ChatController:  chatController,
		RefreshService:  refreshService,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
