package main

import (
	"fmt"
	"log"

	"shopbot-be/internal/config"
	"shopbot-be/pkg/embedding"
	"shopbot-be/pkg/faq"
)

// Regenerates the FAQ embedding artifact from the entries file. Run after
// editing the FAQ list.
func main() {
	cfg := config.Load()

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
	}

	fmt.Println("Calculating embeddings... 🚀")
	n, err := faq.BuildVectors(cfg.Data.FAQEntries, cfg.Data.FAQVectors, provider)
	if err != nil {
		log.Fatalf("build faq vectors: %v", err)
	}
	fmt.Printf("✅ %d embeddings saved to %s\n", n, cfg.Data.FAQVectors)
}
