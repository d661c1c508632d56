package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Shopify ShopifyConfig
	Ai      AIConfig
	Sheets  SheetsConfig
	Data    DataConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type ShopifyConfig struct {
	StoreURL    string
	AccessToken string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "ollama", "openai"
	LLMModel          string // e.g. "gpt-4o-mini", "llama3"
	OpenAIKey         string
	GoogleGeminiKey   string
}

type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
}

// DataConfig holds the on-disk artifact locations: catalog caches, the
// trained intent model and the FAQ files.
type DataConfig struct {
	CacheDir     string
	ModelPath    string
	TrainingPath string
	FAQEntries   string
	FAQVectors   string
	RefreshHours int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Shopify: ShopifyConfig{
			StoreURL:    getEnv("SHOPIFY_STORE_URL", ""),
			AccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
			GoogleGeminiKey:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "google_credentials.json"),
			SpreadsheetID:   getEnv("CHATBOT_LOG_SPREADSHEET_ID", ""),
		},
		Data: DataConfig{
			CacheDir:     getEnv("CATALOG_CACHE_DIR", "data"),
			ModelPath:    getEnv("INTENT_MODEL_PATH", "data/intent_model.json"),
			TrainingPath: getEnv("TRAINING_DATA_PATH", "data/training_data.json"),
			FAQEntries:   getEnv("FAQ_ENTRIES_PATH", "data/faqs.json"),
			FAQVectors:   getEnv("FAQ_VECTORS_PATH", "data/faq_embeddings.json"),
			RefreshHours: getEnvAsInt("CATALOG_REFRESH_HOURS", 24),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
