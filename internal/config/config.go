package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIEmbedModel string

	// Qdrant configuration
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string

	// Ingestion configuration
	ChunkSize    int
	ChunkOverlap int

	// Retrieval configuration
	SearchLimit int

	// Response cache configuration
	CacheTTLSeconds int
	CacheMaxSize    int
}

// LoadConfig loads configuration from a .env file (if present), environment
// variables and command-line flags. Flags take precedence over environment
// variables.
func LoadConfig() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	// Define flags
	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := flag.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4.1-mini"), "OpenAI model for chat completions")
	openAIEmbedModel := flag.String("openai-embed-model", getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-large"), "OpenAI model for embeddings")
	qdrantHost := flag.String("qdrant-host", getEnv("QDRANT_HOST", "localhost"), "Qdrant host")
	qdrantPort := flag.Int("qdrant-port", getEnvAsInt("QDRANT_PORT", 6334), "Qdrant gRPC port (default: 6334)")
	qdrantCollection := flag.String("qdrant-collection", getEnv("QDRANT_COLLECTION", "laws"), "Qdrant collection name")
	chunkSize := flag.Int("chunk-size", getEnvAsInt("CHUNK_SIZE", 1000), "Text chunk size")
	chunkOverlap := flag.Int("chunk-overlap", getEnvAsInt("CHUNK_OVERLAP", 200), "Text chunk overlap")
	searchLimit := flag.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 5), "Number of passages retrieved for the single-shot path")
	cacheTTL := flag.Int("cache-ttl", getEnvAsInt("RAG_CACHE_TTL", 3600), "Response cache TTL in seconds")
	cacheMaxSize := flag.Int("cache-max-size", getEnvAsInt("RAG_CACHE_MAX_SIZE", 1000), "Response cache maximum entry count")

	flag.Parse()

	// Set config values
	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIEmbedModel = *openAIEmbedModel
	cfg.QdrantHost = *qdrantHost
	cfg.QdrantPort = *qdrantPort
	cfg.QdrantCollection = *qdrantCollection
	cfg.ChunkSize = *chunkSize
	cfg.ChunkOverlap = *chunkOverlap
	cfg.SearchLimit = *searchLimit
	cfg.CacheTTLSeconds = *cacheTTL
	cfg.CacheMaxSize = *cacheMaxSize

	// Validate required fields
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required (set via environment variable or -openai-key flag)")
	}
	if cfg.CacheTTLSeconds < 0 {
		return nil, fmt.Errorf("RAG_CACHE_TTL must not be negative")
	}
	if cfg.CacheMaxSize < 1 {
		return nil, fmt.Errorf("RAG_CACHE_MAX_SIZE must be at least 1")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
