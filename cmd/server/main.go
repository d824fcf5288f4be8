package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hieuailearning/ai-legal-assistant/internal/agent"
	"github.com/hieuailearning/ai-legal-assistant/internal/cache"
	"github.com/hieuailearning/ai-legal-assistant/internal/config"
	"github.com/hieuailearning/ai-legal-assistant/internal/llm"
	"github.com/hieuailearning/ai-legal-assistant/internal/rag"

	httphandler "github.com/hieuailearning/ai-legal-assistant/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbedModel)
	slog.Info("Initialized OpenAI client")

	// Initialize Qdrant client
	qdrantClient, err := rag.NewQdrantClient(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantCollection)
	if err != nil {
		slog.Error("Failed to create Qdrant client", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized Qdrant client")

	// Initialize ingestion
	chunker := rag.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	ingestor, err := rag.NewIngestor(context.Background(), chunker, llmClient, qdrantClient)
	if err != nil {
		slog.Error("Failed to create ingestor", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized ingestor", "chunk_size", cfg.ChunkSize, "chunk_overlap", cfg.ChunkOverlap)

	// Collaborators shared by both answering paths
	retriever := rag.NewRetriever(llmClient, qdrantClient)
	answerer := rag.NewAnswerer(llmClient)
	formatter := rag.NewCitationFormatter()

	// Staged pipeline for the /agent endpoint
	executor := agent.NewExecutor(retriever, answerer, formatter)

	// Response cache and single-shot service for the /rag endpoint. The
	// cache lives for the process lifetime and is passed down explicitly.
	responseCache := cache.New(time.Duration(cfg.CacheTTLSeconds)*time.Second, cfg.CacheMaxSize)
	service := rag.NewService(retriever, answerer, responseCache, cfg.SearchLimit)
	slog.Info("Initialized response cache", "ttl_seconds", cfg.CacheTTLSeconds, "max_size", cfg.CacheMaxSize)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(executor, service, retriever, ingestor, responseCache)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
